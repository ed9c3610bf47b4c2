package resource

import (
	"bytes"
	_ "embed"
	"errors"
	"io/fs"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

//go:embed application.yml
var defaultProperties []byte

var envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)

var properties = viper.New()

// init loads the embedded defaults, then the optional file at PROPERTIES_FILE_PATH
func init() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Fail to read .env file: %v", err)
	}

	if err := Init(os.Getenv("PROPERTIES_FILE_PATH")); err != nil {
		log.Printf("Fail to read properties: %v", err)
	}
}

// Init rebuilds the properties from the embedded defaults merged with the YAML file at filepath.
// An empty filepath loads only the defaults.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(bytes.NewReader(defaultProperties)); err != nil {
		return err
	}

	if filepath != "" {
		v.SetConfigFile(filepath)
		if err := v.MergeInConfig(); err != nil {
			return err
		}
	}

	resolved := viper.New()
	for _, key := range v.AllKeys() {
		resolved.Set(key, resolveValue(v.Get(key)))
	}
	properties = resolved
	return nil
}

// resolveValue replaces ${ENV:default} placeholders with the environment value or the default
func resolveValue(value any) any {
	str, ok := value.(string)
	if !ok {
		return value
	}

	matches := envPattern.FindStringSubmatch(strings.TrimSpace(str))
	if matches == nil {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

// Set overrides a single property, mostly useful in tests.
func Set(key string, value any) {
	properties.Set(key, value)
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetFloat64(key string) float64 {
	return properties.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}
