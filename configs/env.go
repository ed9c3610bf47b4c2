package configs

import (
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	SwaggerEnabled  bool
}

var Env *EnvConfig

func init() {
	viper.AutomaticEnv()
	viper.SetDefault("SWAGGER_ENABLED", true)

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "weathercast"),
		SwaggerEnabled:  viper.GetBool("SWAGGER_ENABLED"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
