package entity

// PlaceholderIcon is the icon code attached to every record; icon selection is left to the client.
const PlaceholderIcon = "01d"

// Weather is one snapshot of current conditions for a location. Temperatures are Celsius.
type Weather struct {
	City        string `json:"city"`
	Country     string `json:"country"`
	Temperature int    `json:"temperature"`
	Description string `json:"description"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"windSpeed"`
	Icon        string `json:"icon"`
	FeelsLike   int    `json:"feelsLike"`
	Pressure    int    `json:"pressure"`
	Visibility  int    `json:"visibility"`
}
