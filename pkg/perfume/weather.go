package perfume

const (
	HotThreshold  = 30.0
	ColdThreshold = 12.0
)

// WeatherFromTemperature classifies the temperature in °C. Rain wins over any temperature.
func WeatherFromTemperature(tempC float64, rainy bool) Weather {
	switch {
	case rainy:
		return Rainy
	case tempC >= HotThreshold:
		return Hot
	case tempC <= ColdThreshold:
		return Cold
	default:
		return Mild
	}
}
