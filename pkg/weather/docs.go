// Package weather proxies current weather conditions for the sidebar widget.
package weather

// swagger:response Report
type _ struct {
	// in: body
	Body Report
}

// swagger:parameters currentWeather
type _ struct {
	// in: query
	// required: true
	Lat float64 `json:"lat"`

	// in: query
	// required: true
	Lon float64 `json:"lon"`
}
