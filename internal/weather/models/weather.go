package models

// Location identifies the place a forecast was resolved for.
type Location struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// Current is the normalized current-conditions block. Wind speed is in
// mph, precipitation in inches, temperatures rounded to whole degrees.
type Current struct {
	Temp          int     `json:"temp"`
	FeelsLike     int     `json:"feels_like"`
	Condition     string  `json:"condition"`
	Category      string  `json:"category"`
	Humidity      int     `json:"humidity"`
	WindSpeed     int     `json:"wind_speed"`
	WindDeg       int     `json:"wind_deg"`
	Precipitation float64 `json:"precipitation"`
	UVIndex       int     `json:"uv_index"`
	Visibility    int     `json:"visibility"`
	Icon          string  `json:"icon"`
}

// HourlyEntry is one hour of the short-range series, time rendered as a
// 24-hour HH:MM label.
type HourlyEntry struct {
	Time string `json:"time"`
	Temp int    `json:"temp"`
	Icon string `json:"icon"`
}

// DailyEntry is one day of the forecast series, with a 3-letter weekday
// label and a DD/MM date label.
type DailyEntry struct {
	Day  string `json:"day"`
	Date string `json:"date"`
	Temp int    `json:"temp"`
	Icon string `json:"icon"`
}

// NormalizedWeather is the stable client-facing schema assembled from
// the provider payload.
type NormalizedWeather struct {
	Location Location      `json:"location"`
	Current  Current       `json:"current"`
	Hourly   []HourlyEntry `json:"hourly"`
	Daily    []DailyEntry  `json:"daily"`
}
