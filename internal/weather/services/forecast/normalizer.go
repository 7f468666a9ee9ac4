package forecast

import (
	"fmt"
	"math"
	"time"

	"github.com/dkachur-dev/weather-dashboard/internal/weather/models"
)

const (
	kmhToMph = 0.621371
	mmToInch = 0.0393701

	// seriesLimit caps the hourly and daily series in the normalized
	// output.
	seriesLimit = 6

	// visibilityMiles is not reported by the provider; a fixed value
	// keeps the client schema stable.
	visibilityMiles = 10

	hourlyTimeLayout = "2006-01-02T15:04"
	dailyTimeLayout  = "2006-01-02"
)

// Normalize maps a raw provider payload and its resolved place into the
// stable client-facing schema: condition codes resolved through the
// lookup table, wind in mph, precipitation in inches, series capped at
// six entries in provider order.
func Normalize(place Place, payload Payload) (models.NormalizedWeather, error) {
	if len(payload.Daily.UVIndexMax) == 0 {
		return models.NormalizedWeather{}, fmt.Errorf("forecast payload missing daily uv index")
	}

	entry := LookupCode(payload.Current.WeatherCode)

	result := models.NormalizedWeather{
		Location: models.Location{Name: place.Name, Country: place.Country},
		Current: models.Current{
			Temp:          roundToInt(payload.Current.Temperature),
			FeelsLike:     roundToInt(payload.Current.ApparentTemp),
			Condition:     entry.Name,
			Category:      string(entry.Category),
			Humidity:      payload.Current.Humidity,
			WindSpeed:     roundToInt(payload.Current.WindSpeed * kmhToMph),
			WindDeg:       payload.Current.WindDirection,
			Precipitation: roundTo2(payload.Current.Precipitation * mmToInch),
			UVIndex:       roundToInt(payload.Daily.UVIndexMax[0]),
			Visibility:    visibilityMiles,
			Icon:          entry.Icon,
		},
	}

	hourly, err := normalizeHourly(payload)
	if err != nil {
		return models.NormalizedWeather{}, err
	}
	result.Hourly = hourly

	daily, err := normalizeDaily(payload)
	if err != nil {
		return models.NormalizedWeather{}, err
	}
	result.Daily = daily

	return result, nil
}

func normalizeHourly(payload Payload) ([]models.HourlyEntry, error) {
	n := min(seriesLimit, len(payload.Hourly.Time))
	if len(payload.Hourly.Temperature) < n || len(payload.Hourly.WeatherCode) < n {
		return nil, fmt.Errorf("forecast payload has inconsistent hourly series")
	}

	entries := make([]models.HourlyEntry, 0, n)
	for i := 0; i < n; i++ {
		ts, err := time.Parse(hourlyTimeLayout, payload.Hourly.Time[i])
		if err != nil {
			return nil, fmt.Errorf("parse hourly time %q: %w", payload.Hourly.Time[i], err)
		}
		entry := LookupCode(payload.Hourly.WeatherCode[i])
		entries = append(entries, models.HourlyEntry{
			Time: ts.Format("15:04"),
			Temp: roundToInt(payload.Hourly.Temperature[i]),
			Icon: entry.Icon,
		})
	}
	return entries, nil
}

func normalizeDaily(payload Payload) ([]models.DailyEntry, error) {
	n := min(seriesLimit, len(payload.Daily.Time))
	if len(payload.Daily.TemperatureMax) < n || len(payload.Daily.WeatherCode) < n {
		return nil, fmt.Errorf("forecast payload has inconsistent daily series")
	}

	entries := make([]models.DailyEntry, 0, n)
	for i := 0; i < n; i++ {
		ts, err := time.Parse(dailyTimeLayout, payload.Daily.Time[i])
		if err != nil {
			return nil, fmt.Errorf("parse daily time %q: %w", payload.Daily.Time[i], err)
		}
		entry := LookupCode(payload.Daily.WeatherCode[i])
		entries = append(entries, models.DailyEntry{
			Day:  ts.Format("Mon"),
			Date: ts.Format("02/01"),
			Temp: roundToInt(payload.Daily.TemperatureMax[i]),
			Icon: entry.Icon,
		})
	}
	return entries, nil
}

func roundToInt(v float64) int {
	return int(math.Round(v))
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
