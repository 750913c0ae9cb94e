// File: services/weather/openmeteo.go
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"courtside/models"
)

const openMeteoEndpoint = "https://api.open-meteo.com/v1/forecast"

// maxHourlyEntries bounds the slice of forecast data fed into prompts.
const maxHourlyEntries = 12

// ForecastProvider fetches the trimmed weather slice for the assistant.
type ForecastProvider interface {
	Fetch(ctx context.Context) (*models.WeatherSnapshot, error)
}

// OpenMeteoProvider implements ForecastProvider against the Open-Meteo API.
type OpenMeteoProvider struct {
	client    *http.Client
	latitude  float64
	longitude float64
}

func NewOpenMeteoProvider(latitude, longitude float64) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		client:    &http.Client{Timeout: 10 * time.Second},
		latitude:  latitude,
		longitude: longitude,
	}
}

type openMeteoResponse struct {
	Current struct {
		Temperature   float64 `json:"temperature_2m"`
		WindSpeed     float64 `json:"wind_speed_10m"`
		Precipitation float64 `json:"precipitation"`
	} `json:"current"`
	Hourly struct {
		Time          []string  `json:"time"`
		Temperature   []float64 `json:"temperature_2m"`
		Precipitation []float64 `json:"precipitation"`
		WindSpeed     []float64 `json:"wind_speed_10m"`
	} `json:"hourly"`
}

// Fetch retrieves the current conditions plus at most the next 12 hours.
func (p *OpenMeteoProvider) Fetch(ctx context.Context) (*models.WeatherSnapshot, error) {
	url := fmt.Sprintf(
		"%s?latitude=%f&longitude=%f&current=temperature_2m,wind_speed_10m,precipitation&hourly=temperature_2m,precipitation,wind_speed_10m&forecast_hours=%d",
		openMeteoEndpoint, p.latitude, p.longitude, maxHourlyEntries,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather endpoint returned status %d", resp.StatusCode)
	}

	var raw openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	snapshot := &models.WeatherSnapshot{
		Temperature:   raw.Current.Temperature,
		WindSpeed:     raw.Current.WindSpeed,
		Precipitation: raw.Current.Precipitation,
		FetchedAt:     time.Now(),
	}
	for i := range raw.Hourly.Time {
		if i >= maxHourlyEntries {
			break
		}
		hour := models.WeatherHour{Time: raw.Hourly.Time[i]}
		if i < len(raw.Hourly.Temperature) {
			hour.Temperature = raw.Hourly.Temperature[i]
		}
		if i < len(raw.Hourly.Precipitation) {
			hour.Precipitation = raw.Hourly.Precipitation[i]
		}
		if i < len(raw.Hourly.WindSpeed) {
			hour.WindSpeed = raw.Hourly.WindSpeed[i]
		}
		snapshot.Hourly = append(snapshot.Hourly, hour)
	}
	return snapshot, nil
}
