package weather

import (
	"testing"
	"time"

	"courtside/models"

	"github.com/stretchr/testify/assert"
)

func createSnapshot() *models.WeatherSnapshot {
	return &models.WeatherSnapshot{
		Temperature:   21.5,
		WindSpeed:     12.0,
		Precipitation: 0.4,
		Hourly: []models.WeatherHour{
			{Time: "2026-08-31T11:00", Temperature: 22.1, WindSpeed: 10.0, Precipitation: 0.0},
			{Time: "2026-08-31T12:00", Temperature: 23.0, WindSpeed: 14.5, Precipitation: 1.2},
		},
		FetchedAt: time.Now(),
	}
}

func TestBuildPromptIncludesQuestionAndForecast(t *testing.T) {
	prompt := BuildPrompt("Is it good weather for tennis this afternoon?", createSnapshot())

	assert.Contains(t, prompt, "Question: Is it good weather for tennis this afternoon?")
	assert.Contains(t, prompt, "Current: 21.5°C")
	assert.Contains(t, prompt, "2026-08-31T12:00")
	assert.Contains(t, prompt, "Next hours:")
}

func TestBuildPromptOmitsHourlySectionWhenEmpty(t *testing.T) {
	snapshot := createSnapshot()
	snapshot.Hourly = nil

	prompt := BuildPrompt("Will it rain?", snapshot)
	assert.NotContains(t, prompt, "Next hours:")
	assert.Contains(t, prompt, "Question: Will it rain?")
}
