package models

import "time"

// WeatherHour is one trimmed hourly forecast entry fed to the assistant.
type WeatherHour struct {
	Time          string  `json:"time"`
	Temperature   float64 `json:"temperature"`
	Precipitation float64 `json:"precipitation"`
	WindSpeed     float64 `json:"windSpeed"`
}

// WeatherSnapshot is the trimmed weather slice included in assistant prompts.
type WeatherSnapshot struct {
	Temperature   float64       `json:"temperature"`
	WindSpeed     float64       `json:"windSpeed"`
	Precipitation float64       `json:"precipitation"`
	Hourly        []WeatherHour `json:"hourly"` // Next 12 hours at most
	FetchedAt     time.Time     `json:"fetchedAt"`
}

// ChatMessage is one entry in the assistant conversation history.
type ChatMessage struct {
	Role      string    `json:"role"` // "user" or "assistant"
	Text      string    `json:"text"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AssistantRequest is a user question for the weather assistant.
type AssistantRequest struct {
	UserID   string `json:"userID"`
	Question string `json:"question"`
}

// AssistantResponse is the assistant reply plus a decorative icon.
type AssistantResponse struct {
	Answer string `json:"answer"`
	Icon   string `json:"icon"`
}
