// File: services/weather/service.go
package weather

import (
	"context"
	"fmt"
	"strings"
	"time"

	"courtside/models"
)

// AssistantService answers free-text weather questions for visitors
// planning outdoor sessions.
type AssistantService interface {
	Ask(req models.AssistantRequest) (*models.AssistantResponse, error)
	History(userID string) ([]models.ChatMessage, error)
}

// DefaultAssistantService forwards the question plus a trimmed weather
// slice to the generative endpoint. No retry, no streaming.
type DefaultAssistantService struct {
	Generator TextGenerator
	Forecast  ForecastProvider
	Store     *HistoryStore
}

func NewDefaultAssistantService(gen TextGenerator, forecast ForecastProvider, history *HistoryStore) *DefaultAssistantService {
	return &DefaultAssistantService{Generator: gen, Forecast: forecast, Store: history}
}

// Ask answers one question and records the exchange.
func (s *DefaultAssistantService) Ask(req models.AssistantRequest) (*models.AssistantResponse, error) {
	if strings.TrimSpace(req.Question) == "" {
		return nil, fmt.Errorf("question must not be empty")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	snapshot, err := s.Forecast.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("weather data unavailable: %w", err)
	}

	answer, err := s.Generator.GenerateContent(ctx, BuildPrompt(req.Question, snapshot))
	if err != nil {
		return nil, fmt.Errorf("assistant unavailable: %w", err)
	}

	resp := &models.AssistantResponse{
		Answer: answer,
		Icon:   PickIcon(answer),
	}

	now := time.Now()
	if err := s.Store.Append(ctx, req.UserID,
		models.ChatMessage{Role: "user", Text: req.Question, CreatedAt: now},
		models.ChatMessage{Role: "assistant", Text: answer, Icon: resp.Icon, CreatedAt: now},
	); err != nil {
		// History is best effort; the answer still goes back.
		return resp, nil
	}
	return resp, nil
}

// History returns the stored conversation for a user.
func (s *DefaultAssistantService) History(userID string) ([]models.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Store.Get(ctx, userID)
}

// BuildPrompt frames the user question with the trimmed forecast slice.
func BuildPrompt(question string, snapshot *models.WeatherSnapshot) string {
	var sb strings.Builder
	sb.WriteString("You are the weather assistant for a sports facility booking site. ")
	sb.WriteString("Answer the visitor's question using only the weather data below, ")
	sb.WriteString("and keep the answer short and practical for planning outdoor sessions.\n\n")
	fmt.Fprintf(&sb, "Current: %.1f°C, wind %.1f km/h, precipitation %.1f mm\n",
		snapshot.Temperature, snapshot.WindSpeed, snapshot.Precipitation)
	if len(snapshot.Hourly) > 0 {
		sb.WriteString("Next hours:\n")
		for _, h := range snapshot.Hourly {
			fmt.Fprintf(&sb, "  %s: %.1f°C, wind %.1f km/h, precipitation %.1f mm\n",
				h.Time, h.Temperature, h.WindSpeed, h.Precipitation)
		}
	}
	sb.WriteString("\nQuestion: ")
	sb.WriteString(question)
	return sb.String()
}
