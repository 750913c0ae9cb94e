package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TypeBookingExpire   = "booking:expire"
	TypeSessionReminder = "booking:reminder"
)

// BookingTaskPayload identifies the booking a scheduled task acts on.
type BookingTaskPayload struct {
	BookingID string `json:"bookingID"`
	UserID    string `json:"userID"`
}

// NewBookingExpireTask lapses a still-pending booking when its hold deadline
// passes.
func NewBookingExpireTask(payload BookingTaskPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingExpire, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return task, opts, nil
}

// NewSessionReminderTask notifies a user shortly before a confirmed session.
func NewSessionReminderTask(payload BookingTaskPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSessionReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return task, opts, nil
}
