package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"courtside/config"
	bookingRepo "courtside/database/repository/booking"
	"courtside/models"
	"courtside/services/tasks"
	"courtside/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitBookingWorker runs the async worker in background. It lapses
// pending bookings whose hold deadline passed and fires session
// reminders for confirmed ones.
func InitBookingWorker(repo bookingRepo.BookingRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingExpire, handleExpireTask(repo))
	mux.HandleFunc(tasks.TypeSessionReminder, handleReminderTask(repo))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[BookingWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[BookingWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[BookingWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleExpireTask(repo bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p tasks.BookingTaskPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid expire task payload", zap.Error(err))
			return err
		}

		// ExpirePending is a no-op for bookings confirmed or cancelled in
		// the meantime.
		expired, err := repo.ExpirePending(p.BookingID)
		if err != nil {
			logger.Error("Failed to expire booking", zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}
		if expired {
			logger.Info("Booking hold lapsed", zap.String("bookingID", p.BookingID), zap.String("userID", p.UserID))
		}
		return nil
	}
}

func handleReminderTask(repo bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p tasks.BookingTaskPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reminder task payload", zap.Error(err))
			return err
		}

		booked, err := repo.GetByID(p.BookingID)
		if err != nil {
			logger.Warn("Reminder for unknown booking", zap.String("bookingID", p.BookingID), zap.Error(err))
			return nil
		}
		if booked.Status != models.BookingStatusConfirmed {
			return nil
		}

		logger.Info("Session reminder due",
			zap.String("bookingID", booked.ID),
			zap.String("userID", booked.UserID),
			zap.String("date", booked.Date),
			zap.Int("start", booked.Start),
		)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[BookingWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
