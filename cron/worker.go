package cron

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"lapidclinic/config"
	"lapidclinic/models"
	"lapidclinic/services/booking"
	"lapidclinic/services/notification"
	"lapidclinic/services/tasks"
	"lapidclinic/utils"
)

// InitReminderWorker starts the async worker that emits composed reminder
// messages, and the daily scan that enqueues tomorrow's reminders.
func InitReminderWorker(bookingSvc booking.BookingService, notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask)

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting reminder worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("reminder worker stopped", zap.Error(err))
		}
	}()

	client := asynq.NewClient(redisOpts)
	go runDailyScan(client, bookingSvc, notifSvc)
}

// handleReminderTask emits the composed reminder. Actual delivery is
// out-of-band: the administrator opens the logged wa.me link, which only
// composes the message in WhatsApp.
func handleReminderTask(ctx context.Context, t *asynq.Task) error {
	var payload models.ReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}
	utils.GetLogger().Info("reminder ready",
		zap.String("appointmentId", payload.AppointmentID),
		zap.String("destination", payload.ClientPhone),
		zap.String("whatsappLink", notification.WhatsAppLink(payload.ClientPhone, payload.Message)),
	)
	return nil
}

// runDailyScan enqueues a reminder for each of tomorrow's confirmed
// appointments, once a day at the configured local hour.
func runDailyScan(client *asynq.Client, bookingSvc booking.BookingService, notifSvc notification.NotificationService) {
	logger := utils.GetLogger()
	for {
		time.Sleep(untilNextRun(time.Now(), config.AppConfig.ReminderHour))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := enqueueTomorrowsReminders(ctx, client, bookingSvc, notifSvc); err != nil {
			logger.Warn("reminder scan failed", zap.Error(err))
		}
		cancel()
	}
}

func enqueueTomorrowsReminders(ctx context.Context, client *asynq.Client, bookingSvc booking.BookingService, notifSvc notification.NotificationService) error {
	appts, err := bookingSvc.ListAppointments(ctx)
	if err != nil {
		return err
	}
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	logger := utils.GetLogger()
	for _, appt := range appts {
		if appt.Date != tomorrow || appt.Status != models.StatusConfirmed {
			continue
		}
		msg, err := notifSvc.Compose(ctx, models.TemplateReminder, appt)
		if err != nil {
			logger.Warn("failed to compose reminder", zap.String("appointmentId", appt.ID), zap.Error(err))
			continue
		}
		task, opts, err := tasks.NewReminderTask(models.ReminderPayload{
			AppointmentID: appt.ID,
			ClientPhone:   appt.ClientPhone,
			Message:       msg.Text,
		}, time.Now())
		if err != nil {
			return err
		}
		if _, err := client.EnqueueContext(ctx, task, opts...); err != nil {
			logger.Warn("failed to enqueue reminder", zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}
	return nil
}

// untilNextRun returns the wait until the next occurrence of the given
// local hour.
func untilNextRun(now time.Time, hour int) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
