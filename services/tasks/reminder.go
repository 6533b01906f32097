package tasks

import (
	"encoding/json"
	"time"

	"salao/config"
	"salao/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask wraps a reminder payload in an asynq task scheduled for
// fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues reminder tasks on the Redis-backed queue.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

// NewAsynqReminderScheduler builds a scheduler over the configured Redis.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleAppointmentReminder defers the payload until fireAt.
func (s *AsynqReminderScheduler) ScheduleAppointmentReminder(p models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := NewReminderTask(p, fireAt)
	if err != nil {
		return err
	}
	_, err = s.client.Enqueue(task, opts...)
	return err
}
