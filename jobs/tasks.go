package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypeSendEmail is the task type for sending transactional emails.
	TaskTypeSendEmail = "mail:send"
	// TaskTypeLowStockScan is the task type for the nightly stock sweep.
	TaskTypeLowStockScan = "inventory:low_stock_scan"
)

// SendEmailPayload describes the information required to send an email.
type SendEmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// NewSendEmailTask constructs an Asynq task.
func NewSendEmailTask(payload SendEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeSendEmail, data), nil
}

// SMTPConfig locates the outbound mail relay.
type SMTPConfig struct {
	Host string
	Port int
	From string
}

// SendEmailJob delivers queued mail through SMTP.
type SendEmailJob struct {
	cfg    SMTPConfig
	logger *slog.Logger
}

// NewSendEmailJob constructs a SendEmailJob.
func NewSendEmailJob(cfg SMTPConfig, logger *slog.Logger) *SendEmailJob {
	return &SendEmailJob{cfg: cfg, logger: logger}
}

// Handle processes TaskTypeSendEmail tasks.
func (j *SendEmailJob) Handle(_ context.Context, t *asynq.Task) error {
	var payload SendEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		j.cfg.From, payload.To, payload.Subject, payload.Body)
	addr := fmt.Sprintf("%s:%d", j.cfg.Host, j.cfg.Port)
	if err := smtp.SendMail(addr, nil, j.cfg.From, []string{payload.To}, []byte(msg)); err != nil {
		return fmt.Errorf("jobs: send mail: %w", err)
	}
	j.logger.Info("email sent", slog.String("to", payload.To), slog.String("subject", payload.Subject))
	return nil
}

// QueueMailer satisfies the two-factor mailer port by enqueueing a send-email
// task instead of talking to SMTP inline.
type QueueMailer struct {
	client *Client
}

// NewQueueMailer constructs a QueueMailer.
func NewQueueMailer(client *Client) *QueueMailer {
	return &QueueMailer{client: client}
}

// SendCode queues the verification-code email.
func (m *QueueMailer) SendCode(ctx context.Context, email, code string) error {
	_, err := m.client.EnqueueSendEmail(ctx, SendEmailPayload{
		To:      email,
		Subject: "Your Wheels verification code",
		Body:    fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code),
	})
	return err
}
