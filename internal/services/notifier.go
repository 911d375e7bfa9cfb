package services

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"github.com/innovate-connect/innovate/internal/config"
	"github.com/wneessen/go-mail"
)

//go:embed templates/*.html
var templateFS embed.FS

var emailTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const defaultNotifyTimeout = 10 * time.Second

const (
	fromName = "Innovate Connect"

	welcomeSubject  = "Welcome to Innovate Connect!"
	acceptedSubject = "Congratulations! Your application has been accepted"
)

type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// NewNotifier returns an SMTP notifier when SMTP is configured and a logging
// notifier otherwise.
func NewNotifier(cfg config.EmailConfig, logger *slog.Logger) Notifier {
	if !cfg.SMTPEnabled() {
		logger.Warn("email settings not configured, notifications are simulated")
		return &LogNotifier{logger: logger}
	}

	return &SMTPNotifier{cfg: cfg}
}

type SMTPNotifier struct {
	cfg config.EmailConfig
}

func (n *SMTPNotifier) Send(ctx context.Context, m Message) error {
	msg := mail.NewMsg()

	from := n.cfg.From
	if from == "" {
		from = n.cfg.Username
	}

	if err := msg.FromFormat(fromName, from); err != nil {
		return fmt.Errorf("invalid sender: %w", err)
	}

	if err := msg.To(m.To); err != nil {
		return fmt.Errorf("invalid recipient: %w", err)
	}

	msg.Subject(m.Subject)
	msg.SetBodyString(mail.TypeTextHTML, m.HTMLBody)

	client, err := n.client()

	if err != nil {
		return fmt.Errorf("creating mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending mail to %s: %w", m.To, err)
	}

	return nil
}

func (n *SMTPNotifier) client() (*mail.Client, error) {
	timeout := n.cfg.Timeout
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}

	return mail.NewClient(n.cfg.SMTPHost,
		mail.WithPort(n.cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(n.cfg.Username),
		mail.WithPassword(n.cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(timeout),
	)
}

// LogNotifier records messages instead of delivering them.
type LogNotifier struct {
	logger *slog.Logger
}

func (n *LogNotifier) Send(_ context.Context, m Message) error {
	n.logger.Info("simulated email", "to", m.To, "subject", m.Subject)
	return nil
}

// Notifications delivers messages outside of any transaction. Failures are
// logged and never returned to the caller.
type Notifications struct {
	Notifier Notifier
	Logger   *slog.Logger
	Timeout  time.Duration
}

func (n Notifications) Deliver(ctx context.Context, msg Message) {
	if n.Notifier == nil {
		return
	}

	timeout := n.Timeout
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := n.Notifier.Send(ctx, msg); err != nil {
		n.Logger.Warn("notification failed", "to", msg.To, "subject", msg.Subject, "error", err)
	}
}

type welcomeData struct {
	Name string
	Role string
}

type acceptedData struct {
	StudentName string
	CompanyName string
	Title       string
	Technology  string
	Stipend     float64
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer

	if err := emailTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}

	return buf.String(), nil
}
