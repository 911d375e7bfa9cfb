package services

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/innovate-connect/innovate/internal/config"
	"github.com/innovate-connect/innovate/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingNotifier struct{}

func (blockingNotifier) Send(ctx context.Context, _ Message) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestNewNotifier_SimulatesWithoutSMTP(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(config.LoggingConfig{Level: "info"}, &buf)

	notifier := NewNotifier(config.EmailConfig{}, logger)
	require.IsType(t, &LogNotifier{}, notifier)

	require.NoError(t, notifier.Send(context.Background(), Message{To: "a@x.com", Subject: "Hi"}))
	assert.Contains(t, buf.String(), "simulated email")
	assert.Contains(t, buf.String(), "a@x.com")

	smtp := NewNotifier(config.EmailConfig{SMTPHost: "smtp.example.com", Username: "user"}, logger)
	assert.IsType(t, &SMTPNotifier{}, smtp)
}

func TestSMTPNotifier_ZeroTimeoutFallsBackToDefault(t *testing.T) {
	cfg := config.EmailConfig{SMTPHost: "smtp.example.com", SMTPPort: 587, Username: "user", Password: "secret"}

	for _, timeout := range []time.Duration{0, -time.Second} {
		cfg.Timeout = timeout
		n := &SMTPNotifier{cfg: cfg}

		client, err := n.client()
		require.NoError(t, err, "timeout %s", timeout)
		assert.NotNil(t, client)
	}
}

func TestNotifications_DeliverTimesOutAndLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(config.LoggingConfig{Level: "info"}, &buf)

	n := Notifications{Notifier: blockingNotifier{}, Logger: logger, Timeout: 50 * time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	n.Deliver(ctx, Message{To: "a@x.com", Subject: "Hi"})

	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond, "a cancelled request must not cut delivery short")
	assert.Less(t, elapsed, time.Second)
	assert.True(t, strings.Contains(buf.String(), "notification failed"))
}

func TestRender(t *testing.T) {
	body, err := render("welcome.html", welcomeData{Name: "<script>", Role: "Company"})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "Post internships")
}
