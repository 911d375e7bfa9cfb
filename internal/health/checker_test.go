package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestChecker_AllUp(t *testing.T) {
	c := NewChecker(time.Second, Database(pingerFunc(func(context.Context) error { return nil })))

	healthy, results := c.Run(context.Background())
	assert.True(t, healthy)
	require.Len(t, results, 1)
	assert.Equal(t, "database", results[0].Name)
	assert.Equal(t, StatusUp, results[0].Status)
	assert.Empty(t, results[0].Error)
}

func TestChecker_CriticalFailureDegrades(t *testing.T) {
	failing := Database(pingerFunc(func(context.Context) error { return errors.New("connection refused") }))
	optional := Probe{Name: "smtp", Check: func(context.Context) error { return nil }}

	healthy, results := NewChecker(time.Second, failing, optional).Run(context.Background())
	assert.False(t, healthy)
	require.Len(t, results, 2)
	assert.Equal(t, StatusDown, results[0].Status)
	assert.Contains(t, results[0].Error, "connection refused")
	assert.Equal(t, StatusUp, results[1].Status)
}

func TestChecker_OptionalFailureStaysHealthy(t *testing.T) {
	optional := Probe{Name: "leetcode", Check: func(context.Context) error { return errors.New("boom") }}

	healthy, results := NewChecker(time.Second, optional).Run(context.Background())
	assert.True(t, healthy)
	assert.Equal(t, StatusDown, results[0].Status)
}

func TestChecker_ProbeTimeout(t *testing.T) {
	slow := Database(pingerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))

	start := time.Now()
	healthy, results := NewChecker(50*time.Millisecond, slow).Run(context.Background())

	assert.False(t, healthy)
	assert.Less(t, time.Since(start), time.Second)
	assert.Contains(t, results[0].Error, context.DeadlineExceeded.Error())
}

func TestHTTPProbe(t *testing.T) {
	status := http.StatusOK
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(status)
	}))
	defer srv.Close()

	probe := HTTP("leetcode", srv.URL, time.Second)
	assert.NoError(t, probe.Check(context.Background()))

	status = http.StatusServiceUnavailable
	assert.Error(t, probe.Check(context.Background()))
}

func TestResolverProbe_Localhost(t *testing.T) {
	assert.NoError(t, Resolver("smtp", "localhost").Check(context.Background()))
}
