package health

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Database fails when the connection pool cannot reach the server.
func Database(db Pinger) Probe {
	return Probe{
		Name:     "database",
		Critical: true,
		Check: func(ctx context.Context) error {
			if err := db.PingContext(ctx); err != nil {
				return fmt.Errorf("failed to ping database: %w", err)
			}
			return nil
		},
	}
}

// Resolver fails when host has no A or AAAA records.
func Resolver(name, host string) Probe {
	return Probe{
		Name: name,
		Check: func(ctx context.Context) error {
			ips, err := net.DefaultResolver.LookupIPAddr(ctx, host)

			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", host, err)
			}

			if len(ips) == 0 {
				return fmt.Errorf("no address records found for %s", host)
			}

			return nil
		},
	}
}

// HTTP fails on transport errors and 5xx answers. Any other status counts as
// reachable.
func HTTP(name, url string, timeout time.Duration) Probe {
	client := &http.Client{Timeout: timeout}

	return Probe{
		Name: name,
		Check: func(ctx context.Context) error {
			req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)

			if err != nil {
				return err
			}

			resp, err := client.Do(req)

			if err != nil {
				return err
			}

			defer resp.Body.Close()

			if resp.StatusCode >= http.StatusInternalServerError {
				return errors.New("unexpected status code: " + resp.Status)
			}

			return nil
		},
	}
}
