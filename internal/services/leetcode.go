package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/innovate-connect/innovate/internal/config"
	"github.com/innovate-connect/innovate/internal/errs"
	"github.com/innovate-connect/innovate/internal/types"
)

const leetCodeStatsQuery = `query userProblemsSolved($username: String!) {
  matchedUser(username: $username) {
    username
    submitStats: submitStatsGlobal {
      acSubmissionNum {
        difficulty
        count
      }
    }
    profile {
      ranking
    }
  }
}`

const userAgent = "Mozilla/5.0 (compatible; InnovateConnect/1.0)"

var leetCodeUsername = regexp.MustCompile(`^[A-Za-z0-9_-]{1,40}$`)

var (
	ErrLeetCodeUser        = errs.NewNotFound("User not found")
	ErrLeetCodeUnavailable = errs.E(errs.Dependency, "LeetCode is unavailable")
)

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type leetCodeResponse struct {
	Data struct {
		MatchedUser *struct {
			Username    string `json:"username"`
			SubmitStats struct {
				AcSubmissionNum []struct {
					Difficulty string `json:"difficulty"`
					Count      int    `json:"count"`
				} `json:"acSubmissionNum"`
			} `json:"submitStats"`
			Profile struct {
				Ranking int `json:"ranking"`
			} `json:"profile"`
		} `json:"matchedUser"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// StatsClient proxies the public LeetCode GraphQL endpoint.
type StatsClient struct {
	baseURL string
	client  *http.Client
}

func NewStatsClient(cfg config.LeetCodeConfig) *StatsClient {
	return &StatsClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *StatsClient) Stats(ctx context.Context, username string) (*types.LeetCodeStats, error) {
	username = strings.TrimSpace(username)

	if !leetCodeUsername.MatchString(username) {
		return nil, errs.NewValidation("Invalid username")
	}

	body, err := json.Marshal(graphQLRequest{
		Query:     leetCodeStatsQuery,
		Variables: map[string]any{"username": username},
	})

	if err != nil {
		return nil, fmt.Errorf("failed to marshal LeetCode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/graphql", bytes.NewReader(body))

	if err != nil {
		return nil, fmt.Errorf("failed to build LeetCode request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", c.baseURL+"/"+username)

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, errs.Wrap(errs.Dependency, ErrLeetCodeUnavailable.Message, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, errs.Wrap(errs.Dependency, ErrLeetCodeUnavailable.Message, fmt.Errorf("LeetCode returned status %d", resp.StatusCode))
	}

	var payload leetCodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errs.Wrap(errs.Dependency, ErrLeetCodeUnavailable.Message, err)
	}

	user := payload.Data.MatchedUser
	if len(payload.Errors) > 0 || user == nil {
		return nil, ErrLeetCodeUser
	}

	stats := &types.LeetCodeStats{
		Username: user.Username,
		Ranking:  user.Profile.Ranking,
	}

	for _, item := range user.SubmitStats.AcSubmissionNum {
		switch item.Difficulty {
		case "All":
			stats.TotalSolved = item.Count
		case "Easy":
			stats.EasySolved = item.Count
		case "Medium":
			stats.MediumSolved = item.Count
		case "Hard":
			stats.HardSolved = item.Count
		}
	}

	return stats, nil
}
