package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	sentinel := E(Duplicate, "email already exists")

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"plain error is internal", errors.New("boom"), Internal},
		{"direct", sentinel, Duplicate},
		{"wrapped", fmt.Errorf("register: %w", sentinel), Duplicate},
		{"with cause", Wrap(Dependency, "leetcode unavailable", errors.New("timeout")), Dependency},
		{"nil", nil, Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestMessageHidesInternalCauses(t *testing.T) {
	assert.Equal(t, "Internal server error", Message(errors.New("pq: connection refused")))
	assert.Equal(t, "Internal server error", Message(Wrap(Internal, "saving account", errors.New("disk full"))))
	assert.Equal(t, "Already applied", Message(fmt.Errorf("apply: %w", E(Duplicate, "Already applied"))))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Status(Validation))
	assert.Equal(t, http.StatusBadRequest, Status(Duplicate))
	assert.Equal(t, http.StatusUnauthorized, Status(Unauthorized))
	assert.Equal(t, http.StatusForbidden, Status(Forbidden))
	assert.Equal(t, http.StatusNotFound, Status(NotFound))
	assert.Equal(t, http.StatusBadGateway, Status(Dependency))
	assert.Equal(t, http.StatusInternalServerError, Status(Internal))
}

func TestErrorsIsMatchesSentinel(t *testing.T) {
	sentinel := E(Forbidden, "admin accounts cannot be deleted")
	err := fmt.Errorf("delete account 1: %w", sentinel)

	assert.True(t, errors.Is(err, sentinel))
	assert.False(t, errors.Is(err, E(Forbidden, "admin accounts cannot be deleted")))
}
