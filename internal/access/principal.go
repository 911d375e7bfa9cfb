package access

import (
	"log/slog"

	"github.com/innovate-connect/innovate/internal/types"
)

// Principal is the authenticated caller of a single request. It is built from
// verified token claims and never outlives the request.
type Principal struct {
	AccountID uint
	Email     string
	Role      types.Role
}

func (p Principal) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("account_id", uint64(p.AccountID)),
		slog.String("role", string(p.Role)),
	)
}
