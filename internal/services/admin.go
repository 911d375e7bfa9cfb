package services

import (
	"context"

	"github.com/innovate-connect/innovate/internal/store"
	"github.com/innovate-connect/innovate/internal/types"
)

type AdminService struct {
	store *store.Store
}

func NewAdminService(st *store.Store) *AdminService {
	return &AdminService{store: st}
}

func (s *AdminService) Stats(ctx context.Context) (*types.StatsResponse, error) {
	var (
		stats types.StatsResponse
		err   error
	)

	if stats.TotalStudents, err = s.store.CountAccountsByRole(ctx, types.RoleStudent); err != nil {
		return nil, err
	}

	if stats.TotalCompanies, err = s.store.CountAccountsByRole(ctx, types.RoleCompany); err != nil {
		return nil, err
	}

	if stats.TotalIdeas, err = s.store.CountIdeas(ctx); err != nil {
		return nil, err
	}

	if stats.ActiveInternships, err = s.store.CountInternships(ctx); err != nil {
		return nil, err
	}

	return &stats, nil
}

// Accounts lists every account with the display name of its profile.
func (s *AdminService) Accounts(ctx context.Context) ([]types.AdminAccountResponse, error) {
	accounts, err := s.store.ListAccounts(ctx)

	if err != nil {
		return nil, err
	}

	names, err := s.store.ProfileNames(ctx)

	if err != nil {
		return nil, err
	}

	response := make([]types.AdminAccountResponse, 0, len(accounts))

	for _, account := range accounts {
		response = append(response, types.AdminAccountResponse{
			ID:          account.ID,
			Email:       account.Email,
			Role:        account.Role,
			CreatedAt:   account.CreatedAt,
			ProfileName: names[account.ID],
		})
	}

	return response, nil
}
