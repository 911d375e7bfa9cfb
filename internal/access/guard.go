// Package access decides whether an authenticated principal may perform an
// operation: first by role against the policy table, then, for owned
// resources, by comparing the owning profile id with the caller's.
package access

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/innovate-connect/innovate/internal/errs"
	"github.com/innovate-connect/innovate/internal/types"
)

//go:embed model.conf
var modelContent string

const (
	ResourceInternship     = "internship"
	ResourceApplication    = "application"
	ResourceIdea           = "idea"
	ResourceStudentProfile = "student_profile"
	ResourceCompanyProfile = "company_profile"
	ResourceAdmin          = "admin"
)

const (
	ActionManage = "manage"
	ActionApply  = "apply"
	ActionList   = "list"
	ActionReview = "review"
)

var (
	ErrForbidden    = errs.NewForbidden("Access denied")
	ErrNotOwner     = errs.NewForbidden("Not authorized")
	ErrRoleMismatch = errs.NewForbidden("Profile not available for this role")
)

// policies is the role permission table. Read-only listings are not here:
// any authenticated principal may browse them.
var policies = [][]string{
	{string(types.RoleStudent), ResourceApplication, ActionApply},
	{string(types.RoleStudent), ResourceApplication, ActionList},
	{string(types.RoleStudent), ResourceIdea, ActionManage},
	{string(types.RoleStudent), ResourceStudentProfile, ActionManage},

	{string(types.RoleCompany), ResourceInternship, ActionManage},
	{string(types.RoleCompany), ResourceApplication, ActionReview},
	{string(types.RoleCompany), ResourceCompanyProfile, ActionManage},

	{string(types.RoleAdmin), ResourceAdmin, "*"},
}

// ProfileLookup resolves an account id to its role profile id.
type ProfileLookup interface {
	StudentProfileIDByAccount(ctx context.Context, accountID uint) (uint, error)
	CompanyProfileIDByAccount(ctx context.Context, accountID uint) (uint, error)
}

type Guard struct {
	enforcer *casbin.SyncedEnforcer
	profiles ProfileLookup
}

func NewGuard(profiles ProfileLookup) (*Guard, error) {
	m, err := model.NewModelFromString(modelContent)

	if err != nil {
		return nil, fmt.Errorf("parse access model: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m)

	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}

	if _, err := enforcer.AddPolicies(policies); err != nil {
		return nil, fmt.Errorf("load policies: %w", err)
	}

	return &Guard{enforcer: enforcer, profiles: profiles}, nil
}

// Authorize returns ErrForbidden unless the principal's role grants action on
// resource.
func (g *Guard) Authorize(p Principal, resource, action string) error {
	if !p.Role.Valid() {
		return ErrForbidden
	}

	ok, err := g.enforcer.Enforce(string(p.Role), resource, action)

	if err != nil {
		return fmt.Errorf("evaluating policy: %w", err)
	}

	if !ok {
		return ErrForbidden
	}

	return nil
}

func (g *Guard) StudentProfileID(ctx context.Context, p Principal) (uint, error) {
	if p.Role != types.RoleStudent {
		return 0, ErrRoleMismatch
	}

	return g.profiles.StudentProfileIDByAccount(ctx, p.AccountID)
}

func (g *Guard) CompanyProfileID(ctx context.Context, p Principal) (uint, error) {
	if p.Role != types.RoleCompany {
		return 0, ErrRoleMismatch
	}

	return g.profiles.CompanyProfileIDByAccount(ctx, p.AccountID)
}

// RequireOwner fails with a Forbidden error when the resource is owned by a
// different profile than the caller's.
func RequireOwner(ownerProfileID, callerProfileID uint) error {
	if ownerProfileID == 0 || ownerProfileID != callerProfileID {
		return ErrNotOwner
	}

	return nil
}
