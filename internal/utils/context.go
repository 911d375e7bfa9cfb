package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/innovate-connect/innovate/internal/access"
	"github.com/innovate-connect/innovate/internal/errs"
	"github.com/innovate-connect/innovate/internal/types"
)

var ErrNotAuthenticated = errs.NewUnauthorized("User not authenticated")

func GetPrincipal(ctx *gin.Context) (access.Principal, error) {
	value, exists := ctx.Get(types.ContextPrincipalKey)

	if !exists {
		return access.Principal{}, ErrNotAuthenticated
	}

	principal, ok := value.(access.Principal)

	if !ok {
		return access.Principal{}, errors.New("invalid principal type in context")
	}

	return principal, nil
}

// ParseID reads a positive integer path parameter.
func ParseID(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 64)

	if err != nil || id == 0 {
		return 0, errs.NewValidation("Invalid " + name)
	}

	return uint(id), nil
}

// StudentProfileID resolves the caller's student profile once per request.
func StudentProfileID(ctx *gin.Context, guard *access.Guard) (uint, error) {
	return cachedProfileID(ctx, func(p access.Principal) (uint, error) {
		return guard.StudentProfileID(ctx.Request.Context(), p)
	})
}

// CompanyProfileID resolves the caller's company profile once per request.
func CompanyProfileID(ctx *gin.Context, guard *access.Guard) (uint, error) {
	return cachedProfileID(ctx, func(p access.Principal) (uint, error) {
		return guard.CompanyProfileID(ctx.Request.Context(), p)
	})
}

func cachedProfileID(ctx *gin.Context, lookup func(access.Principal) (uint, error)) (uint, error) {
	if id, ok := ctx.Get(types.ContextProfileKey); ok {
		if profileID, ok := id.(uint); ok {
			return profileID, nil
		}
	}

	principal, err := GetPrincipal(ctx)

	if err != nil {
		return 0, err
	}

	profileID, err := lookup(principal)

	if err != nil {
		return 0, err
	}

	ctx.Set(types.ContextProfileKey, profileID)

	return profileID, nil
}
