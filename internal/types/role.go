package types

import "strings"

type Role string

const (
	RoleStudent Role = "Student"
	RoleCompany Role = "Company"
	RoleAdmin   Role = "Admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleCompany, RoleAdmin:
		return true
	}
	return false
}

// ParseRole accepts any casing ("student", "COMPANY") and returns the canonical role.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "student":
		return RoleStudent, true
	case "company":
		return RoleCompany, true
	case "admin":
		return RoleAdmin, true
	}
	return "", false
}

type ApplicationStatus string

const (
	StatusApplied  ApplicationStatus = "Applied"
	StatusAccepted ApplicationStatus = "Accepted"
	StatusRejected ApplicationStatus = "Rejected"
)

func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "applied":
		return StatusApplied, true
	case "accepted":
		return StatusAccepted, true
	case "rejected":
		return StatusRejected, true
	}
	return "", false
}
