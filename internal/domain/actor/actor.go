package actor

import (
	"physio-scheduler/internal/pkg/errs"
)

var ErrInvalidRole = errs.New("invalid role")

type Role string

const (
	RoleClient   Role = "client"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleProvider, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", errs.MarkAll(errs.Newf("role %q", s), ErrInvalidRole, errs.ErrForbidden)
	}
	return role, nil
}

// Actor is the authenticated caller. For providers ID is the provider id.
type Actor struct {
	ID   int64
	Role Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// ActsForProvider reports whether a may manage the given provider's bookings and schedule.
func (a Actor) ActsForProvider(providerID int64) bool {
	return a.IsAdmin() || (a.Role == RoleProvider && a.ID == providerID)
}

// CanView reports whether a may read a booking between clientID and providerID.
func (a Actor) CanView(clientID, providerID int64) bool {
	if a.ActsForProvider(providerID) {
		return true
	}
	return a.Role == RoleClient && a.ID == clientID
}
