// Package authz holds the request authorization policy: a pure mapping from
// (actor, action) to a decision, checked before any domain operation runs.
// Ownership of individual records is enforced separately at the persistence
// boundary, by scoping mutations to the owning company and treating zero
// affected rows as not-found.
package authz

import (
	"errors"

	"jobport/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrWrongRole       = errors.New("wrong role")
)

// Actor is the authenticated identity behind a request. The zero value is
// the anonymous actor.
type Actor struct {
	UserID uuid.UUID
	Email  string
	Role   user.Role
}

func (a Actor) Authenticated() bool {
	return a.UserID != uuid.Nil
}

type Action string

const (
	ActionViewSelf             Action = "auth.me"
	ActionCreateJob            Action = "job.create"
	ActionUpdateJob            Action = "job.update"
	ActionDeleteJob            Action = "job.delete"
	ActionUpdateCompany        Action = "company.update"
	ActionViewCompanyStats     Action = "company.stats"
	ActionApply                Action = "application.apply"
	ActionViewOwnApps          Action = "application.list_own"
	ActionViewCompanyApps      Action = "application.list_company"
	ActionSetApplicationStatus Action = "application.set_status"
)

// requiredRoles maps each gated action to the roles allowed to perform it.
// Actions absent from the map are open to any authenticated actor.
var requiredRoles = map[Action][]user.Role{
	ActionCreateJob:            {user.RoleCompany},
	ActionUpdateJob:            {user.RoleCompany},
	ActionDeleteJob:            {user.RoleCompany},
	ActionUpdateCompany:        {user.RoleCompany},
	ActionViewCompanyStats:     {user.RoleCompany},
	ActionViewCompanyApps:      {user.RoleCompany},
	ActionSetApplicationStatus: {user.RoleCompany},
	ActionApply:                {user.RoleApplicant},
	ActionViewOwnApps:          {user.RoleApplicant},
}

// Authorize evaluates authentication before role membership, so an anonymous
// request is always reported as unauthenticated rather than wrong-role.
func Authorize(actor Actor, action Action) error {
	if !actor.Authenticated() {
		return ErrUnauthenticated
	}

	roles, gated := requiredRoles[action]
	if !gated {
		return nil
	}
	for _, r := range roles {
		if actor.Role == r {
			return nil
		}
	}
	return ErrWrongRole
}
