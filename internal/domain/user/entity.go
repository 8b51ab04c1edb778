package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleApplicant Role = "APPLICANT"
	RoleCompany   Role = "COMPANY"
	RoleAdmin     Role = "ADMIN"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleApplicant, RoleCompany, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}
