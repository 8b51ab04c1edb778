package dto

import (
	"jobport/internal/domain/company"
	"jobport/internal/domain/user"
)

type AuthData struct {
	Token   string           `json:"token"`
	User    user.User        `json:"user"`
	Company *company.Company `json:"company,omitempty"`
}

type MeData struct {
	User    user.User        `json:"user"`
	Company *company.Company `json:"company,omitempty"`
}
