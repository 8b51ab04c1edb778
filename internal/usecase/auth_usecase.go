package usecase

import (
	"context"
	"errors"

	"jobport/internal/pkg/jwt"
	ucauth "jobport/internal/usecase/auth"

	"github.com/google/uuid"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrInternal     = errors.New("internal error")
)

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (ucauth.Account, string, error)
	Login(ctx context.Context, in ucauth.LoginInput) (ucauth.Account, string, error)
	Me(ctx context.Context, userID uuid.UUID) (ucauth.Account, error)
}

type Auth struct {
	authSvc *ucauth.Service
	jwt     jwt.Service
}

func NewAuthUsecase(authSvc *ucauth.Service, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: authSvc, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (ucauth.Account, string, error) {
	acc, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return ucauth.Account{}, "", err
	}

	token, err := u.jwt.GenerateToken(acc.User.ID, acc.User.Email, string(acc.User.Role))
	if err != nil {
		return ucauth.Account{}, "", ErrInternal
	}
	return acc, token, nil
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (ucauth.Account, string, error) {
	acc, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return ucauth.Account{}, "", err
	}

	token, err := u.jwt.GenerateToken(acc.User.ID, acc.User.Email, string(acc.User.Role))
	if err != nil {
		return ucauth.Account{}, "", ErrInternal
	}
	return acc, token, nil
}

func (u *Auth) Me(ctx context.Context, userID uuid.UUID) (ucauth.Account, error) {
	return u.authSvc.Me(ctx, userID)
}
