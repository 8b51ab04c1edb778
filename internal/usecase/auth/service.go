package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"jobport/internal/domain/company"
	"jobport/internal/domain/user"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string

	// Company profile fields, honored only when Role is COMPANY.
	CompanyName        string
	CompanyDescription string
	Website            string
}

type LoginInput struct {
	Email    string
	Password string
	// Role, when provided, must match the stored account role. A mismatch
	// fails exactly like a wrong password.
	Role string
}

type Account struct {
	User    user.User
	Company *company.Company
}

type Service struct {
	users     user.Repository
	companies company.Repository
}

func NewService(users user.Repository, companies company.Repository) *Service {
	return &Service{users: users, companies: companies}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Account, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" || email == "" {
		return Account{}, ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return Account{}, ErrInvalidInput
	}

	role := user.RoleApplicant
	if strings.TrimSpace(in.Role) != "" {
		r, ok := user.ParseRole(strings.TrimSpace(in.Role))
		if !ok {
			return Account{}, ErrInvalidInput
		}
		role = r
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return Account{}, ErrInternal
	}
	if exists {
		return Account{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := s.users.Create(ctx, u); err != nil {
		// The unique constraint on users.email backstops the pre-check
		// against concurrent registrations.
		if errors.Is(err, user.ErrEmailTaken) {
			return Account{}, ErrEmailAlreadyRegistered
		}
		return Account{}, ErrInternal
	}

	acc := Account{User: sanitizeUser(u)}

	if role == user.RoleCompany && strings.TrimSpace(in.CompanyName) != "" {
		c := company.Company{
			ID:          uuid.New(),
			Name:        strings.TrimSpace(in.CompanyName),
			Description: strings.TrimSpace(in.CompanyDescription),
			Website:     strings.TrimSpace(in.Website),
			UserID:      u.ID,
		}
		if err := s.companies.Create(ctx, c); err != nil {
			return Account{}, ErrInternal
		}
		acc.Company = &c
	}

	return acc, nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (Account, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return Account{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Account{}, ErrInvalidCredentials
		}
		return Account{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return Account{}, ErrInvalidCredentials
	}

	if r := strings.TrimSpace(in.Role); r != "" && u.Role != user.Role(r) {
		return Account{}, ErrInvalidCredentials
	}

	return s.accountFor(ctx, u)
}

// Me resolves the authenticated user's account, including the company
// profile when one exists.
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (Account, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Account{}, ErrInvalidCredentials
		}
		return Account{}, ErrInternal
	}
	return s.accountFor(ctx, u)
}

func (s *Service) accountFor(ctx context.Context, u user.User) (Account, error) {
	acc := Account{User: sanitizeUser(u)}
	if u.Role == user.RoleCompany {
		c, err := s.companies.GetByUserID(ctx, u.ID)
		if err == nil {
			acc.Company = &c
		} else if !errors.Is(err, company.ErrNotFound) {
			return Account{}, ErrInternal
		}
	}
	return acc, nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
