package auth

import (
	"context"
	"errors"
	"sync"
	"testing"

	"jobport/internal/domain/company"
	"jobport/internal/domain/user"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]user.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

type fakeCompanyRepo struct {
	mu        sync.Mutex
	companies map[uuid.UUID]company.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[uuid.UUID]company.Company{}}
}

func (f *fakeCompanyRepo) Create(_ context.Context, c company.Company) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id uuid.UUID) (company.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.companies[id]
	if !ok {
		return company.Company{}, company.ErrNotFound
	}
	return c, nil
}

func (f *fakeCompanyRepo) GetByUserID(_ context.Context, userID uuid.UUID) (company.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.companies {
		if c.UserID == userID {
			return c, nil
		}
	}
	return company.Company{}, company.ErrNotFound
}

func (f *fakeCompanyRepo) Update(_ context.Context, id uuid.UUID, upd company.ProfileUpdate) (company.Company, error) {
	return company.Company{}, company.ErrNotFound
}

func (f *fakeCompanyRepo) ListWithJobCounts(_ context.Context) ([]company.Summary, error) {
	return nil, nil
}

func (f *fakeCompanyRepo) Stats(_ context.Context, _ uuid.UUID) (company.DashboardStats, error) {
	return company.DashboardStats{}, nil
}

func newService() (*Service, *fakeUserRepo, *fakeCompanyRepo) {
	users := newFakeUserRepo()
	companies := newFakeCompanyRepo()
	return NewService(users, companies), users, companies
}

func TestRegisterApplicant(t *testing.T) {
	svc, users, _ := newService()

	acc, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Bob",
		Email:    "  Bob@Example.COM ",
		Password: "secret-pass",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if acc.User.Role != user.RoleApplicant {
		t.Errorf("role = %q, want APPLICANT default", acc.User.Role)
	}
	if acc.User.Email != "bob@example.com" {
		t.Errorf("email = %q, want normalized lowercase", acc.User.Email)
	}
	if acc.User.PasswordHash != "" {
		t.Errorf("password hash leaked in account")
	}
	if acc.Company != nil {
		t.Errorf("applicant account has company profile")
	}

	stored, err := users.GetByEmail(context.Background(), "bob@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if stored.PasswordHash == "" || stored.PasswordHash == "secret-pass" {
		t.Errorf("stored password not hashed")
	}
}

func TestRegisterCompanyCreatesProfile(t *testing.T) {
	svc, _, companies := newService()

	acc, err := svc.Register(context.Background(), RegisterInput{
		Name:        "Alice",
		Email:       "alice@acme.test",
		Password:    "secret-pass",
		Role:        "COMPANY",
		CompanyName: "Acme Corp",
		Website:     "https://acme.test",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if acc.Company == nil {
		t.Fatalf("company account missing profile")
	}
	if acc.Company.Name != "Acme Corp" || acc.Company.UserID != acc.User.ID {
		t.Errorf("company profile = %+v", acc.Company)
	}

	if _, err := companies.GetByUserID(context.Background(), acc.User.ID); err != nil {
		t.Errorf("profile not persisted: %v", err)
	}
}

func TestRegisterCompanyWithoutName(t *testing.T) {
	svc, _, _ := newService()

	acc, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Alice",
		Email:    "alice@acme.test",
		Password: "secret-pass",
		Role:     "COMPANY",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if acc.Company != nil {
		t.Errorf("profile created without a company name")
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newService()

	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"missing name", RegisterInput{Email: "a@b.test", Password: "secret-pass"}},
		{"missing email", RegisterInput{Name: "A", Password: "secret-pass"}},
		{"short password", RegisterInput{Name: "A", Email: "a@b.test", Password: "short"}},
		{"unknown role", RegisterInput{Name: "A", Email: "a@b.test", Password: "secret-pass", Role: "WIZARD"}},
	}
	for _, tc := range cases {
		if _, err := svc.Register(context.Background(), tc.in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: err = %v, want ErrInvalidInput", tc.name, err)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newService()

	in := RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "secret-pass"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	in.Email = "BOB@example.com"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("err = %v, want ErrEmailAlreadyRegistered", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _, _ := newService()

	if _, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "secret-pass",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	acc, err := svc.Login(context.Background(), LoginInput{
		Email:    "Bob@Example.com",
		Password: "secret-pass",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if acc.User.Email != "bob@example.com" {
		t.Errorf("email = %q", acc.User.Email)
	}
	if acc.User.PasswordHash != "" {
		t.Errorf("password hash leaked in account")
	}
}

// Wrong password, unknown email and role mismatch are indistinguishable to
// the caller.
func TestLoginFailuresAreUniform(t *testing.T) {
	svc, _, _ := newService()

	if _, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "secret-pass",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	cases := []struct {
		name string
		in   LoginInput
	}{
		{"wrong password", LoginInput{Email: "bob@example.com", Password: "wrong-pass"}},
		{"unknown email", LoginInput{Email: "nobody@example.com", Password: "secret-pass"}},
		{"role mismatch", LoginInput{Email: "bob@example.com", Password: "secret-pass", Role: "COMPANY"}},
		{"empty password", LoginInput{Email: "bob@example.com"}},
	}
	for _, tc := range cases {
		if _, err := svc.Login(context.Background(), tc.in); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("%s: err = %v, want ErrInvalidCredentials", tc.name, err)
		}
	}
}

func TestMeIncludesCompanyProfile(t *testing.T) {
	svc, _, _ := newService()

	reg, err := svc.Register(context.Background(), RegisterInput{
		Name:        "Alice",
		Email:       "alice@acme.test",
		Password:    "secret-pass",
		Role:        "COMPANY",
		CompanyName: "Acme Corp",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	acc, err := svc.Me(context.Background(), reg.User.ID)
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if acc.Company == nil || acc.Company.Name != "Acme Corp" {
		t.Errorf("company = %+v, want Acme Corp profile", acc.Company)
	}
}

func TestMeUnknownUser(t *testing.T) {
	svc, _, _ := newService()

	if _, err := svc.Me(context.Background(), uuid.New()); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}
