package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aidosk/taskvault/internal/auth"
	"github.com/aidosk/taskvault/internal/domain"
	"github.com/aidosk/taskvault/internal/usecase"
)

// ---- fakes ----

type fakeUserRepo struct {
	create        func(ctx context.Context, name, email, passwordHash string) (*domain.User, error)
	findByEmail   func(ctx context.Context, email string) (*domain.User, error)
	findByID      func(ctx context.Context, id string) (*domain.User, error)
	updateProfile func(ctx context.Context, id, name, email string) (*domain.User, error)
}

func (r *fakeUserRepo) Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error) {
	return r.create(ctx, name, email, passwordHash)
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findByEmail(ctx, email)
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findByID(ctx, id)
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, id, name, email string) (*domain.User, error) {
	return r.updateProfile(ctx, id, name, email)
}

// ---- helpers ----

const testJWTKey = "test-jwt-secret-at-least-32-chars!!"

func newUsecase(repo *fakeUserRepo) *usecase.AuthUsecase {
	codec := auth.NewTokenCodec([]byte(testJWTKey), time.Hour)
	return usecase.NewAuthUsecase(repo, codec)
}

// ---- Signup ----

func TestSignup_StoresBcryptHashNotPlaintext(t *testing.T) {
	var storedHash string
	repo := &fakeUserRepo{
		create: func(_ context.Context, name, email, passwordHash string) (*domain.User, error) {
			storedHash = passwordHash
			return &domain.User{ID: "user-1", Name: name, Email: email, PasswordHash: passwordHash}, nil
		},
	}

	if _, err := newUsecase(repo).Signup(context.Background(), "Ann", "a@x.com", "secret1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if storedHash == "secret1" {
		t.Fatal("plaintext password was stored")
	}
	if !auth.VerifyPassword("secret1", storedHash) {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestSignup_LowercasesEmail(t *testing.T) {
	var storedEmail string
	repo := &fakeUserRepo{
		create: func(_ context.Context, _, email, _ string) (*domain.User, error) {
			storedEmail = email
			return &domain.User{ID: "user-1", Email: email}, nil
		},
	}

	if _, err := newUsecase(repo).Signup(context.Background(), "Ann", "Ann@X.Com", "secret1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if storedEmail != "ann@x.com" {
		t.Errorf("stored email = %q, want %q", storedEmail, "ann@x.com")
	}
}

func TestSignup_DuplicateEmail_Propagates(t *testing.T) {
	repo := &fakeUserRepo{
		create: func(_ context.Context, _, _, _ string) (*domain.User, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}

	_, err := newUsecase(repo).Signup(context.Background(), "Ann", "a@x.com", "secret1")
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Errorf("want ErrDuplicateEmail, got %v", err)
	}
}

// ---- Login ----

func TestLogin_UnknownEmail_ReturnsInvalidCredentials(t *testing.T) {
	repo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}

	_, err := newUsecase(repo).Login(context.Background(), "nobody@x.com", "secret1")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("want ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_WrongPassword_ReturnsInvalidCredentials(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return &domain.User{ID: "user-1", Email: "a@x.com", PasswordHash: hash}, nil
		},
	}

	_, err = newUsecase(repo).Login(context.Background(), "a@x.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("want ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_Success_ReturnsTokenForUser(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := &fakeUserRepo{
		findByEmail: func(_ context.Context, email string) (*domain.User, error) {
			if email != "a@x.com" {
				return nil, domain.ErrUserNotFound
			}
			return &domain.User{ID: "user-1", Email: email, PasswordHash: hash}, nil
		},
	}

	token, err := newUsecase(repo).Login(context.Background(), "A@x.com", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	codec := auth.NewTokenCodec([]byte(testJWTKey), time.Hour)
	subject, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("returned token does not verify: %v", err)
	}
	if subject != "user-1" {
		t.Errorf("subject = %q, want %q", subject, "user-1")
	}
}

func TestLogin_RepoError_Propagates(t *testing.T) {
	repoErr := errors.New("db down")
	repo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, repoErr
		},
	}

	_, err := newUsecase(repo).Login(context.Background(), "a@x.com", "secret1")
	if !errors.Is(err, repoErr) {
		t.Errorf("want wrapped repoErr, got %v", err)
	}
	if errors.Is(err, domain.ErrInvalidCredentials) {
		t.Error("store failure must not masquerade as bad credentials")
	}
}

// ---- Profile ----

func TestGetProfile_UserGone_ReturnsNotFound(t *testing.T) {
	repo := &fakeUserRepo{
		findByID: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}

	_, err := newUsecase(repo).GetProfile(context.Background(), "user-1")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("want ErrUserNotFound, got %v", err)
	}
}

func TestUpdateProfile_DuplicateEmail_Propagates(t *testing.T) {
	repo := &fakeUserRepo{
		updateProfile: func(_ context.Context, _, _, _ string) (*domain.User, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}

	_, err := newUsecase(repo).UpdateProfile(context.Background(), "user-1", "Ann", "taken@x.com")
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Errorf("want ErrDuplicateEmail, got %v", err)
	}
}

func TestUpdateProfile_LowercasesEmail(t *testing.T) {
	var gotEmail string
	repo := &fakeUserRepo{
		updateProfile: func(_ context.Context, _, _, email string) (*domain.User, error) {
			gotEmail = email
			return &domain.User{ID: "user-1", Email: email}, nil
		},
	}

	if _, err := newUsecase(repo).UpdateProfile(context.Background(), "user-1", "Ann", "New@X.Com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotEmail != "new@x.com" {
		t.Errorf("email = %q, want %q", gotEmail, "new@x.com")
	}
}
