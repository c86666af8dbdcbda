package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"lingua/internal/models/db_models"
	"lingua/internal/models/request_models"
	"lingua/pkg/logger"
	"lingua/pkg/utils"
)

type fakeAccountRepo struct {
	byEmail   map[string]*db_models.Account
	insertErr error
}

func (f *fakeAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if f.byEmail == nil {
		f.byEmail = map[string]*db_models.Account{}
	}
	account.ID = uuid.New()
	f.byEmail[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) FindById(_ context.Context, id string) (*db_models.Account, error) {
	for _, a := range f.byEmail {
		if a.ID.String() == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	return f.byEmail[email], nil
}

func TestAccountRegisterAndLogin(t *testing.T) {
	tokens := utils.NewTokenManager("account-secret", time.Minute)
	svc := NewAccountService(&fakeAccountRepo{}, tokens, logger.NewNop())
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, request_models.SignUpRequest{Name: " Ana ", Email: "Ana@Example.com ", Password: "secret1"})
	if err != nil {
		t.Fatalf("CreateAccount() error = %v", err)
	}
	if created.User.Email != "ana@example.com" || created.User.Name != "Ana" {
		t.Errorf("created user = %+v", created.User)
	}

	_, err = svc.CreateAccount(ctx, request_models.SignUpRequest{Name: "Ana", Email: "ana@example.com", Password: "secret2"})
	if !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Fatalf("duplicate CreateAccount() error = %v", err)
	}

	login, err := svc.Login(ctx, request_models.LoginRequest{Email: "ANA@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	claims, err := tokens.ValidateToken(login.Token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != created.User.ID || claims.Subject != created.User.ID {
		t.Errorf("claims = %+v, want user %s", claims, created.User.ID)
	}

	if _, err := svc.Login(ctx, request_models.LoginRequest{Email: "ana@example.com", Password: "wrong"}); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("Login() with wrong password error = %v", err)
	}
	if _, err := svc.Login(ctx, request_models.LoginRequest{Email: "bob@example.com", Password: "secret1"}); !errors.Is(err, utils.ErrAccountNotFound) {
		t.Errorf("Login() for unknown email error = %v", err)
	}
}

// A registration that loses the race on the unique email index still reports a conflict.
func TestCreateAccountUniqueViolation(t *testing.T) {
	tests := []struct {
		name      string
		insertErr error
		wantErr   error
	}{
		{"duplicate key", utils.ErrEmailAlreadyExists, utils.ErrEmailAlreadyExists},
		{"other failure", errors.New("connection refused"), utils.ErrDatabaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAccountRepo{insertErr: tt.insertErr}
			svc := NewAccountService(repo, utils.NewTokenManager("account-secret", time.Minute), logger.NewNop())

			_, err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CreateAccount() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
