package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"lingua/internal/models/db_models"
	"lingua/internal/models/request_models"
	"lingua/internal/models/response_models"
	"lingua/internal/repositories"
	"lingua/pkg/logger"
	"lingua/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountLoginResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenManager
	log         *logger.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenManager, log *logger.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		log:         log.With("service", "AccountService"),
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {

	startTime := time.Now()

	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(account.ID, account.Email)
	if err != nil {
		return nil, err
	}

	a.log.Debug("login", "account_id", account.ID, "duration_ms", time.Since(startTime).Milliseconds())

	return loginResponse(token, account), nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountLoginResponse, error) {

	email := normalizeEmail(request.Email)
	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	newAccount := &db_models.Account{
		Name:         strings.TrimSpace(request.Name),
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		if errors.Is(err, utils.ErrEmailAlreadyExists) {
			return nil, utils.ErrEmailAlreadyExists
		}
		a.log.Error("failed to insert account", "error", err)
		return nil, utils.ErrDatabaseError
	}

	token, err := a.tokens.CreateToken(newAccount.ID, newAccount.Email)
	if err != nil {
		return nil, err
	}

	a.log.Info("account created", "account_id", newAccount.ID)
	return loginResponse(token, newAccount), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func loginResponse(token string, account *db_models.Account) *response_models.AccountLoginResponse {
	return &response_models.AccountLoginResponse{
		Token: token,
		User: response_models.AccountResponse{
			ID:    account.ID.String(),
			Name:  account.Name,
			Email: account.Email,
		},
	}
}
