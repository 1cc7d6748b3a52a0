package services

import (
	"context"
	"log"

	"coursemap/internal/models/db_models"
	"coursemap/internal/models/request_models"
	"coursemap/internal/models/response_models"
	"coursemap/internal/repositories"
	"coursemap/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (string, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	GetSession(ctx context.Context, accountID string) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

// Register creates the account and signs the user straight in, returning a
// session token.
func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (string, error) {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		log.Printf("register lookup failed: %v", err)
		return "", utils.ErrDatabaseError
	}
	if existing != nil {
		return "", utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashed,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		log.Printf("register insert failed: %v", err)
		return "", utils.ErrDatabaseError
	}

	return utils.CreateToken(account.ID)
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		log.Printf("login lookup failed: %v", err)
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return utils.CreateToken(account.ID)
}

func (a *AccountService) GetSession(ctx context.Context, accountID string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		log.Printf("session lookup failed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return &response_models.AccountResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
	}, nil
}
