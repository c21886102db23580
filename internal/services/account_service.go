package services

import (
	"context"
	"log"

	"wanderwise/internal/models/db_models"
	"wanderwise/internal/models/request_models"
	"wanderwise/internal/models/response_models"
	"wanderwise/internal/repositories"
	"wanderwise/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.RegisteredAccount, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResult, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

func (s *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.RegisteredAccount, error) {
	existing, err := s.accountRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		log.Printf("Error checking account email: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyUsed
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return nil, utils.ErrInvalidInput
	}

	account := &db_models.Account{
		Email:        request.Email,
		PasswordHash: hash,
		DisplayName:  request.DisplayName,
	}

	id, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		log.Printf("Error creating account: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.RegisteredAccount{
		ID:          id.String(),
		Email:       account.Email,
		DisplayName: account.DisplayName,
	}, nil
}

func (s *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResult, error) {
	account, err := s.accountRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		log.Printf("Error fetching account: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		log.Printf("Error creating token: %v", err)
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResult{
		Token:       token,
		DisplayName: account.DisplayName,
	}, nil
}
