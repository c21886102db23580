package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderwise/internal/models/db_models"
	"wanderwise/internal/models/request_models"
	"wanderwise/pkg/utils"
)

type fakeAccountRepo struct {
	accounts map[string]db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]db_models.Account)}
}

func (f *fakeAccountRepo) Create(ctx context.Context, account *db_models.Account) (uuid.UUID, error) {
	account.ID = uuid.New()
	f.accounts[account.Email] = *account
	return account.ID, nil
}

func (f *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	account, ok := f.accounts[email]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

func TestRegisterAndLogin(t *testing.T) {
	service := NewAccountService(newFakeAccountRepo())

	registered, err := service.Register(context.Background(), request_models.RegisterRequest{
		Email:       "ada@example.com",
		Password:    "correct horse",
		DisplayName: "Ada",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.ID)
	assert.Equal(t, "Ada", registered.DisplayName)

	result, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := NewAccountService(newFakeAccountRepo())

	request := request_models.RegisterRequest{
		Email:       "ada@example.com",
		Password:    "correct horse",
		DisplayName: "Ada",
	}
	_, err := service.Register(context.Background(), request)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), request)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyUsed)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	service := NewAccountService(newFakeAccountRepo())

	_, err := service.Register(context.Background(), request_models.RegisterRequest{
		Email:       "ada@example.com",
		Password:    "correct horse",
		DisplayName: "Ada",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), request_models.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong horse",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = service.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct horse",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}
