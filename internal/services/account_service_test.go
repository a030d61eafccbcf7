package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskly/internal/models/request_models"
	"taskly/pkg/utils"
)

func TestCreateAccountAndLogin(t *testing.T) {
	repo := newFakeUserRepo(nil)
	svc := NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Taylor",
		Email:       "taylor@example.com",
		Password:    "hunter2hunter2",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.user)
	assert.NotEqual(t, "hunter2hunter2", repo.user.PasswordHash, "password is never stored in clear")
	assert.Equal(t, 1, repo.ensured, "new accounts get the default subscription payload")

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "taylor@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo(nil)
	svc := NewAccountService(repo)

	req := request_models.SignUpRequest{
		DisplayName: "Taylor",
		Email:       "taylor@example.com",
		Password:    "hunter2hunter2",
	}
	require.NoError(t, svc.CreateAccount(context.Background(), req))

	err := svc.CreateAccount(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLoginFailures(t *testing.T) {
	repo := newFakeUserRepo(nil)
	svc := NewAccountService(repo)

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)

	require.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Taylor",
		Email:       "taylor@example.com",
		Password:    "hunter2hunter2",
	}))

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "taylor@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}
