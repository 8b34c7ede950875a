package tests

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"zomighty/internal/auth"
	"zomighty/internal/domain"
	"zomighty/internal/mocks"
	"zomighty/internal/service"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name         string
		req          *domain.RegisterRequest
		prepareMocks func(users *mocks.UserRepository)
		expectedErr  error
	}{
		{
			name: "success",
			req:  &domain.RegisterRequest{Username: "prajwal", Email: "prajwal@test.com", Password: "password123"},
			prepareMocks: func(users *mocks.UserRepository) {
				users.On("UsernameExists", "prajwal").Return(false, nil).Once()
				users.On("EmailExists", "prajwal@test.com").Return(false, nil).Once()
				users.On("CreateUser", mock.AnythingOfType("*domain.User")).Return(nil).Once()
			},
		},
		{
			name: "missing fields",
			req:  &domain.RegisterRequest{Username: "prajwal"},
			prepareMocks: func(users *mocks.UserRepository) {
			},
			expectedErr: service.ErrValidation,
		},
		{
			name: "username taken",
			req:  &domain.RegisterRequest{Username: "prajwal", Email: "prajwal@test.com", Password: "password123"},
			prepareMocks: func(users *mocks.UserRepository) {
				users.On("UsernameExists", "prajwal").Return(true, nil).Once()
			},
			expectedErr: service.ErrConflict,
		},
		{
			name: "email registered",
			req:  &domain.RegisterRequest{Username: "prajwal", Email: "prajwal@test.com", Password: "password123"},
			prepareMocks: func(users *mocks.UserRepository) {
				users.On("UsernameExists", "prajwal").Return(false, nil).Once()
				users.On("EmailExists", "prajwal@test.com").Return(true, nil).Once()
			},
			expectedErr: service.ErrConflict,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			users := new(mocks.UserRepository)
			svc := service.NewAuthService(users)

			testCase.prepareMocks(users)

			err := svc.Register(testCase.req)

			if testCase.expectedErr != nil {
				assert.ErrorIs(t, err, testCase.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			users.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	users := new(mocks.UserRepository)
	svc := service.NewAuthService(users)

	users.On("UsernameExists", "prajwal").Return(false, nil).Once()
	users.On("EmailExists", "prajwal@test.com").Return(false, nil).Once()
	users.On("CreateUser", mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		user := args.Get(0).(*domain.User)
		assert.NotEqual(t, "password123", user.PasswordHash)
		assert.True(t, auth.CheckPassword(user.PasswordHash, "password123"))
	}).Return(nil).Once()

	err := svc.Register(&domain.RegisterRequest{
		Username: "prajwal",
		Email:    "prajwal@test.com",
		Password: "password123",
	})
	assert.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := auth.HashPassword("password123")
	assert.NoError(t, err)

	tests := []struct {
		name         string
		req          *domain.LoginRequest
		prepareMocks func(users *mocks.UserRepository)
		expectedErr  error
	}{
		{
			name: "success",
			req:  &domain.LoginRequest{Username: "prajwal", Password: "password123"},
			prepareMocks: func(users *mocks.UserRepository) {
				users.On("GetUserByUsername", "prajwal").
					Return(&domain.User{ID: 1, Username: "prajwal", PasswordHash: hash}, nil).Once()
			},
		},
		{
			name: "unknown user",
			req:  &domain.LoginRequest{Username: "ghost", Password: "password123"},
			prepareMocks: func(users *mocks.UserRepository) {
				users.On("GetUserByUsername", "ghost").Return(nil, sql.ErrNoRows).Once()
			},
			expectedErr: service.ErrUnauthorized,
		},
		{
			name: "wrong password",
			req:  &domain.LoginRequest{Username: "prajwal", Password: "nope"},
			prepareMocks: func(users *mocks.UserRepository) {
				users.On("GetUserByUsername", "prajwal").
					Return(&domain.User{ID: 1, Username: "prajwal", PasswordHash: hash}, nil).Once()
			},
			expectedErr: service.ErrUnauthorized,
		},
		{
			name: "missing password",
			req:  &domain.LoginRequest{Username: "prajwal"},
			prepareMocks: func(users *mocks.UserRepository) {
			},
			expectedErr: service.ErrValidation,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			users := new(mocks.UserRepository)
			svc := service.NewAuthService(users)

			testCase.prepareMocks(users)

			token, err := svc.Login(testCase.req)

			if testCase.expectedErr != nil {
				assert.ErrorIs(t, err, testCase.expectedErr)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)

				claims, err := auth.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, 1, claims.UserID)
			}
			users.AssertExpectations(t)
		})
	}
}
