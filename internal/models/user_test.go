package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid user",
			user: User{
				Username:     "alice",
				Email:        "alice@example.com",
				PasswordHash: "$2a$10$hash",
			},
			wantErr: false,
		},
		{
			name: "username with dots and dashes",
			user: User{
				Username:     "a.b-c_d",
				Email:        "abcd@example.com",
				PasswordHash: "$2a$10$hash",
			},
			wantErr: false,
		},
		{
			name: "missing username",
			user: User{
				Email:        "alice@example.com",
				PasswordHash: "$2a$10$hash",
			},
			wantErr: true,
			errMsg:  "username is required",
		},
		{
			name: "username too short",
			user: User{
				Username:     "ab",
				Email:        "ab@example.com",
				PasswordHash: "$2a$10$hash",
			},
			wantErr: true,
			errMsg:  "username must be 3-150 characters",
		},
		{
			name: "username with spaces",
			user: User{
				Username:     "alice smith",
				Email:        "alice@example.com",
				PasswordHash: "$2a$10$hash",
			},
			wantErr: true,
			errMsg:  "username must be 3-150 characters",
		},
		{
			name: "username too long",
			user: User{
				Username:     strings.Repeat("a", 151),
				Email:        "long@example.com",
				PasswordHash: "$2a$10$hash",
			},
			wantErr: true,
			errMsg:  "username must be 3-150 characters",
		},
		{
			name: "missing email",
			user: User{
				Username:     "alice",
				PasswordHash: "$2a$10$hash",
			},
			wantErr: true,
			errMsg:  "email is required",
		},
		{
			name: "invalid email format",
			user: User{
				Username:     "alice",
				Email:        "not-an-email",
				PasswordHash: "$2a$10$hash",
			},
			wantErr: true,
			errMsg:  "invalid email format",
		},
		{
			name: "missing password hash",
			user: User{
				Username: "alice",
				Email:    "alice@example.com",
			},
			wantErr: true,
			errMsg:  "password hash is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
