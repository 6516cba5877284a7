package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfig(t *testing.T) {
	tests := []struct {
		name       string
		bcryptCost string
		pepper     string
		wantCost   int
		wantErr    bool
	}{
		{name: "default cost", bcryptCost: "", wantCost: 12},
		{name: "valid cost", bcryptCost: "10", wantCost: 10},
		{name: "with pepper", bcryptCost: "12", pepper: "test-pepper", wantCost: 12},
		{name: "cost too low", bcryptCost: "9", wantErr: true},
		{name: "cost too high", bcryptCost: "15", wantErr: true},
		{name: "invalid cost", bcryptCost: "invalid", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.bcryptCost)
			t.Setenv("PASSWORD_PEPPER", tt.pepper)

			cfg, err := NewPasswordConfig()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cfg.BcryptCost)
			assert.Equal(t, tt.pepper, cfg.Pepper)
		})
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, cfg.VerifyPassword("hunter2", hash))
	assert.False(t, cfg.VerifyPassword("wrong", hash))
}

func TestVerifyPassword_PepperMismatch(t *testing.T) {
	withPepper := &PasswordConfig{BcryptCost: 10, Pepper: "pepper"}
	withoutPepper := &PasswordConfig{BcryptCost: 10}

	hash, err := withPepper.HashPassword("hunter2")
	require.NoError(t, err)

	assert.True(t, withPepper.VerifyPassword("hunter2", hash))
	assert.False(t, withoutPepper.VerifyPassword("hunter2", hash))
}

func TestVerifyPassword_InvalidHash(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}
	assert.False(t, cfg.VerifyPassword("hunter2", "not-a-bcrypt-hash"))
}
