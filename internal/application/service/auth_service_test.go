package service

import (
	"context"
	"testing"
	"time"

	infraRepo "github.com/facturio/facturio-api/internal/infrastructure/repository"
	"github.com/facturio/facturio-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(infraRepo.NewUserRepository(db), jwtManager)
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{
		FirstName: "Marie",
		LastName:  "Durand",
		Email:     "marie@example.com",
		Password:  "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", user.Password)

	out, err := svc.Login(ctx, &LoginInput{Email: "marie@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, user.ID, out.User.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Email: "marie@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginInput{Email: "marie@example.com", Password: "wrong"})
	assert.Error(t, err)

	_, err = svc.Login(ctx, &LoginInput{Email: "nobody@example.com", Password: "s3cret-pass"})
	assert.Error(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Email: "marie@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterInput{Email: "marie@example.com", Password: "other-pass"})
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Email: "marie@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	out, err := svc.Login(ctx, &LoginInput{Email: "marie@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, out.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.RefreshToken(ctx, "not-a-token")
	assert.Error(t, err)
}

func TestChangePassword(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{Email: "marie@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, &ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "wrong",
		NewPassword:     "new-pass",
	})
	assert.Error(t, err)

	err = svc.ChangePassword(ctx, &ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "s3cret-pass",
		NewPassword:     "new-pass",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginInput{Email: "marie@example.com", Password: "new-pass"})
	assert.NoError(t, err)
}
