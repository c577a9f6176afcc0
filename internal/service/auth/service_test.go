package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	adminRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/admin"
	"github.com/m04kA/SMC-BarbershopService/internal/service/auth/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type stubAdmins struct {
	admin *domain.AdminUser
}

func (s *stubAdmins) GetActiveByEmail(_ context.Context, email string) (*domain.AdminUser, error) {
	if s.admin == nil || !s.admin.IsActive || !strings.EqualFold(s.admin.Email, email) {
		return nil, adminRepo.ErrAdminNotFound
	}
	return s.admin, nil
}

func (s *stubAdmins) GetByID(_ context.Context, id uuid.UUID) (*domain.AdminUser, error) {
	if s.admin == nil || s.admin.ID != id {
		return nil, adminRepo.ErrAdminNotFound
	}
	return s.admin, nil
}

const (
	testSecret   = "test-secret"
	testPassword = "correct horse battery staple"
)

func newAdmins(t *testing.T) *stubAdmins {
	hash, err := HashPassword(testPassword)
	require.NoError(t, err)
	return &stubAdmins{admin: &domain.AdminUser{
		ID:           uuid.New(),
		Email:        "owner@barbershop.dk",
		PasswordHash: hash,
		IsActive:     true,
	}}
}

func TestService_LoginAndValidate(t *testing.T) {
	admins := newAdmins(t)
	svc := NewService(admins, testSecret, "barbershop", time.Hour, nopLogger{})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    " Owner@Barbershop.dk ",
		Password: testPassword,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, admins.admin.ID.String(), resp.AdminID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, 5*time.Second)

	identity, err := svc.ValidateToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admins.admin.ID, identity.ID)
	assert.Equal(t, admins.admin.Email, identity.Email)
}

func TestService_Login_Rejects(t *testing.T) {
	admins := newAdmins(t)
	svc := NewService(admins, testSecret, "barbershop", time.Hour, nopLogger{})

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "owner@barbershop.dk", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Email: "stranger@barbershop.dk", Password: testPassword})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Email: "not-an-email", Password: testPassword})
	assert.ErrorIs(t, err, ErrInvalidInput)

	admins.admin.IsActive = false
	_, err = svc.Login(context.Background(), &models.LoginRequest{Email: "owner@barbershop.dk", Password: testPassword})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_ValidateToken_Rejects(t *testing.T) {
	admins := newAdmins(t)
	svc := NewService(admins, testSecret, "barbershop", time.Hour, nopLogger{})

	login := func(t *testing.T, s *Service) string {
		resp, err := s.Login(context.Background(), &models.LoginRequest{Email: admins.admin.Email, Password: testPassword})
		require.NoError(t, err)
		return resp.Token
	}

	t.Run("мусор вместо токена", func(t *testing.T) {
		_, err := svc.ValidateToken(context.Background(), "not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("чужой секрет", func(t *testing.T) {
		other := NewService(admins, "other-secret", "barbershop", time.Hour, nopLogger{})
		_, err := svc.ValidateToken(context.Background(), login(t, other))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("просроченный токен", func(t *testing.T) {
		past := NewService(admins, testSecret, "barbershop", time.Hour, nopLogger{}).
			WithTimeProvider(fixedTime{now: time.Now().Add(-2 * time.Hour)})
		_, err := svc.ValidateToken(context.Background(), login(t, past))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("другой издатель", func(t *testing.T) {
		other := NewService(admins, testSecret, "someone-else", time.Hour, nopLogger{})
		_, err := svc.ValidateToken(context.Background(), login(t, other))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("алгоритм none", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, claims{
			StandardClaims: jwt.StandardClaims{Subject: admins.admin.ID.String(), Issuer: "barbershop"},
		})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateToken(context.Background(), signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("администратор отключён", func(t *testing.T) {
		token := login(t, svc)
		admins.admin.IsActive = false
		defer func() { admins.admin.IsActive = true }()

		_, err := svc.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestHashPassword(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrInvalidInput)

	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2"))
}
