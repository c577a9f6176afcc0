package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	adminRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/admin"
	"github.com/m04kA/SMC-BarbershopService/internal/service/auth/models"
)

var validate = validator.New()

// claims содержимое токена администратора
type claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// Service сервис аутентификации администраторов
type Service struct {
	adminRepo    AdminRepository
	secret       []byte
	issuer       string
	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(adminRepo AdminRepository, secret, issuer string, ttl time.Duration, logger Logger) *Service {
	return &Service{
		adminRepo:    adminRepo,
		secret:       []byte(secret),
		issuer:       issuer,
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Login проверяет пароль активного администратора и выдаёт подписанный токен (HS256)
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := validate.Struct(req); err != nil {
		s.logger.Warn("Login: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	admin, err := s.adminRepo.GetActiveByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			s.logger.Warn("Login: no active admin for email=%s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for admin id=%s", admin.ID)
		return nil, ErrInvalidCredentials
	}

	now := s.timeProvider.Now()
	expiresAt := now.Add(s.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: admin.Email,
		StandardClaims: jwt.StandardClaims{
			Subject:   admin.ID.String(),
			Issuer:    s.issuer,
			IssuedAt:  now.Unix(),
			ExpiresAt: expiresAt.Unix(),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		s.logger.Error("Login: failed to sign token: %v", err)
		return nil, fmt.Errorf("%w: Login - sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: admin id=%s signed in", admin.ID)
	return &models.LoginResponse{
		Token:     signed,
		ExpiresAt: time.Unix(expiresAt.Unix(), 0).UTC(),
		AdminID:   admin.ID.String(),
		Email:     admin.Email,
	}, nil
}

// ValidateToken проверяет подпись и срок токена и то, что администратор всё ещё активен
func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*models.AdminIdentity, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		// Принимаем только HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if s.issuer != "" && !c.VerifyIssuer(s.issuer, true) {
		return nil, fmt.Errorf("%w: unexpected issuer %q", ErrInvalidToken, c.Issuer)
	}

	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: subject: %v", ErrInvalidToken, err)
	}

	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			return nil, fmt.Errorf("%w: admin id=%s not found", ErrInvalidToken, id)
		}
		s.logger.Error("ValidateToken: repository error: %v", err)
		return nil, fmt.Errorf("%w: ValidateToken - repository error: %v", ErrInternal, err)
	}
	if !admin.IsActive {
		s.logger.Warn("ValidateToken: admin id=%s is deactivated", id)
		return nil, fmt.Errorf("%w: admin id=%s is inactive", ErrInvalidToken, id)
	}

	return &models.AdminIdentity{ID: admin.ID, Email: admin.Email}, nil
}

// HashPassword возвращает bcrypt-хэш пароля для заведения администратора
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: empty password", ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: hash password: %v", ErrInternal, err)
	}
	return string(hash), nil
}
