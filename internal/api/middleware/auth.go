package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	"github.com/m04kA/SMC-BarbershopService/internal/service/auth"
	"github.com/m04kA/SMC-BarbershopService/internal/service/auth/models"
)

const (
	msgMissingToken = "требуется авторизация"
	msgInvalidToken = "недействительный или просроченный токен"

	bearerPrefix = "Bearer "

	// tokenQueryParam используется WebSocket клиентами, которые не могут передать заголовок
	tokenQueryParam = "token"
)

type contextKey string

const adminContextKey contextKey = "admin"

// TokenValidator проверяет токен администратора
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*models.AdminIdentity, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth пропускает запрос только с действительным токеном администратора
// и кладёт его идентичность в контекст
func AdminAuth(validator TokenValidator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				logger.Warn("%s %s - Missing admin token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			admin, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				if errors.Is(err, auth.ErrInvalidToken) {
					logger.Warn("%s %s - Invalid admin token: %v", r.Method, r.URL.Path, err)
					handlers.RespondUnauthorized(w, msgInvalidToken)
					return
				}
				logger.Error("%s %s - Failed to validate token: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}

			ctx := context.WithValue(r.Context(), adminContextKey, *admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdmin извлекает администратора из контекста
func GetAdmin(ctx context.Context) (models.AdminIdentity, bool) {
	admin, ok := ctx.Value(adminContextKey).(models.AdminIdentity)
	return admin, ok
}

func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}
	return r.URL.Query().Get(tokenQueryParam)
}
