package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarbershopService/pkg/psqlbuilder"
)

const tableName = "admin_users"

var adminColumns = []string{"id", "email", "password_hash", "is_active", "created_at"}

// Repository репозиторий администраторов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория администраторов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveByEmail ищет активного администратора по email (без учёта регистра)
func (r *Repository) GetActiveByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	return r.getOne(ctx, "GetActiveByEmail", squirrel.And{
		squirrel.Eq{"LOWER(email)": strings.ToLower(strings.TrimSpace(email))},
		squirrel.Eq{"is_active": true},
	})
}

// GetByID получает администратора по ID (в том числе неактивного)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminUser, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.AdminUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(adminColumns...).
		From(tableName).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var (
		admin     domain.AdminUser
		createdAt sql.NullTime
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.IsActive,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan admin: %v", ErrScanRow, op, err)
	}

	admin.CreatedAt = createdAt.Time
	return &admin, nil
}
