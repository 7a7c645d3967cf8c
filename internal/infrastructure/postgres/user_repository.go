package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository implementación PostgreSQL del repositorio de usuarios.
type UserRepository struct {
	db Querier
}

// NewUserRepository acepta pool o transacción.
func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, name, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Username, user.PasswordHash, user.Name,
		user.Active, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insertar usuario: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByUsername(username string) (*entity.User, error) {
	query := `
		SELECT id, username, password_hash, name, active, created_at, updated_at
		FROM users
		WHERE username = $1`
	var u entity.User
	err := r.db.QueryRow(context.Background(), query, username).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.Active, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
