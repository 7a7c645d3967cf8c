package repository

import "github.com/gestion-almacenes/almacenes-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByUsername(username string) (*entity.User, error)
}
