package repository

import (
	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	FindByUsername(username string) (*entity.User, error)
	FindByUsernameOrEmail(username, email string) (*entity.User, error)
}
