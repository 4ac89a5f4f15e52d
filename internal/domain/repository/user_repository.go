package repository

import (
	"medcore-clinic/internal/domain/entity"
)

// UserRepository is the fixed stub user lookup backing role login
type UserRepository interface {
	FindByID(id string) (*entity.User, error)
	FindAll() ([]entity.User, error)
}
