package repository

import (
	"medcore-clinic/internal/domain/entity"
	domainRepo "medcore-clinic/internal/domain/repository"
)

// userRepository serves the fixed stub user set. Read-only after
// construction, no locking needed.
type userRepository struct {
	users []entity.User
}

func NewUserRepository(users []entity.User) domainRepo.UserRepository {
	return &userRepository{users: users}
}

func (r *userRepository) FindByID(id string) (*entity.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepository) FindAll() ([]entity.User, error) {
	out := make([]entity.User, len(r.users))
	copy(out, r.users)
	return out, nil
}
