package converter

import (
	"medcore-clinic/internal/delivery/dto"
	"medcore-clinic/internal/domain/entity"
)

// UserToResponse converts a stub User to its DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Initials:   user.Initials,
		Role:       string(user.Role),
		Department: user.Department,
	}
}

// UsersToResponses converts the user list
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}
