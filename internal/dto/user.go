package dto

import (
	"github.com/yukikurage/todo-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash is never
// part of any response shape.
type UserDTO struct {
	ID    uint64    `json:"id"`
	Email string    `json:"email"`
	Todos []TodoDTO `json:"todos"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:    user.ID,
		Email: user.Email,
		Todos: ToTodoDTOs(user.Todos),
	}
}
