package repository

import (
	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID, optionally preloading relations
	FindByID(id uint64, preload ...string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// TodoRepository defines the interface for todo data access
type TodoRepository interface {
	// Create creates a new todo
	Create(todo *models.Todo) error

	// FindByID finds a todo by ID
	FindByID(id uint64) (*models.Todo, error)

	// ListByUserID retrieves a page of todos owned by the given user
	ListByUserID(userID uint64, params utils.PaginationParams) ([]models.Todo, error)

	// Update updates a todo
	Update(todo *models.Todo) error

	// Delete permanently deletes a todo
	Delete(id uint64) error
}
