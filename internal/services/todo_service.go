package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/repository"
	"github.com/yukikurage/todo-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrTodoNotFound       = errors.New("todo not found")
	ErrFailedToCreateTodo = errors.New("failed to create todo")
)

// TodoService handles todo business logic. Ownership of a specific todo
// is checked by the middleware layer before these methods run; list and
// create are scoped to the caller's user ID directly.
type TodoService struct {
	todoRepo repository.TodoRepository
}

// NewTodoService creates a new TodoService
func NewTodoService(todoRepo repository.TodoRepository) *TodoService {
	return &TodoService{
		todoRepo: todoRepo,
	}
}

// CreateTodoInput represents input for creating a todo
type CreateTodoInput struct {
	Title       string
	Description string
	Completed   bool
	UserID      uint64
}

// CreateTodo creates a todo owned by the given user.
func (s *TodoService) CreateTodo(input CreateTodoInput) (*models.Todo, error) {
	todo := &models.Todo{
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		UserID:      input.UserID,
	}

	if err := s.todoRepo.Create(todo); err != nil {
		return nil, ErrFailedToCreateTodo
	}

	return todo, nil
}

// ListTodos returns the todos owned by the given user. No per-item
// ownership check is needed because the query is filtered by owner.
func (s *TodoService) ListTodos(userID uint64, params utils.PaginationParams) ([]models.Todo, error) {
	todos, err := s.todoRepo.ListByUserID(userID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

// UpdateTodoInput represents input for a full todo update
type UpdateTodoInput struct {
	Title       string
	Description string
	Completed   bool
}

// UpdateTodo replaces a todo's title, description and completion flag.
// The owner reference is never changed.
func (s *TodoService) UpdateTodo(todo *models.Todo, input UpdateTodoInput) (*models.Todo, error) {
	todo.Title = input.Title
	todo.Description = input.Description
	todo.Completed = input.Completed

	if err := s.todoRepo.Update(todo); err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return todo, nil
}

// DeleteTodo permanently deletes a todo.
func (s *TodoService) DeleteTodo(id uint64) error {
	if err := s.todoRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTodoNotFound
		}
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}
