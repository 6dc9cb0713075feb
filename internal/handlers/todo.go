package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/dto"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
	"github.com/yukikurage/todo-api/internal/middleware"
	"github.com/yukikurage/todo-api/internal/services"
	"github.com/yukikurage/todo-api/internal/utils"
)

// TodoHandler coordinates todo HTTP handlers. Ownership of the target
// todo is already established by RequireTodoOwnership for the by-ID
// routes.
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

// TodoRequest is the request body for creating or fully updating a todo.
type TodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// ListTodos returns the authenticated user's todos.
func (h *TodoHandler) ListTodos(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Could not validate credentials")
		return
	}

	params := utils.GetPaginationParams(c)

	todos, err := h.todoService.ListTodos(userID, params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch todos")
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoDTOs(todos))
}

// CreateTodo creates a new todo owned by the authenticated user.
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Could not validate credentials")
		return
	}

	var req TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	todo, err := h.todoService.CreateTodo(services.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		UserID:      userID,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to create todo")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTodoDTO(*todo))
}

// GetTodo returns the todo loaded by RequireTodoOwnership.
func (h *TodoHandler) GetTodo(c *gin.Context) {
	todo, ok := middleware.GetTodo(c)
	if !ok {
		apierrors.InternalError(c, "Todo not found in context")
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoDTO(todo))
}

// UpdateTodo fully updates the todo loaded by RequireTodoOwnership.
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	todo, ok := middleware.GetTodo(c)
	if !ok {
		apierrors.InternalError(c, "Todo not found in context")
		return
	}

	var req TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.todoService.UpdateTodo(&todo, services.UpdateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to update todo")
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoDTO(*updated))
}

// DeleteTodo permanently deletes the todo loaded by RequireTodoOwnership.
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	todo, ok := middleware.GetTodo(c)
	if !ok {
		apierrors.InternalError(c, "Todo not found in context")
		return
	}

	if err := h.todoService.DeleteTodo(todo.ID); err != nil {
		apierrors.InternalError(c, "Failed to delete todo")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Todo deleted successfully",
	})
}
