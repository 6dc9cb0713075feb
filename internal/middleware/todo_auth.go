package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/constants"
	"github.com/yukikurage/todo-api/internal/database"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
	"github.com/yukikurage/todo-api/internal/models"
)

// RequireTodoOwnership checks that the todo in the URL exists and is
// owned by the authenticated user. A todo owned by someone else gets a
// 403, not a 404: existence is revealed but access is denied. The action
// string names the attempted operation in the 403 detail.
func RequireTodoOwnership(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		todoIDStr := c.Param("id")
		todoID, err := strconv.ParseUint(todoIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid todo ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "Could not validate credentials")
			c.Abort()
			return
		}

		var todo models.Todo
		if err := database.GetDB().First(&todo, todoID).Error; err != nil {
			apierrors.NotFound(c, "Todo not found")
			c.Abort()
			return
		}

		if todo.UserID != userID {
			apierrors.Forbidden(c, "Not authorized to "+action+" this todo")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyTodo, todo)
		c.Next()
	}
}

// GetTodo retrieves the todo loaded by RequireTodoOwnership from context
func GetTodo(c *gin.Context) (models.Todo, bool) {
	value, exists := c.Get(constants.ContextKeyTodo)
	if !exists {
		return models.Todo{}, false
	}
	todo, ok := value.(models.Todo)
	return todo, ok
}
