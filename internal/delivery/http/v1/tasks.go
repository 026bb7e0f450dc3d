package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-manager/internal/models"
	"github.com/adanyl0v/go-task-manager/internal/services"
)

type taskResponse struct {
	ID         int64      `json:"task_id"`
	Task       string     `json:"task"`
	CreatedBy  string     `json:"created_by"`
	ModifiedBy *string    `json:"modified_by"`
	CreatedAt  time.Time  `json:"created_at"`
	ModifiedAt *time.Time `json:"modified_at"`
}

func newTaskResponse(view *models.TaskView) taskResponse {
	return taskResponse{
		ID:         view.ID,
		Task:       view.Text,
		CreatedBy:  view.CreatedBy,
		ModifiedBy: view.ModifiedBy,
		CreatedAt:  view.CreatedAt,
		ModifiedAt: view.ModifiedAt,
	}
}

type taskRequest struct {
	Task   string `json:"task"`
	UserID int64  `json:"user_id" binding:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req taskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newUnprocessableEntityError(errInvalidRequestBody.Error()))
		return
	}

	view, err := h.tasks.CreateTask(c, services.CreateTaskParams{
		Text:    req.Task,
		ActorID: req.UserID,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("user_id", req.UserID).
			Msg("failed to create task")
		h.abortWithTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(view))
}

func (h *handlerImpl) HandleListTasks(c *gin.Context) {
	views, err := h.tasks.ListTasks(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list tasks")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	response := make([]taskResponse, len(views))
	for i, view := range views {
		response[i] = newTaskResponse(view)
	}
	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	taskID, ok := h.parseIDParam(c, c.Param("task_id"), errInvalidTaskID)
	if !ok {
		return
	}

	var req taskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newUnprocessableEntityError(errInvalidRequestBody.Error()))
		return
	}

	view, err := h.tasks.UpdateTask(c, services.UpdateTaskParams{
		TaskID:  taskID,
		Text:    req.Task,
		ActorID: req.UserID,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Int64("user_id", req.UserID).
			Msg("failed to update task")
		h.abortWithTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(view))
}

// HandleDeleteTask reports a denied or impossible deletion as a
// successful response carrying a message.
func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	taskID, ok := h.parseIDParam(c, c.Param("task_id"), errInvalidTaskID)
	if !ok {
		return
	}
	userID, ok := h.parseIDParam(c, c.Query("user_id"), errInvalidUserID)
	if !ok {
		return
	}

	outcome, err := h.tasks.DeleteTask(c, services.DeleteTaskParams{
		TaskID:  taskID,
		ActorID: userID,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Int64("user_id", userID).
			Msg("failed to delete task")
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusOK, messageResponse{Message: "User not found"})
		case errors.Is(err, services.ErrTaskNotFound):
			c.JSON(http.StatusOK, messageResponse{Message: "Task not found"})
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	if outcome == services.DeleteForbidden {
		c.JSON(http.StatusOK, messageResponse{Message: "Only admin can delete tasks"})
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Task deleted successfully"})
}

func (h *handlerImpl) abortWithTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		abort(c, newUnprocessableEntityError(err.Error()))
	case errors.Is(err, services.ErrForbidden):
		abort(c, newForbiddenError("Only admin can create tasks"))
	case errors.Is(err, services.ErrUserNotFound):
		abort(c, newNotFoundError("User not found"))
	case errors.Is(err, services.ErrTaskNotFound):
		abort(c, newNotFoundError("Task not found"))
	default:
		abort(c, newStatusTextError(http.StatusInternalServerError))
	}
}

func (h *handlerImpl) parseIDParam(c *gin.Context, raw string, errInvalid error) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("value", raw).
			Msg(errInvalid.Error())
		abort(c, newUnprocessableEntityError(errInvalid.Error()))
		return 0, false
	}
	return id, true
}
