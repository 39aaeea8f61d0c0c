package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aidosk/taskvault/internal/domain"
	"github.com/aidosk/taskvault/internal/usecase"
	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskUsecase *usecase.TaskUsecase
	logger      *slog.Logger
}

func NewTaskHandler(taskUsecase *usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{taskUsecase: taskUsecase, logger: logger.With("component", "task_handler")}
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type taskResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		OwnerID:     t.OwnerID,
		Title:       t.Title,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// POST /tasks
// Title validation (non-empty after trimming) lives in the usecase so the
// rule holds for every caller, not just this endpoint.
func (h *TaskHandler) Create(ctx *gin.Context) {
	var req createTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.CreateTask(ctx.Request.Context(), usecase.CreateTaskInput{
		OwnerID:     ctx.GetString("userID"),
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrTitleRequired) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": errTitleRequired})
			return
		}
		h.logger.ErrorContext(ctx.Request.Context(), "create task", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"task": toTaskResponse(task)})
}

// GET /tasks
func (h *TaskHandler) List(ctx *gin.Context) {
	tasks, err := h.taskUsecase.ListTasks(ctx.Request.Context(), ctx.GetString("userID"))
	if err != nil {
		h.logger.ErrorContext(ctx.Request.Context(), "list tasks", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	items := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		items[i] = toTaskResponse(t)
	}
	ctx.JSON(http.StatusOK, gin.H{"tasks": items})
}

// GET /tasks/:id
func (h *TaskHandler) GetByID(ctx *gin.Context) {
	taskID := ctx.Param("id")

	task, err := h.taskUsecase.GetByID(ctx.Request.Context(), taskID, ctx.GetString("userID"))
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errTaskNotFound})
			return
		}
		h.logger.ErrorContext(ctx.Request.Context(), "get task by id", "task_id", taskID, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"task": toTaskResponse(task)})
}

// PUT /tasks/:id
func (h *TaskHandler) Update(ctx *gin.Context) {
	taskID := ctx.Param("id")

	var req updateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.UpdateTask(ctx.Request.Context(), taskID, ctx.GetString("userID"), req.Title, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTitleRequired):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": errTitleRequired})
		case errors.Is(err, domain.ErrTaskNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": errTaskNotFound})
		default:
			h.logger.ErrorContext(ctx.Request.Context(), "update task", "task_id", taskID, "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"task": toTaskResponse(task)})
}

// DELETE /tasks/:id
func (h *TaskHandler) Delete(ctx *gin.Context) {
	taskID := ctx.Param("id")

	if err := h.taskUsecase.DeleteTask(ctx.Request.Context(), taskID, ctx.GetString("userID")); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errTaskNotFound})
			return
		}
		h.logger.ErrorContext(ctx.Request.Context(), "delete task", "task_id", taskID, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
