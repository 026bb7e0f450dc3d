package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-manager/internal/services"
)

type Handler interface {
	HandleRoot(c *gin.Context)

	HandleRegister(c *gin.Context)
	HandleLogin(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleListTasks(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)

	HandleRequestLogger(c *gin.Context)
}

type handlerImpl struct {
	logger zerolog.Logger
	auth   services.AuthService
	tasks  services.TaskService
}

func New(
	logger zerolog.Logger,
	authService services.AuthService,
	taskService services.TaskService,
) Handler {
	return &handlerImpl{
		logger: logger,
		auth:   authService,
		tasks:  taskService,
	}
}

// RegisterRoutes mounts h on router.
func RegisterRoutes(router gin.IRouter, h Handler) {
	router.Use(h.HandleRequestLogger)
	router.GET("/", h.HandleRoot)

	authRouter := router.Group("/auth")
	authRouter.POST("/register", h.HandleRegister)
	authRouter.POST("/login", h.HandleLogin)

	tasksRouter := router.Group("/tasks")
	tasksRouter.POST("/", h.HandleCreateTask)
	tasksRouter.GET("/", h.HandleListTasks)
	tasksRouter.PUT("/:task_id", h.HandleUpdateTask)
	tasksRouter.DELETE("/:task_id", h.HandleDeleteTask)
}

func (h *handlerImpl) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Task Manager API is running"})
}
