package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/adanyl0v/go-task-manager/internal/models"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUserNotFound      = errors.New("user not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrForbidden         = errors.New("forbidden")
)

type AuthService interface {
	// Register creates a user with the given username, password and role.
	//
	// It returns ErrInvalidInput if a field is out of bounds,
	// ErrDuplicateUsername if the username is taken, or
	// ErrPasswordMismatch if the password and its confirmation differ.
	Register(ctx context.Context, params RegisterParams) (int64, error)

	// Login checks the given credentials.
	//
	// An unknown username and a wrong password produce the same
	// unsuccessful outcome with a nil error, so callers cannot tell
	// which one happened.
	Login(ctx context.Context, params LoginParams) (LoginOutcome, error)
}

type TaskService interface {
	// CreateTask creates a task on behalf of an admin.
	//
	// It returns ErrUserNotFound if the actor doesn't exist or
	// ErrForbidden if the actor is not an admin.
	CreateTask(ctx context.Context, params CreateTaskParams) (*models.TaskView, error)

	// UpdateTask replaces the text of a task. Any existing user may
	// update any task.
	//
	// It returns ErrTaskNotFound or ErrUserNotFound.
	UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.TaskView, error)

	// DeleteTask deletes a task on behalf of an admin.
	//
	// A non-admin actor gets DeleteForbidden with a nil error, unlike
	// CreateTask which fails with ErrForbidden. It returns
	// ErrUserNotFound, or ErrTaskNotFound once the actor is authorized.
	DeleteTask(ctx context.Context, params DeleteTaskParams) (DeleteOutcome, error)

	// ListTasks returns every task ordered by id.
	ListTasks(ctx context.Context) ([]*models.TaskView, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type TaskStore interface {
	CreateTask(ctx context.Context, task *models.Task) (int64, error)
	GetTaskByID(ctx context.Context, id int64) (*models.Task, error)
	UpdateTask(ctx context.Context, task *models.Task) error
	DeleteTask(ctx context.Context, id int64) error
	ListTasks(ctx context.Context) ([]*models.Task, error)
}

type RegisterParams struct {
	Username        string `validate:"min=3,max=50"`
	Password        string `validate:"min=6"`
	ConfirmPassword string `validate:"min=6"`
	Role            string `validate:"min=3,max=50"`
}

type LoginParams struct {
	Username string `validate:"min=3,max=50"`
	Password string `validate:"min=6"`
}

// LoginOutcome is either a successful login carrying the user's id and
// role name, or invalid credentials.
type LoginOutcome struct {
	Success bool
	UserID  int64
	Role    string
}

var InvalidCredentials = LoginOutcome{}

type CreateTaskParams struct {
	Text    string `validate:"min=1,max=500"`
	ActorID int64
}

type UpdateTaskParams struct {
	TaskID  int64
	Text    string `validate:"min=1,max=500"`
	ActorID int64
}

type DeleteTaskParams struct {
	TaskID  int64
	ActorID int64
}

type DeleteOutcome int

const (
	DeleteSucceeded DeleteOutcome = iota + 1
	DeleteForbidden
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateParams(params any) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return fmt.Errorf("%w: %s failed on %s=%s", ErrInvalidInput, fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, err)
}
