package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-manager/internal/models"
	"github.com/adanyl0v/go-task-manager/internal/policy"
	"github.com/adanyl0v/go-task-manager/internal/storage"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	users  UserStore
	tasks  TaskStore
	now    func() time.Time
}

func NewTaskService(
	logger zerolog.Logger,
	users UserStore,
	tasks TaskStore,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		users:  users,
		tasks:  tasks,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*models.TaskView, error) {
	err := validateParams(params)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("invalid create task params")
		return nil, err
	}

	actor, err := s.getUser(ctx, params.ActorID)
	if err != nil {
		return nil, err
	}

	if !policy.CanPerform(actor.Access(), policy.ActionCreateTask) {
		s.logger.Warn().
			Int64("user_id", actor.ID).
			Str("role", actor.Role).
			Msg("only admin can create tasks")
		return nil, ErrForbidden
	}

	now := s.now()
	task := &models.Task{
		Text:       params.Text,
		CreatedBy:  actor.ID,
		ModifiedBy: &actor.ID,
		CreatedAt:  now,
		ModifiedAt: &now,
	}

	task.ID, err = s.tasks.CreateTask(ctx, task)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, err
	}
	s.logger.Debug().
		Int64("task_id", task.ID).
		Msg("inserted task")

	s.logger.Info().
		Int64("task_id", task.ID).
		Int64("user_id", actor.ID).
		Msg("created task")
	return s.resolveView(ctx, task, usernameCache{actor.ID: actor.Username})
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.TaskView, error) {
	err := validateParams(params)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("invalid update task params")
		return nil, err
	}

	task, err := s.getTask(ctx, params.TaskID)
	if err != nil {
		return nil, err
	}

	actor, err := s.getUser(ctx, params.ActorID)
	if err != nil {
		return nil, err
	}

	if !policy.CanPerform(actor.Access(), policy.ActionUpdateTask) {
		s.logger.Warn().
			Int64("user_id", actor.ID).
			Msg("user cannot update tasks")
		return nil, ErrForbidden
	}

	now := s.now()
	task.Text = params.Text
	task.ModifiedBy = &actor.ID
	task.ModifiedAt = &now

	err = s.tasks.UpdateTask(ctx, task)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Int64("task_id", task.ID).
				Msg("task deleted before update")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", task.ID).
			Msg("failed to update task")
		return nil, err
	}
	s.logger.Debug().
		Int64("task_id", task.ID).
		Msg("updated task")

	s.logger.Info().
		Int64("task_id", task.ID).
		Int64("user_id", actor.ID).
		Msg("updated task")
	return s.resolveView(ctx, task, usernameCache{actor.ID: actor.Username})
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, params DeleteTaskParams) (DeleteOutcome, error) {
	actor, err := s.getUser(ctx, params.ActorID)
	if err != nil {
		return 0, err
	}

	if !policy.CanPerform(actor.Access(), policy.ActionDeleteTask) {
		s.logger.Warn().
			Int64("user_id", actor.ID).
			Int64("task_id", params.TaskID).
			Str("role", actor.Role).
			Msg("only admin can delete tasks")
		return DeleteForbidden, nil
	}

	err = s.tasks.DeleteTask(ctx, params.TaskID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Int64("task_id", params.TaskID).
				Msg("task not found")
			return 0, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", params.TaskID).
			Msg("failed to delete task")
		return 0, err
	}

	s.logger.Info().
		Int64("task_id", params.TaskID).
		Int64("user_id", actor.ID).
		Msg("deleted task")
	return DeleteSucceeded, nil
}

func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*models.TaskView, error) {
	tasks, err := s.tasks.ListTasks(ctx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select tasks")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("selected tasks")

	cache := make(usernameCache)
	views := make([]*models.TaskView, 0, len(tasks))
	for _, task := range tasks {
		view, err := s.resolveView(ctx, task, cache)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	s.logger.Info().
		Int("count", len(views)).
		Msg("fetched tasks")
	return views, nil
}

func (s *taskServiceImpl) getUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Int64("user_id", id).
				Msg("user not found")
			return nil, ErrUserNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("user_id", id).
			Msg("failed to select user by id")
		return nil, err
	}
	return user, nil
}

func (s *taskServiceImpl) getTask(ctx context.Context, id int64) (*models.Task, error) {
	task, err := s.tasks.GetTaskByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Int64("task_id", id).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to select task by id")
		return nil, err
	}
	return task, nil
}

// usernameCache maps user ids to usernames for the duration of a
// single call.
type usernameCache map[int64]string

func (s *taskServiceImpl) username(ctx context.Context, id int64, cache usernameCache) (string, error) {
	if name, ok := cache[id]; ok {
		return name, nil
	}

	user, err := s.getUser(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to resolve user %d: %w", id, err)
	}
	cache[id] = user.Username
	return user.Username, nil
}

func (s *taskServiceImpl) resolveView(ctx context.Context, task *models.Task, cache usernameCache) (*models.TaskView, error) {
	createdBy, err := s.username(ctx, task.CreatedBy, cache)
	if err != nil {
		return nil, err
	}

	view := &models.TaskView{
		ID:         task.ID,
		Text:       task.Text,
		CreatedBy:  createdBy,
		CreatedAt:  task.CreatedAt,
		ModifiedAt: task.ModifiedAt,
	}

	if task.ModifiedBy != nil {
		modifiedBy, err := s.username(ctx, *task.ModifiedBy, cache)
		if err != nil {
			return nil, err
		}
		view.ModifiedBy = &modifiedBy
	}
	return view, nil
}
