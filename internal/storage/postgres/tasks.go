package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/adanyl0v/go-task-manager/internal/models"
	"github.com/adanyl0v/go-task-manager/internal/storage"
)

var taskColumns = []string{"task_id", "task", "created_by", "modified_by", "created_at", "modified_at"}

type TaskStore struct {
	db DB
}

func NewTaskStore(db DB) *TaskStore {
	return &TaskStore{db: db}
}

func (s *TaskStore) CreateTask(ctx context.Context, task *models.Task) (int64, error) {
	query, args, err := psql.Insert("tasks").
		Columns("task", "created_by", "modified_by", "created_at", "modified_at").
		Values(task.Text, task.CreatedBy, task.ModifiedBy, task.CreatedAt, task.ModifiedAt).
		Suffix("RETURNING task_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building insert query: %w", err)
	}

	var id int64
	if err = s.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("inserting task: %w", err)
	}
	return id, nil
}

func (s *TaskStore) GetTaskByID(ctx context.Context, id int64) (*models.Task, error) {
	query, args, err := psql.Select(taskColumns...).
		From("tasks").
		Where(squirrel.Eq{"task_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	var task models.Task
	if err := pgxscan.Get(ctx, s.db, &task, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return &task, nil
}

// UpdateTask overwrites the text and modifier fields of the task with
// task.ID. Creator fields are never touched.
func (s *TaskStore) UpdateTask(ctx context.Context, task *models.Task) error {
	query, args, err := psql.Update("tasks").
		Set("task", task.Text).
		Set("modified_by", task.ModifiedBy).
		Set("modified_at", task.ModifiedAt).
		Where(squirrel.Eq{"task_id": task.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building update query: %w", err)
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *TaskStore) DeleteTask(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("tasks").
		Where(squirrel.Eq{"task_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building delete query: %w", err)
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *TaskStore) ListTasks(ctx context.Context) ([]*models.Task, error) {
	query, args, err := psql.Select(taskColumns...).
		From("tasks").
		OrderBy("task_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	var tasks []*models.Task
	if err := pgxscan.Select(ctx, s.db, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("scanning tasks: %w", err)
	}
	if tasks == nil {
		tasks = []*models.Task{}
	}
	return tasks, nil
}

