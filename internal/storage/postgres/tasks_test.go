package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-task-manager/internal/models"
	"github.com/adanyl0v/go-task-manager/internal/storage"
)

var testTaskColumns = []string{"task_id", "task", "created_by", "modified_by", "created_at", "modified_at"}

func TestTaskStore_CreateTask(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	actor := int64(1)
	task := &models.Task{
		Text:       "write report",
		CreatedBy:  actor,
		ModifiedBy: &actor,
		CreatedAt:  now,
		ModifiedAt: &now,
	}

	mock.ExpectQuery(`INSERT INTO tasks \(task,created_by,modified_by,created_at,modified_at\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING task_id`).
		WithArgs("write report", actor, pgxmock.AnyArg(), now, pgxmock.AnyArg()).
		WillReturnRows(mock.NewRows([]string{"task_id"}).AddRow(int64(1)))

	id, err := NewTaskStore(mock).CreateTask(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskStore_GetTaskByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Should scan nullable modifier columns", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		now := time.Now().UTC()
		modifier := int64(2)
		mock.ExpectQuery(`SELECT task_id, task, created_by, modified_by, created_at, modified_at FROM tasks WHERE task_id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(mock.NewRows(testTaskColumns).
				AddRow(int64(1), "write report", int64(1), &modifier, now, &now))

		task, err := NewTaskStore(mock).GetTaskByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "write report", task.Text)
		require.NotNil(t, task.ModifiedBy)
		assert.Equal(t, modifier, *task.ModifiedBy)
		require.NotNil(t, task.ModifiedAt)
		assert.Equal(t, now, *task.ModifiedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should return ErrNotFound for no rows", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT (.+) FROM tasks WHERE task_id = \$1`).
			WithArgs(int64(9)).
			WillReturnRows(mock.NewRows(testTaskColumns))

		_, err = NewTaskStore(mock).GetTaskByID(ctx, 9)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestTaskStore_UpdateTask(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	modifier := int64(2)
	task := &models.Task{ID: 1, Text: "write report v2", ModifiedBy: &modifier, ModifiedAt: &now}

	t.Run("Should update text and modifier", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`UPDATE tasks SET task = \$1, modified_by = \$2, modified_at = \$3 WHERE task_id = \$4`).
			WithArgs("write report v2", pgxmock.AnyArg(), pgxmock.AnyArg(), int64(1)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, NewTaskStore(mock).UpdateTask(ctx, task))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should return ErrNotFound when nothing was updated", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("UPDATE tasks").
			WithArgs("write report v2", pgxmock.AnyArg(), pgxmock.AnyArg(), int64(1)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, NewTaskStore(mock).UpdateTask(ctx, task), storage.ErrNotFound)
	})
}

func TestTaskStore_DeleteTask(t *testing.T) {
	ctx := context.Background()

	t.Run("Should delete the task", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`DELETE FROM tasks WHERE task_id = \$1`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, NewTaskStore(mock).DeleteTask(ctx, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should return ErrNotFound when nothing was deleted", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`DELETE FROM tasks WHERE task_id = \$1`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, NewTaskStore(mock).DeleteTask(ctx, 1), storage.ErrNotFound)
	})
}

func TestTaskStore_ListTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("Should list tasks ordered by id", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		now := time.Now().UTC()
		admin := int64(1)
		mock.ExpectQuery(`SELECT (.+) FROM tasks ORDER BY task_id ASC`).
			WillReturnRows(mock.NewRows(testTaskColumns).
				AddRow(int64(1), "a", admin, &admin, now, &now).
				AddRow(int64(2), "b", admin, &admin, now, &now))

		tasks, err := NewTaskStore(mock).ListTasks(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, "a", tasks[0].Text)
		assert.Equal(t, "b", tasks[1].Text)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should return an empty slice for an empty table", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT (.+) FROM tasks ORDER BY task_id ASC`).
			WillReturnRows(mock.NewRows(testTaskColumns))

		tasks, err := NewTaskStore(mock).ListTasks(ctx)
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})
}
