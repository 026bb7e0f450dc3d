// Package memory implements the user and task stores in process memory.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/adanyl0v/go-task-manager/internal/models"
	"github.com/adanyl0v/go-task-manager/internal/storage"
)

// Store keeps users and tasks in maps guarded by a single mutex.
// Ids are assigned sequentially starting at 1, like a serial column.
type Store struct {
	mu         sync.RWMutex
	users      map[int64]models.User
	usernames  map[string]int64
	tasks      map[int64]models.Task
	lastUserID int64
	lastTaskID int64
}

func New() *Store {
	return &Store{
		users:     make(map[int64]models.User),
		usernames: make(map[string]int64),
		tasks:     make(map[int64]models.Task),
	}
}

func (s *Store) CreateUser(_ context.Context, user *models.User) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usernames[user.Username]; exists {
		return 0, storage.ErrDuplicate
	}

	s.lastUserID++
	u := *user
	u.ID = s.lastUserID
	s.users[u.ID] = u
	s.usernames[u.Username] = u.ID
	return u.ID, nil
}

func (s *Store) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return nil, storage.ErrNotFound
	}
	u := s.users[id]
	return &u, nil
}

func (s *Store) CreateTask(_ context.Context, task *models.Task) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastTaskID++
	t := copyTask(task)
	t.ID = s.lastTaskID
	s.tasks[t.ID] = t
	return t.ID, nil
}

func (s *Store) GetTaskByID(_ context.Context, id int64) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	t = copyTask(&t)
	return &t, nil
}

func (s *Store) UpdateTask(_ context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.tasks[task.ID]
	if !ok {
		return storage.ErrNotFound
	}

	updated := copyTask(task)
	updated.CreatedBy = stored.CreatedBy
	updated.CreatedAt = stored.CreatedAt
	s.tasks[task.ID] = updated
	return nil
}

func (s *Store) DeleteTask(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (s *Store) ListTasks(_ context.Context) ([]*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		t = copyTask(&t)
		tasks = append(tasks, &t)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].ID < tasks[j].ID
	})
	return tasks, nil
}

// copyTask detaches the nullable fields so callers never share
// pointers with the stored value.
func copyTask(task *models.Task) models.Task {
	t := *task
	if task.ModifiedBy != nil {
		modifiedBy := *task.ModifiedBy
		t.ModifiedBy = &modifiedBy
	}
	if task.ModifiedAt != nil {
		modifiedAt := *task.ModifiedAt
		t.ModifiedAt = &modifiedAt
	}
	return t
}
