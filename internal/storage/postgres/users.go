package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/adanyl0v/go-task-manager/internal/models"
	"github.com/adanyl0v/go-task-manager/internal/storage"
)

var userColumns = []string{"user_id", "user_name", "role", "password_hash"}

type UserStore struct {
	db DB
}

func NewUserStore(db DB) *UserStore {
	return &UserStore{db: db}
}

// CreateUser inserts user and returns the generated id. It returns
// storage.ErrDuplicate if the username is already taken.
func (s *UserStore) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	query, args, err := psql.Insert("users").
		Columns("user_name", "role", "password_hash").
		Values(user.Username, user.Role, user.PasswordHash).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building insert query: %w", err)
	}

	var id int64
	err = s.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, storage.ErrDuplicate
		}
		return 0, fmt.Errorf("inserting user: %w", err)
	}
	return id, nil
}

func (s *UserStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query, args, err := psql.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"user_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}
	return s.getUser(ctx, query, args)
}

func (s *UserStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query, args, err := psql.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"user_name": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}
	return s.getUser(ctx, query, args)
}

func (s *UserStore) getUser(ctx context.Context, query string, args []any) (*models.User, error) {
	var user models.User
	if err := pgxscan.Get(ctx, s.db, &user, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &user, nil
}
