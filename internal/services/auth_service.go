package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-manager/internal/models"
	"github.com/adanyl0v/go-task-manager/internal/password"
	"github.com/adanyl0v/go-task-manager/internal/storage"
)

type authServiceImpl struct {
	logger zerolog.Logger
	users  UserStore
	hasher password.Hasher
}

func NewAuthService(
	logger zerolog.Logger,
	users UserStore,
	hasher password.Hasher,
) AuthService {
	return &authServiceImpl{
		logger: logger,
		users:  users,
		hasher: hasher,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, params RegisterParams) (int64, error) {
	err := validateParams(params)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("invalid register params")
		return 0, err
	}

	_, err = s.users.GetUserByUsername(ctx, params.Username)
	if err == nil {
		s.logger.Error().
			Str("user_name", params.Username).
			Msg("user with this username already exists")
		return 0, ErrDuplicateUsername
	} else if !errors.Is(err, storage.ErrNotFound) {
		s.logger.Error().
			Err(err).
			Str("user_name", params.Username).
			Msg("failed to select user by username")
		return 0, err
	}

	if params.Password != params.ConfirmPassword {
		s.logger.Error().
			Str("user_name", params.Username).
			Msg("passwords do not match")
		return 0, ErrPasswordMismatch
	}

	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to hash password")
		return 0, err
	}

	user := models.User{
		Username:     params.Username,
		Role:         params.Role,
		PasswordHash: passwordHash,
	}

	user.ID, err = s.users.CreateUser(ctx, &user)
	if err != nil {
		// Another request may have taken the username since the lookup.
		if errors.Is(err, storage.ErrDuplicate) {
			s.logger.Error().
				Str("user_name", user.Username).
				Msg("user with this username already exists")
			return 0, ErrDuplicateUsername
		}

		s.logger.Error().
			Err(err).
			Msg("failed to insert user")
		return 0, err
	}
	s.logger.Debug().
		Int64("user_id", user.ID).
		Str("user_name", user.Username).
		Msg("inserted user")

	s.logger.Info().
		Int64("user_id", user.ID).
		Str("role", user.Role).
		Msg("registered user")
	return user.ID, nil
}

func (s *authServiceImpl) Login(ctx context.Context, params LoginParams) (LoginOutcome, error) {
	err := validateParams(params)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("invalid login params")
		return InvalidCredentials, err
	}

	user, err := s.users.GetUserByUsername(ctx, params.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn().
				Str("user_name", params.Username).
				Msg("login with unknown username")
			return InvalidCredentials, nil
		}

		s.logger.Error().
			Err(err).
			Str("user_name", params.Username).
			Msg("failed to select user by username")
		return InvalidCredentials, err
	}
	s.logger.Debug().
		Int64("user_id", user.ID).
		Msg("selected user")

	match, err := s.hasher.Verify(params.Password, user.PasswordHash)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("user_id", user.ID).
			Msg("failed to compare password")
		return InvalidCredentials, err
	} else if !match {
		s.logger.Warn().
			Int64("user_id", user.ID).
			Msg("passwords do not match")
		return InvalidCredentials, nil
	}

	s.logger.Info().
		Int64("user_id", user.ID).
		Msg("logged in")
	return LoginOutcome{
		Success: true,
		UserID:  user.ID,
		Role:    user.Role,
	}, nil
}
