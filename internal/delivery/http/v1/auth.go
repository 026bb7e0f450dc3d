package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-manager/internal/services"
)

type registerRequest struct {
	Username        string `json:"user_name" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Role            string `json:"role" binding:"required"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

func (h *handlerImpl) HandleRegister(c *gin.Context) {
	var req registerRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newUnprocessableEntityError(errInvalidRequestBody.Error()))
		return
	}
	h.logger.Info().
		Str("user_name", req.Username).
		Msg("register request")

	userID, err := h.auth.Register(c, services.RegisterParams{
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            req.Role,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to register user")
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			abort(c, newUnprocessableEntityError(err.Error()))
		case errors.Is(err, services.ErrDuplicateUsername):
			abort(c, newBadRequestError("Username already exists"))
		case errors.Is(err, services.ErrPasswordMismatch):
			abort(c, newBadRequestError("Passwords do not match"))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusCreated, registerResponse{
		Message: "User registered successfully",
		UserID:  userID,
	})
}

type loginRequest struct {
	Username string `json:"user_name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// loginResponse has the same shape for every outcome. Failed logins
// omit user_id and role and set error.
type loginResponse struct {
	Message string  `json:"message"`
	UserID  *int64  `json:"user_id,omitempty"`
	Role    *string `json:"role,omitempty"`
	Error   bool    `json:"error"`
}

func (h *handlerImpl) HandleLogin(c *gin.Context) {
	var req loginRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newUnprocessableEntityError(errInvalidRequestBody.Error()))
		return
	}

	outcome, err := h.auth.Login(c, services.LoginParams{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to login")
		if errors.Is(err, services.ErrInvalidInput) {
			abort(c, newUnprocessableEntityError(err.Error()))
			return
		}
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	if !outcome.Success {
		c.JSON(http.StatusOK, loginResponse{
			Message: "Invalid Credentials",
			Error:   true,
		})
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Message: "Login successful",
		UserID:  &outcome.UserID,
		Role:    &outcome.Role,
		Error:   false,
	})
}
