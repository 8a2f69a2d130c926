// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"strconv"
	"time"

	"stackwiser/internal/models"
	"stackwiser/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenTTL = 24 * time.Hour

// Signup handles POST /api/v1/user/signup
func (s *Server) Signup(c *fiber.Ctx) error {
	var req struct {
		FirstName   string `json:"firstName"`
		LastName    string `json:"lastName"`
		PhoneNumber string `json:"phoneNumber"`
		Email       string `json:"email"`
		Password    string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Register(c.Context(), service.RegisterInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Password:    req.Password,
	})
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created",
		"user":    user.Public(),
	})
}

// VerifyEmail handles GET /api/v1/user/verify-email/:token
func (s *Server) VerifyEmail(c *fiber.Ctx) error {
	user, err := s.userService.VerifyEmail(c.Context(), c.Params("token"))
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User verified successfully",
		"user":    user.Public(),
	})
}

// Login handles POST /api/v1/user/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return models.RespondAppError(c, err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondAppError(c, models.NewInternalError(err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User logged in successfully",
		"token":   token,
		"user":    user.Public(),
	})
}

// generateToken issues a signed HS256 JWT for the given user.
func (s *Server) generateToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
		"jti": uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ForgotPassword handles POST /api/v1/user/forgotpassword
func (s *Server) ForgotPassword(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.userService.ForgotPassword(c.Context(), req.Email); err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Password reset link sent to your email",
	})
}

// ResetPassword handles POST /api/v1/user/resetpassword/:token.
// The body token is authoritative; the route param is a fallback.
func (s *Server) ResetPassword(c *fiber.Ctx) error {
	var req struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Token == "" {
		req.Token = c.Params("token")
	}

	if _, err := s.userService.ResetPassword(c.Context(), service.ResetPasswordInput{
		Token:    req.Token,
		Password: req.Password,
	}); err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Password reset successfully",
	})
}

// ViewProfile handles GET /api/v1/user/viewprofile
func (s *Server) ViewProfile(c *fiber.Ctx) error {
	user, err := s.userService.ViewProfile(c.Context(), requesterID(c))
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User profile",
		"user":    user,
	})
}

// UpdateProfile handles PUT /api/v1/user/updateprofile
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var req struct {
		FirstName   string `json:"firstName"`
		LastName    string `json:"lastName"`
		PhoneNumber string `json:"phoneNumber"`
		Picture     string `json:"picture"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:      requesterID(c),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Picture:     req.Picture,
	})
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User profile updated successfully",
		"user":    user,
	})
}

// DeleteUser handles DELETE /api/v1/user/deleteuser
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Email == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email is required"))
	}

	if err := s.userService.DeleteUser(c.Context(), req.Email); err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User deleted successfully",
	})
}
