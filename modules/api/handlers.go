package api

import (
	"encoding/json"

	"github.com/example/taskboard/modules/auth"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains HTTP handlers for the API.
type Handlers struct {
	authContainer    mono.ServiceContainer
	trackerContainer mono.ServiceContainer
	authAdapter      auth.AuthPort
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(authContainer, trackerContainer mono.ServiceContainer, authAdapter auth.AuthPort) *Handlers {
	return &Handlers{
		authContainer:    authContainer,
		trackerContainer: trackerContainer,
		authAdapter:      authAdapter,
	}
}

// callAuth invokes a request-reply service on the auth module.
func (h *Handlers) callAuth(c *fiber.Ctx, service string, req, resp any) error {
	return helper.CallRequestReplyService(
		c.UserContext(),
		h.authContainer,
		service,
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	)
}

// callTracker invokes a request-reply service on the tracker module.
func (h *Handlers) callTracker(c *fiber.Ctx, service string, req, resp any) error {
	return helper.CallRequestReplyService(
		c.UserContext(),
		h.trackerContainer,
		service,
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	)
}

// Register handles user registration. The new user is logged in right away,
// so the response carries an initial token pair.
func (h *Handlers) Register(c *fiber.Ctx) error {
	var body RegisterBody
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if body.Username == "" || body.Password == "" {
		return respondError(c, fiber.StatusBadRequest, "Username and password are required")
	}

	req := auth.RegisterRequest{
		Username:  body.Username,
		Password:  body.Password,
		Email:     body.Email,
		FirstName: body.FirstName,
		LastName:  body.LastName,
	}
	var resp auth.RegisterResponse
	if err := h.callAuth(c, "register", &req, &resp); err != nil {
		return serviceError(c, err)
	}

	return respondData(c, fiber.StatusCreated, "User registered successfully", resp)
}

// Login handles user login.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var body LoginBody
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if body.Username == "" || body.Password == "" {
		return respondError(c, fiber.StatusBadRequest, "Username and password are required")
	}

	req := auth.LoginRequest{
		Username: body.Username,
		Password: body.Password,
	}
	var resp auth.LoginResponse
	if err := h.callAuth(c, "login", &req, &resp); err != nil {
		return serviceError(c, err)
	}

	return respondData(c, fiber.StatusOK, "Login successful", resp)
}

// Refresh handles token refresh.
func (h *Handlers) Refresh(c *fiber.Ctx) error {
	var body RefreshBody
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if body.RefreshToken == "" {
		return respondError(c, fiber.StatusBadRequest, "Refresh token is required")
	}

	req := auth.RefreshRequest{RefreshToken: body.RefreshToken}
	var resp auth.RefreshResponse
	if err := h.callAuth(c, "refresh-token", &req, &resp); err != nil {
		return respondError(c, fiber.StatusUnauthorized, "Invalid or expired refresh token")
	}

	return respondData(c, fiber.StatusOK, "Token refreshed", resp)
}

// Logout revokes the presented refresh token. Revoking a token that is
// already invalid still reports success.
func (h *Handlers) Logout(c *fiber.Ctx) error {
	var body LogoutBody
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if body.RefreshToken == "" {
		return respondError(c, fiber.StatusBadRequest, "Refresh token is required")
	}

	req := auth.LogoutRequest{RefreshToken: body.RefreshToken}
	var resp auth.LogoutResponse
	if err := h.callAuth(c, "logout", &req, &resp); err != nil {
		return serviceError(c, err)
	}

	return respondData(c, fiber.StatusOK, "Logged out", resp)
}

// Profile returns the authenticated user's profile.
func (h *Handlers) Profile(c *fiber.Ctx) error {
	claims, ok := actorFromContext(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "User not authenticated")
	}

	req := auth.GetUserRequest{UserID: claims.UserID}
	var resp auth.GetUserResponse
	if err := h.callAuth(c, "get-user", &req, &resp); err != nil {
		return serviceError(c, err)
	}

	return respondData(c, fiber.StatusOK, "Profile retrieved", resp.UserPayload)
}

// UpdateProfile partially updates the authenticated user's profile.
func (h *Handlers) UpdateProfile(c *fiber.Ctx) error {
	claims, ok := actorFromContext(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "User not authenticated")
	}

	var body UpdateProfileBody
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	req := auth.UpdateProfileRequest{
		UserID:    claims.UserID,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
	}
	var resp auth.UpdateProfileResponse
	if err := h.callAuth(c, "update-profile", &req, &resp); err != nil {
		return serviceError(c, err)
	}

	return respondData(c, fiber.StatusOK, "Profile updated", resp.UserPayload)
}
