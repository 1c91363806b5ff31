package handler

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"streamsphere/api/middleware"
	"streamsphere/internal/service"
	"streamsphere/model"
	"streamsphere/pkg/response"
)

type IUserHandler interface {
	GetProfile(c *fiber.Ctx) error
	UpdateProfile(c *fiber.Ctx) error
	CheckUsername(c *fiber.Ctx) error
	GetViewingHistory(c *fiber.Ctx) error
	GetSearchHistory(c *fiber.Ctx) error
}

type UserHandler struct {
	userService    service.IUserService
	historyService service.IHistoryService
}

func NewUserHandler(userService service.IUserService, historyService service.IHistoryService) *UserHandler {
	return &UserHandler{
		userService:    userService,
		historyService: historyService,
	}
}

//------------------------------------------
//------------------------------------------

// GetProfile godoc
//
//	@Summary		Profile
//	@Description	The caller's profile, created with defaults on first access.
//	@Tags			User
//	@Success		200		{object}	model.UserProfile
//	@Failure		401,500	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/user/profile [get]
func (m *UserHandler) GetProfile(c *fiber.Ctx) error {
	session := middleware.GetSession(c)
	res, err := m.userService.GetProfile(c.UserContext(), session.UserId, session.Email)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res)
}

// UpdateProfile godoc
//
//	@Summary		Update Profile
//	@Description	Change display name, username and preferences. An empty username keeps the current one.
//	@Tags			User
//	@Param			profile			body		model.UpdateProfileReq	true	"changed fields"
//	@Success		200				{object}	model.UserProfile
//	@Failure		400,401,409,500	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/user/profile [put]
func (m *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req model.UpdateProfileReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := m.userService.UpdateProfile(c.UserContext(), middleware.GetSession(c).UserId, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTooShort), errors.Is(err, service.ErrInvalidPreference):
			return response.ResponseError(c, err.Error(), fiber.StatusBadRequest)
		case errors.Is(err, service.ErrUsernameTaken):
			return response.ResponseError(c, err.Error(), fiber.StatusConflict)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res)
}

// CheckUsername godoc
//
//	@Summary		Check Username
//	@Description	Whether a username is free or already the caller's.
//	@Tags			User
//	@Param			username	query		string	true	"username"
//	@Success		200			{object}	model.UsernameCheckRes
//	@Failure		400,401		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/user/username/check [get]
func (m *UserHandler) CheckUsername(c *fiber.Ctx) error {
	username := strings.TrimSpace(c.Query("username", ""))
	if utf8.RuneCountInString(username) < service.UsernameMinLength {
		return response.ResponseError(c, response.UsernameTooShort, fiber.StatusBadRequest)
	}

	available := m.userService.CheckUsernameAvailability(c.UserContext(), middleware.GetSession(c).UserId, username)
	return response.ResponseOKWithData(c, model.UsernameCheckRes{
		Username:  username,
		Available: available,
	})
}

// GetViewingHistory godoc
//
//	@Summary		Viewing History
//	@Description	Played titles, newest first.
//	@Tags			User
//	@Success		200	{object}	[]model.ViewingHistoryItem
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/user/history/viewing [get]
func (m *UserHandler) GetViewingHistory(c *fiber.Ctx) error {
	res := m.historyService.GetViewingHistory(c.UserContext(), middleware.GetSession(c).UserId)
	return response.ResponseOKWithData(c, res)
}

// GetSearchHistory godoc
//
//	@Summary		Search History
//	@Description	Recent searches, newest first.
//	@Tags			User
//	@Success		200	{object}	[]model.SearchHistoryItem
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/user/history/search [get]
func (m *UserHandler) GetSearchHistory(c *fiber.Ctx) error {
	res := m.historyService.GetSearchHistory(c.UserContext(), middleware.GetSession(c).UserId)
	return response.ResponseOKWithData(c, res)
}
