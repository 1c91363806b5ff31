package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"streamsphere/api/middleware"
	"streamsphere/internal/service"
	"streamsphere/model"
	"streamsphere/pkg/response"
)

type IAuthHandler interface {
	GuestToken(c *fiber.Ctx) error
	SignUp(c *fiber.Ctx) error
	SignIn(c *fiber.Ctx) error
	SignOut(c *fiber.Ctx) error
}

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

//------------------------------------------
//------------------------------------------

// GuestToken godoc
//
//	@Summary		Guest Token
//	@Description	Create a guest token for a new device. Send it back in the X-Guest-Token header.
//	@Tags			Auth
//	@Success		200	{object}	model.GuestTokenRes
//	@Failure		500	{object}	response.ResponseErrorModel
//	@Router			/v1/auth/guest [post]
func (m *AuthHandler) GuestToken(c *fiber.Ctx) error {
	res, err := m.authService.CreateGuestToken()
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res)
}

// SignUp godoc
//
//	@Summary		Sign Up
//	@Description	Create an account with email and password. The account stays inactive until a plan is activated.
//	@Tags			Auth
//	@Param			user	body		model.SignUpReq	true	"sign up data"
//	@Success		201		{object}	model.AuthRes
//	@Failure		400,409	{object}	response.ResponseErrorModel
//	@Router			/v1/auth/signup [post]
func (m *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req model.SignUpReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := m.authService.SignUp(c.UserContext(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail),
			errors.Is(err, service.ErrPasswordsNotMatch),
			errors.Is(err, service.ErrPasswordTooShort):
			return response.ResponseError(c, err.Error(), fiber.StatusBadRequest)
		case errors.Is(err, service.ErrEmailExists):
			return response.ResponseError(c, err.Error(), fiber.StatusConflict)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseCreated(c, res)
}

// SignIn godoc
//
//	@Summary		Sign In
//	@Description	Sign in with email and password. Accounts without an active plan are rejected.
//	@Tags			Auth
//	@Param			user			body		model.SignInReq	true	"credentials"
//	@Success		200				{object}	model.AuthRes
//	@Failure		400,401,403,404	{object}	response.ResponseErrorModel
//	@Router			/v1/auth/signin [post]
func (m *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req model.SignInReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := m.authService.SignIn(c.UserContext(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			return response.ResponseError(c, err.Error(), fiber.StatusBadRequest)
		case errors.Is(err, service.ErrUserPassNotMatch):
			return response.ResponseError(c, err.Error(), fiber.StatusUnauthorized)
		case errors.Is(err, service.ErrAccountNotFound):
			return response.ResponseError(c, err.Error(), fiber.StatusNotFound)
		case errors.Is(err, service.ErrPlanNotActive):
			return response.ResponseError(c, err.Error(), fiber.StatusForbidden)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res)
}

// SignOut godoc
//
//	@Summary		Sign Out
//	@Description	Revoke refresh tokens and blacklist the current id token.
//	@Tags			Auth
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		401,500	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/auth/signout [post]
func (m *AuthHandler) SignOut(c *fiber.Ctx) error {
	err := m.authService.SignOut(c.UserContext(), middleware.GetSession(c))
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			return response.ResponseError(c, err.Error(), fiber.StatusUnauthorized)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOK(c, "")
}
