package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"streamsphere/internal/repository"
	"streamsphere/internal/service"
	"streamsphere/pkg/response"
)

type IAdminHandler interface {
	FetchDbConfigs(c *fiber.Ctx) error
}

type AdminHandler struct {
	adminService service.IAdminService
}

func NewAdminHandler(adminService service.IAdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

//------------------------------------------
//------------------------------------------

// FetchDbConfigs godoc
//
//	@Summary		Fetch Configs
//	@Description	Reload the dynamic configs from the configs collection. Admins only.
//	@Tags			Admin
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		401,403,404,500	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/admin/fetch_configs [get]
func (m *AdminHandler) FetchDbConfigs(c *fiber.Ctx) error {
	err := m.adminService.FetchDbConfigs()
	if err != nil {
		if errors.Is(err, repository.ErrNoConfigsDb) {
			return response.ResponseError(c, response.ConfigsDbNotFound, fiber.StatusNotFound)
		}
		return response.ResponseError(c, err.Error(), fiber.StatusInternalServerError)
	}

	return response.ResponseOK(c, "")
}
