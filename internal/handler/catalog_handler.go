package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"streamsphere/api/middleware"
	"streamsphere/internal/service"
	"streamsphere/model"
	"streamsphere/pkg/response"
)

type ICatalogHandler interface {
	GetPage(c *fiber.Ctx) error
	Discover(c *fiber.Ctx) error
	PlayMedia(c *fiber.Ctx) error
}

type CatalogHandler struct {
	catalogService service.ICatalogService
}

func NewCatalogHandler(catalogService service.ICatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

//------------------------------------------
//------------------------------------------

// GetPage godoc
//
//	@Summary		Catalog Page
//	@Description	Rows of a catalog page. Rows that could not be fetched are empty.
//	@Tags			Catalog
//	@Param			page	path		string	true	"home, movies or tv"
//	@Success		200		{object}	model.CatalogPage
//	@Failure		404		{object}	response.ResponseErrorModel
//	@Router			/v1/catalog/{page} [get]
func (m *CatalogHandler) GetPage(c *fiber.Ctx) error {
	page := c.Params("page", "")
	res, err := m.catalogService.GetPage(c.UserContext(), page)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			return response.ResponseError(c, err.Error(), fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res)
}

// Discover godoc
//
//	@Summary		Discover
//	@Description	Titles of one genre.
//	@Tags			Catalog
//	@Param			mediaType	path		string	true	"movie or tv"
//	@Param			genreId		path		int		true	"tmdb genre id"
//	@Success		200			{object}	[]model.MediaItem
//	@Failure		400,500		{object}	response.ResponseErrorModel
//	@Router			/v1/discover/{mediaType}/{genreId} [get]
func (m *CatalogHandler) Discover(c *fiber.Ctx) error {
	genreId, err := c.ParamsInt("genreId", 0)
	if err != nil {
		return response.ResponseError(c, response.InvalidGenreId, fiber.StatusBadRequest)
	}

	res, err := m.catalogService.Discover(c.UserContext(), c.Params("mediaType", ""), genreId)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMediaType) || errors.Is(err, service.ErrInvalidGenreId) {
			return response.ResponseError(c, err.Error(), fiber.StatusBadRequest)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res)
}

// PlayMedia godoc
//
//	@Summary		Play Media
//	@Description	Pick a trailer for the title and record it in the viewing history of signed in users.
//	@Tags			Catalog
//	@Param			media	body		model.MediaItem	true	"the title to play"
//	@Success		200		{object}	model.PlayMediaRes
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/v1/media/play [post]
func (m *CatalogHandler) PlayMedia(c *fiber.Ctx) error {
	var item model.MediaItem
	if err := c.BodyParser(&item); err != nil || item.Id <= 0 {
		return response.ResponseError(c, response.InvalidMediaId, fiber.StatusBadRequest)
	}

	res, err := m.catalogService.PlayMedia(c.UserContext(), middleware.GetSession(c), item)
	if err != nil {
		if errors.Is(err, service.ErrTrailerNotFound) {
			return response.ResponseError(c, err.Error(), fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res)
}
