package handler

import (
	"github.com/gofiber/fiber/v2"

	"streamsphere/api/middleware"
	"streamsphere/internal/service"
	"streamsphere/model"
	"streamsphere/pkg/response"
)

type IListHandler interface {
	GetMyList(c *fiber.Ctx) error
	AddToMyList(c *fiber.Ctx) error
	RemoveFromMyList(c *fiber.Ctx) error
	MyListStatus(c *fiber.Ctx) error
}

type ListHandler struct {
	listService service.IListService
}

func NewListHandler(listService service.IListService) *ListHandler {
	return &ListHandler{
		listService: listService,
	}
}

//------------------------------------------
//------------------------------------------

// GetMyList godoc
//
//	@Summary		My List
//	@Description	The caller's list, from the document store for users and the local store for guests.
//	@Tags			My-List
//	@Param			X-Guest-Token	header		string	false	"guest token"
//	@Success		200				{object}	[]model.MediaItem
//	@Failure		401				{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/mylist [get]
func (m *ListHandler) GetMyList(c *fiber.Ctx) error {
	res := m.listService.GetMyList(c.UserContext(), middleware.GetSession(c))
	return response.ResponseOKWithData(c, res)
}

// AddToMyList godoc
//
//	@Summary		Add To My List
//	@Description	Add a title, adding one already in the list changes nothing.
//	@Tags			My-List
//	@Param			X-Guest-Token	header		string			false	"guest token"
//	@Param			media			body		model.MediaItem	true	"the title"
//	@Success		200				{object}	[]model.MediaItem
//	@Failure		400,401,500		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/mylist [post]
func (m *ListHandler) AddToMyList(c *fiber.Ctx) error {
	var item model.MediaItem
	if err := c.BodyParser(&item); err != nil || item.Id <= 0 {
		return response.ResponseError(c, response.InvalidMediaId, fiber.StatusBadRequest)
	}
	if !model.IsValidMediaType(item.MediaType) {
		return response.ResponseError(c, response.InvalidMediaType, fiber.StatusBadRequest)
	}

	res, err := m.listService.AddToMyList(c.UserContext(), middleware.GetSession(c), item)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res)
}

// RemoveFromMyList godoc
//
//	@Summary		Remove From My List
//	@Description	Remove a title, removing one not in the list changes nothing.
//	@Tags			My-List
//	@Param			X-Guest-Token	header		string	false	"guest token"
//	@Param			mediaType		path		string	true	"movie or tv"
//	@Param			id				path		int		true	"tmdb id"
//	@Success		200				{object}	[]model.MediaItem
//	@Failure		400,401,500		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/mylist/{mediaType}/{id} [delete]
func (m *ListHandler) RemoveFromMyList(c *fiber.Ctx) error {
	id, mediaType, ok := mediaParams(c)
	if !ok {
		return response.ResponseError(c, response.InvalidMediaId, fiber.StatusBadRequest)
	}

	res, err := m.listService.RemoveFromMyList(c.UserContext(), middleware.GetSession(c), id, mediaType)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res)
}

// MyListStatus godoc
//
//	@Summary		My List Status
//	@Description	Whether a title is in the caller's list.
//	@Tags			My-List
//	@Param			X-Guest-Token	header		string	false	"guest token"
//	@Param			mediaType		path		string	true	"movie or tv"
//	@Param			id				path		int		true	"tmdb id"
//	@Success		200				{object}	model.MyListStatusRes
//	@Failure		400,401			{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/mylist/status/{mediaType}/{id} [get]
func (m *ListHandler) MyListStatus(c *fiber.Ctx) error {
	id, mediaType, ok := mediaParams(c)
	if !ok {
		return response.ResponseError(c, response.InvalidMediaId, fiber.StatusBadRequest)
	}

	inList := m.listService.IsInMyList(c.UserContext(), middleware.GetSession(c), id, mediaType)
	return response.ResponseOKWithData(c, model.MyListStatusRes{InMyList: inList})
}

func mediaParams(c *fiber.Ctx) (int, string, bool) {
	mediaType := c.Params("mediaType", "")
	id, err := c.ParamsInt("id", 0)
	if err != nil || id <= 0 || !model.IsValidMediaType(mediaType) {
		return 0, "", false
	}
	return id, mediaType, true
}
