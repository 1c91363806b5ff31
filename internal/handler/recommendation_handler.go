package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"streamsphere/api/middleware"
	"streamsphere/internal/service"
	"streamsphere/model"
	errorHandler "streamsphere/pkg/error"
	"streamsphere/pkg/response"
)

type IRecommendationHandler interface {
	GetRecommendations(c *fiber.Ctx) error
	RefreshRecommendations(c *fiber.Ctx) error
}

type RecommendationHandler struct {
	recommendationService service.IRecommendationService
}

func NewRecommendationHandler(recommendationService service.IRecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
	}
}

//------------------------------------------
//------------------------------------------

// GetRecommendations godoc
//
//	@Summary		Recommendations
//	@Description	AI picks based on the caller's list. Stored picks are reused while fresh.
//	@Tags			Recommendations
//	@Param			X-Guest-Token	header		string	false	"guest token"
//	@Success		200				{object}	[]model.RecommendationItem
//	@Failure		401				{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/recommendations [get]
func (m *RecommendationHandler) GetRecommendations(c *fiber.Ctx) error {
	res := m.recommendationService.GetRecommendations(c.UserContext(), middleware.GetSession(c))
	return response.ResponseOKWithData(c, res)
}

// RefreshRecommendations godoc
//
//	@Summary		Refresh Recommendations
//	@Description	Generate new picks now. Rate limited per caller.
//	@Tags			Recommendations
//	@Param			X-Guest-Token	header		string	false	"guest token"
//	@Success		200				{object}	[]model.RecommendationItem
//	@Failure		401,429			{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/recommendations/refresh [post]
func (m *RecommendationHandler) RefreshRecommendations(c *fiber.Ctx) error {
	res, err := m.recommendationService.Refresh(c.UserContext(), middleware.GetSession(c))
	if err != nil {
		errorMessage := fmt.Sprintf("Error refreshing recommendations: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return response.ResponseOKWithData(c, []model.RecommendationItem{})
	}
	return response.ResponseOKWithData(c, res)
}
