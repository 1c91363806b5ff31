package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"streamsphere/api/middleware"
	"streamsphere/internal/service"
	"streamsphere/model"
	"streamsphere/pkg/response"
)

type IPlanHandler interface {
	GetPlans(c *fiber.Ctx) error
	ActivatePlan(c *fiber.Ctx) error
	GetActivations(c *fiber.Ctx) error
}

type PlanHandler struct {
	planService service.IPlanService
}

func NewPlanHandler(planService service.IPlanService) *PlanHandler {
	return &PlanHandler{
		planService: planService,
	}
}

//------------------------------------------
//------------------------------------------

// GetPlans godoc
//
//	@Summary		Plans
//	@Description	Subscription plans.
//	@Tags			Plans
//	@Success		200	{object}	[]model.Plan
//	@Router			/v1/plans [get]
func (m *PlanHandler) GetPlans(c *fiber.Ctx) error {
	return response.ResponseOKWithData(c, m.planService.GetPlans())
}

// ActivatePlan godoc
//
//	@Summary		Activate Plan
//	@Description	Activate the caller's account. Paid plans need a payment reference, which is recorded as is.
//	@Tags			Plans
//	@Param			plan		body		model.ActivatePlanReq	true	"plan selection"
//	@Success		200			{object}	model.UserProfile
//	@Failure		400,401,500	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/plans/activate [post]
func (m *PlanHandler) ActivatePlan(c *fiber.Ctx) error {
	var req model.ActivatePlanReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := m.planService.ActivatePlan(c.UserContext(), middleware.GetSession(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) || errors.Is(err, service.ErrPaymentRefMissing) {
			return response.ResponseError(c, err.Error(), fiber.StatusBadRequest)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res)
}

// GetActivations godoc
//
//	@Summary		Plan Activations
//	@Description	The caller's plan ledger rows, newest first.
//	@Tags			Plans
//	@Success		200			{object}	[]model.PlanActivation
//	@Failure		401,404,500	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/plans/activations [get]
func (m *PlanHandler) GetActivations(c *fiber.Ctx) error {
	res, err := m.planService.GetActivations(c.UserContext(), middleware.GetSession(c))
	if err != nil {
		if errors.Is(err, service.ErrNoPlanLedger) {
			return response.ResponseError(c, err.Error(), fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res)
}
