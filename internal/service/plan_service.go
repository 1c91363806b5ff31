package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"streamsphere/internal/repository"
	"streamsphere/model"
	errorHandler "streamsphere/pkg/error"
	"streamsphere/pkg/response"
)

type IPlanService interface {
	GetPlans() []model.Plan
	ActivatePlan(ctx context.Context, session *model.Session, req *model.ActivatePlanReq) (*model.UserProfile, error)
	GetActivations(ctx context.Context, session *model.Session) ([]model.PlanActivation, error)
}

type PlanService struct {
	userRepo    repository.IUserRepository
	userService IUserService
	planRepo    repository.IPlanRepository
	now         func() time.Time
}

var (
	ErrPlanNotFound      = errors.New(response.PlanNotFound)
	ErrPaymentRefMissing = errors.New(response.PaymentRefMissing)
	ErrNoPlanLedger      = errors.New("plan ledger is not configured")
)

var plans = []model.Plan{
	{
		Title:      model.PlanFree,
		Price:      "$0",
		PriceCents: 0,
		Features:   []string{"Limited catalog", "480p streaming", "1 device", "Ads supported"},
	},
	{
		Title:      model.PlanBasic,
		Price:      "$8.99/month",
		PriceCents: 899,
		Features:   []string{"Full catalog", "720p streaming", "1 device", "No ads"},
	},
	{
		Title:      model.PlanStandard,
		Price:      "$13.99/month",
		PriceCents: 1399,
		Features:   []string{"Full catalog", "1080p streaming", "2 devices", "No ads", "Downloads"},
		IsPopular:  true,
	},
	{
		Title:      model.PlanPremium,
		Price:      "$17.99/month",
		PriceCents: 1799,
		Features:   []string{"Full catalog", "4K + HDR streaming", "4 devices", "No ads", "Downloads"},
	},
}

// NewPlanService takes a nil planRepo when the postgres ledger is not configured.
func NewPlanService(userRepo repository.IUserRepository, userService IUserService, planRepo repository.IPlanRepository) *PlanService {
	return &PlanService{
		userRepo:    userRepo,
		userService: userService,
		planRepo:    planRepo,
		now:         time.Now,
	}
}

//------------------------------------------
//------------------------------------------

func (m *PlanService) GetPlans() []model.Plan {
	result := make([]model.Plan, len(plans))
	copy(result, plans)
	return result
}

func FindPlan(title string) (model.Plan, bool) {
	for _, p := range plans {
		if strings.EqualFold(p.Title, strings.TrimSpace(title)) {
			return p, true
		}
	}
	return model.Plan{}, false
}

// ActivatePlan marks the user's account active. Paid plans need a payment reference,
// which is recorded, not verified. Activating an active account is a no-op.
func (m *PlanService) ActivatePlan(ctx context.Context, session *model.Session, req *model.ActivatePlanReq) (*model.UserProfile, error) {
	plan, ok := FindPlan(req.Plan)
	if !ok {
		return nil, ErrPlanNotFound
	}
	paymentRef := strings.TrimSpace(req.PaymentRef)
	if plan.IsPaid() && paymentRef == "" {
		return nil, ErrPaymentRefMissing
	}

	profile, err := m.userService.GetProfile(ctx, session.UserId, session.Email)
	if err != nil {
		return nil, err
	}
	if profile.Status {
		return profile, nil
	}

	activatedAt := m.now()
	walletAddress := strings.TrimSpace(req.WalletAddress)
	fields := map[string]interface{}{
		"status":          true,
		"plan":            plan.Title,
		"planActivatedAt": activatedAt,
		"ethAddress":      walletAddress,
	}
	if err = m.userRepo.UpdateProfileFields(ctx, session.UserId, fields); err != nil {
		return nil, err
	}
	profile.Status = true
	profile.Plan = plan.Title
	profile.PlanActivatedAt = &activatedAt
	profile.EthAddress = walletAddress

	if m.planRepo != nil {
		err = m.planRepo.SaveActivation(ctx, &model.PlanActivation{
			UserId:        session.UserId,
			Plan:          plan.Title,
			PriceCents:    plan.PriceCents,
			PaymentRef:    paymentRef,
			WalletAddress: walletAddress,
			CreatedAt:     activatedAt,
		})
		if err != nil {
			errorMessage := fmt.Sprintf("Error saving plan activation: %v", err)
			errorHandler.SaveError(errorMessage, err)
		}
	}
	return profile, nil
}

func (m *PlanService) GetActivations(ctx context.Context, session *model.Session) ([]model.PlanActivation, error) {
	if m.planRepo == nil {
		return nil, ErrNoPlanLedger
	}
	activations, err := m.planRepo.GetActivations(ctx, session.UserId)
	if err != nil {
		return nil, err
	}
	if activations == nil {
		activations = []model.PlanActivation{}
	}
	return activations, nil
}
