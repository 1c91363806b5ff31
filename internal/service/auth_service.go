package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/badoux/checkmail"

	"streamsphere/internal/docstore"
	"streamsphere/internal/repository"
	"streamsphere/model"
	errorHandler "streamsphere/pkg/error"
	"streamsphere/pkg/metrics"
	"streamsphere/pkg/response"
	"streamsphere/util"
)

type IAuthService interface {
	CreateGuestToken() (*model.GuestTokenRes, error)
	VerifyGuestToken(token string) (string, error)
	VerifyIdToken(ctx context.Context, idToken string) (*model.Session, error)
	SignUp(ctx context.Context, req *model.SignUpReq) (*model.AuthRes, error)
	SignIn(ctx context.Context, req *model.SignInReq) (*model.AuthRes, error)
	SignOut(ctx context.Context, session *model.Session) error
}

type AuthService struct {
	identity         IIdentityProvider
	userRepo         repository.IUserRepository
	userService      IUserService
	guestTokenSecret []byte
	guestTokenTtl    time.Duration
	now              func() time.Time
}

const (
	passwordMinLength = 6
	guestTokenTtl     = 30 * 24 * time.Hour
)

var (
	ErrInvalidEmail      = errors.New(response.InvalidEmail)
	ErrPasswordsNotMatch = errors.New(response.PasswordsNotMatch)
	ErrPasswordTooShort  = errors.New(response.PasswordTooShort)
	ErrEmailExists       = errors.New(response.EmailAlreadyExist)
	ErrUserPassNotMatch  = errors.New(response.UserPassNotMatch)
	ErrAccountNotFound   = errors.New(response.AccountNotFound)
	ErrPlanNotActive     = errors.New(response.PlanNotActive)
	ErrInvalidToken      = errors.New(response.InvalidToken)
	ErrInvalidGuestToken = errors.New(response.InvalidGuestToken)
)

func NewAuthService(identity IIdentityProvider, userRepo repository.IUserRepository, userService IUserService, guestTokenSecret string) *AuthService {
	return &AuthService{
		identity:         identity,
		userRepo:         userRepo,
		userService:      userService,
		guestTokenSecret: []byte(guestTokenSecret),
		guestTokenTtl:    guestTokenTtl,
		now:              time.Now,
	}
}

//------------------------------------------
//------------------------------------------

func (m *AuthService) CreateGuestToken() (*model.GuestTokenRes, error) {
	token, err := util.CreateGuestToken(m.guestTokenSecret, m.guestTokenTtl)
	if err != nil {
		return nil, err
	}
	metrics.AuthEvents.WithLabelValues("guest", "ok").Inc()
	return &model.GuestTokenRes{
		DeviceId:  token.DeviceId,
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

// VerifyGuestToken returns the device id carried by token.
func (m *AuthService) VerifyGuestToken(token string) (string, error) {
	claims, err := util.VerifyGuestToken(m.guestTokenSecret, token)
	if err != nil {
		return "", ErrInvalidGuestToken
	}
	return claims.DeviceId, nil
}

// VerifyIdToken checks the blacklist before verifying the token with the identity provider.
func (m *AuthService) VerifyIdToken(ctx context.Context, idToken string) (*model.Session, error) {
	if IsJwtBlacklisted(ctx, idToken) {
		return nil, ErrInvalidToken
	}
	token, err := m.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &model.Session{
		UserId:    token.UserId,
		Email:     token.Email,
		IsAdmin:   token.IsAdmin,
		Token:     idToken,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

//------------------------------------------
//------------------------------------------

func (m *AuthService) SignUp(ctx context.Context, req *model.SignUpReq) (res *model.AuthRes, err error) {
	defer func() {
		metrics.AuthEvents.WithLabelValues("signup", metrics.Result(err)).Inc()
	}()

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if err = checkmail.ValidateFormat(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordsNotMatch
	}
	if len(req.Password) < passwordMinLength {
		return nil, ErrPasswordTooShort
	}

	userId, err := m.identity.CreateUser(ctx, email, req.Password, strings.TrimSpace(req.DisplayName))
	if err != nil {
		if errors.Is(err, ErrIdentityEmailExists) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	profile, err := m.userService.CreateProfile(ctx, userId, email, req.DisplayName)
	if err != nil {
		// an account without a profile can neither sign in nor sign up again
		if deleteErr := m.identity.DeleteUser(ctx, userId); deleteErr != nil {
			errorMessage := fmt.Sprintf("Error deleting user [%v] after failed profile creation: %v", userId, deleteErr)
			errorHandler.SaveError(errorMessage, deleteErr)
		}
		return nil, err
	}

	res = &model.AuthRes{
		UserId:  userId,
		Email:   email,
		Profile: profile,
	}
	// tokens let the client pick a plan right away
	signIn, signInErr := m.identity.SignInWithPassword(ctx, email, req.Password)
	if signInErr != nil {
		errorMessage := fmt.Sprintf("Error signing in after signup: %v", signInErr)
		errorHandler.SaveError(errorMessage, signInErr)
	} else {
		res.IdToken = signIn.IdToken
		res.RefreshToken = signIn.RefreshToken
		res.ExpiresIn = signIn.ExpiresIn
	}
	return res, nil
}

// SignIn verifies the password and requires an existing profile with an active plan.
func (m *AuthService) SignIn(ctx context.Context, req *model.SignInReq) (res *model.AuthRes, err error) {
	defer func() {
		metrics.AuthEvents.WithLabelValues("signin", metrics.Result(err)).Inc()
	}()

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if err = checkmail.ValidateFormat(email); err != nil {
		return nil, ErrInvalidEmail
	}

	signIn, err := m.identity.SignInWithPassword(ctx, email, req.Password)
	if err != nil {
		if errors.Is(err, ErrIdentityInvalidLogin) {
			return nil, ErrUserPassNotMatch
		}
		return nil, err
	}

	profile, err := m.userRepo.GetProfile(ctx, signIn.UserId)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	if !profile.Status {
		return nil, ErrPlanNotActive
	}

	return &model.AuthRes{
		UserId:       signIn.UserId,
		Email:        signIn.Email,
		IdToken:      signIn.IdToken,
		RefreshToken: signIn.RefreshToken,
		ExpiresIn:    signIn.ExpiresIn,
		Profile:      profile,
	}, nil
}

// SignOut revokes the user's refresh tokens and blacklists the id token until it expires.
func (m *AuthService) SignOut(ctx context.Context, session *model.Session) (err error) {
	defer func() {
		metrics.AuthEvents.WithLabelValues("signout", metrics.Result(err)).Inc()
	}()

	if !session.IsAuthenticated() {
		return ErrInvalidToken
	}
	if err = m.identity.RevokeRefreshTokens(ctx, session.UserId); err != nil {
		return err
	}

	if session.Token == "" {
		return nil
	}
	ttl := time.Until(time.Unix(session.ExpiresAt, 0))
	if session.ExpiresAt == 0 || ttl <= 0 {
		ttl = time.Hour
	}
	return setJwtDataCache(ctx, session.Token, session.UserId, ttl)
}
