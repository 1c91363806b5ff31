package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"streamsphere/internal/docstore"
	"streamsphere/internal/repository"
	"streamsphere/model"
	errorHandler "streamsphere/pkg/error"
	"streamsphere/pkg/response"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId string, email string) (*model.UserProfile, error)
	CreateProfile(ctx context.Context, userId string, email string, displayName string) (*model.UserProfile, error)
	CheckUsernameAvailability(ctx context.Context, userId string, username string) bool
	UpdateProfile(ctx context.Context, userId string, req *model.UpdateProfileReq) (*model.UserProfile, error)
}

type UserService struct {
	userRepo repository.IUserRepository
	locks    *keyedMutex
	timeout  time.Duration
	now      func() time.Time
}

const UsernameMinLength = 3

var (
	ErrUsernameTooShort  = errors.New(response.UsernameTooShort)
	ErrUsernameTaken     = errors.New(response.UsernameAlreadyExist)
	ErrInvalidPreference = errors.New(response.BadRequestBody)
)

func NewUserService(userRepo repository.IUserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		locks:    newKeyedMutex(),
		timeout:  time.Duration(5) * time.Second,
		now:      time.Now,
	}
}

//------------------------------------------
//------------------------------------------

// GetProfile returns the stored profile, creating the default one on first access.
func (m *UserService) GetProfile(ctx context.Context, userId string, email string) (*model.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	profile, err := m.userRepo.GetProfile(ctx, userId)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, docstore.ErrNotFound) {
		return nil, err
	}

	defaultProfile := model.NewDefaultProfile(userId, email, m.now())
	if err = m.userRepo.SaveProfile(ctx, userId, &defaultProfile); err != nil {
		return nil, err
	}
	return &defaultProfile, nil
}

// CreateProfile writes a fresh profile with an inactive plan.
func (m *UserService) CreateProfile(ctx context.Context, userId string, email string, displayName string) (*model.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	profile := model.NewDefaultProfile(userId, email, m.now())
	if displayName = strings.TrimSpace(displayName); displayName != "" {
		profile.DisplayName = displayName
	}
	if err := m.userRepo.SaveProfile(ctx, userId, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// CheckUsernameAvailability reports whether username is free or already held by userId.
// Lookup errors are treated as taken.
func (m *UserService) CheckUsernameAvailability(ctx context.Context, userId string, username string) bool {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	ids, err := m.userRepo.FindUserIdsByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		errorMessage := fmt.Sprintf("Error checking username: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return false
	}
	switch len(ids) {
	case 0:
		return true
	case 1:
		return ids[0] == userId
	default:
		return false
	}
}

// UpdateProfile changes display name, username and preferences. An empty username
// keeps the current one. Nothing is written when the username is held by someone else.
func (m *UserService) UpdateProfile(ctx context.Context, userId string, req *model.UpdateProfileReq) (*model.UserProfile, error) {
	username := strings.TrimSpace(req.Username)
	if username != "" && utf8.RuneCountInString(username) < UsernameMinLength {
		return nil, ErrUsernameTooShort
	}
	if req.Preferences != nil && (req.Preferences.Language == "" || req.Preferences.MaturityRating == "") {
		return nil, ErrInvalidPreference
	}

	if username != "" {
		unlock := m.locks.Lock("username:" + strings.ToLower(username))
		defer unlock()
	}

	profile, err := m.GetProfile(ctx, userId, "")
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if username != "" && username != profile.Username {
		if !m.CheckUsernameAvailability(ctx, userId, username) {
			return nil, ErrUsernameTaken
		}
		fields["username"] = username
		profile.Username = username
	}
	if displayName := strings.TrimSpace(req.DisplayName); displayName != "" {
		fields["displayName"] = displayName
		profile.DisplayName = displayName
	}
	if req.Preferences != nil {
		fields["preferences"] = *req.Preferences
		profile.Preferences = *req.Preferences
	}
	if len(fields) == 0 {
		return profile, nil
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	if err = m.userRepo.UpdateProfileFields(ctx, userId, fields); err != nil {
		return nil, err
	}
	return profile, nil
}
