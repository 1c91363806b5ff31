package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamsphere/internal/repository"
	"streamsphere/model"
)

type authFixture struct {
	svc      *AuthService
	identity *fakeIdentity
	store    *countingStore
	userRepo *repository.UserRepository
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	resetState(t)
	store := newCountingStore()
	userRepo := repository.NewUserRepository(store)
	identity := &fakeIdentity{}
	return &authFixture{
		svc:      NewAuthService(identity, userRepo, NewUserService(userRepo), "test-secret"),
		identity: identity,
		store:    store,
		userRepo: userRepo,
	}
}

func TestGuestToken(t *testing.T) {
	f := newAuthFixture(t)

	token, err := f.svc.CreateGuestToken()
	require.NoError(t, err)
	assert.NotEmpty(t, token.DeviceId)
	assert.Greater(t, token.ExpiresAt, time.Now().Add(29*24*time.Hour).UnixMilli())

	deviceId, err := f.svc.VerifyGuestToken(token.Token)
	require.NoError(t, err)
	assert.Equal(t, token.DeviceId, deviceId)

	_, err = f.svc.VerifyGuestToken(token.Token + "x")
	assert.ErrorIs(t, err, ErrInvalidGuestToken)

	other := NewAuthService(f.identity, f.userRepo, nil, "other-secret")
	_, err = other.VerifyGuestToken(token.Token)
	assert.ErrorIs(t, err, ErrInvalidGuestToken)
}

func TestSignUpValidation(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.SignUp(ctx, &model.SignUpReq{Email: "not-an-email", Password: "secret1", ConfirmPassword: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = f.svc.SignUp(ctx, &model.SignUpReq{Email: "neo@example.com", Password: "secret1", ConfirmPassword: "secret2"})
	assert.ErrorIs(t, err, ErrPasswordsNotMatch)

	_, err = f.svc.SignUp(ctx, &model.SignUpReq{Email: "neo@example.com", Password: "12345", ConfirmPassword: "12345"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	assert.Equal(t, 0, f.store.writeCount())
}

func TestSignUpCreatesInactiveProfile(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	res, err := f.svc.SignUp(ctx, &model.SignUpReq{
		Email:           "Neo@Example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		DisplayName:     "Neo",
	})
	require.NoError(t, err)
	assert.Equal(t, "neo@example.com", res.Email)
	assert.Equal(t, "id", res.IdToken)
	assert.Equal(t, "Neo", res.Profile.DisplayName)
	assert.False(t, res.Profile.Status)

	stored, err := f.userRepo.GetProfile(ctx, res.UserId)
	require.NoError(t, err)
	assert.Equal(t, "neo@example.com", stored.Email)

	_, err = f.svc.SignUp(ctx, &model.SignUpReq{Email: "neo@example.com", Password: "secret1", ConfirmPassword: "secret1"})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestSignUpRollsBackUserWhenProfileFails(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	req := &model.SignUpReq{Email: "trinity@example.com", Password: "secret1", ConfirmPassword: "secret1"}

	f.store.setErr = errBackend
	_, err := f.svc.SignUp(ctx, req)
	assert.ErrorIs(t, err, errBackend)
	assert.Equal(t, []string{"uid-trinity@example.com"}, f.identity.deleted)

	f.store.setErr = nil
	res, err := f.svc.SignUp(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "uid-trinity@example.com", res.UserId)

	require.NoError(t, f.userRepo.UpdateProfileFields(ctx, res.UserId, map[string]interface{}{"status": true}))
	signIn, err := f.svc.SignIn(ctx, &model.SignInReq{Email: req.Email, Password: req.Password})
	require.NoError(t, err)
	assert.Equal(t, res.UserId, signIn.UserId)
}

func TestSignIn(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	req := &model.SignInReq{Email: "neo@example.com", Password: "secret1"}

	f.identity.signErr = ErrIdentityInvalidLogin
	_, err := f.svc.SignIn(ctx, req)
	assert.ErrorIs(t, err, ErrUserPassNotMatch)

	f.identity.signErr = nil
	f.identity.signIn = &PasswordSignIn{UserId: "u1", Email: "neo@example.com", IdToken: "id-1"}
	_, err = f.svc.SignIn(ctx, req)
	assert.ErrorIs(t, err, ErrAccountNotFound)

	profile := model.NewDefaultProfile("u1", "neo@example.com", time.Now())
	require.NoError(t, f.userRepo.SaveProfile(ctx, "u1", &profile))
	_, err = f.svc.SignIn(ctx, req)
	assert.ErrorIs(t, err, ErrPlanNotActive)

	require.NoError(t, f.userRepo.UpdateProfileFields(ctx, "u1", map[string]interface{}{"status": true}))
	res, err := f.svc.SignIn(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "id-1", res.IdToken)
	assert.True(t, res.Profile.Status)
}

func TestVerifyIdTokenAndSignOut(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.VerifyIdToken(ctx, "forged")
	assert.ErrorIs(t, err, ErrInvalidToken)

	session, err := f.svc.VerifyIdToken(ctx, "valid-token")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", session.UserId)
	assert.False(t, session.IsAdmin)

	admin, err := f.svc.VerifyIdToken(ctx, "admin-token")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)

	require.NoError(t, f.svc.SignOut(ctx, session))
	assert.Equal(t, []string{"uid-1"}, f.identity.revoked)
	assert.True(t, IsJwtBlacklisted(ctx, "valid-token"))

	_, err = f.svc.VerifyIdToken(ctx, "valid-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	assert.ErrorIs(t, f.svc.SignOut(ctx, guestSession("d1")), ErrInvalidToken)
}
