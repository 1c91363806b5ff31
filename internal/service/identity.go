package service

import (
	"context"
	"errors"
	"net/http"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// IIdentityProvider is the account backend: token verification, user creation and password sign in.
type IIdentityProvider interface {
	VerifyIDToken(ctx context.Context, idToken string) (*IdentityToken, error)
	CreateUser(ctx context.Context, email string, password string, displayName string) (string, error)
	SignInWithPassword(ctx context.Context, email string, password string) (*PasswordSignIn, error)
	RevokeRefreshTokens(ctx context.Context, userId string) error
	DeleteUser(ctx context.Context, userId string) error
}

type IdentityToken struct {
	UserId    string
	Email     string
	IsAdmin   bool
	ExpiresAt int64
}

type PasswordSignIn struct {
	UserId       string
	Email        string
	IdToken      string
	RefreshToken string
	ExpiresIn    int64
}

var (
	ErrIdentityEmailExists  = errors.New("email already exists")
	ErrIdentityInvalidLogin = errors.New("invalid email or password")
)

// FirebaseIdentity verifies and manages users with the firebase admin sdk. Password
// sign in goes through the identity toolkit api with the project's web api key.
type FirebaseIdentity struct {
	authClient *auth.Client
	toolkit    *identitytoolkit.Service
}

func NewFirebaseIdentity(ctx context.Context, authClient *auth.Client, webApiKey string) (*FirebaseIdentity, error) {
	identity := &FirebaseIdentity{authClient: authClient}
	if webApiKey != "" {
		toolkit, err := identitytoolkit.NewService(ctx, option.WithAPIKey(webApiKey))
		if err != nil {
			return nil, err
		}
		identity.toolkit = toolkit
	}
	return identity, nil
}

//------------------------------------------
//------------------------------------------

func (f *FirebaseIdentity) VerifyIDToken(ctx context.Context, idToken string) (*IdentityToken, error) {
	token, err := f.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}
	email, _ := token.Claims["email"].(string)
	isAdmin, _ := token.Claims["admin"].(bool)
	return &IdentityToken{
		UserId:    token.UID,
		Email:     email,
		IsAdmin:   isAdmin,
		ExpiresAt: token.Expires,
	}, nil
}

func (f *FirebaseIdentity) CreateUser(ctx context.Context, email string, password string, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}
	user, err := f.authClient.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", ErrIdentityEmailExists
		}
		return "", err
	}
	return user.UID, nil
}

func (f *FirebaseIdentity) SignInWithPassword(ctx context.Context, email string, password string) (*PasswordSignIn, error) {
	if f.toolkit == nil {
		return nil, errors.New("FIREBASE_WEB_API_KEY is not set")
	}
	res, err := f.toolkit.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusBadRequest {
			return nil, ErrIdentityInvalidLogin
		}
		return nil, err
	}
	return &PasswordSignIn{
		UserId:       res.LocalId,
		Email:        res.Email,
		IdToken:      res.IdToken,
		RefreshToken: res.RefreshToken,
		ExpiresIn:    res.ExpiresIn,
	}, nil
}

func (f *FirebaseIdentity) RevokeRefreshTokens(ctx context.Context, userId string) error {
	return f.authClient.RevokeRefreshTokens(ctx, userId)
}

func (f *FirebaseIdentity) DeleteUser(ctx context.Context, userId string) error {
	return f.authClient.DeleteUser(ctx, userId)
}
