package util

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const GuestTokenIssuer = "streamsphere-guest"

var ErrEmptySecret = errors.New("guest token secret is empty")

type GuestJwtClaims struct {
	DeviceId string `json:"deviceId"`
	jwt.RegisteredClaims
}

type GuestToken struct {
	DeviceId  string
	Token     string
	ExpiresAt int64
}

// CreateGuestToken signs a token for a new random device id.
func CreateGuestToken(secret []byte, duration time.Duration) (*GuestToken, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	now := time.Now()
	expiresAt := now.Add(duration)
	deviceId := uuid.NewString()
	claims := GuestJwtClaims{
		DeviceId: deviceId,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    GuestTokenIssuer,
			Subject:   deviceId,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return nil, err
	}
	return &GuestToken{
		DeviceId:  deviceId,
		Token:     token,
		ExpiresAt: expiresAt.UnixMilli(),
	}, nil
}

func VerifyGuestToken(secret []byte, tokenString string) (*GuestJwtClaims, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	claims := GuestJwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signature method")
		}
		return secret, nil
	}, jwt.WithIssuer(GuestTokenIssuer))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.DeviceId == "" {
		return nil, errors.New("invalid guest token")
	}
	return &claims, nil
}
