package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"streamsphere/internal/service"
	"streamsphere/model"
	"streamsphere/pkg/response"
)

const (
	sessionLocalKey  = "session"
	GuestTokenHeader = "X-Guest-Token"
	GuestTokenQuery  = "guestToken"
)

var (
	LocalhostRegex = regexp.MustCompile(`(?i)^(https?://)?localhost(:\d{4})?$`)
)

// Session resolves the optional caller identity. A bearer id token identifies a user and
// a guest token identifies a device, both may be present. Invalid tokens are rejected,
// missing ones are not.
func Session(authService service.IAuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := &model.Session{}

		if idToken := bearerToken(c.Get(fiber.HeaderAuthorization, "")); idToken != "" {
			userSession, err := authService.VerifyIdToken(c.UserContext(), idToken)
			if err != nil {
				return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
			}
			session = userSession
		}

		guestToken := c.Get(GuestTokenHeader, "")
		if guestToken == "" {
			guestToken = c.Query(GuestTokenQuery, "")
		}
		if guestToken != "" {
			deviceId, err := authService.VerifyGuestToken(guestToken)
			if err != nil {
				return response.ResponseError(c, response.InvalidGuestToken, fiber.StatusUnauthorized)
			}
			session.DeviceId = deviceId
		}

		if session.UserId != "" || session.DeviceId != "" {
			c.Locals(sessionLocalKey, session)
		}
		return c.Next()
	}
}

// RequireSession accepts users and guests.
func RequireSession(c *fiber.Ctx) error {
	if GetSession(c) == nil {
		return response.ResponseError(c, response.SessionRequired, fiber.StatusUnauthorized)
	}
	return c.Next()
}

func RequireUser(c *fiber.Ctx) error {
	if !GetSession(c).IsAuthenticated() {
		return response.ResponseError(c, "Unauthorized, Invalid idToken", fiber.StatusUnauthorized)
	}
	return c.Next()
}

func RequireAdmin(c *fiber.Ctx) error {
	session := GetSession(c)
	if !session.IsAuthenticated() {
		return response.ResponseError(c, "Unauthorized, Invalid idToken", fiber.StatusUnauthorized)
	}
	if !session.IsAdmin {
		return response.ResponseError(c, "Forbidden, Admin users only", fiber.StatusForbidden)
	}
	return c.Next()
}

// GetSession returns the session attached by Session, nil for anonymous requests.
func GetSession(c *fiber.Ctx) *model.Session {
	session, _ := c.Locals(sessionLocalKey).(*model.Session)
	return session
}

// SessionKey keys the rate limiter by owner, falling back to the client ip.
func SessionKey(c *fiber.Ctx) string {
	if session := GetSession(c); session != nil {
		if session.IsAuthenticated() {
			return "user:" + session.UserId
		}
		return "device:" + session.DeviceId
	}
	return c.IP()
}

func bearerToken(header string) string {
	strArr := strings.Fields(header)
	if len(strArr) == 2 && strings.EqualFold(strArr[0], "bearer") {
		return strArr[1]
	}
	return ""
}
