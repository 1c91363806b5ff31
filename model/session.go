package model

type Session struct {
	DeviceId string `json:"deviceId"`
	UserId   string `json:"userId"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
	// Token is the raw firebase id token, kept for sign out.
	Token     string `json:"-"`
	ExpiresAt int64  `json:"-"`
}

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.UserId != ""
}

// LocalKey is the key of the session's local store entries.
func (s *Session) LocalKey() string {
	if s == nil {
		return ""
	}
	if s.DeviceId != "" {
		return s.DeviceId
	}
	return s.UserId
}
