package model

import "time"

const (
	DefaultDisplayName    = "StreamSphere User"
	DefaultPhotoURL       = "/assets/images/def_prof.png"
	DefaultLanguage       = "en"
	DefaultMaturityRating = "U/A 13+"
)

type UserPreferences struct {
	Language       string `bson:"language" firestore:"language" json:"language"`
	MaturityRating string `bson:"maturityRating" firestore:"maturityRating" json:"maturityRating"`
}

type UserProfile struct {
	Username        string          `bson:"username" firestore:"username" json:"username"`
	DisplayName     string          `bson:"displayName" firestore:"displayName" json:"displayName"`
	PhotoURL        string          `bson:"photoURL" firestore:"photoURL" json:"photoURL"`
	Email           string          `bson:"email" firestore:"email" json:"email"`
	CreatedAt       time.Time       `bson:"createdAt" firestore:"createdAt" json:"createdAt"`
	Preferences     UserPreferences `bson:"preferences" firestore:"preferences" json:"preferences"`
	Status          bool            `bson:"status" firestore:"status" json:"status"`
	Plan            string          `bson:"plan" firestore:"plan" json:"plan"`
	PlanActivatedAt *time.Time      `bson:"planActivatedAt" firestore:"planActivatedAt" json:"planActivatedAt"`
	EthAddress      string          `bson:"ethAddress" firestore:"ethAddress" json:"ethAddress"`
}

func NewDefaultProfile(userId string, email string, now time.Time) UserProfile {
	prefix := userId
	if len(prefix) > 5 {
		prefix = prefix[:5]
	}
	return UserProfile{
		Username:    "user_" + prefix,
		DisplayName: DefaultDisplayName,
		PhotoURL:    DefaultPhotoURL,
		Email:       email,
		CreatedAt:   now,
		Preferences: UserPreferences{
			Language:       DefaultLanguage,
			MaturityRating: DefaultMaturityRating,
		},
	}
}

//------------------------------------------
//------------------------------------------

type UpdateProfileReq struct {
	DisplayName string           `json:"displayName"`
	Username    string           `json:"username"`
	Preferences *UserPreferences `json:"preferences"`
}

type UsernameCheckRes struct {
	Username  string `json:"username"`
	Available bool   `json:"available"`
}

type SignUpReq struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	DisplayName     string `json:"displayName"`
}

type SignInReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthRes struct {
	UserId       string       `json:"userId"`
	Email        string       `json:"email"`
	IdToken      string       `json:"idToken,omitempty"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	ExpiresIn    int64        `json:"expiresIn,omitempty"`
	Profile      *UserProfile `json:"profile"`
}

type GuestTokenRes struct {
	DeviceId  string `json:"deviceId"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
