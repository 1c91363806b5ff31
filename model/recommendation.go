package model

import "time"

type RecommendationItem struct {
	Id           string `bson:"id" firestore:"id" json:"id"`
	Title        string `bson:"title" firestore:"title" json:"title"`
	MediaType    string `bson:"mediaType" firestore:"mediaType" json:"mediaType"`
	Year         string `bson:"year" firestore:"year" json:"year"`
	Reason       string `bson:"reason" firestore:"reason" json:"reason"`
	Image        string `bson:"image" firestore:"image" json:"image"`
	BackdropPath string `bson:"backdropPath" firestore:"backdropPath" json:"backdropPath"`
	Rating       string `bson:"rating" firestore:"rating" json:"rating"`
	Duration     string `bson:"duration" firestore:"duration" json:"duration"`
	Genres       string `bson:"genres" firestore:"genres" json:"genres"`
	Overview     string `bson:"overview" firestore:"overview" json:"overview"`
}

type UserRecommendations struct {
	Items       []RecommendationItem `bson:"items" firestore:"items" json:"items"`
	GeneratedAt time.Time            `bson:"generatedAt" firestore:"generatedAt" json:"generatedAt"`
}

func (r *UserRecommendations) IsFresh(ttl time.Duration, now time.Time) bool {
	return r != nil && !r.GeneratedAt.IsZero() && now.Sub(r.GeneratedAt) < ttl
}
