package model

import "time"

type ViewingHistoryItem struct {
	Id        int       `bson:"id" firestore:"id" json:"id"`
	Title     string    `bson:"title" firestore:"title" json:"title"`
	MediaType string    `bson:"mediaType" firestore:"mediaType" json:"mediaType"`
	Image     string    `bson:"image" firestore:"image" json:"image"`
	WatchedAt time.Time `bson:"watchedAt" firestore:"watchedAt" json:"watchedAt"`
}

type ViewingHistory struct {
	Items []ViewingHistoryItem `bson:"items" firestore:"items" json:"items"`
}

type SearchHistoryItem struct {
	Query       string    `bson:"query" firestore:"query" json:"query"`
	Timestamp   time.Time `bson:"timestamp" firestore:"timestamp" json:"timestamp"`
	ResultCount int       `bson:"resultCount" firestore:"resultCount" json:"resultCount"`
}

type SearchHistory struct {
	Items []SearchHistoryItem `bson:"items" firestore:"items" json:"items"`
}
