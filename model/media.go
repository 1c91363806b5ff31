package model

import "time"

const (
	MediaTypeMovie = "movie"
	MediaTypeTv    = "tv"
)

func IsValidMediaType(mediaType string) bool {
	return mediaType == MediaTypeMovie || mediaType == MediaTypeTv
}

type MediaItem struct {
	Id           int    `bson:"id" firestore:"id" json:"id"`
	Title        string `bson:"title" firestore:"title" json:"title"`
	Image        string `bson:"image" firestore:"image" json:"image"`
	BackdropPath string `bson:"backdropPath" firestore:"backdropPath" json:"backdropPath"`
	Rating       string `bson:"rating" firestore:"rating" json:"rating"`
	Duration     string `bson:"duration" firestore:"duration" json:"duration"`
	Genres       string `bson:"genres" firestore:"genres" json:"genres"`
	Overview     string `bson:"overview" firestore:"overview" json:"overview"`
	MediaType    string `bson:"mediaType" firestore:"mediaType" json:"mediaType"`
}

func (m MediaItem) Is(id int, mediaType string) bool {
	return m.Id == id && m.MediaType == mediaType
}

type UserList struct {
	Items     []MediaItem `bson:"items" firestore:"items" json:"items"`
	UpdatedAt time.Time   `bson:"updatedAt" firestore:"updatedAt" json:"updatedAt"`
}

//------------------------------------------
//------------------------------------------

type CatalogRow struct {
	Key   string      `json:"key"`
	Title string      `json:"title"`
	Items []MediaItem `json:"items"`
}

type CatalogPage struct {
	Page     string       `json:"page"`
	Featured *MediaItem   `json:"featured"`
	Rows     []CatalogRow `json:"rows"`
}

type Trailer struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
	Url  string `json:"url"`
}

type PlayMediaRes struct {
	Trailer Trailer   `json:"trailer"`
	Media   MediaItem `json:"media"`
}

type SearchRes struct {
	Query   string      `json:"query"`
	Results []MediaItem `json:"results"`
	Show    bool        `json:"show"`
}

type MyListStatusRes struct {
	InMyList bool `json:"inMyList"`
}
