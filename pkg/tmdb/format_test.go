package tmdb

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"streamsphere/model"
)

func TestFormatMovie(t *testing.T) {
	item := FormatMediaItem(Result{
		Id:           550,
		Title:        "Fight Club",
		PosterPath:   "/poster.jpg",
		BackdropPath: "/backdrop.jpg",
		GenreIds:     []int{18, 53, 35, 28},
		Overview:     "An insomniac office worker...",
	}, model.MediaTypeMovie)

	assert.Equal(t, model.MediaItem{
		Id:           550,
		Title:        "Fight Club",
		Image:        "https://image.tmdb.org/t/p/w500/poster.jpg",
		BackdropPath: "https://image.tmdb.org/t/p/original/backdrop.jpg",
		Rating:       "U/A 13+",
		Duration:     "Movie",
		Genres:       "Drama • Thriller • Comedy",
		Overview:     "An insomniac office worker...",
		MediaType:    model.MediaTypeMovie,
	}, item)
}

func TestFormatTvUsesNameAndTvGenres(t *testing.T) {
	item := FormatMediaItem(Result{
		Id:       1399,
		Name:     "Game of Thrones",
		Adult:    true,
		GenreIds: []int{10765, 99999, 18},
	}, model.MediaTypeTv)

	assert.Equal(t, "Game of Thrones", item.Title)
	assert.Equal(t, "TV Series", item.Duration)
	assert.Equal(t, "U/A 18+", item.Rating)
	assert.Equal(t, "Sci-Fi & Fantasy • Drama", item.Genres)
	assert.Equal(t, PlaceholderImage, item.Image)
	assert.Equal(t, "", item.BackdropPath)
}

func TestFormatMixedResults(t *testing.T) {
	items := FormatMediaItems([]Result{
		{Id: 1, Title: "A Movie", MediaType: "movie"},
		{Id: 2, Name: "A Show", MediaType: "tv"},
		{Id: 3, Title: "No Kind Movie"},
		{Id: 4, Name: "No Kind Show"},
	}, "")

	assert.Len(t, items, 4)
	assert.Equal(t, model.MediaTypeMovie, items[0].MediaType)
	assert.Equal(t, model.MediaTypeTv, items[1].MediaType)
	assert.Equal(t, "A Show", items[1].Title)
	assert.Equal(t, model.MediaTypeMovie, items[2].MediaType)
	assert.Equal(t, model.MediaTypeTv, items[3].MediaType)
	assert.Equal(t, "No Kind Show", items[3].Title)
}

func TestGenreNames(t *testing.T) {
	tests := []struct {
		name      string
		ids       []int
		mediaType string
		want      string
	}{
		{"empty", nil, model.MediaTypeMovie, ""},
		{"unknown only", []int{1}, model.MediaTypeMovie, ""},
		{"movie map for tv-only id", []int{10759}, model.MediaTypeMovie, ""},
		{"tv map", []int{10759}, model.MediaTypeTv, "Action & Adventure"},
		{"fourth id ignored", []int{28, 12, 1, 16}, model.MediaTypeMovie, "Action • Adventure"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenreNames(tt.ids, tt.mediaType))
		})
	}
}
