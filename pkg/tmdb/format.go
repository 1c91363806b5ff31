package tmdb

import (
	"strings"

	"streamsphere/model"
)

const (
	PosterBaseURL    = "https://image.tmdb.org/t/p/w500"
	BackdropBaseURL  = "https://image.tmdb.org/t/p/original"
	PlaceholderImage = "/assets/images/placeholder.jpg"
	genreSeparator   = " • "
	maxGenres        = 3
)

var MovieGenres = map[int]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Science Fiction",
	10770: "TV Movie",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
}

var TvGenres = map[int]string{
	10759: "Action & Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	10762: "Kids",
	9648:  "Mystery",
	10763: "News",
	10764: "Reality",
	10765: "Sci-Fi & Fantasy",
	10766: "Soap",
	10767: "Talk",
	10768: "War & Politics",
	37:    "Western",
}

// GenreNames maps the first three genre ids, unknown ids are dropped.
func GenreNames(genreIds []int, mediaType string) string {
	genres := MovieGenres
	if mediaType == model.MediaTypeTv {
		genres = TvGenres
	}
	if len(genreIds) > maxGenres {
		genreIds = genreIds[:maxGenres]
	}
	names := make([]string, 0, len(genreIds))
	for _, id := range genreIds {
		if name, ok := genres[id]; ok {
			names = append(names, name)
		}
	}
	return strings.Join(names, genreSeparator)
}

func PosterURL(path string) string {
	if path == "" {
		return PlaceholderImage
	}
	return PosterBaseURL + path
}

func BackdropURL(path string) string {
	if path == "" {
		return ""
	}
	return BackdropBaseURL + path
}

// ResultMediaType resolves the kind of r. mediaType wins when it names a kind,
// otherwise (mixed endpoints) media_type is used, then the presence of a title.
func ResultMediaType(r Result, mediaType string) string {
	if model.IsValidMediaType(mediaType) {
		return mediaType
	}
	if model.IsValidMediaType(r.MediaType) {
		return r.MediaType
	}
	if r.Title != "" {
		return model.MediaTypeMovie
	}
	return model.MediaTypeTv
}

func FormatMediaItem(r Result, mediaType string) model.MediaItem {
	kind := ResultMediaType(r, mediaType)
	item := model.MediaItem{
		Id:           r.Id,
		Title:        r.Title,
		Image:        PosterURL(r.PosterPath),
		BackdropPath: BackdropURL(r.BackdropPath),
		Rating:       "U/A 13+",
		Duration:     "Movie",
		Genres:       GenreNames(r.GenreIds, kind),
		Overview:     r.Overview,
		MediaType:    kind,
	}
	if kind == model.MediaTypeTv {
		item.Title = r.Name
		item.Duration = "TV Series"
	}
	if r.Adult {
		item.Rating = "U/A 18+"
	}
	return item
}

func FormatMediaItems(results []Result, mediaType string) []model.MediaItem {
	items := make([]model.MediaItem, 0, len(results))
	for _, r := range results {
		items = append(items, FormatMediaItem(r, mediaType))
	}
	return items
}
