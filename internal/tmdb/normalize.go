package tmdb

import (
	"movie-swiper/internal/data/entity"
)

// MovieSummary is one entry of the paged popular listing.
type MovieSummary struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  string  `json:"poster_path"`
	Popularity  float64 `json:"popularity"`
	GenreIDs    []int32 `json:"genre_ids"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int32   `json:"vote_count"`
}

// MovieDetails is the full per-movie record. Genres come back as
// {id, name} pairs here instead of the listing's bare id array.
type MovieDetails struct {
	ID                  int64     `json:"id"`
	Title               string    `json:"title"`
	Overview            string    `json:"overview"`
	ReleaseDate         string    `json:"release_date"`
	PosterPath          string    `json:"poster_path"`
	Popularity          float64   `json:"popularity"`
	Genres              []Genre   `json:"genres"`
	Tagline             string    `json:"tagline"`
	VoteAverage         float64   `json:"vote_average"`
	VoteCount           int32     `json:"vote_count"`
	Runtime             int32     `json:"runtime"`
	ProductionCompanies []Company `json:"production_companies"`
}

type Genre struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

type Company struct {
	Name string `json:"name"`
}

// ToEntity maps a listing entry onto the movies schema. Entries
// without an upstream id are invalid and return nil.
func (m MovieSummary) ToEntity() *entity.Movie {
	if m.ID == 0 {
		return nil
	}

	return &entity.Movie{
		TMDBID:      m.ID,
		Title:       m.Title,
		Overview:    optString(m.Overview),
		ReleaseDate: optString(m.ReleaseDate),
		PosterPath:  optString(m.PosterPath),
		Popularity:  m.Popularity,
		GenreIDs:    m.GenreIDs,
	}
}

// ToEntity maps a detail record onto the movies schema, including the
// enrichment-only fields.
func (d *MovieDetails) ToEntity() *entity.Movie {
	if d == nil || d.ID == 0 {
		return nil
	}

	genreIDs := make([]int32, 0, len(d.Genres))
	for _, g := range d.Genres {
		genreIDs = append(genreIDs, g.ID)
	}

	companies := make([]string, 0, len(d.ProductionCompanies))
	for _, c := range d.ProductionCompanies {
		if c.Name != "" {
			companies = append(companies, c.Name)
		}
	}

	voteAverage := d.VoteAverage
	voteCount := d.VoteCount
	runtime := d.Runtime

	return &entity.Movie{
		TMDBID:              d.ID,
		Title:               d.Title,
		Overview:            optString(d.Overview),
		ReleaseDate:         optString(d.ReleaseDate),
		PosterPath:          optString(d.PosterPath),
		Popularity:          d.Popularity,
		GenreIDs:            genreIDs,
		Tagline:             optString(d.Tagline),
		VoteAverage:         &voteAverage,
		VoteCount:           &voteCount,
		Runtime:             &runtime,
		ProductionCompanies: companies,
	}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
