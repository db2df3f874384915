package response

import (
	"movie-swiper/internal/data/entity"
)

type MovieResponse struct {
	TMDBID              int64    `json:"tmdb_id"`
	Title               string   `json:"title"`
	Overview            *string  `json:"overview,omitempty"`
	ReleaseDate         *string  `json:"release_date,omitempty"`
	PosterPath          *string  `json:"poster_path,omitempty"`
	Popularity          float64  `json:"popularity"`
	GenreIDs            []int32  `json:"genre_ids"`
	Genres              []string `json:"genres,omitempty"`
	Tagline             *string  `json:"tagline,omitempty"`
	VoteAverage         *float64 `json:"vote_average,omitempty"`
	VoteCount           *int32   `json:"vote_count,omitempty"`
	Runtime             *int32   `json:"runtime,omitempty"`
	ProductionCompanies []string `json:"production_companies,omitempty"`
}

// MovieListResponse is the success envelope for candidate listings.
type MovieListResponse struct {
	Movies []MovieResponse `json:"movies"`
}

// MovieToResponse converts one entity, resolving genre ids to names
// through the given dictionary (unknown ids are skipped).
func MovieToResponse(movie *entity.Movie, genreNames map[int32]string) MovieResponse {
	var genres []string
	for _, id := range movie.GenreIDs {
		if name, ok := genreNames[id]; ok {
			genres = append(genres, name)
		}
	}

	return MovieResponse{
		TMDBID:              movie.TMDBID,
		Title:               movie.Title,
		Overview:            movie.Overview,
		ReleaseDate:         movie.ReleaseDate,
		PosterPath:          movie.PosterPath,
		Popularity:          movie.Popularity,
		GenreIDs:            movie.GenreIDs,
		Genres:              genres,
		Tagline:             movie.Tagline,
		VoteAverage:         movie.VoteAverage,
		VoteCount:           movie.VoteCount,
		Runtime:             movie.Runtime,
		ProductionCompanies: movie.ProductionCompanies,
	}
}

func MoviesToListResponse(movies []*entity.Movie, genreNames map[int32]string) *MovieListResponse {
	responses := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		responses[i] = MovieToResponse(movie, genreNames)
	}

	return &MovieListResponse{Movies: responses}
}
