package entity

// Movie is a catalog record keyed by the upstream TMDb identifier.
// Rows are only ever created or refreshed by ingestion; re-ingesting
// the same tmdb_id overwrites all fields.
type Movie struct {
	TMDBID      int64   `db:"tmdb_id"`
	Title       string  `db:"title"`
	Overview    *string `db:"overview"`
	ReleaseDate *string `db:"release_date"`
	PosterPath  *string `db:"poster_path"`
	Popularity  float64 `db:"popularity"`
	GenreIDs    []int32 `db:"genres"`

	// Detail-only fields, nil unless ingestion ran with enrichment.
	Tagline             *string  `db:"tagline"`
	VoteAverage         *float64 `db:"vote_average"`
	VoteCount           *int32   `db:"vote_count"`
	Runtime             *int32   `db:"runtime"`
	ProductionCompanies []string `db:"production_companies"`
}
