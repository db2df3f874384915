package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-swiper/pkg/utils"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(utils.TMDbConfig{
		APIKey:   "test-key",
		BaseURL:  server.URL,
		Language: "en-US",
	}, zap.NewNop())
}

func TestPopularMovies(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/popular" {
			t.Errorf("path = %s, want /movie/popular", r.URL.Path)
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("page = %s, want 2", got)
		}
		if got := r.URL.Query().Get("api_key"); got != "test-key" {
			t.Errorf("api_key = %s, want test-key", got)
		}
		if got := r.URL.Query().Get("language"); got != "en-US" {
			t.Errorf("language = %s, want en-US", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"page": 2,
			"results": [
				{"id": 10, "title": "First", "overview": "a", "release_date": "2020-01-01",
				 "poster_path": "/p1.jpg", "popularity": 9.5, "genre_ids": [28, 12]},
				{"id": 20, "title": "Second", "popularity": 3.1, "genre_ids": []}
			],
			"total_pages": 500
		}`))
	})

	movies, err := client.PopularMovies(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("got %d movies, want 2", len(movies))
	}
	if movies[0].ID != 10 || movies[0].Title != "First" {
		t.Errorf("first movie = %+v", movies[0])
	}
	if len(movies[0].GenreIDs) != 2 || movies[0].GenreIDs[0] != 28 {
		t.Errorf("genre_ids = %v, want [28 12]", movies[0].GenreIDs)
	}
}

func TestPopularMoviesUpstreamFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "tea time", http.StatusTeapot)
	})

	_, err := client.PopularMovies(context.Background(), 1)
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("err = %v, want ErrUpstreamUnavailable", err)
	}
}

func TestPopularMoviesRejectsNonPositivePage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	if _, err := client.PopularMovies(context.Background(), 0); err == nil {
		t.Fatal("expected error for page 0")
	}
}

func TestMissingAPIKey(t *testing.T) {
	client := NewClient(utils.TMDbConfig{
		BaseURL:  "http://catalog.invalid",
		Language: "en-US",
	}, zap.NewNop())

	_, err := client.PopularMovies(context.Background(), 1)
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("err = %v, want ErrMissingAPIKey", err)
	}

	_, err = client.GenreList(context.Background())
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("err = %v, want ErrMissingAPIKey", err)
	}
}

func TestMovieDetails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/603" {
			t.Errorf("path = %s, want /movie/603", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 603, "title": "The Matrix", "overview": "o",
			"release_date": "1999-03-31", "poster_path": "/m.jpg",
			"popularity": 80.1, "tagline": "Free your mind",
			"vote_average": 8.2, "vote_count": 25000, "runtime": 136,
			"genres": [{"id": 28, "name": "Action"}, {"id": 878, "name": "Science Fiction"}],
			"production_companies": [{"name": "Village Roadshow"}, {"name": "Warner Bros."}]
		}`))
	})

	details, err := client.MovieDetails(context.Background(), 603)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.ID != 603 || details.Tagline != "Free your mind" {
		t.Errorf("details = %+v", details)
	}
	if len(details.Genres) != 2 || details.Genres[1].Name != "Science Fiction" {
		t.Errorf("genres = %+v", details.Genres)
	}
}

func TestGenreList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/genre/movie/list" {
			t.Errorf("path = %s, want /genre/movie/list", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"genres": [{"id": 28, "name": "Action"}]}`))
	})

	genres, err := client.GenreList(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(genres) != 1 || genres[0].ID != 28 || genres[0].Name != "Action" {
		t.Errorf("genres = %+v", genres)
	}
}
