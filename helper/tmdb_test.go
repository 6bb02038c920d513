package helper

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTMDBTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/trending", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") != "test-key" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"results": [
			{"id": 1, "title": "First Movie", "media_type": "movie"},
			{"id": 2, "title": "Some Show", "media_type": "tv"},
			{"id": 3, "title": "Second Movie", "media_type": "movie"}
		]}`)
	})
	mux.HandleFunc("/movie/1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": 1, "title": "First Movie", "runtime": 110,
			"original_language": "en", "overview": "A story.",
			"poster_path": "/poster1.jpg"}`)
	})
	mux.HandleFunc("/movie/1/videos", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": [{"key": "abc123"}, {"key": "def456"}]}`)
	})
	mux.HandleFunc("/movie/1/credits", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"cast": [{"id": 10, "name": "Lead Actor", "profile_path": "/p10.jpg"}],
			"crew": [{"job": "Producer", "name": "Some Producer"},
			         {"job": "Director", "name": "The Director"}]}`)
	})
	mux.HandleFunc("/movie/3", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": 3, "title": "Second Movie", "runtime": 95,
			"original_language": "fr", "overview": "Another story.",
			"backdrop_path": "/backdrop3.jpg"}`)
	})
	mux.HandleFunc("/movie/3/videos", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": []}`)
	})
	mux.HandleFunc("/movie/3/credits", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"cast": [], "crew": []}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestTMDBClient(srv *httptest.Server) *TMDBClient {
	return &TMDBClient{
		APIKey:      "test-key",
		TrendingURL: srv.URL + "/trending",
		DetailURL:   srv.URL + "/movie",
		Throttle:    0,
		HTTP:        srv.Client(),
	}
}

func TestFetchTrendingFiltersMovies(t *testing.T) {
	srv := newTMDBTestServer(t)
	client := newTestTMDBClient(srv)

	movies, err := client.FetchTrending(1)
	if err != nil {
		t.Fatalf("FetchTrending: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("got %d movies, want 2 (tv entries filtered)", len(movies))
	}
	if movies[0].Title != "First Movie" || movies[1].Title != "Second Movie" {
		t.Errorf("unexpected titles: %q, %q", movies[0].Title, movies[1].Title)
	}
}

func TestFetchMovieByID(t *testing.T) {
	srv := newTMDBTestServer(t)
	client := newTestTMDBClient(srv)

	movie, err := client.FetchMovieByID(1)
	if err != nil {
		t.Fatalf("FetchMovieByID: %v", err)
	}
	if movie.Runtime != 110 {
		t.Errorf("runtime = %d, want 110", movie.Runtime)
	}
	if movie.Director() != "The Director" {
		t.Errorf("director = %q, want %q", movie.Director(), "The Director")
	}
	if movie.VideoKey() != "abc123" {
		t.Errorf("video key = %q, want %q", movie.VideoKey(), "abc123")
	}
	if movie.Photo() != "/poster1.jpg" {
		t.Errorf("photo = %q, want %q", movie.Photo(), "/poster1.jpg")
	}
	if len(movie.Credits.Cast) != 1 || movie.Credits.Cast[0].Name != "Lead Actor" {
		t.Errorf("unexpected cast: %+v", movie.Credits.Cast)
	}
}

func TestFetchTrendingWithDetails(t *testing.T) {
	srv := newTMDBTestServer(t)
	client := newTestTMDBClient(srv)

	movies, err := client.FetchTrendingWithDetails(2)
	if err != nil {
		t.Fatalf("FetchTrendingWithDetails: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("got %d movies, want 2", len(movies))
	}
	if movies[1].Photo() != "/backdrop3.jpg" {
		t.Errorf("photo fallback = %q, want backdrop", movies[1].Photo())
	}
	if movies[1].Director() != "Unknown" {
		t.Errorf("director fallback = %q, want Unknown", movies[1].Director())
	}
	if movies[1].VideoKey() != "" {
		t.Errorf("video key = %q, want empty", movies[1].VideoKey())
	}
}

func TestFetchTrendingUpstreamError(t *testing.T) {
	srv := newTMDBTestServer(t)
	client := newTestTMDBClient(srv)
	client.APIKey = "wrong-key"

	if _, err := client.FetchTrending(1); err == nil {
		t.Error("expected error on non-200 upstream response")
	}
}
