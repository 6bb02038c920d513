package helper

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"movie_catalog/config"
)

// TMDBClient fetches trending movies with details, credits and videos from
// the TMDB REST API. It is used by the seeder and the daily catalog refresh.
type TMDBClient struct {
	APIKey      string
	TrendingURL string
	DetailURL   string
	// Throttle is the pause between detail-fetch batches, to stay under the
	// TMDB rate limit.
	Throttle time.Duration

	HTTP *http.Client
}

// NewTMDBClient returns nil when no API key is configured.
func NewTMDBClient(cfg *config.Config) *TMDBClient {
	if cfg.TMDBAPIKey == "" {
		return nil
	}
	return &TMDBClient{
		APIKey:      cfg.TMDBAPIKey,
		TrendingURL: cfg.TMDBTrendingMovieURL,
		DetailURL:   cfg.TMDBMovieDetailURL,
		Throttle:    2 * time.Second,
		HTTP:        &http.Client{Timeout: 15 * time.Second},
	}
}

type TMDBMovie struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	Runtime          int    `json:"runtime"`
	OriginalLanguage string `json:"original_language"`
	Overview         string `json:"overview"`
	PosterPath       string `json:"poster_path"`
	BackdropPath     string `json:"backdrop_path"`
	MediaType        string `json:"media_type"`

	Videos  []TMDBVideo `json:"-"`
	Credits TMDBCredits `json:"-"`
}

type TMDBVideo struct {
	Key string `json:"key"`
}

type TMDBCredits struct {
	Cast []TMDBCast `json:"cast"`
	Crew []TMDBCrew `json:"crew"`
}

type TMDBCast struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ProfilePath string `json:"profile_path"`
}

type TMDBCrew struct {
	Job  string `json:"job"`
	Name string `json:"name"`
}

// Director returns the name of the first crew member with the Director job.
func (m *TMDBMovie) Director() string {
	for _, crew := range m.Credits.Crew {
		if crew.Job == "Director" {
			return crew.Name
		}
	}
	return "Unknown"
}

// Photo prefers the poster path and falls back to the backdrop.
func (m *TMDBMovie) Photo() string {
	if m.PosterPath != "" {
		return m.PosterPath
	}
	return m.BackdropPath
}

// VideoKey returns the first video key, or empty when the movie has none.
func (m *TMDBMovie) VideoKey() string {
	if len(m.Videos) > 0 {
		return m.Videos[0].Key
	}
	return ""
}

func (t *TMDBClient) getJSON(url string, out any) error {
	resp, err := t.HTTP.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb: %s: %s", url, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// FetchTrending collects trending entries across totalPages pages, keeping
// only entries whose media_type is "movie".
func (t *TMDBClient) FetchTrending(totalPages int) ([]TMDBMovie, error) {
	var all []TMDBMovie

	for page := 1; page <= totalPages; page++ {
		url := fmt.Sprintf("%s?api_key=%s&page=%d", t.TrendingURL, t.APIKey, page)

		var data struct {
			Results []TMDBMovie `json:"results"`
		}
		if err := t.getJSON(url, &data); err != nil {
			return nil, err
		}
		for _, m := range data.Results {
			if m.MediaType == "movie" {
				all = append(all, m)
			}
		}
	}
	return all, nil
}

// FetchMovieByID loads a movie's detail, videos and credits.
func (t *TMDBClient) FetchMovieByID(id int) (*TMDBMovie, error) {
	base := fmt.Sprintf("%s/%d", t.DetailURL, id)
	keyParam := "?api_key=" + t.APIKey

	var movie TMDBMovie
	if err := t.getJSON(base+keyParam, &movie); err != nil {
		return nil, err
	}

	var videos struct {
		Results []TMDBVideo `json:"results"`
	}
	if err := t.getJSON(base+"/videos"+keyParam, &videos); err != nil {
		return nil, err
	}
	movie.Videos = videos.Results

	if err := t.getJSON(base+"/credits"+keyParam, &movie.Credits); err != nil {
		return nil, err
	}
	return &movie, nil
}

// FetchTrendingWithDetails resolves movieNumber trending movies to full
// detail records, throttling between batches of 20.
func (t *TMDBClient) FetchTrendingWithDetails(movieNumber int) ([]TMDBMovie, error) {
	pages := (movieNumber + 19) / 20
	if pages < 1 {
		pages = 1
	}

	trending, err := t.FetchTrending(pages)
	if err != nil {
		return nil, err
	}

	const chunkSize = 20
	var details []TMDBMovie
	for i, m := range trending {
		if i > 0 && i%chunkSize == 0 {
			time.Sleep(t.Throttle)
		}
		detail, err := t.FetchMovieByID(m.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}
