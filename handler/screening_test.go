package handler_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"movie_catalog/model"
)

func seedScreeningFixtures(t *testing.T, db *gorm.DB) (*model.Movie, *model.Cinema) {
	t.Helper()
	movie := testMovie("Fixture Feature")
	mustCreate(t, db, movie)
	cinema := &model.Cinema{Name: "UGC Bercy", City: "Paris", Address: "2 Cour Saint-Emilion"}
	mustCreate(t, db, cinema)
	return movie, cinema
}

func TestCreateScreening(t *testing.T) {
	app, db := setupApp(t)
	token := adminToken(t, db)
	movie, cinema := seedScreeningFixtures(t, db)

	start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	resp, raw := doRequest(t, app, "POST", "/api/screenings", fiber.Map{
		"movieId":   movie.ID,
		"cinemaId":  cinema.ID,
		"startTime": start.Format(time.RFC3339),
		"subtitle":  "French",
	}, token)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", resp.StatusCode, raw)
	}

	var created model.Screening
	decodeJSON(t, raw, &created)
	if created.ID == 0 {
		t.Error("created screening has no id")
	}
	if created.MovieId != movie.ID || created.CinemaId != cinema.ID {
		t.Errorf("references = (%d, %d), want (%d, %d)", created.MovieId, created.CinemaId, movie.ID, cinema.ID)
	}
}

func TestCreateScreeningMissingSubtitle(t *testing.T) {
	app, db := setupApp(t)
	token := adminToken(t, db)
	movie, cinema := seedScreeningFixtures(t, db)

	resp, raw := doRequest(t, app, "POST", "/api/screenings", fiber.Map{
		"movieId":   movie.ID,
		"cinemaId":  cinema.ID,
		"startTime": time.Now().Add(time.Hour).Format(time.RFC3339),
	}, token)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if msg := errorMessage(t, raw); msg != "Missing required fields" {
		t.Errorf("error = %q", msg)
	}
}

// Creation names the missing entity so the caller knows which reference is
// broken.
func TestCreateScreeningUnknownReferences(t *testing.T) {
	app, db := setupApp(t)
	token := adminToken(t, db)
	movie, cinema := seedScreeningFixtures(t, db)

	resp, raw := doRequest(t, app, "POST", "/api/screenings", fiber.Map{
		"movieId":   9999,
		"cinemaId":  cinema.ID,
		"startTime": time.Now().Add(time.Hour).Format(time.RFC3339),
		"subtitle":  "French",
	}, token)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown movie: status = %d, want 404", resp.StatusCode)
	} else if msg := errorMessage(t, raw); msg != "Movie not found" {
		t.Errorf("unknown movie: error = %q", msg)
	}

	resp, raw = doRequest(t, app, "POST", "/api/screenings", fiber.Map{
		"movieId":   movie.ID,
		"cinemaId":  9999,
		"startTime": time.Now().Add(time.Hour).Format(time.RFC3339),
		"subtitle":  "French",
	}, token)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown cinema: status = %d, want 404", resp.StatusCode)
	} else if msg := errorMessage(t, raw); msg != "Cinema not found" {
		t.Errorf("unknown cinema: error = %q", msg)
	}
}

func TestGetScreeningIncludesRelatedSubsets(t *testing.T) {
	app, db := setupApp(t)
	movie, cinema := seedScreeningFixtures(t, db)
	screening := &model.Screening{
		MovieId: movie.ID, CinemaId: cinema.ID,
		StartTime: time.Now().Add(time.Hour), Subtitle: "English",
	}
	mustCreate(t, db, screening)

	resp, raw := doRequest(t, app, "GET", fmt.Sprintf("/api/screenings/%d", screening.ID), nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", resp.StatusCode, raw)
	}

	var body model.ScreeningResponse
	decodeJSON(t, raw, &body)
	if body.Movie.Slug != movie.Slug || body.Movie.Title != movie.Title {
		t.Errorf("movie subset = %+v", body.Movie)
	}
	if body.Cinema.Name != cinema.Name || body.Cinema.City != cinema.City || body.Cinema.Address != cinema.Address {
		t.Errorf("cinema subset = %+v", body.Cinema)
	}

	// The subsets stay flat: no nested screenings or actors leak through.
	var generic map[string]any
	decodeJSON(t, raw, &generic)
	movieMap := generic["movie"].(map[string]any)
	if _, ok := movieMap["screenings"]; ok {
		t.Error("movie subset leaks screenings")
	}
	if _, ok := movieMap["actors"]; ok {
		t.Error("movie subset leaks actors")
	}
}

func TestUpdateScreening(t *testing.T) {
	app, db := setupApp(t)
	token := adminToken(t, db)
	movie, cinema := seedScreeningFixtures(t, db)
	screening := &model.Screening{
		MovieId: movie.ID, CinemaId: cinema.ID,
		StartTime: time.Now().Add(time.Hour), Subtitle: "English",
	}
	mustCreate(t, db, screening)

	resp, raw := doRequest(t, app, "PUT", fmt.Sprintf("/api/screenings/%d", screening.ID), fiber.Map{
		"subtitle": "German",
	}, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", resp.StatusCode, raw)
	}
	var body struct {
		Message string `json:"message"`
	}
	decodeJSON(t, raw, &body)
	if body.Message != "Screening updated successfully" {
		t.Errorf("message = %q", body.Message)
	}

	var updated model.Screening
	if err := db.First(&updated, screening.ID).Error; err != nil {
		t.Fatalf("reload screening: %v", err)
	}
	if updated.Subtitle != "German" {
		t.Errorf("subtitle = %q, want German", updated.Subtitle)
	}
	if updated.MovieId != movie.ID {
		t.Errorf("movie reference changed on partial update: %d", updated.MovieId)
	}
}

func TestUpdateScreeningUnknownMovieReference(t *testing.T) {
	app, db := setupApp(t)
	token := adminToken(t, db)
	movie, cinema := seedScreeningFixtures(t, db)
	screening := &model.Screening{
		MovieId: movie.ID, CinemaId: cinema.ID,
		StartTime: time.Now().Add(time.Hour), Subtitle: "English",
	}
	mustCreate(t, db, screening)

	resp, raw := doRequest(t, app, "PUT", fmt.Sprintf("/api/screenings/%d", screening.ID), fiber.Map{
		"movieId": 9999,
	}, token)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 (%s)", resp.StatusCode, raw)
	}
	if msg := errorMessage(t, raw); msg != "Movie not found" {
		t.Errorf("error = %q", msg)
	}
}

func TestDeleteScreening(t *testing.T) {
	app, db := setupApp(t)
	token := adminToken(t, db)
	movie, cinema := seedScreeningFixtures(t, db)
	screening := &model.Screening{
		MovieId: movie.ID, CinemaId: cinema.ID,
		StartTime: time.Now().Add(time.Hour), Subtitle: "English",
	}
	mustCreate(t, db, screening)

	resp, raw := doRequest(t, app, "DELETE", fmt.Sprintf("/api/screenings/%d", screening.ID), nil, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", resp.StatusCode, raw)
	}
	var body struct {
		Message string `json:"message"`
	}
	decodeJSON(t, raw, &body)
	if body.Message != "Screening deleted successfully" {
		t.Errorf("message = %q", body.Message)
	}

	resp, _ = doRequest(t, app, "GET", fmt.Sprintf("/api/screenings/%d", screening.ID), nil, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("deleted screening still found: status = %d", resp.StatusCode)
	}

	// The movie itself is untouched.
	resp, _ = doRequest(t, app, "GET", fmt.Sprintf("/api/movie/%d", movie.ID), nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("movie gone after screening delete: status = %d", resp.StatusCode)
	}
}
