package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wallstudio/wallpaper-studio/internal/model"
)

func TestClient_Generate(t *testing.T) {
	var captured map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != GeneratePath {
			t.Errorf("Expected path %s, got %s", GeneratePath, r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}

		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("Failed to decode request body: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"success":   true,
			"id":        "wp-1",
			"prompt":    captured["prompt"],
			"image_url": "https://cdn.example.com/wp-1.jpg",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	req := model.NewGenerationRequest("sunset over mountains", model.StyleNeon)

	wallpaper, err := client.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if wallpaper.ID != "wp-1" {
		t.Errorf("Expected wallpaper id 'wp-1', got '%s'", wallpaper.ID)
	}
	if wallpaper.Prompt != "sunset over mountains" {
		t.Errorf("Expected prompt 'sunset over mountains', got '%s'", wallpaper.Prompt)
	}

	// Verify the outbound payload carries the fixed wallpaper parameters
	if captured["prompt"] != "sunset over mountains" {
		t.Errorf("Expected sent prompt 'sunset over mountains', got %v", captured["prompt"])
	}
	if captured["style"] != "neon" {
		t.Errorf("Expected sent style 'neon', got %v", captured["style"])
	}
	if captured["aspect_ratio"] != "9:16" {
		t.Errorf("Expected aspect_ratio '9:16', got %v", captured["aspect_ratio"])
	}
	if captured["megapixels"] != "1" {
		t.Errorf("Expected megapixels '1', got %v", captured["megapixels"])
	}
}

func TestClient_Generate_Unsuccessful(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "image generation is not configured",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	req := model.NewGenerationRequest("sunset", model.StyleNone)

	_, err := client.Generate(context.Background(), req)
	if err == nil {
		t.Fatal("Expected error for success=false response, got nil")
	}
}

func TestClient_Generate_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]any{"detail": "generation service unavailable"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	req := model.NewGenerationRequest("sunset", model.StyleNone)

	_, err := client.Generate(context.Background(), req)
	if err == nil {
		t.Fatal("Expected error for 503 response, got nil")
	}
}

func TestClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != WallpapersPath {
			t.Errorf("Expected path %s, got %s", WallpapersPath, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{"success": true, "id": "wp-2", "prompt": "city at night", "image_url": "https://cdn.example.com/2.jpg"},
			{"success": true, "id": "wp-1", "prompt": "sunset", "image_url": "https://cdn.example.com/1.jpg"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	wallpapers, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(wallpapers) != 2 {
		t.Fatalf("Expected 2 wallpapers, got %d", len(wallpapers))
	}

	// Server order must be preserved
	if wallpapers[0].ID != "wp-2" || wallpapers[1].ID != "wp-1" {
		t.Errorf("Expected server order [wp-2 wp-1], got [%s %s]", wallpapers[0].ID, wallpapers[1].ID)
	}
}

func TestClient_List_NullBody(t *testing.T) {
	// FastAPI serializers may pad the null with whitespace
	bodies := []string{"null", "null\n", "  null  ", "", "\n"}

	for _, body := range bodies {
		responseBody := body
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(responseBody))
		}))

		client := NewClient(server.URL)
		wallpapers, err := client.List(context.Background())
		server.Close()
		if err != nil {
			t.Fatalf("List failed for body %q: %v", body, err)
		}

		if wallpapers == nil {
			t.Fatalf("Expected empty slice for body %q, got nil", body)
		}
		if len(wallpapers) != 0 {
			t.Errorf("Expected 0 wallpapers for body %q, got %d", body, len(wallpapers))
		}
	}
}

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != WallpapersPath+"/wp-42" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"success":   true,
			"id":        "wp-42",
			"prompt":    "aurora",
			"image_url": "https://cdn.example.com/42.jpg",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	wallpaper, err := client.Get(context.Background(), "wp-42")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if wallpaper.ID != "wp-42" {
		t.Errorf("Expected id 'wp-42', got '%s'", wallpaper.ID)
	}

	// Empty id is rejected without issuing a request
	if _, err := client.Get(context.Background(), ""); err == nil {
		t.Error("Expected error for empty id, got nil")
	}
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient("http://localhost:8000/")
	if client.BaseURL() != "http://localhost:8000" {
		t.Errorf("Expected trimmed base URL, got '%s'", client.BaseURL())
	}
}
