package gamma

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListThemes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/themes" {
			t.Errorf("Path = %s, want /themes", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data": []Theme{
				{ID: "thm-1", Name: "Oasis", IsDefault: true, Colors: &ThemeColors{Primary: "#1a73e8", Background: "#ffffff"}},
				{ID: "thm-2", Name: "Slate"},
			},
		})
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))

	themes, err := c.ListThemes(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(themes) != 2 {
		t.Fatalf("len(themes) = %d, want 2", len(themes))
	}
	if !themes[0].IsDefault {
		t.Error("themes[0].IsDefault = false, want true")
	}
	if themes[0].Colors == nil || themes[0].Colors.Primary != "#1a73e8" {
		t.Errorf("themes[0].Colors = %+v, want primary #1a73e8", themes[0].Colors)
	}
	if themes[1].Name != "Slate" {
		t.Errorf("themes[1].Name = %s, want Slate", themes[1].Name)
	}
}

func TestListFolders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/folders" {
			t.Errorf("Path = %s, want /folders", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data": []Folder{{ID: "fld-1", Name: "Marketing"}},
		})
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))

	folders, err := c.ListFolders(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(folders) != 1 {
		t.Fatalf("len(folders) = %d, want 1", len(folders))
	}
	if folders[0].Name != "Marketing" {
		t.Errorf("folders[0].Name = %s, want Marketing", folders[0].Name)
	}
}

func TestListThemesError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))

	_, err := c.ListThemes(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}
