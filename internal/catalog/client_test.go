package catalog

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchDecodesEnvelope(t *testing.T) {
	var gotKey, gotPerPage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-RapidAPI-Key")
		gotPerPage = r.URL.Query().Get("per_page")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [{"id": 1, "name": "Destined Rivals"}], "paging": {"current": 1, "total": 3}}`))
	}))
	defer srv.Close()

	client := NewClient("test-key")
	client.SetBaseURL(srv.URL)

	env, err := client.Fetch("/episodes", map[string]string{"per_page": "20"})
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}

	if gotKey != "test-key" {
		t.Errorf("X-RapidAPI-Key = %q, want test-key", gotKey)
	}
	if gotPerPage != "20" {
		t.Errorf("per_page = %q, want 20", gotPerPage)
	}
	if env.Paging.Current != 1 || env.Paging.Total != 3 {
		t.Errorf("paging = %+v, want {1 3}", env.Paging)
	}

	var items []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	if err := env.DecodeData(&items); err != nil {
		t.Fatalf("DecodeData() error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Destined Rivals" {
		t.Errorf("decoded %+v, want one Destined Rivals entry", items)
	}
}

func TestFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient("bad-key")
	client.SetBaseURL(srv.URL)

	_, err := client.Fetch("/episodes", nil)
	if err == nil {
		t.Fatal("expected an error for a 403 response")
	}
	if !strings.Contains(err.Error(), "403") {
		t.Errorf("error should mention the status code, got %v", err)
	}
}

func TestFetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient("test-key")
	client.SetBaseURL(srv.URL)

	if _, err := client.Fetch("/episodes", nil); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestDecodeDataEmpty(t *testing.T) {
	env := &Envelope{}

	var items []struct{}
	if err := env.DecodeData(&items); err != nil {
		t.Errorf("empty data should decode to nothing, got %v", err)
	}
	if items != nil {
		t.Errorf("expected untouched slice, got %v", items)
	}
}
