package pocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// fakePocket serves /get from a fixed number of favorites
type fakePocket struct {
	mu       sync.Mutex
	total    int
	requests []map[string]any
	status   int
	body     string
}

func (f *fakePocket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/get" {
		http.NotFound(w, r)
		return
	}
	if r.Header.Get("X-Accept") != "application/json" {
		http.Error(w, "missing X-Accept", http.StatusBadRequest)
		return
	}

	var req map[string]any
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.status != 0 {
		w.Header().Set("X-Error", "Invalid consumer key.")
		w.WriteHeader(f.status)
		return
	}
	if f.body != "" {
		_, _ = w.Write([]byte(f.body))
		return
	}

	count := int(req["count"].(float64))
	offset := 0
	if v, ok := req["offset"]; ok {
		offset = int(v.(float64))
	}
	list := map[string]Item{}
	for i := offset; i < f.total && i < offset+count; i++ {
		id := fmt.Sprintf("%d", i+1)
		list[id] = Item{
			ItemID:     id,
			GivenURL:   fmt.Sprintf("https://example.com/%d", i+1),
			GivenTitle: fmt.Sprintf("Item %d", i+1),
			Favorite:   "1",
		}
	}
	w.Header().Set("Content-Type", "application/json")
	if len(list) == 0 {
		_, _ = w.Write([]byte(`{"status":2,"list":[]}`))
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"status": 1, "list": list})
}

func newTestClient(t *testing.T, f *fakePocket) *Client {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	c := NewClient("key", "token")
	c.BaseURL = srv.URL
	c.HTTPClient = srv.Client()
	return c
}

func TestRetrieve(t *testing.T) {
	f := &fakePocket{total: 3}
	c := newTestClient(t, f)

	resp, err := c.Retrieve(context.Background(), RetrieveOptions{Count: 10, Favorite: true})
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if resp.Status != 1 || len(resp.List) != 3 {
		t.Errorf("Retrieve() = status %d, %d items", resp.Status, len(resp.List))
	}
	if resp.List["2"].GivenTitle != "Item 2" {
		t.Errorf("item 2 = %+v", resp.List["2"])
	}

	req := f.requests[0]
	if req["consumer_key"] != "key" || req["access_token"] != "token" || req["favorite"] != float64(1) {
		t.Errorf("request payload = %v", req)
	}
}

func TestRetrieveWithoutFavorite(t *testing.T) {
	f := &fakePocket{total: 1}
	c := newTestClient(t, f)

	if _, err := c.Retrieve(context.Background(), RetrieveOptions{Count: 10}); err != nil {
		t.Fatal(err)
	}
	if _, ok := f.requests[0]["favorite"]; ok {
		t.Errorf("favorite should be omitted, payload = %v", f.requests[0])
	}
}

func TestRetrieveErrors(t *testing.T) {
	tests := []struct {
		name    string
		pocket  *fakePocket
		wantMsg string
	}{
		{"http status", &fakePocket{status: http.StatusUnauthorized}, "Invalid consumer key."},
		{"missing list", &fakePocket{body: `{"status":1}`}, "no list"},
		{"invalid json", &fakePocket{body: `{"status":`}, "decode"},
		{"invalid list", &fakePocket{body: `{"status":1,"list":"nope"}`}, "decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.pocket)
			_, err := c.Retrieve(context.Background(), RetrieveOptions{Count: 1})
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Retrieve() error = %v, want containing %q", err, tt.wantMsg)
			}
		})
	}
}

func TestRetrieveMissingCredentials(t *testing.T) {
	c := NewClient("", "token")
	if _, err := c.Retrieve(context.Background(), RetrieveOptions{}); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("Retrieve() error = %v, want ErrMissingCredentials", err)
	}
}

func TestFetchAllFavorites(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		wantItems int
		wantPages int
	}{
		{"empty", 0, 0, 1},
		{"single short page", 5, 5, 1},
		{"exact page then empty", pageSize, pageSize, 2},
		{"two pages", pageSize + 1, pageSize + 1, 2},
		{"page cap", pageSize*maxPages + 10, pageSize * maxPages, maxPages},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakePocket{total: tt.total}
			c := newTestClient(t, f)

			items, err := c.FetchAllFavorites(context.Background())
			if err != nil {
				t.Fatalf("FetchAllFavorites() error = %v", err)
			}
			if len(items) != tt.wantItems {
				t.Errorf("FetchAllFavorites() = %d items, want %d", len(items), tt.wantItems)
			}
			if len(f.requests) != tt.wantPages {
				t.Errorf("made %d requests, want %d", len(f.requests), tt.wantPages)
			}
		})
	}
}

func TestFetchAllFavoritesError(t *testing.T) {
	c := newTestClient(t, &fakePocket{status: http.StatusServiceUnavailable})
	if _, err := c.FetchAllFavorites(context.Background()); err == nil {
		t.Error("FetchAllFavorites() should fail when the API does")
	}
}

func TestItemListUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"object", `{"1":{"item_id":"1"},"2":{"item_id":"2"}}`, 2, false},
		{"empty object", `{}`, 0, false},
		{"empty array", `[]`, 0, false},
		{"array of items", `[{"item_id":"7"}]`, 1, false},
		{"null", `null`, 0, false},
		{"string", `"x"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l ItemList
			err := json.Unmarshal([]byte(tt.input), &l)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(l) != tt.want {
				t.Errorf("Unmarshal() = %d items, want %d", len(l), tt.want)
			}
		})
	}
}
