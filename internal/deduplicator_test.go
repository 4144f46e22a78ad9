package internal

import (
	"testing"
)

func TestNewDeduplicator(t *testing.T) {
	d := NewDeduplicator()
	if d == nil {
		t.Error("NewDeduplicator() returned nil")
	}
}

func TestDeduplicator_Deduplicate(t *testing.T) {
	tests := []struct {
		name    string
		nodes   []*Node
		wantIDs []string
	}{
		{
			name:    "empty",
			nodes:   []*Node{},
			wantIDs: []string{},
		},
		{
			name: "no duplicates",
			nodes: []*Node{
				{ID: "1", URL: "https://a.test"},
				{ID: "2", URL: "https://b.test"},
			},
			wantIDs: []string{"1", "2"},
		},
		{
			name: "exact duplicate keeps first",
			nodes: []*Node{
				{ID: "1", URL: "https://a.test/x"},
				{ID: "2", URL: "https://b.test"},
				{ID: "3", URL: "https://a.test/x"},
			},
			wantIDs: []string{"1", "2"},
		},
		{
			name: "host case and trailing slash",
			nodes: []*Node{
				{ID: "1", URL: "https://Go.Dev/doc/"},
				{ID: "2", URL: "https://go.dev/doc"},
			},
			wantIDs: []string{"1"},
		},
		{
			name: "path case matters",
			nodes: []*Node{
				{ID: "1", URL: "https://a.test/Doc"},
				{ID: "2", URL: "https://a.test/doc"},
			},
			wantIDs: []string{"1", "2"},
		},
		{
			name: "folders and nils",
			nodes: []*Node{
				{ID: "1", Title: "Folder"},
				nil,
				{ID: "2", Title: "Other folder"},
			},
			wantIDs: []string{"1", "2"},
		},
	}

	d := NewDeduplicator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Deduplicate(tt.nodes)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Deduplicate() returned %d nodes, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("node %d = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestDeduplicator_urlKey(t *testing.T) {
	d := NewDeduplicator()

	tests := []struct {
		in   string
		want string
	}{
		{"HTTPS://Example.COM/", "https://example.com"},
		{"https://example.com/a?q=1", "https://example.com/a?q=1"},
		{"not a url", "not a url"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := d.urlKey(tt.in); got != tt.want {
			t.Errorf("urlKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
