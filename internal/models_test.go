package internal

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNode_IsFolder(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want bool
	}{
		{name: "folder", node: Node{ID: "1", Title: "Bookmarks bar"}, want: true},
		{name: "leaf", node: Node{ID: "2", Title: "Go", URL: "https://go.dev"}, want: false},
		{name: "untitled folder", node: Node{ID: "3"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.IsFolder(); got != tt.want {
				t.Errorf("IsFolder() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntry_JSONPromotesNodeFields(t *testing.T) {
	e := Entry{
		Node:     &Node{ID: "5", Title: "Go @lang", URL: "https://go.dev"},
		Path:     []string{"Bookmarks bar"},
		Depth:    1,
		Expanded: true,
	}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	out := string(data)
	for _, want := range []string{`"id":"5"`, `"url":"https://go.dev"`, `"depth":1`, `"isFolder":false`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON %s missing %s", out, want)
		}
	}
}
