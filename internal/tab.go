package internal

import (
	"context"
	"errors"
)

// ErrNoActiveTab is returned when no tab information is available
var ErrNoActiveTab = errors.New("no active tab")

// StaticTabProvider reports a fixed tab, typically taken from CLI flags
type StaticTabProvider struct {
	URL   string
	Title string
}

// ActiveTab returns the configured tab
func (p StaticTabProvider) ActiveTab(ctx context.Context) (*Tab, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.URL == "" && p.Title == "" {
		return nil, ErrNoActiveTab
	}
	return &Tab{URL: p.URL, Title: p.Title}, nil
}

// TabURL returns the tab's URL or "" for a nil tab
func TabURL(tab *Tab) string {
	if tab == nil {
		return ""
	}
	return tab.URL
}

// TabTitle returns the tab's title or "" for a nil tab
func TabTitle(tab *Tab) string {
	if tab == nil {
		return ""
	}
	return tab.Title
}
