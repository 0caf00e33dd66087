package entities

import "tradedesk.backend/pkg/table"

// ViewState is the per-account, per-scene UI state that used to live in the browser
type ViewState struct {
	Sort       table.SortState  `json:"sort"`
	Visibility table.Visibility `json:"visibility,omitempty"`
	Selection  string           `json:"selection,omitempty"`
}

// SortInput is a header click
type SortInput struct {
	Key string `json:"key" validate:"required"`
}

// Scene describes one table scene for navigation
type Scene struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// NavItem is one sidebar entry
type NavItem struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Path  string `json:"path"`
	Group string `json:"group"`
}

// DeleteConfirmation is the first half of a two-step delete
type DeleteConfirmation struct {
	Resource  string `json:"resource"`
	ID        string `json:"id"`
	Token     string `json:"token"`
	Prompt    string `json:"prompt"`
	ExpiresIn int    `json:"expiresIn"`
}
