package models

// Page is a single page of a list query plus the unpaged total.
type Page[T any] struct {
	Total int64 `json:"total"`
	Items []T   `json:"items"`
}
