package model

// Paging is an offset-based paging container.
type Paging[T any] struct {
	Href     string `json:"href"`
	Items    []T    `json:"items"`
	Limit    int    `json:"limit"`
	Next     string `json:"next"`
	Offset   int    `json:"offset"`
	Previous string `json:"previous"`
	Total    int    `json:"total"`
}

// Cursor points to the position after the current page.
type Cursor struct {
	After string `json:"after"`
}

// CursorPaging is a cursor-based paging container. It can only be
// traversed forward.
type CursorPaging[T any] struct {
	Href    string `json:"href"`
	Items   []T    `json:"items"`
	Limit   int    `json:"limit"`
	Next    string `json:"next"`
	Cursors Cursor `json:"cursors"`
	Total   int    `json:"total"`
}
