package models

// Page selects a window of a listing.
type Page struct {
	// Limit is the maximum number of items returned.
	Limit uint64 `json:"limit" validate:"min=1,max=100"`

	// Offset is the number of items skipped. It must fit a signed 64-bit
	// SQL integer.
	Offset uint64 `json:"offset" validate:"max=9223372036854775807"`
}

// DefaultPage is used when the request does not specify paging.
var DefaultPage = Page{Limit: 20}

// PostList is one page of posts.
type PostList struct {
	Posts  []Post `json:"posts"`
	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}
