package models

// Article is a single historical text shown in the browser.
type Article struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SearchResult is an article matched by a query, tagged with the era it was
// found in. It only lives for the duration of one query.
type SearchResult struct {
	Article
	Era Era
}
