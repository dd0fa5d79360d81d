package services

import (
	"context"
	"errors"
)

// Custom errors for photo search. Only these three are fatal to a search
// request; everything that goes wrong inside a single batch is absorbed.
var (
	ErrEventIDRequired     = errors.New("event id is required")
	ErrCatalogUnavailable  = errors.New("media catalog unavailable")
	ErrSearchNotConfigured = errors.New("photo search is not configured")
)

// PhotoSearchRequest is one AI photo search invocation.
type PhotoSearchRequest struct {
	EventID string
	Query   string // free-text description, optional
	Image   string // reference image as data-URL or base64, optional

	// When both Image and Query are set, Image wins and Query is ignored.
}

// SearchService scans an event's photos with a vision model and returns
// the matching media ids.
type SearchService interface {
	SearchPhotos(ctx context.Context, req *PhotoSearchRequest) ([]string, error)
}
