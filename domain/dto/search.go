package dto

// SearchPhotosRequest is the inbound AI photo search body. Query and Image
// are both optional; Image is a data-URL or base64 payload.
type SearchPhotosRequest struct {
	EventID string `json:"eventId"`
	Query   string `json:"query,omitempty"`
	Image   string `json:"image,omitempty"`
}

// SearchPhotosResponse carries the matched media ids. The list is
// deduplicated; an empty list is a valid successful result.
type SearchPhotosResponse struct {
	MediaIDs []string `json:"mediaIds"`
}

// SearchErrorResponse is the error shape of the search endpoint.
type SearchErrorResponse struct {
	Error string `json:"error"`
}
