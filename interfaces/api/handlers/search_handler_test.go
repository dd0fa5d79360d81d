package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-gallery/domain/services"
)

type stubSearchService struct {
	gotRequest *services.PhotoSearchRequest
	ids        []string
	err        error
}

func (s *stubSearchService) SearchPhotos(ctx context.Context, req *services.PhotoSearchRequest) ([]string, error) {
	s.gotRequest = req
	return s.ids, s.err
}

func newSearchApp(svc services.SearchService) *fiber.App {
	app := fiber.New()
	handler := NewSearchHandler(svc, nil)
	app.Post("/api/v1/events/search-photos", handler.SearchPhotos)
	return app
}

func postSearch(t *testing.T, app *fiber.App, body string) (int, map[string]json.RawMessage) {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/v1/events/search-photos", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestSearchPhotosEndpointSuccess(t *testing.T) {
	svc := &stubSearchService{ids: []string{"id-1", "id-2"}}
	app := newSearchApp(svc)

	status, body := postSearch(t, app, `{"eventId":"e-1","query":"red shirt","image":"data:image/jpeg;base64,AAAA"}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `["id-1","id-2"]`, string(body["mediaIds"]))

	require.NotNil(t, svc.gotRequest)
	assert.Equal(t, "e-1", svc.gotRequest.EventID)
	assert.Equal(t, "red shirt", svc.gotRequest.Query)
	assert.Equal(t, "data:image/jpeg;base64,AAAA", svc.gotRequest.Image)
}

func TestSearchPhotosEndpointEmptyResult(t *testing.T) {
	svc := &stubSearchService{ids: nil}
	app := newSearchApp(svc)

	status, body := postSearch(t, app, `{"eventId":"e-1","query":"nobody"}`)

	assert.Equal(t, fiber.StatusOK, status)
	// An empty result is a JSON array, never null.
	assert.Equal(t, "[]", string(body["mediaIds"]))
}

func TestSearchPhotosEndpointErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"missing event id", services.ErrEventIDRequired, fiber.StatusBadRequest},
		{"not configured", services.ErrSearchNotConfigured, fiber.StatusServiceUnavailable},
		{"catalog down", services.ErrCatalogUnavailable, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newSearchApp(&stubSearchService{err: tt.err})

			status, body := postSearch(t, app, `{"eventId":"e-1","query":"x"}`)

			assert.Equal(t, tt.wantStatus, status)
			assert.Contains(t, body, "error")
			assert.NotContains(t, body, "mediaIds")
		})
	}
}

func TestSearchPhotosEndpointBadBody(t *testing.T) {
	app := newSearchApp(&stubSearchService{})

	status, body := postSearch(t, app, `{"eventId": 42`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "error")
}
