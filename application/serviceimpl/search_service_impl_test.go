package serviceimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-gallery/domain/models"
	"event-gallery/domain/repositories"
	"event-gallery/domain/services"
	"event-gallery/infrastructure/vision"
	"event-gallery/pkg/config"
)

type fakeMediaRepo struct {
	repositories.MediaRepository

	photos []models.Media
	err    error
	calls  int
}

func (f *fakeMediaRepo) GetPhotosByEvent(ctx context.Context, eventID uuid.UUID) ([]models.Media, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.photos, nil
}

type fakeSearchLogRepo struct {
	mu      sync.Mutex
	entries []*models.SearchLog
}

func (f *fakeSearchLogRepo) Create(ctx context.Context, log *models.SearchLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, log)
	return nil
}

func (f *fakeSearchLogRepo) GetByEvent(ctx context.Context, eventID uuid.UUID, limit int) ([]models.SearchLog, error) {
	return nil, nil
}

func (f *fakeSearchLogRepo) GetRecent(ctx context.Context, limit int) ([]models.SearchLog, error) {
	return nil, nil
}

type fakeMatchClient struct {
	configured bool
	respond    func(req *vision.MatchRequest) (string, error)

	mu    sync.Mutex
	calls []*vision.MatchRequest
}

func (f *fakeMatchClient) Configured() bool {
	return f.configured
}

func (f *fakeMatchClient) MatchBatch(ctx context.Context, req *vision.MatchRequest) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()
	return f.respond(req)
}

func (f *fakeMatchClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func makePhotos(n int) []models.Media {
	photos := make([]models.Media, n)
	for i := range photos {
		photos[i] = models.Media{
			ID:       uuid.New(),
			EventID:  uuid.New(),
			FileURL:  fmt.Sprintf("https://cdn.example.com/photos/%d.jpg", i),
			FileType: models.MediaTypePhoto,
		}
	}
	return photos
}

func matchAll(req *vision.MatchRequest) (string, error) {
	ids := make([]string, len(req.Photos))
	for i, p := range req.Photos {
		ids[i] = p.ID
	}
	payload, _ := json.Marshal(map[string][]string{"matchedIds": ids})
	return string(payload), nil
}

func newTestService(repo *fakeMediaRepo, client *fakeMatchClient) (services.SearchService, *fakeSearchLogRepo) {
	logRepo := &fakeSearchLogRepo{}
	svc := NewSearchService(repo, logRepo, client, nil, config.SearchConfig{
		BatchSize:   15,
		Concurrency: 4,
	})
	return svc, logRepo
}

func TestPlanBatches(t *testing.T) {
	tests := []struct {
		name      string
		photos    int
		batchSize int
		sizes     []int
	}{
		{"empty", 0, 15, nil},
		{"single partial", 7, 15, []int{7}},
		{"exact batch", 15, 15, []int{15}},
		{"two full one partial", 32, 15, []int{15, 15, 2}},
		{"batch size one", 3, 1, []int{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			photos := makePhotos(tt.photos)
			batches := planBatches(photos, tt.batchSize)

			require.Len(t, batches, len(tt.sizes))
			for i, size := range tt.sizes {
				assert.Len(t, batches[i], size)
			}

			// Concatenating the batches must reproduce the input.
			var flat []models.Media
			for _, b := range batches {
				flat = append(flat, b...)
			}
			assert.Equal(t, photos, flat)
		})
	}
}

func TestSearchPhotosMissingEventID(t *testing.T) {
	repo := &fakeMediaRepo{photos: makePhotos(3)}
	client := &fakeMatchClient{configured: true, respond: matchAll}
	svc, _ := newTestService(repo, client)

	for _, eventID := range []string{"", "   ", "not-a-uuid"} {
		_, err := svc.SearchPhotos(context.Background(), &services.PhotoSearchRequest{
			EventID: eventID,
			Query:   "red shirt",
		})
		assert.ErrorIs(t, err, services.ErrEventIDRequired)
	}

	assert.Zero(t, repo.calls, "catalog must not be touched for invalid requests")
	assert.Zero(t, client.callCount(), "model must not be called for invalid requests")
}

func TestSearchPhotosCatalogUnavailable(t *testing.T) {
	repo := &fakeMediaRepo{err: errors.New("connection refused")}
	client := &fakeMatchClient{configured: true, respond: matchAll}
	svc, _ := newTestService(repo, client)

	_, err := svc.SearchPhotos(context.Background(), &services.PhotoSearchRequest{
		EventID: uuid.New().String(),
		Query:   "red shirt",
	})
	assert.ErrorIs(t, err, services.ErrCatalogUnavailable)
	assert.Zero(t, client.callCount())
}

func TestSearchPhotosEmptyCatalog(t *testing.T) {
	repo := &fakeMediaRepo{}
	client := &fakeMatchClient{configured: true, respond: matchAll}
	svc, _ := newTestService(repo, client)

	ids, err := svc.SearchPhotos(context.Background(), &services.PhotoSearchRequest{
		EventID: uuid.New().String(),
		Query:   "red shirt",
	})
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.NotNil(t, ids)
	assert.Zero(t, client.callCount())
}

func TestSearchPhotosNoCriterion(t *testing.T) {
	repo := &fakeMediaRepo{photos: makePhotos(20)}
	client := &fakeMatchClient{configured: true, respond: matchAll}
	svc, _ := newTestService(repo, client)

	ids, err := svc.SearchPhotos(context.Background(), &services.PhotoSearchRequest{
		EventID: uuid.New().String(),
		Query:   "  ",
	})
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Zero(t, client.callCount(), "degenerate searches make no model calls")
}

func TestSearchPhotosNotConfigured(t *testing.T) {
	repo := &fakeMediaRepo{photos: makePhotos(5)}
	client := &fakeMatchClient{configured: false, respond: matchAll}
	svc, _ := newTestService(repo, client)

	_, err := svc.SearchPhotos(context.Background(), &services.PhotoSearchRequest{
		EventID: uuid.New().String(),
		Query:   "red shirt",
	})
	assert.ErrorIs(t, err, services.ErrSearchNotConfigured)
	assert.Zero(t, client.callCount())
}

func TestSearchPhotosMatchesAllBatches(t *testing.T) {
	photos := makePhotos(32)
	repo := &fakeMediaRepo{photos: photos}
	client := &fakeMatchClient{configured: true, respond: matchAll}
	svc, logRepo := newTestService(repo, client)

	ids, err := svc.SearchPhotos(context.Background(), &services.PhotoSearchRequest{
		EventID: uuid.New().String(),
		Query:   "group photo",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, client.callCount())
	assert.Len(t, ids, 32)
	assert.IsIncreasing(t, ids)

	require.Len(t, logRepo.entries, 1)
	entry := logRepo.entries[0]
	assert.Equal(t, 32, entry.PhotoCount)
	assert.Equal(t, 3, entry.BatchCount)
	assert.Equal(t, 0, entry.FailedBatches)
	assert.Equal(t, 32, entry.MatchCount)
	assert.Equal(t, "text", entry.Mode)
}

func TestSearchPhotosFailedBatchAbsorbed(t *testing.T) {
	photos := makePhotos(45)
	repo := &fakeMediaRepo{photos: photos}

	// The middle batch fails; photos 0-14 and 30-44 still come through.
	failingID := photos[15].ID.String()
	client := &fakeMatchClient{
		configured: true,
		respond: func(req *vision.MatchRequest) (string, error) {
			if req.Photos[0].ID == failingID {
				return "", &vision.RequestError{StatusCode: 500, Body: "upstream error"}
			}
			return matchAll(req)
		},
	}
	svc, logRepo := newTestService(repo, client)

	ids, err := svc.SearchPhotos(context.Background(), &services.PhotoSearchRequest{
		EventID: uuid.New().String(),
		Query:   "red shirt",
	})
	require.NoError(t, err)
	assert.Len(t, ids, 30)

	for i := 15; i < 30; i++ {
		assert.NotContains(t, ids, photos[i].ID.String())
	}

	require.Len(t, logRepo.entries, 1)
	assert.Equal(t, 1, logRepo.entries[0].FailedBatches)
}

func TestSearchPhotosMalformedReplyAbsorbed(t *testing.T) {
	photos := makePhotos(20)
	repo := &fakeMediaRepo{photos: photos}

	firstID := photos[0].ID.String()
	client := &fakeMatchClient{
		configured: true,
		respond: func(req *vision.MatchRequest) (string, error) {
			if req.Photos[0].ID == firstID {
				return "I found several matching photos!", nil
			}
			return matchAll(req)
		},
	}
	svc, _ := newTestService(repo, client)

	ids, err := svc.SearchPhotos(context.Background(), &services.PhotoSearchRequest{
		EventID: uuid.New().String(),
		Query:   "red shirt",
	})
	require.NoError(t, err)
	assert.Len(t, ids, 5, "only the healthy batch contributes")
}

func TestSearchPhotosFiltersForeignIDs(t *testing.T) {
	photos := makePhotos(4)
	repo := &fakeMediaRepo{photos: photos}

	echoed := photos[1].ID.String()
	client := &fakeMatchClient{
		configured: true,
		respond: func(req *vision.MatchRequest) (string, error) {
			// Model invents an id and repeats a real one.
			payload, _ := json.Marshal(map[string][]string{
				"matchedIds": {echoed, "not-a-real-photo", echoed},
			})
			return string(payload), nil
		},
	}
	svc, _ := newTestService(repo, client)

	ids, err := svc.SearchPhotos(context.Background(), &services.PhotoSearchRequest{
		EventID: uuid.New().String(),
		Query:   "red shirt",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{echoed}, ids)
}

func TestSearchPhotosUnionAcrossBatches(t *testing.T) {
	photos := makePhotos(32)
	repo := &fakeMediaRepo{photos: photos}

	// One match in batch 1 and one in batch 2, nothing in batch 3.
	first := photos[7].ID.String()
	second := photos[20].ID.String()
	client := &fakeMatchClient{
		configured: true,
		respond: func(req *vision.MatchRequest) (string, error) {
			matched := []string{}
			for _, p := range req.Photos {
				if p.ID == first || p.ID == second {
					matched = append(matched, p.ID)
				}
			}
			payload, _ := json.Marshal(map[string][]string{"matchedIds": matched})
			return string(payload), nil
		},
	}
	svc, _ := newTestService(repo, client)

	ids, err := svc.SearchPhotos(context.Background(), &services.PhotoSearchRequest{
		EventID: uuid.New().String(),
		Query:   "blue jacket",
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first, second}, ids)
}

func TestSearchPhotosIdempotent(t *testing.T) {
	photos := makePhotos(20)
	repo := &fakeMediaRepo{photos: photos}
	client := &fakeMatchClient{configured: true, respond: matchAll}
	svc, _ := newTestService(repo, client)

	req := &services.PhotoSearchRequest{
		EventID: uuid.New().String(),
		Query:   "red shirt",
	}

	first, err := svc.SearchPhotos(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.SearchPhotos(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSearchPhotosImageWinsOverQuery(t *testing.T) {
	photos := makePhotos(2)
	repo := &fakeMediaRepo{photos: photos}
	client := &fakeMatchClient{configured: true, respond: matchAll}
	svc, logRepo := newTestService(repo, client)

	_, err := svc.SearchPhotos(context.Background(), &services.PhotoSearchRequest{
		EventID: uuid.New().String(),
		Query:   "red shirt",
		Image:   "data:image/jpeg;base64,AAAA",
	})
	require.NoError(t, err)

	require.Equal(t, 1, client.callCount())
	assert.Equal(t, vision.ModeFace, client.calls[0].Mode())

	require.Len(t, logRepo.entries, 1)
	assert.Equal(t, "face", logRepo.entries[0].Mode)
}
