package handlers

import (
	"gorm.io/gorm"

	"event-gallery/domain/repositories"
	"event-gallery/domain/services"
	"event-gallery/infrastructure/rediscache"
	"event-gallery/infrastructure/vision"
	"event-gallery/pkg/config"
)

// Services contains all the services needed for handlers
type Services struct {
	AuthService          services.AuthService
	UserService          services.UserService
	EventService         services.EventService
	MediaService         services.MediaService
	ExternalVideoService services.ExternalVideoService
	SearchService        services.SearchService
}

// Repositories contains repositories needed for some handlers
type Repositories struct {
	SearchLogRepository repositories.SearchLogRepository
}

// Infrastructure holds the clients the health handler probes directly.
type Infrastructure struct {
	DB           *gorm.DB
	RedisClient  *rediscache.RedisClient
	VisionClient *vision.Client
}

// Handlers contains all HTTP handlers
type Handlers struct {
	Auth          *AuthHandler
	User          *UserHandler
	Event         *EventHandler
	Media         *MediaHandler
	ExternalVideo *ExternalVideoHandler
	Search        *SearchHandler
	Health        *HealthHandler
	Log           *LogHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(svcs *Services, repos *Repositories, infra *Infrastructure, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth:          NewAuthHandler(svcs.AuthService),
		User:          NewUserHandler(svcs.UserService),
		Event:         NewEventHandler(svcs.EventService, svcs.MediaService),
		Media:         NewMediaHandler(svcs.MediaService),
		ExternalVideo: NewExternalVideoHandler(svcs.ExternalVideoService),
		Search:        NewSearchHandler(svcs.SearchService, repos.SearchLogRepository),
		Health:        NewHealthHandler(infra.DB, infra.RedisClient, infra.VisionClient),
		Log:           NewLogHandler(),
	}
}
