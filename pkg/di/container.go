package di

import (
	"context"

	"gorm.io/gorm"

	"event-gallery/application/serviceimpl"
	"event-gallery/domain/repositories"
	"event-gallery/domain/services"
	"event-gallery/infrastructure/googledrive"
	"event-gallery/infrastructure/postgres"
	"event-gallery/infrastructure/rediscache"
	"event-gallery/infrastructure/storage"
	"event-gallery/infrastructure/vision"
	"event-gallery/interfaces/api/handlers"
	"event-gallery/pkg/config"
	"event-gallery/pkg/logger"
	"event-gallery/pkg/scheduler"
)

// linkCheckCron runs the external video link check nightly at 03:30.
const linkCheckCron = "30 3 * * *"

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB           *gorm.DB
	RedisClient  *rediscache.RedisClient
	FileStorage  storage.FileStorage
	VisionClient *vision.Client
	GoogleDrive  *googledrive.DriveClient
	JobScheduler scheduler.JobScheduler

	// Repositories
	UserRepository          repositories.UserRepository
	EventRepository         repositories.EventRepository
	MediaRepository         repositories.MediaRepository
	ExternalVideoRepository repositories.ExternalVideoRepository
	SearchLogRepository     repositories.SearchLogRepository

	// Services
	AuthService          services.AuthService
	UserService          services.UserService
	EventService         services.EventService
	MediaService         services.MediaService
	ExternalVideoService services.ExternalVideoService
	SearchService        services.SearchService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Startup("config_loaded", "Configuration loaded", nil)
	return nil
}

func (c *Container) initInfrastructure() error {
	// Initialize Database
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Startup("db_connected", "Database connected", nil)

	// Run migrations
	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Startup("db_migrated", "Database migrated", nil)

	// Initialize Redis. Without it searches still work, they just skip the cache.
	c.RedisClient = rediscache.NewRedisClient(c.Config.Redis)
	if err := c.RedisClient.Ping(context.Background()); err != nil {
		logger.StartupWarn("redis_connection_failed", "Redis connection failed, search cache disabled", map[string]interface{}{"error": err.Error()})
		c.RedisClient = nil
	} else {
		logger.Startup("redis_connected", "Redis connected", nil)
	}

	// Initialize Bunny Storage
	c.FileStorage = storage.NewBunnyStorage(c.Config.Bunny)
	logger.Startup("bunny_storage_initialized", "Bunny Storage initialized", nil)

	// Initialize vision gateway client
	c.VisionClient = vision.NewClient(c.Config.Vision)
	if !c.VisionClient.Configured() {
		logger.StartupWarn("vision_not_configured", "Vision gateway key not set, photo search disabled", nil)
	} else {
		logger.Startup("vision_initialized", "Vision gateway client initialized", map[string]interface{}{
			"model": c.Config.Vision.Model,
		})
	}

	// Initialize Google Drive Client
	c.GoogleDrive = googledrive.NewDriveClient(c.Config.GoogleDrive)
	if !c.GoogleDrive.Configured() {
		logger.StartupWarn("google_drive_not_configured", "Google Drive not configured, link checks disabled", nil)
	} else {
		logger.Startup("google_drive_initialized", "Google Drive client initialized", nil)
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.EventRepository = postgres.NewEventRepository(c.DB)
	c.MediaRepository = postgres.NewMediaRepository(c.DB)
	c.ExternalVideoRepository = postgres.NewExternalVideoRepository(c.DB)
	c.SearchLogRepository = postgres.NewSearchLogRepository(c.DB)
	logger.Startup("repositories_initialized", "Repositories initialized", nil)
	return nil
}

func (c *Container) initServices() error {
	c.AuthService = serviceimpl.NewAuthService(c.UserRepository, c.Config.JWT.Secret)
	c.UserService = serviceimpl.NewUserService(c.UserRepository)
	c.EventService = serviceimpl.NewEventService(c.EventRepository, c.MediaRepository, c.ExternalVideoRepository, c.FileStorage)
	c.MediaService = serviceimpl.NewMediaService(c.MediaRepository, c.EventRepository, c.FileStorage)
	c.ExternalVideoService = serviceimpl.NewExternalVideoService(c.ExternalVideoRepository, c.EventRepository, c.GoogleDrive)
	c.SearchService = serviceimpl.NewSearchService(c.MediaRepository, c.SearchLogRepository, c.VisionClient, c.RedisClient, c.Config.Search)

	logger.Startup("services_initialized", "Services initialized", nil)
	return nil
}

func (c *Container) initScheduler() error {
	c.JobScheduler = scheduler.NewJobScheduler()
	c.JobScheduler.Start()
	logger.Startup("scheduler_started", "Job scheduler started", nil)

	if c.GoogleDrive.Configured() {
		err := c.JobScheduler.AddJob("external-video-link-check", linkCheckCron, func() {
			checked, unavailable, err := c.ExternalVideoService.CheckLinks(context.Background())
			if err != nil {
				logger.SchedulerError("link_check", "Scheduled link check failed", err, nil)
				return
			}
			logger.Scheduler("link_check", "Scheduled link check finished", map[string]interface{}{
				"checked":     checked,
				"unavailable": unavailable,
			})
		})
		if err != nil {
			logger.SchedulerWarn("link_check_schedule_failed", "Failed to schedule link check", map[string]interface{}{"error": err.Error()})
		}
	}

	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		AuthService:          c.AuthService,
		UserService:          c.UserService,
		EventService:         c.EventService,
		MediaService:         c.MediaService,
		ExternalVideoService: c.ExternalVideoService,
		SearchService:        c.SearchService,
	}
}

func (c *Container) GetHandlerRepositories() *handlers.Repositories {
	return &handlers.Repositories{
		SearchLogRepository: c.SearchLogRepository,
	}
}

func (c *Container) GetHandlerInfrastructure() *handlers.Infrastructure {
	return &handlers.Infrastructure{
		DB:           c.DB,
		RedisClient:  c.RedisClient,
		VisionClient: c.VisionClient,
	}
}

func (c *Container) Cleanup() error {
	if c.JobScheduler != nil {
		c.JobScheduler.Stop()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.StartupError("redis_close_failed", "Failed to close Redis", err, nil)
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			return sqlDB.Close()
		}
	}

	return nil
}
