package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"festa/internal/config"
	"festa/internal/geo"
	"festa/internal/helpers"
	"festa/internal/models"
	"festa/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	Config        *config.Config
	Cloudinary    *cloudinary.Cloudinary
	MongoDBClient *mongo.Client
	JWTSecret     []byte

	UserService         *services.UserService
	VenueService        *services.VenuesService
	BookingService      *services.BookingService
	EventService        *services.EventsService
	AvailabilityService *services.AvailabilityService
	FavouritesService   *services.FavouriteService
	ReviewService       *services.ReviewService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	cld *cloudinary.Cloudinary,
	mongoDBClient *mongo.Client,
	redisClient *redis.Client,
) *Container {
	repo := models.MongodbNewRepo(mongoDBClient)
	jwtSecret := []byte(cfg.JWTSecret)

	var geocoder geo.Geocoder = geo.NewHTTPGeocoder(cfg.GeocoderURL, cfg.GeocoderAPIKey)
	if redisClient != nil {
		geocoder = geo.NewCachedGeocoder(geocoder, redisClient, logger)
	}

	var uploader helpers.ImageUploader
	if cld != nil {
		uploader = helpers.NewCloudinaryUploader(cld)
	}

	availabilityService := services.NewAvailabilityService(repo)
	gateway := services.NewSimulatedGateway(logger)

	userService := services.NewUserService(repo, jwtSecret)
	venueService := services.NewVenuesService(repo, geocoder, availabilityService, uploader, logger)
	bookingService := services.NewBookingService(repo, repo, repo, repo, availabilityService, gateway, logger)
	eventService := services.NewEventsService(repo, repo)
	favouriteService := services.NewFavouriteService(repo)
	reviewService := services.NewReviewService(repo, repo)

	return &Container{
		Logger:        logger,
		Config:        cfg,
		Cloudinary:    cld,
		MongoDBClient: mongoDBClient,
		JWTSecret:     jwtSecret,

		UserService:         userService,
		VenueService:        venueService,
		BookingService:      bookingService,
		EventService:        eventService,
		AvailabilityService: availabilityService,
		FavouritesService:   favouriteService,
		ReviewService:       reviewService,
	}
}
