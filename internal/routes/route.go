package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"festa/internal/container"
	"festa/internal/handlers"
	"festa/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     c.Config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(middleware.RateLimit(rate.Limit(20), 40))
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(200, gin.H{
				"status":  "OK",
				"service": "festa-api",
			})
		})

		// public routes
		v1.POST("/signup", handlers.CreateUser(c.UserService))
		v1.POST("/login", handlers.AuthenticateUser(c.UserService))
		v1.POST("/logout", handlers.Logout())
		v1.GET("/venues/search", handlers.SearchVenues(c.VenueService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(c.JWTSecret, c.Logger))

	protected.GET("/profile", handlers.Profile())

	userRoutes := protected.Group("/users")
	{
		userRoutes.GET("/:id", handlers.GetUser(c.UserService))
		userRoutes.PATCH("/:id", handlers.UpdateUser(c.UserService))
		userRoutes.DELETE("/:id", handlers.DeleteUser(c.UserService))
	}

	venueRoutes := protected.Group("/venues")
	{
		venueRoutes.POST("/", middleware.RequireRole("host"), handlers.CreateVenueHandler(c.VenueService))
		venueRoutes.GET("/", handlers.ListVenues(c.VenueService))
		venueRoutes.GET("/:id", handlers.GetVenueByID(c.VenueService))
		venueRoutes.PATCH("/:id", handlers.UpdateVenue(c.VenueService))
		venueRoutes.DELETE("/:id", handlers.DeleteVenue(c.VenueService))
		venueRoutes.GET("/host-venues/:host_id", handlers.ListVenuesByHost(c.VenueService))

		venueRoutes.POST("/:id/book", handlers.BookVenue(c.BookingService))

		venueRoutes.GET("/:id/reviews", handlers.ListVenueReviews(c.ReviewService))
		venueRoutes.POST("/:id/reviews", handlers.CreateReview(c.ReviewService))
	}

	bookingRoutes := protected.Group("/bookings")
	{
		bookingRoutes.GET("/", handlers.ListMyBookings(c.BookingService))
		bookingRoutes.GET("/:id", handlers.GetBooking(c.BookingService))
		bookingRoutes.POST("/:id/cancel", handlers.CancelBooking(c.BookingService))
	}

	eventRoutes := protected.Group("/events")
	{
		eventRoutes.POST("/", handlers.CreateEvent(c.EventService))
		eventRoutes.GET("/", handlers.ListEvents(c.EventService))
		eventRoutes.GET("/:id", handlers.GetEventByID(c.EventService))
	}

	favouriteRoutes := protected.Group("/favourites")
	{
		favouriteRoutes.POST("/", handlers.AddToFavourites(c.FavouritesService))
		favouriteRoutes.DELETE("/:item_id", handlers.RemoveFromFavourites(c.FavouritesService))
		favouriteRoutes.GET("/", handlers.ListFavourites(c.FavouritesService))
	}

	return r
}
