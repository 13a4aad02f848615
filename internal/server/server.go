package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/satyensinh/trainer-booking-backend/internal/blog"
	"github.com/satyensinh/trainer-booking-backend/internal/booking"
	"github.com/satyensinh/trainer-booking-backend/internal/config"
	"github.com/satyensinh/trainer-booking-backend/internal/gallery"
	"github.com/satyensinh/trainer-booking-backend/internal/notify"
	"github.com/satyensinh/trainer-booking-backend/internal/profile"
	"github.com/satyensinh/trainer-booking-backend/internal/storage"
)

type Server struct {
	router     *gin.Engine
	db         *sqlx.DB
	config     *config.Config
	httpServer *http.Server
}

func New(db *sqlx.DB, cfg *config.Config, store *storage.LocalStore, notifier *notify.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))
	router.Use(corsMiddleware())

	bookingHandler := booking.NewHandler(
		booking.NewService(booking.NewRepository(db), store, notifier, cfg.NotifyEmail),
	)
	profileHandler := profile.NewHandler(
		profile.NewService(profile.NewRepository(db), store),
	)
	galleryHandler := gallery.NewHandler(
		gallery.NewService(gallery.NewRepository(db), store),
	)
	blogHandler := blog.NewHandler(
		blog.NewService(blog.NewRepository(db)),
	)

	router.GET("/availability", bookingHandler.GetAvailability)
	router.POST("/book", bookingHandler.CreateBooking)
	router.GET("/bookings/:id", bookingHandler.GetBooking)

	router.GET("/profile", profileHandler.GetProfile)
	router.PUT("/profile", profileHandler.UpdateProfile)

	router.GET("/gallery", galleryHandler.ListImages)
	router.POST("/gallery", galleryHandler.AddImage)

	router.GET("/blogs", blogHandler.ListPosts)
	router.GET("/blogs/:slug", blogHandler.GetPost)
	router.POST("/blogs", blogHandler.CreatePost)

	// Uploaded files are served verbatim from the blob directory.
	router.Static("/uploads", store.Dir())

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.httpServer = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
