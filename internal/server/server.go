package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"nourishcoach/internal/booking"
	"nourishcoach/internal/config"
	"nourishcoach/internal/content"
	"nourishcoach/internal/email"
	"nourishcoach/internal/kvstore"
	"nourishcoach/internal/nutrition"
	"nourishcoach/internal/plan"
	"nourishcoach/internal/timegrid"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	config *config.Config
}

// New wires the handlers onto the router. The ledger and store are
// interfaces so demo mode can run entirely in memory.
func New(cfg *config.Config, ledger booking.Ledger, store kvstore.Store, emailService *email.Service) (*Server, error) {
	open, err := timegrid.Parse(cfg.BookingOpen)
	if err != nil {
		return nil, err
	}
	close, err := timegrid.Parse(cfg.BookingClose)
	if err != nil {
		return nil, err
	}

	var sender booking.ConfirmationSender
	if emailService != nil {
		sender = emailService
	}

	bookingHandler := booking.NewHandler(
		booking.NewService(ledger, sender, open, close, cfg.BookingInterval))
	nutritionHandler := nutrition.NewHandler(nutrition.NewService(store))
	planHandler := plan.NewHandler(plan.NewService(
		&plan.Client{BaseURL: cfg.PlanAPIURL, Timeout: cfg.PlanAPITimeout}, store))
	contentHandler := content.NewHandler(content.NewService(store))

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	if emailService != nil {
		router.GET("/test-email", TestEmail(emailService))
	}

	api := router.Group("/api")
	api.Use(RateLimitMiddleware(10, 20))
	{
		api.GET("/slots", bookingHandler.DayGrid)
		api.POST("/appointments", bookingHandler.Book)

		api.POST("/calculator/macros", nutritionHandler.Macros)
		api.GET("/calculator/macros/last", nutritionHandler.LastProfile)
		api.POST("/calculator/bmi", nutritionHandler.BMI)

		api.POST("/assistant/plan", planHandler.Generate)
		api.GET("/assistant/plan/last", planHandler.LastPlan)
		api.GET("/assistant/plan/export.csv", planHandler.ExportCSV)
		api.GET("/assistant/plan/share", planHandler.Share)

		api.GET("/blog/posts", contentHandler.ListPosts)
		api.POST("/blog/posts", contentHandler.AddPost)
		api.GET("/blog/posts/:slug", contentHandler.GetPost)
		api.GET("/blog/posts/:slug/flags", contentHandler.Flags)
		api.POST("/blog/posts/:slug/like", contentHandler.ToggleLike)
		api.POST("/blog/posts/:slug/save", contentHandler.ToggleSave)

		api.GET("/testimonials", contentHandler.ListTestimonials)
		api.POST("/testimonials", contentHandler.AddTestimonial)

		api.GET("/posts/:slug/comments", contentHandler.Comments)
		api.POST("/posts/:slug/comments", contentHandler.AddComment)
	}

	return &Server{
		router: router,
		config: cfg,
	}, nil
}

// Router exposes the gin engine for in-process tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
