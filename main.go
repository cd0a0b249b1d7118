package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tripnest/bookingbackend/config"
	"github.com/tripnest/bookingbackend/controllers"
	"github.com/tripnest/bookingbackend/database"
	"github.com/tripnest/bookingbackend/images"
	"github.com/tripnest/bookingbackend/logging"
	"github.com/tripnest/bookingbackend/middleware"
	"github.com/tripnest/bookingbackend/payments"
	"github.com/tripnest/bookingbackend/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logging.NewLogger("production")
		boot.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := logging.NewLogger(cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	db := client.Database(cfg.DBName)
	logger.Info().Str("database", db.Name()).Msg("connected to MongoDB")

	if err := database.EnsureUserIndexes(db); err != nil {
		logger.Fatal().Err(err).Msg("user index bootstrap failed")
	}
	if err := database.EnsureHotelIndexes(db); err != nil {
		logger.Fatal().Err(err).Msg("hotel index bootstrap failed")
	}

	uploader, err := images.NewGCSUploader(ctx, cfg.GCSBucket, cfg.GCSCredentials)
	if err != nil {
		logger.Fatal().Err(err).Msg("image store client failed")
	}
	pay := payments.NewStripeClient(cfg.StripeSecretKey)

	users := db.Collection("users")
	hotels := db.Collection("hotels")
	store := database.NewHotelStore(db)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.Errors(cfg, logger))

	auth := middleware.Auth(cfg)

	api := r.Group("/api")

	user := api.Group("/user")
	{
		user.POST("/register", validation.Middleware(validation.RegisterRules()), controllers.Register(users, cfg))
		user.POST("/signin", controllers.SignIn(users, cfg))
		user.GET("/validate-token", auth, controllers.ValidateToken())
		user.POST("/logout", controllers.Logout())
		user.GET("/me", auth, controllers.GetMe(users))
	}

	hotelRoutes := api.Group("/hotels")
	{
		hotelRoutes.GET("", controllers.GetLatestHotels(hotels))
		hotelRoutes.GET("/search", controllers.SearchHotels(hotels))
		hotelRoutes.GET("/:id", validation.ParamsMiddleware(validation.HotelIDRules()), controllers.GetHotelByID(hotels))
		hotelRoutes.POST("/:hotelId/bookings/payment-intent", auth, controllers.CreatePaymentIntent(store, pay))
		hotelRoutes.POST("/:hotelId/bookings", auth, controllers.CreateBooking(store, pay))
	}

	myHotels := api.Group("/my-hotels", auth)
	{
		myHotels.POST("", validation.Middleware(validation.HotelRules()), controllers.CreateMyHotel(hotels, uploader))
		myHotels.GET("", controllers.GetMyHotels(hotels))
		myHotels.GET("/:id", controllers.GetMyHotelByID(hotels))
		myHotels.PUT("/:id", validation.Middleware(validation.HotelRules()), controllers.UpdateMyHotel(hotels, uploader))
	}

	myBookings := api.Group("/my-bookings")
	{
		myBookings.GET("", auth, controllers.GetMyBookings(hotels))
		myBookings.DELETE("/:hotelId", controllers.DeleteMyBooking(store))
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
