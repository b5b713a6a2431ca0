package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/foodreview-backend/config"
	"github.com/ikkim/foodreview-backend/internal/app/controller"
	"github.com/ikkim/foodreview-backend/internal/middleware"
)

type Router struct {
	authController       *controller.AuthController
	userController       *controller.UserController
	restaurantController *controller.RestaurantController
	menuController       *controller.MenuController
	dishController       *controller.DishController
	reviewController     *controller.ReviewController
	favoriteController   *controller.FavoriteController
	uploadController     *controller.UploadController
	authMiddleware       *middleware.AuthMiddleware
	metrics              *middleware.Metrics
	config               *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	userController *controller.UserController,
	restaurantController *controller.RestaurantController,
	menuController *controller.MenuController,
	dishController *controller.DishController,
	reviewController *controller.ReviewController,
	favoriteController *controller.FavoriteController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	metrics *middleware.Metrics,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:       authController,
		userController:       userController,
		restaurantController: restaurantController,
		menuController:       menuController,
		dishController:       dishController,
		reviewController:     reviewController,
		favoriteController:   favoriteController,
		uploadController:     uploadController,
		authMiddleware:       authMiddleware,
		metrics:              metrics,
		config:               cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(r.metrics.Middleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Food review API is running",
		})
	})
	router.GET("/metrics", r.metrics.Handler())

	requireLogin := r.authMiddleware.Authenticate()

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", r.authController.Signup)
			auth.POST("/login", r.authController.Login)
			auth.POST("/google", r.authController.GoogleLogin)
			auth.DELETE("/logout", r.authMiddleware.OptionalAuthenticate(), r.authController.Logout)
			auth.GET("/session", requireLogin, r.authController.Session)
		}

		users := v1.Group("/users")
		{
			users.GET("", r.userController.ListUsers)
			users.GET("/:id", r.userController.GetUser)
			users.PATCH("/:id", requireLogin, r.userController.UpdateUser)
			users.DELETE("/:id", requireLogin, r.userController.DeleteUser)
		}

		restaurants := v1.Group("/restaurants")
		{
			restaurants.GET("", r.restaurantController.ListRestaurants)
			restaurants.GET("/:id", r.restaurantController.GetRestaurant)
			restaurants.POST("", requireLogin, r.restaurantController.CreateRestaurant)
			restaurants.PATCH("/:id", requireLogin, r.restaurantController.UpdateRestaurant)
			restaurants.DELETE("/:id", requireLogin, r.restaurantController.DeleteRestaurant)
		}

		menus := v1.Group("/menus")
		{
			menus.GET("", r.menuController.ListMenus)
			menus.GET("/:id", r.menuController.GetMenu)
			menus.POST("", requireLogin, r.menuController.CreateMenu)
			menus.PATCH("/:id", requireLogin, r.menuController.UpdateMenu)
			menus.DELETE("/:id", requireLogin, r.menuController.DeleteMenu)
			menus.POST("/:id/dishes", requireLogin, r.menuController.AddDish)
			menus.DELETE("/:id/dishes/:dish_id", requireLogin, r.menuController.RemoveDish)
		}

		dishes := v1.Group("/dishes")
		{
			dishes.GET("", r.dishController.ListDishes)
			dishes.GET("/:id", r.dishController.GetDish)
			dishes.POST("", requireLogin, r.dishController.CreateDish)
			dishes.PATCH("/:id", requireLogin, r.dishController.UpdateDish)
			dishes.DELETE("/:id", requireLogin, r.dishController.DeleteDish)
		}

		reviews := v1.Group("/reviews")
		{
			reviews.GET("", r.reviewController.ListReviews)
			reviews.GET("/:id", r.reviewController.GetReview)
			reviews.POST("", requireLogin, r.reviewController.CreateReview)
			reviews.PATCH("/:id", requireLogin, r.reviewController.UpdateReview)
			reviews.DELETE("/:id", requireLogin, r.reviewController.DeleteReview)
		}

		favorites := v1.Group("/favorites")
		favorites.Use(requireLogin)
		{
			favorites.GET("", r.favoriteController.ListFavorites)
			favorites.POST("", r.favoriteController.AddFavorite)
			favorites.DELETE("/:restaurant_id", r.favoriteController.RemoveFavorite)
		}

		uploads := v1.Group("/uploads")
		uploads.Use(requireLogin)
		{
			uploads.POST("/presigned-url", r.uploadController.GeneratePresignedURL)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Vary", "Origin")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, X-Request-ID, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PATCH, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
