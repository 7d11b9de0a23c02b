package routes

import (
	"net/http"

	"github.com/Emeenent14/omniverse/controllers"
	"github.com/Emeenent14/omniverse/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	authCtrl := controllers.NewAuthController()
	productCtrl := controllers.NewProductController()
	cartCtrl := controllers.NewCartController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/forgot-password", authCtrl.ForgotPassword)
	router.POST("/auth/reset-password", authCtrl.ResetPassword)

	router.GET("/categories", productCtrl.GetAllCategories)
	router.GET("/products", middleware.OptionalAuth(), productCtrl.GetProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.PATCH("/auth/profile", authCtrl.UpdateProfile)
		auth.POST("/auth/profile/avatar", authCtrl.UpdateAvatar)
		auth.POST("/auth/change-password", authCtrl.ChangePassword)

		auth.POST("/products", productCtrl.CreateProduct)
		auth.PATCH("/products/:id", productCtrl.UpdateProduct)
		auth.DELETE("/products/:id", productCtrl.DeleteProduct)
		auth.POST("/products/:id/images", productCtrl.AddProductImage)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart", cartCtrl.AddItem)
		auth.GET("/cart/summary", cartCtrl.GetSummary)
		auth.DELETE("/cart/clear", cartCtrl.ClearCart)
		auth.PATCH("/cart/:id", cartCtrl.UpdateItem)
		auth.DELETE("/cart/:id", cartCtrl.DeleteItem)
	}

	router.Static("/uploads", "./uploads")
}
