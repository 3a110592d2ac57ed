package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"mandi-bazaar.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	wholesalerHandler *handlers.WholesalerHandler
	orderHandler      *handlers.OrderHandler
	categoryHandler   *handlers.CategoryHandler
	authMiddleware    gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Wholesaler onboarding routes (public)
		wholesaler := v1.Group("/wholesaler")
		{
			wholesaler.POST("/request-otp", d.wholesalerHandler.RequestOTP)
			wholesaler.POST("/signup", d.wholesalerHandler.Signup)
			wholesaler.POST("/create-shop-profile/:wholesalerId", d.wholesalerHandler.CreateShopProfile)
		}

		// Order routes (protected)
		orders := v1.Group("/orders")
		orders.Use(d.authMiddleware)
		{
			orders.POST("", d.orderHandler.CreateOrder)
			orders.GET("", d.orderHandler.ListOrders)
			orders.GET("/search/filter", d.orderHandler.SearchOrders)
			orders.GET("/:orderId", d.orderHandler.GetOrder)
			orders.PATCH("/:orderId/status", d.orderHandler.UpdateOrderStatus)
			orders.DELETE("/:orderId", d.orderHandler.DeleteOrder)
			orders.POST("/dummy-retailer", d.orderHandler.CreateDummyRetailer)
		}

		// Category routes (public read, protected write)
		categories := v1.Group("/categories")
		{
			categories.GET("", d.categoryHandler.ListCategories)
			categories.POST("", d.authMiddleware, d.categoryHandler.CreateCategory)
		}
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "mandi-bazaar-backend",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
