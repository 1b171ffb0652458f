// Package routing wires the HTTP endpoints to their handlers.
package routing

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"money-manager-server/internal/handlers"
	"money-manager-server/internal/managers"
	"money-manager-server/internal/middleware"
	"money-manager-server/internal/schemas"
)

const (
	apiVersion = "1.0"
	apiName    = "Money Manager API"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Profile     handlers.ProfileHdl
	Category    handlers.CategoryHdl
	Expense     handlers.TransactionHdl
	Income      handlers.TransactionHdl
	Filter      handlers.FilterHdl
	JWTManager  managers.JWTMgr
	DatabaseMgr managers.DatabaseMgr
}

// InitRouter builds the gin engine with the common middleware chain, the
// public authentication routes and the token-protected resource routes.
func InitRouter(h Handlers, frontendURL string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.InjectTrace())
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.SanitizePath())
	router.Use(middleware.LogRequest())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, schemas.MetadataDTO{
			ApiVersion: apiVersion,
			ApiName:    apiName,
		})
	})
	router.GET("/health", func(c *gin.Context) {
		conn, err := h.DatabaseMgr.GetPool().Acquire(c)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, schemas.MessageDTO{Message: "database unreachable"})
			return
		}
		conn.Release()
		c.JSON(http.StatusOK, schemas.MessageDTO{Message: "ok"})
	})

	api := router.Group("/api")
	api.POST("/register", middleware.ValidateAndSanitizeStruct(&schemas.RegistrationRequest{}), h.Profile.RegisterProfile)
	api.GET("/activate", h.Profile.ActivateProfile)
	api.POST("/login", middleware.ValidateAndSanitizeStruct(&schemas.LoginRequest{}), h.Profile.LoginProfile)

	authed := api.Group("")
	authed.Use(h.JWTManager.JWTMiddleware())

	authed.GET("/profile", h.Profile.GetProfile)

	categories := authed.Group("/categories")
	categories.POST("", middleware.ValidateAndSanitizeStruct(&schemas.CategoryRequest{}), h.Category.CreateCategory)
	categories.GET("", h.Category.ListCategories)
	categories.PUT("/:categoryId", middleware.ValidateAndSanitizeStruct(&schemas.CategoryRequest{}), h.Category.UpdateCategory)

	expenses := authed.Group("/expenses")
	expenses.POST("", middleware.ValidateAndSanitizeStruct(&schemas.TransactionRequest{}), h.Expense.CreateTransaction)
	expenses.GET("", h.Expense.ListCurrentMonth)
	expenses.DELETE("/:transactionId", h.Expense.DeleteTransaction)

	incomes := authed.Group("/incomes")
	incomes.POST("", middleware.ValidateAndSanitizeStruct(&schemas.TransactionRequest{}), h.Income.CreateTransaction)
	incomes.GET("", h.Income.ListCurrentMonth)
	incomes.DELETE("/:transactionId", h.Income.DeleteTransaction)

	authed.POST("/filter", middleware.ValidateAndSanitizeStruct(&schemas.FilterRequest{}), h.Filter.FilterTransactions)

	return router
}
