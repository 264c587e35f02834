// Package api exposes the ledger's operations over REST. It translates
// transport concerns only: NotFound becomes 404, invalid input 400,
// classifier failures 502, everything else 500. No core behavior lives here.
package api

import (
	"net/http"
	"time"

	"coopledger/internal/ledger"
	"coopledger/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine serving the ledger API
func NewRouter(led *ledger.Ledger, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(log))
	router.Use(gin.Recovery())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the cooperative decision-support ledger."})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// User endpoints
	router.POST("/users", func(c *gin.Context) {
		var req struct {
			Username      string   `json:"username" binding:"required"`
			GuidingValues []string `json:"guiding_values"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := led.CreateUser(c.Request.Context(), req.Username, req.GuidingValues)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, user)
	})

	router.GET("/users", func(c *gin.Context) {
		users, err := led.ListUsers(c.Request.Context())
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, users)
	})

	router.GET("/users/:id", func(c *gin.Context) {
		user, err := led.GetUser(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, user)
	})

	// Element endpoints
	router.POST("/elements", func(c *gin.Context) {
		var req struct {
			Title string `json:"title" binding:"required"`
			Type  string `json:"type"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		element, err := led.CreateElement(c.Request.Context(), req.Title, req.Type)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, element)
	})

	router.GET("/elements", func(c *gin.Context) {
		elements, err := led.ListElements(c.Request.Context())
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, elements)
	})

	router.GET("/elements/search", func(c *gin.Context) {
		results, err := led.SearchElements(c.Request.Context(), c.Query("query"))
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, results)
	})

	router.POST("/elements/link", func(c *gin.Context) {
		var req struct {
			ElementID1 string `json:"element_id_1" binding:"required"`
			ElementID2 string `json:"element_id_2" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := led.LinkElements(c.Request.Context(), req.ElementID1, req.ElementID2); err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Linked elements " + req.ElementID1 + " and " + req.ElementID2 + "."})
	})

	router.GET("/elements/:id", func(c *gin.Context) {
		element, err := led.GetElement(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, element)
	})

	// Action endpoints
	router.POST("/actions", func(c *gin.Context) {
		var req struct {
			UserID         string   `json:"user_id" binding:"required"`
			ElementID      string   `json:"element_id"`
			ActionType     string   `json:"action_type"`
			Content        string   `json:"content"`
			LinkedElements []string `json:"linked_elements"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.ActionType == "" {
			req.ActionType = "opinion"
		}

		action, err := led.CreateAction(c.Request.Context(), req.UserID, req.ElementID, req.ActionType, req.Content, req.LinkedElements)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, action)
	})

	router.GET("/actions", func(c *gin.Context) {
		actions, err := led.ListActions(c.Request.Context())
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, actions)
	})

	router.GET("/actions/:id", func(c *gin.Context) {
		action, err := led.GetAction(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, action)
	})

	router.POST("/actions/:id/vote", func(c *gin.Context) {
		var req struct {
			UserID string `json:"user_id" binding:"required"`
			Value  *int   `json:"value" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		action, err := led.Vote(c.Request.Context(), c.Param("id"), req.UserID, *req.Value)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, action)
	})

	// Decision endpoints
	router.GET("/decisions/:id", func(c *gin.Context) {
		outcome, err := led.DecisionOutcome(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, outcome)
	})

	return router
}

// respondError maps core errors onto HTTP statuses
func respondError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.IsInvalidInput(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.IsClassifierFailure(err):
		log.Error("Classifier failure", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "classification failed"})
	default:
		log.Error("Request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// requestLogger is a custom logger middleware for Gin
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Info("HTTP Request",
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		)
	}
}
