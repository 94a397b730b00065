// Package mockapi serves a small local API for exercising the client without
// touching real services: an echo endpoint under /api/test and a status
// endpoint that returns any requested code.
package mockapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yousseftechdev/postmaker/internal/common"
)

// NewEngine builds the gin engine with all mock routes registered.
func NewEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/api/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "GET method: PostMaker API test successful.",
		})
	})
	engine.POST("/api/test", echoHandler("POST"))
	engine.PUT("/api/test", echoHandler("PUT"))
	engine.DELETE("/api/test", echoHandler("DELETE"))

	engine.Any("/status/:code", func(c *gin.Context) {
		code, err := strconv.Atoi(c.Param("code"))
		if err != nil || code < 100 || code > 599 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status code"})
			return
		}
		c.JSON(code, gin.H{"status": code, "reason": http.StatusText(code)})
	})

	return engine
}

// echoHandler reflects the received JSON body back to the caller.
func echoHandler(method string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			body = nil
		}
		c.JSON(http.StatusOK, gin.H{
			"received": body,
			"status":   "success",
			"message":  method + " method: PostMaker API test successful.",
		})
	}
}

// Serve runs the mock API on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	logger := common.GetLogger().WithComponent("mockapi")
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewEngine(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("mock api listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
