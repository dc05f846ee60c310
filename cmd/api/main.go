package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hvrSSB04/ssb-backend/internal/config"
	dbpkg "github.com/hvrSSB04/ssb-backend/internal/db"
	"github.com/hvrSSB04/ssb-backend/internal/logging"
	"github.com/hvrSSB04/ssb-backend/internal/middleware"
	"github.com/hvrSSB04/ssb-backend/internal/routes"
)

func main() {

	logger := logging.Init()
	defer func() {
		_ = logger.Sync()
	}()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
