package main

import (
	"github.com/gin-gonic/gin"

	"github.com/bitpack/huffman-compression-service/internal/api"
	"github.com/bitpack/huffman-compression-service/internal/config"
	"github.com/bitpack/huffman-compression-service/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxFileSize
	api.SetupRoutes(router)

	log.Infof("huffman compression service listening on :%s (%s)", cfg.Port, cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
