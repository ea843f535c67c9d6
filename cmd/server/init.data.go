package main

import (
	"context"
	"time"

	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/initsvc"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/global"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/logger"
)

// InitDefaultData seeds roles and categories when INITMODE is set.
func InitDefaultData() {
	log := logger.GetAppLogger()
	if !global.MongoDB_ServerConfig.InitMode {
		log.Debug("INITMODE off, skipping seed data")
		return
	}

	initService, err := initsvc.NewInitService()
	if err != nil {
		log.Fatalf("initialize init service: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := initService.InitRoles(ctx); err != nil {
		log.WithError(err).Warn("seed roles")
	}
	if _, err := initService.InitCategories(ctx); err != nil {
		log.WithError(err).Warn("seed categories")
	}
}
