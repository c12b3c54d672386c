package main

import (
	"context"

	"github.com/Calorties/calorties-api/config"
	"github.com/Calorties/calorties-api/controllers"
	"github.com/Calorties/calorties-api/logger"
	"github.com/Calorties/calorties-api/repositories"
	"github.com/Calorties/calorties-api/routes"
	"github.com/Calorties/calorties-api/services"
	"github.com/Calorties/calorties-api/utils"

	"go.uber.org/zap"
)

func main() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	log := logger.L()
	defer log.Sync()

	cfg, err := config.Load(log)
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := config.ConnectDB(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	images, err := services.NewImageStore(context.Background(), cfg.S3)
	if err != nil {
		log.Fatal("failed to initialize image store", zap.Error(err))
	}

	tokens := utils.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	store := repositories.NewCalorieRepo(db, cfg.Timezone)
	predictor := services.NewPredictionService(cfg.Inference, log)

	authSvc := services.NewAuthService(db, tokens)
	userSvc := services.NewUserService(db, images)
	foodSvc := services.NewFoodService(db)
	summarySvc := services.NewSummaryService(store, cfg.Timezone, log)
	calorieSvc := services.NewCalorieService(store, images, predictor, log)

	r := routes.SetupRouter(routes.RouterDeps{
		DB:       db,
		Tokens:   tokens,
		Auth:     controllers.NewAuthController(authSvc),
		Users:    controllers.NewUserController(userSvc),
		Foods:    controllers.NewFoodController(foodSvc, summarySvc),
		Calories: controllers.NewCalorieController(calorieSvc, summarySvc),
	})

	log.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
