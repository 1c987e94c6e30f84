package main

import (
	"log/slog"
	"os"

	"petmatch_backend/internal/app/router"
	"petmatch_backend/internal/config"
	adoptionadapters "petmatch_backend/internal/feature/adoptions/adapters"
	adoptionhandler "petmatch_backend/internal/feature/adoptions/transport/handler"
	adoptionusecase "petmatch_backend/internal/feature/adoptions/usecase"
	animaladapters "petmatch_backend/internal/feature/animals/adapters"
	animalhandler "petmatch_backend/internal/feature/animals/transport/handler"
	animalusecase "petmatch_backend/internal/feature/animals/usecase"
	authadapters "petmatch_backend/internal/feature/auth/adapters"
	authhandler "petmatch_backend/internal/feature/auth/transport/handler"
	authusecase "petmatch_backend/internal/feature/auth/usecase"
	useradapters "petmatch_backend/internal/feature/users/adapters"
	userhandler "petmatch_backend/internal/feature/users/transport/handler"
	userusecase "petmatch_backend/internal/feature/users/usecase"
	"petmatch_backend/internal/platform/db"
	"petmatch_backend/internal/platform/logger"
	jwtmw "petmatch_backend/internal/platform/jwt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	slog.SetDefault(log)

	conn, err := db.Open(cfg, log)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	// Token service
	tokens := jwtmw.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresIn)

	// Repositories
	authUserRepo := authadapters.NewUserRepository(conn)
	userRepo := useradapters.NewUserRepository(conn)
	animalRepo := animaladapters.NewAnimalRepository(conn)
	adoptionRepo := adoptionadapters.NewAdoptionRepository(conn)
	animalStore := adoptionadapters.NewAnimalStore(conn)

	// Usecases
	authUC := authusecase.NewAuthUsecase(authUserRepo, tokens, cfg.BcryptCost)
	userUC := userusecase.NewUsersUsecase(userRepo, cfg.BcryptCost)
	animalUC := animalusecase.NewAnimalsUsecase(animalRepo)
	adoptionUC := adoptionusecase.NewAdoptionsUsecase(adoptionRepo, animalStore)

	// Handlers
	dev := cfg.Development()
	authH := authhandler.NewAuthHandler(authUC, dev)
	userH := userhandler.NewUserHandler(userUC, dev)
	animalH := animalhandler.NewAnimalHandler(animalUC, dev)
	adoptionH := adoptionhandler.NewAdoptionHandler(adoptionUC, dev)

	r := router.New(cfg, log, tokens, authH, userH, animalH, adoptionH)

	log.Info("server starting", "port", cfg.Port, "env", cfg.Env)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
