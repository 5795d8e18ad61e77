package main

import (
	"log"

	api "stayhub-backend/cmd/api"
	authdomain "stayhub-backend/internal/auth/domain"
	authRepo "stayhub-backend/internal/auth/repository"
	authUsecase "stayhub-backend/internal/auth/usecase"
	bookingdomain "stayhub-backend/internal/booking/domain"
	bookingRepo "stayhub-backend/internal/booking/repository"
	bookingUsecase "stayhub-backend/internal/booking/usecase"
	"stayhub-backend/internal/media/storage"
	mediaUsecase "stayhub-backend/internal/media/usecase"
	placedomain "stayhub-backend/internal/place/domain"
	placeRepo "stayhub-backend/internal/place/repository"
	placeUsecase "stayhub-backend/internal/place/usecase"
	"stayhub-backend/pkg/config"
	"stayhub-backend/pkg/database"
	"stayhub-backend/pkg/logger"
	"stayhub-backend/pkg/token"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &placedomain.Place{}, &bookingdomain.Booking{}); err != nil {
		zapLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	placeRepository := placeRepo.NewPlaceRepository(db)
	bookingRepository := bookingRepo.NewBookingRepository(db)

	// Token codec: the signing secret is injected here and nowhere else
	codec := token.NewCodec(cfg.JWTSecret, cfg.JWTExpiry)

	// Local media storage
	diskStore, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		zapLogger.Fatal("Failed to initialize upload storage", zap.Error(err))
	}

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, codec)
	placeUsecaseInstance := placeUsecase.NewPlaceUsecase(placeRepository)
	bookingUsecaseInstance := bookingUsecase.NewBookingUsecase(bookingRepository, placeRepository)
	mediaUsecaseInstance := mediaUsecase.NewMediaUsecase(
		diskStore,
		mediaUsecase.NewImageFetchClient(cfg.DownloadTimeout),
		cfg.MaxUploadBytes,
		cfg.MaxPhotosPerReq,
		zapLogger,
	)

	// Initialize HTTP handler
	handler := api.NewHandler(
		authUsecaseInstance,
		placeUsecaseInstance,
		bookingUsecaseInstance,
		mediaUsecaseInstance,
		codec,
		cfg,
		zapLogger,
	)

	// Start server
	zapLogger.Info("Server starting", zap.String("port", cfg.Port))
	if err := handler.Start(":" + cfg.Port); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
