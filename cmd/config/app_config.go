package config

import (
	"os"

	"github.com/YasserDalali/compaire/internal/api/handlers"
	"github.com/YasserDalali/compaire/internal/api/routes"
	"github.com/YasserDalali/compaire/internal/middleware"
	"github.com/YasserDalali/compaire/internal/utils"
	"github.com/YasserDalali/compaire/internal/utils/storage"
	"github.com/YasserDalali/compaire/pkg/receipt"
	"github.com/YasserDalali/compaire/pkg/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	receiptRepository := receipt.NewReceiptRepository(db)

	// Service
	userService := user.NewUserService(userRepository)
	receiptService := receipt.NewReceiptService(receiptRepository, userRepository, s3)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	authHandler := handlers.NewAuthHandler(userService, validator)
	receiptHandler := handlers.NewReceiptHandler(receiptService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		AuthHandler:    authHandler,
		ReceiptHandler: receiptHandler,
		Middleware:     middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
