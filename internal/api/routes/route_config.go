package routes

import (
	"github.com/YasserDalali/compaire/internal/api/handlers"
	"github.com/YasserDalali/compaire/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	AuthHandler    handlers.AuthHandler
	ReceiptHandler handlers.ReceiptHandler
	Middleware     middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Users()
	c.Auth()
	c.Receipts()
	c.GuestRoute()
}

func (c *Config) Users() {
	users := c.App.Group("/users")
	// user routes
	{
		users.Get("", c.UserHandler.GetUsers)
		users.Post("", c.UserHandler.CreateUser)
		users.Get("/:id/receipts", c.ReceiptHandler.GetUserReceipts)
		users.Get("/:id", c.UserHandler.GetUser)
		users.Patch("/:id", c.UserHandler.UpdateUser)
		users.Put("/:id", c.UserHandler.UpdateUser)
		users.Delete("/:id", c.UserHandler.DeleteUser)
	}
}

func (c *Config) Auth() {
	auth := c.App.Group("/auth")
	{
		auth.Post("/login", c.AuthHandler.Login)
		auth.Post("/register", c.AuthHandler.Register)
		auth.Post("/logout", c.AuthHandler.Logout)
	}
}

func (c *Config) Receipts() {
	receipts := c.App.Group("/receipts")
	{
		receipts.Post("", c.ReceiptHandler.CreateReceipt)
		receipts.Get("/:id", c.ReceiptHandler.GetReceipt)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
