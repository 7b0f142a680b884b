package main

import (
	"log"
	"shikhon/config"
	"shikhon/database"
	adminRoutes "shikhon/routers/adminRoutes"
	authRoutes "shikhon/routers/authRoutes"
	courseRoutes "shikhon/routers/courseRoutes"
	jobRoutes "shikhon/routers/jobRoutes"
	paymentRoutes "shikhon/routers/paymentRoutes"
	workshopRoutes "shikhon/routers/workshopRoutes"
	"shikhon/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	utils.InitMailer()
	utils.InitializeWorkshopScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files (uploaded resumes included) from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	workshopRoutes.SetupWorkshopRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	jobRoutes.SetupJobRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
