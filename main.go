package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"kursdunyasi/config"
	"kursdunyasi/database"
	adminRoutes "kursdunyasi/routers/adminRoutes"
	authRoutes "kursdunyasi/routers/authRoutes"
	chatRoutes "kursdunyasi/routers/chatRoutes"
	courseRoutes "kursdunyasi/routers/courseRoutes"
	examRoutes "kursdunyasi/routers/examRoutes"
	paymentRoutes "kursdunyasi/routers/paymentRoutes"
	purchaseRoutes "kursdunyasi/routers/purchaseRoutes"
	"kursdunyasi/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	utils.InitializePurchaseScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	purchaseRoutes.SetupPurchaseRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	examRoutes.SetupExamRoutes(app)
	chatRoutes.SetupChatRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
