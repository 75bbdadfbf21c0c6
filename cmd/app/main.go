package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripgenius/cmd/fx/auth_fx"
	"tripgenius/cmd/fx/controllers_fx"
	"tripgenius/cmd/fx/session_fx"
	"tripgenius/cmd/fx/store_fx"
	"tripgenius/cmd/fx/trip_fx"
	"tripgenius/internal/api/controllers"
	"tripgenius/internal/infra"
	"tripgenius/internal/services"
	"tripgenius/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		store_fx.Module,
		session_fx.Module,
		auth_fx.Module,
		trip_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(infra.SeedDemoData),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authService services.AuthServiceInterface,
	authController *controllers.AuthController,
	tripController *controllers.TripController,
	healthController *controllers.HealthController,
) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, authService, authController, tripController, healthController)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	authService services.AuthServiceInterface,
	authController *controllers.AuthController,
	tripController *controllers.TripController,
	healthController *controllers.HealthController,
) {
	r.GET("/ping", healthController.Ping)

	authGroup := r.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware(5, 10))
	authGroup.POST("/signup", authController.Signup)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/logout", authController.Logout)
	authGroup.GET("/me", authController.Me)

	tripGroup := r.Group("/trips")
	tripGroup.Use(middleware.SessionAuthMiddleware(authService))
	tripGroup.POST("/generate", tripController.GenerateTrip)
	tripGroup.GET("", tripController.GetTrips)
	tripGroup.GET("/:id", tripController.GetTrip)
	tripGroup.PUT("/:id", tripController.UpdateTrip)
	tripGroup.DELETE("/:id", tripController.DeleteTrip)
}
