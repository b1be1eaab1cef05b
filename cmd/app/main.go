package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"voyago/cmd/fx/authfx"
	"voyago/cmd/fx/budgetfx"
	"voyago/cmd/fx/configfx"
	"voyago/cmd/fx/controllersfx"
	"voyago/cmd/fx/dbfx"
	"voyago/cmd/fx/geocodefx"
	"voyago/cmd/fx/llmfx"
	"voyago/cmd/fx/parsefx"
	"voyago/cmd/fx/travelfx"
	"voyago/cmd/fx/voicefx"
	"voyago/internal/api/controllers"
	"voyago/internal/config"
	"voyago/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

const (
	serviceName    = "Voyago Travel Planner API"
	serviceVersion = "1.0.0"
)

func main() {
	app := fx.New(
		configfx.Module,
		dbfx.Module,
		llmfx.Module,
		authfx.Module,
		travelfx.Module,
		budgetfx.Module,
		parsefx.Module,
		geocodefx.Module,
		voicefx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Settings) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				addr := fmt.Sprintf(":%d", cfg.AppPort)
				log.Printf("Starting HTTP server at %s", addr)
				if err := engine.Run(addr); err != nil {
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
	cfg *config.Settings,
	authController *controllers.AuthController,
	travelController *controllers.TravelController,
	budgetController *controllers.BudgetController,
	parseController *controllers.ParseController,
	geocodeController *controllers.GeocodeController,
	voiceController *controllers.VoiceController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, cfg, authController, travelController, budgetController,
		parseController, geocodeController, voiceController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	cfg *config.Settings,
	authController *controllers.AuthController,
	travelController *controllers.TravelController,
	budgetController *controllers.BudgetController,
	parseController *controllers.ParseController,
	geocodeController *controllers.GeocodeController,
	voiceController *controllers.VoiceController) {

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": serviceName, "version": serviceVersion})
	})
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	if cfg.StaticDir != "" {
		if _, err := os.Stat(cfg.StaticDir); err == nil {
			r.Static("/static", cfg.StaticDir)
		} else {
			log.Printf("Static directory %s not found, skipping mount", cfg.StaticDir)
		}
	}

	authGroup := r.Group("/api/auth")
	authGroup.POST("/signup", authController.SignUp)
	authGroup.POST("/signin", authController.SignIn)
	authGroup.POST("/signout", authController.SignOut)
	authGroup.GET("/user", authController.GetUser)

	authRequired := middleware.AuthMiddleware(cfg.SupabaseJWTSecret)

	travelGroup := r.Group("/api/travel", authRequired)
	travelGroup.POST("/plan", travelController.CreatePlan)
	travelGroup.GET("/plan-stream", travelController.CreatePlanStream)
	travelGroup.GET("/plans", travelController.GetPlans)
	travelGroup.GET("/plans/:planId", travelController.GetPlan)
	travelGroup.PUT("/plans/:planId", travelController.UpdatePlan)
	travelGroup.DELETE("/plans/:planId", travelController.DeletePlan)

	budgetGroup := r.Group("/api/budget", authRequired)
	budgetGroup.POST("/expense", budgetController.AddExpense)
	budgetGroup.GET("/expenses/:planId", budgetController.GetExpenses)
	budgetGroup.GET("/analysis/:planId", budgetController.Analyze)

	parseGroup := r.Group("/api/parse", authRequired)
	parseGroup.POST("/voice-text", parseController.ParseVoiceText)

	voiceGroup := r.Group("/api/voice", authRequired)
	voiceGroup.POST("/recognize", voiceController.Recognize)
	voiceGroup.POST("/recognize-base64", voiceController.RecognizeBase64)

	mapGroup := r.Group("/api/map")
	mapGroup.POST("/geocode", geocodeController.Geocode)
	mapGroup.POST("/driving-route", geocodeController.DrivingRoute)
}
