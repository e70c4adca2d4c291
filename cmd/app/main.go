package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"doramahub/cmd/fx/admin_fx"
	"doramahub/cmd/fx/assistant_fx"
	"doramahub/cmd/fx/controllers_fx"
	"doramahub/cmd/fx/credential_fx"
	"doramahub/cmd/fx/dashboard_fx"
	"doramahub/cmd/fx/db_fx"
	"doramahub/cmd/fx/localcache_fx"
	"doramahub/cmd/fx/session_fx"
	"doramahub/cmd/fx/watchlist_fx"
	"doramahub/internal/api/controllers"
	"doramahub/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		localcache_fx.Module,
		watchlist_fx.Module,
		session_fx.Module,
		credential_fx.Module,
		dashboard_fx.Module,
		admin_fx.Module,
		assistant_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Println("Starting HTTP server at :" + port)
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
	sessionController *controllers.SessionController,
	dashboardController *controllers.DashboardController,
	watchlistController *controllers.WatchlistController,
	configController *controllers.ConfigController,
	adminController *controllers.AdminController,
	assistantController *controllers.AssistantController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		sessionController,
		dashboardController,
		watchlistController,
		configController,
		adminController,
		assistantController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	sessionController *controllers.SessionController,
	dashboardController *controllers.DashboardController,
	watchlistController *controllers.WatchlistController,
	configController *controllers.ConfigController,
	adminController *controllers.AdminController,
	assistantController *controllers.AssistantController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	sessionGroup := r.Group("/session")
	sessionGroup.POST("/status", sessionController.Status)
	sessionGroup.POST("/register", sessionController.Register)
	sessionGroup.POST("/login", sessionController.Login)
	sessionGroup.POST("/test", sessionController.TestLogin)
	sessionGroup.POST("/demo", sessionController.CreateDemo)

	r.GET("/dashboard/:phone", dashboardController.Get)

	watchlistGroup := r.Group("/watchlist")
	watchlistGroup.GET("/:phone", watchlistController.List)
	watchlistGroup.POST("/:phone", watchlistController.Add)
	watchlistGroup.PUT("/entry/:id", watchlistController.Update)
	watchlistGroup.DELETE("/entry/:id", watchlistController.Delete)

	r.GET("/config", configController.Get)

	r.POST("/assistant/suggest", assistantController.Suggest)

	adminGroup := r.Group("/admin")
	adminGroup.POST("/login", adminController.Login)

	authed := adminGroup.Group("")
	authed.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	authed.GET("/clients", adminController.ListClients)
	authed.POST("/clients", adminController.SaveClient)
	authed.DELETE("/clients/:id", adminController.DeleteClient)
	authed.POST("/clients/name", adminController.UpdateClientName)
	authed.POST("/clients/reset-passwords", adminController.ResetPasswords)
	authed.PUT("/config", configController.Save)
}
