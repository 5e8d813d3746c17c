package routes

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/FerdynandHub/MyAssetTracker-sub000/internal/assets"
	"github.com/FerdynandHub/MyAssetTracker-sub000/internal/battery"
	"github.com/FerdynandHub/MyAssetTracker-sub000/internal/helpbot"
	"github.com/FerdynandHub/MyAssetTracker-sub000/internal/middleware"
	"github.com/FerdynandHub/MyAssetTracker-sub000/internal/photos"
	"github.com/FerdynandHub/MyAssetTracker-sub000/internal/requests"
	"github.com/FerdynandHub/MyAssetTracker-sub000/internal/sheetdb"
	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/auditlog"
	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/security"
)

func RegisterPublicRoutes(router *gin.Engine, sessions *security.Sessions) {
	security.NewLoginHandler(sessions).RegisterRoutes(router)
}

func RegisterProtectedRoutes(router *gin.Engine, sessions *security.Sessions, client *sheetdb.Client, auditLog *auditlog.Auditlog, bot *helpbot.Bot) {
	protected := router.Group("/api")
	protected.Use(sessions.JWTMiddleware())

	assets.NewAssetHandler(client, auditLog).RegisterRoutes(protected)
	requests.NewHandler(requests.NewService(client), auditLog).RegisterRoutes(protected)
	battery.NewHandler(battery.NewService(client)).RegisterRoutes(protected)
	photos.NewHandler(client).RegisterRoutes(protected)
	bot.RegisterRoutes(protected)
}

func RegisterUtilityRoutes(router *gin.Engine) {
	router.GET("/health", middleware.HealthCheckMiddleware())
	log.Println("Health check route registered")
}
