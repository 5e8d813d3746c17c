package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/FerdynandHub/MyAssetTracker-sub000/cmd"
	"github.com/FerdynandHub/MyAssetTracker-sub000/internal/config"
	"github.com/FerdynandHub/MyAssetTracker-sub000/internal/core/logger"
	"github.com/FerdynandHub/MyAssetTracker-sub000/internal/helpbot"
	"github.com/FerdynandHub/MyAssetTracker-sub000/internal/middleware"
	"github.com/FerdynandHub/MyAssetTracker-sub000/internal/routes"
	"github.com/FerdynandHub/MyAssetTracker-sub000/internal/sheetdb"
	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/auditlog"
	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/security"
)

func init() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	cmd.Execute(ctx)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	zapLogger := logger.NewLogger()
	defer zapLogger.Sync()

	client := sheetdb.New(cfg.SheetAPIURL, cfg.RequestTimeout, zapLogger)
	sessions := security.NewSessions(cfg.JWTSecret, cfg.AccessCodeHashes)
	auditLog := auditlog.NewAuditLog(zapLogger)

	bot := helpbot.New([]helpbot.Rule{
		{Keywords: []string{"export", "csv"}, Answer: "Open the overview, pick your filters and hit Export to download a CSV."},
		{Keywords: []string{"battery", "bateri"}, Answer: "The battery ledger lives under the Battery menu; checkouts are capped by current stock."},
		{Keywords: []string{"scan", "barcode"}, Answer: "Use the Scan screen and point the camera at the asset barcode."},
		{Keywords: []string{"approve", "request"}, Answer: "Editors submit change requests; an admin approves or rejects them under Approvals."},
		{Keywords: []string{"login", "code"}, Answer: "Ask your coordinator for the shared access code of your role."},
	}, "Not sure about that one. Ask an admin or check the Approvals screen.")

	router := gin.Default()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.TimeoutMiddleware(30 * time.Second))

	routes.RegisterPublicRoutes(router, sessions)
	routes.RegisterProtectedRoutes(router, sessions, client, auditLog, bot)
	routes.RegisterUtilityRoutes(router)

	if err := router.Run(cfg.ListenAddr); err != nil {
		panic(err)
	}
}
