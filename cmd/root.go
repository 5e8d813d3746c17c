package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/FerdynandHub/MyAssetTracker-sub000/internal/config"
	"github.com/FerdynandHub/MyAssetTracker-sub000/internal/core/logger"
	"github.com/FerdynandHub/MyAssetTracker-sub000/internal/export"
	"github.com/FerdynandHub/MyAssetTracker-sub000/internal/integrations/googlesheets"
	"github.com/FerdynandHub/MyAssetTracker-sub000/internal/sheetdb"
	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/models"
)

var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the asset register to a CSV file.",
	Long:  `Fetches the full register and writes it as CSV. Falls back to reading the Google Sheet directly when the action service is unreachable.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		zapLogger := logger.NewLogger()
		defer zapLogger.Sync()

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		client := sheetdb.New(cfg.SheetAPIURL, cfg.RequestTimeout, zapLogger)
		assets, err := client.GetAssets(ctx)
		if err != nil {
			zapLogger.Warn("action service unreachable, falling back to direct sheet read")
			if cfg.SpreadsheetID == "" {
				return fmt.Errorf("fetch assets: %w", err)
			}
			assets, err = readFromSheet(ctx, cfg)
			if err != nil {
				return fmt.Errorf("read register sheet: %w", err)
			}
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = export.Filename(time.Now())
		}

		if err := os.WriteFile(out, []byte(export.WriteCSV(assets)), 0644); err != nil {
			return fmt.Errorf("write export file: %w", err)
		}

		fmt.Printf("Exported %d assets to %s\n", len(assets), out)
		os.Exit(0)
		return nil
	},
}

func readFromSheet(ctx context.Context, cfg *config.Config) ([]models.Asset, error) {
	register, err := googlesheets.NewRegisterService(ctx, cfg.SpreadsheetID, cfg.ReadRange)
	if err != nil {
		return nil, err
	}
	return register.ReadAssets()
}

func Execute(ctx context.Context) {
	rootCmd := &cobra.Command{
		Use:   "portal-avm",
		Short: "Portal AVM asset tracking service",
	}
	ExportCmd.Flags().String("out", "", "Target CSV file (defaults to assets_export_<date>.csv)")
	rootCmd.AddCommand(ExportCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
