package googlesheets

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/models"
)

// RegisterService reads the asset register straight from the Google Sheet.
// It is the fallback data source for exports when the action service is
// unreachable; the portal never writes through this path.
type RegisterService struct {
	sheetsService *sheets.Service
	spreadsheetID string
	readRange     string
}

func NewRegisterService(ctx context.Context, spreadsheetID, readRange string) (*RegisterService, error) {
	// Poświadczenia z zmiennej środowiskowej albo z pliku lokalnego
	credentialsJSON := os.Getenv("GOOGLE_SHEETS_CREDENTIALS_JSON")
	var credentials *google.Credentials
	var err error

	if credentialsJSON != "" {
		credentials, err = google.CredentialsFromJSON(ctx, []byte(credentialsJSON), sheets.SpreadsheetsReadonlyScope)
	} else {
		credentialsFile := "configs/google-credentials.json"
		b, readErr := os.ReadFile(credentialsFile)
		if readErr != nil {
			return nil, fmt.Errorf("nie można odczytać pliku z danymi uwierzytelniającymi: %v", readErr)
		}
		credentials, err = google.CredentialsFromJSON(ctx, b, sheets.SpreadsheetsReadonlyScope)
	}

	if err != nil {
		return nil, fmt.Errorf("nie można załadować poświadczeń Google: %v", err)
	}

	client := oauth2.NewClient(ctx, credentials.TokenSource)
	sheetsService, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("nie można utworzyć klienta Google Sheets: %v", err)
	}

	return &RegisterService{
		sheetsService: sheetsService,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
	}, nil
}

// ReadAssets loads and parses the whole register.
func (s *RegisterService) ReadAssets() ([]models.Asset, error) {
	values, err := s.readSpreadsheet(s.spreadsheetID, s.readRange)
	if err != nil {
		return nil, fmt.Errorf("nie można odczytać arkusza: %v", err)
	}

	if values == nil {
		log.Printf("Nie znaleziono danych w arkuszu")
		return []models.Asset{}, nil
	}

	return ParseAssets(values), nil
}

func (s *RegisterService) readSpreadsheet(spreadsheetID string, readRange string) ([][]interface{}, error) {
	resp, err := s.sheetsService.Spreadsheets.Values.Get(spreadsheetID, readRange).Do()
	if err != nil {
		return nil, fmt.Errorf("nie można odczytać arkusza: %v", err)
	}

	if len(resp.Values) == 0 {
		log.Printf("Nie znaleziono danych w zakresie %s", readRange)
		return nil, nil
	}

	return resp.Values, nil
}
