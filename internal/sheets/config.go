package sheets

import (
	"fmt"
	"os"
)

// Config holds everything needed to open the spreadsheet backend.
type Config struct {
	SpreadsheetID   string
	CredentialsFile string // service-account JSON; empty means default credentials
	SheetName       string
}

// LoadConfig reads the sheets configuration from the environment.
// SHEETS_SPREADSHEET_ID is required; the sheet name defaults to "Orders".
func LoadConfig() (Config, error) {
	cfg := Config{
		SpreadsheetID:   os.Getenv("SHEETS_SPREADSHEET_ID"),
		CredentialsFile: os.Getenv("SHEETS_CREDENTIALS_FILE"),
		SheetName:       os.Getenv("ORDERS_SHEET_NAME"),
	}
	if cfg.SheetName == "" {
		cfg.SheetName = "Orders"
	}
	if cfg.SpreadsheetID == "" {
		return cfg, fmt.Errorf("SHEETS_SPREADSHEET_ID is not set")
	}
	return cfg, nil
}
