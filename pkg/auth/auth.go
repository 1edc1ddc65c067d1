// Package auth builds an authenticated Google Sheets service from
// service-account credentials. The engine runs unattended under a scheduler,
// so there is no interactive token flow; the key comes from a local file or
// inline from the environment.
package auth

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/ovalle/asistego/pkg/config"
)

// NewSheetsService creates a Sheets API service authenticated as the
// configured service account. The key file takes precedence over inline JSON
// when both are configured.
func NewSheetsService(ctx context.Context, cfg *config.Config) (*gsheets.Service, error) {
	keyJSON := []byte(cfg.CredentialsJSON)
	if cfg.CredentialsFile != "" {
		b, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file %s: %w", cfg.CredentialsFile, err)
		}
		keyJSON = b
	}

	jwt, err := google.JWTConfigFromJSON(keyJSON, gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account key: %w", err)
	}

	srv, err := gsheets.NewService(ctx, option.WithHTTPClient(jwt.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets service: %w", err)
	}
	return srv, nil
}
