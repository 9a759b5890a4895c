package googleworkspace

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/novasync/clinic-api/internal/config"
)

// SheetsReader reads the lead sheet's configured range.
type SheetsReader interface {
	ReadLeadRange(ctx context.Context) ([][]string, error)
}

type SheetsClient struct {
	cfg     *config.Config
	service *sheets.Service
}

// NewSheetsClient builds a read-only Sheets client from the service account
// credentials file.
func NewSheetsClient(ctx context.Context, cfg *config.Config) (*SheetsClient, error) {
	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(cfg.Google.CredentialsFile),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating sheets service")
	}

	return &SheetsClient{cfg: cfg, service: service}, nil
}

// ReadLeadRange fetches the configured sheet range and flattens every cell
// to a string.
func (c *SheetsClient) ReadLeadRange(ctx context.Context) ([][]string, error) {
	result, err := c.service.Spreadsheets.Values.
		Get(c.cfg.Google.SheetID, c.cfg.Google.SheetRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "fetching sheet values")
	}

	rows := make([][]string, 0, len(result.Values))
	for _, row := range result.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprint(cell))
		}
		rows = append(rows, cells)
	}

	return rows, nil
}
