package leads

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/novasync/clinic-api/infrastructure/integrator/googleworkspace"
	"github.com/novasync/clinic-api/internal/domain"
)

// LeadLister reads the lead sheet fresh on every request; nothing is cached
// or stored.
type LeadLister interface {
	List(ctx context.Context) ([]domain.Lead, error)
}

type Service struct {
	sheets googleworkspace.SheetsReader
}

func NewService(sheets googleworkspace.SheetsReader) LeadLister {
	return &Service{sheets: sheets}
}

// List treats the first sheet row as column headers and turns every
// following row into a lead with a synthetic 1-based id. An empty sheet
// yields an empty list.
func (s *Service) List(ctx context.Context) ([]domain.Lead, error) {
	rows, err := s.sheets.ReadLeadRange(ctx)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		logrus.Warn("leads: sheet has no rows")
		return []domain.Lead{}, nil
	}

	headers := rows[0]
	result := make([]domain.Lead, 0, len(rows)-1)

	for i, row := range rows[1:] {
		result = append(result, domain.NewLead(i+1, headers, row))
	}

	logrus.WithField("lead_count", len(result)).Info("leads: sheet rows formatted")

	return result, nil
}
