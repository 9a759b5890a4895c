package agenda

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/novasync/clinic-api/infrastructure/integrator/googleworkspace"
	"github.com/novasync/clinic-api/internal/domain"
)

const upcomingEventsLimit = 10

// AppointmentLister fetches upcoming clinic appointments live from the
// calendar; nothing is stored locally.
type AppointmentLister interface {
	Upcoming(ctx context.Context) ([]domain.Appointment, error)
}

type Service struct {
	calendar googleworkspace.CalendarClient
}

func NewService(calendar googleworkspace.CalendarClient) AppointmentLister {
	return &Service{calendar: calendar}
}

// Upcoming projects the next calendar events into the fixed appointment
// shape. Start and end prefer the date-time field, falling back to the
// all-day date.
func (s *Service) Upcoming(ctx context.Context) ([]domain.Appointment, error) {
	events, err := s.calendar.ListUpcoming(ctx, upcomingEventsLimit)
	if err != nil {
		return nil, err
	}

	appointments := make([]domain.Appointment, 0, len(events))
	for _, event := range events {
		appointment := domain.Appointment{
			ID:          event.ID,
			Summary:     event.Summary,
			Description: event.Description,
			Start:       event.Start.Value(),
			End:         event.End.Value(),
			Location:    event.Location,
			Status:      event.Status,
			HTMLLink:    event.HTMLLink,
		}
		if appointment.Summary == "" {
			appointment.Summary = "Busy"
		}
		if appointment.Status == "" {
			appointment.Status = "confirmed"
		}
		appointments = append(appointments, appointment)
	}

	logrus.WithField("appointment_count", len(appointments)).Info("agenda: upcoming events fetched")

	return appointments, nil
}
