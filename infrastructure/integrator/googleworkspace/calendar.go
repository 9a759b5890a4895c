package googleworkspace

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/novasync/clinic-api/internal/config"
)

// Event is the subset of a calendar event the facade cares about. Start and
// End carry a date-time for timed events or a bare date for all-day ones.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	Status      string
	HTMLLink    string
	Start       EventTime
	End         EventTime
}

type EventTime struct {
	DateTime string
	Date     string
}

// Value prefers the date-time field, falling back to the all-day date.
func (t EventTime) Value() string {
	if t.DateTime != "" {
		return t.DateTime
	}
	return t.Date
}

// EventInsert is a new timed event in the clinic's timezone.
type EventInsert struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Timezone    string
}

// CalendarClient lists upcoming events and books new ones.
type CalendarClient interface {
	ListUpcoming(ctx context.Context, maxResults int64) ([]Event, error)
	InsertEvent(ctx context.Context, event EventInsert) (string, error)
}

type GoogleCalendarClient struct {
	cfg     *config.Config
	service *calendar.Service
}

// NewCalendarClient builds a Calendar client from the service account
// credentials file. The full calendar scope is needed for event insertion.
func NewCalendarClient(ctx context.Context, cfg *config.Config) (*GoogleCalendarClient, error) {
	service, err := calendar.NewService(ctx,
		option.WithCredentialsFile(cfg.Google.CredentialsFile),
		option.WithScopes(calendar.CalendarScope),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating calendar service")
	}

	return &GoogleCalendarClient{cfg: cfg, service: service}, nil
}

// ListUpcoming returns single-occurrence-expanded events from now (UTC)
// ordered by start time.
func (c *GoogleCalendarClient) ListUpcoming(ctx context.Context, maxResults int64) ([]Event, error) {
	now := time.Now().UTC().Format(time.RFC3339)

	result, err := c.service.Events.List(c.cfg.Google.CalendarID).
		TimeMin(now).
		MaxResults(maxResults).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "listing calendar events")
	}

	events := make([]Event, 0, len(result.Items))
	for _, item := range result.Items {
		event := Event{
			ID:          item.Id,
			Summary:     item.Summary,
			Description: item.Description,
			Location:    item.Location,
			Status:      item.Status,
			HTMLLink:    item.HtmlLink,
		}
		if item.Start != nil {
			event.Start = EventTime{DateTime: item.Start.DateTime, Date: item.Start.Date}
		}
		if item.End != nil {
			event.End = EventTime{DateTime: item.End.DateTime, Date: item.End.Date}
		}
		events = append(events, event)
	}

	return events, nil
}

// InsertEvent books the event and returns its browser link.
func (c *GoogleCalendarClient) InsertEvent(ctx context.Context, event EventInsert) (string, error) {
	body := &calendar.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start: &calendar.EventDateTime{
			DateTime: event.Start.Format(time.RFC3339),
			TimeZone: event.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: event.End.Format(time.RFC3339),
			TimeZone: event.Timezone,
		},
	}

	created, err := c.service.Events.Insert(c.cfg.Google.CalendarID, body).Context(ctx).Do()
	if err != nil {
		return "", errors.Wrap(err, "inserting calendar event")
	}

	return created.HtmlLink, nil
}
