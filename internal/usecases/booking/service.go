package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/novasync/clinic-api/infrastructure/integrator/googleworkspace"
	"github.com/novasync/clinic-api/internal/config"
	"github.com/novasync/clinic-api/internal/domain"
)

const appointmentDuration = time.Hour

// ToolDispatcher resolves every tool call from the voice agent into a
// textual result. Failures become descriptive text, never an error: the
// agent expects one result per call regardless of outcome.
type ToolDispatcher interface {
	Dispatch(ctx context.Context, toolCalls []domain.ToolCall) []domain.ToolCallResult
}

// CalendarBooker books appointments on the clinic calendar.
type CalendarBooker interface {
	InsertEvent(ctx context.Context, event googleworkspace.EventInsert) (string, error)
}

// DetailSender sends the procedure details over WhatsApp.
type DetailSender interface {
	Configured() bool
	SendText(ctx context.Context, to, text string) error
}

type Service struct {
	cfg      *config.Config
	calendar CalendarBooker
	sender   DetailSender
	location *time.Location
}

func NewService(cfg *config.Config, calendar CalendarBooker, sender DetailSender) *Service {
	location, err := time.LoadLocation(cfg.Clinic.Timezone)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"timezone": cfg.Clinic.Timezone,
			"error":    err.Error(),
		}).Warn("booking: invalid clinic timezone, falling back to UTC")
		location = time.UTC
	}

	return &Service{
		cfg:      cfg,
		calendar: calendar,
		sender:   sender,
		location: location,
	}
}

func (s *Service) Dispatch(ctx context.Context, toolCalls []domain.ToolCall) []domain.ToolCallResult {
	results := make([]domain.ToolCallResult, 0, len(toolCalls))

	for _, call := range toolCalls {
		args := call.Function.ParsedArguments()

		logrus.WithFields(logrus.Fields{
			"tool_call_id": call.ID,
			"function":     call.Function.Name,
		}).Info("booking: dispatching tool call")

		var result string
		switch call.Function.Name {
		case domain.ToolBookAppointment, domain.ToolScheduleDental:
			result = s.bookAppointment(ctx, args)
		case domain.ToolSendWhatsAppDetails:
			result = s.sendWhatsAppDetails(ctx, args)
		case domain.ToolScheduleFollowup:
			logrus.WithFields(logrus.Fields{
				"date":   args["date"],
				"reason": args["reason"],
			}).Info("booking: followup scheduled")
			result = "Followup noted."
		case domain.ToolUpdateLeadData:
			logrus.WithField("args", args).Info("booking: lead data updated")
			result = "Lead data updated."
		default:
			logrus.WithField("function", call.Function.Name).Warn("booking: unknown tool")
			result = fmt.Sprintf("Function %s executed (simulated).", call.Function.Name)
		}

		results = append(results, domain.ToolCallResult{
			ToolCallID: call.ID,
			Result:     result,
		})
	}

	return results
}

// bookAppointment accepts the two argument-naming schemes the agent uses
// and books a fixed one-hour slot on the clinic calendar.
func (s *Service) bookAppointment(ctx context.Context, args map[string]string) string {
	name := firstNonEmpty(args["name"], args["customer_name"])
	day := firstNonEmpty(args["day"], args["date"])
	timeArg := args["time"]
	procedure := firstNonEmpty(args["procedure_type"], "Dental Checkup")

	if day == "" || timeArg == "" {
		return "Error: Missing day or time."
	}

	start, err := s.parseStartTime(day, timeArg)
	if err != nil {
		return fmt.Sprintf("Failed to book calendar event: %s", err)
	}

	link, err := s.calendar.InsertEvent(ctx, googleworkspace.EventInsert{
		Summary:     fmt.Sprintf("Appt: %s (%s)", name, procedure),
		Description: fmt.Sprintf("Booked via AI Agent. Procedure: %s", procedure),
		Start:       start,
		End:         start.Add(appointmentDuration),
		Timezone:    s.cfg.Clinic.Timezone,
	})
	if err != nil {
		logrus.WithError(err).Error("booking: calendar insert failed")
		return fmt.Sprintf("Failed to book calendar event: %s", err)
	}

	logrus.WithField("event_link", link).Info("booking: appointment created")

	return fmt.Sprintf("Success! Appointment booked for %s at %s.", day, timeArg)
}

// parseStartTime accepts a bare HH:MM combined with the day, or a full ISO
// timestamp. Timestamps without a zone are placed in the clinic's timezone.
func (s *Service) parseStartTime(day, timeArg string) (time.Time, error) {
	value := timeArg
	if !strings.Contains(timeArg, "T") && strings.Contains(timeArg, ":") {
		value = day + "T" + timeArg
	}

	if start, err := time.Parse(time.RFC3339, value); err == nil {
		return start, nil
	}

	layouts := []string{"2006-01-02T15:04:05", "2006-01-02T15:04"}
	for _, layout := range layouts {
		if start, err := time.ParseInLocation(layout, value, s.location); err == nil {
			return start, nil
		}
	}

	return time.Time{}, fmt.Errorf("could not parse appointment time %q", value)
}

func (s *Service) sendWhatsAppDetails(ctx context.Context, args map[string]string) string {
	phone := args["phone_number"]
	if phone == "" {
		return "Error: No phone number provided."
	}

	procedure := firstNonEmpty(args["procedure_type"], "services")

	if !s.sender.Configured() {
		return "WhatsApp skipped (credentials missing)."
	}

	text := fmt.Sprintf("Hello! Here are the details about %s at %s...", procedure, s.cfg.Clinic.Name)
	if err := s.sender.SendText(ctx, phone, text); err != nil {
		logrus.WithError(err).Error("booking: whatsapp details send failed")
		return fmt.Sprintf("Failed to send WhatsApp: %s", err)
	}

	return "WhatsApp sent successfully."
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
