package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/novasync/clinic-api/infrastructure/integrator/googleworkspace"
	"github.com/novasync/clinic-api/infrastructure/integrator/messaging/instagramclient"
	"github.com/novasync/clinic-api/infrastructure/integrator/messaging/whatsappclient"
	"github.com/novasync/clinic-api/infrastructure/integrator/meta/metaclient"
	"github.com/novasync/clinic-api/infrastructure/integrator/vapi/vapiclient"
	"github.com/novasync/clinic-api/internal/api"
	"github.com/novasync/clinic-api/internal/config"
	"github.com/novasync/clinic-api/internal/usecases/agenda"
	"github.com/novasync/clinic-api/internal/usecases/booking"
	"github.com/novasync/clinic-api/internal/usecases/calling"
	"github.com/novasync/clinic-api/internal/usecases/inboxing"
	"github.com/novasync/clinic-api/internal/usecases/insighting"
	"github.com/novasync/clinic-api/internal/usecases/leads"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sheetsClient, err := googleworkspace.NewSheetsClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create google sheets client")
	}

	calendarClient, err := googleworkspace.NewCalendarClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create google calendar client")
	}

	logrus.WithFields(logrus.Fields{
		"sheet_id":    cfg.Google.SheetID,
		"calendar_id": cfg.Google.CalendarID,
	}).Info("google workspace clients ready")

	vapiClient := vapiclient.NewClient(cfg)
	metaClient := metaclient.NewClient(cfg)
	whatsAppClient := whatsappclient.NewClient(cfg)
	instagramClient := instagramclient.NewClient(cfg)

	store := inboxing.NewSeededStore()

	callService := calling.NewService(cfg, vapiClient)
	dispatcher := booking.NewService(cfg, calendarClient, whatsAppClient)
	leadService := leads.NewService(sheetsClient)
	agendaService := agenda.NewService(calendarClient)
	insightService := insighting.NewService(cfg, metaClient)

	server, err := api.New(
		cfg,
		callService,
		dispatcher,
		leadService,
		agendaService,
		insightService,
		store,
		whatsAppClient,
		instagramClient,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
