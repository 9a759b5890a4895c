package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/novasync/clinic-api/internal/api/handler"
	"github.com/novasync/clinic-api/internal/api/handler/router"
	"github.com/novasync/clinic-api/internal/config"
	"github.com/novasync/clinic-api/internal/usecases/agenda"
	"github.com/novasync/clinic-api/internal/usecases/booking"
	"github.com/novasync/clinic-api/internal/usecases/calling"
	"github.com/novasync/clinic-api/internal/usecases/inboxing"
	"github.com/novasync/clinic-api/internal/usecases/insighting"
	"github.com/novasync/clinic-api/internal/usecases/leads"
	"github.com/novasync/clinic-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	callService calling.Caller,
	dispatcher booking.ToolDispatcher,
	leadService leads.LeadLister,
	agendaService agenda.AppointmentLister,
	insightService insighting.CampaignInsighter,
	store *inboxing.Store,
	whatsAppSender handler.WhatsAppSender,
	instagramSender handler.InstagramSender,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.VoiceCalls(callService)...),
		router.WithRoutes(handler.VoiceWebhook(dispatcher)...),
		router.WithRoutes(handler.Leads(leadService)...),
		router.WithRoutes(handler.Appointments(agendaService)...),
		router.WithRoutes(handler.WhatsApp(cfg, store, whatsAppSender)...),
		router.WithRoutes(handler.Instagram(cfg, store, instagramSender)...),
		router.WithRoutes(handler.Messages(store)...),
		router.WithRoutes(handler.Campaigns(insightService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("error while running the server")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped cleanly")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
