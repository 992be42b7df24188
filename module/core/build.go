package core

import (
	"context"
	"database/sql"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	handler "github.com/samartharora25/SafeRove-Final/module/core/internal/handler/http"
	"github.com/samartharora25/SafeRove-Final/module/core/internal/handler/subscriber"
	"github.com/samartharora25/SafeRove-Final/module/core/internal/repository/artifact"
	"github.com/samartharora25/SafeRove-Final/module/core/internal/repository/database/postgres"
	"github.com/samartharora25/SafeRove-Final/module/core/internal/repository/publisher/rabbitmq"
	"github.com/samartharora25/SafeRove-Final/module/core/service"
)

type Module struct {
	Aggregator *service.Aggregator
	Zones      *service.ZoneService

	assessmentHandler *handler.AssessmentHandler
	geoHandler        *handler.GeoHandler
	predictHandler    *handler.PredictHandler
	emergencyHandler  *handler.EmergencyHandler
	dashboardHandler  *handler.DashboardHandler
	subscriber        *subscriber.TelemetrySubscriber
}

// Build wires the whole module: repositories, the zone index reloaded from
// Postgres, scorers loaded from their artifacts, and the handler surfaces.
// A missing model artifact is not fatal; the scorer serves its documented
// default.
func Build(db *sql.DB, amqpConn *amqp.Connection, mqttClient mqtt.Client, log zerolog.Logger, artifactDir string) (*Module, error) {
	zoneRepo := postgres.NewZoneRepo(db)
	assessRepo := postgres.NewAssessmentRepo(db)
	efirRepo := postgres.NewEFIRRepo(db)

	zones, err := zoneRepo.List(context.Background())
	if err != nil {
		return nil, fmt.Errorf("load risk zones: %w", err)
	}
	zoneIndex := service.NewZoneIndexFrom(zones)
	log.Info().Int("zones", len(zones)).Msg("zone index loaded")

	store, err := artifact.NewFileStore(artifactDir)
	if err != nil {
		return nil, fmt.Errorf("artifact store: %w", err)
	}

	safety := service.NewSafetyScorer(store, log)
	flow := service.NewFlowScorer(store, log)
	incident := service.NewIncidentScorer(store, log)
	for name, loader := range map[string]interface{ Load() error }{
		"safety":   safety,
		"flow":     flow,
		"incident": incident,
	} {
		if err := loader.Load(); err != nil {
			log.Warn().Err(err).Str("scorer", name).Msg("model artifact unavailable, serving default")
		}
	}

	notifier, err := rabbitmq.NewAlertNotifier(amqpConn)
	if err != nil {
		return nil, fmt.Errorf("alert notifier: %w", err)
	}

	emitter := service.NewAlertEmitter(notifier, log)
	aggregator := service.NewAggregator(zoneIndex, safety, flow, incident, emitter, assessRepo, log)
	zoneSvc := service.NewZoneService(zoneIndex, zoneRepo)
	emergency := service.NewEmergencyProcessor(service.NoopTranslator{}, log)
	efirSvc := service.NewEFIRService(efirRepo, log)
	analytics := service.NewAnalyticsService(assessRepo)

	return &Module{
		Aggregator:        aggregator,
		Zones:             zoneSvc,
		assessmentHandler: handler.NewAssessmentHandler(aggregator, safety),
		geoHandler:        handler.NewGeoHandler(zoneSvc, emitter),
		predictHandler:    handler.NewPredictHandler(flow, incident),
		emergencyHandler:  handler.NewEmergencyHandler(emergency, efirSvc, log),
		dashboardHandler:  handler.NewDashboardHandler(analytics, assessRepo),
		subscriber:        subscriber.NewTelemetrySubscriber(mqttClient, aggregator, log),
	}, nil
}

func (m *Module) RegisterRoutes(r *gin.RouterGroup) {
	m.assessmentHandler.Register(r)
	m.geoHandler.Register(r)
	m.predictHandler.Register(r)
	m.emergencyHandler.Register(r)
	m.dashboardHandler.Register(r)
}

func (m *Module) StartSubscribers() error {
	return m.subscriber.Start()
}
