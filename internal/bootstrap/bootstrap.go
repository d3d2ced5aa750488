package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	footprintinadapter "carbontrack/internal/modules/footprint/adapter/in"
	footprintoutadapter "carbontrack/internal/modules/footprint/adapter/out"
	footprintservice "carbontrack/internal/modules/footprint/service"
	footprintusecase "carbontrack/internal/modules/footprint/usecase"
	sessioninadapter "carbontrack/internal/modules/session/adapter/in"
	sessionoutadapter "carbontrack/internal/modules/session/adapter/out"
	sessionservice "carbontrack/internal/modules/session/service"
	sessionusecase "carbontrack/internal/modules/session/usecase"
	surveyinadapter "carbontrack/internal/modules/survey/adapter/in"
	surveyoutadapter "carbontrack/internal/modules/survey/adapter/out"
	surveyservice "carbontrack/internal/modules/survey/service"
	surveyusecase "carbontrack/internal/modules/survey/usecase"
	"carbontrack/internal/platform/clock"
	"carbontrack/internal/platform/config"
	"carbontrack/internal/platform/id"
	"carbontrack/internal/platform/logging"
	uiapp "carbontrack/internal/ui/app"
)

type App struct {
	Config       config.Config
	Logger       *zap.Logger
	FootprintCLI footprintinadapter.CLIHandler
	SurveyCLI    surveyinadapter.CLIHandler
	SessionCLI   sessioninadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	logger, err := logging.New(cfg)
	if err != nil {
		return nil, err
	}
	return NewWithLogger(cfg, clock.SystemClock{}, logger)
}

// NewWithLogger wires the application around an existing logger and clock.
func NewWithLogger(cfg config.Config, clk clock.Clock, logger *zap.Logger) (*App, error) {
	fixtures, err := footprintoutadapter.NewYAMLFixtureSource(cfg.FixturesPath)
	if err != nil {
		return nil, fmt.Errorf("new fixture source: %w", err)
	}
	footprintUC := footprintusecase.NewInteractor(footprintservice.NewFootprintService(
		fixtures,
		footprintoutadapter.NewRandomHistorySource(clk, cfg.HistorySeed),
		footprintoutadapter.NewMarkdownReportRenderer(),
		footprintoutadapter.NewGlamourStyler(""),
		logger.Named("footprint"),
	), cfg.TargetFootprint)

	surveyUC := surveyusecase.NewInteractor(surveyservice.NewSurveyService(
		surveyoutadapter.NewYAMLCatalogSource(cfg.CatalogPath),
		logger.Named("survey"),
	))

	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk, id.UUID{}, sessionoutadapter.NewSurveyCatalogAdapter(surveyUC), logger.Named("session")),
		sessionoutadapter.NewMemorySessionStore(),
		footprintUC,
		sessionoutadapter.NewZapEventSink(logger),
	)

	return &App{
		Config:       cfg,
		Logger:       logger,
		FootprintCLI: footprintinadapter.NewCLIHandler(footprintUC),
		SurveyCLI:    surveyinadapter.NewCLIHandler(surveyUC),
		SessionCLI:   sessioninadapter.NewCLIHandler(sessionUC),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.SessionCLI, app.Config.TargetFootprint)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
