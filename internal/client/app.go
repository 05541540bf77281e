package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
	"github.com/memehoueibib/securecode-platform-sub001/internal/service"
	"github.com/memehoueibib/securecode-platform-sub001/internal/tui"
	"github.com/memehoueibib/securecode-platform-sub001/internal/workers"
	"golang.org/x/sync/errgroup"
)

type App struct {
	services *service.ClientServices
	ui       UI
	tracker  Tracker
	workers  *workers.Workers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, tracker Tracker, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil || tracker == nil {
		return nil, errors.New("client: services, ui and tracker are required")
	}

	return &App{
		services: services,
		ui:       ui,
		tracker:  tracker,
		workers:  workers.NewWorkers(tracker),
		logger:   logger,
	}, nil
}

func (a *App) Run() error {
	return a.run(context.Background())
}

// run keeps the tracker running for the whole process while the UI loop
// signs users in and out. The tracker is closed once the UI loop ends.
func (a *App) run(parent context.Context) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.workers.Run(ctx)
	})
	g.Go(func() error {
		defer cancel()
		return a.loop(ctx)
	})

	err := g.Wait()
	a.tracker.Close()
	a.tracker.Wait()

	return err
}

func (a *App) loop(ctx context.Context) error {
	for {
		session, err := a.services.AuthService.RestoreSession(ctx)
		if err != nil {
			if !errors.Is(err, service.ErrNoSession) {
				return fmt.Errorf("restore session: %w", err)
			}

			session, err = a.ui.LoginFlow(ctx)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("login flow: %w", err)
			}
		}

		a.logger.Info().Str("user_id", session.UserID).Str("role", string(session.Role)).Msg("session started")

		logout, err := a.ui.Dashboard(ctx, session)
		if err != nil {
			return fmt.Errorf("dashboard: %w", err)
		}
		if !logout {
			return nil
		}

		a.logger.Info().Str("user_id", session.UserID).Msg("logged out")
	}
}
