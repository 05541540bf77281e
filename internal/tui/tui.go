// Package tui implements the terminal dashboard of the SecureCode client:
// the sign-in flow and the sync status dashboard.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
	"github.com/memehoueibib/securecode-platform-sub001/internal/service"
	"github.com/memehoueibib/securecode-platform-sub001/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	tracker   SyncTracker
	buildInfo BuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, tracker SyncTracker, buildInfo BuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || tracker == nil {
		return nil, errors.New("tui: services and tracker are required")
	}
	return &TUI{services: services, tracker: tracker, buildInfo: buildInfo, logger: logger}, nil
}

// LoginFlow runs the sign-in and registration screens until a session is
// started. Returns ErrUserQuit when the user leaves instead.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.Session{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser || result.session == nil {
		return models.Session{}, ErrUserQuit
	}

	return *result.session, nil
}

// Dashboard shows the sync status of session until the user quits or logs
// out.
func (t *TUI) Dashboard(ctx context.Context, session models.Session) (logout bool, err error) {
	updates := t.tracker.Subscribe()
	defer t.tracker.Unsubscribe(updates)

	model := newDashboardModel(ctx, t.services, t.tracker, session, updates)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(dashboardModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
