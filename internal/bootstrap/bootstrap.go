package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	accountinadapter "ghostwrite/internal/modules/account/adapter/in"
	accountoutadapter "ghostwrite/internal/modules/account/adapter/out"
	accountservice "ghostwrite/internal/modules/account/service"
	accountusecase "ghostwrite/internal/modules/account/usecase"
	activityinadapter "ghostwrite/internal/modules/activity/adapter/in"
	activityoutadapter "ghostwrite/internal/modules/activity/adapter/out"
	activityservice "ghostwrite/internal/modules/activity/service"
	activityusecase "ghostwrite/internal/modules/activity/usecase"
	dashboardinadapter "ghostwrite/internal/modules/dashboard/adapter/in"
	dashboardoutadapter "ghostwrite/internal/modules/dashboard/adapter/out"
	dashboardservice "ghostwrite/internal/modules/dashboard/service"
	dashboardusecase "ghostwrite/internal/modules/dashboard/usecase"
	prefsinadapter "ghostwrite/internal/modules/prefs/adapter/in"
	prefsoutadapter "ghostwrite/internal/modules/prefs/adapter/out"
	prefsin "ghostwrite/internal/modules/prefs/port/in"
	prefsservice "ghostwrite/internal/modules/prefs/service"
	prefsusecase "ghostwrite/internal/modules/prefs/usecase"
	skillsinadapter "ghostwrite/internal/modules/skills/adapter/in"
	skillsoutadapter "ghostwrite/internal/modules/skills/adapter/out"
	skillsservice "ghostwrite/internal/modules/skills/service"
	skillsusecase "ghostwrite/internal/modules/skills/usecase"
	"ghostwrite/internal/platform/clock"
	"ghostwrite/internal/platform/config"
	"ghostwrite/internal/platform/devmode"
	"ghostwrite/internal/platform/gateway"
	"ghostwrite/internal/platform/id"
	uiapp "ghostwrite/internal/ui/app"
)

type App struct {
	AccountCLI   accountinadapter.CLIHandler
	ActivityCLI  activityinadapter.CLIHandler
	SkillsCLI    skillsinadapter.CLIHandler
	DashboardCLI dashboardinadapter.CLIHandler
	PrefsCLI     prefsinadapter.CLIHandler

	prefs prefsin.Usecase
}

// New wires the whole client. The session manager is initialized from
// the durable store here, before any surface renders, so auth state is
// settled by the time a command or the TUI looks at it.
func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}

	sessionStore, err := accountoutadapter.NewSQLiteSessionStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new session store: %w", err)
	}
	prefStore, err := prefsoutadapter.NewSQLitePrefStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new preference store: %w", err)
	}

	// The offline fallback needs both the dev build tag and the config
	// flag; release builds compile the capability out entirely.
	fallback := devmode.Enabled && cfg.OfflineFallback

	var accountUC *accountusecase.Interactor
	gw := gateway.New(cfg.APIBaseURL, cfg.RequestTimeout, sessionStore, func(ctx context.Context) {
		_ = sessionStore.Clear(ctx)
		if accountUC != nil {
			accountUC.HandleUnauthorized(ctx)
		}
	})

	accountUC = accountusecase.NewInteractor(
		accountservice.NewAccountService(sessionStore),
		accountoutadapter.NewAPIClient(gw, clk, ids, fallback),
	)
	if err := accountUC.Init(context.Background()); err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}

	activityUC := activityusecase.NewInteractor(
		activityservice.NewActivityService(activityoutadapter.NewAPIClient(gw, fallback)),
	)
	skillsUC := skillsusecase.NewInteractor(
		skillsservice.NewSkillsService(skillsoutadapter.NewAPIClient(gw, fallback)),
	)
	dashboardUC := dashboardusecase.NewInteractor(
		dashboardservice.NewDashboardService(clk, dashboardoutadapter.NewAPIClient(gw, fallback)),
		activityUC,
		skillsUC,
	)
	prefsUC := prefsusecase.NewInteractor(prefsservice.NewPrefsService(prefStore))

	return &App{
		AccountCLI:   accountinadapter.NewCLIHandler(accountUC),
		ActivityCLI:  activityinadapter.NewCLIHandler(activityUC),
		SkillsCLI:    skillsinadapter.NewCLIHandler(skillsUC),
		DashboardCLI: dashboardinadapter.NewCLIHandler(dashboardUC),
		PrefsCLI:     prefsinadapter.NewCLIHandler(prefsUC),
		prefs:        prefsUC,
	}, nil
}

// RunTUI starts the terminal UI on the wired app.
func RunTUI(app *App) error {
	model := uiapp.New(app.AccountCLI, app.DashboardCLI, app.prefs)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
