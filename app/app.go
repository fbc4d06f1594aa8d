package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/Black-And-White-Club/budtender-trivia/app/modules/auth"
	"github.com/Black-And-White-Club/budtender-trivia/app/modules/invite"
	"github.com/Black-And-White-Club/budtender-trivia/app/modules/leaderboard"
	"github.com/Black-And-White-Club/budtender-trivia/app/modules/mastery"
	"github.com/Black-And-White-Club/budtender-trivia/app/modules/question"
	"github.com/Black-And-White-Club/budtender-trivia/app/modules/score"
	"github.com/Black-And-White-Club/budtender-trivia/app/modules/user"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability"
	"github.com/Black-And-White-Club/budtender-trivia/config"
	"github.com/Black-And-White-Club/budtender-trivia/db/bundb"
	"github.com/go-chi/chi/v5"
)

// runner is a module with a background loop.
type runner interface {
	Run(ctx context.Context, wg *sync.WaitGroup)
	Close() error
}

// Modules holds every application module.
type Modules struct {
	AuthModule        *auth.Module
	UserModule        *user.Module
	InviteModule      *invite.Module
	QuestionModule    *question.Module
	ScoreModule       *score.Module
	MasteryModule     *mastery.Module
	LeaderboardModule *leaderboard.Module
}

// App wires configuration, storage, modules and the HTTP servers.
type App struct {
	Config        *config.Config
	Observability observability.Observability
	Modules       Modules
	Router        chi.Router

	db            *bundb.DBService
	logger        *slog.Logger
	server        *http.Server
	metricsServer *http.Server
	wg            sync.WaitGroup
	runCancel     context.CancelFunc
}

// NewApp connects to the database and builds every module.
func NewApp(ctx context.Context, cfg *config.Config, obs observability.Observability) (*App, error) {
	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database service: %w", err)
	}

	app, err := NewAppWithDB(ctx, cfg, obs, dbService)
	if err != nil {
		_ = dbService.Close()
		return nil, err
	}
	return app, nil
}

// NewAppWithDB builds every module on an existing database service.
func NewAppWithDB(ctx context.Context, cfg *config.Config, obs observability.Observability, dbService *bundb.DBService) (*App, error) {
	app := &App{
		Config:        cfg,
		Observability: obs,
		db:            dbService,
		logger:        obs.Logger,
	}
	app.Router = app.newRouter()

	if err := app.initializeModules(ctx); err != nil {
		return nil, err
	}
	return app, nil
}

func (app *App) initializeModules(ctx context.Context) error {
	db := app.db.GetDB()
	obs := app.Observability
	r := app.Router

	authModule, err := auth.NewModule(ctx, app.Config, obs, app.db.UserDB, app.db.InviteDB, r, db)
	if err != nil {
		return fmt.Errorf("failed to initialize auth module: %w", err)
	}
	guard := authModule.Guard()

	userModule, err := user.NewModule(ctx, obs, app.db.UserDB, r, guard, db)
	if err != nil {
		return fmt.Errorf("failed to initialize user module: %w", err)
	}

	inviteModule, err := invite.NewModule(ctx, obs, app.db.InviteDB, r, guard, db)
	if err != nil {
		return fmt.Errorf("failed to initialize invite module: %w", err)
	}

	questionModule, err := question.NewModule(ctx, app.Config, obs, app.db.QuestionDB, r, guard, db)
	if err != nil {
		return fmt.Errorf("failed to initialize question module: %w", err)
	}

	scoreModule, err := score.NewModule(ctx, obs, app.db.ScoreDB, r, guard, db)
	if err != nil {
		return fmt.Errorf("failed to initialize score module: %w", err)
	}

	masteryModule, err := mastery.NewModule(ctx, obs, app.db.MasteryDB, r, guard, db)
	if err != nil {
		return fmt.Errorf("failed to initialize mastery module: %w", err)
	}

	leaderboardModule, err := leaderboard.NewModule(ctx, obs, app.db.LeaderboardDB, r, db)
	if err != nil {
		return fmt.Errorf("failed to initialize leaderboard module: %w", err)
	}

	app.Modules = Modules{
		AuthModule:        authModule,
		UserModule:        userModule,
		InviteModule:      inviteModule,
		QuestionModule:    questionModule,
		ScoreModule:       scoreModule,
		MasteryModule:     masteryModule,
		LeaderboardModule: leaderboardModule,
	}
	return nil
}

// DB returns the database service.
func (app *App) DB() *bundb.DBService {
	return app.db
}

func (app *App) runners() []runner {
	return []runner{
		app.Modules.QuestionModule,
		app.Modules.ScoreModule,
		app.Modules.MasteryModule,
		app.Modules.LeaderboardModule,
	}
}
