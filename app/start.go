package app

import (
	"context"
	"errors"
	"net/http"
	"time"
)

const readHeaderTimeout = 10 * time.Second

// Start launches the module loops and the HTTP listeners. It returns once
// they are running; listener failures are sent on the returned channel.
func (app *App) Start(ctx context.Context) <-chan error {
	errs := make(chan error, 2)

	runCtx, cancel := context.WithCancel(ctx)
	app.runCancel = cancel
	for _, m := range app.runners() {
		app.wg.Add(1)
		go m.Run(runCtx, &app.wg)
	}

	app.server = &http.Server{
		Addr:              app.Config.HTTP.Address,
		Handler:           app.Router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	go app.listen(ctx, app.server, "api", errs)

	if addr := app.Config.Observability.MetricsAddress; addr != "" {
		app.metricsServer = &http.Server{
			Addr:              addr,
			Handler:           app.metricsHandler(),
			ReadHeaderTimeout: readHeaderTimeout,
		}
		go app.listen(ctx, app.metricsServer, "metrics", errs)
	}

	return errs
}

func (app *App) listen(ctx context.Context, srv *http.Server, name string, errs chan<- error) {
	app.logger.InfoContext(ctx, "Starting HTTP server", "server", name, "address", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errs <- err
	}
}
