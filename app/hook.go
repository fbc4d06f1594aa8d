package app

import (
	"context"
	"errors"
	"net/http"
)

// Shutdown stops the HTTP listeners, then the modules, then closes the
// database. ctx bounds the whole sequence.
func (app *App) Shutdown(ctx context.Context) error {
	app.logger.InfoContext(ctx, "Shutting down application")

	var errs []error
	for _, srv := range []*http.Server{app.server, app.metricsServer} {
		if srv == nil {
			continue
		}
		if err := srv.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	for _, m := range app.runners() {
		if err := m.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if app.runCancel != nil {
		app.runCancel()
	}

	done := make(chan struct{})
	go func() {
		app.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		errs = append(errs, ctx.Err())
	}

	if err := app.Modules.AuthModule.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := app.db.Close(); err != nil {
		errs = append(errs, err)
	}

	app.logger.Info("Application shut down")
	return errors.Join(errs...)
}
