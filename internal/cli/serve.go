package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridplot/pkg/cache"
	"github.com/matzehuels/gridplot/pkg/pipeline"
	"github.com/matzehuels/gridplot/pkg/server"
	"github.com/matzehuels/gridplot/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string // listen address
	redis    string // redis address for the shared cache; empty = file cache
	redisDB  int    // redis database index
	mongoURI string // mongodb uri for figure persistence; empty = in memory
	mongoDB  string // mongodb database name
	noCache  bool   // disable render caching entirely
}

// serveCommand creates the serve command running the HTTP render service.
//
// With no backend flags the service runs self-contained: file-backed
// render cache, in-memory figure store. --redis and --mongo switch both
// to shared backends so multiple replicas agree on cache entries and
// stored figures.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:    ":8080",
		mongoDB: appName,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "redis address for a shared render cache (host:port)")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "redis database index")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo", "", "mongodb uri for figure persistence")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", opts.mongoDB, "mongodb database name")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable render caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	renderCache, err := c.serveCache(ctx, opts)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(renderCache, nil, logger)
	defer runner.Close()

	figureStore, err := c.serveStore(ctx, opts)
	if err != nil {
		return err
	}
	defer figureStore.Close(context.Background())

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           server.New(runner, figureStore, logger).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("render service listening", "addr", opts.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

// serveCache picks the render cache backend from the flags.
func (c *CLI) serveCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redis != "" {
		return cache.NewRedisCache(ctx, opts.redis, "", opts.redisDB)
	}
	return newCache(false)
}

// serveStore picks the figure store backend from the flags.
func (c *CLI) serveStore(ctx context.Context, opts *serveOpts) (store.Store, error) {
	if opts.mongoURI != "" {
		return store.NewMongoStore(ctx, opts.mongoURI, opts.mongoDB)
	}
	return store.NewMemoryStore(), nil
}
