package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hostevents/internal/config"
	"hostevents/internal/daemon"
	"hostevents/internal/events"
	"hostevents/internal/httpapi"
	"hostevents/internal/upstream"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(opts *options) *cobra.Command {
	var addr string
	var queueSize int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the event registry daemon",
		Example: "  hostevents serve --addr :8080\n" +
			"  HOSTEVENTS_QUEUE_SIZE=1024 hostevents serve --config hostevents.yaml",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("queue-size") {
				cfg.QueueSize = queueSize
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			ln, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				return err
			}
			return serve(ctx, ln, cfg, logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "HTTP listen address, e.g. :8080")
	cmd.Flags().IntVar(&queueSize, "queue-size", config.DefaultQueueSize, "Deliveries allowed to wait on the event loop")
	return cmd
}

// serve runs the daemon and its HTTP surface on ln until ctx is canceled.
func serve(ctx context.Context, ln net.Listener, cfg config.Config, logger zerolog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Logger = logger
	httpapi.SetLogger(logger)
	httpapi.SetDefaultRequestLogLevel(requestLogLevel(cfg))
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetStreamBuffer(cfg.StreamBuffer)
	httpapi.SetStreamWriteTimeout(time.Duration(cfg.StreamWriteTimeout) * time.Second)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSOrigins, nil, nil)
	if err := httpapi.SetStreamKinds(cfg.StreamKinds); err != nil {
		return err
	}
	httpapi.SetBaseContext(ctx)

	d := daemon.New(daemon.Config{
		QueueSize:       cfg.QueueSize,
		OnListenerError: listenerErrorHandler,
	})
	loopDone := make(chan error, 1)
	go func() { loopDone <- d.Run(ctx) }()

	srv := &http.Server{
		Handler:           httpapi.NewMux(d),
		ReadHeaderTimeout: 10 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", ln.Addr().String()).Int("queue_size", cfg.QueueSize).Msg("hostevents listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}
	// Cancels open streams and stops the loop.
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if serr := srv.Shutdown(shutdownCtx); serr != nil {
		logger.Warn().Err(serr).Msg("graceful shutdown error")
	}
	if lerr := <-loopDone; lerr != nil && err == nil {
		err = lerr
	}
	logger.Info().Msg("hostevents stopped")
	return err
}

// listenerErrorHandler logs a listener failure and counts it by kind.
// Partially decoded payloads are logged as warnings and not counted.
func listenerErrorHandler(err error) {
	if upstream.IsPartialPayload(err) {
		log.Warn().Err(err).Msg("payload partially decoded")
		return
	}
	kind := ""
	var le *events.ListenerError
	if errors.As(err, &le) {
		kind = le.Kind.String()
	}
	httpapi.IncrementListenerFailure(kind)
	events.LogErrorHandler(err)
}
