package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/odvcencio/textmode/pkg/config"
	"github.com/odvcencio/textmode/pkg/errors"
	"github.com/odvcencio/textmode/pkg/logging"
	"github.com/odvcencio/textmode/pkg/telemetry"
)

// session holds what every interactive command needs: config, logger,
// metrics and tracing, plus their shutdown hooks.
type session struct {
	cfg        *config.Config
	configPath string
	logger     *logging.Logger
	metrics    *telemetry.Metrics
	closers    []func(context.Context) error
}

// loadConfig reads path when set, else the default locations.
func loadConfig(path string) (*config.Config, string, error) {
	if path != "" {
		cfg, err := config.LoadFromPath(path)
		return cfg, path, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, "", err
	}
	for _, p := range []string{config.ProjectConfigPath(), config.UserConfigPath()} {
		if p == "" {
			continue
		}
		if _, statErr := os.Stat(p); statErr == nil {
			return cfg, p, nil
		}
	}
	return cfg, "", nil
}

func openSession(configPath, component string) (*session, error) {
	cfg, path, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, configPath: path, logger: logging.Discard()}

	var traceOut io.Writer = io.Discard
	if file := cfg.LogFile(); file != "" {
		logger, f, err := logging.OpenFile(file, cfg.LogLevel(), component)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "open logging.file")
		}
		s.logger = logger
		traceOut = f
		s.closers = append(s.closers, func(context.Context) error { return f.Close() })
	}

	if cfg.Tracing.Enabled {
		tp, err := telemetry.NewTracerProvider(traceOut, "textmode", version)
		if err != nil {
			s.Close()
			return nil, errors.Wrap(err, errors.ErrCodeInternal, "start tracing")
		}
		// Shut tracing down before the log file it writes to.
		s.closers = append([]func(context.Context) error{tp.Shutdown}, s.closers...)
	}

	s.metrics = telemetry.NewMetrics()
	if cfg.Metrics.Enabled {
		if err := s.serveMetrics(cfg.Metrics.Addr); err != nil {
			s.Close()
			return nil, err
		}
	}
	return s, nil
}

func (s *session) serveMetrics(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "listen for metrics").WithContext("addr", addr)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", s.metrics.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error("metrics server", "error", err.Error())
		}
	}()
	s.logger.Info("serving metrics", "addr", ln.Addr().String())
	s.closers = append([]func(context.Context) error{srv.Shutdown}, s.closers...)
	return nil
}

// Close runs the shutdown hooks in order with a short deadline.
func (s *session) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for _, c := range s.closers {
		_ = c(ctx)
	}
	s.closers = nil
}
