// Command leaudio-sim runs the LE Audio orchestrator against a simulated
// network of peers.
//
// The simulator wires the orchestrator to in-process stand-ins for the link
// layer, the stream protocol, the isochronous channels and the platform
// audio subsystem, so whole flows can be driven from the command line.
//
// Usage:
//
//	leaudio-sim [flags]
//
// Flags:
//
//	-config string       Configuration file path (YAML)
//	-log-level string    Log level: debug, info, warn, error
//	-metrics string      Serve Prometheus metrics on this address, e.g. ":9090"
//	-trace string        Write the CBOR session trace to this file
//	-interactive         Run the interactive shell (default true)
//	-autoconnect         Connect every configured peer at startup
//
// Examples:
//
//	# Two earbuds, debug logging, interactive shell
//	leaudio-sim -log-level debug
//
//	# Peers from a file, metrics on :9090
//	leaudio-sim -config peers.yaml -metrics :9090
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/leaudio/leaudio-go/cmd/leaudio-sim/interactive"
	"github.com/leaudio/leaudio-go/internal/config"
	"github.com/leaudio/leaudio-go/internal/sim"
	tracelog "github.com/leaudio/leaudio-go/pkg/log"
	"github.com/leaudio/leaudio-go/pkg/metrics"
	"github.com/leaudio/leaudio-go/pkg/model"
	"github.com/leaudio/leaudio-go/pkg/service"
)

type flags struct {
	ConfigFile  string
	LogLevel    string
	Metrics     string
	Trace       string
	Interactive bool
	AutoConnect bool
}

var opts flags

func init() {
	flag.StringVar(&opts.ConfigFile, "config", "", "Configuration file path")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides the file)")
	flag.StringVar(&opts.Metrics, "metrics", "", "Serve Prometheus metrics on this address")
	flag.StringVar(&opts.Trace, "trace", "", "Write the CBOR session trace to this file")
	flag.BoolVar(&opts.Interactive, "interactive", true, "Run the interactive shell")
	flag.BoolVar(&opts.AutoConnect, "autoconnect", false, "Connect every configured peer at startup")
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "leaudio-sim: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var shell *interactive.Shell
	var out io.Writer = os.Stderr
	if opts.Interactive {
		if shell, err = interactive.New(); err != nil {
			return err
		}
		defer shell.Close()
		// Log lines go through readline so they do not garble the prompt.
		out = shell.Stdout()
	}
	logger := setupLogging(out, cfg.LogLevel)

	peers, err := cfg.PeerConfigs()
	if err != nil {
		return err
	}
	network := sim.NewNetwork(logger)
	for _, p := range peers {
		network.AddPeer(p)
	}
	hal := sim.NewAudioHAL(logger)

	svcCfg := cfg.ServiceConfig()
	svcCfg.Logger = logger

	trace, closeTrace, err := setupTrace(cfg.TraceFile, logger)
	if err != nil {
		return err
	}
	defer closeTrace()
	svcCfg.Trace = trace

	reg := prometheus.NewRegistry()
	svcCfg.Metrics = metrics.NewMetrics(reg)

	orch, err := service.New(svcCfg, service.Collaborators{
		Stream:    network,
		Iso:       network,
		Audio:     hal,
		Link:      network,
		Sets:      network,
		Codecs:    sim.Codec{},
		Callbacks: &printer{logger: logger},
	})
	if err != nil {
		return fmt.Errorf("create orchestrator: %w", err)
	}
	network.Bind(orch)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := orch.Start(ctx); err != nil {
		return fmt.Errorf("start orchestrator: %w", err)
	}
	defer orch.Stop()
	logger.Info("orchestrator started", "session", orch.SessionID(), "peers", len(peers))

	if cfg.MetricsAddress != "" {
		srv := serveMetrics(cfg.MetricsAddress, reg, logger)
		defer func() {
			shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
			defer done()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	if opts.AutoConnect {
		for _, p := range peers {
			if err := orch.Connect(p.Address); err != nil {
				logger.Warn("autoconnect failed", "addr", p.Address, "error", err)
			}
		}
	}

	if shell != nil {
		go shell.Run(ctx, cancel, interactive.Deps{
			Orchestrator: orch,
			Network:      network,
			Audio:        hal,
		})
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received signal", "signal", sig)
	case <-ctx.Done():
		// Quit from the shell.
	}

	logger.Info("shutting down")
	return nil
}

// loadConfig reads the file if one was given and applies the flag overrides.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigFile); err != nil {
			return config.Config{}, err
		}
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.Metrics != "" {
		cfg.MetricsAddress = opts.Metrics
	}
	if opts.Trace != "" {
		cfg.TraceFile = opts.Trace
	}
	return cfg, nil
}

func setupLogging(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	}))
}

// setupTrace returns the trace sink: debug-level log lines, plus the CBOR
// file when path is set.
func setupTrace(path string, logger *slog.Logger) (tracelog.Logger, func(), error) {
	adapter := tracelog.NewSlogAdapter(logger)
	if path == "" {
		return adapter, func() {}, nil
	}
	file, err := tracelog.NewFileLogger(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open trace: %w", err)
	}
	closeFn := func() {
		written, failed := file.Stats()
		logger.Info("trace closed", "file", path, "written", written, "failed", failed)
		_ = file.Close()
	}
	return tracelog.NewMultiLogger(adapter, file), closeFn, nil
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()
	logger.Info("serving metrics", "addr", addr)
	return srv
}

// printer reports orchestrator results on the log.
type printer struct {
	logger *slog.Logger
}

func (p *printer) OnConnectionState(state service.ConnectionState, addr model.Address) {
	p.logger.Info("[EVENT] connection", "addr", addr, "state", state)
}

func (p *printer) OnGroupStatus(groupID int, status service.GroupStatus) {
	p.logger.Info("[EVENT] group", "group", groupID, "status", status)
}

func (p *printer) OnGroupNodeStatus(addr model.Address, groupID int, status service.GroupNodeStatus) {
	p.logger.Info("[EVENT] group node", "addr", addr, "group", groupID, "status", status)
}

func (p *printer) OnAudioConf(conf service.AudioConf) {
	p.logger.Info("[EVENT] audio configuration", "group", conf.GroupID,
		"directions", conf.Directions, "sink", fmt.Sprintf("0x%08x", uint32(conf.SinkLocations)),
		"source", fmt.Sprintf("0x%08x", uint32(conf.SourceLocations)), "contexts", conf.Contexts)
}
