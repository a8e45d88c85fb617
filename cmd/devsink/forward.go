package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/phuslu/log"

	"github.com/seralba/devsink/internal/config"
	"github.com/seralba/devsink/internal/model"
	"github.com/seralba/devsink/internal/output"
	"github.com/seralba/devsink/internal/output/async"
	"github.com/seralba/devsink/internal/output/multi"
	"github.com/seralba/devsink/internal/output/syslogout"
	"github.com/seralba/devsink/internal/pipeline"
	"github.com/seralba/devsink/internal/server"
	"github.com/seralba/devsink/internal/syslog"

	// Register sink implementations.
	_ "github.com/seralba/devsink/internal/output/cmtrace"
	_ "github.com/seralba/devsink/internal/output/eventlog"
	_ "github.com/seralba/devsink/internal/output/simple"
	_ "github.com/seralba/devsink/internal/output/stdout"
)

// runForward streams stdin lines to the configured sinks until EOF or a
// shutdown signal. An admin endpoint exposes liveness and metrics while the
// stream runs.
func runForward(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("forward", flag.ExitOnError)
	topologyPath := fs.String("topology", cfg.Forward.Topology, "YAML sink layout (default: single syslog sink from env)")
	component := fs.String("component", cfg.Forward.Component, "component name stamped into messages")
	listen := fs.String("listen", cfg.Server.ListenAddress, "admin endpoint address ('' disables)")
	fs.Parse(args)

	out, err := buildSinks(cfg, *topologyPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		cancel()
	}()

	if *listen != "" {
		go func() {
			if err := server.Run(ctx, *listen, server.New(cfg.Server.MetricsPath)); err != nil {
				log.Error().Err(err).Msg("admin endpoint failed")
			}
		}()
	}

	runID := uuid.NewString()
	log.Info().Str("run_id", runID).Str("component", *component).Msg("forwarding stdin")

	p := pipeline.New(out, *component, cfg.Syslog.ClientName, model.FacilityUser)
	defer p.Close()

	if err := p.Run(ctx, os.Stdin); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// buildSinks assembles the output chain: the declared topology, or a single
// syslog sink from the environment defaults when no topology file is given.
func buildSinks(cfg *config.Config, topologyPath string) (output.Output, error) {
	if topologyPath == "" {
		var opts []syslog.Option
		if cfg.Syslog.Protocol == "tcp" {
			f, err := syslog.ParseFraming(cfg.Syslog.Framing)
			if err != nil {
				return nil, err
			}
			opts = append(opts, syslog.WithTCP(f))
		}
		opts = append(opts, syslog.WithMaxLen(cfg.Syslog.MaxLen))
		t := syslog.NewTransport(cfg.Syslog.Target, cfg.Syslog.Port, opts...)
		var oopts []syslogout.Option
		if cfg.Syslog.PassThrough {
			oopts = append(oopts, syslogout.WithPassThrough())
		}
		return syslogout.New(t, oopts...), nil
	}

	topo, err := config.LoadTopology(topologyPath)
	if err != nil {
		return nil, err
	}
	sinks := make([]output.Output, 0, len(topo.Sinks))
	for _, def := range topo.Sinks {
		sink, err := output.Build(output.SinkConfig{Type: def.Type, Settings: def.Settings})
		if err != nil {
			return nil, err
		}
		if def.Async {
			sink = async.New(sink)
		}
		sinks = append(sinks, sink)
	}
	if len(sinks) == 1 {
		return sinks[0], nil
	}
	return multi.New(sinks...), nil
}
