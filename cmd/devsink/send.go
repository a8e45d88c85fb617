package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/phuslu/log"

	"github.com/seralba/devsink/internal/config"
	"github.com/seralba/devsink/internal/model"
	"github.com/seralba/devsink/internal/syslog"
)

// runSend builds one syslog message and delivers it. One attempt, one
// connection; the exit code reflects the delivery unless pass-through is on.
func runSend(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	target := fs.String("target", cfg.Syslog.Target, "collector host")
	port := fs.Int("port", cfg.Syslog.Port, "collector port")
	protocol := fs.String("protocol", cfg.Syslog.Protocol, "udp or tcp")
	framing := fs.String("framing", cfg.Syslog.Framing, "tcp framing: octet-counting or non-transparent-framing")
	maxLen := fs.Int("max-len", cfg.Syslog.MaxLen, "encoded message size cap in bytes (0 = unlimited)")
	clientName := fs.String("client-name", cfg.Syslog.ClientName, "hostname stamped into the message (default: local host name)")
	severity := fs.String("severity", "info", "message severity name")
	facility := fs.String("facility", "user", "message facility name")
	passThrough := fs.Bool("pass-through", cfg.Syslog.PassThrough, "report delivery failure without failing the command")
	fs.Parse(args)

	body := strings.Join(fs.Args(), " ")
	if body == "" {
		return fmt.Errorf("send: no message given")
	}

	sev, err := model.ParseSeverity(*severity)
	if err != nil {
		return fmt.Errorf("send: %w", err)
	}
	fac, err := model.ParseFacility(*facility)
	if err != nil {
		return fmt.Errorf("send: %w", err)
	}

	opts := []syslog.Option{syslog.WithMaxLen(*maxLen)}
	if *protocol == "tcp" {
		f, err := syslog.ParseFraming(*framing)
		if err != nil {
			return fmt.Errorf("send: %w", err)
		}
		opts = append(opts, syslog.WithTCP(f))
	}
	t := syslog.NewTransport(*target, *port, opts...)

	msg := syslog.Build(model.Message{
		Timestamp: time.Now(),
		Hostname:  *clientName,
		Severity:  sev,
		Facility:  fac,
		Body:      body,
	})

	if err := t.Send(context.Background(), msg); err != nil {
		if *passThrough {
			log.Warn().Err(err).Str("target", t.Addr()).Msg("delivery failed, passing through")
			fmt.Println(body)
			return nil
		}
		return err
	}
	log.Debug().Str("target", t.Addr()).Int("priority", msg.Priority).Msg("message delivered")
	return nil
}
