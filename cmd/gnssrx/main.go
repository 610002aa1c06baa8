package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"gnssrx/internal/config"
	"gnssrx/internal/pps"
	"gnssrx/internal/reader"
	"gnssrx/internal/serial"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "./gnssrx.yaml", "Path to YAML config")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	lvl, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatalf("bad log level %q: %v", cfg.Log.Level, err)
	}
	log.SetLevel(lvl)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	src, name, err := openSource(cfg.Source)
	if err != nil {
		log.Fatalf("source open failed: %v", err)
	}

	var ppsMon *pps.Monitor
	if cfg.PPS.Enable {
		ppsMon, err = pps.Open(cfg.PPS.Pin)
		if err != nil {
			// PPS is a health signal, not a requirement.
			log.WithField("err", err).Warn("pps unavailable")
		} else {
			defer func() { _ = ppsMon.Close() }()
			log.WithField("pin", cfg.PPS.Pin).Info("pps monitor started")
		}
	}

	emit, err := newEmitter(cfg.Output.Format, os.Stdout)
	if err != nil {
		log.Fatalf("emitter init failed: %v", err)
	}

	svc := reader.New(reader.Config{
		Name:               name,
		IncludeUnsupported: cfg.Output.IncludeUnsupported,
	}, src, emit)
	if err := svc.Start(ctx); err != nil {
		log.Fatalf("reader start failed: %v", err)
	}

	log.WithField("source", name).Info("gnssrx starting")

	// Run until interrupted or the source drains (file replays end).
	tick := time.NewTicker(250 * time.Millisecond)
	defer tick.Stop()
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-tick.C:
			if !svc.Snapshot().Running {
				break loop
			}
		}
	}

	svc.Close()
	snap := svc.Snapshot()
	log.WithField("sentences", snap.Sentences).
		WithField("decoded", snap.Decoded).
		WithField("unsupported", snap.Unsupported).
		WithField("checksum_errors", snap.ChecksumErrs).
		WithField("decode_errors", snap.DecodeErrs).
		Info("gnssrx stopping")
	if ppsMon != nil {
		log.WithField("pulses", ppsMon.Snapshot().Pulses).Info("pps stopping")
	}
}

func openSource(cfg config.SourceConfig) (io.ReadCloser, string, error) {
	if cfg.Kind == "file" {
		f, err := os.Open(cfg.Path)
		return f, "file", err
	}

	device := cfg.Device
	if device == "" {
		device = serial.AutoDetect()
		if device == "" {
			log.Fatalf("serial auto-detect failed: no /dev/ttyACM* or /dev/ttyUSB* found")
		}
	}
	f, err := serial.Open(device, cfg.Baud)
	return f, "serial", err
}
