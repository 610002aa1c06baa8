// Package reader runs the receive loop: it owns a transport stream, splits
// it into candidate sentences, decodes each one, and hands typed results to
// a caller-supplied handler.
//
// The service keeps counters but no navigation state; sentences are not
// fused across calls, so consumers see exactly one result per decoded
// sentence.
package reader

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"gnssrx/internal/nmea"
	"gnssrx/internal/scan"
)

// Handler receives each decoded sentence. It is called from the service
// goroutine and must not block.
type Handler func(res nmea.Result)

type Config struct {
	// Name labels log lines and the snapshot, e.g. "serial" or "file".
	Name string

	// IncludeUnsupported forwards results with no decoder to the handler;
	// otherwise they are only counted.
	IncludeUnsupported bool
}

// Snapshot is a point-in-time view of the receive loop.
type Snapshot struct {
	Name      string `json:"name"`
	Running   bool   `json:"running"`
	Sentences uint64 `json:"sentences"`
	Decoded   uint64 `json:"decoded"`

	Unsupported  uint64 `json:"unsupported"`
	ChecksumErrs uint64 `json:"checksum_errors"`
	DecodeErrs   uint64 `json:"decode_errors"`

	LastError string `json:"last_error,omitempty"`
}

type Service struct {
	cfg Config
	src io.ReadCloser
	h   Handler

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running atomic.Bool

	sentences    atomic.Uint64
	decoded      atomic.Uint64
	unsupported  atomic.Uint64
	checksumErrs atomic.Uint64
	decodeErrs   atomic.Uint64

	lastErr atomic.Value // string
}

// New builds a service over src. The service takes ownership of src and
// closes it on Close.
func New(cfg Config, src io.ReadCloser, h Handler) *Service {
	if cfg.Name == "" {
		cfg.Name = "reader"
	}
	return &Service{cfg: cfg, src: src, h: h}
}

func (s *Service) Start(ctx context.Context) error {
	if s == nil {
		return fmt.Errorf("reader service is nil")
	}
	if ctx == nil {
		return fmt.Errorf("ctx is nil")
	}
	if s.src == nil {
		return fmt.Errorf("reader source is nil")
	}
	if s.h == nil {
		return fmt.Errorf("reader handler is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return nil
	}

	childCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.running.Store(true)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.running.Store(false)
		s.run(childCtx)
	}()
	return nil
}

func (s *Service) run(ctx context.Context) {
	log.WithField("source", s.cfg.Name).Info("reader started")

	sc := scan.NewScanner(s.src)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if !sc.Scan() {
			err := sc.Err()
			if err == nil {
				err = io.EOF
			}
			if ctx.Err() == nil {
				s.setError(errors.Wrap(err, "read stopped").Error())
				log.WithField("source", s.cfg.Name).WithField("err", err).Info("reader stopped")
			}
			return
		}

		s.sentences.Add(1)
		res, err := nmea.Decode(sc.Bytes())
		if err != nil {
			if errors.Is(err, nmea.ErrChecksum) {
				s.checksumErrs.Add(1)
			} else {
				s.decodeErrs.Add(1)
			}
			// Noisy ports make bad sentences routine; keep the last
			// error for the snapshot and stay quiet otherwise.
			s.setError(err.Error())
			log.WithField("source", s.cfg.Name).WithField("err", err).Debug("sentence dropped")
			continue
		}

		if res.Unsupported {
			s.unsupported.Add(1)
			if !s.cfg.IncludeUnsupported {
				continue
			}
		} else {
			s.decoded.Add(1)
		}
		s.h(res)
	}
}

// Close stops the loop and closes the source. Closing the source is what
// unblocks a read stuck on a quiet serial port.
func (s *Service) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	cancel := s.cancel
	src := s.src
	s.cancel = nil
	s.src = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if src != nil {
		_ = src.Close()
	}
	s.wg.Wait()
}

func (s *Service) Snapshot() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	out := Snapshot{
		Name:         s.cfg.Name,
		Running:      s.running.Load(),
		Sentences:    s.sentences.Load(),
		Decoded:      s.decoded.Load(),
		Unsupported:  s.unsupported.Load(),
		ChecksumErrs: s.checksumErrs.Load(),
		DecodeErrs:   s.decodeErrs.Load(),
	}
	if v := s.lastErr.Load(); v != nil {
		out.LastError = v.(string)
	}
	return out
}

func (s *Service) setError(msg string) {
	s.lastErr.Store(msg)
}
