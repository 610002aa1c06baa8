package reader

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gnssrx/internal/nmea"
)

type collector struct {
	mu      sync.Mutex
	results []nmea.Result
}

func (c *collector) handle(res nmea.Result) {
	c.mu.Lock()
	c.results = append(c.results, res)
	c.mu.Unlock()
}

func (c *collector) snapshot() []nmea.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]nmea.Result(nil), c.results...)
}

func runOver(t *testing.T, cfg Config, stream string) (*collector, Snapshot) {
	t.Helper()
	col := &collector{}
	svc := New(cfg, io.NopCloser(strings.NewReader(stream)), col.handle)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, svc.Start(ctx))

	// The loop ends on its own at EOF.
	deadline := time.Now().Add(2 * time.Second)
	for svc.Snapshot().Running && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	svc.Close()
	return col, svc.Snapshot()
}

const stream = "$GPRMC,225446.33,A,4916.45,N,12311.12,W,000.5,054.7,191194,020.3,E,A*2B\r\n" +
	"$GPGSA,A,3,,,,,,16,18,,22,24,,,3.6,2.1,2.2*3C\r\n" +
	"$GPZDA,160012.71,11,03,2004,-1,00*7D\r\n" + // no decoder for ZDA
	"$GPVTG,360.0,T,348.7,M,000.0,N,000.0,K*00\r\n" // corrupted checksum

func TestService_DecodesStream(t *testing.T) {
	col, snap := runOver(t, Config{Name: "test"}, stream)

	results := col.snapshot()
	require.Len(t, results, 2)
	assert.Equal(t, nmea.TypeRMC, results[0].Type)
	require.NotNil(t, results[0].RMC)
	assert.Equal(t, nmea.TypeGSA, results[1].Type)

	assert.Equal(t, uint64(4), snap.Sentences)
	assert.Equal(t, uint64(2), snap.Decoded)
	assert.Equal(t, uint64(1), snap.Unsupported)
	assert.Equal(t, uint64(1), snap.ChecksumErrs)
	assert.Equal(t, uint64(0), snap.DecodeErrs)
	assert.Contains(t, snap.LastError, "checksum")
}

func TestService_IncludeUnsupported(t *testing.T) {
	col, _ := runOver(t, Config{Name: "test", IncludeUnsupported: true}, stream)

	results := col.snapshot()
	require.Len(t, results, 3)
	assert.Equal(t, "ZDA", results[2].Type)
	assert.True(t, results[2].Unsupported)
}

func TestService_StartGuards(t *testing.T) {
	var nilSvc *Service
	assert.Error(t, nilSvc.Start(context.Background()))

	svc := New(Config{}, nil, func(nmea.Result) {})
	assert.Error(t, svc.Start(context.Background()))

	svc = New(Config{}, io.NopCloser(strings.NewReader("")), nil)
	assert.Error(t, svc.Start(context.Background()))
}

func TestService_CloseBeforeStart(t *testing.T) {
	svc := New(Config{}, io.NopCloser(strings.NewReader("")), func(nmea.Result) {})
	svc.Close()
}
