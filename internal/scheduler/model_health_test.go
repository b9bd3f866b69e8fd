package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-query-api/internal/config"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(_ context.Context) error {
	return f.err
}

func newHealthConfig(enabled bool) *config.Config {
	return &config.Config{
		ModelHealth: config.ModelHealth{
			CronSchedule: "*/5 * * * *",
			Enabled:      enabled,
		},
	}
}

func TestStatusStartsReady(t *testing.T) {
	service := NewModelHealthService(&fakePinger{}, newHealthConfig(true))

	status := service.Status()
	assert.True(t, status.Ready)
	assert.Empty(t, status.LastError)
	assert.WithinDuration(t, time.Now(), status.LastCheckedAt, time.Second)
}

func TestProbeFailureMarksNotReady(t *testing.T) {
	pinger := &fakePinger{err: errors.New("servidor de inferência não está pronto: status=503")}
	service := NewModelHealthService(pinger, newHealthConfig(true))

	service.probe(context.Background())

	status := service.Status()
	assert.False(t, status.Ready)
	assert.Contains(t, status.LastError, "status=503")
}

func TestProbeRecoveryClearsLastError(t *testing.T) {
	pinger := &fakePinger{err: errors.New("modelo carregando")}
	service := NewModelHealthService(pinger, newHealthConfig(true))

	service.probe(context.Background())
	require.False(t, service.Status().Ready)

	// O servidor voltou: a próxima sondagem restaura a prontidão
	pinger.err = nil
	service.probe(context.Background())

	status := service.Status()
	assert.True(t, status.Ready)
	assert.Empty(t, status.LastError)
}

func TestStartDisabledDoesNothing(t *testing.T) {
	service := NewModelHealthService(&fakePinger{}, newHealthConfig(false))

	assert.NoError(t, service.Start(context.Background()))
}

func TestStartRejectsInvalidCron(t *testing.T) {
	cfg := newHealthConfig(true)
	cfg.ModelHealth.CronSchedule = "não é cron"

	service := NewModelHealthService(&fakePinger{}, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, service.Start(ctx))
}
