package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-query-api/internal/config"
	"github.com/vfg2006/business-query-api/internal/domain"
)

// Pinger verifica a prontidão do motor de inferência
type Pinger interface {
	Ping(ctx context.Context) error
}

// ModelHealthConfig representa a configuração da sondagem do modelo
type ModelHealthConfig struct {
	CronSchedule string
	Enabled      bool
}

// ModelHealthService sonda periodicamente o servidor de inferência e
// guarda o resultado da última verificação para o endpoint de status
type ModelHealthService struct {
	scheduler *gocron.Scheduler
	config    ModelHealthConfig
	pinger    Pinger

	statusMutex   sync.Mutex
	ready         bool
	lastCheckedAt time.Time
	lastError     string
}

// NewModelHealthService cria o serviço de sondagem. É construído depois do
// gate de prontidão do startup, então o estado inicial é "pronto".
func NewModelHealthService(pinger Pinger, appConfig *config.Config) *ModelHealthService {
	healthConfig := ModelHealthConfig{
		CronSchedule: appConfig.ModelHealth.CronSchedule,
		Enabled:      appConfig.ModelHealth.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": healthConfig.CronSchedule,
		"enabled":       healthConfig.Enabled,
	}).Info("Configuração da sondagem do modelo carregada")

	return &ModelHealthService{
		scheduler:     gocron.NewScheduler(time.Local),
		config:        healthConfig,
		pinger:        pinger,
		ready:         true,
		lastCheckedAt: time.Now(),
	}
}

// Start inicia o agendador da sondagem
func (s *ModelHealthService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Sondagem do modelo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da sondagem do modelo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.probe(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sondagem do modelo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da sondagem do modelo")
		s.scheduler.Stop()
	}()

	return nil
}

// Status devolve o resultado da última sondagem
func (s *ModelHealthService) Status() domain.ModelStatus {
	s.statusMutex.Lock()
	defer s.statusMutex.Unlock()

	return domain.ModelStatus{
		Ready:         s.ready,
		LastCheckedAt: s.lastCheckedAt,
		LastError:     s.lastError,
	}
}

// probe executa uma verificação de prontidão com timeout próprio
func (s *ModelHealthService) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err := s.pinger.Ping(probeCtx)

	s.statusMutex.Lock()
	defer s.statusMutex.Unlock()

	s.lastCheckedAt = time.Now()
	if err != nil {
		s.ready = false
		s.lastError = err.Error()
		logrus.WithError(err).Warn("Sondagem do modelo falhou")
		return
	}

	s.ready = true
	s.lastError = ""
	logrus.Debug("Sondagem do modelo concluída com sucesso")
}
