package scheduler

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

var (
	ErrQueueFull         = errors.New("fila de jobs cheia")
	ErrDispatcherStopped = errors.New("dispatcher de jobs parado")
)

// JobHandler processa um job de um tipo específico
type JobHandler func(ctx context.Context, job domain.Job) error

// DispatcherConfig representa a configuração do pool de workers
type DispatcherConfig struct {
	Workers   int
	QueueSize int
}

// Dispatcher executa jobs em um pool limitado de workers. Os handlers são
// registrados por tipo de job; Submit nunca bloqueia o chamador.
type Dispatcher struct {
	config   DispatcherConfig
	queue    chan domain.Job
	handlers map[domain.JobKind]JobHandler

	mu       sync.RWMutex
	started  bool
	stopped  bool
	stopOnce sync.Once
	wg       sync.WaitGroup

	inFlight  atomic.Int64
	processed atomic.Int64
	failed    atomic.Int64
	startedAt time.Time
}

func NewDispatcher(appConfig *config.Config) *Dispatcher {
	dispatcherConfig := DispatcherConfig{
		Workers:   appConfig.ReportWorker.Workers,
		QueueSize: appConfig.ReportWorker.QueueSize,
	}

	if dispatcherConfig.Workers <= 0 {
		dispatcherConfig.Workers = 1
	}
	if dispatcherConfig.QueueSize <= 0 {
		dispatcherConfig.QueueSize = 1
	}

	logrus.WithFields(logrus.Fields{
		"workers":    dispatcherConfig.Workers,
		"queue_size": dispatcherConfig.QueueSize,
	}).Info("Configuração do dispatcher de jobs carregada")

	return &Dispatcher{
		config:   dispatcherConfig,
		queue:    make(chan domain.Job, dispatcherConfig.QueueSize),
		handlers: make(map[domain.JobKind]JobHandler),
	}
}

// Subscribe registra o handler de um tipo de job; deve ser chamado antes de Start
func (d *Dispatcher) Subscribe(kind domain.JobKind, handler JobHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[kind] = handler
}

// Start inicia os workers. Os jobs rodam num contexto que não é cancelado
// junto com ctx, então um relatório em andamento termina mesmo no shutdown.
func (d *Dispatcher) Start(ctx context.Context) error {
	d.mu.Lock()
	if d.started {
		d.mu.Unlock()
		return fmt.Errorf("dispatcher de jobs já iniciado")
	}
	d.started = true
	d.startedAt = time.Now()
	d.mu.Unlock()

	jobCtx := context.WithoutCancel(ctx)

	for i := 0; i < d.config.Workers; i++ {
		d.wg.Add(1)
		go d.worker(jobCtx, i)
	}

	go func() {
		<-ctx.Done()
		logrus.Info("Parando dispatcher de jobs")
		d.Stop()
	}()

	return nil
}

// Submit enfileira o job sem bloquear
func (d *Dispatcher) Submit(job domain.Job) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return ErrDispatcherStopped
	}

	select {
	case d.queue <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop fecha a fila e aguarda os workers drenarem os jobs pendentes
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		close(d.queue)
		d.mu.Unlock()
	})
	d.wg.Wait()
}

func (d *Dispatcher) worker(ctx context.Context, id int) {
	defer d.wg.Done()

	for job := range d.queue {
		d.inFlight.Add(1)
		err := d.run(ctx, job)
		d.inFlight.Add(-1)

		if err != nil {
			d.failed.Add(1)
			logrus.WithFields(logrus.Fields{
				"worker":   id,
				"job_kind": job.Kind,
			}).WithError(err).Error("Erro ao processar job")
			continue
		}
		d.processed.Add(1)
	}
}

func (d *Dispatcher) run(ctx context.Context, job domain.Job) (err error) {
	d.mu.RLock()
	handler, ok := d.handlers[job.Kind]
	d.mu.RUnlock()

	if !ok {
		return fmt.Errorf("nenhum handler registrado para o job %s", job.Kind)
	}

	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("stack_trace", string(debug.Stack())).Error("Panic ao processar job")
			err = fmt.Errorf("panic ao processar job %s: %v", job.Kind, r)
		}
	}()

	return handler(ctx, job)
}

// GetStatus retorna o estado atual do pool de workers
func (d *Dispatcher) GetStatus() map[string]any {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return map[string]any{
		"workers":    d.config.Workers,
		"queue_size": d.config.QueueSize,
		"queued":     len(d.queue),
		"in_flight":  d.inFlight.Load(),
		"processed":  d.processed.Load(),
		"failed":     d.failed.Load(),
		"started":    d.started,
		"stopped":    d.stopped,
		"started_at": d.startedAt,
	}
}
