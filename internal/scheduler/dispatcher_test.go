package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

func newTestDispatcher(workers, queueSize int) *Dispatcher {
	return NewDispatcher(&config.Config{
		ReportWorker: config.ReportWorker{Workers: workers, QueueSize: queueSize},
	})
}

func TestDispatcher_ProcessesSubmittedJobs(t *testing.T) {
	d := newTestDispatcher(3, 10)

	var (
		mu       sync.Mutex
		received []string
		wg       sync.WaitGroup
	)
	wg.Add(5)

	d.Subscribe(domain.JobKindReportRequested, func(ctx context.Context, job domain.Job) error {
		defer wg.Done()
		mu.Lock()
		received = append(received, job.Payload.(domain.ReportRequestedEvent).RequestID)
		mu.Unlock()
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, d.Start(ctx))

	for _, id := range []string{"req_1", "req_2", "req_3", "req_4", "req_5"} {
		require.NoError(t, d.Submit(domain.NewReportRequestedJob(domain.ReportRequestedEvent{RequestID: id})))
	}

	wg.Wait()
	d.Stop()

	assert.ElementsMatch(t, []string{"req_1", "req_2", "req_3", "req_4", "req_5"}, received)
	status := d.GetStatus()
	assert.Equal(t, int64(5), status["processed"])
	assert.Equal(t, int64(0), status["failed"])
}

func TestDispatcher_SubmitDoesNotBlockWhenQueueIsFull(t *testing.T) {
	d := newTestDispatcher(1, 1)

	release := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once

	d.Subscribe(domain.JobKindReportRequested, func(ctx context.Context, job domain.Job) error {
		once.Do(func() { close(started) })
		<-release
		return nil
	})

	require.NoError(t, d.Start(context.Background()))

	job := domain.NewReportRequestedJob(domain.ReportRequestedEvent{RequestID: "req_1"})

	// o primeiro ocupa o worker, o segundo ocupa a fila
	require.NoError(t, d.Submit(job))
	<-started
	require.NoError(t, d.Submit(job))

	done := make(chan error, 1)
	go func() { done <- d.Submit(job) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrQueueFull)
	case <-time.After(time.Second):
		t.Fatal("Submit bloqueou com a fila cheia")
	}

	close(release)
	d.Stop()

	assert.ErrorIs(t, d.Submit(job), ErrDispatcherStopped)
}

func TestDispatcher_HandlerFailuresAreCounted(t *testing.T) {
	d := newTestDispatcher(1, 5)

	var calls atomic.Int32
	d.Subscribe(domain.JobKindReportRequested, func(ctx context.Context, job domain.Job) error {
		if calls.Add(1) == 1 {
			panic("falha inesperada")
		}
		return errors.New("erro de negócio")
	})

	require.NoError(t, d.Start(context.Background()))

	job := domain.NewReportRequestedJob(domain.ReportRequestedEvent{RequestID: "req_1"})
	require.NoError(t, d.Submit(job))
	require.NoError(t, d.Submit(job))
	require.NoError(t, d.Submit(domain.Job{Kind: "desconhecido"}))

	d.Stop()

	status := d.GetStatus()
	assert.Equal(t, int64(3), status["failed"])
	assert.Equal(t, int64(0), status["processed"])
	assert.Equal(t, true, status["stopped"])
}

func TestDispatcher_JobsSurviveContextCancellation(t *testing.T) {
	d := newTestDispatcher(1, 5)

	jobCtxErr := make(chan error, 1)
	d.Subscribe(domain.JobKindReportRequested, func(ctx context.Context, job domain.Job) error {
		time.Sleep(50 * time.Millisecond)
		jobCtxErr <- ctx.Err()
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, d.Start(ctx))
	require.NoError(t, d.Submit(domain.NewReportRequestedJob(domain.ReportRequestedEvent{RequestID: "req_1"})))

	cancel()

	select {
	case err := <-jobCtxErr:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("job não terminou após o cancelamento do contexto")
	}

	d.Stop()
}

func TestDispatcher_StartTwice(t *testing.T) {
	d := newTestDispatcher(1, 1)

	require.NoError(t, d.Start(context.Background()))
	assert.Error(t, d.Start(context.Background()))

	d.Stop()
}
