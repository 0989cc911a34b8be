package kafka

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/bloodbank/internal/kafka/mocks"
	"github.com/Gunvolt24/bloodbank/pkg/ctxmeta"
	"github.com/Gunvolt24/bloodbank/pkg/validate"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

var testReaderConfig = kafka.ReaderConfig{Topic: "screenings", GroupID: "g1", Brokers: []string{"b:9092"}}

func newTestConsumer(r reader, s messageSaver) *Consumer {
	return &Consumer{
		reader: r, service: s, log: nopLogger{},
		processTimeout: 30 * time.Millisecond,
		retryInitial:   5 * time.Millisecond,
		retryMax:       10 * time.Millisecond,
		jitterRand:     rand.New(rand.NewSource(1)),
	}
}

// blockUntilCancel — следующий FetchMessage ждёт отмены контекста.
func blockUntilCancel(r *mocks.Mockreader) *gomock.Call {
	return r.EXPECT().FetchMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		})
}

// runOneMessage — запускает Run, даёт обработать сообщение и останавливает цикл.
func runOneMessage(t *testing.T, c *Consumer) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- c.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("want context.Canceled, got %v", err)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timeout waiting for Run to stop")
	}
}

func TestRun_HandlingOutcome(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		commitErr  error
		wantCommit bool
	}{
		{"recorded screening is committed", nil, nil, true},
		{"invalid form is committed and skipped", fmt.Errorf("%w: sex обязателен", validate.ErrInvalidScreening), nil, true},
		{"temporary failure is not committed", errors.New("db down"), nil, false},
		{"commit failure only warns", nil, errors.New("temporary"), true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			r := mocks.NewMockreader(ctrl)
			s := mocks.NewMockmessageSaver(ctrl)

			r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
			gomock.InOrder(
				r.EXPECT().FetchMessage(gomock.Any()).
					Return(kafka.Message{Topic: "screenings", Offset: 1, Value: []byte("form")}, nil),
				s.EXPECT().ScreenFromMessage(gomock.Any(), []byte("form")).Return(tt.serviceErr),
			)
			if tt.wantCommit {
				r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(tt.commitErr)
			}
			// без ожидания CommitMessages лишний вызов уронит тест как unexpected call
			blockUntilCancel(r)

			runOneMessage(t, newTestConsumer(r, s))
		})
	}
}

func TestRun_MessageContextCarriesRef(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockmessageSaver(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	r.EXPECT().FetchMessage(gomock.Any()).
		Return(kafka.Message{Topic: "screenings", Partition: 2, Offset: 42, Value: []byte("form")}, nil)

	var gotRef string
	var hasDeadline bool
	s.EXPECT().ScreenFromMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ []byte) error {
			gotRef, _ = ctxmeta.RequestIDFromContext(ctx)
			_, hasDeadline = ctx.Deadline()
			return nil
		})
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil)
	blockUntilCancel(r)

	runOneMessage(t, newTestConsumer(r, s))

	if gotRef != "kafka:screenings/2/42" {
		t.Fatalf("unexpected message ref %q", gotRef)
	}
	if !hasDeadline {
		t.Fatalf("processing context must carry process timeout")
	}
}

func TestRun_FetchError_RetryThenStopOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockmessageSaver(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	r.EXPECT().FetchMessage(gomock.Any()).
		Return(kafka.Message{}, errors.New("broker error")).
		MinTimes(2)

	c := newTestConsumer(r, s)

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()

	if err := c.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want DeadlineExceeded, got %v", err)
	}
}

func TestClose_DelegatesToReaderOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockmessageSaver(ctrl)

	r.EXPECT().Close().Return(nil).Times(1)

	c := newTestConsumer(r, s)
	for i := 0; i < 2; i++ {
		if err := c.Close(); err != nil {
			t.Fatalf("expected nil from Close, got %v", err)
		}
	}
}

func TestBackoff(t *testing.T) {
	c := newTestConsumer(nil, nil)
	c.retryInitial = 100 * time.Millisecond
	c.retryMax = 300 * time.Millisecond

	if got := c.nextBackoff(100 * time.Millisecond); got != 200*time.Millisecond {
		t.Fatalf("want 200ms, got %v", got)
	}
	if got := c.nextBackoff(200 * time.Millisecond); got != 300*time.Millisecond {
		t.Fatalf("want capped 300ms, got %v", got)
	}

	for i := 0; i < 100; i++ {
		got := c.withJitterEqual(100 * time.Millisecond)
		if got < 50*time.Millisecond || got > 100*time.Millisecond {
			t.Fatalf("equal jitter out of range: %v", got)
		}
	}
	if got := c.withJitterEqual(0); got != 0 {
		t.Fatalf("zero delay must stay zero, got %v", got)
	}
}
