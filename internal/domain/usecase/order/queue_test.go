package order

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/poi2/shopflow/internal/domain/entity"
	errs "github.com/poi2/shopflow/internal/domain/error"
	"github.com/poi2/shopflow/internal/domain/port/usecase"
	coremocks "github.com/poi2/shopflow/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestPlacementQueueProcessesAndReturnsResult(t *testing.T) {
	logger := quietLogger(t)
	tp := coremocks.NewMockTimeProvider(t)

	queue := NewPlacementQueue(logger, tp, 0, func(ctx context.Context, userID uint64, req usecase.PlaceOrderRequest) (*entity.Order, error) {
		order := &entity.Order{ID: 42, UserID: userID, ShopID: req.ShopID, Status: entity.OrderStatusPlaced}
		return order, nil
	})
	defer queue.Shutdown()

	order, err := queue.Enqueue(context.Background(), 1, usecase.PlaceOrderRequest{ShopID: 2, Total: "10.00"})

	require.NoError(t, err)
	assert.Equal(t, uint64(42), order.ID)
	assert.Equal(t, uint64(1), order.UserID)
}

func TestPlacementQueuePropagatesProcessorError(t *testing.T) {
	logger := quietLogger(t)
	tp := coremocks.NewMockTimeProvider(t)

	processorErr := errors.New("placement failed")
	queue := NewPlacementQueue(logger, tp, 0, func(ctx context.Context, userID uint64, req usecase.PlaceOrderRequest) (*entity.Order, error) {
		return nil, processorErr
	})
	defer queue.Shutdown()

	order, err := queue.Enqueue(context.Background(), 1, usecase.PlaceOrderRequest{ShopID: 2, Total: "10.00"})

	assert.Nil(t, order)
	assert.Equal(t, processorErr, err)
}

func TestPlacementQueueSerializesPerBuyer(t *testing.T) {
	logger := quietLogger(t)
	tp := coremocks.NewMockTimeProvider(t)

	var inFlight int32
	var maxInFlight int32
	queue := NewPlacementQueue(logger, tp, 0, func(ctx context.Context, userID uint64, req usecase.PlaceOrderRequest) (*entity.Order, error) {
		current := atomic.AddInt32(&inFlight, 1)
		for {
			observed := atomic.LoadInt32(&maxInFlight)
			if current <= observed || atomic.CompareAndSwapInt32(&maxInFlight, observed, current) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return &entity.Order{ID: userID, UserID: userID}, nil
	})
	defer queue.Shutdown()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := queue.Enqueue(context.Background(), 1, usecase.PlaceOrderRequest{ShopID: 2, Total: "1.00"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Placements for one buyer never overlap
	assert.Equal(t, int32(1), atomic.LoadInt32(&maxInFlight))
}

func TestPlacementQueueDistinctBuyersRunIndependently(t *testing.T) {
	logger := quietLogger(t)
	tp := coremocks.NewMockTimeProvider(t)

	started := make(chan uint64, 2)
	release := make(chan struct{})
	queue := NewPlacementQueue(logger, tp, 0, func(ctx context.Context, userID uint64, req usecase.PlaceOrderRequest) (*entity.Order, error) {
		started <- userID
		<-release
		return &entity.Order{ID: userID, UserID: userID}, nil
	})
	defer queue.Shutdown()

	var wg sync.WaitGroup
	for _, userID := range []uint64{1, 2} {
		wg.Add(1)
		go func(id uint64) {
			defer wg.Done()
			_, err := queue.Enqueue(context.Background(), id, usecase.PlaceOrderRequest{ShopID: 2, Total: "1.00"})
			assert.NoError(t, err)
		}(userID)
	}

	// Both workers start without waiting on each other
	seen := map[uint64]bool{}
	for i := 0; i < 2; i++ {
		select {
		case id := <-started:
			seen[id] = true
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for placements to start")
		}
	}
	assert.Len(t, seen, 2)

	close(release)
	wg.Wait()
}

func TestPlacementQueueContextCancellation(t *testing.T) {
	logger := quietLogger(t)
	tp := coremocks.NewMockTimeProvider(t)

	release := make(chan struct{})
	defer close(release)
	queue := NewPlacementQueue(logger, tp, 0, func(ctx context.Context, userID uint64, req usecase.PlaceOrderRequest) (*entity.Order, error) {
		<-release
		return &entity.Order{ID: 1}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())

	// Occupy the worker so the second enqueue has to wait
	go func() {
		_, _ = queue.Enqueue(context.Background(), 1, usecase.PlaceOrderRequest{ShopID: 2, Total: "1.00"})
	}()
	time.Sleep(10 * time.Millisecond)

	done := make(chan error, 1)
	go func() {
		_, err := queue.Enqueue(ctx, 1, usecase.PlaceOrderRequest{ShopID: 2, Total: "1.00"})
		done <- err
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("enqueue did not observe cancellation")
	}
}

func TestPlacementQueueRejectsEnqueueAfterShutdown(t *testing.T) {
	logger := quietLogger(t)
	tp := coremocks.NewMockTimeProvider(t)

	queue := NewPlacementQueue(logger, tp, 0, func(ctx context.Context, userID uint64, req usecase.PlaceOrderRequest) (*entity.Order, error) {
		return &entity.Order{ID: 1, UserID: userID}, nil
	})

	_, err := queue.Enqueue(context.Background(), 1, usecase.PlaceOrderRequest{ShopID: 2, Total: "1.00"})
	require.NoError(t, err)

	queue.Shutdown()

	// A late enqueue fails cleanly instead of hitting a closed queue,
	// both for a buyer with an existing queue and for a new one
	_, err = queue.Enqueue(context.Background(), 1, usecase.PlaceOrderRequest{ShopID: 2, Total: "1.00"})
	assert.ErrorIs(t, err, errs.ErrInternalServer)

	_, err = queue.Enqueue(context.Background(), 9, usecase.PlaceOrderRequest{ShopID: 2, Total: "1.00"})
	assert.ErrorIs(t, err, errs.ErrInternalServer)
}

func TestPlacementQueueRequiresProcessor(t *testing.T) {
	logger := quietLogger(t)
	tp := coremocks.NewMockTimeProvider(t)

	assert.Panics(t, func() {
		NewPlacementQueue(logger, tp, 0, nil)
	})
}
