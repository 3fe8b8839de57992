package order

import (
	"context"
	"fmt"
	"sync"

	"github.com/poi2/shopflow/internal/domain/entity"
	errs "github.com/poi2/shopflow/internal/domain/error"
	coreport "github.com/poi2/shopflow/internal/domain/port/core"
	"github.com/poi2/shopflow/internal/domain/port/usecase"
)

// PlacementQueue serializes order placements per buyer. A coordinator
// instance must never see two concurrent units of work, and a buyer's
// balance must not be debited by two placements racing each other: the
// queue gives every buyer a single worker that processes placements in
// arrival order
type PlacementQueue struct {
	logger       coreport.Logger
	timeProvider coreport.TimeProvider

	// User-based placement queues for strict ordering
	userQueues     sync.Map // map[uint64]chan *placementRequest
	queueWaitGroup sync.WaitGroup
	queueCapacity  int

	// Guards stopped: an enqueue holds the read lock for its whole stay in
	// the queue, so Shutdown cannot close a channel under a pending send
	mu      sync.RWMutex
	stopped bool

	// Function that executes one placement
	processor PlacementProcessorFunc
}

// DefaultQueueCapacity is used when no per-buyer queue capacity is configured
const DefaultQueueCapacity = 100

// PlacementProcessorFunc is the function signature for processing one placement
type PlacementProcessorFunc func(ctx context.Context, userID uint64, req usecase.PlaceOrderRequest) (*entity.Order, error)

// placementRequest represents a queued placement request
type placementRequest struct {
	ctx        context.Context
	userID     uint64
	req        usecase.PlaceOrderRequest
	resultChan chan *placementResult
}

// placementResult represents the result of a processed placement
type placementResult struct {
	order *entity.Order
	err   error
}

// NewPlacementQueue creates a new placement queue
func NewPlacementQueue(
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	queueCapacity int,
	processor PlacementProcessorFunc,
) *PlacementQueue {
	if processor == nil {
		panic("Placement processor function cannot be nil")
	}
	if queueCapacity <= 0 {
		queueCapacity = DefaultQueueCapacity
	}

	return &PlacementQueue{
		logger:        logger,
		timeProvider:  timeProvider,
		userQueues:    sync.Map{},
		queueCapacity: queueCapacity,
		processor:     processor,
	}
}

// Enqueue adds a placement to the buyer's queue and waits for its result
func (q *PlacementQueue) Enqueue(
	ctx context.Context,
	userID uint64,
	req usecase.PlaceOrderRequest,
) (*entity.Order, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.stopped {
		q.logger.Warn("Placement rejected, queue is shut down", map[string]any{
			"user_id": userID,
		})
		return nil, fmt.Errorf("%w: placement queue is shut down", errs.ErrInternalServer)
	}

	q.logger.Debug("Enqueuing order placement", map[string]any{
		"user_id": userID,
		"shop_id": req.ShopID,
	})

	resultChan := make(chan *placementResult, 1)

	queueIface, ok := q.userQueues.Load(userID)
	if !ok {
		var loaded bool
		queueIface, loaded = q.userQueues.LoadOrStore(userID, make(chan *placementRequest, q.queueCapacity))

		// Start worker if this is a new queue
		if !loaded {
			q.logger.Info("Starting placement queue worker for user", map[string]any{
				"user_id": userID,
			})
			q.queueWaitGroup.Add(1)
			go q.processUserPlacements(userID, queueIface.(chan *placementRequest))
		}
	}

	queue, ok := queueIface.(chan *placementRequest)
	if !ok {
		q.logger.Error("Failed to type assert queue channel", nil)
		return nil, errs.ErrInternalServer
	}

	placeReq := &placementRequest{
		ctx:        ctx,
		userID:     userID,
		req:        req,
		resultChan: resultChan,
	}

	select {
	case queue <- placeReq:
	case <-ctx.Done():
		q.logger.Warn("Context canceled while enqueueing placement", map[string]any{
			"user_id": userID,
			"error":   ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}

	select {
	case result := <-resultChan:
		return result.order, result.err
	case <-ctx.Done():
		q.logger.Warn("Context canceled while waiting for placement result", map[string]any{
			"user_id": userID,
			"error":   ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}
}

// processUserPlacements handles the worker goroutine for a buyer's queue
func (q *PlacementQueue) processUserPlacements(userID uint64, queue chan *placementRequest) {
	defer q.queueWaitGroup.Done()

	q.logger.Info("Placement queue worker started", map[string]any{
		"user_id": userID,
	})

	for placeReq := range queue {
		order, err := q.processor(placeReq.ctx, userID, placeReq.req)

		placeReq.resultChan <- &placementResult{
			order: order,
			err:   err,
		}
		close(placeReq.resultChan)
	}

	q.logger.Info("Placement queue worker stopped", map[string]any{
		"user_id": userID,
	})
}

// Shutdown rejects further enqueues, waits out in-flight ones, and stops all
// worker goroutines cleanly
func (q *PlacementQueue) Shutdown() {
	q.logger.Info("Shutting down placement queue", nil)

	q.mu.Lock()
	q.stopped = true
	q.userQueues.Range(func(userID, queueIface interface{}) bool {
		if queue, ok := queueIface.(chan *placementRequest); ok {
			close(queue)
		}
		return true
	})
	q.mu.Unlock()

	q.queueWaitGroup.Wait()
	q.logger.Info("Placement queue shut down", nil)
}
