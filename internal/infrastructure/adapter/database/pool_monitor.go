package database

import (
	"sync"
	"time"

	coreport "github.com/poi2/shopflow/internal/domain/port/core"
)

// PoolMetrics tracks database connection pool metrics
type PoolMetrics struct {
	OpenConnections    int
	IdleConnections    int
	MaxOpenConnections int
	InUse              int
	WaitCount          int64
	WaitDuration       time.Duration
}

// PoolMonitor periodically samples the connection pool and warns when it is
// close to exhaustion
type PoolMonitor struct {
	manager      *Manager
	logger       coreport.Logger
	metricsCache *PoolMetrics
	mutex        sync.RWMutex
	stopChan     chan struct{}
	stopOnce     sync.Once
}

// NewPoolMonitor creates a new connection pool monitor
func NewPoolMonitor(manager *Manager, logger coreport.Logger) *PoolMonitor {
	return &PoolMonitor{
		manager:  manager,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start begins monitoring the connection pool at the given interval
func (m *PoolMonitor) Start(interval time.Duration) {
	m.collectMetrics()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.collectMetrics()
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop stops the monitoring
func (m *PoolMonitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
	})
}

// GetMetrics returns the most recently collected pool metrics
func (m *PoolMonitor) GetMetrics() PoolMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.metricsCache == nil {
		return PoolMetrics{}
	}

	return *m.metricsCache
}

// collectMetrics samples the current pool state
func (m *PoolMonitor) collectMetrics() {
	sqlDB, err := m.manager.DB().DB()
	if err != nil {
		m.logger.Error("Failed to collect connection pool metrics", map[string]any{
			"error": err.Error(),
		})
		return
	}

	stats := sqlDB.Stats()

	m.mutex.Lock()
	m.metricsCache = &PoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
	}
	m.mutex.Unlock()

	threshold := float64(stats.MaxOpenConnections) * 0.8
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
}
