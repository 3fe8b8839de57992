package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/poi2/shopflow/internal/domain/entity"
	coreport "github.com/poi2/shopflow/internal/domain/port/core"
	"github.com/poi2/shopflow/internal/infrastructure/adapter/logger"
	"github.com/poi2/shopflow/internal/infrastructure/adapter/model"
	"github.com/poi2/shopflow/internal/infrastructure/adapter/repository"
	timeadapter "github.com/poi2/shopflow/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database migrated with the full
// schema. The single-connection pool keeps the shared-cache database alive
// for the duration of the test
func newTestDB(t *testing.T) (*gorm.DB, coreport.Logger, coreport.TimeProvider) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1",
		strings.ReplaceAll(t.Name(), "/", "_"))

	// Pin a keep-alive connection so the shared-cache database survives even
	// if the pool's working connection is discarded (e.g. after a cancelled
	// transaction context)
	keepAlive, err := sql.Open("sqlite3", dsn)
	require.NoError(t, err)
	keepAliveConn, err := keepAlive.Conn(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = keepAliveConn.Close()
		_ = keepAlive.Close()
	})

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Shop{}, &model.Order{}))

	return db, logger.NewNoopLogger(), timeadapter.NewRealTimeProvider()
}

// seedUser persists a user with the given balance and returns its stored state
func seedUser(t *testing.T, db *gorm.DB, log coreport.Logger, tp coreport.TimeProvider, email string, balanceCents int64) *entity.User {
	t.Helper()

	user, err := entity.NewUser("buyer", email, entity.FormatCents(balanceCents), tp)
	require.NoError(t, err)

	created, err := repository.NewUserRepository(db, tp, log).Create(context.Background(), user)
	require.NoError(t, err)
	return created
}

// seedShop persists a shop owned by the given user
func seedShop(t *testing.T, db *gorm.DB, log coreport.Logger, tp coreport.TimeProvider, ownerID uint64, name string) *entity.Shop {
	t.Helper()

	shop, err := entity.NewShop(ownerID, name, tp)
	require.NoError(t, err)

	created, err := repository.NewShopRepository(db, tp, log).Create(context.Background(), shop)
	require.NoError(t, err)
	return created
}
