package migration

import (
	"context"
	"errors"

	errs "github.com/poi2/shopflow/internal/domain/error"
	"github.com/poi2/shopflow/internal/domain/port/usecase"
)

// Default catalog entries created on first boot so the API is usable
// without manual setup
var defaultUsers = []usecase.CreateUserRequest{
	{Name: "alice", Email: "alice@example.com", InitialBalance: "100.00"},
	{Name: "bob", Email: "bob@example.com", InitialBalance: "200.00"},
	{Name: "carol", Email: "carol@example.com", InitialBalance: "300.00"},
}

var defaultShops = []usecase.CreateShopRequest{
	{OwnerID: 1, Name: "alice-books"},
	{OwnerID: 2, Name: "bob-records"},
}

// SeedDefaultCatalog creates the default users and shops. Existing
// entries are left untouched, so re-running on an already seeded
// database is safe
func SeedDefaultCatalog(ctx context.Context, catalog usecase.CatalogUseCase) error {
	for _, req := range defaultUsers {
		if _, err := catalog.CreateUser(ctx, req); err != nil {
			if errors.Is(err, errs.ErrDuplicateUser) {
				continue
			}
			return err
		}
	}

	for _, req := range defaultShops {
		if _, err := catalog.CreateShop(ctx, req); err != nil {
			if errors.Is(err, errs.ErrDuplicateShop) {
				continue
			}
			return err
		}
	}

	return nil
}
