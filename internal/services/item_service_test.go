package services

import (
	"testing"
	"time"

	"inventory_backend/internal/models"
	"inventory_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeItemRepo is a hand-written stand-in for the item repository. Each
// method delegates to an optional function field; unset fields fail the call
// so a test cannot silently exercise an unexpected path.
type fakeItemRepo struct {
	createFn        func(item *models.Item) error
	getByIDFn       func(id string) (*models.Item, error)
	getItemsFn      func(residentID *string, limit int) ([]models.Item, error)
	updateFieldsFn  func(id string, update *repositories.ItemFieldUpdate) error
	deleteFn        func(id string) error
	deleteByOwnerFn func(residentID string) (int64, error)
	purchaseFn      func(id string, purchase models.Purchase) error
	usageFn         func(id string, usage models.UsageHistory) error
	adjustFn        func(id string, delta int) error
}

func (f *fakeItemRepo) CreateItem(_ repositories.SQLExecutor, item *models.Item) error {
	return f.createFn(item)
}

func (f *fakeItemRepo) GetItemByID(id string) (*models.Item, error) {
	return f.getByIDFn(id)
}

func (f *fakeItemRepo) GetItems(residentID *string, limit int) ([]models.Item, error) {
	return f.getItemsFn(residentID, limit)
}

func (f *fakeItemRepo) UpdateItemFields(_ repositories.SQLExecutor, id string, update *repositories.ItemFieldUpdate) error {
	return f.updateFieldsFn(id, update)
}

func (f *fakeItemRepo) DeleteItem(_ repositories.SQLExecutor, id string) error {
	return f.deleteFn(id)
}

func (f *fakeItemRepo) DeleteItemsByResident(_ repositories.SQLExecutor, residentID string) (int64, error) {
	return f.deleteByOwnerFn(residentID)
}

func (f *fakeItemRepo) RecordPurchase(_ repositories.SQLExecutor, id string, purchase models.Purchase) error {
	return f.purchaseFn(id, purchase)
}

func (f *fakeItemRepo) RecordUsage(_ repositories.SQLExecutor, id string, usage models.UsageHistory) error {
	return f.usageFn(id, usage)
}

func (f *fakeItemRepo) AdjustQuantity(_ repositories.SQLExecutor, id string, delta int) error {
	return f.adjustFn(id, delta)
}

func newItemServiceWithClock(repo repositories.ItemRepository, now time.Time) *itemService {
	return &itemService{
		itemRepo: repo,
		now:      func() time.Time { return now },
	}
}

func TestItemService_CreateItem(t *testing.T) {
	t.Run("generates an id and applies defaults", func(t *testing.T) {
		var created *models.Item
		repo := &fakeItemRepo{createFn: func(item *models.Item) error {
			created = item
			return nil
		}}
		svc := newItemServiceWithClock(repo, time.Now())

		item, err := svc.CreateItem(CreateItemRequest{ResidentID: "resident-1", Name: "Tissues", Quantity: 10})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.NotEmpty(t, item.ID)
		assert.Equal(t, "resident-1", item.ResidentID)
		assert.Equal(t, 10, item.Quantity)
		assert.Zero(t, item.Used)
		assert.Equal(t, "purchased", item.Source)
		assert.Empty(t, item.Purchases)
		assert.Empty(t, item.UsageHistory)
	})

	t.Run("keeps an explicit source", func(t *testing.T) {
		repo := &fakeItemRepo{createFn: func(item *models.Item) error { return nil }}
		svc := newItemServiceWithClock(repo, time.Now())

		source := "donated"
		item, err := svc.CreateItem(CreateItemRequest{ResidentID: "resident-1", Name: "Soap", Source: &source})

		require.NoError(t, err)
		assert.Equal(t, "donated", item.Source)
	})
}

func TestItemService_UpdateItem(t *testing.T) {
	t.Run("an empty body degrades to a read", func(t *testing.T) {
		stored := &models.Item{ID: "item-1", Name: "Tissues"}
		repo := &fakeItemRepo{getByIDFn: func(id string) (*models.Item, error) {
			assert.Equal(t, "item-1", id)
			return stored, nil
		}}
		svc := newItemServiceWithClock(repo, time.Now())

		item, err := svc.UpdateItem("item-1", UpdateItemRequest{})

		require.NoError(t, err)
		assert.Equal(t, stored, item)
	})

	t.Run("maps repository not-found", func(t *testing.T) {
		name := "Tissues"
		repo := &fakeItemRepo{updateFieldsFn: func(id string, update *repositories.ItemFieldUpdate) error {
			return repositories.ErrNotFound
		}}
		svc := newItemServiceWithClock(repo, time.Now())

		_, err := svc.UpdateItem("missing", UpdateItemRequest{Name: &name})

		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("passes only the present fields through", func(t *testing.T) {
		var captured *repositories.ItemFieldUpdate
		repo := &fakeItemRepo{
			updateFieldsFn: func(id string, update *repositories.ItemFieldUpdate) error {
				captured = update
				return nil
			},
			getByIDFn: func(id string) (*models.Item, error) { return &models.Item{ID: id}, nil },
		}
		svc := newItemServiceWithClock(repo, time.Now())

		min := 5
		_, err := svc.UpdateItem("item-1", UpdateItemRequest{Min: &min})

		require.NoError(t, err)
		require.NotNil(t, captured)
		assert.Nil(t, captured.Name)
		assert.Nil(t, captured.Quantity)
		require.NotNil(t, captured.Min)
		assert.Equal(t, 5, *captured.Min)
	})
}

func TestItemService_RecordPurchase(t *testing.T) {
	t.Run("stamps today's date on the purchase", func(t *testing.T) {
		var recorded models.Purchase
		repo := &fakeItemRepo{
			purchaseFn: func(id string, purchase models.Purchase) error {
				recorded = purchase
				return nil
			},
			getByIDFn: func(id string) (*models.Item, error) { return &models.Item{ID: id}, nil },
		}
		svc := newItemServiceWithClock(repo, time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))

		_, err := svc.RecordPurchase("item-1", RecordPurchaseRequest{Qty: 5, Price: 100})

		require.NoError(t, err)
		assert.Equal(t, "2026-08-31", recorded.Date)
		assert.Equal(t, 5, recorded.Qty)
		assert.Equal(t, 100.0, recorded.Price)
	})

	t.Run("a negative quantity is passed through unchanged", func(t *testing.T) {
		var recorded models.Purchase
		repo := &fakeItemRepo{
			purchaseFn: func(id string, purchase models.Purchase) error {
				recorded = purchase
				return nil
			},
			getByIDFn: func(id string) (*models.Item, error) { return &models.Item{ID: id}, nil },
		}
		svc := newItemServiceWithClock(repo, time.Now())

		_, err := svc.RecordPurchase("item-1", RecordPurchaseRequest{Qty: -3})

		require.NoError(t, err)
		assert.Equal(t, -3, recorded.Qty)
	})

	t.Run("maps repository not-found", func(t *testing.T) {
		repo := &fakeItemRepo{purchaseFn: func(id string, purchase models.Purchase) error {
			return repositories.ErrNotFound
		}}
		svc := newItemServiceWithClock(repo, time.Now())

		_, err := svc.RecordPurchase("missing", RecordPurchaseRequest{Qty: 1})

		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestItemService_RecordUsage(t *testing.T) {
	t.Run("maps insufficient stock", func(t *testing.T) {
		repo := &fakeItemRepo{usageFn: func(id string, usage models.UsageHistory) error {
			return repositories.ErrInsufficientStock
		}}
		svc := newItemServiceWithClock(repo, time.Now())

		_, err := svc.RecordUsage("item-1", RecordUsageRequest{Qty: 1000})

		assert.ErrorIs(t, err, ErrInsufficientStock)
	})

	t.Run("stamps today's date on the usage record", func(t *testing.T) {
		var recorded models.UsageHistory
		repo := &fakeItemRepo{
			usageFn: func(id string, usage models.UsageHistory) error {
				recorded = usage
				return nil
			},
			getByIDFn: func(id string) (*models.Item, error) { return &models.Item{ID: id}, nil },
		}
		svc := newItemServiceWithClock(repo, time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC))

		_, err := svc.RecordUsage("item-1", RecordUsageRequest{Qty: 2})

		require.NoError(t, err)
		assert.Equal(t, "2026-08-31", recorded.Date)
		assert.Equal(t, 2, recorded.Qty)
	})
}

func TestItemService_AdjustQuantity(t *testing.T) {
	t.Run("returns the refreshed item", func(t *testing.T) {
		repo := &fakeItemRepo{
			adjustFn: func(id string, delta int) error {
				assert.Equal(t, -2, delta)
				return nil
			},
			getByIDFn: func(id string) (*models.Item, error) {
				return &models.Item{ID: id, Quantity: 14}, nil
			},
		}
		svc := newItemServiceWithClock(repo, time.Now())

		item, err := svc.AdjustQuantity("item-1", -2)

		require.NoError(t, err)
		assert.Equal(t, 14, item.Quantity)
	})

	t.Run("maps repository not-found", func(t *testing.T) {
		repo := &fakeItemRepo{adjustFn: func(id string, delta int) error {
			return repositories.ErrNotFound
		}}
		svc := newItemServiceWithClock(repo, time.Now())

		_, err := svc.AdjustQuantity("missing", 3)

		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}
