package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"inventory_backend/internal/models"
)

// ItemFieldUpdate carries the set of item fields present in a partial update.
// A nil field means "leave unchanged"; there is no sentinel value.
type ItemFieldUpdate struct {
	Name     *string
	Quantity *int
	Used     *int
	Min      *int
	Source   *string
}

// IsEmpty reports whether no field is set.
func (u *ItemFieldUpdate) IsEmpty() bool {
	return u.Name == nil && u.Quantity == nil && u.Used == nil && u.Min == nil && u.Source == nil
}

// ItemRepository defines the interface for item-related database operations.
// Stock mutations (purchase, usage, adjustment) are single UPDATE statements,
// so each is atomic with respect to concurrent writers on the same item.
type ItemRepository interface {
	CreateItem(executor SQLExecutor, item *models.Item) error
	GetItemByID(id string) (*models.Item, error)
	GetItems(residentID *string, limit int) ([]models.Item, error)
	UpdateItemFields(executor SQLExecutor, id string, update *ItemFieldUpdate) error
	DeleteItem(executor SQLExecutor, id string) error
	DeleteItemsByResident(executor SQLExecutor, residentID string) (int64, error)
	RecordPurchase(executor SQLExecutor, id string, purchase models.Purchase) error
	RecordUsage(executor SQLExecutor, id string, usage models.UsageHistory) error
	AdjustQuantity(executor SQLExecutor, id string, delta int) error
}

type itemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new instance of ItemRepository.
func NewItemRepository(db *sql.DB) ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `id, resident_id, name, quantity, used, min_quantity, source, purchases, usage_history`

// scanItem reads one item row, decoding the embedded JSONB history arrays.
func scanItem(scan func(dest ...interface{}) error) (*models.Item, error) {
	item := &models.Item{}
	var purchasesRaw, usageRaw []byte

	err := scan(
		&item.ID, &item.ResidentID, &item.Name, &item.Quantity, &item.Used,
		&item.Min, &item.Source, &purchasesRaw, &usageRaw,
	)
	if err != nil {
		return nil, err
	}

	item.Purchases = []models.Purchase{}
	if len(purchasesRaw) > 0 {
		if err := json.Unmarshal(purchasesRaw, &item.Purchases); err != nil {
			return nil, fmt.Errorf("decoding purchases: %v", err)
		}
	}
	item.UsageHistory = []models.UsageHistory{}
	if len(usageRaw) > 0 {
		if err := json.Unmarshal(usageRaw, &item.UsageHistory); err != nil {
			return nil, fmt.Errorf("decoding usage history: %v", err)
		}
	}
	return item, nil
}

// CreateItem inserts a new item with empty history arrays. The caller is
// responsible for having generated the id; the resident reference is stored
// as given, without an existence check.
func (r *itemRepository) CreateItem(executor SQLExecutor, item *models.Item) error {
	query := `INSERT INTO items (id, resident_id, name, quantity, used, min_quantity, source, purchases, usage_history)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, '[]'::jsonb, '[]'::jsonb)`

	_, err := executor.Exec(query,
		item.ID, item.ResidentID, item.Name, item.Quantity, item.Used, item.Min, item.Source,
	)
	if err != nil {
		return fmt.Errorf("%w: creating item: %v", ErrDatabaseError, err)
	}
	if item.Purchases == nil {
		item.Purchases = []models.Purchase{}
	}
	if item.UsageHistory == nil {
		item.UsageHistory = []models.UsageHistory{}
	}
	return nil
}

// GetItemByID retrieves an item by its ID, histories included.
func (r *itemRepository) GetItemByID(id string) (*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	item, err := scanItem(r.db.QueryRow(query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting item by ID %s: %v", ErrDatabaseError, id, err)
	}
	return item, nil
}

// GetItems retrieves items, optionally filtered by owning resident, capped at limit.
func (r *itemRepository) GetItems(residentID *string, limit int) ([]models.Item, error) {
	items := []models.Item{}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + itemColumns + ` FROM items`)

	var args []interface{}
	argCount := 1

	if residentID != nil && *residentID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" WHERE resident_id = $%d", argCount))
		args = append(args, *residentID)
		argCount++
	}
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argCount))
	args = append(args, limit)

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning item: %v", ErrDatabaseError, err)
		}
		items = append(items, *item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating item rows: %v", ErrDatabaseError, err)
	}
	return items, nil
}

// UpdateItemFields applies a partial update, building the SET clause from the
// fields actually present. Calling it with an empty update is the caller's
// mistake; use GetItemByID instead.
func (r *itemRepository) UpdateItemFields(executor SQLExecutor, id string, update *ItemFieldUpdate) error {
	var assignments []string
	var args []interface{}
	argCount := 1

	appendAssignment := func(column string, value interface{}) {
		assignments = append(assignments, column+" = $"+strconv.Itoa(argCount))
		args = append(args, value)
		argCount++
	}

	if update.Name != nil {
		appendAssignment("name", *update.Name)
	}
	if update.Quantity != nil {
		appendAssignment("quantity", *update.Quantity)
	}
	if update.Used != nil {
		appendAssignment("used", *update.Used)
	}
	if update.Min != nil {
		appendAssignment("min_quantity", *update.Min)
	}
	if update.Source != nil {
		appendAssignment("source", *update.Source)
	}
	if len(assignments) == 0 {
		return fmt.Errorf("%w: empty item update for ID %s", ErrDatabaseError, id)
	}

	query := "UPDATE items SET " + strings.Join(assignments, ", ") + " WHERE id = $" + strconv.Itoa(argCount)
	args = append(args, id)

	result, err := executor.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("%w: updating item ID %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating item ID %s: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteItem removes a single item.
func (r *itemRepository) DeleteItem(executor SQLExecutor, id string) error {
	query := `DELETE FROM items WHERE id = $1`

	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting item ID %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting item ID %s: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteItemsByResident removes every item owned by the given resident and
// reports how many were deleted. Zero is not an error: a resident may own
// no items.
func (r *itemRepository) DeleteItemsByResident(executor SQLExecutor, residentID string) (int64, error) {
	query := `DELETE FROM items WHERE resident_id = $1`

	result, err := executor.Exec(query, residentID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting items for resident ID %s: %v", ErrDatabaseError, residentID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: getting rows affected for deleting items of resident ID %s: %v", ErrDatabaseError, residentID, err)
	}
	return rowsAffected, nil
}

// RecordPurchase increments stock and appends the purchase record in one
// statement. Quantity is applied as given; a negative purchase decreases stock.
func (r *itemRepository) RecordPurchase(executor SQLExecutor, id string, purchase models.Purchase) error {
	entry, err := json.Marshal(purchase)
	if err != nil {
		return fmt.Errorf("%w: encoding purchase for item ID %s: %v", ErrDatabaseError, id, err)
	}

	query := `UPDATE items SET quantity = quantity + $1, purchases = purchases || $2::jsonb WHERE id = $3`

	result, err := executor.Exec(query, purchase.Qty, entry, id)
	if err != nil {
		return fmt.Errorf("%w: recording purchase for item ID %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for purchase on item ID %s: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordUsage decrements stock, increments the used counter and appends the
// usage record, all guarded by the sufficiency condition in the WHERE clause.
// When no row matches, the item either does not exist or has too little
// stock; a follow-up existence probe tells the two apart.
func (r *itemRepository) RecordUsage(executor SQLExecutor, id string, usage models.UsageHistory) error {
	entry, err := json.Marshal(usage)
	if err != nil {
		return fmt.Errorf("%w: encoding usage for item ID %s: %v", ErrDatabaseError, id, err)
	}

	query := `UPDATE items SET quantity = quantity - $1, used = used + $1, usage_history = usage_history || $2::jsonb
	          WHERE id = $3 AND quantity >= $1`

	result, err := executor.Exec(query, usage.Qty, entry, id)
	if err != nil {
		return fmt.Errorf("%w: recording usage for item ID %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for usage on item ID %s: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected > 0 {
		return nil
	}

	var exists bool
	if err := executor.QueryRow(`SELECT EXISTS(SELECT 1 FROM items WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("%w: checking item ID %s after rejected usage: %v", ErrDatabaseError, id, err)
	}
	if !exists {
		return ErrNotFound
	}
	return ErrInsufficientStock
}

// AdjustQuantity applies a signed correction to stock, clamped at zero.
// Unlike usage, a too-large negative delta is not rejected, and nothing is
// appended to either history.
func (r *itemRepository) AdjustQuantity(executor SQLExecutor, id string, delta int) error {
	query := `UPDATE items SET quantity = GREATEST(0, quantity + $1) WHERE id = $2`

	result, err := executor.Exec(query, delta, id)
	if err != nil {
		return fmt.Errorf("%w: adjusting quantity for item ID %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for adjustment on item ID %s: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
