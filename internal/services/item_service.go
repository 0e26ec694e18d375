package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"inventory_backend/internal/models"
	"inventory_backend/internal/repositories"

	"github.com/google/uuid"
)

// --- Custom Service Errors for Item ---
var (
	ErrItemNotFound      = errors.New("item not found")
	ErrInsufficientStock = errors.New("not enough quantity in stock")
)

// eventDateFormat is the calendar-date form stamped on purchase and usage records.
const eventDateFormat = "2006-01-02"

// --- Item DTOs ---
type CreateItemRequest struct {
	ResidentID string  `json:"residentId" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Quantity   int     `json:"quantity"`
	Used       int     `json:"used"`
	Min        int     `json:"min"`
	Source     *string `json:"source"`
}

// UpdateItemRequest is a partial update: only non-nil fields are applied.
type UpdateItemRequest struct {
	Name     *string `json:"name"`
	Quantity *int    `json:"quantity"`
	Used     *int    `json:"used"`
	Min      *int    `json:"min"`
	Source   *string `json:"source"`
}

type RecordPurchaseRequest struct {
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

type RecordUsageRequest struct {
	Qty int `json:"qty"`
}

// --- ItemService Interface ---
type ItemService interface {
	CreateItem(req CreateItemRequest) (*models.Item, error)
	GetItems(residentID *string) ([]models.Item, error)
	UpdateItem(itemID string, req UpdateItemRequest) (*models.Item, error)
	DeleteItem(itemID string) error
	RecordPurchase(itemID string, req RecordPurchaseRequest) (*models.Item, error)
	RecordUsage(itemID string, req RecordUsageRequest) (*models.Item, error)
	AdjustQuantity(itemID string, delta int) (*models.Item, error)
}

// --- itemService Implementation ---
type itemService struct {
	itemRepo repositories.ItemRepository
	db       *sql.DB
	now      func() time.Time
}

// NewItemService creates a new instance of ItemService.
func NewItemService(repo repositories.ItemRepository, db *sql.DB) ItemService {
	return &itemService{
		itemRepo: repo,
		db:       db,
		now:      time.Now,
	}
}

// CreateItem persists a new item. The resident reference is stored as given;
// there is deliberately no check that it names an existing resident.
func (s *itemService) CreateItem(req CreateItemRequest) (*models.Item, error) {
	source := models.DefaultItemSource
	if req.Source != nil && *req.Source != "" {
		source = *req.Source
	}

	item := &models.Item{
		ID:           uuid.NewString(),
		ResidentID:   req.ResidentID,
		Name:         req.Name,
		Quantity:     req.Quantity,
		Used:         req.Used,
		Min:          req.Min,
		Source:       source,
		Purchases:    []models.Purchase{},
		UsageHistory: []models.UsageHistory{},
	}

	if err := s.itemRepo.CreateItem(s.db, item); err != nil {
		return nil, fmt.Errorf("failed to create item in repository: %w", err)
	}
	return item, nil
}

func (s *itemService) GetItems(residentID *string) ([]models.Item, error) {
	items, err := s.itemRepo.GetItems(residentID, listCap)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	return items, nil
}

func (s *itemService) UpdateItem(itemID string, req UpdateItemRequest) (*models.Item, error) {
	update := &repositories.ItemFieldUpdate{
		Name:     req.Name,
		Quantity: req.Quantity,
		Used:     req.Used,
		Min:      req.Min,
		Source:   req.Source,
	}

	// A body with no recognized fields is a valid no-op; it still 404s on an
	// unknown item.
	if update.IsEmpty() {
		return s.getItem(itemID)
	}

	if err := s.itemRepo.UpdateItemFields(s.db, itemID, update); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to update item in repository: %w", err)
	}
	return s.getItem(itemID)
}

func (s *itemService) DeleteItem(itemID string) error {
	if err := s.itemRepo.DeleteItem(s.db, itemID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to delete item in repository: %w", err)
	}
	return nil
}

// RecordPurchase adds stock and appends a purchase record stamped with
// today's date. Quantity is taken as given, negative values included.
func (s *itemService) RecordPurchase(itemID string, req RecordPurchaseRequest) (*models.Item, error) {
	purchase := models.Purchase{
		Date:  s.now().Format(eventDateFormat),
		Qty:   req.Qty,
		Price: req.Price,
	}

	if err := s.itemRepo.RecordPurchase(s.db, itemID, purchase); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}
	return s.getItem(itemID)
}

// RecordUsage consumes stock. The repository enforces sufficiency in the same
// statement that applies the decrement, so the check cannot race.
func (s *itemService) RecordUsage(itemID string, req RecordUsageRequest) (*models.Item, error) {
	usage := models.UsageHistory{
		Date: s.now().Format(eventDateFormat),
		Qty:  req.Qty,
	}

	if err := s.itemRepo.RecordUsage(s.db, itemID, usage); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		if errors.Is(err, repositories.ErrInsufficientStock) {
			return nil, ErrInsufficientStock
		}
		return nil, fmt.Errorf("failed to record usage: %w", err)
	}
	return s.getItem(itemID)
}

// AdjustQuantity applies a signed correction, clamped at zero stock. No
// history record is written.
func (s *itemService) AdjustQuantity(itemID string, delta int) (*models.Item, error) {
	if err := s.itemRepo.AdjustQuantity(s.db, itemID, delta); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to adjust quantity: %w", err)
	}
	return s.getItem(itemID)
}

func (s *itemService) getItem(itemID string) (*models.Item, error) {
	item, err := s.itemRepo.GetItemByID(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item by ID: %w", err)
	}
	return item, nil
}
