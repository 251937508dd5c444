package repository

import (
	"errors"

	"sipanuri-backend/internal/apperrors"
	"sipanuri-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BhpFilter narrows consumable item listings. Search matches the item name
// case-insensitively as a substring.
type BhpFilter struct {
	Kategori string
	Kondisi  string
	Search   string
}

// IsZero reports whether the filter selects everything.
func (f BhpFilter) IsZero() bool {
	return f.Kategori == "" && f.Kondisi == "" && f.Search == ""
}

type ConsumableRepository struct {
	db *gorm.DB
}

func NewConsumableRepo(db *gorm.DB) *ConsumableRepository {
	return &ConsumableRepository{db: db}
}

// ListItems retrieves consumable items matching the filter, ordered by name
func (r *ConsumableRepository) ListItems(filter BhpFilter) ([]models.BhpAtk, error) {
	q := r.db.Model(&models.BhpAtk{})
	if filter.Kategori != "" {
		q = q.Where("kategori = ?", filter.Kategori)
	}
	if filter.Kondisi != "" {
		q = q.Where("kondisi = ?", filter.Kondisi)
	}
	if filter.Search != "" {
		q = q.Where("LOWER(nama) LIKE ?", "%"+likePattern(filter.Search)+"%")
	}

	var items []models.BhpAtk
	err := q.Order("nama ASC").Find(&items).Error
	return items, err
}

// GetItemByID retrieves a consumable item by ID
func (r *ConsumableRepository) GetItemByID(id string) (*models.BhpAtk, error) {
	var item models.BhpAtk
	err := r.db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("BHP ATK tidak ditemukan")
		}
		return nil, err
	}
	return &item, nil
}

// GetItemWithHistory retrieves an item with its most recent stock movements
// preloaded, newest first
func (r *ConsumableRepository) GetItemWithHistory(id string, limit int) (*models.BhpAtk, error) {
	var item models.BhpAtk
	err := r.db.Preload("StokHistory", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("tanggal DESC").Limit(limit)
	}).Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("BHP ATK tidak ditemukan")
		}
		return nil, err
	}
	return &item, nil
}

// CreateItemWithInitialStock creates a consumable item and, when initial is
// non-nil, its synthesized "Stok awal" movement in one transaction
func (r *ConsumableRepository) CreateItemWithInitialStock(item *models.BhpAtk, initial *models.StokHistory) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		if initial != nil {
			initial.ID = uuid.NewString()
			initial.BhpID = item.ID
			if err := tx.Create(initial).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// SaveItem persists metadata changes to an existing item
func (r *ConsumableRepository) SaveItem(item *models.BhpAtk) error {
	return r.db.Save(item).Error
}

// ApplyMovement persists the item's updated stock counters and appends the
// movement row in one transaction. The pair is the ledger unit: neither side
// is ever visible without the other.
func (r *ConsumableRepository) ApplyMovement(item *models.BhpAtk, movement *models.StokHistory) error {
	if movement.ID == "" {
		movement.ID = uuid.NewString()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(item).Error; err != nil {
			return err
		}
		return tx.Create(movement).Error
	})
}

// DeleteItemWithMovements removes all of the item's movement rows and then
// the item itself in one transaction
func (r *ConsumableRepository) DeleteItemWithMovements(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bhp_id = ?", id).Delete(&models.StokHistory{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.BhpAtk{}).Error
	})
}

// ListAllMovements retrieves every stock movement, newest first
func (r *ConsumableRepository) ListAllMovements() ([]models.StokHistory, error) {
	var movements []models.StokHistory
	err := r.db.Order("tanggal DESC").Find(&movements).Error
	return movements, err
}
