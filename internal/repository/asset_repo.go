package repository

import (
	"errors"

	"sipanuri-backend/internal/apperrors"
	"sipanuri-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AsetFilter narrows asset listings. Search matches name and location
// case-insensitively as a substring.
type AsetFilter struct {
	Kategori string
	Kondisi  string
	Search   string
}

// IsZero reports whether the filter selects everything.
func (f AsetFilter) IsZero() bool {
	return f.Kategori == "" && f.Kondisi == "" && f.Search == ""
}

type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepo(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// ListAssets retrieves assets matching the filter, ordered by name
func (r *AssetRepository) ListAssets(filter AsetFilter) ([]models.Aset, error) {
	q := r.db.Model(&models.Aset{})
	if filter.Kategori != "" {
		q = q.Where("kategori = ?", filter.Kategori)
	}
	if filter.Kondisi != "" {
		q = q.Where("kondisi = ?", filter.Kondisi)
	}
	if filter.Search != "" {
		pattern := "%" + likePattern(filter.Search) + "%"
		q = q.Where("LOWER(nama) LIKE ? OR LOWER(lokasi) LIKE ?", pattern, pattern)
	}

	var assets []models.Aset
	err := q.Order("nama ASC").Find(&assets).Error
	return assets, err
}

// GetAssetByID retrieves an asset by ID
func (r *AssetRepository) GetAssetByID(id string) (*models.Aset, error) {
	var asset models.Aset
	err := r.db.Where("id = ?", id).First(&asset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Aset tidak ditemukan")
		}
		return nil, err
	}
	return &asset, nil
}

// CreateAsset creates a new asset, assigning a generated id
func (r *AssetRepository) CreateAsset(asset *models.Aset) error {
	if asset.ID == "" {
		asset.ID = uuid.NewString()
	}
	return r.db.Create(asset).Error
}

// UpdateAsset updates an existing asset
func (r *AssetRepository) UpdateAsset(asset *models.Aset) error {
	return r.db.Save(asset).Error
}

// DeleteAsset removes an asset by ID. The active-loan guard lives in the
// service layer; this is the raw delete.
func (r *AssetRepository) DeleteAsset(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Aset{}).Error
}
