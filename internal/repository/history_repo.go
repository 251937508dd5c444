package repository

import (
	"time"

	"sipanuri-backend/internal/models"

	"gorm.io/gorm"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepo(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// ListRecent retrieves the most recent history entries, newest first
func (r *HistoryRepository) ListRecent(limit int) ([]models.History, error) {
	var entries []models.History
	err := r.db.Order("timestamp DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

// ListBetween retrieves history entries within [start, end] inclusive,
// oldest first
func (r *HistoryRepository) ListBetween(start, end time.Time) ([]models.History, error) {
	var entries []models.History
	err := r.db.Where("timestamp >= ? AND timestamp <= ?", start, end).
		Order("timestamp ASC").
		Find(&entries).Error
	return entries, err
}

// ListAll retrieves the full history ledger, newest first
func (r *HistoryRepository) ListAll() ([]models.History, error) {
	var entries []models.History
	err := r.db.Order("timestamp DESC").Find(&entries).Error
	return entries, err
}
