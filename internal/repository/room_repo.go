package repository

import (
	"errors"

	"sipanuri-backend/internal/apperrors"
	"sipanuri-backend/internal/models"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepo(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// GetAllRooms retrieves every room ordered by room number
func (r *RoomRepository) GetAllRooms() ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.Order("no_kamar ASC").Find(&rooms).Error
	return rooms, err
}

// GetRoomByNoKamar retrieves a room by its number
func (r *RoomRepository) GetRoomByNoKamar(noKamar string) (*models.Room, error) {
	var room models.Room
	err := r.db.Where("no_kamar = ?", noKamar).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Kamar tidak ditemukan")
		}
		return nil, err
	}
	return &room, nil
}

// SaveWithHistory persists a room mutation and, when entry is non-nil, the
// paired admission history row in a single transaction. Readers never observe
// the room updated without its history entry or vice versa.
func (r *RoomRepository) SaveWithHistory(room *models.Room, entry *models.History) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(room).Error; err != nil {
			return err
		}
		if entry != nil {
			if err := tx.Create(entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
