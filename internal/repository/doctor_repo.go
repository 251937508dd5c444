package repository

import (
	"errors"

	"sipanuri-backend/internal/apperrors"
	"sipanuri-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// ListDoctors retrieves all doctors ordered by name
func (r *DoctorRepository) ListDoctors() ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Order("nama ASC").Find(&doctors).Error
	return doctors, err
}

// GetDoctorByID retrieves a doctor by ID
func (r *DoctorRepository) GetDoctorByID(id string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Dokter tidak ditemukan")
		}
		return nil, err
	}
	return &doctor, nil
}

// CreateDoctor creates a new doctor, assigning a generated id
func (r *DoctorRepository) CreateDoctor(doctor *models.Doctor) error {
	if doctor.ID == "" {
		doctor.ID = uuid.NewString()
	}
	return r.db.Create(doctor).Error
}

// UpdateDoctor updates an existing doctor
func (r *DoctorRepository) UpdateDoctor(doctor *models.Doctor) error {
	return r.db.Save(doctor).Error
}

// DeleteDoctor removes a doctor by ID
func (r *DoctorRepository) DeleteDoctor(id string) error {
	res := r.db.Where("id = ?", id).Delete(&models.Doctor{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("Dokter tidak ditemukan")
	}
	return nil
}
