package service

import (
	"strings"

	"sipanuri-backend/internal/apperrors"
	"sipanuri-backend/internal/models"
)

// DoctorStore is the doctor persistence surface.
type DoctorStore interface {
	ListDoctors() ([]models.Doctor, error)
	GetDoctorByID(id string) (*models.Doctor, error)
	CreateDoctor(doctor *models.Doctor) error
	UpdateDoctor(doctor *models.Doctor) error
	DeleteDoctor(id string) error
}

// DoctorService manages the ward doctor roster. Doctors are referenced from
// rooms and history by name string only, so updates here never rewrite
// historical records.
type DoctorService struct {
	doctors DoctorStore
}

func NewDoctorService(doctors DoctorStore) *DoctorService {
	return &DoctorService{doctors: doctors}
}

// ListDoctors retrieves all doctors ordered by name
func (s *DoctorService) ListDoctors() ([]models.Doctor, error) {
	return s.doctors.ListDoctors()
}

// CreateDoctor creates a new doctor; the name is required
func (s *DoctorService) CreateDoctor(nama string, spesialis *string) (*models.Doctor, error) {
	if strings.TrimSpace(nama) == "" {
		return nil, apperrors.NewValidation("nama", "Nama dokter wajib diisi")
	}

	doctor := &models.Doctor{
		Nama:      strings.TrimSpace(nama),
		Spesialis: normalize(spesialis),
	}
	if err := s.doctors.CreateDoctor(doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

// UpdateDoctor updates a doctor's name and specialty; both id and name are
// required, and the specialty is always overwritten
func (s *DoctorService) UpdateDoctor(id, nama string, spesialis *string) (*models.Doctor, error) {
	if strings.TrimSpace(id) == "" || strings.TrimSpace(nama) == "" {
		return nil, apperrors.NewValidation("id", "ID dan nama wajib diisi")
	}

	doctor, err := s.doctors.GetDoctorByID(id)
	if err != nil {
		return nil, err
	}

	doctor.Nama = strings.TrimSpace(nama)
	doctor.Spesialis = normalize(spesialis)
	if err := s.doctors.UpdateDoctor(doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

// DeleteDoctor removes a doctor from the roster
func (s *DoctorService) DeleteDoctor(id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidation("id", "ID wajib diisi")
	}
	return s.doctors.DeleteDoctor(id)
}
