package repository

import (
	"errors"

	"sipanuri-backend/internal/apperrors"
	"sipanuri-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LoanRepository struct {
	db *gorm.DB
}

func NewLoanRepo(db *gorm.DB) *LoanRepository {
	return &LoanRepository{db: db}
}

// ListLoans retrieves loans, newest first, optionally filtered by status
func (r *LoanRepository) ListLoans(status string) ([]models.Peminjaman, error) {
	q := r.db.Model(&models.Peminjaman{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var loans []models.Peminjaman
	err := q.Order("created_at DESC").Find(&loans).Error
	return loans, err
}

// GetLoanByID retrieves a loan by ID
func (r *LoanRepository) GetLoanByID(id string) (*models.Peminjaman, error) {
	var loan models.Peminjaman
	err := r.db.Where("id = ?", id).First(&loan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Data peminjaman tidak ditemukan")
		}
		return nil, err
	}
	return &loan, nil
}

// CreateLoan creates a new loan record, assigning a generated id
func (r *LoanRepository) CreateLoan(loan *models.Peminjaman) error {
	if loan.ID == "" {
		loan.ID = uuid.NewString()
	}
	return r.db.Create(loan).Error
}

// UpdateLoan updates an existing loan record
func (r *LoanRepository) UpdateLoan(loan *models.Peminjaman) error {
	return r.db.Save(loan).Error
}

// DeleteLoan removes a loan record by ID
func (r *LoanRepository) DeleteLoan(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Peminjaman{}).Error
}

// CountActiveLoansByAset counts loans still in Dipinjam status that reference
// the given asset. Used by the asset delete guard.
func (r *LoanRepository) CountActiveLoansByAset(asetID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Peminjaman{}).
		Where("aset_id = ? AND status = ?", asetID, models.StatusDipinjam).
		Count(&count).Error
	return count, err
}
