package service

import (
	"strings"
	"time"

	"sipanuri-backend/internal/apperrors"
	"sipanuri-backend/internal/models"
)

// LoanStore is the asset-loan persistence surface.
type LoanStore interface {
	ListLoans(status string) ([]models.Peminjaman, error)
	GetLoanByID(id string) (*models.Peminjaman, error)
	CreateLoan(loan *models.Peminjaman) error
	UpdateLoan(loan *models.Peminjaman) error
	DeleteLoan(id string) error
}

// AssetGetter resolves the asset a loan references.
type AssetGetter interface {
	GetAssetByID(id string) (*models.Aset, error)
}

// LoanService tracks asset checkouts. Loans are informational: quantity is
// never validated against or reserved from the asset's on-hand count.
type LoanService struct {
	loans  LoanStore
	assets AssetGetter
	now    func() time.Time
}

func NewLoanService(loans LoanStore, assets AssetGetter) *LoanService {
	return &LoanService{
		loans:  loans,
		assets: assets,
		now:    time.Now,
	}
}

// CreateLoanInput carries a loan request.
type CreateLoanInput struct {
	AsetID   string
	NamaAset string
	Jumlah   int
	Peminjam string
	Unit     *string
	Tujuan   *string
	Catatan  *string
}

// CreateLoan records a checkout of an existing asset; new loans always start
// in Dipinjam status with the loan timestamp set to now
func (s *LoanService) CreateLoan(input CreateLoanInput) (*models.Peminjaman, error) {
	if strings.TrimSpace(input.AsetID) == "" ||
		strings.TrimSpace(input.NamaAset) == "" ||
		strings.TrimSpace(input.Peminjam) == "" {
		return nil, apperrors.NewValidation("peminjaman", "Data tidak lengkap. Aset dan peminjam wajib diisi.")
	}

	if _, err := s.assets.GetAssetByID(input.AsetID); err != nil {
		return nil, err
	}

	jumlah := input.Jumlah
	if jumlah <= 0 {
		jumlah = 1
	}

	loan := &models.Peminjaman{
		AsetID:        input.AsetID,
		NamaAset:      strings.TrimSpace(input.NamaAset),
		Jumlah:        jumlah,
		Peminjam:      strings.TrimSpace(input.Peminjam),
		Unit:          normalize(input.Unit),
		Tujuan:        normalize(input.Tujuan),
		Catatan:       normalize(input.Catatan),
		TanggalPinjam: s.now(),
		Status:        models.StatusDipinjam,
	}
	if err := s.loans.CreateLoan(loan); err != nil {
		return nil, err
	}
	return loan, nil
}

// UpdateLoanInput patches a loan; nil fields are left unchanged.
type UpdateLoanInput struct {
	ID       string
	AsetID   *string
	NamaAset *string
	Jumlah   *int
	Peminjam *string
	Unit     *string
	Tujuan   *string
	Status   *string
	Catatan  *string
}

// UpdateLoan patches a loan record. Moving to Dikembalikan stamps the return
// time; moving back to Dipinjam clears it; an unchanged status leaves the
// return time untouched.
func (s *LoanService) UpdateLoan(input UpdateLoanInput) (*models.Peminjaman, error) {
	if strings.TrimSpace(input.ID) == "" {
		return nil, apperrors.NewValidation("id", "ID wajib diisi")
	}

	loan, err := s.loans.GetLoanByID(input.ID)
	if err != nil {
		return nil, err
	}

	if asetID := normalize(input.AsetID); asetID != nil {
		loan.AsetID = *asetID
	}
	if namaAset := normalize(input.NamaAset); namaAset != nil {
		loan.NamaAset = *namaAset
	}
	if input.Jumlah != nil {
		loan.Jumlah = *input.Jumlah
	}
	if peminjam := normalize(input.Peminjam); peminjam != nil {
		loan.Peminjam = *peminjam
	}
	if input.Unit != nil {
		loan.Unit = normalize(input.Unit)
	}
	if input.Tujuan != nil {
		loan.Tujuan = normalize(input.Tujuan)
	}
	if input.Catatan != nil {
		loan.Catatan = normalize(input.Catatan)
	}

	if input.Status != nil && *input.Status != "" {
		newStatus := *input.Status
		if newStatus == models.StatusDikembalikan && loan.Status != models.StatusDikembalikan {
			now := s.now()
			loan.TanggalKembali = &now
		}
		if newStatus == models.StatusDipinjam && loan.Status == models.StatusDikembalikan {
			loan.TanggalKembali = nil
		}
		loan.Status = newStatus
	}

	if err := s.loans.UpdateLoan(loan); err != nil {
		return nil, err
	}
	return loan, nil
}

// DeleteLoan removes a loan record
func (s *LoanService) DeleteLoan(id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidation("id", "ID wajib diisi")
	}
	if _, err := s.loans.GetLoanByID(id); err != nil {
		return err
	}
	return s.loans.DeleteLoan(id)
}

// GetLoan retrieves a single loan by ID
func (s *LoanService) GetLoan(id string) (*models.Peminjaman, error) {
	return s.loans.GetLoanByID(id)
}

// ListLoans retrieves loans, optionally filtered by status
func (s *LoanService) ListLoans(status string) ([]models.Peminjaman, error) {
	return s.loans.ListLoans(status)
}
