package service

import (
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"sipanuri-backend/internal/apperrors"
	"sipanuri-backend/internal/models"
)

type mockLoanStore struct {
	loans  map[string]models.Peminjaman
	nextID int
}

func newMockLoanStore(loans ...models.Peminjaman) *mockLoanStore {
	m := &mockLoanStore{loans: map[string]models.Peminjaman{}}
	for _, loan := range loans {
		m.loans[loan.ID] = loan
	}
	return m
}

func (m *mockLoanStore) ListLoans(status string) ([]models.Peminjaman, error) {
	var out []models.Peminjaman
	for _, loan := range m.loans {
		if status != "" && loan.Status != status {
			continue
		}
		out = append(out, loan)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockLoanStore) GetLoanByID(id string) (*models.Peminjaman, error) {
	loan, ok := m.loans[id]
	if !ok {
		return nil, apperrors.NewNotFound("Data peminjaman tidak ditemukan")
	}
	found := loan
	return &found, nil
}

func (m *mockLoanStore) CreateLoan(loan *models.Peminjaman) error {
	m.nextID++
	loan.ID = fmt.Sprintf("pinjam-%d", m.nextID)
	m.loans[loan.ID] = *loan
	return nil
}

func (m *mockLoanStore) UpdateLoan(loan *models.Peminjaman) error {
	m.loans[loan.ID] = *loan
	return nil
}

func (m *mockLoanStore) DeleteLoan(id string) error {
	delete(m.loans, id)
	return nil
}

func TestCreateLoanStartsDipinjam(t *testing.T) {
	assets := newMockAssetStore(models.Aset{ID: "aset-1", Nama: "Proyektor", Jumlah: 1})
	store := newMockLoanStore()
	svc := NewLoanService(store, assets)

	at := fixedTime(t, "2026-08-20T14:00:00Z")
	svc.now = func() time.Time { return at }

	loan, err := svc.CreateLoan(CreateLoanInput{
		AsetID:   "aset-1",
		NamaAset: "Proyektor",
		Peminjam: "Rina",
		Jumlah:   0,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if loan.Status != models.StatusDipinjam {
		t.Errorf("status = %q, want Dipinjam", loan.Status)
	}
	if !loan.TanggalPinjam.Equal(at) {
		t.Errorf("tanggalPinjam = %v, want %v", loan.TanggalPinjam, at)
	}
	if loan.TanggalKembali != nil {
		t.Errorf("tanggalKembali = %v, want nil on a new loan", loan.TanggalKembali)
	}
	if loan.Jumlah != 1 {
		t.Errorf("jumlah = %d, want floor of 1", loan.Jumlah)
	}
}

func TestCreateLoanQuantityNotCheckedAgainstOnHand(t *testing.T) {
	// The ledger is informational: borrowing more units than the asset has
	// on hand is accepted as-is.
	assets := newMockAssetStore(models.Aset{ID: "aset-1", Nama: "Kursi Roda", Jumlah: 2})
	svc := NewLoanService(newMockLoanStore(), assets)

	loan, err := svc.CreateLoan(CreateLoanInput{
		AsetID: "aset-1", NamaAset: "Kursi Roda", Peminjam: "Dewi", Jumlah: 10,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if loan.Jumlah != 10 {
		t.Errorf("jumlah = %d, want 10 recorded unchecked", loan.Jumlah)
	}
}

func TestCreateLoanValidation(t *testing.T) {
	assets := newMockAssetStore(models.Aset{ID: "aset-1", Nama: "Proyektor"})
	svc := NewLoanService(newMockLoanStore(), assets)

	_, err := svc.CreateLoan(CreateLoanInput{AsetID: "aset-1", NamaAset: "Proyektor"})
	var validation *apperrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("err = %v, want ValidationError for missing peminjam", err)
	}

	_, err = svc.CreateLoan(CreateLoanInput{AsetID: "missing", NamaAset: "X", Peminjam: "Rina"})
	var notFound *apperrors.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want NotFoundError for unknown asset", err)
	}
}

func TestUpdateLoanStatusTransitions(t *testing.T) {
	store := newMockLoanStore(models.Peminjaman{
		ID: "pinjam-1", AsetID: "aset-1", NamaAset: "Proyektor", Peminjam: "Rina",
		Jumlah: 1, Status: models.StatusDipinjam,
	})
	svc := NewLoanService(store, newMockAssetStore())

	returnedAt := fixedTime(t, "2026-08-25T09:30:00Z")
	svc.now = func() time.Time { return returnedAt }

	status := models.StatusDikembalikan
	loan, err := svc.UpdateLoan(UpdateLoanInput{ID: "pinjam-1", Status: &status})
	if err != nil {
		t.Fatalf("return: %v", err)
	}
	if loan.TanggalKembali == nil || !loan.TanggalKembali.Equal(returnedAt) {
		t.Errorf("tanggalKembali = %v, want %v", loan.TanggalKembali, returnedAt)
	}

	// Re-sending Dikembalikan keeps the original return time
	later := returnedAt.Add(2 * time.Hour)
	svc.now = func() time.Time { return later }
	loan, err = svc.UpdateLoan(UpdateLoanInput{ID: "pinjam-1", Status: &status})
	if err != nil {
		t.Fatalf("repeat return: %v", err)
	}
	if loan.TanggalKembali == nil || !loan.TanggalKembali.Equal(returnedAt) {
		t.Errorf("tanggalKembali = %v, want original %v", loan.TanggalKembali, returnedAt)
	}

	// Re-borrowing clears the return time
	status = models.StatusDipinjam
	loan, err = svc.UpdateLoan(UpdateLoanInput{ID: "pinjam-1", Status: &status})
	if err != nil {
		t.Fatalf("re-borrow: %v", err)
	}
	if loan.TanggalKembali != nil {
		t.Errorf("tanggalKembali = %v, want nil after moving back to Dipinjam", loan.TanggalKembali)
	}
}

func TestUpdateLoanPatchLeavesStatusAlone(t *testing.T) {
	returnedAt := fixedTime(t, "2026-08-25T09:30:00Z")
	store := newMockLoanStore(models.Peminjaman{
		ID: "pinjam-1", AsetID: "aset-1", NamaAset: "Proyektor", Peminjam: "Rina",
		Jumlah: 1, Status: models.StatusDikembalikan, TanggalKembali: &returnedAt,
	})
	svc := NewLoanService(store, newMockAssetStore())

	loan, err := svc.UpdateLoan(UpdateLoanInput{ID: "pinjam-1", Catatan: strptr("dipakai rapat")})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if loan.Status != models.StatusDikembalikan {
		t.Errorf("status = %q, want unchanged Dikembalikan", loan.Status)
	}
	if loan.TanggalKembali == nil || !loan.TanggalKembali.Equal(returnedAt) {
		t.Errorf("tanggalKembali = %v, want untouched %v", loan.TanggalKembali, returnedAt)
	}
}

func TestDeleteLoan(t *testing.T) {
	store := newMockLoanStore(models.Peminjaman{ID: "pinjam-1", Status: models.StatusDipinjam})
	svc := NewLoanService(store, newMockAssetStore())

	if err := svc.DeleteLoan("pinjam-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	err := svc.DeleteLoan("pinjam-1")
	var notFound *apperrors.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("err = %v, want NotFoundError on missing loan", err)
	}
}
