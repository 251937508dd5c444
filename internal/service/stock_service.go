package service

import (
	"sort"
	"strings"

	"sipanuri-backend/internal/apperrors"
	"sipanuri-backend/internal/models"
	"sipanuri-backend/internal/repository"
)

// ConsumableStore is the persistence surface of the stock ledger.
type ConsumableStore interface {
	ListItems(filter repository.BhpFilter) ([]models.BhpAtk, error)
	GetItemByID(id string) (*models.BhpAtk, error)
	GetItemWithHistory(id string, limit int) (*models.BhpAtk, error)
	CreateItemWithInitialStock(item *models.BhpAtk, initial *models.StokHistory) error
	SaveItem(item *models.BhpAtk) error
	ApplyMovement(item *models.BhpAtk, movement *models.StokHistory) error
	DeleteItemWithMovements(id string) error
}

// movementHistoryLimit caps the movement rows returned with a single item.
const movementHistoryLimit = 50

// KondisiStat is a per-condition breakdown row.
type KondisiStat struct {
	Kondisi string `json:"kondisi"`
	Count   int    `json:"count"`
	Jumlah  int    `json:"jumlah"`
}

// KategoriStat is a per-category breakdown row.
type KategoriStat struct {
	Kategori string `json:"kategori"`
	Count    int    `json:"count"`
	Jumlah   int    `json:"jumlah"`
}

// BhpStats summarizes the whole consumable inventory, independent of any
// listing filter.
type BhpStats struct {
	TotalBhp        int            `json:"totalBhp"`
	TotalStokAwal   int            `json:"totalStokAwal"`
	TotalSisaStok   int            `json:"totalSisaStok"`
	TotalStokMasuk  int            `json:"totalStokMasuk"`
	TotalStokKeluar int            `json:"totalStokKeluar"`
	StokRendah      int            `json:"stokRendah"`
	ByKondisi       []KondisiStat  `json:"byKondisi"`
	ByKategori      []KategoriStat `json:"byKategori"`
}

// StockService enforces the consumable stock ledger: quantities move only
// through recorded movements, and every movement appends exactly one history
// row alongside the updated counters.
type StockService struct {
	items ConsumableStore
}

func NewStockService(items ConsumableStore) *StockService {
	return &StockService{items: items}
}

// CreateItemInput carries a new consumable item.
type CreateItemInput struct {
	Nama     string
	Kategori *string
	StokAwal int
	Satuan   *string
	Kondisi  *string
}

// CreateItem creates a consumable item. A positive initial quantity also
// seeds the movement ledger with a "Stok awal" entry.
func (s *StockService) CreateItem(input CreateItemInput) (*models.BhpAtk, error) {
	if strings.TrimSpace(input.Nama) == "" {
		return nil, apperrors.NewValidation("nama", "Nama BHP ATK wajib diisi")
	}

	kondisi := normalize(input.Kondisi)
	if kondisi == nil {
		baik := "Baik"
		kondisi = &baik
	}

	stokAwal := input.StokAwal
	if stokAwal < 0 {
		stokAwal = 0
	}

	item := &models.BhpAtk{
		Nama:     strings.TrimSpace(input.Nama),
		Kategori: normalize(input.Kategori),
		StokAwal: stokAwal,
		SisaStok: stokAwal,
		Satuan:   normalize(input.Satuan),
		Kondisi:  kondisi,
	}

	var initial *models.StokHistory
	if stokAwal > 0 {
		keterangan := "Stok awal"
		initial = &models.StokHistory{
			Jenis:      models.JenisMasuk,
			Jumlah:     stokAwal,
			Keterangan: &keterangan,
		}
	}

	if err := s.items.CreateItemWithInitialStock(item, initial); err != nil {
		return nil, err
	}
	return item, nil
}

// MovementInput carries one stock movement request.
type MovementInput struct {
	BhpID      string
	Jenis      string
	Jumlah     int
	Keterangan *string
	Petugas    *string
}

// RecordMovement applies one inbound or outbound movement. MASUK raises both
// stok_masuk and sisa_stok; KELUAR raises stok_keluar by the full requested
// quantity while sisa_stok is clamped at zero. The counter update and the
// appended movement row are one storage unit.
func (s *StockService) RecordMovement(input MovementInput) (*models.BhpAtk, error) {
	if strings.TrimSpace(input.BhpID) == "" || input.Jenis == "" || input.Jumlah == 0 {
		return nil, apperrors.NewValidation("stockTransaction", "Data transaksi tidak lengkap")
	}
	if input.Jumlah < 0 {
		return nil, apperrors.NewValidation("jumlah", "Jumlah harus lebih dari 0")
	}
	if input.Jenis != models.JenisMasuk && input.Jenis != models.JenisKeluar {
		return nil, apperrors.NewValidation("jenis", "Jenis transaksi tidak valid")
	}

	item, err := s.items.GetItemByID(input.BhpID)
	if err != nil {
		return nil, err
	}

	applyMovement(item, input.Jenis, input.Jumlah)

	movement := &models.StokHistory{
		BhpID:      item.ID,
		Jenis:      input.Jenis,
		Jumlah:     input.Jumlah,
		Keterangan: normalize(input.Keterangan),
		Petugas:    normalize(input.Petugas),
	}

	if err := s.items.ApplyMovement(item, movement); err != nil {
		return nil, err
	}
	return item, nil
}

// applyMovement mutates the item's counters for one movement. The clamp on
// sisa_stok means an over-withdrawal leaves sisa at zero while stok_keluar
// still records the full requested quantity.
func applyMovement(item *models.BhpAtk, jenis string, jumlah int) {
	if jenis == models.JenisMasuk {
		item.StokMasuk += jumlah
		item.SisaStok += jumlah
		return
	}
	item.StokKeluar += jumlah
	item.SisaStok -= jumlah
	if item.SisaStok < 0 {
		item.SisaStok = 0
	}
}

// UpdateMetadataInput patches an item's descriptive fields. Quantities are
// never touched here.
type UpdateMetadataInput struct {
	ID       string
	Nama     *string
	Kategori *string
	Satuan   *string
	Kondisi  *string
}

// UpdateMetadata updates name, category, unit and condition; stock counters
// are only mutable through RecordMovement.
func (s *StockService) UpdateMetadata(input UpdateMetadataInput) (*models.BhpAtk, error) {
	if strings.TrimSpace(input.ID) == "" {
		return nil, apperrors.NewValidation("id", "ID wajib diisi")
	}

	item, err := s.items.GetItemByID(input.ID)
	if err != nil {
		return nil, err
	}

	if nama := normalize(input.Nama); nama != nil {
		item.Nama = *nama
	}
	if input.Kategori != nil {
		item.Kategori = normalize(input.Kategori)
	}
	if input.Satuan != nil {
		item.Satuan = normalize(input.Satuan)
	}
	if kondisi := normalize(input.Kondisi); kondisi != nil {
		item.Kondisi = kondisi
	}

	if err := s.items.SaveItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes an item and its entire movement history
func (s *StockService) DeleteItem(id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidation("id", "ID wajib diisi")
	}
	if _, err := s.items.GetItemByID(id); err != nil {
		return err
	}
	return s.items.DeleteItemWithMovements(id)
}

// GetItem retrieves a single item, optionally with its recent movements
func (s *StockService) GetItem(id string, withHistory bool) (*models.BhpAtk, error) {
	if withHistory {
		return s.items.GetItemWithHistory(id, movementHistoryLimit)
	}
	return s.items.GetItemByID(id)
}

// ListItems retrieves filtered items plus inventory-wide statistics
func (s *StockService) ListItems(filter repository.BhpFilter) ([]models.BhpAtk, *BhpStats, error) {
	items, err := s.items.ListItems(filter)
	if err != nil {
		return nil, nil, err
	}

	// Stats always cover the whole inventory, not just the filtered view
	all := items
	if !filter.IsZero() {
		all, err = s.items.ListItems(repository.BhpFilter{})
		if err != nil {
			return nil, nil, err
		}
	}

	return items, buildBhpStats(all), nil
}

func buildBhpStats(items []models.BhpAtk) *BhpStats {
	stats := &BhpStats{
		TotalBhp:   len(items),
		ByKondisi:  []KondisiStat{},
		ByKategori: []KategoriStat{},
	}

	kondisiCount := map[string]int{}
	kondisiSum := map[string]int{}
	kategoriCount := map[string]int{}
	kategoriSum := map[string]int{}

	for _, item := range items {
		stats.TotalStokAwal += item.StokAwal
		stats.TotalSisaStok += item.SisaStok
		stats.TotalStokMasuk += item.StokMasuk
		stats.TotalStokKeluar += item.StokKeluar
		if item.SisaStok < models.LowStockThreshold {
			stats.StokRendah++
		}

		kondisi := groupKey(item.Kondisi)
		kondisiCount[kondisi]++
		kondisiSum[kondisi] += item.SisaStok

		kategori := groupKey(item.Kategori)
		kategoriCount[kategori]++
		kategoriSum[kategori] += item.SisaStok
	}

	for _, kondisi := range sortedKeys(kondisiCount) {
		stats.ByKondisi = append(stats.ByKondisi, KondisiStat{
			Kondisi: kondisi,
			Count:   kondisiCount[kondisi],
			Jumlah:  kondisiSum[kondisi],
		})
	}
	for _, kategori := range sortedKeys(kategoriCount) {
		stats.ByKategori = append(stats.ByKategori, KategoriStat{
			Kategori: kategori,
			Count:    kategoriCount[kategori],
			Jumlah:   kategoriSum[kategori],
		})
	}

	return stats
}

// groupKey folds missing category/condition values into a single bucket.
func groupKey(s *string) string {
	if s == nil || *s == "" {
		return "Tidak Diketahui"
	}
	return *s
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
