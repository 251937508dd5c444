package service

import (
	"strings"

	"sipanuri-backend/internal/apperrors"
	"sipanuri-backend/internal/models"
	"sipanuri-backend/internal/repository"
)

// AssetStore is the fixed-asset persistence surface.
type AssetStore interface {
	ListAssets(filter repository.AsetFilter) ([]models.Aset, error)
	GetAssetByID(id string) (*models.Aset, error)
	CreateAsset(asset *models.Aset) error
	UpdateAsset(asset *models.Aset) error
	DeleteAsset(id string) error
}

// ActiveLoanCounter reports how many Dipinjam loans reference an asset.
type ActiveLoanCounter interface {
	CountActiveLoansByAset(asetID string) (int64, error)
}

// AsetStats summarizes the asset inventory.
type AsetStats struct {
	TotalAset  int            `json:"totalAset"`
	TotalUnit  int            `json:"totalUnit"`
	ByKondisi  []KondisiStat  `json:"byKondisi"`
	ByKategori []KategoriStat `json:"byKategori"`
}

// AssetService manages the fixed-asset inventory. Deleting an asset is
// blocked while any loan referencing it is still in Dipinjam status.
type AssetService struct {
	assets AssetStore
	loans  ActiveLoanCounter
}

func NewAssetService(assets AssetStore, loans ActiveLoanCounter) *AssetService {
	return &AssetService{assets: assets, loans: loans}
}

// CreateAssetInput carries a new asset.
type CreateAssetInput struct {
	Nama     string
	Kategori *string
	Jumlah   int
	Lokasi   *string
	Kondisi  *string
}

// CreateAsset creates a new asset; the name is required
func (s *AssetService) CreateAsset(input CreateAssetInput) (*models.Aset, error) {
	if strings.TrimSpace(input.Nama) == "" {
		return nil, apperrors.NewValidation("nama", "Nama aset wajib diisi")
	}

	kondisi := normalize(input.Kondisi)
	if kondisi == nil {
		baik := "Baik"
		kondisi = &baik
	}

	jumlah := input.Jumlah
	if jumlah < 0 {
		jumlah = 0
	}

	asset := &models.Aset{
		Nama:     strings.TrimSpace(input.Nama),
		Kategori: normalize(input.Kategori),
		Jumlah:   jumlah,
		Lokasi:   normalize(input.Lokasi),
		Kondisi:  kondisi,
	}
	if err := s.assets.CreateAsset(asset); err != nil {
		return nil, err
	}
	return asset, nil
}

// UpdateAssetInput patches an existing asset; nil fields are left unchanged.
type UpdateAssetInput struct {
	ID       string
	Nama     *string
	Kategori *string
	Jumlah   *int
	Lokasi   *string
	Kondisi  *string
}

// UpdateAsset patches an asset's fields
func (s *AssetService) UpdateAsset(input UpdateAssetInput) (*models.Aset, error) {
	if strings.TrimSpace(input.ID) == "" {
		return nil, apperrors.NewValidation("id", "ID wajib diisi")
	}

	asset, err := s.assets.GetAssetByID(input.ID)
	if err != nil {
		return nil, err
	}

	if nama := normalize(input.Nama); nama != nil {
		asset.Nama = *nama
	}
	if input.Kategori != nil {
		asset.Kategori = normalize(input.Kategori)
	}
	if input.Jumlah != nil {
		asset.Jumlah = *input.Jumlah
	}
	if input.Lokasi != nil {
		asset.Lokasi = normalize(input.Lokasi)
	}
	if kondisi := normalize(input.Kondisi); kondisi != nil {
		asset.Kondisi = kondisi
	}

	if err := s.assets.UpdateAsset(asset); err != nil {
		return nil, err
	}
	return asset, nil
}

// DeleteAsset removes an asset unless loans in Dipinjam status still
// reference it; the error names the number of blocking loans
func (s *AssetService) DeleteAsset(id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidation("id", "ID wajib diisi")
	}

	if _, err := s.assets.GetAssetByID(id); err != nil {
		return err
	}

	active, err := s.loans.CountActiveLoansByAset(id)
	if err != nil {
		return err
	}
	if active > 0 {
		return apperrors.NewBusinessRule(
			"Aset tidak dapat dihapus karena sedang dipinjam (%d peminjaman aktif)", active)
	}

	return s.assets.DeleteAsset(id)
}

// GetAsset retrieves a single asset by ID
func (s *AssetService) GetAsset(id string) (*models.Aset, error) {
	return s.assets.GetAssetByID(id)
}

// ListAssets retrieves filtered assets plus inventory-wide statistics
func (s *AssetService) ListAssets(filter repository.AsetFilter) ([]models.Aset, *AsetStats, error) {
	assets, err := s.assets.ListAssets(filter)
	if err != nil {
		return nil, nil, err
	}

	all := assets
	if !filter.IsZero() {
		all, err = s.assets.ListAssets(repository.AsetFilter{})
		if err != nil {
			return nil, nil, err
		}
	}

	return assets, buildAsetStats(all), nil
}

func buildAsetStats(assets []models.Aset) *AsetStats {
	stats := &AsetStats{
		TotalAset:  len(assets),
		ByKondisi:  []KondisiStat{},
		ByKategori: []KategoriStat{},
	}

	kondisiCount := map[string]int{}
	kondisiSum := map[string]int{}
	kategoriCount := map[string]int{}
	kategoriSum := map[string]int{}

	for _, asset := range assets {
		stats.TotalUnit += asset.Jumlah

		kondisi := groupKey(asset.Kondisi)
		kondisiCount[kondisi]++
		kondisiSum[kondisi] += asset.Jumlah

		kategori := groupKey(asset.Kategori)
		kategoriCount[kategori]++
		kategoriSum[kategori] += asset.Jumlah
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
