package models

import "time"

// Loan status values
const (
	StatusDipinjam     = "Dipinjam"
	StatusDikembalikan = "Dikembalikan"
)

// Aset represents a fixed asset of the pavilion (furniture, electronics,
// medical equipment). Deletion is blocked while active loans reference it.
type Aset struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Nama      string    `gorm:"size:150;not null" json:"nama"`
	Kategori  *string   `gorm:"size:50" json:"kategori"`
	Jumlah    int       `gorm:"not null;default:0" json:"jumlah"`
	Lokasi    *string   `gorm:"size:150" json:"lokasi"`
	Kondisi   *string   `gorm:"size:50" json:"kondisi"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updatedAt"`
}

// TableName specifies the table name for Aset model
func (Aset) TableName() string {
	return "aset"
}

// Peminjaman represents an asset loan record. NamaAset is a denormalized
// snapshot taken at loan time; loan tracking is informational only and never
// reserves quantity against the asset's on-hand count.
type Peminjaman struct {
	ID             string     `gorm:"type:char(36);primaryKey" json:"id"`
	AsetID         string     `gorm:"type:char(36);index;not null;column:aset_id" json:"asetId"`
	NamaAset       string     `gorm:"size:150;not null;column:nama_aset" json:"namaAset"`
	Jumlah         int        `gorm:"not null;default:1" json:"jumlah"`
	Peminjam       string     `gorm:"size:100;not null" json:"peminjam"`
	Unit           *string    `gorm:"size:100" json:"unit"`
	Tujuan         *string    `gorm:"size:255" json:"tujuan"`
	TanggalPinjam  time.Time  `gorm:"column:tanggal_pinjam;default:CURRENT_TIMESTAMP" json:"tanggalPinjam"`
	TanggalKembali *time.Time `gorm:"column:tanggal_kembali" json:"tanggalKembali"`
	Status         string     `gorm:"size:20;not null;default:'Dipinjam'" json:"status"`
	Catatan        *string    `gorm:"size:255" json:"catatan"`
	CreatedAt      time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt      time.Time  `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updatedAt"`
}

// TableName specifies the table name for Peminjaman model
func (Peminjaman) TableName() string {
	return "peminjaman"
}
