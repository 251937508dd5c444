package models

import "time"

// Stock movement directions (jenis)
const (
	JenisMasuk  = "MASUK"
	JenisKeluar = "KELUAR"
)

// LowStockThreshold marks items whose remaining stock counts as "stok rendah".
const LowStockThreshold = 10

// BhpAtk represents a consumable item (bahan habis pakai / alat tulis kantor)
// with its running stock counters. SisaStok is maintained by the stock ledger
// as stok_awal + stok_masuk - stok_keluar, clamped at zero on outbound
// movements; quantities are never mutated outside a movement.
type BhpAtk struct {
	ID         string    `gorm:"type:char(36);primaryKey" json:"id"`
	Nama       string    `gorm:"size:150;not null" json:"nama"`
	Kategori   *string   `gorm:"size:50" json:"kategori"`
	StokAwal   int       `gorm:"not null;default:0;column:stok_awal" json:"stokAwal"`
	StokMasuk  int       `gorm:"not null;default:0;column:stok_masuk" json:"stokMasuk"`
	StokKeluar int       `gorm:"not null;default:0;column:stok_keluar" json:"stokKeluar"`
	SisaStok   int       `gorm:"not null;default:0;column:sisa_stok" json:"sisaStok"`
	Satuan     *string   `gorm:"size:30" json:"satuan"`
	Kondisi    *string   `gorm:"size:50" json:"kondisi"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updatedAt"`

	StokHistory []StokHistory `gorm:"foreignKey:BhpID" json:"stokHistory,omitempty"`
}

// TableName specifies the table name for BhpAtk model
func (BhpAtk) TableName() string {
	return "bhp_atk"
}

// StokHistory represents one stock movement (append-only). Every movement,
// including the synthesized "Stok awal" entry at item creation, produces
// exactly one row. Rows are removed only when the owning item is deleted.
type StokHistory struct {
	ID         string    `gorm:"type:char(36);primaryKey" json:"id"`
	BhpID      string    `gorm:"type:char(36);index;not null;column:bhp_id" json:"bhpId"`
	Jenis      string    `gorm:"size:10;not null" json:"jenis"`
	Jumlah     int       `gorm:"not null" json:"jumlah"`
	Keterangan *string   `gorm:"size:255" json:"keterangan"`
	Tanggal    time.Time `gorm:"index;default:CURRENT_TIMESTAMP" json:"tanggal"`
	Petugas    *string   `gorm:"size:100" json:"petugas"`
}

// TableName specifies the table name for StokHistory model
func (StokHistory) TableName() string {
	return "stok_history"
}
