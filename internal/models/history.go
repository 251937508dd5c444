package models

import "time"

// History actions
const (
	AksiMasuk  = "MASUK"
	AksiKeluar = "KELUAR"
)

// History represents the admission history ledger (append-only).
// One row is written per admission (MASUK) and one per discharge (KELUAR);
// rows are never updated or deleted. Patient and doctor are stored as plain
// string snapshots, so renaming a doctor never rewrites history.
type History struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Timestamp time.Time  `gorm:"index;default:CURRENT_TIMESTAMP" json:"timestamp"`
	Aksi      string     `gorm:"size:10;not null" json:"aksi"`
	NoKamar   string     `gorm:"size:10;not null;column:no_kamar" json:"noKamar"`
	Pasien    *string    `gorm:"size:100" json:"pasien"`
	Dokter    *string    `gorm:"size:100" json:"dokter"`
	Diagnosa  *string    `gorm:"size:255" json:"diagnosa"`
	TglMasuk  *time.Time `gorm:"column:tgl_masuk" json:"tglMasuk"`
	TglKeluar *time.Time `gorm:"column:tgl_keluar" json:"tglKeluar"`
	LamaInap  *string    `gorm:"size:20;column:lama_inap" json:"lamaInap"`
}

// TableName specifies the table name for History model
func (History) TableName() string {
	return "history"
}
