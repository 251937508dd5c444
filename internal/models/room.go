package models

import "time"

// Room status values as stored and served on the wire
const (
	RoomStatusKosong = "Kosong"
	RoomStatusTerisi = "Terisi"
)

// Room tier values
const (
	RoomTipeVIP  = "VIP"
	RoomTipeVVIP = "VVIP"
)

// Room represents a single pavilion room (kamar) and its current occupant.
// Rooms are provisioned once by the seeder and only ever mutated by the
// occupancy ledger; when Status is Kosong all patient fields are NULL.
type Room struct {
	NoKamar      string     `gorm:"primaryKey;size:10;column:no_kamar" json:"noKamar"`
	Tipe         string     `gorm:"type:enum('VIP','VVIP');default:'VIP'" json:"tipe"`
	Status       string     `gorm:"size:20;not null;default:'Kosong'" json:"status"`
	Pasien       *string    `gorm:"size:100" json:"pasien"`
	Dokter       *string    `gorm:"size:100" json:"dokter"`
	Diagnosa     *string    `gorm:"size:255" json:"diagnosa"`
	TanggalMasuk *time.Time `gorm:"column:tanggal_masuk" json:"tanggalMasuk"`
	CreatedAt    time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updatedAt"`
}

// TableName specifies the table name for Room model
func (Room) TableName() string {
	return "kamar"
}
