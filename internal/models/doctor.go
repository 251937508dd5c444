package models

import "time"

// Doctor represents the ward doctor roster (dokter).
// Rooms and history reference doctors by name string only, never by id.
type Doctor struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Nama      string    `gorm:"size:100;not null" json:"nama"`
	Spesialis *string   `gorm:"size:100" json:"spesialis"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updatedAt"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "dokter"
}
