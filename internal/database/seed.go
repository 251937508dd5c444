package database

import (
	"log"

	"sipanuri-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seed provisions the fixed room set and starter master data. Rooms are the
// fixed pavilion layout (floor 2: 201-210 VIP; floor 3: 301 and 306 VVIP,
// the rest VIP); everything is skipped when the table is already populated.
func Seed(db *gorm.DB) {
	seedRooms(db)
	seedDoctors(db)
	seedConsumables(db)
	seedAssets(db)
}

func seedRooms(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Room{}).Count(&count).Error; err != nil {
		log.Printf("Warning: failed to count rooms: %v", err)
		return
	}
	if count > 0 {
		return
	}

	rooms := make([]models.Room, 0, 20)

	// Lantai 2: 201-210, all VIP
	for _, no := range []string{"201", "202", "203", "204", "205", "206", "207", "208", "209", "210"} {
		rooms = append(rooms, models.Room{NoKamar: no, Tipe: models.RoomTipeVIP, Status: models.RoomStatusKosong})
	}

	// Lantai 3: 301 and 306 VVIP, the rest VIP
	vvip := map[string]bool{"301": true, "306": true}
	for _, no := range []string{"301", "302", "303", "304", "305", "306", "307", "308", "309", "310"} {
		tipe := models.RoomTipeVIP
		if vvip[no] {
			tipe = models.RoomTipeVVIP
		}
		rooms = append(rooms, models.Room{NoKamar: no, Tipe: tipe, Status: models.RoomStatusKosong})
	}

	if err := db.Create(&rooms).Error; err != nil {
		log.Printf("Warning: failed to seed rooms: %v", err)
		return
	}
	log.Printf("Seeded %d rooms (2 VVIP, 18 VIP)", len(rooms))
}

func seedDoctors(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Doctor{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	doctors := []models.Doctor{
		{Nama: "dr. Ahmad Subari, Sp.PD", Spesialis: ptr("Penyakit Dalam")},
		{Nama: "dr. Budi Santoso, Sp.JP", Spesialis: ptr("Jantung")},
		{Nama: "dr. Citra Dewi, Sp.A", Spesialis: ptr("Anak")},
		{Nama: "dr. Dedi Prasetyo, Sp.B", Spesialis: ptr("Bedah")},
		{Nama: "dr. Eva Marina, Sp.OG", Spesialis: ptr("Kandungan")},
	}
	for i := range doctors {
		doctors[i].ID = uuid.NewString()
	}

	if err := db.Create(&doctors).Error; err != nil {
		log.Printf("Warning: failed to seed doctors: %v", err)
		return
	}
	log.Println("Seeded doctors")
}

func seedConsumables(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.BhpAtk{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	items := []models.BhpAtk{
		{Nama: "Kertas A4 80gsm", Kategori: ptr("ATK"), StokAwal: 50, SisaStok: 50, Satuan: ptr("rim"), Kondisi: ptr("Baik")},
		{Nama: "Pulpen Pilot", Kategori: ptr("ATK"), StokAwal: 100, SisaStok: 100, Satuan: ptr("pcs"), Kondisi: ptr("Baik")},
		{Nama: "Sarung Tangan Medis", Kategori: ptr("BHP"), StokAwal: 200, SisaStok: 200, Satuan: ptr("pasang"), Kondisi: ptr("Baik")},
		{Nama: "Masker Medis 3 Ply", Kategori: ptr("BHP"), StokAwal: 500, SisaStok: 500, Satuan: ptr("pcs"), Kondisi: ptr("Baik")},
		{Nama: "Alkohol Swab", Kategori: ptr("BHP"), StokAwal: 300, SisaStok: 300, Satuan: ptr("pcs"), Kondisi: ptr("Baik")},
	}
	for i := range items {
		items[i].ID = uuid.NewString()
	}

	if err := db.Create(&items).Error; err != nil {
		log.Printf("Warning: failed to seed BHP ATK: %v", err)
		return
	}
	log.Println("Seeded BHP ATK")
}

func seedAssets(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Aset{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	assets := []models.Aset{
		{Nama: "Tempat Tidur Elektrik", Kategori: ptr("Furniture"), Jumlah: 20, Lokasi: ptr("Semua Kamar"), Kondisi: ptr("Baik")},
		{Nama: "AC Split 1 PK", Kategori: ptr("Elektronik"), Jumlah: 20, Lokasi: ptr("Semua Kamar"), Kondisi: ptr("Baik")},
		{Nama: "TV LED 32\"", Kategori: ptr("Elektronik"), Jumlah: 10, Lokasi: ptr("VVIP & VIP"), Kondisi: ptr("Baik")},
		{Nama: "Kulkas Mini", Kategori: ptr("Elektronik"), Jumlah: 2, Lokasi: ptr("VVIP"), Kondisi: ptr("Baik")},
		{Nama: "Nebulizer", Kategori: ptr("Medis"), Jumlah: 10, Lokasi: ptr("Ruang Perawatan"), Kondisi: ptr("Baik")},
		{Nama: "Infusion Pump", Kategori: ptr("Medis"), Jumlah: 10, Lokasi: ptr("Ruang Perawatan"), Kondisi: ptr("Baik")},
	}
	for i := range assets {
		assets[i].ID = uuid.NewString()
	}

	if err := db.Create(&assets).Error; err != nil {
		log.Printf("Warning: failed to seed aset: %v", err)
		return
	}
	log.Println("Seeded aset")
}

func ptr(s string) *string {
	return &s
}
