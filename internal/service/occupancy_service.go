package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"sipanuri-backend/internal/apperrors"
	"sipanuri-backend/internal/models"
)

// RoomStore is the room persistence surface the occupancy ledger needs.
type RoomStore interface {
	GetAllRooms() ([]models.Room, error)
	GetRoomByNoKamar(noKamar string) (*models.Room, error)
	SaveWithHistory(room *models.Room, entry *models.History) error
}

// HistoryFeed lists recent admission history entries.
type HistoryFeed interface {
	ListRecent(limit int) ([]models.History, error)
}

// OccupancyService enforces the room state machine. Every transition that
// requires a history row hands the mutated room and the row to the store as
// one unit; at most one history row is appended per call.
type OccupancyService struct {
	rooms   RoomStore
	history HistoryFeed
	now     func() time.Time
}

func NewOccupancyService(rooms RoomStore, history HistoryFeed) *OccupancyService {
	return &OccupancyService{
		rooms:   rooms,
		history: history,
		now:     time.Now,
	}
}

// SetRoomStateInput carries one requested room transition.
type SetRoomStateInput struct {
	NoKamar  string
	Status   string
	Pasien   *string
	Dokter   *string
	Diagnosa *string
}

// SetRoomState applies a room transition:
//   - Terisi → Kosong discharges the occupant, appending a KELUAR entry with
//     the pre-transition fields and the computed length of stay;
//   - target Terisi overwrites occupant fields, stamps tanggal masuk on a
//     fresh admission, and appends a MASUK entry when a patient name was
//     supplied for that fresh admission;
//   - anything else overwrites fields directly with no history row.
func (s *OccupancyService) SetRoomState(input SetRoomStateInput) (*models.Room, error) {
	if strings.TrimSpace(input.NoKamar) == "" {
		return nil, apperrors.NewValidation("noKamar", "Nomor kamar wajib diisi")
	}

	room, err := s.rooms.GetRoomByNoKamar(input.NoKamar)
	if err != nil {
		return nil, err
	}

	now := s.now()
	pasien := normalize(input.Pasien)
	dokter := normalize(input.Dokter)
	diagnosa := normalize(input.Diagnosa)

	switch {
	case input.Status == models.RoomStatusKosong && room.Status == models.RoomStatusTerisi:
		// Discharge: history first captures the pre-transition occupant
		lamaInap := "-"
		if room.TanggalMasuk != nil {
			days := int(math.Ceil(now.Sub(*room.TanggalMasuk).Hours() / 24))
			lamaInap = fmt.Sprintf("%d hari", days)
		}
		entry := &models.History{
			Timestamp: now,
			Aksi:      models.AksiKeluar,
			NoKamar:   room.NoKamar,
			Pasien:    room.Pasien,
			Dokter:    room.Dokter,
			Diagnosa:  room.Diagnosa,
			TglMasuk:  room.TanggalMasuk,
			TglKeluar: &now,
			LamaInap:  &lamaInap,
		}

		room.Status = models.RoomStatusKosong
		room.Pasien = nil
		room.Dokter = nil
		room.Diagnosa = nil
		room.TanggalMasuk = nil

		if err := s.rooms.SaveWithHistory(room, entry); err != nil {
			return nil, err
		}
		return room, nil

	case input.Status == models.RoomStatusTerisi:
		freshAdmission := room.Status != models.RoomStatusTerisi
		if freshAdmission {
			room.TanggalMasuk = &now
		}
		room.Status = models.RoomStatusTerisi
		room.Pasien = pasien
		room.Dokter = dokter
		room.Diagnosa = diagnosa

		// Re-occupying an already-occupied room only updates fields
		var entry *models.History
		if freshAdmission && pasien != nil {
			entry = &models.History{
				Timestamp: now,
				Aksi:      models.AksiMasuk,
				NoKamar:   room.NoKamar,
				Pasien:    pasien,
				Dokter:    dokter,
				Diagnosa:  diagnosa,
				TglMasuk:  &now,
			}
		}

		if err := s.rooms.SaveWithHistory(room, entry); err != nil {
			return nil, err
		}
		return room, nil

	default:
		// Direct overwrite, no history; tanggal masuk is left untouched
		room.Status = input.Status
		room.Pasien = pasien
		room.Dokter = dokter
		room.Diagnosa = diagnosa

		if err := s.rooms.SaveWithHistory(room, nil); err != nil {
			return nil, err
		}
		return room, nil
	}
}

// GetRooms retrieves all rooms ordered by room number
func (s *OccupancyService) GetRooms() ([]models.Room, error) {
	return s.rooms.GetAllRooms()
}

// RecentHistory retrieves the newest history entries for the dashboard feed
func (s *OccupancyService) RecentHistory(limit int) ([]models.History, error) {
	return s.history.ListRecent(limit)
}

// normalize maps nil and blank strings to nil so empty form fields are
// stored as NULL, matching the occupancy invariant.
func normalize(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
