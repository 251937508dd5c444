package service

import (
	"errors"
	"sort"
	"testing"
	"time"

	"sipanuri-backend/internal/apperrors"
	"sipanuri-backend/internal/models"
)

// mockRoomStore keeps rooms in memory and records every history row handed
// to SaveWithHistory, mimicking the transactional room+history write.
type mockRoomStore struct {
	rooms   map[string]models.Room
	history []models.History
}

func newMockRoomStore(rooms ...models.Room) *mockRoomStore {
	m := &mockRoomStore{rooms: map[string]models.Room{}}
	for _, room := range rooms {
		m.rooms[room.NoKamar] = room
	}
	return m
}

func (m *mockRoomStore) GetAllRooms() ([]models.Room, error) {
	out := make([]models.Room, 0, len(m.rooms))
	for _, room := range m.rooms {
		out = append(out, room)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NoKamar < out[j].NoKamar })
	return out, nil
}

func (m *mockRoomStore) GetRoomByNoKamar(noKamar string) (*models.Room, error) {
	room, ok := m.rooms[noKamar]
	if !ok {
		return nil, apperrors.NewNotFound("Kamar tidak ditemukan")
	}
	found := room
	return &found, nil
}

func (m *mockRoomStore) SaveWithHistory(room *models.Room, entry *models.History) error {
	m.rooms[room.NoKamar] = *room
	if entry != nil {
		m.history = append(m.history, *entry)
	}
	return nil
}

type mockHistoryLedger struct {
	entries []models.History
}

func (m *mockHistoryLedger) ListRecent(limit int) ([]models.History, error) {
	out := make([]models.History, len(m.entries))
	copy(out, m.entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockHistoryLedger) ListBetween(start, end time.Time) ([]models.History, error) {
	var out []models.History
	for _, e := range m.entries {
		if !e.Timestamp.Before(start) && !e.Timestamp.After(end) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (m *mockHistoryLedger) ListAll() ([]models.History, error) {
	out := make([]models.History, len(m.entries))
	copy(out, m.entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func strptr(s string) *string {
	return &s
}

func fixedTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time: %v", err)
	}
	return ts
}

func TestSetRoomStateAdmissionAndDischargeRoundTrip(t *testing.T) {
	store := newMockRoomStore(models.Room{NoKamar: "301", Tipe: models.RoomTipeVVIP, Status: models.RoomStatusKosong})
	svc := NewOccupancyService(store, &mockHistoryLedger{})

	admitAt := fixedTime(t, "2026-08-01T10:00:00Z")
	svc.now = func() time.Time { return admitAt }

	room, err := svc.SetRoomState(SetRoomStateInput{
		NoKamar:  "301",
		Status:   models.RoomStatusTerisi,
		Pasien:   strptr("Jane Doe"),
		Dokter:   strptr("dr. Budi Santoso, Sp.JP"),
		Diagnosa: strptr("Demam"),
	})
	if err != nil {
		t.Fatalf("admit: %v", err)
	}
	if room.Status != models.RoomStatusTerisi {
		t.Errorf("status = %q, want Terisi", room.Status)
	}
	if room.TanggalMasuk == nil || !room.TanggalMasuk.Equal(admitAt) {
		t.Errorf("tanggalMasuk = %v, want %v", room.TanggalMasuk, admitAt)
	}
	if len(store.history) != 1 {
		t.Fatalf("history rows = %d, want 1", len(store.history))
	}
	if store.history[0].Aksi != models.AksiMasuk {
		t.Errorf("aksi = %q, want MASUK", store.history[0].Aksi)
	}

	// Discharge two days later
	dischargeAt := admitAt.Add(48 * time.Hour)
	svc.now = func() time.Time { return dischargeAt }

	room, err = svc.SetRoomState(SetRoomStateInput{NoKamar: "301", Status: models.RoomStatusKosong})
	if err != nil {
		t.Fatalf("discharge: %v", err)
	}
	if room.Status != models.RoomStatusKosong {
		t.Errorf("status = %q, want Kosong", room.Status)
	}
	if room.Pasien != nil || room.Dokter != nil || room.Diagnosa != nil || room.TanggalMasuk != nil {
		t.Errorf("patient fields not cleared: %+v", room)
	}
	if len(store.history) != 2 {
		t.Fatalf("history rows = %d, want 2", len(store.history))
	}

	keluar := store.history[1]
	if keluar.Aksi != models.AksiKeluar {
		t.Errorf("aksi = %q, want KELUAR", keluar.Aksi)
	}
	if keluar.Pasien == nil || *keluar.Pasien != "Jane Doe" {
		t.Errorf("pasien snapshot = %v, want Jane Doe", keluar.Pasien)
	}
	if keluar.LamaInap == nil || *keluar.LamaInap != "2 hari" {
		t.Errorf("lamaInap = %v, want 2 hari", keluar.LamaInap)
	}
	if keluar.TglKeluar == nil || !keluar.TglKeluar.Equal(dischargeAt) {
		t.Errorf("tglKeluar = %v, want %v", keluar.TglKeluar, dischargeAt)
	}
}

func TestSetRoomStateReAdmissionAppendsNoHistory(t *testing.T) {
	store := newMockRoomStore(models.Room{NoKamar: "205", Tipe: models.RoomTipeVIP, Status: models.RoomStatusKosong})
	svc := NewOccupancyService(store, &mockHistoryLedger{})

	first := fixedTime(t, "2026-08-10T08:00:00Z")
	svc.now = func() time.Time { return first }
	if _, err := svc.SetRoomState(SetRoomStateInput{
		NoKamar: "205", Status: models.RoomStatusTerisi, Pasien: strptr("Andi"),
	}); err != nil {
		t.Fatalf("first admit: %v", err)
	}

	// Overwriting an occupied room updates fields only
	second := first.Add(3 * time.Hour)
	svc.now = func() time.Time { return second }
	room, err := svc.SetRoomState(SetRoomStateInput{
		NoKamar: "205", Status: models.RoomStatusTerisi, Pasien: strptr("Andi"), Diagnosa: strptr("Tifus"),
	})
	if err != nil {
		t.Fatalf("second admit: %v", err)
	}

	if len(store.history) != 1 {
		t.Errorf("history rows = %d, want 1", len(store.history))
	}
	if room.Diagnosa == nil || *room.Diagnosa != "Tifus" {
		t.Errorf("diagnosa = %v, want Tifus", room.Diagnosa)
	}
	if room.TanggalMasuk == nil || !room.TanggalMasuk.Equal(first) {
		t.Errorf("tanggalMasuk = %v, want original admission time %v", room.TanggalMasuk, first)
	}
}

func TestSetRoomStateFreshAdmissionWithoutPatientSkipsHistory(t *testing.T) {
	store := newMockRoomStore(models.Room{NoKamar: "202", Tipe: models.RoomTipeVIP, Status: models.RoomStatusKosong})
	svc := NewOccupancyService(store, &mockHistoryLedger{})

	room, err := svc.SetRoomState(SetRoomStateInput{NoKamar: "202", Status: models.RoomStatusTerisi})
	if err != nil {
		t.Fatalf("admit: %v", err)
	}
	if room.Status != models.RoomStatusTerisi {
		t.Errorf("status = %q, want Terisi", room.Status)
	}
	if len(store.history) != 0 {
		t.Errorf("history rows = %d, want 0 when no patient name supplied", len(store.history))
	}
}

func TestSetRoomStateDischargeWithoutAdmissionTimestamp(t *testing.T) {
	store := newMockRoomStore(models.Room{
		NoKamar: "207",
		Tipe:    models.RoomTipeVIP,
		Status:  models.RoomStatusTerisi,
		Pasien:  strptr("Budi"),
	})
	svc := NewOccupancyService(store, &mockHistoryLedger{})

	if _, err := svc.SetRoomState(SetRoomStateInput{NoKamar: "207", Status: models.RoomStatusKosong}); err != nil {
		t.Fatalf("discharge: %v", err)
	}
	if len(store.history) != 1 {
		t.Fatalf("history rows = %d, want 1", len(store.history))
	}
	if lama := store.history[0].LamaInap; lama == nil || *lama != "-" {
		t.Errorf("lamaInap = %v, want \"-\"", lama)
	}
}

func TestSetRoomStateOtherStatusOverwritesWithoutHistory(t *testing.T) {
	admitAt := fixedTime(t, "2026-08-15T09:00:00Z")
	store := newMockRoomStore(models.Room{
		NoKamar:      "310",
		Tipe:         models.RoomTipeVIP,
		Status:       models.RoomStatusTerisi,
		Pasien:       strptr("Citra"),
		TanggalMasuk: &admitAt,
	})
	svc := NewOccupancyService(store, &mockHistoryLedger{})

	room, err := svc.SetRoomState(SetRoomStateInput{NoKamar: "310", Status: "Perbaikan"})
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if room.Status != "Perbaikan" {
		t.Errorf("status = %q, want Perbaikan", room.Status)
	}
	if len(store.history) != 0 {
		t.Errorf("history rows = %d, want 0", len(store.history))
	}
	if room.TanggalMasuk == nil {
		t.Errorf("tanggalMasuk cleared; the direct-overwrite path must leave it untouched")
	}
}

func TestSetRoomStateValidation(t *testing.T) {
	svc := NewOccupancyService(newMockRoomStore(), &mockHistoryLedger{})

	_, err := svc.SetRoomState(SetRoomStateInput{NoKamar: "  ", Status: models.RoomStatusTerisi})
	var validation *apperrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("err = %v, want ValidationError", err)
	}

	_, err = svc.SetRoomState(SetRoomStateInput{NoKamar: "999", Status: models.RoomStatusTerisi})
	var notFound *apperrors.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestSetRoomStateBlankPatientStoredAsNull(t *testing.T) {
	store := newMockRoomStore(models.Room{NoKamar: "204", Tipe: models.RoomTipeVIP, Status: models.RoomStatusKosong})
	svc := NewOccupancyService(store, &mockHistoryLedger{})

	room, err := svc.SetRoomState(SetRoomStateInput{
		NoKamar: "204", Status: models.RoomStatusTerisi, Pasien: strptr("   "),
	})
	if err != nil {
		t.Fatalf("admit: %v", err)
	}
	if room.Pasien != nil {
		t.Errorf("pasien = %v, want nil for blank input", room.Pasien)
	}
	if len(store.history) != 0 {
		t.Errorf("history rows = %d, want 0: blank patient is not an admission", len(store.history))
	}
}
