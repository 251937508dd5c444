package service

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"sipanuri-backend/internal/apperrors"
	"sipanuri-backend/internal/models"
)

type mockDoctorStore struct {
	doctors map[string]models.Doctor
	nextID  int
}

func newMockDoctorStore(doctors ...models.Doctor) *mockDoctorStore {
	m := &mockDoctorStore{doctors: map[string]models.Doctor{}}
	for _, doctor := range doctors {
		m.doctors[doctor.ID] = doctor
	}
	return m
}

func (m *mockDoctorStore) ListDoctors() ([]models.Doctor, error) {
	out := make([]models.Doctor, 0, len(m.doctors))
	for _, doctor := range m.doctors {
		out = append(out, doctor)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nama < out[j].Nama })
	return out, nil
}

func (m *mockDoctorStore) GetDoctorByID(id string) (*models.Doctor, error) {
	doctor, ok := m.doctors[id]
	if !ok {
		return nil, apperrors.NewNotFound("Dokter tidak ditemukan")
	}
	found := doctor
	return &found, nil
}

func (m *mockDoctorStore) CreateDoctor(doctor *models.Doctor) error {
	if doctor.ID == "" {
		m.nextID++
		doctor.ID = fmt.Sprintf("dokter-%d", m.nextID)
	}
	m.doctors[doctor.ID] = *doctor
	return nil
}

func (m *mockDoctorStore) UpdateDoctor(doctor *models.Doctor) error {
	m.doctors[doctor.ID] = *doctor
	return nil
}

func (m *mockDoctorStore) DeleteDoctor(id string) error {
	if _, ok := m.doctors[id]; !ok {
		return apperrors.NewNotFound("Dokter tidak ditemukan")
	}
	delete(m.doctors, id)
	return nil
}

func TestCreateDoctor(t *testing.T) {
	store := newMockDoctorStore()
	svc := NewDoctorService(store)

	doctor, err := svc.CreateDoctor("  dr. Budi Santoso, Sp.JP ", strptr("Jantung"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if doctor.Nama != "dr. Budi Santoso, Sp.JP" {
		t.Errorf("nama = %q, want trimmed", doctor.Nama)
	}
	if doctor.Spesialis == nil || *doctor.Spesialis != "Jantung" {
		t.Errorf("spesialis = %v, want Jantung", doctor.Spesialis)
	}

	_, err = svc.CreateDoctor("   ", nil)
	var validation *apperrors.ValidationError
	if !errors.As(err, &validation) {
		t.Errorf("err = %v, want ValidationError for blank name", err)
	}
}

func TestUpdateDoctorOverwritesSpecialty(t *testing.T) {
	spesialis := "Anak"
	store := newMockDoctorStore(models.Doctor{ID: "dokter-1", Nama: "dr. Sari", Spesialis: &spesialis})
	svc := NewDoctorService(store)

	// Omitting the specialty clears it
	doctor, err := svc.UpdateDoctor("dokter-1", "dr. Sari Wulandari, Sp.A", nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if doctor.Nama != "dr. Sari Wulandari, Sp.A" {
		t.Errorf("nama = %q", doctor.Nama)
	}
	if doctor.Spesialis != nil {
		t.Errorf("spesialis = %v, want nil when omitted", doctor.Spesialis)
	}

	_, err = svc.UpdateDoctor("dokter-1", "", nil)
	var validation *apperrors.ValidationError
	if !errors.As(err, &validation) {
		t.Errorf("err = %v, want ValidationError for blank name", err)
	}
}

// Rooms and history keep the doctor as a plain name string, so renaming a
// doctor leaves existing records pointing at the old name.
func TestRenameDoctorDoesNotRewriteOccupiedRooms(t *testing.T) {
	doctors := newMockDoctorStore(models.Doctor{ID: "dokter-1", Nama: "dr. Budi"})
	rooms := newMockRoomStore(models.Room{
		NoKamar: "201",
		Tipe:    models.RoomTipeVIP,
		Status:  models.RoomStatusTerisi,
		Pasien:  strptr("Andi"),
		Dokter:  strptr("dr. Budi"),
	})
	svc := NewDoctorService(doctors)

	if _, err := svc.UpdateDoctor("dokter-1", "dr. Budi Santoso, Sp.JP", nil); err != nil {
		t.Fatalf("rename: %v", err)
	}

	room, err := rooms.GetRoomByNoKamar("201")
	if err != nil {
		t.Fatalf("get room: %v", err)
	}
	if room.Dokter == nil || *room.Dokter != "dr. Budi" {
		t.Errorf("room dokter = %v, want the original snapshot dr. Budi", room.Dokter)
	}
}

func TestDeleteDoctor(t *testing.T) {
	store := newMockDoctorStore(models.Doctor{ID: "dokter-1", Nama: "dr. Budi"})
	svc := NewDoctorService(store)

	if err := svc.DeleteDoctor("dokter-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	err := svc.DeleteDoctor("dokter-1")
	var notFound *apperrors.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("err = %v, want NotFoundError", err)
	}
}
