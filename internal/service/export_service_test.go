package service

import (
	"testing"
	"time"

	"sipanuri-backend/internal/models"
)

type mockMovementLister struct {
	movements []models.StokHistory
}

func (m *mockMovementLister) ListAllMovements() ([]models.StokHistory, error) {
	out := make([]models.StokHistory, len(m.movements))
	copy(out, m.movements)
	return out, nil
}

func TestBuildExport(t *testing.T) {
	admitAt := time.Date(2026, time.August, 2, 10, 30, 15, 0, time.Local)
	rooms := newMockRoomStore(
		models.Room{
			NoKamar: "201", Tipe: models.RoomTipeVIP, Status: models.RoomStatusTerisi,
			Pasien: strptr("Andi"), TanggalMasuk: &admitAt,
		},
		models.Room{NoKamar: "301", Tipe: models.RoomTipeVVIP, Status: models.RoomStatusKosong},
	)
	ledger := &mockHistoryLedger{entries: []models.History{
		{Timestamp: admitAt, Aksi: models.AksiMasuk, NoKamar: "201", Pasien: strptr("Andi")},
		{Timestamp: admitAt.Add(48 * time.Hour), Aksi: models.AksiKeluar, NoKamar: "201", LamaInap: strptr("2 hari")},
	}}
	doctors := newMockDoctorStore(models.Doctor{ID: "dokter-1", Nama: "dr. Budi"})
	items := newMockConsumableStore(models.BhpAtk{ID: "bhp-1", Nama: "Masker", StokAwal: 500, SisaStok: 500})
	movements := &mockMovementLister{movements: []models.StokHistory{
		{BhpID: "bhp-1", Jenis: models.JenisMasuk, Jumlah: 500, Keterangan: strptr("Stok awal"), Tanggal: admitAt},
	}}
	assets := newMockAssetStore(models.Aset{ID: "aset-1", Nama: "Proyektor", Jumlah: 1})
	loans := newMockLoanStore(
		models.Peminjaman{ID: "pinjam-1", AsetID: "aset-1", NamaAset: "Proyektor", Peminjam: "Rina",
			Jumlah: 1, Status: models.StatusDipinjam, TanggalPinjam: admitAt},
		models.Peminjaman{ID: "pinjam-2", AsetID: "aset-1", NamaAset: "Proyektor", Peminjam: "Dewi",
			Jumlah: 1, Status: models.StatusDikembalikan, TanggalPinjam: admitAt},
	)

	svc := NewExportService(rooms, ledger, doctors, items, movements, assets, loans)
	exportedAt := time.Date(2026, time.August, 31, 8, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return exportedAt }

	data, err := svc.BuildExport()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if len(data.Kamar) != 2 || len(data.History) != 2 || len(data.Dokter) != 1 ||
		len(data.BhpAtk) != 1 || len(data.StokHistory) != 1 || len(data.Aset) != 1 || len(data.Peminjaman) != 2 {
		t.Fatalf("sheet sizes = kamar %d history %d dokter %d bhp %d stok %d aset %d pinjam %d",
			len(data.Kamar), len(data.History), len(data.Dokter), len(data.BhpAtk),
			len(data.StokHistory), len(data.Aset), len(data.Peminjaman))
	}

	if data.Kamar[0].TanggalMasuk != "02/08/2026 10.30.15" {
		t.Errorf("tanggal masuk = %q, want Indonesian dd/mm/yyyy hh.mm.ss", data.Kamar[0].TanggalMasuk)
	}
	if data.Kamar[1].Pasien != "" || data.Kamar[1].TanggalMasuk != "" {
		t.Errorf("empty room cells = %q / %q, want empty strings", data.Kamar[1].Pasien, data.Kamar[1].TanggalMasuk)
	}

	stats := data.Stats
	if stats.TotalKamar != 2 || stats.KamarTerisi != 1 || stats.KamarKosong != 1 {
		t.Errorf("room stats = %+v", stats)
	}
	if stats.TotalPasienMasuk != 1 || stats.TotalPasienKeluar != 1 {
		t.Errorf("patient stats = masuk %d keluar %d, want 1/1", stats.TotalPasienMasuk, stats.TotalPasienKeluar)
	}
	if stats.PeminjamanAktif != 1 {
		t.Errorf("peminjamanAktif = %d, want 1", stats.PeminjamanAktif)
	}
	if stats.LastUpdated != "31/08/2026 08.00.00" {
		t.Errorf("lastUpdated = %q", stats.LastUpdated)
	}
}
