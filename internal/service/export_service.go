package service

import (
	"time"

	"sipanuri-backend/internal/models"
	"sipanuri-backend/internal/repository"
	"sipanuri-backend/pkg/utils"
)

// MovementLister lists the full stock movement ledger.
type MovementLister interface {
	ListAllMovements() ([]models.StokHistory, error)
}

// ExportService assembles the bulk export: every entity formatted with
// localized date strings plus a summary stat block, shaped for spreadsheet
// ingestion. Read-only.
type ExportService struct {
	rooms     RoomStore
	history   HistoryStore
	doctors   DoctorStore
	items     ConsumableStore
	movements MovementLister
	assets    AssetStore
	loans     LoanStore
	now       func() time.Time
}

func NewExportService(
	rooms RoomStore,
	history HistoryStore,
	doctors DoctorStore,
	items ConsumableStore,
	movements MovementLister,
	assets AssetStore,
	loans LoanStore,
) *ExportService {
	return &ExportService{
		rooms:     rooms,
		history:   history,
		doctors:   doctors,
		items:     items,
		movements: movements,
		assets:    assets,
		loans:     loans,
		now:       time.Now,
	}
}

// Sheet row shapes; json keys are the spreadsheet column headers.

type ExportKamarRow struct {
	NoKamar      string `json:"No Kamar"`
	Tipe         string `json:"Tipe"`
	Status       string `json:"Status"`
	Pasien       string `json:"Pasien"`
	Dokter       string `json:"Dokter"`
	Diagnosa     string `json:"Diagnosa"`
	TanggalMasuk string `json:"Tanggal Masuk"`
	CreatedAt    string `json:"Created At"`
	UpdatedAt    string `json:"Updated At"`
}

type ExportHistoryRow struct {
	Timestamp     string `json:"Timestamp"`
	Aksi          string `json:"Aksi"`
	NoKamar       string `json:"No Kamar"`
	Pasien        string `json:"Pasien"`
	Dokter        string `json:"Dokter"`
	Diagnosa      string `json:"Diagnosa"`
	TanggalMasuk  string `json:"Tanggal Masuk"`
	TanggalKeluar string `json:"Tanggal Keluar"`
	LamaInap      string `json:"Lama Inap"`
}

type ExportDokterRow struct {
	Nama      string `json:"Nama"`
	Spesialis string `json:"Spesialis"`
	CreatedAt string `json:"Created At"`
	UpdatedAt string `json:"Updated At"`
}

type ExportBhpRow struct {
	Nama       string `json:"Nama"`
	Kategori   string `json:"Kategori"`
	StokAwal   int    `json:"Stok Awal"`
	StokMasuk  int    `json:"Stok Masuk"`
	StokKeluar int    `json:"Stok Keluar"`
	SisaStok   int    `json:"Sisa Stok"`
	Satuan     string `json:"Satuan"`
	Kondisi    string `json:"Kondisi"`
	CreatedAt  string `json:"Created At"`
	UpdatedAt  string `json:"Updated At"`
}

type ExportStokHistoryRow struct {
	BhpID      string `json:"BHP ID"`
	Jenis      string `json:"Jenis"`
	Jumlah     int    `json:"Jumlah"`
	Keterangan string `json:"Keterangan"`
	Tanggal    string `json:"Tanggal"`
	Petugas    string `json:"Petugas"`
}

type ExportAsetRow struct {
	Nama      string `json:"Nama"`
	Kategori  string `json:"Kategori"`
	Jumlah    int    `json:"Jumlah"`
	Lokasi    string `json:"Lokasi"`
	Kondisi   string `json:"Kondisi"`
	CreatedAt string `json:"Created At"`
	UpdatedAt string `json:"Updated At"`
}

type ExportPeminjamanRow struct {
	NamaAset       string `json:"Nama Aset"`
	Jumlah         int    `json:"Jumlah"`
	Peminjam       string `json:"Peminjam"`
	Unit           string `json:"Unit"`
	Tujuan         string `json:"Tujuan"`
	TanggalPinjam  string `json:"Tanggal Pinjam"`
	TanggalKembali string `json:"Tanggal Kembali"`
	Status         string `json:"Status"`
	Catatan        string `json:"Catatan"`
}

// ExportStats is the summary block appended to the export.
type ExportStats struct {
	TotalKamar        int    `json:"totalKamar"`
	KamarTerisi       int    `json:"kamarTerisi"`
	KamarKosong       int    `json:"kamarKosong"`
	TotalPasienMasuk  int    `json:"totalPasienMasuk"`
	TotalPasienKeluar int    `json:"totalPasienKeluar"`
	TotalDokter       int    `json:"totalDokter"`
	TotalBhpAtk       int    `json:"totalBhpAtk"`
	TotalAset         int    `json:"totalAset"`
	PeminjamanAktif   int    `json:"peminjamanAktif"`
	LastUpdated       string `json:"lastUpdated"`
}

// ExportData bundles all formatted sheets plus the summary stats.
type ExportData struct {
	Kamar       []ExportKamarRow       `json:"kamar"`
	History     []ExportHistoryRow     `json:"history"`
	Dokter      []ExportDokterRow      `json:"dokter"`
	BhpAtk      []ExportBhpRow         `json:"bhpAtk"`
	StokHistory []ExportStokHistoryRow `json:"stokHistory"`
	Aset        []ExportAsetRow        `json:"aset"`
	Peminjaman  []ExportPeminjamanRow  `json:"peminjaman"`
	Stats       ExportStats            `json:"stats"`
}

// BuildExport reads every table and formats the rows for export
func (s *ExportService) BuildExport() (*ExportData, error) {
	rooms, err := s.rooms.GetAllRooms()
	if err != nil {
		return nil, err
	}
	history, err := s.history.ListAll()
	if err != nil {
		return nil, err
	}
	doctors, err := s.doctors.ListDoctors()
	if err != nil {
		return nil, err
	}
	items, err := s.items.ListItems(repository.BhpFilter{})
	if err != nil {
		return nil, err
	}
	movements, err := s.movements.ListAllMovements()
	if err != nil {
		return nil, err
	}
	assets, err := s.assets.ListAssets(repository.AsetFilter{})
	if err != nil {
		return nil, err
	}
	loans, err := s.loans.ListLoans("")
	if err != nil {
		return nil, err
	}

	data := &ExportData{
		Kamar:       make([]ExportKamarRow, 0, len(rooms)),
		History:     make([]ExportHistoryRow, 0, len(history)),
		Dokter:      make([]ExportDokterRow, 0, len(doctors)),
		BhpAtk:      make([]ExportBhpRow, 0, len(items)),
		StokHistory: make([]ExportStokHistoryRow, 0, len(movements)),
		Aset:        make([]ExportAsetRow, 0, len(assets)),
		Peminjaman:  make([]ExportPeminjamanRow, 0, len(loans)),
	}

	for _, room := range rooms {
		data.Kamar = append(data.Kamar, ExportKamarRow{
			NoKamar:      room.NoKamar,
			Tipe:         room.Tipe,
			Status:       room.Status,
			Pasien:       deref(room.Pasien),
			Dokter:       deref(room.Dokter),
			Diagnosa:     deref(room.Diagnosa),
			TanggalMasuk: utils.FormatDateTimeID(room.TanggalMasuk),
			CreatedAt:    utils.FormatDateTimeID(&room.CreatedAt),
			UpdatedAt:    utils.FormatDateTimeID(&room.UpdatedAt),
		})
	}

	for _, e := range history {
		ts := e.Timestamp
		data.History = append(data.History, ExportHistoryRow{
			Timestamp:     utils.FormatDateTimeID(&ts),
			Aksi:          e.Aksi,
			NoKamar:       e.NoKamar,
			Pasien:        deref(e.Pasien),
			Dokter:        deref(e.Dokter),
			Diagnosa:      deref(e.Diagnosa),
			TanggalMasuk:  utils.FormatDateTimeID(e.TglMasuk),
			TanggalKeluar: utils.FormatDateTimeID(e.TglKeluar),
			LamaInap:      deref(e.LamaInap),
		})
	}

	for _, d := range doctors {
		created, updated := d.CreatedAt, d.UpdatedAt
		data.Dokter = append(data.Dokter, ExportDokterRow{
			Nama:      d.Nama,
			Spesialis: deref(d.Spesialis),
			CreatedAt: utils.FormatDateTimeID(&created),
			UpdatedAt: utils.FormatDateTimeID(&updated),
		})
	}

	for _, item := range items {
		created, updated := item.CreatedAt, item.UpdatedAt
		data.BhpAtk = append(data.BhpAtk, ExportBhpRow{
			Nama:       item.Nama,
			Kategori:   deref(item.Kategori),
			StokAwal:   item.StokAwal,
			StokMasuk:  item.StokMasuk,
			StokKeluar: item.StokKeluar,
			SisaStok:   item.SisaStok,
			Satuan:     deref(item.Satuan),
			Kondisi:    deref(item.Kondisi),
			CreatedAt:  utils.FormatDateTimeID(&created),
			UpdatedAt:  utils.FormatDateTimeID(&updated),
		})
	}

	for _, m := range movements {
		tanggal := m.Tanggal
		data.StokHistory = append(data.StokHistory, ExportStokHistoryRow{
			BhpID:      m.BhpID,
			Jenis:      m.Jenis,
			Jumlah:     m.Jumlah,
			Keterangan: deref(m.Keterangan),
			Tanggal:    utils.FormatDateTimeID(&tanggal),
			Petugas:    deref(m.Petugas),
		})
	}

	for _, a := range assets {
		created, updated := a.CreatedAt, a.UpdatedAt
		data.Aset = append(data.Aset, ExportAsetRow{
			Nama:      a.Nama,
			Kategori:  deref(a.Kategori),
			Jumlah:    a.Jumlah,
			Lokasi:    deref(a.Lokasi),
			Kondisi:   deref(a.Kondisi),
			CreatedAt: utils.FormatDateTimeID(&created),
			UpdatedAt: utils.FormatDateTimeID(&updated),
		})
	}

	for _, loan := range loans {
		pinjam := loan.TanggalPinjam
		data.Peminjaman = append(data.Peminjaman, ExportPeminjamanRow{
			NamaAset:       loan.NamaAset,
			Jumlah:         loan.Jumlah,
			Peminjam:       loan.Peminjam,
			Unit:           deref(loan.Unit),
			Tujuan:         deref(loan.Tujuan),
			TanggalPinjam:  utils.FormatDateTimeID(&pinjam),
			TanggalKembali: utils.FormatDateTimeID(loan.TanggalKembali),
			Status:         loan.Status,
			Catatan:        deref(loan.Catatan),
		})
	}

	data.Stats = ExportStats{
		TotalKamar:  len(rooms),
		TotalDokter: len(doctors),
		TotalBhpAtk: len(items),
		TotalAset:   len(assets),
	}
	for _, room := range rooms {
		if room.Status == models.RoomStatusTerisi {
			data.Stats.KamarTerisi++
		} else {
			data.Stats.KamarKosong++
		}
	}
	for _, e := range history {
		if e.Aksi == models.AksiMasuk {
			data.Stats.TotalPasienMasuk++
		} else if e.Aksi == models.AksiKeluar {
			data.Stats.TotalPasienKeluar++
		}
	}
	for _, loan := range loans {
		if loan.Status == models.StatusDipinjam {
			data.Stats.PeminjamanAktif++
		}
	}
	now := s.now()
	data.Stats.LastUpdated = utils.FormatDateTimeID(&now)

	return data, nil
}

// deref maps nil strings to the empty cell value.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
