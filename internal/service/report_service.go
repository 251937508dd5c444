package service

import (
	"math"
	"sort"
	"time"

	"sipanuri-backend/internal/models"
	"sipanuri-backend/pkg/utils"
)

// HistoryStore is the read-only history surface used by reporting.
type HistoryStore interface {
	ListBetween(start, end time.Time) ([]models.History, error)
	ListAll() ([]models.History, error)
}

// ReportService derives statistics from rooms and the admission history.
// It is strictly read-side: it never mutates any ledger entity.
type ReportService struct {
	rooms   RoomStore
	history HistoryStore
	now     func() time.Time
}

func NewReportService(rooms RoomStore, history HistoryStore) *ReportService {
	return &ReportService{
		rooms:   rooms,
		history: history,
		now:     time.Now,
	}
}

// DiagnosaCount is one diagnosis frequency row.
type DiagnosaCount struct {
	Diagnosa string `json:"diagnosa"`
	Jumlah   int    `json:"jumlah"`
}

// DokterCount is one doctor frequency row.
type DokterCount struct {
	Dokter string `json:"dokter"`
	Jumlah int    `json:"jumlah"`
}

// TipeCount is one ward-tier frequency row.
type TipeCount struct {
	Tipe   string `json:"tipe"`
	Jumlah int    `json:"jumlah"`
}

// DailyStat is one day's admit/discharge tally.
type DailyStat struct {
	Date   string `json:"date"`
	Masuk  int    `json:"masuk"`
	Keluar int    `json:"keluar"`
}

// AvailableMonth is one selectable reporting period.
type AvailableMonth struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Label string `json:"label"`
}

// ReportPeriod identifies the reported month.
type ReportPeriod struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Label string `json:"label"`
}

// ReportSummary is the headline block of the monthly report.
type ReportSummary struct {
	TotalMasuk  int `json:"totalMasuk"`
	TotalKeluar int `json:"totalKeluar"`
	TotalKamar  int `json:"totalKamar"`
	Okupansi    int `json:"okupansi"`
}

// ReportHistoryRow is one history entry as listed in the report.
type ReportHistoryRow struct {
	Timestamp time.Time `json:"timestamp"`
	Aksi      string    `json:"aksi"`
	NoKamar   string    `json:"noKamar"`
	Pasien    *string   `json:"pasien"`
	Dokter    *string   `json:"dokter"`
	Diagnosa  *string   `json:"diagnosa"`
	LamaInap  *string   `json:"lamaInap"`
}

// MonthlyReport is the full aggregation for one (year, month) period.
type MonthlyReport struct {
	Period            ReportPeriod       `json:"period"`
	Summary           ReportSummary      `json:"summary"`
	DiagnosaBreakdown []DiagnosaCount    `json:"diagnosaBreakdown"`
	DokterBreakdown   []DokterCount      `json:"dokterBreakdown"`
	TipeBreakdown     []TipeCount        `json:"tipeBreakdown"`
	DailyStats        []DailyStat        `json:"dailyStats"`
	History           []ReportHistoryRow `json:"history"`
	AvailableMonths   []AvailableMonth   `json:"availableMonths"`
}

// MonthlyReport aggregates the admission history for one calendar month.
// The window is [first day 00:00:00, last day 23:59:59] inclusive; diagnosis
// and doctor tallies count admissions only; ward-tier tallies join each
// admission against the room's current tier.
func (s *ReportService) MonthlyReport(year, month int) (*MonthlyReport, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Second)

	entries, err := s.history.ListBetween(start, end)
	if err != nil {
		return nil, err
	}

	rooms, err := s.rooms.GetAllRooms()
	if err != nil {
		return nil, err
	}

	var masuk, keluar []models.History
	for _, e := range entries {
		if e.Aksi == models.AksiMasuk {
			masuk = append(masuk, e)
		} else if e.Aksi == models.AksiKeluar {
			keluar = append(keluar, e)
		}
	}

	diagnosaCounts := map[string]int{}
	dokterCounts := map[string]int{}
	for _, e := range masuk {
		if e.Diagnosa != nil && *e.Diagnosa != "" {
			diagnosaCounts[*e.Diagnosa]++
		}
		if e.Dokter != nil && *e.Dokter != "" {
			dokterCounts[*e.Dokter]++
		}
	}

	// Tier tally from the room's current record, not a historical snapshot
	tipeByKamar := map[string]string{}
	for _, room := range rooms {
		tipeByKamar[room.NoKamar] = room.Tipe
	}
	tipeCounts := map[string]int{models.RoomTipeVVIP: 0, models.RoomTipeVIP: 0}
	for _, e := range masuk {
		if tipe, ok := tipeByKamar[e.NoKamar]; ok {
			tipeCounts[tipe]++
		}
	}

	daily := map[string]*DailyStat{}
	for _, e := range entries {
		date := e.Timestamp.Format("2006-01-02")
		stat, ok := daily[date]
		if !ok {
			stat = &DailyStat{Date: date}
			daily[date] = stat
		}
		if e.Aksi == models.AksiMasuk {
			stat.Masuk++
		} else {
			stat.Keluar++
		}
	}

	availableMonths, err := s.availableMonths()
	if err != nil {
		return nil, err
	}

	report := &MonthlyReport{
		Period: ReportPeriod{
			Year:  year,
			Month: month,
			Label: utils.MonthYearLabel(year, time.Month(month)),
		},
		Summary: ReportSummary{
			TotalMasuk:  len(masuk),
			TotalKeluar: len(keluar),
			TotalKamar:  len(rooms),
			Okupansi:    okupansi(rooms),
		},
		DiagnosaBreakdown: diagnosaBreakdown(diagnosaCounts),
		DokterBreakdown:   dokterBreakdown(dokterCounts),
		TipeBreakdown: []TipeCount{
			{Tipe: models.RoomTipeVVIP, Jumlah: tipeCounts[models.RoomTipeVVIP]},
			{Tipe: models.RoomTipeVIP, Jumlah: tipeCounts[models.RoomTipeVIP]},
		},
		DailyStats:      sortedDailyStats(daily),
		History:         reportRows(entries),
		AvailableMonths: availableMonths,
	}

	return report, nil
}

// availableMonths enumerates every distinct (year, month) present in the
// history ledger, most recent first.
func (s *ReportService) availableMonths() ([]AvailableMonth, error) {
	all, err := s.history.ListAll()
	if err != nil {
		return nil, err
	}

	seen := map[int]bool{}
	months := []AvailableMonth{}
	for _, e := range all {
		key := e.Timestamp.Year()*12 + int(e.Timestamp.Month()) - 1
		if seen[key] {
			continue
		}
		seen[key] = true
		months = append(months, AvailableMonth{
			Year:  e.Timestamp.Year(),
			Month: int(e.Timestamp.Month()),
			Label: utils.MonthYearLabel(e.Timestamp.Year(), e.Timestamp.Month()),
		})
	}

	sort.Slice(months, func(i, j int) bool {
		return months[i].Year*12+months[i].Month > months[j].Year*12+months[j].Month
	})
	return months, nil
}

// RoomOccupancy is the current occupancy snapshot per tier.
type RoomOccupancy struct {
	Total  int `json:"total"`
	Terisi int `json:"terisi"`
}

// DashboardRoomStats is the room block of the dashboard snapshot.
type DashboardRoomStats struct {
	Total    int           `json:"total"`
	Terisi   int           `json:"terisi"`
	Kosong   int           `json:"kosong"`
	Okupansi int           `json:"okupansi"`
	VVIP     RoomOccupancy `json:"vvip"`
	VIP      RoomOccupancy `json:"vip"`
}

// DashboardMonthStats is the current-month block of the dashboard snapshot.
type DashboardMonthStats struct {
	TotalPasien int             `json:"totalPasien"`
	TopDiagnosa []DiagnosaCount `json:"topDiagnosa"`
}

// DashboardStats is the combined dashboard snapshot.
type DashboardStats struct {
	Kamar   DashboardRoomStats  `json:"kamar"`
	Bulanan DashboardMonthStats `json:"bulanan"`
}

// Dashboard builds the landing-page snapshot: current occupancy per tier and
// this month's admission count plus its five most frequent diagnoses (here
// counted across both admissions and discharges).
func (s *ReportService) Dashboard() (*DashboardStats, error) {
	rooms, err := s.rooms.GetAllRooms()
	if err != nil {
		return nil, err
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	entries, err := s.history.ListBetween(monthStart, now)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{}
	stats.Kamar.Total = len(rooms)
	for _, room := range rooms {
		occupied := room.Status == models.RoomStatusTerisi
		if occupied {
			stats.Kamar.Terisi++
		}
		switch room.Tipe {
		case models.RoomTipeVVIP:
			stats.Kamar.VVIP.Total++
			if occupied {
				stats.Kamar.VVIP.Terisi++
			}
		case models.RoomTipeVIP:
			stats.Kamar.VIP.Total++
			if occupied {
				stats.Kamar.VIP.Terisi++
			}
		}
	}
	stats.Kamar.Kosong = stats.Kamar.Total - stats.Kamar.Terisi
	stats.Kamar.Okupansi = okupansi(rooms)

	diagnosaCounts := map[string]int{}
	for _, e := range entries {
		if e.Aksi == models.AksiMasuk {
			stats.Bulanan.TotalPasien++
		}
		if e.Diagnosa != nil && *e.Diagnosa != "" {
			diagnosaCounts[*e.Diagnosa]++
		}
	}

	top := diagnosaBreakdown(diagnosaCounts)
	if len(top) > 5 {
		top = top[:5]
	}
	stats.Bulanan.TopDiagnosa = top

	return stats, nil
}

// okupansi computes the rounded occupancy percentage over all rooms.
func okupansi(rooms []models.Room) int {
	if len(rooms) == 0 {
		return 0
	}
	terisi := 0
	for _, room := range rooms {
		if room.Status == models.RoomStatusTerisi {
			terisi++
		}
	}
	return int(math.Round(float64(terisi) / float64(len(rooms)) * 100))
}

func diagnosaBreakdown(counts map[string]int) []DiagnosaCount {
	rows := make([]DiagnosaCount, 0, len(counts))
	for diagnosa, jumlah := range counts {
		rows = append(rows, DiagnosaCount{Diagnosa: diagnosa, Jumlah: jumlah})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Jumlah != rows[j].Jumlah {
			return rows[i].Jumlah > rows[j].Jumlah
		}
		return rows[i].Diagnosa < rows[j].Diagnosa
	})
	return rows
}

func dokterBreakdown(counts map[string]int) []DokterCount {
	rows := make([]DokterCount, 0, len(counts))
	for dokter, jumlah := range counts {
		rows = append(rows, DokterCount{Dokter: dokter, Jumlah: jumlah})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Jumlah != rows[j].Jumlah {
			return rows[i].Jumlah > rows[j].Jumlah
		}
		return rows[i].Dokter < rows[j].Dokter
	})
	return rows
}

func sortedDailyStats(daily map[string]*DailyStat) []DailyStat {
	rows := make([]DailyStat, 0, len(daily))
	for _, stat := range daily {
		rows = append(rows, *stat)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows
}

func reportRows(entries []models.History) []ReportHistoryRow {
	rows := make([]ReportHistoryRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, ReportHistoryRow{
			Timestamp: e.Timestamp,
			Aksi:      e.Aksi,
			NoKamar:   e.NoKamar,
			Pasien:    e.Pasien,
			Dokter:    e.Dokter,
			Diagnosa:  e.Diagnosa,
			LamaInap:  e.LamaInap,
		})
	}
	return rows
}
