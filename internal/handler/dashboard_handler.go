package handler

import (
	"fmt"
	"net/http"

	"sipanuri-backend/internal/repository"
	"sipanuri-backend/internal/service"
	"sipanuri-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the combined dashboard endpoint: a type-switched
// read of every entity plus the room transition operation.
type DashboardHandler struct {
	occupancyService *service.OccupancyService
	reportService    *service.ReportService
	doctorService    *service.DoctorService
	stockService     *service.StockService
	assetService     *service.AssetService
}

func NewDashboardHandler(
	occupancyService *service.OccupancyService,
	reportService *service.ReportService,
	doctorService *service.DoctorService,
	stockService *service.StockService,
	assetService *service.AssetService,
) *DashboardHandler {
	return &DashboardHandler{
		occupancyService: occupancyService,
		reportService:    reportService,
		doctorService:    doctorService,
		stockService:     stockService,
		assetService:     assetService,
	}
}

// recentHistoryLimit caps the dashboard history feed.
const recentHistoryLimit = 50

// Get serves GET /api/sipanuri?type=kamar|stats|history|dokter|bhp|aset
func (h *DashboardHandler) Get(c *gin.Context) {
	switch c.Query("type") {
	case "kamar":
		rooms, err := h.occupancyService.GetRooms()
		if err != nil {
			respondReadError(c, err, "Gagal mengambil data kamar")
			return
		}
		out := make([]gin.H, 0, len(rooms))
		for _, room := range rooms {
			out = append(out, gin.H{
				"No_Kamar":      room.NoKamar,
				"Tipe":          room.Tipe,
				"Status":        room.Status,
				"Pasien":        room.Pasien,
				"Dokter":        room.Dokter,
				"Diagnosa":      room.Diagnosa,
				"Tanggal_Masuk": room.TanggalMasuk,
			})
		}
		c.JSON(http.StatusOK, out)

	case "stats":
		stats, err := h.reportService.Dashboard()
		if err != nil {
			respondReadError(c, err, "Gagal mengambil statistik")
			return
		}
		c.JSON(http.StatusOK, stats)

	case "history":
		entries, err := h.occupancyService.RecentHistory(recentHistoryLimit)
		if err != nil {
			respondReadError(c, err, "Gagal mengambil riwayat")
			return
		}
		c.JSON(http.StatusOK, entries)

	case "dokter":
		doctors, err := h.doctorService.ListDoctors()
		if err != nil {
			respondReadError(c, err, "Gagal mengambil data dokter")
			return
		}
		c.JSON(http.StatusOK, doctors)

	case "bhp":
		items, _, err := h.stockService.ListItems(repository.BhpFilter{})
		if err != nil {
			respondReadError(c, err, "Gagal mengambil data BHP ATK")
			return
		}
		out := make([]gin.H, 0, len(items))
		for _, item := range items {
			out = append(out, gin.H{
				"id":       item.ID,
				"nama":     item.Nama,
				"kategori": item.Kategori,
				"jumlah":   item.SisaStok,
				"satuan":   item.Satuan,
				"kondisi":  item.Kondisi,
			})
		}
		c.JSON(http.StatusOK, out)

	case "aset":
		assets, _, err := h.assetService.ListAssets(repository.AsetFilter{})
		if err != nil {
			respondReadError(c, err, "Gagal mengambil data aset")
			return
		}
		out := make([]gin.H, 0, len(assets))
		for _, asset := range assets {
			out = append(out, gin.H{
				"id":       asset.ID,
				"nama":     asset.Nama,
				"kategori": asset.Kategori,
				"jumlah":   asset.Jumlah,
				"lokasi":   asset.Lokasi,
				"kondisi":  asset.Kondisi,
			})
		}
		c.JSON(http.StatusOK, out)

	default:
		utils.ReadErrorResponse(c, http.StatusBadRequest, "Invalid type parameter")
	}
}

type setRoomStateRequest struct {
	NoKamar  string  `json:"noKamar"`
	Status   string  `json:"status"`
	Pasien   *string `json:"pasien"`
	Dokter   *string `json:"dokter"`
	Diagnosa *string `json:"diagnosa"`
}

// SetRoomState serves POST /api/sipanuri (room transition)
func (h *DashboardHandler) SetRoomState(c *gin.Context) {
	var req setRoomStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Body permintaan tidak valid")
		return
	}

	room, err := h.occupancyService.SetRoomState(service.SetRoomStateInput{
		NoKamar:  req.NoKamar,
		Status:   req.Status,
		Pasien:   req.Pasien,
		Dokter:   req.Dokter,
		Diagnosa: req.Diagnosa,
	})
	if err != nil {
		respondError(c, err, "Terjadi kesalahan server")
		return
	}

	utils.SuccessResponse(c, fmt.Sprintf("Data kamar %s berhasil diperbarui", room.NoKamar), gin.H{
		"noKamar": room.NoKamar,
		"status":  room.Status,
	})
}
