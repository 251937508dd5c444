package handler

import (
	"net/http"

	"sipanuri-backend/internal/repository"
	"sipanuri-backend/internal/service"
	"sipanuri-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BhpHandler struct {
	stockService *service.StockService
}

func NewBhpHandler(stockService *service.StockService) *BhpHandler {
	return &BhpHandler{
		stockService: stockService,
	}
}

// Get serves GET /api/sipanuri/bhp with optional id, history, and filter
// query parameters. Single-item lookups return the bare record; listings
// come wrapped with inventory-wide statistics.
func (h *BhpHandler) Get(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		item, err := h.stockService.GetItem(id, c.Query("history") == "true")
		if err != nil {
			respondReadError(c, err, "Gagal mengambil data BHP ATK")
			return
		}
		c.JSON(http.StatusOK, item)
		return
	}

	filter := repository.BhpFilter{
		Kategori: c.Query("kategori"),
		Kondisi:  c.Query("kondisi"),
		Search:   c.Query("search"),
	}
	items, stats, err := h.stockService.ListItems(filter)
	if err != nil {
		respondReadError(c, err, "Gagal mengambil data BHP ATK")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  items,
		"stats": stats,
	})
}

type bhpRequest struct {
	// Item creation fields
	Nama     string  `json:"nama"`
	Kategori *string `json:"kategori"`
	StokAwal int     `json:"stokAwal"`
	Satuan   *string `json:"satuan"`
	Kondisi  *string `json:"kondisi"`

	// Stock transaction fields
	StockTransaction bool    `json:"stockTransaction"`
	BhpID            string  `json:"bhpId"`
	Jenis            string  `json:"jenis"`
	Jumlah           int     `json:"jumlah"`
	Keterangan       *string `json:"keterangan"`
	Petugas          *string `json:"petugas"`
}

// Create serves POST /api/sipanuri/bhp: either a new item or, when the body
// carries stockTransaction=true, a stock movement against an existing item
func (h *BhpHandler) Create(c *gin.Context) {
	var req bhpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Body permintaan tidak valid")
		return
	}

	if req.StockTransaction {
		item, err := h.stockService.RecordMovement(service.MovementInput{
			BhpID:      req.BhpID,
			Jenis:      req.Jenis,
			Jumlah:     req.Jumlah,
			Keterangan: req.Keterangan,
			Petugas:    req.Petugas,
		})
		if err != nil {
			respondError(c, err, "Gagal memproses transaksi stok")
			return
		}

		message := "Stok berhasil dikurangi"
		if req.Jenis == "MASUK" {
			message = "Stok berhasil ditambahkan"
		}
		utils.SuccessResponse(c, message, item)
		return
	}

	item, err := h.stockService.CreateItem(service.CreateItemInput{
		Nama:     req.Nama,
		Kategori: req.Kategori,
		StokAwal: req.StokAwal,
		Satuan:   req.Satuan,
		Kondisi:  req.Kondisi,
	})
	if err != nil {
		respondError(c, err, "Gagal menambahkan BHP ATK")
		return
	}

	utils.SuccessResponse(c, "BHP ATK berhasil ditambahkan", item)
}

type bhpUpdateRequest struct {
	ID       string  `json:"id"`
	Nama     *string `json:"nama"`
	Kategori *string `json:"kategori"`
	Satuan   *string `json:"satuan"`
	Kondisi  *string `json:"kondisi"`
}

// Update serves PUT /api/sipanuri/bhp; metadata only, never quantities
func (h *BhpHandler) Update(c *gin.Context) {
	var req bhpUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Body permintaan tidak valid")
		return
	}

	item, err := h.stockService.UpdateMetadata(service.UpdateMetadataInput{
		ID:       req.ID,
		Nama:     req.Nama,
		Kategori: req.Kategori,
		Satuan:   req.Satuan,
		Kondisi:  req.Kondisi,
	})
	if err != nil {
		respondError(c, err, "Gagal memperbarui BHP ATK")
		return
	}

	utils.SuccessResponse(c, "BHP ATK berhasil diperbarui", item)
}

// Delete serves DELETE /api/sipanuri/bhp?id=...
func (h *BhpHandler) Delete(c *gin.Context) {
	if err := h.stockService.DeleteItem(c.Query("id")); err != nil {
		respondError(c, err, "Gagal menghapus BHP ATK")
		return
	}

	utils.SuccessResponse(c, "BHP ATK berhasil dihapus", nil)
}
