package handler

import (
	"net/http"

	"sipanuri-backend/internal/service"
	"sipanuri-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type LoanHandler struct {
	loanService *service.LoanService
}

func NewLoanHandler(loanService *service.LoanService) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
	}
}

// Get serves GET /api/sipanuri/peminjaman with optional id and status
// query parameters
func (h *LoanHandler) Get(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		loan, err := h.loanService.GetLoan(id)
		if err != nil {
			respondReadError(c, err, "Gagal mengambil data peminjaman")
			return
		}
		c.JSON(http.StatusOK, loan)
		return
	}

	loans, err := h.loanService.ListLoans(c.Query("status"))
	if err != nil {
		respondReadError(c, err, "Gagal mengambil data peminjaman")
		return
	}
	c.JSON(http.StatusOK, loans)
}

type loanCreateRequest struct {
	AsetID   string  `json:"asetId"`
	NamaAset string  `json:"namaAset"`
	Jumlah   int     `json:"jumlah"`
	Peminjam string  `json:"peminjam"`
	Unit     *string `json:"unit"`
	Tujuan   *string `json:"tujuan"`
	Catatan  *string `json:"catatan"`
}

// Create serves POST /api/sipanuri/peminjaman
func (h *LoanHandler) Create(c *gin.Context) {
	var req loanCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Body permintaan tidak valid")
		return
	}

	loan, err := h.loanService.CreateLoan(service.CreateLoanInput{
		AsetID:   req.AsetID,
		NamaAset: req.NamaAset,
		Jumlah:   req.Jumlah,
		Peminjam: req.Peminjam,
		Unit:     req.Unit,
		Tujuan:   req.Tujuan,
		Catatan:  req.Catatan,
	})
	if err != nil {
		respondError(c, err, "Gagal mencatat peminjaman")
		return
	}

	utils.SuccessResponse(c, "Peminjaman berhasil dicatat", loan)
}

type loanUpdateRequest struct {
	ID       string  `json:"id"`
	AsetID   *string `json:"asetId"`
	NamaAset *string `json:"namaAset"`
	Jumlah   *int    `json:"jumlah"`
	Peminjam *string `json:"peminjam"`
	Unit     *string `json:"unit"`
	Tujuan   *string `json:"tujuan"`
	Status   *string `json:"status"`
	Catatan  *string `json:"catatan"`
}

// Update serves PUT /api/sipanuri/peminjaman (edit or return)
func (h *LoanHandler) Update(c *gin.Context) {
	var req loanUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Body permintaan tidak valid")
		return
	}

	loan, err := h.loanService.UpdateLoan(service.UpdateLoanInput{
		ID:       req.ID,
		AsetID:   req.AsetID,
		NamaAset: req.NamaAset,
		Jumlah:   req.Jumlah,
		Peminjam: req.Peminjam,
		Unit:     req.Unit,
		Tujuan:   req.Tujuan,
		Status:   req.Status,
		Catatan:  req.Catatan,
	})
	if err != nil {
		respondError(c, err, "Gagal memperbarui data")
		return
	}

	utils.SuccessResponse(c, "Data peminjaman berhasil diperbarui", loan)
}

// Delete serves DELETE /api/sipanuri/peminjaman?id=...
func (h *LoanHandler) Delete(c *gin.Context) {
	if err := h.loanService.DeleteLoan(c.Query("id")); err != nil {
		respondError(c, err, "Gagal menghapus data")
		return
	}

	utils.SuccessResponse(c, "Data peminjaman berhasil dihapus", nil)
}
