package handler

import (
	"net/http"

	"sipanuri-backend/internal/service"
	"sipanuri-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{
		doctorService: doctorService,
	}
}

// List serves GET /api/sipanuri/dokter
func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.doctorService.ListDoctors()
	if err != nil {
		respondReadError(c, err, "Gagal mengambil data dokter")
		return
	}
	c.JSON(http.StatusOK, doctors)
}

type doctorRequest struct {
	ID        string  `json:"id"`
	Nama      string  `json:"nama"`
	Spesialis *string `json:"spesialis"`
}

// Create serves POST /api/sipanuri/dokter
func (h *DoctorHandler) Create(c *gin.Context) {
	var req doctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Body permintaan tidak valid")
		return
	}

	doctor, err := h.doctorService.CreateDoctor(req.Nama, req.Spesialis)
	if err != nil {
		respondError(c, err, "Gagal menambahkan dokter")
		return
	}

	utils.SuccessResponse(c, "Dokter berhasil ditambahkan", doctor)
}

// Update serves PUT /api/sipanuri/dokter
func (h *DoctorHandler) Update(c *gin.Context) {
	var req doctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Body permintaan tidak valid")
		return
	}

	doctor, err := h.doctorService.UpdateDoctor(req.ID, req.Nama, req.Spesialis)
	if err != nil {
		respondError(c, err, "Gagal memperbarui dokter")
		return
	}

	utils.SuccessResponse(c, "Dokter berhasil diperbarui", doctor)
}

// Delete serves DELETE /api/sipanuri/dokter?id=...
func (h *DoctorHandler) Delete(c *gin.Context) {
	if err := h.doctorService.DeleteDoctor(c.Query("id")); err != nil {
		respondError(c, err, "Gagal menghapus dokter")
		return
	}

	utils.SuccessResponse(c, "Dokter berhasil dihapus", nil)
}
