package handler

import (
	"net/http"

	"sipanuri-backend/internal/repository"
	"sipanuri-backend/internal/service"
	"sipanuri-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AssetHandler struct {
	assetService *service.AssetService
}

func NewAssetHandler(assetService *service.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// Get serves GET /api/sipanuri/aset with optional id and filter parameters
func (h *AssetHandler) Get(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		asset, err := h.assetService.GetAsset(id)
		if err != nil {
			respondReadError(c, err, "Gagal mengambil data aset")
			return
		}
		c.JSON(http.StatusOK, asset)
		return
	}

	filter := repository.AsetFilter{
		Kategori: c.Query("kategori"),
		Kondisi:  c.Query("kondisi"),
		Search:   c.Query("search"),
	}
	assets, stats, err := h.assetService.ListAssets(filter)
	if err != nil {
		respondReadError(c, err, "Gagal mengambil data aset")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  assets,
		"stats": stats,
	})
}

type assetCreateRequest struct {
	Nama     string  `json:"nama"`
	Kategori *string `json:"kategori"`
	Jumlah   int     `json:"jumlah"`
	Lokasi   *string `json:"lokasi"`
	Kondisi  *string `json:"kondisi"`
}

// Create serves POST /api/sipanuri/aset
func (h *AssetHandler) Create(c *gin.Context) {
	var req assetCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Body permintaan tidak valid")
		return
	}

	asset, err := h.assetService.CreateAsset(service.CreateAssetInput{
		Nama:     req.Nama,
		Kategori: req.Kategori,
		Jumlah:   req.Jumlah,
		Lokasi:   req.Lokasi,
		Kondisi:  req.Kondisi,
	})
	if err != nil {
		respondError(c, err, "Gagal menambahkan aset")
		return
	}

	utils.SuccessResponse(c, "Aset berhasil ditambahkan", asset)
}

type assetUpdateRequest struct {
	ID       string  `json:"id"`
	Nama     *string `json:"nama"`
	Kategori *string `json:"kategori"`
	Jumlah   *int    `json:"jumlah"`
	Lokasi   *string `json:"lokasi"`
	Kondisi  *string `json:"kondisi"`
}

// Update serves PUT /api/sipanuri/aset
func (h *AssetHandler) Update(c *gin.Context) {
	var req assetUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Body permintaan tidak valid")
		return
	}

	asset, err := h.assetService.UpdateAsset(service.UpdateAssetInput{
		ID:       req.ID,
		Nama:     req.Nama,
		Kategori: req.Kategori,
		Jumlah:   req.Jumlah,
		Lokasi:   req.Lokasi,
		Kondisi:  req.Kondisi,
	})
	if err != nil {
		respondError(c, err, "Gagal memperbarui aset")
		return
	}

	utils.SuccessResponse(c, "Aset berhasil diperbarui", asset)
}

// Delete serves DELETE /api/sipanuri/aset?id=...; blocked while the asset
// still has active loans
func (h *AssetHandler) Delete(c *gin.Context) {
	if err := h.assetService.DeleteAsset(c.Query("id")); err != nil {
		respondError(c, err, "Gagal menghapus aset")
		return
	}

	utils.SuccessResponse(c, "Aset berhasil dihapus", nil)
}
