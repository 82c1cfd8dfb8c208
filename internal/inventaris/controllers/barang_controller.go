package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/klinik-kampus-backend/internal/common/middlewares"
	"github.com/c14220110/klinik-kampus-backend/internal/inventaris/models"
	"github.com/c14220110/klinik-kampus-backend/internal/inventaris/services"
	"github.com/c14220110/klinik-kampus-backend/pkg/utils"
)

type BarangController struct {
	Service    *services.BarangService
	Dispensing *services.DispensingService
}

func NewBarangController(s *services.BarangService, d *services.DispensingService) *BarangController {
	return &BarangController{Service: s, Dispensing: d}
}

func namaPetugas(c echo.Context) string {
	claims, ok := c.Get(string(middlewares.ContextKeyClaims)).(*utils.Claims)
	if !ok || claims == nil {
		return ""
	}
	if claims.Nama != "" {
		return claims.Nama
	}
	return claims.Username
}

// GET /api/inventaris?q=&stok_menipis=true&limit=20&page=1
func (bc *BarangController) ListBarangHandler(c echo.Context) error {
	q := c.QueryParam("q")
	stokMenipis := c.QueryParam("stok_menipis") == "true"
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	page, _ := strconv.Atoi(c.QueryParam("page"))

	list, err := bc.Service.ListBarang(q, stokMenipis, limit, page)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve barang list: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  http.StatusOK,
		"message": "Barang list retrieved successfully",
		"data":    list,
	})
}

// POST /api/inventaris
func (bc *BarangController) CreateBarangHandler(c echo.Context) error {
	var req models.BarangRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"status":  http.StatusBadRequest,
			"message": "Validation failed: " + err.Error(),
			"data":    nil,
		})
	}

	id, err := bc.Service.CreateBarang(req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status":  http.StatusInternalServerError,
			"message": "Failed to create barang: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  http.StatusOK,
		"message": "Barang created successfully",
		"data":    echo.Map{"id_barang": id},
	})
}

// GET /api/inventaris/:id: detail barang plus riwayat legacy yang
// menempel pada barang (kompatibilitas pembaca lama).
func (bc *BarangController) GetBarangDetailHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"status":  http.StatusBadRequest,
			"message": "id must be a number",
			"data":    nil,
		})
	}

	barang, err := bc.Service.GetBarangByID(id)
	if err != nil {
		if errors.Is(err, services.ErrBarangTidakDitemukan) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"status":  http.StatusNotFound,
				"message": "Barang tidak ditemukan",
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve barang: " + err.Error(),
			"data":    nil,
		})
	}

	riwayat, err := bc.Dispensing.GetRiwayatLegacy(id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve riwayat barang: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  http.StatusOK,
		"message": "Barang retrieved successfully",
		"data": echo.Map{
			"barang":             barang,
			"dispensing_history": riwayat,
		},
	})
}

// PUT /api/inventaris/:id
func (bc *BarangController) UpdateBarangHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"status":  http.StatusBadRequest,
			"message": "id must be a number",
			"data":    nil,
		})
	}

	var req models.UpdateBarangRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"status":  http.StatusBadRequest,
			"message": "Validation failed: " + err.Error(),
			"data":    nil,
		})
	}

	if err := bc.Service.UpdateBarang(id, req); err != nil {
		if errors.Is(err, services.ErrBarangTidakDitemukan) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"status":  http.StatusNotFound,
				"message": "Barang tidak ditemukan",
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status":  http.StatusInternalServerError,
			"message": "Failed to update barang: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  http.StatusOK,
		"message": "Barang updated successfully",
		"data":    nil,
	})
}

// DELETE /api/inventaris/:id
func (bc *BarangController) DeleteBarangHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"status":  http.StatusBadRequest,
			"message": "id must be a number",
			"data":    nil,
		})
	}

	if err := bc.Service.DeleteBarang(id); err != nil {
		if errors.Is(err, services.ErrBarangTidakDitemukan) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"status":  http.StatusNotFound,
				"message": "Barang tidak ditemukan",
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status":  http.StatusInternalServerError,
			"message": "Failed to delete barang: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  http.StatusOK,
		"message": "Barang deleted successfully",
		"data":    nil,
	})
}

// POST /api/inventaris/:id/restock
func (bc *BarangController) RestockHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"status":  http.StatusBadRequest,
			"message": "id must be a number",
			"data":    nil,
		})
	}

	var req models.RestockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"status":  http.StatusBadRequest,
			"message": "Validation failed: " + err.Error(),
			"data":    nil,
		})
	}

	barang, err := bc.Service.Restock(id, req.Jumlah, namaPetugas(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBarangTidakDitemukan):
			return c.JSON(http.StatusNotFound, echo.Map{
				"status":  http.StatusNotFound,
				"message": "Barang tidak ditemukan",
				"data":    nil,
			})
		case errors.Is(err, services.ErrPermintaanTidakValid):
			return c.JSON(http.StatusBadRequest, echo.Map{
				"status":  http.StatusBadRequest,
				"message": err.Error(),
				"data":    nil,
			})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"status":  http.StatusInternalServerError,
				"message": "Failed to restock barang: " + err.Error(),
				"data":    nil,
			})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  http.StatusOK,
		"message": "Barang restocked successfully",
		"data":    barang,
	})
}
