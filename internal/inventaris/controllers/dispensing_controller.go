package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/klinik-kampus-backend/internal/inventaris/models"
	"github.com/c14220110/klinik-kampus-backend/internal/inventaris/services"
)

type DispensingController struct {
	Service *services.DispensingService
	Laporan *services.LaporanService
}

func NewDispensingController(s *services.DispensingService, l *services.LaporanService) *DispensingController {
	return &DispensingController{Service: s, Laporan: l}
}

// POST /api/inventaris/dispense
func (dc *DispensingController) DispenseHandler(c echo.Context) error {
	var req models.DispenseRequest
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

	oleh := namaPetugas(c)
	if oleh == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"status":  http.StatusUnauthorized,
			"message": "Invalid or missing token claims",
			"data":    nil,
		})
	}

	result, err := dc.Service.Dispense(req, oleh)
	if err != nil {
		var stokErr *services.StokTidakCukupError
		switch {
		case errors.Is(err, services.ErrBarangTidakDitemukan):
			return c.JSON(http.StatusNotFound, echo.Map{
				"status":  http.StatusNotFound,
				"message": "Barang tidak ditemukan",
				"data":    nil,
			})
		case errors.As(err, &stokErr):
			return c.JSON(http.StatusBadRequest, echo.Map{
				"status":  http.StatusBadRequest,
				"message": stokErr.Error(),
				"data": echo.Map{
					"tersedia": stokErr.Tersedia,
					"diminta":  stokErr.Diminta,
				},
			})
		case errors.Is(err, services.ErrPermintaanTidakValid):
			return c.JSON(http.StatusBadRequest, echo.Map{
				"status":  http.StatusBadRequest,
				"message": err.Error(),
				"data":    nil,
			})
		default:
			// Termasuk ErrGagalMencatat: kegagalan server, jangan pernah
			// diturunkan menjadi sukses.
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"status":  http.StatusInternalServerError,
				"message": "Failed to dispense: " + err.Error(),
				"data":    nil,
			})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  http.StatusOK,
		"message": "Dispensing recorded successfully",
		"data":    result,
	})
}

// parseFilterRiwayat membaca dari, sampai (format 2006-01-02) dan limit.
func parseFilterRiwayat(c echo.Context) models.FilterRiwayat {
	var filter models.FilterRiwayat
	if v := c.QueryParam("dari"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.Dari = &t
		}
	}
	if v := c.QueryParam("sampai"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			// inklusif sampai akhir hari
			t = t.Add(24*time.Hour - time.Second)
			filter.Sampai = &t
		}
	}
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))
	return filter
}

// GET /api/inventaris/dispensing/riwayat/:id?dari=&sampai=&limit=
func (dc *DispensingController) RiwayatBarangHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"status":  http.StatusBadRequest,
			"message": "id must be a number",
			"data":    nil,
		})
	}

	list, err := dc.Service.GetRiwayatByBarang(id, parseFilterRiwayat(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve riwayat dispensing: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  http.StatusOK,
		"message": "Riwayat dispensing retrieved successfully",
		"data":    list,
	})
}

// GET /api/inventaris/dispensing/catatan?dari=&sampai=&limit=
func (dc *DispensingController) SemuaCatatanHandler(c echo.Context) error {
	list, err := dc.Service.GetSemuaCatatan(parseFilterRiwayat(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve catatan dispensing: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  http.StatusOK,
		"message": "Catatan dispensing retrieved successfully",
		"data":    list,
	})
}

// GET /api/inventaris/dispensing/statistik?periode=30
func (dc *DispensingController) StatistikHandler(c echo.Context) error {
	periode, _ := strconv.Atoi(c.QueryParam("periode"))

	stat, err := dc.Laporan.GetStatistik(periode)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve statistik dispensing: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  http.StatusOK,
		"message": "Statistik dispensing retrieved successfully",
		"data":    stat,
	})
}

// GET /api/inventaris/:id/rekonsiliasi
func (dc *DispensingController) RekonsiliasiHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"status":  http.StatusBadRequest,
			"message": "id must be a number",
			"data":    nil,
		})
	}

	rekon, err := dc.Laporan.CekRekonsiliasi(id)
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
			"message": "Failed to check rekonsiliasi: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  http.StatusOK,
		"message": "Rekonsiliasi checked successfully",
		"data":    rekon,
	})
}
