package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/klinik-kampus-backend/internal/common/middlewares"
	"github.com/c14220110/klinik-kampus-backend/internal/kunjungan/models"
	"github.com/c14220110/klinik-kampus-backend/internal/kunjungan/services"
	"github.com/c14220110/klinik-kampus-backend/pkg/utils"
)

type KunjunganController struct {
	Service *services.KunjunganService
}

func NewKunjunganController(s *services.KunjunganService) *KunjunganController {
	return &KunjunganController{Service: s}
}

// POST /api/kunjungan
func (kc *KunjunganController) SimpanKunjunganHandler(c echo.Context) error {
	var req models.KunjunganRequest
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

	claims, ok := c.Get(string(middlewares.ContextKeyClaims)).(*utils.Claims)
	if !ok || claims == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"status":  http.StatusUnauthorized,
			"message": "Invalid or missing token claims",
			"data":    nil,
		})
	}

	oleh := claims.Nama
	if oleh == "" {
		oleh = claims.Username
	}

	idKunjungan, hasilObat, err := kc.Service.SimpanKunjungan(req, oleh)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status":  http.StatusInternalServerError,
			"message": "Failed to save kunjungan: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  http.StatusOK,
		"message": "Kunjungan saved successfully",
		"data": echo.Map{
			"id_kunjungan": idKunjungan,
			"hasil_obat":   hasilObat,
		},
	})
}

// GET /api/kunjungan/:idPasien
func (kc *KunjunganController) GetRiwayatKunjunganHandler(c echo.Context) error {
	idPasien, err := strconv.Atoi(c.Param("idPasien"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"status":  http.StatusBadRequest,
			"message": "idPasien must be a number",
			"data":    nil,
		})
	}

	riwayat, err := kc.Service.GetRiwayatByPasien(idPasien)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve riwayat kunjungan: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  http.StatusOK,
		"message": "Riwayat kunjungan retrieved successfully",
		"data":    riwayat,
	})
}
