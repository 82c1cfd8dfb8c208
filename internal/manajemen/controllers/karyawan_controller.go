package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/klinik-kampus-backend/internal/manajemen/models"
	"github.com/c14220110/klinik-kampus-backend/internal/manajemen/services"
	"github.com/c14220110/klinik-kampus-backend/pkg/utils"
)

type KaryawanController struct {
	Service *services.KaryawanService
}

func NewKaryawanController(s *services.KaryawanService) *KaryawanController {
	return &KaryawanController{Service: s}
}

// POST /api/manajemen/login
func (kc *KaryawanController) Login(c echo.Context) error {
	var req models.LoginRequest
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
			"message": "Username and password are required",
			"data":    nil,
		})
	}

	karyawan, err := kc.Service.AuthenticateKaryawan(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrLoginGagal) {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"status":  http.StatusUnauthorized,
				"message": "Username atau password salah",
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status":  http.StatusInternalServerError,
			"message": "Failed to authenticate: " + err.Error(),
			"data":    nil,
		})
	}

	token, err := utils.GenerateJWTToken(
		karyawan.IDKaryawan, karyawan.Nama, karyawan.Role, karyawan.Username,
		time.Now().Add(8*time.Hour),
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status":  http.StatusInternalServerError,
			"message": "Failed to generate token: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  http.StatusOK,
		"message": "Login successful",
		"data": echo.Map{
			"token":    token,
			"karyawan": karyawan,
		},
	})
}
