package routes

import (
	"database/sql"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/klinik-kampus-backend/config"
	"github.com/c14220110/klinik-kampus-backend/internal/common/middlewares"
	inventarisControllers "github.com/c14220110/klinik-kampus-backend/internal/inventaris/controllers"
	inventarisServices "github.com/c14220110/klinik-kampus-backend/internal/inventaris/services"
	kunjunganControllers "github.com/c14220110/klinik-kampus-backend/internal/kunjungan/controllers"
	kunjunganServices "github.com/c14220110/klinik-kampus-backend/internal/kunjungan/services"
	manajemenControllers "github.com/c14220110/klinik-kampus-backend/internal/manajemen/controllers"
	manajemenModels "github.com/c14220110/klinik-kampus-backend/internal/manajemen/models"
	manajemenServices "github.com/c14220110/klinik-kampus-backend/internal/manajemen/services"
	"github.com/c14220110/klinik-kampus-backend/internal/notifikasi"
	"github.com/c14220110/klinik-kampus-backend/ws"
)

// Init menginisialisasi semua routes menggunakan Echo framework.
func Init(e *echo.Echo, db *sql.DB, hub *ws.Hub) {
	cfg := config.LoadConfig()

	// Notifier stok menipis: email + broadcast dashboard
	notifier := notifikasi.NewNotifier(notifikasi.NewGomailSender(cfg), hub, cfg.AlertEmailTo)

	// Inisialisasi service
	barangService := inventarisServices.NewBarangService(db)
	dispensingService := inventarisServices.NewDispensingService(db, notifier)
	laporanService := inventarisServices.NewLaporanService(db)
	kunjunganService := kunjunganServices.NewKunjunganService(db, dispensingService)
	karyawanService := manajemenServices.NewKaryawanService(db)

	// Inisialisasi controller dengan service yang sesuai
	barangController := inventarisControllers.NewBarangController(barangService, dispensingService)
	dispensingController := inventarisControllers.NewDispensingController(dispensingService, laporanService)
	kunjunganController := kunjunganControllers.NewKunjunganController(kunjunganService)
	karyawanController := manajemenControllers.NewKaryawanController(karyawanService)

	stafKlinik := middlewares.RequireRole(
		manajemenModels.RoleStafKlinik,
		manajemenModels.RoleDokter,
		manajemenModels.RolePerawat,
	)

	// Grup API utama
	api := e.Group("/api")

	// **Grup Manajemen**
	manajemen := api.Group("/manajemen")
	manajemen.POST("/login", karyawanController.Login) // Tidak pakai JWT

	// **Grup Inventaris**: seluruhnya butuh JWT + role staf klinik
	inventaris := api.Group("/inventaris", middlewares.JWTMiddleware(), stafKlinik)
	inventaris.GET("", barangController.ListBarangHandler)
	inventaris.POST("", barangController.CreateBarangHandler)
	inventaris.GET("/:id", barangController.GetBarangDetailHandler)
	inventaris.PUT("/:id", barangController.UpdateBarangHandler)
	inventaris.DELETE("/:id", barangController.DeleteBarangHandler)
	inventaris.POST("/:id/restock", barangController.RestockHandler)
	inventaris.GET("/:id/rekonsiliasi", dispensingController.RekonsiliasiHandler)

	// Dispensing di bawah inventaris
	inventaris.POST("/dispense", dispensingController.DispenseHandler)
	inventaris.GET("/dispensing/riwayat/:id", dispensingController.RiwayatBarangHandler)
	inventaris.GET("/dispensing/catatan", dispensingController.SemuaCatatanHandler)
	inventaris.GET("/dispensing/statistik", dispensingController.StatistikHandler)

	// **Grup Kunjungan**
	kunjungan := api.Group("/kunjungan", middlewares.JWTMiddleware(), stafKlinik)
	kunjungan.POST("", kunjunganController.SimpanKunjunganHandler)
	kunjungan.GET("/:idPasien", kunjunganController.GetRiwayatKunjunganHandler)

	// WebSocket dashboard peringatan stok
	e.GET("/ws/notifikasi", ws.ServeWS(hub))
}
