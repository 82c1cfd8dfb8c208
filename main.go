package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/klinik-kampus-backend/config"
	"github.com/c14220110/klinik-kampus-backend/internal/routes"
	"github.com/c14220110/klinik-kampus-backend/pkg/storage/mariadb"
	"github.com/c14220110/klinik-kampus-backend/pkg/validator"
	"github.com/c14220110/klinik-kampus-backend/ws"
)

func main() {
	cfg := config.LoadConfig()
	db := mariadb.Connect()

	hub := ws.NewHub()
	go hub.Run()

	e := echo.New()
	e.Validator = validator.New()

	routes.Init(e, db, hub)

	log.Printf("Server berjalan pada port %s...", cfg.Port)
	log.Fatal(e.Start(":" + cfg.Port))
}
