package services

import (
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/c14220110/klinik-kampus-backend/internal/manajemen/models"
)

var ErrLoginGagal = errors.New("invalid credentials")

type KaryawanService struct {
	DB *sql.DB
}

func NewKaryawanService(db *sql.DB) *KaryawanService {
	return &KaryawanService{DB: db}
}

// AuthenticateKaryawan memvalidasi login staf klinik.
func (s *KaryawanService) AuthenticateKaryawan(username, password string) (*models.Karyawan, error) {
	var k models.Karyawan
	query := "SELECT id_karyawan, nama, username, password, role FROM Karyawan WHERE username = ?"
	err := s.DB.QueryRow(query, username).Scan(&k.IDKaryawan, &k.Nama, &k.Username, &k.Password, &k.Role)
	if err == sql.ErrNoRows {
		return nil, ErrLoginGagal
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(k.Password), []byte(password)); err != nil {
		return nil, ErrLoginGagal
	}
	return &k, nil
}
