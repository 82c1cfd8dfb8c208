package services

import (
	"database/sql"
	"time"

	invmodels "github.com/c14220110/klinik-kampus-backend/internal/inventaris/models"
	"github.com/c14220110/klinik-kampus-backend/internal/kunjungan/models"
)

// PelaksanaDispensing adalah pintu dispensing yang dipakai saat kunjungan
// disimpan; dipenuhi oleh inventaris/services.DispensingService.
type PelaksanaDispensing interface {
	Dispense(req invmodels.DispenseRequest, dispensingOleh string) (*invmodels.DispenseResult, error)
}

type KunjunganService struct {
	DB         *sql.DB
	Dispensing PelaksanaDispensing
}

func NewKunjunganService(db *sql.DB, dispensing PelaksanaDispensing) *KunjunganService {
	return &KunjunganService{DB: db, Dispensing: dispensing}
}

// SimpanKunjungan menyimpan kunjungan lalu mendispensing setiap baris obat
// satu per satu. Semantik batch di sini best-effort dan memang disengaja:
// satu obat yang habis tidak boleh membatalkan kunjungan maupun memblokir
// obat lain pada resep yang sama. Kegagalan per baris dikembalikan sebagai
// daftar hasil, bukan error.
func (s *KunjunganService) SimpanKunjungan(req models.KunjunganRequest, diperiksaOleh string) (int64, []models.HasilDispensingObat, error) {
	res, err := s.DB.Exec(
		`INSERT INTO Kunjungan (id_pasien, nama_pasien, keluhan, diagnosa, catatan, diperiksa_oleh, created_at)
		 VALUES (?,?,?,?,?,?,?)`,
		req.IDPasien, req.NamaPasien, req.Keluhan, req.Diagnosa, req.Catatan, diperiksaOleh, time.Now(),
	)
	if err != nil {
		return 0, nil, err
	}
	idKunjungan, err := res.LastInsertId()
	if err != nil {
		return 0, nil, err
	}

	alasan := "Dispensing kunjungan klinik"
	hasil := make([]models.HasilDispensingObat, 0, len(req.Obat))

	for _, o := range req.Obat {
		idPasien := req.IDPasien
		dreq := invmodels.DispenseRequest{
			IDBarang:    o.IDBarang,
			Jumlah:      o.Jumlah,
			NamaPasien:  req.NamaPasien,
			IDPasien:    &idPasien,
			Alasan:      &alasan,
			IDKunjungan: &idKunjungan,
		}

		r, err := s.Dispensing.Dispense(dreq, diperiksaOleh)
		if err != nil {
			hasil = append(hasil, models.HasilDispensingObat{
				Obat:     o.NamaObat,
				IDBarang: o.IDBarang,
				Sukses:   false,
				Pesan:    err.Error(),
			})
			continue
		}

		nama := o.NamaObat
		if nama == "" {
			nama = r.Barang.Nama
		}
		stokBaru := r.Barang.Stok
		hasil = append(hasil, models.HasilDispensingObat{
			Obat:     nama,
			IDBarang: o.IDBarang,
			Sukses:   true,
			StokBaru: &stokBaru,
		})
	}

	return idKunjungan, hasil, nil
}

// GetRiwayatByPasien menampilkan riwayat kunjungan satu pasien, terbaru dulu.
func (s *KunjunganService) GetRiwayatByPasien(idPasien int) ([]models.Kunjungan, error) {
	rows, err := s.DB.Query(
		`SELECT id_kunjungan, id_pasien, nama_pasien, keluhan, diagnosa, catatan, diperiksa_oleh, created_at
		 FROM Kunjungan WHERE id_pasien = ? ORDER BY created_at DESC`,
		idPasien,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Kunjungan
	for rows.Next() {
		var k models.Kunjungan
		if err := rows.Scan(&k.IDKunjungan, &k.IDPasien, &k.NamaPasien, &k.Keluhan,
			&k.Diagnosa, &k.Catatan, &k.DiperiksaOleh, &k.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, k)
	}
	return list, rows.Err()
}
