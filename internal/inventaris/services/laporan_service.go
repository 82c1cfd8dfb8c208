package services

import (
	"database/sql"
	"time"

	"github.com/c14220110/klinik-kampus-backend/internal/inventaris/models"
)

// LaporanService berisi agregasi read-only atas catatan dispensing.
type LaporanService struct {
	DB *sql.DB
}

func NewLaporanService(db *sql.DB) *LaporanService {
	return &LaporanService{DB: db}
}

// GetStatistik merangkum periode N hari terakhir:
// • barang_teratas : peringkat total jumlah didispensing per barang
// • stok_menipis   : barang yang stoknya <= ambang dan sempat didispensing
func (s *LaporanService) GetStatistik(periodeHari int) (*models.StatistikDispensing, error) {
	if periodeHari <= 0 {
		periodeHari = 30
	}
	if periodeHari > 365 {
		periodeHari = 365
	}
	batas := time.Now().AddDate(0, 0, -periodeHari)

	stat := &models.StatistikDispensing{
		PeriodeHari:   periodeHari,
		BarangTeratas: []models.BarangTerbanyak{},
		StokMenipis:   []models.BarangMenipis{},
	}

	rows, err := s.DB.Query(
		`SELECT id_barang, nama_barang, kategori_barang, SUM(jumlah) AS total, COUNT(*) AS banyak
		 FROM Catatan_Dispensing
		 WHERE waktu_dispensing >= ?
		 GROUP BY id_barang, nama_barang, kategori_barang
		 ORDER BY total DESC
		 LIMIT 10`,
		batas,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var t models.BarangTerbanyak
		if err := rows.Scan(&t.IDBarang, &t.NamaBarang, &t.KategoriBarang, &t.TotalJumlah, &t.JumlahCatatan); err != nil {
			return nil, err
		}
		stat.BarangTeratas = append(stat.BarangTeratas, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rowsMenipis, err := s.DB.Query(
		`SELECT b.id_barang, b.nama, b.stok, b.stok_minimum, COALESCE(SUM(c.jumlah), 0) AS total
		 FROM Barang_Inventaris b
		 JOIN Catatan_Dispensing c ON c.id_barang = b.id_barang
		 WHERE b.stok <= b.stok_minimum AND c.waktu_dispensing >= ?
		 GROUP BY b.id_barang, b.nama, b.stok, b.stok_minimum
		 ORDER BY b.stok ASC`,
		batas,
	)
	if err != nil {
		return nil, err
	}
	defer rowsMenipis.Close()

	for rowsMenipis.Next() {
		var m models.BarangMenipis
		if err := rowsMenipis.Scan(&m.IDBarang, &m.Nama, &m.Stok, &m.StokMinimum, &m.TotalDidispensing); err != nil {
			return nil, err
		}
		stat.StokMenipis = append(stat.StokMenipis, m)
	}
	return stat, rowsMenipis.Err()
}

// Rekonsiliasi adalah hasil pemeriksaan kecocokan riwayat satu barang:
// stok_awal harus sama dengan stok sekarang + total didispensing - total restock.
type Rekonsiliasi struct {
	IDBarang        int  `json:"id_barang"`
	StokAwal        int  `json:"stok_awal"`
	Stok            int  `json:"stok"`
	TotalDispensing int  `json:"total_dispensing"`
	TotalRestock    int  `json:"total_restock"`
	Seimbang        bool `json:"seimbang"`
}

// CekRekonsiliasi menghitung properti konservasi riwayat untuk satu barang.
// Dipakai untuk pemeriksaan manual bila ada kecurigaan riwayat tidak sinkron.
func (s *LaporanService) CekRekonsiliasi(idBarang int) (*Rekonsiliasi, error) {
	r := Rekonsiliasi{IDBarang: idBarang}

	err := s.DB.QueryRow(
		`SELECT stok_awal, stok FROM Barang_Inventaris WHERE id_barang = ?`, idBarang,
	).Scan(&r.StokAwal, &r.Stok)
	if err == sql.ErrNoRows {
		return nil, ErrBarangTidakDitemukan
	}
	if err != nil {
		return nil, err
	}

	if err := s.DB.QueryRow(
		`SELECT COALESCE(SUM(jumlah), 0) FROM Catatan_Dispensing WHERE id_barang = ?`, idBarang,
	).Scan(&r.TotalDispensing); err != nil {
		return nil, err
	}

	if err := s.DB.QueryRow(
		`SELECT COALESCE(SUM(jumlah), 0) FROM Riwayat_Restock WHERE id_barang = ?`, idBarang,
	).Scan(&r.TotalRestock); err != nil {
		return nil, err
	}

	r.Seimbang = r.StokAwal == r.Stok+r.TotalDispensing-r.TotalRestock
	return &r, nil
}
