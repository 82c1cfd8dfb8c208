package services

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/c14220110/klinik-kampus-backend/internal/inventaris/models"
)

// BarangService menangani intake, metadata, dan restock barang inventaris.
// Mutasi stok keluar hanya boleh lewat DispensingService.
type BarangService struct {
	DB *sql.DB
}

func NewBarangService(db *sql.DB) *BarangService {
	return &BarangService{DB: db}
}

const kolomBarang = `id_barang, nama, kategori, stok, stok_awal, satuan, stok_minimum,
	tanggal_kadaluarsa, pemasok, lokasi, keterangan, created_at, updated_at`

func scanBarang(row interface{ Scan(...interface{}) error }) (*models.BarangInventaris, error) {
	var b models.BarangInventaris
	err := row.Scan(
		&b.IDBarang, &b.Nama, &b.Kategori, &b.Stok, &b.StokAwal, &b.Satuan, &b.StokMinimum,
		&b.TanggalKadaluarsa, &b.Pemasok, &b.Lokasi, &b.Keterangan, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBarang menambahkan barang baru (intake inventaris).
// stok_awal disimpan untuk keperluan rekonsiliasi riwayat.
func (s *BarangService) CreateBarang(req models.BarangRequest) (int64, error) {
	now := time.Now()
	res, err := s.DB.Exec(
		`INSERT INTO Barang_Inventaris
			(nama, kategori, stok, stok_awal, satuan, stok_minimum,
			 tanggal_kadaluarsa, pemasok, lokasi, keterangan, created_at, updated_at)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		req.Nama, req.Kategori, req.Stok, req.Stok, req.Satuan, req.StokMinimum,
		req.TanggalKadaluarsa, req.Pemasok, req.Lokasi, req.Keterangan, now, now,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetBarangByID mengambil satu barang; ErrBarangTidakDitemukan bila tidak ada.
func (s *BarangService) GetBarangByID(id int) (*models.BarangInventaris, error) {
	row := s.DB.QueryRow(`SELECT `+kolomBarang+` FROM Barang_Inventaris WHERE id_barang = ?`, id)
	b, err := scanBarang(row)
	if err == sql.ErrNoRows {
		return nil, ErrBarangTidakDitemukan
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// GetStok mengambil stok saat ini untuk satu barang.
func (s *BarangService) GetStok(id int) (int, error) {
	var stok int
	err := s.DB.QueryRow(`SELECT stok FROM Barang_Inventaris WHERE id_barang = ?`, id).Scan(&stok)
	if err == sql.ErrNoRows {
		return 0, ErrBarangTidakDitemukan
	}
	if err != nil {
		return 0, err
	}
	return stok, nil
}

// ListBarang menampilkan daftar barang dengan pencarian nama + pagination.
// • q           : string pencarian, case-insensitive, boleh kosong
// • stokMenipis : bila true hanya barang dengan stok <= stok_minimum
// • limit       : jumlah baris per halaman (default 20, max 100)
// • page        : halaman dimulai dari 1 (default 1)
func (s *BarangService) ListBarang(q string, stokMenipis bool, limit, page int) ([]models.BarangInventaris, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	conds := []string{}
	params := []interface{}{}

	if q != "" {
		conds = append(conds, "LOWER(nama) LIKE ?")
		params = append(params, "%"+strings.ToLower(q)+"%")
	}
	if stokMenipis {
		conds = append(conds, "stok <= stok_minimum")
	}

	query := `SELECT ` + kolomBarang + ` FROM Barang_Inventaris`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY nama"
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)

	rows, err := s.DB.Query(query, params...)
	if err != nil {
		return nil, fmt.Errorf("query error: %v", err)
	}
	defer rows.Close()

	var list []models.BarangInventaris
	for rows.Next() {
		b, err := scanBarang(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %v", err)
		}
		list = append(list, *b)
	}
	return list, rows.Err()
}

// UpdateBarang memperbarui metadata barang. Kolom stok sengaja tidak
// disentuh: mutasi stok hanya lewat restock/dispensing.
func (s *BarangService) UpdateBarang(id int, req models.UpdateBarangRequest) error {
	res, err := s.DB.Exec(
		`UPDATE Barang_Inventaris
		 SET nama = ?, kategori = ?, satuan = ?, stok_minimum = ?,
		     tanggal_kadaluarsa = ?, pemasok = ?, lokasi = ?, keterangan = ?, updated_at = ?
		 WHERE id_barang = ?`,
		req.Nama, req.Kategori, req.Satuan, req.StokMinimum,
		req.TanggalKadaluarsa, req.Pemasok, req.Lokasi, req.Keterangan, time.Now(), id,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBarangTidakDitemukan
	}
	return nil
}

// DeleteBarang menghapus barang beserta riwayat legacy per-barangnya.
// Catatan_Dispensing tidak ikut dihapus: riwayat kanonik harus tetap
// utuh walau barangnya sudah tidak ada.
func (s *BarangService) DeleteBarang(id int) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM Riwayat_Barang WHERE id_barang = ?`, id); err != nil {
		tx.Rollback()
		return err
	}

	res, err := tx.Exec(`DELETE FROM Barang_Inventaris WHERE id_barang = ?`, id)
	if err != nil {
		tx.Rollback()
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if affected == 0 {
		tx.Rollback()
		return ErrBarangTidakDitemukan
	}

	return tx.Commit()
}

// Restock menambah stok barang dan mencatatnya ke Riwayat_Restock
// di dalam satu transaksi.
func (s *BarangService) Restock(id, jumlah int, oleh string) (*models.BarangInventaris, error) {
	if jumlah < 1 {
		return nil, fmt.Errorf("%w: jumlah restock minimal 1", ErrPermintaanTidakValid)
	}
	if oleh == "" {
		return nil, fmt.Errorf("%w: identitas petugas restock wajib diisi", ErrPermintaanTidakValid)
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	res, err := tx.Exec(
		`UPDATE Barang_Inventaris SET stok = stok + ?, updated_at = ? WHERE id_barang = ?`,
		jumlah, now, id,
	)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if affected == 0 {
		tx.Rollback()
		return nil, ErrBarangTidakDitemukan
	}

	if _, err := tx.Exec(
		`INSERT INTO Riwayat_Restock (id_barang, jumlah, oleh, waktu) VALUES (?,?,?,?)`,
		id, jumlah, oleh, now,
	); err != nil {
		tx.Rollback()
		return nil, err
	}

	row := tx.QueryRow(`SELECT `+kolomBarang+` FROM Barang_Inventaris WHERE id_barang = ?`, id)
	b, err := scanBarang(row)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return b, nil
}
