package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/c14220110/klinik-kampus-backend/internal/inventaris/models"
)

// PemberiNotifikasi mengevaluasi stok setelah dispensing dan mengirim
// peringatan bila menipis. Hasilnya tidak pernah mempengaruhi sukses
// atau gagalnya dispensing.
type PemberiNotifikasi interface {
	PeriksaDanBeritahu(barang models.BarangInventaris)
}

// DispensingService adalah satu-satunya pintu keluar stok inventaris.
// Baik dispensing langsung dari loket farmasi maupun dispensing yang
// dipicu kunjungan masuk lewat Dispense.
type DispensingService struct {
	DB         *sql.DB
	Notifikasi PemberiNotifikasi
}

func NewDispensingService(db *sql.DB, notifikasi PemberiNotifikasi) *DispensingService {
	return &DispensingService{DB: db, Notifikasi: notifikasi}
}

// Dispense mengeluarkan stok untuk satu barang: decrement bersyarat
// pada stok (guard terhadap lost update antar request yang berebut
// barang yang sama), tulis Catatan_Dispensing kanonik dengan snapshot
// stok_setelah, lalu tulis salinan Riwayat_Barang untuk pembaca lama.
// Ketiganya satu transaksi: catatan gagal ditulis berarti decrement
// ikut batal. Notifikasi stok menipis dijalankan setelah commit dan
// tidak ditunggu.
func (s *DispensingService) Dispense(req models.DispenseRequest, dispensingOleh string) (*models.DispenseResult, error) {
	if req.IDBarang == 0 {
		return nil, fmt.Errorf("%w: id_barang wajib diisi", ErrPermintaanTidakValid)
	}
	if req.Jumlah < 1 {
		return nil, fmt.Errorf("%w: jumlah minimal 1", ErrPermintaanTidakValid)
	}
	if dispensingOleh == "" {
		return nil, fmt.Errorf("%w: identitas petugas dispensing wajib diisi", ErrPermintaanTidakValid)
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, err
	}

	now := time.Now()

	// Decrement bersyarat: nol baris berarti barang tidak ada ATAU stok kurang.
	res, err := tx.Exec(
		`UPDATE Barang_Inventaris SET stok = stok - ?, updated_at = ? WHERE id_barang = ? AND stok >= ?`,
		req.Jumlah, now, req.IDBarang, req.Jumlah,
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
		var tersedia int
		err := tx.QueryRow(`SELECT stok FROM Barang_Inventaris WHERE id_barang = ?`, req.IDBarang).Scan(&tersedia)
		tx.Rollback()
		if err == sql.ErrNoRows {
			return nil, ErrBarangTidakDitemukan
		}
		if err != nil {
			return nil, err
		}
		return nil, &StokTidakCukupError{Tersedia: tersedia, Diminta: req.Jumlah}
	}

	row := tx.QueryRow(`SELECT `+kolomBarang+` FROM Barang_Inventaris WHERE id_barang = ?`, req.IDBarang)
	barang, err := scanBarang(row)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	catatan := models.CatatanDispensing{
		NoReferensi:     uuid.NewString(),
		IDBarang:        barang.IDBarang,
		NamaBarang:      barang.Nama,
		KategoriBarang:  barang.Kategori,
		NamaPasien:      req.NamaPasien,
		IDPasien:        req.IDPasien,
		Jumlah:          req.Jumlah,
		DispensingOleh:  dispensingOleh,
		IDKunjungan:     req.IDKunjungan,
		Alasan:          req.Alasan,
		StokSetelah:     barang.Stok,
		WaktuDispensing: now,
	}

	resCatatan, err := tx.Exec(
		`INSERT INTO Catatan_Dispensing
			(no_referensi, id_barang, nama_barang, kategori_barang, nama_pasien, id_pasien,
			 jumlah, dispensing_oleh, id_kunjungan, alasan, stok_setelah, waktu_dispensing)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		catatan.NoReferensi, catatan.IDBarang, catatan.NamaBarang, catatan.KategoriBarang,
		catatan.NamaPasien, catatan.IDPasien, catatan.Jumlah, catatan.DispensingOleh,
		catatan.IDKunjungan, catatan.Alasan, catatan.StokSetelah, catatan.WaktuDispensing,
	)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("%w: %v", ErrGagalMencatat, err)
	}
	catatan.IDCatatan, err = resCatatan.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("%w: %v", ErrGagalMencatat, err)
	}

	if _, err := tx.Exec(
		`INSERT INTO Riwayat_Barang
			(id_barang, jumlah, nama_pasien, dispensing_oleh, stok_setelah, waktu_dispensing)
		 VALUES (?,?,?,?,?,?)`,
		catatan.IDBarang, catatan.Jumlah, catatan.NamaPasien, catatan.DispensingOleh,
		catatan.StokSetelah, catatan.WaktuDispensing,
	); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("%w: %v", ErrGagalMencatat, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGagalMencatat, err)
	}

	if s.Notifikasi != nil {
		s.Notifikasi.PeriksaDanBeritahu(*barang)
	}

	return &models.DispenseResult{
		Barang:         barang,
		Catatan:        &catatan,
		PeringatanStok: barang.StokMenipis(),
	}, nil
}

const kolomCatatan = `id_catatan, no_referensi, id_barang, nama_barang, kategori_barang,
	nama_pasien, id_pasien, jumlah, dispensing_oleh, id_kunjungan, alasan,
	stok_setelah, waktu_dispensing`

func scanCatatan(rows *sql.Rows) (*models.CatatanDispensing, error) {
	var c models.CatatanDispensing
	err := rows.Scan(
		&c.IDCatatan, &c.NoReferensi, &c.IDBarang, &c.NamaBarang, &c.KategoriBarang,
		&c.NamaPasien, &c.IDPasien, &c.Jumlah, &c.DispensingOleh, &c.IDKunjungan,
		&c.Alasan, &c.StokSetelah, &c.WaktuDispensing,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func batasRiwayat(limit int) int {
	if limit <= 0 {
		return 50
	}
	if limit > 200 {
		return 200
	}
	return limit
}

// GetRiwayatByBarang membaca catatan kanonik satu barang, terbaru dulu.
func (s *DispensingService) GetRiwayatByBarang(idBarang int, filter models.FilterRiwayat) ([]models.CatatanDispensing, error) {
	query := `SELECT ` + kolomCatatan + ` FROM Catatan_Dispensing WHERE id_barang = ?`
	params := []interface{}{idBarang}

	if filter.Dari != nil {
		query += " AND waktu_dispensing >= ?"
		params = append(params, *filter.Dari)
	}
	if filter.Sampai != nil {
		query += " AND waktu_dispensing <= ?"
		params = append(params, *filter.Sampai)
	}
	query += fmt.Sprintf(" ORDER BY waktu_dispensing DESC LIMIT %d", batasRiwayat(filter.Limit))

	rows, err := s.DB.Query(query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.CatatanDispensing
	for rows.Next() {
		c, err := scanCatatan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *c)
	}
	return list, rows.Err()
}

// GetSemuaCatatan membaca seluruh catatan kanonik lintas barang, terbaru dulu.
func (s *DispensingService) GetSemuaCatatan(filter models.FilterRiwayat) ([]models.CatatanDispensing, error) {
	query := `SELECT ` + kolomCatatan + ` FROM Catatan_Dispensing`
	conds := []string{}
	params := []interface{}{}

	if filter.Dari != nil {
		conds = append(conds, "waktu_dispensing >= ?")
		params = append(params, *filter.Dari)
	}
	if filter.Sampai != nil {
		conds = append(conds, "waktu_dispensing <= ?")
		params = append(params, *filter.Sampai)
	}
	if len(conds) > 0 {
		query += " WHERE " + conds[0]
		for _, c := range conds[1:] {
			query += " AND " + c
		}
	}
	query += fmt.Sprintf(" ORDER BY waktu_dispensing DESC LIMIT %d", batasRiwayat(filter.Limit))

	rows, err := s.DB.Query(query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.CatatanDispensing
	for rows.Next() {
		c, err := scanCatatan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *c)
	}
	return list, rows.Err()
}

// GetRiwayatLegacy membaca salinan riwayat per-barang (tabel Riwayat_Barang)
// untuk pembaca lama yang masih mengharapkan riwayat menempel pada barang.
func (s *DispensingService) GetRiwayatLegacy(idBarang int) ([]models.RiwayatBarang, error) {
	rows, err := s.DB.Query(
		`SELECT id_riwayat, id_barang, jumlah, nama_pasien, dispensing_oleh, stok_setelah, waktu_dispensing
		 FROM Riwayat_Barang WHERE id_barang = ? ORDER BY waktu_dispensing DESC`,
		idBarang,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.RiwayatBarang
	for rows.Next() {
		var r models.RiwayatBarang
		if err := rows.Scan(&r.IDRiwayat, &r.IDBarang, &r.Jumlah, &r.NamaPasien,
			&r.DispensingOleh, &r.StokSetelah, &r.WaktuDispensing); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	return list, rows.Err()
}
