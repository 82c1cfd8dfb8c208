package services

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c14220110/klinik-kampus-backend/internal/inventaris/models"
)

func TestCreateBarang_StokAwalIkutTersimpan(t *testing.T) {
	db, mock := bukaMockDB(t)
	svc := NewBarangService(db)

	// stok intake juga disimpan sebagai stok_awal untuk rekonsiliasi
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO Barang_Inventaris`)).
		WithArgs("Paracetamol 500mg", models.KategoriObat, 50, 50, "tablet", 5,
			nil, nil, nil, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := svc.CreateBarang(models.BarangRequest{
		Nama:        "Paracetamol 500mg",
		Kategori:    models.KategoriObat,
		Stok:        50,
		Satuan:      "tablet",
		StokMinimum: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBarangByID_TidakDitemukan(t *testing.T) {
	db, mock := bukaMockDB(t)
	svc := NewBarangService(db)

	mock.ExpectQuery(regexp.QuoteMeta(sqlPilihBarang)).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{
			"id_barang", "nama", "kategori", "stok", "stok_awal", "satuan", "stok_minimum",
			"tanggal_kadaluarsa", "pemasok", "lokasi", "keterangan", "created_at", "updated_at",
		}))

	_, err := svc.GetBarangByID(99)
	assert.ErrorIs(t, err, ErrBarangTidakDitemukan)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStok(t *testing.T) {
	db, mock := bukaMockDB(t)
	svc := NewBarangService(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT stok FROM Barang_Inventaris WHERE id_barang = ?`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"stok"}).AddRow(12))

	stok, err := svc.GetStok(7)
	require.NoError(t, err)
	assert.Equal(t, 12, stok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListBarang_FilterStokMenipis(t *testing.T) {
	db, mock := bukaMockDB(t)
	svc := NewBarangService(db)

	mock.ExpectQuery(regexp.QuoteMeta(`stok <= stok_minimum`)).
		WillReturnRows(barisBarang(7, "Paracetamol 500mg", 3, 50, 5))

	list, err := svc.ListBarang("", true, 20, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].StokMenipis())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBarang_TidakDitemukan(t *testing.T) {
	db, mock := bukaMockDB(t)
	svc := NewBarangService(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE Barang_Inventaris`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.UpdateBarang(99, models.UpdateBarangRequest{
		Nama: "X", Kategori: models.KategoriObat, Satuan: "tablet",
	})
	assert.ErrorIs(t, err, ErrBarangTidakDitemukan)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBarang_HapusRiwayatLegacyJuga(t *testing.T) {
	db, mock := bukaMockDB(t)
	svc := NewBarangService(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM Riwayat_Barang WHERE id_barang = ?`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM Barang_Inventaris WHERE id_barang = ?`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.DeleteBarang(7))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRestock_Sukses(t *testing.T) {
	db, mock := bukaMockDB(t)
	svc := NewBarangService(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE Barang_Inventaris SET stok = stok + ?`)).
		WithArgs(20, sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO Riwayat_Restock`)).
		WithArgs(7, 20, "Bu Tini", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectQuery(regexp.QuoteMeta(sqlPilihBarang)).
		WithArgs(7).
		WillReturnRows(barisBarang(7, "Paracetamol 500mg", 23, 50, 5))
	mock.ExpectCommit()

	barang, err := svc.Restock(7, 20, "Bu Tini")
	require.NoError(t, err)
	assert.Equal(t, 23, barang.Stok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRestock_JumlahTidakValid(t *testing.T) {
	db, mock := bukaMockDB(t)
	svc := NewBarangService(db)

	_, err := svc.Restock(7, 0, "Bu Tini")
	assert.ErrorIs(t, err, ErrPermintaanTidakValid)

	_, err = svc.Restock(7, -5, "Bu Tini")
	assert.ErrorIs(t, err, ErrPermintaanTidakValid)

	_, err = svc.Restock(7, 5, "")
	assert.ErrorIs(t, err, ErrPermintaanTidakValid)

	// tidak ada query yang menyentuh database
	require.NoError(t, mock.ExpectationsWereMet())
}
