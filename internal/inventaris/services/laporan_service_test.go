package services

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c14220110/klinik-kampus-backend/internal/inventaris/models"
)

func TestGetStatistik(t *testing.T) {
	db, mock := bukaMockDB(t)
	svc := NewLaporanService(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SUM(jumlah) AS total, COUNT(*) AS banyak`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id_barang", "nama_barang", "kategori_barang", "total", "banyak"}).
			AddRow(7, "Paracetamol 500mg", models.KategoriObat, 42, 15).
			AddRow(9, "Kasa steril", models.KategoriPerlengkapan, 12, 4))

	mock.ExpectQuery(regexp.QuoteMeta(`b.stok <= b.stok_minimum`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id_barang", "nama", "stok", "stok_minimum", "total"}).
			AddRow(7, "Paracetamol 500mg", 3, 5, 42))

	stat, err := svc.GetStatistik(30)
	require.NoError(t, err)
	assert.Equal(t, 30, stat.PeriodeHari)
	require.Len(t, stat.BarangTeratas, 2)
	assert.Equal(t, "Paracetamol 500mg", stat.BarangTeratas[0].NamaBarang)
	assert.Equal(t, 42, stat.BarangTeratas[0].TotalJumlah)
	require.Len(t, stat.StokMenipis, 1)
	assert.Equal(t, 3, stat.StokMenipis[0].Stok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStatistik_PeriodeDefault(t *testing.T) {
	db, mock := bukaMockDB(t)
	svc := NewLaporanService(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM Catatan_Dispensing`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id_barang", "nama_barang", "kategori_barang", "total", "banyak"}))
	mock.ExpectQuery(regexp.QuoteMeta(`b.stok <= b.stok_minimum`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id_barang", "nama", "stok", "stok_minimum", "total"}))

	stat, err := svc.GetStatistik(0)
	require.NoError(t, err)
	assert.Equal(t, 30, stat.PeriodeHari)
	assert.Empty(t, stat.BarangTeratas)
	assert.Empty(t, stat.StokMenipis)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCekRekonsiliasi(t *testing.T) {
	t.Run("seimbang", func(t *testing.T) {
		db, mock := bukaMockDB(t)
		svc := NewLaporanService(db)

		// stok_awal 50 = stok 23 + dispensing 47 - restock 20
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT stok_awal, stok FROM Barang_Inventaris`)).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows([]string{"stok_awal", "stok"}).AddRow(50, 23))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM Catatan_Dispensing WHERE id_barang = ?`)).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(47))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM Riwayat_Restock WHERE id_barang = ?`)).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(20))

		r, err := svc.CekRekonsiliasi(7)
		require.NoError(t, err)
		assert.True(t, r.Seimbang)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("tidak seimbang", func(t *testing.T) {
		db, mock := bukaMockDB(t)
		svc := NewLaporanService(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT stok_awal, stok FROM Barang_Inventaris`)).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows([]string{"stok_awal", "stok"}).AddRow(50, 23))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM Catatan_Dispensing WHERE id_barang = ?`)).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(40))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM Riwayat_Restock WHERE id_barang = ?`)).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(20))

		r, err := svc.CekRekonsiliasi(7)
		require.NoError(t, err)
		assert.False(t, r.Seimbang)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
