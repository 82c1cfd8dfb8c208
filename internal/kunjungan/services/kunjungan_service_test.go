package services

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invmodels "github.com/c14220110/klinik-kampus-backend/internal/inventaris/models"
	invservices "github.com/c14220110/klinik-kampus-backend/internal/inventaris/services"
	"github.com/c14220110/klinik-kampus-backend/internal/kunjungan/models"
)

// dispenserPalsu menjawab per id_barang: stok sisa, atau error.
type dispenserPalsu struct {
	stok       map[int]int
	gagal      map[int]error
	permintaan []invmodels.DispenseRequest
}

func (d *dispenserPalsu) Dispense(req invmodels.DispenseRequest, oleh string) (*invmodels.DispenseResult, error) {
	d.permintaan = append(d.permintaan, req)
	if err, ada := d.gagal[req.IDBarang]; ada {
		return nil, err
	}
	sisa := d.stok[req.IDBarang] - req.Jumlah
	barang := &invmodels.BarangInventaris{IDBarang: req.IDBarang, Nama: "Barang", Stok: sisa, StokMinimum: 0}
	return &invmodels.DispenseResult{
		Barang:  barang,
		Catatan: &invmodels.CatatanDispensing{IDBarang: req.IDBarang, Jumlah: req.Jumlah, StokSetelah: sisa},
	}, nil
}

// Batch tiga baris obat: baris kedua kehabisan stok. Baris 1 dan 3 tetap
// terdispensing, baris 2 dilaporkan gagal dengan pesan, dan kunjungan
// tetap tersimpan.
func TestSimpanKunjungan_BatchBestEffort(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dispenser := &dispenserPalsu{
		stok:  map[int]int{1: 10, 3: 8},
		gagal: map[int]error{2: &invservices.StokTidakCukupError{Tersedia: 1, Diminta: 5}},
	}
	svc := NewKunjunganService(db, dispenser)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO Kunjungan`)).
		WithArgs(44, "Budi", "Demam", "ISPA", "", "drg. Sari", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(301, 1))

	idKunjungan, hasil, err := svc.SimpanKunjungan(models.KunjunganRequest{
		IDPasien:   44,
		NamaPasien: "Budi",
		Keluhan:    "Demam",
		Diagnosa:   "ISPA",
		Obat: []models.ObatKunjungan{
			{IDBarang: 1, NamaObat: "Paracetamol", Jumlah: 4},
			{IDBarang: 2, NamaObat: "Amoxicillin", Jumlah: 5},
			{IDBarang: 3, NamaObat: "Vitamin C", Jumlah: 2},
		},
	}, "drg. Sari")

	require.NoError(t, err)
	assert.Equal(t, int64(301), idKunjungan)
	require.Len(t, hasil, 3)

	assert.True(t, hasil[0].Sukses)
	require.NotNil(t, hasil[0].StokBaru)
	assert.Equal(t, 6, *hasil[0].StokBaru)

	assert.False(t, hasil[1].Sukses)
	assert.Equal(t, "Amoxicillin", hasil[1].Obat)
	assert.Contains(t, hasil[1].Pesan, "tersedia 1")
	assert.Nil(t, hasil[1].StokBaru)

	assert.True(t, hasil[2].Sukses)
	require.NotNil(t, hasil[2].StokBaru)
	assert.Equal(t, 6, *hasil[2].StokBaru)

	// setiap baris membawa id_kunjungan dan identitas pasien
	require.Len(t, dispenser.permintaan, 3)
	for _, p := range dispenser.permintaan {
		require.NotNil(t, p.IDKunjungan)
		assert.Equal(t, int64(301), *p.IDKunjungan)
		require.NotNil(t, p.IDPasien)
		assert.Equal(t, 44, *p.IDPasien)
	}

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSimpanKunjungan_TanpaObat(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dispenser := &dispenserPalsu{}
	svc := NewKunjunganService(db, dispenser)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO Kunjungan`)).
		WillReturnResult(sqlmock.NewResult(302, 1))

	idKunjungan, hasil, err := svc.SimpanKunjungan(models.KunjunganRequest{
		IDPasien:   44,
		NamaPasien: "Budi",
	}, "drg. Sari")

	require.NoError(t, err)
	assert.Equal(t, int64(302), idKunjungan)
	assert.Empty(t, hasil)
	assert.Empty(t, dispenser.permintaan)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSimpanKunjungan_SemuaBarisGagalKunjunganTetapTersimpan(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dispenser := &dispenserPalsu{
		gagal: map[int]error{
			1: invservices.ErrBarangTidakDitemukan,
			2: &invservices.StokTidakCukupError{Tersedia: 0, Diminta: 3},
		},
	}
	svc := NewKunjunganService(db, dispenser)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO Kunjungan`)).
		WillReturnResult(sqlmock.NewResult(303, 1))

	idKunjungan, hasil, err := svc.SimpanKunjungan(models.KunjunganRequest{
		IDPasien:   44,
		NamaPasien: "Budi",
		Obat: []models.ObatKunjungan{
			{IDBarang: 1, NamaObat: "Paracetamol", Jumlah: 2},
			{IDBarang: 2, NamaObat: "Amoxicillin", Jumlah: 3},
		},
	}, "drg. Sari")

	require.NoError(t, err)
	assert.Equal(t, int64(303), idKunjungan)
	require.Len(t, hasil, 2)
	assert.False(t, hasil[0].Sukses)
	assert.False(t, hasil[1].Sukses)
	require.NoError(t, mock.ExpectationsWereMet())
}
