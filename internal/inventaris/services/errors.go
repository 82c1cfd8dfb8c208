package services

import (
	"errors"
	"fmt"
)

var (
	ErrBarangTidakDitemukan = errors.New("barang inventaris tidak ditemukan")
	ErrPermintaanTidakValid = errors.New("permintaan tidak valid")

	// ErrGagalMencatat berarti decrement stok berhasil tetapi catatan
	// dispensing gagal ditulis; seluruh transaksi di-rollback dan error
	// ini tidak boleh diturunkan menjadi sukses.
	ErrGagalMencatat = errors.New("gagal mencatat dispensing")
)

// StokTidakCukupError membawa jumlah tersedia vs diminta agar bisa
// ditampilkan ke client.
type StokTidakCukupError struct {
	Tersedia int
	Diminta  int
}

func (e *StokTidakCukupError) Error() string {
	return fmt.Sprintf("stok tidak cukup: tersedia %d, diminta %d", e.Tersedia, e.Diminta)
}
