package models

import "time"

// Kunjungan merepresentasikan satu kunjungan klinis di tabel `Kunjungan`.
type Kunjungan struct {
	IDKunjungan   int64     `json:"id_kunjungan"   db:"id_kunjungan"`
	IDPasien      int       `json:"id_pasien"      db:"id_pasien"`
	NamaPasien    string    `json:"nama_pasien"    db:"nama_pasien"`
	Keluhan       string    `json:"keluhan"        db:"keluhan"`
	Diagnosa      string    `json:"diagnosa"       db:"diagnosa"`
	Catatan       string    `json:"catatan"        db:"catatan"`
	DiperiksaOleh string    `json:"diperiksa_oleh" db:"diperiksa_oleh"`
	CreatedAt     time.Time `json:"created_at"     db:"created_at"`
}

// ObatKunjungan adalah satu baris obat yang diresepkan untuk
// didispensing saat kunjungan disimpan.
type ObatKunjungan struct {
	IDBarang int    `json:"id_barang" validate:"required"`
	NamaObat string `json:"nama_obat"`
	Jumlah   int    `json:"jumlah" validate:"required,min=1"`
}

// KunjunganRequest adalah payload penyimpanan kunjungan. Daftar obat
// boleh kosong.
type KunjunganRequest struct {
	IDPasien   int             `json:"id_pasien" validate:"required"`
	NamaPasien string          `json:"nama_pasien" validate:"required"`
	Keluhan    string          `json:"keluhan"`
	Diagnosa   string          `json:"diagnosa"`
	Catatan    string          `json:"catatan"`
	Obat       []ObatKunjungan `json:"obat" validate:"dive"`
}

// HasilDispensingObat adalah hasil per baris obat: gagalnya satu baris
// dilaporkan di sini, bukan sebagai error kunjungan.
type HasilDispensingObat struct {
	Obat     string `json:"obat"`
	IDBarang int    `json:"id_barang"`
	Sukses   bool   `json:"sukses"`
	StokBaru *int   `json:"stok_baru,omitempty"`
	Pesan    string `json:"pesan,omitempty"`
}
