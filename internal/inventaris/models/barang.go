package models

import "time"

// Kategori barang inventaris klinik.
const (
	KategoriObat         = "Obat"
	KategoriPerlengkapan = "Perlengkapan"
	KategoriAlat         = "Alat"
)

// BarangInventaris merepresentasikan record di tabel `Barang_Inventaris`.
// Kolom stok hanya boleh berubah lewat restock atau dispensing.
type BarangInventaris struct {
	IDBarang          int        `json:"id_barang"           db:"id_barang"`
	Nama              string     `json:"nama"                db:"nama"`
	Kategori          string     `json:"kategori"            db:"kategori"`
	Stok              int        `json:"stok"                db:"stok"`
	StokAwal          int        `json:"stok_awal"           db:"stok_awal"`
	Satuan            string     `json:"satuan"              db:"satuan"`
	StokMinimum       int        `json:"stok_minimum"        db:"stok_minimum"`
	TanggalKadaluarsa *time.Time `json:"tanggal_kadaluarsa"  db:"tanggal_kadaluarsa"`
	Pemasok           *string    `json:"pemasok"             db:"pemasok"`
	Lokasi            *string    `json:"lokasi"              db:"lokasi"`
	Keterangan        *string    `json:"keterangan"          db:"keterangan"`
	CreatedAt         time.Time  `json:"created_at"          db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"          db:"updated_at"`
}

// StokMenipis menentukan apakah stok sudah berada pada atau di bawah
// ambang pemesanan ulang.
func (b *BarangInventaris) StokMenipis() bool {
	return b.Stok <= b.StokMinimum
}

// BarangRequest dipakai untuk create barang baru (intake inventaris).
type BarangRequest struct {
	Nama              string     `json:"nama" validate:"required"`
	Kategori          string     `json:"kategori" validate:"required,oneof=Obat Perlengkapan Alat"`
	Stok              int        `json:"stok" validate:"min=0"`
	Satuan            string     `json:"satuan" validate:"required"`
	StokMinimum       int        `json:"stok_minimum" validate:"min=0"`
	TanggalKadaluarsa *time.Time `json:"tanggal_kadaluarsa,omitempty"`
	Pemasok           *string    `json:"pemasok,omitempty"`
	Lokasi            *string    `json:"lokasi,omitempty"`
	Keterangan        *string    `json:"keterangan,omitempty"`
}

// UpdateBarangRequest hanya menyentuh metadata; stok tidak ikut
// karena mutasi stok harus melalui restock/dispensing.
type UpdateBarangRequest struct {
	Nama              string     `json:"nama" validate:"required"`
	Kategori          string     `json:"kategori" validate:"required,oneof=Obat Perlengkapan Alat"`
	Satuan            string     `json:"satuan" validate:"required"`
	StokMinimum       int        `json:"stok_minimum" validate:"min=0"`
	TanggalKadaluarsa *time.Time `json:"tanggal_kadaluarsa,omitempty"`
	Pemasok           *string    `json:"pemasok,omitempty"`
	Lokasi            *string    `json:"lokasi,omitempty"`
	Keterangan        *string    `json:"keterangan,omitempty"`
}

// RestockRequest menambah stok barang.
type RestockRequest struct {
	Jumlah int `json:"jumlah" validate:"required,min=1"`
}
