package models

import "time"

// CatatanDispensing merepresentasikan record di tabel `Catatan_Dispensing`,
// koleksi kanonik yang append-only. Nama dan kategori barang didenormalisasi
// saat tulis supaya riwayat tetap utuh walau barangnya dihapus/diganti nama.
type CatatanDispensing struct {
	IDCatatan       int64     `json:"id_catatan"       db:"id_catatan"`
	NoReferensi     string    `json:"no_referensi"     db:"no_referensi"`
	IDBarang        int       `json:"id_barang"        db:"id_barang"`
	NamaBarang      string    `json:"nama_barang"      db:"nama_barang"`
	KategoriBarang  string    `json:"kategori_barang"  db:"kategori_barang"`
	NamaPasien      string    `json:"nama_pasien"      db:"nama_pasien"`
	IDPasien        *int      `json:"id_pasien"        db:"id_pasien"`
	Jumlah          int       `json:"jumlah"           db:"jumlah"`
	DispensingOleh  string    `json:"dispensing_oleh"  db:"dispensing_oleh"`
	IDKunjungan     *int64    `json:"id_kunjungan"     db:"id_kunjungan"`
	Alasan          *string   `json:"alasan"           db:"alasan"`
	StokSetelah     int       `json:"stok_setelah"     db:"stok_setelah"`
	WaktuDispensing time.Time `json:"waktu_dispensing" db:"waktu_dispensing"`
}

// RiwayatBarang adalah salinan riwayat per-barang (tabel `Riwayat_Barang`)
// untuk kompatibilitas pembaca lama. Ikut terhapus bila barangnya dihapus;
// Catatan_Dispensing tetap menjadi sumber kebenaran.
type RiwayatBarang struct {
	IDRiwayat       int64     `json:"id_riwayat"       db:"id_riwayat"`
	IDBarang        int       `json:"id_barang"        db:"id_barang"`
	Jumlah          int       `json:"jumlah"           db:"jumlah"`
	NamaPasien      string    `json:"nama_pasien"      db:"nama_pasien"`
	DispensingOleh  string    `json:"dispensing_oleh"  db:"dispensing_oleh"`
	StokSetelah     int       `json:"stok_setelah"     db:"stok_setelah"`
	WaktuDispensing time.Time `json:"waktu_dispensing" db:"waktu_dispensing"`
}

// DispenseRequest adalah permintaan dispensing langsung dari loket farmasi.
// dispensing_oleh diambil dari klaim JWT, bukan dari body.
type DispenseRequest struct {
	IDBarang    int     `json:"id_barang" validate:"required"`
	Jumlah      int     `json:"jumlah" validate:"required,min=1"`
	NamaPasien  string  `json:"nama_pasien"`
	IDPasien    *int    `json:"id_pasien,omitempty"`
	Alasan      *string `json:"alasan,omitempty"`
	IDKunjungan *int64  `json:"id_kunjungan,omitempty"`
}

// DispenseResult adalah hasil satu operasi dispensing yang sukses.
type DispenseResult struct {
	Barang         *BarangInventaris  `json:"barang"`
	Catatan        *CatatanDispensing `json:"catatan"`
	PeringatanStok bool               `json:"peringatan_stok"`
}

// FilterRiwayat membatasi query riwayat dispensing.
type FilterRiwayat struct {
	Dari   *time.Time
	Sampai *time.Time
	Limit  int
}

// BarangTerbanyak adalah satu baris peringkat barang paling sering
// didispensing dalam suatu periode.
type BarangTerbanyak struct {
	IDBarang       int    `json:"id_barang"`
	NamaBarang     string `json:"nama_barang"`
	KategoriBarang string `json:"kategori_barang"`
	TotalJumlah    int    `json:"total_jumlah"`
	JumlahCatatan  int    `json:"jumlah_catatan"`
}

// BarangMenipis adalah satu baris barang yang stoknya berada pada atau
// di bawah ambang dan sempat didispensing dalam periode.
type BarangMenipis struct {
	IDBarang          int    `json:"id_barang"`
	Nama              string `json:"nama"`
	Stok              int    `json:"stok"`
	StokMinimum       int    `json:"stok_minimum"`
	TotalDidispensing int    `json:"total_didispensing"`
}

// StatistikDispensing adalah ringkasan periode N hari terakhir.
type StatistikDispensing struct {
	PeriodeHari   int               `json:"periode_hari"`
	BarangTeratas []BarangTerbanyak `json:"barang_teratas"`
	StokMenipis   []BarangMenipis   `json:"stok_menipis"`
}
