package models

// Role staf yang dikenal sistem; seluruh endpoint inventaris dan
// kunjungan dibatasi untuk role-role ini.
const (
	RoleStafKlinik = "staf_klinik"
	RoleDokter     = "dokter"
	RolePerawat    = "perawat"
)

// Karyawan merepresentasikan record di tabel `Karyawan`.
type Karyawan struct {
	IDKaryawan int    `json:"id_karyawan" db:"id_karyawan"`
	Nama       string `json:"nama"        db:"nama"`
	Username   string `json:"username"    db:"username"`
	Password   string `json:"-"           db:"password"`
	Role       string `json:"role"        db:"role"`
}

// LoginRequest adalah payload login staf.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
