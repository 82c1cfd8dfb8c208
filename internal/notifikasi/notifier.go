package notifikasi

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/c14220110/klinik-kampus-backend/internal/inventaris/models"
	"github.com/c14220110/klinik-kampus-backend/ws"
)

// PeringatanStok adalah payload yang dikirim ke dashboard staf lewat
// websocket saat stok barang menipis.
type PeringatanStok struct {
	Tipe        string    `json:"tipe"`
	IDBarang    int       `json:"id_barang"`
	Nama        string    `json:"nama"`
	Stok        int       `json:"stok"`
	StokMinimum int       `json:"stok_minimum"`
	Satuan      string    `json:"satuan"`
	Waktu       time.Time `json:"waktu"`
}

// Notifier mengevaluasi stok setelah dispensing dan mengirim peringatan
// via email + broadcast websocket. Pengiriman berjalan di goroutine
// sendiri dengan timeout sendiri: SMTP yang lambat atau gagal tidak
// boleh menunda ataupun menggagalkan dispensing.
type Notifier struct {
	Email   PengirimEmail
	Hub     *ws.Hub
	Tujuan  string
	Timeout time.Duration
}

func NewNotifier(email PengirimEmail, hub *ws.Hub, tujuan string) *Notifier {
	return &Notifier{
		Email:   email,
		Hub:     hub,
		Tujuan:  tujuan,
		Timeout: 10 * time.Second,
	}
}

// PeriksaDanBeritahu memenuhi services.PemberiNotifikasi. Tidak ada
// de-duplikasi: setiap dispensing pada atau di bawah ambang memicu
// peringatan baru.
func (n *Notifier) PeriksaDanBeritahu(barang models.BarangInventaris) {
	if !barang.StokMenipis() {
		return
	}
	go n.kirimPeringatan(barang)
}

func (n *Notifier) kirimPeringatan(barang models.BarangInventaris) {
	if n.Hub != nil {
		n.Hub.BroadcastJSON(PeringatanStok{
			Tipe:        "stok_menipis",
			IDBarang:    barang.IDBarang,
			Nama:        barang.Nama,
			Stok:        barang.Stok,
			StokMinimum: barang.StokMinimum,
			Satuan:      barang.Satuan,
			Waktu:       time.Now(),
		})
	}

	if n.Email == nil || n.Tujuan == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), n.Timeout)
	defer cancel()

	subjek := fmt.Sprintf("Peringatan stok menipis: %s", barang.Nama)
	isi := fmt.Sprintf(
		"Stok %s tersisa %d %s (ambang pemesanan ulang %d). Mohon segera lakukan pemesanan ulang.",
		barang.Nama, barang.Stok, barang.Satuan, barang.StokMinimum,
	)

	done := make(chan error, 1)
	go func() {
		done <- n.Email.Kirim(n.Tujuan, subjek, isi)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("notifikasi: gagal kirim email peringatan stok %q: %v", barang.Nama, err)
		}
	case <-ctx.Done():
		log.Printf("notifikasi: timeout kirim email peringatan stok %q", barang.Nama)
	}
}
