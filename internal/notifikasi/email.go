package notifikasi

import (
	"gopkg.in/gomail.v2"

	"github.com/c14220110/klinik-kampus-backend/config"
)

// PengirimEmail dipisahkan sebagai interface supaya notifier bisa diuji
// tanpa server SMTP sungguhan.
type PengirimEmail interface {
	Kirim(tujuan, subjek, isi string) error
}

// GomailSender mengirim email lewat SMTP menggunakan gomail.
type GomailSender struct {
	dialer *gomail.Dialer
	dari   string
}

func NewGomailSender(cfg *config.Config) *GomailSender {
	return &GomailSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		dari:   cfg.SMTPUser,
	}
}

func (g *GomailSender) Kirim(tujuan, subjek, isi string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", g.dari)
	m.SetHeader("To", tujuan)
	m.SetHeader("Subject", subjek)
	m.SetBody("text/plain", isi)
	return g.dialer.DialAndSend(m)
}
