package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStokMenipis(t *testing.T) {
	t.Run("di atas ambang", func(t *testing.T) {
		b := BarangInventaris{Stok: 6, StokMinimum: 5}
		assert.False(t, b.StokMenipis())
	})

	t.Run("tepat di ambang", func(t *testing.T) {
		b := BarangInventaris{Stok: 5, StokMinimum: 5}
		assert.True(t, b.StokMenipis())
	})

	t.Run("di bawah ambang", func(t *testing.T) {
		b := BarangInventaris{Stok: 0, StokMinimum: 5}
		assert.True(t, b.StokMenipis())
	})
}
