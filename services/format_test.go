package services

import "testing"

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		expect string
	}{
		{"zero", 0, "Rp 0"},
		{"under one thousand", 500, "Rp 500"},
		{"thousands", 9300, "Rp 9.300"},
		{"millions", 9300000, "Rp 9.300.000"},
		{"uneven grouping", 123456789, "Rp 123.456.789"},
		{"exactly one group boundary", 1000, "Rp 1.000"},
		{"negative", -250000, "-Rp 250.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatRupiah(tt.amount)
			if got != tt.expect {
				t.Errorf("FormatRupiah(%d) = %q, want %q", tt.amount, got, tt.expect)
			}
		})
	}
}
