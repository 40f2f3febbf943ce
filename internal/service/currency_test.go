package service

import (
	"testing"

	"github.com/myshop-next/internal/models"
)

func TestFormatMMK(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0 MMK"},
		{in: 12, want: "12 MMK"},
		{in: 32.4, want: "32 MMK"},
		{in: 32.5, want: "33 MMK"},
		{in: 1234, want: "1,234 MMK"},
		{in: 1234567, want: "1,234,567 MMK"},
		{in: -4500, want: "-4,500 MMK"},
	}
	for _, item := range cases {
		got := FormatMMK(models.NewMoneyFromFloat(item.in))
		if got != item.want {
			t.Fatalf("format mmk failed, in=%v want=%q got=%q", item.in, item.want, got)
		}
	}
}
