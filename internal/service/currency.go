package service

import (
	"strings"

	"github.com/myshop-next/internal/models"
)

// FormatMMK 金额展示格式：取整、千分位分隔、后缀 MMK
func FormatMMK(amount models.Money) string {
	rounded := amount.Decimal.Round(0)
	digits := rounded.Abs().String()

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteByte('-')
	}
	for i, ch := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	b.WriteString(" MMK")
	return b.String()
}
