package service

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/myshop-next/internal/constants"
)

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderNumber 生成订单编号：前缀 + 毫秒时间戳的大写 36 进制 + 4 位随机大写 36 进制。
// 时间戳部分保证趋势递增，随机部分降低同毫秒碰撞概率。
func GenerateOrderNumber() string {
	timestamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	return constants.OrderNoPrefix + timestamp + randBase36(4)
}

func randBase36(length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(base36Alphabet[rand.Intn(len(base36Alphabet))])
	}
	return b.String()
}
