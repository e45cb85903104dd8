package usecase

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"

	"studio_booking/internal/domain/entities"
)

const (
	orderIDPrefix  = "STB"
	base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// newOrderID builds an alphanumeric merchant trade number: a fixed prefix,
// the base36 millisecond timestamp and random base36 padding, capped at the
// gateway's length limit.
func newOrderID(now time.Time) (string, error) {
	var b strings.Builder
	b.WriteString(orderIDPrefix)
	b.WriteString(strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)))

	max := big.NewInt(int64(len(base36Alphabet)))
	for b.Len() < entities.MaxOrderIDLength {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(base36Alphabet[n.Int64()])
	}

	id := b.String()
	if len(id) > entities.MaxOrderIDLength {
		id = id[:entities.MaxOrderIDLength]
	}
	return id, nil
}
