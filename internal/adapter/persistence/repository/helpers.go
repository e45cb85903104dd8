package repository

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"studio_booking/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/oklog/ulid/v2"
)

func newRecordID(now time.Time) (string, error) {
	if now.IsZero() {
		now = time.Now().UTC()
	}
	id, err := ulid.New(ulid.Timestamp(now), rand.Reader)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// parseHours rejects anything that is not a finite, non-negative number.
func parseHours(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: hours %q", entities.ErrMalformedLedgerRow, raw)
	}
	return v, nil
}

func refSet(refs []string) map[string]struct{} {
	set := make(map[string]struct{}, len(refs))
	for _, r := range refs {
		if r != "" {
			set[r] = struct{}{}
		}
	}
	return set
}
