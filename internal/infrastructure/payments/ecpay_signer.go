package payments

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"net/url"
	"sort"
	"strings"

	"studio_booking/internal/usecase/interfaces"
)

const checkMacValueField = "CheckMacValue"

var ErrMissingGatewayKeys = errors.New("missing gateway hash key or hash iv")

// The gateway computes its checksum over a .NET-style URL encoding. Go's
// QueryEscape differs on these characters only.
var dotnetEncodingFixups = strings.NewReplacer(
	"%21", "!",
	"%2a", "*",
	"%28", "(",
	"%29", ")",
	"~", "%7e",
)

// ECPaySigner computes and verifies CheckMacValue checksums.
type ECPaySigner struct {
	hashKey string
	hashIV  string
}

var _ interfaces.IChecksumSigner = (*ECPaySigner)(nil)

func NewECPaySigner(hashKey, hashIV string) (*ECPaySigner, error) {
	if hashKey == "" || hashIV == "" {
		return nil, ErrMissingGatewayKeys
	}
	return &ECPaySigner{hashKey: hashKey, hashIV: hashIV}, nil
}

// Sign returns the upper-case hex SHA-256 of the canonical string built from
// every parameter except CheckMacValue.
func (s *ECPaySigner) Sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == checkMacValueField {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("HashKey=")
	b.WriteString(s.hashKey)
	for _, k := range keys {
		b.WriteByte('&')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	b.WriteString("&HashIV=")
	b.WriteString(s.hashIV)

	encoded := dotnetEncodingFixups.Replace(strings.ToLower(url.QueryEscape(b.String())))
	sum := sha256.Sum256([]byte(encoded))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// Verify requires the received checksum to match exactly, upper-case hex
// included.
func (s *ECPaySigner) Verify(params map[string]string) bool {
	got := params[checkMacValueField]
	if got == "" {
		return false
	}
	want := s.Sign(params)
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
