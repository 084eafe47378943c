package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const tokenPrefix = "offset:"

// DefaultLimit is used when a caller asks for a non-positive page size.
const DefaultLimit = 50

// MaxLimit caps the page size a caller may ask for.
const MaxLimit = 500

// EncodeToken creates an opaque continuation token for the given offset.
func EncodeToken(offset int) string {
	return base64.RawURLEncoding.EncodeToString([]byte(tokenPrefix + strconv.Itoa(offset)))
}

// DecodeToken parses a token created by EncodeToken. An empty token means offset 0.
func DecodeToken(token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	raw, ok := strings.CutPrefix(string(decoded), tokenPrefix)
	if !ok {
		return 0, fmt.Errorf("invalid pagination token format (prefix)")
	}
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid pagination token format (offset)")
	}
	return offset, nil
}

// Page slices items starting at the token's offset. The returned token is
// empty when there are no further items.
func Page[T any](items []T, limit int, token string) ([]T, string, error) {
	offset, err := DecodeToken(token)
	if err != nil {
		return nil, "", err
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset >= len(items) {
		return []T{}, "", nil
	}
	end := min(offset+limit, len(items))
	next := ""
	if end < len(items) {
		next = EncodeToken(end)
	}
	return items[offset:end], next, nil
}
