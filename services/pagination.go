package services

import (
	"strconv"

	"github.com/northwind-labs/northwind-api/apperrors"
)

// DefaultPageSize is the page size used by every list endpoint.
const DefaultPageSize = 15

// ParsePage validates a caller-supplied page token. The token must
// parse as a base-10 integer >= 1; anything else fails with an
// InvalidPage error echoing the original input. There is no upper
// bound: pages past the data return empty lists, not errors.
func ParsePage(page string) (int, error) {
	n, err := strconv.Atoi(page)
	if err != nil || n <= 0 {
		return 0, apperrors.InvalidPageError(page)
	}
	return n, nil
}
