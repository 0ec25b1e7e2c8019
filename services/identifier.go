package services

import (
	"strconv"

	"github.com/northwind-labs/northwind-api/apperrors"
)

// parseIntID validates and parses an integer resource identifier taken
// from a URL path segment. Empty or non-numeric identifiers fail with
// InvalidResourceID, naming the entity kind.
func parseIntID(entity, id string) (int, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0, apperrors.New(apperrors.InvalidResourceID, "Requested %s id %s is invalid", entity, id)
	}
	return n, nil
}
