package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	inErrors "github.com/Alturino/storefront/internal/errors"
)

// DecodeJsonBody decodes the request body into dst. Malformed bodies are
// reported as ErrInvalidRequest.
func DecodeJsonBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed decoding request body with error=%s", inErrors.ErrInvalidRequest, err)
	}
	return nil
}

// PathUUID reads a uuid route variable. A malformed id cannot name any row,
// so it is reported with the caller's not-found error.
func PathUUID(r *http.Request, key string, notFound error) (uuid.UUID, error) {
	raw := mux.Vars(r)[key]
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed parsing %s=%q with error=%w", key, raw, notFound)
	}
	return id, nil
}

func HasExpand(r *http.Request, value string) bool {
	return slices.Contains(r.URL.Query()[KeyQueryExpand], value)
}
