package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxJSONBodyBytes bounds JSON request bodies. Uploads go through
// multipart parsing, not this path, so 1 MiB is plenty for names.
const maxJSONBodyBytes = 1 << 20

// ParseJSON decodes JSON from the request body into the given destination.
// The body is size-limited so a hostile client cannot exhaust memory.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return nil
}
