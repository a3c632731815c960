package handler

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(payload)
}

// respondError writes {"error": msg}. Every failure response uses this shape.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

func respondMessage(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"message": msg})
}

// pathID reads the numeric {id} route parameter. Routes only match digits, so
// the only failure left is a value too large for an INTEGER id column.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int(id), true
}

// fitsInt4 reports whether every non-nil value fits a PostgreSQL INTEGER.
func fitsInt4(vals ...*int) bool {
	for _, v := range vals {
		if v != nil && (*v > math.MaxInt32 || *v < math.MinInt32) {
			return false
		}
	}
	return true
}
