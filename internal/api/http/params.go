package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"autonom-backend/internal/domain"
)

func pathID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id", domain.ErrValidation)
	}
	return int32(id), nil
}

// listFilters holds the common search form parameters.
type listFilters struct {
	Query  string
	Status string
	From   *time.Time
	To     *time.Time
}

// parseListFilters reads q, status, from and to from the query string.
// Dates use the 2006-01-02 form.
func parseListFilters(r *http.Request) (listFilters, error) {
	f := listFilters{
		Query:  r.URL.Query().Get("q"),
		Status: r.URL.Query().Get("status"),
	}

	for _, p := range []struct {
		name string
		dst  **time.Time
	}{
		{"from", &f.From},
		{"to", &f.To},
	} {
		raw := r.URL.Query().Get(p.name)
		if raw == "" {
			continue
		}
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return f, fmt.Errorf("%w: invalid %s date", domain.ErrValidation, p.name)
		}
		*p.dst = &t
	}
	return f, nil
}
