package handler

import (
	"net/http"
	"strconv"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type PaginatedResponse struct {
	Count   int `json:"count"`
	Results any `json:"results"`
}

// paginationParams lee limit y offset de la query string. Valores ausentes o
// inválidos caen en los valores por defecto; limit se acota a maxPageSize.
func paginationParams(r *http.Request) (limit int, offset int) {
	limit = defaultPageSize
	offset = 0

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			offset = n
		}
	}

	return limit, offset
}

// idParam interpreta el parámetro de ruta {id}.
func idParam(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
