package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationParams(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantLimit  int
		wantOffset int
	}{
		{"sin parámetros", "/trabajos-publicados", 10, 0},
		{"limit explícito", "/trabajos-publicados?limit=25", 25, 0},
		{"limit acotado al máximo", "/trabajos-publicados?limit=500", 100, 0},
		{"limit inválido usa el defecto", "/trabajos-publicados?limit=abc", 10, 0},
		{"limit negativo usa el defecto", "/trabajos-publicados?limit=-5", 10, 0},
		{"offset explícito", "/trabajos-publicados?limit=20&offset=40", 20, 40},
		{"offset negativo se ignora", "/trabajos-publicados?offset=-3", 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			limit, offset := paginationParams(r)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestIDParam(t *testing.T) {
	tests := []struct {
		raw    string
		wantID int64
		wantOK bool
	}{
		{"42", 42, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		id, ok := idParam(tt.raw)
		assert.Equal(t, tt.wantOK, ok, "raw=%q", tt.raw)
		assert.Equal(t, tt.wantID, id, "raw=%q", tt.raw)
	}
}
