package http

import (
	"math"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"12", 12},
		{"12abc", 12},
		{" -3", -3},
		{"+8", 8},
		{"abc", 0},
		{"", 0},
		{"-", 0},
		{"0012", 12},
		{"1.9", 1},
		{"99999999999999999999", math.MaxInt64},
		{"-99999999999999999999", math.MinInt64},
		{"1e3", 1000},
		{"1E3", 1000},
		{"2.5e1x", 25},
		{"-1.5e2", -150},
		{"1e-1", 0},
		{"1e", 1},
		{"1e+", 1},
		{"3.", 3},
		{".5", 0},
		{"1e999", math.MaxInt64},
		{"-1e999", math.MinInt64},
		{"9.9e18", math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, coerceInt(tt.in))
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name *string `json:"nom"`
		ID   *int64  `json:"id"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "валидный объект", body: `{"nom":"Dupont","id":1}`},
		{name: "неизвестные поля игнорируются", body: `{"nom":"Dupont","extra":true}`},
		{name: "пробелы в конце", body: "{\"nom\":\"Dupont\"}\n  "},
		{name: "пустое тело", body: ``, wantErr: errMalformedJSON},
		{name: "не JSON", body: `nom=Dupont`, wantErr: errMalformedJSON},
		{name: "два объекта", body: `{"nom":"a"}{"nom":"b"}`, wantErr: errMalformedJSON},
		{name: "обрезанный объект", body: `{"nom":`, wantErr: errMalformedJSON},
		{name: "строка вместо числа", body: `{"id":"1"}`, wantErr: errInvalidFieldType},
		{name: "массив вместо объекта", body: `[1,2]`, wantErr: errInvalidFieldType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))

			var dst payload
			err := decodeJSON(req, &dst)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
