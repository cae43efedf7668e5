package data

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookshelf/bookshelf-api/internal/validator"
)

func Test_ValidateBookInput(t *testing.T) {
	tests := []struct {
		name      string
		input     BookInput
		wantKey   string
		wantValid bool
	}{
		{name: "valid", input: BookInput{Name: "Dune", PageCount: 500, ReadPage: 100}, wantValid: true},
		{name: "read_equals_count", input: BookInput{Name: "Dune", PageCount: 500, ReadPage: 500}, wantValid: true},
		{name: "missing_name", input: BookInput{PageCount: 500, ReadPage: 100}, wantKey: "name"},
		{name: "read_above_count", input: BookInput{Name: "Dune", PageCount: 500, ReadPage: 501}, wantKey: "readPage"},
		{name: "name_reported_first", input: BookInput{PageCount: 1, ReadPage: 2}, wantKey: "name"},
		{name: "negative_page_count", input: BookInput{Name: "Dune", PageCount: -1, ReadPage: -1}, wantKey: "pageCount"},
		{name: "negative_read_page", input: BookInput{Name: "Dune", PageCount: 10, ReadPage: -1}, wantKey: "readPage"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := validator.New()

			ValidateBookInput(v, &tc.input)

			assert.Equal(t, tc.wantValid, v.Valid())
			if !tc.wantValid {
				key, _, _ := v.FirstError()
				assert.Equal(t, tc.wantKey, key)
			}
		})
	}
}

func Test_ValidateBookInput_ReadPageMessage(t *testing.T) {
	v := validator.New()

	ValidateBookInput(v, &BookInput{Name: "Dune", PageCount: 10, ReadPage: 11})

	assert.Equal(t, "readPage must not be greater than pageCount", v.Errors["readPage"])
}
