package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queryParams struct {
	Year     string `validate:"required,whole_number"`
	Language string `validate:"omitempty,max=8,language_token"`
}

func TestValidateStruct_Valid(t *testing.T) {
	assert.Nil(t, ValidateStruct(queryParams{Year: "2000", Language: "English"}))
	assert.Nil(t, ValidateStruct(queryParams{Year: "-300"}))
}

func TestValidateStruct_Year(t *testing.T) {
	tests := []struct {
		year    string
		message string
	}{
		{"", "Year is required"},
		{"soon", "Year must be a whole number"},
		{"2000.5", "Year must be a whole number"},
	}
	for _, tt := range tests {
		t.Run(tt.year, func(t *testing.T) {
			details := ValidateStruct(queryParams{Year: tt.year})
			require.Len(t, details, 1)
			assert.Equal(t, "year", details[0].Field)
			assert.Equal(t, tt.message, details[0].Message)
		})
	}
}

func TestValidateStruct_Language(t *testing.T) {
	details := ValidateStruct(queryParams{Year: "2000", Language: "Eng;Fre"})
	require.Len(t, details, 1)
	assert.Equal(t, "language", details[0].Field)
	assert.Contains(t, details[0].Message, "must not contain")

	details = ValidateStruct(queryParams{Year: "2000", Language: "Portuguese"})
	require.Len(t, details, 1)
	assert.Equal(t, "Language must be at most 8 characters", details[0].Message)
}
