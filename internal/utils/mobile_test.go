package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMobile(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		valid    bool
	}{
		{"valid plain", "09123456789", "09123456789", true},
		{"valid with spaces", " 0912 345 6789 ", "09123456789", true},
		{"valid with dashes", "0912-345-6789", "09123456789", true},
		{"valid with country code", "+989123456789", "09123456789", true},
		{"valid with bare country code", "989123456789", "09123456789", true},
		{"too short", "0912345678", "", false},
		{"too long", "091234567890", "", false},
		{"wrong prefix", "08123456789", "", false},
		{"letters", "091234abcde", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, ok := ValidateMobile(tt.input)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.expected, normalized)
			}
		})
	}
}

func TestValidateNationalCode(t *testing.T) {
	assert.True(t, ValidateNationalCode("1234567890"))
	assert.True(t, ValidateNationalCode(" 1234567890 "))
	assert.False(t, ValidateNationalCode("123456789"))
	assert.False(t, ValidateNationalCode("12345678901"))
	assert.False(t, ValidateNationalCode("12345abcde"))
	assert.False(t, ValidateNationalCode(""))
}

func TestMaskMobile(t *testing.T) {
	assert.Equal(t, "*******6789", MaskMobile("09123456789"))
	assert.Equal(t, "123", MaskMobile("123"))
}
