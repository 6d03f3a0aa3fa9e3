// internal/models/metadata_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMetadataDropsEmptyStrings(t *testing.T) {
	out, err := NormalizeMetadata(map[string]interface{}{
		MetaName:        "Rolex Submariner",
		MetaBrand:       "",
		MetaDescription: "",
		MetaCurrency:    "EUR",
	})
	require.NoError(t, err)

	assert.Equal(t, "Rolex Submariner", out[MetaName])
	assert.Equal(t, "EUR", out[MetaCurrency])
	_, hasBrand := out[MetaBrand]
	assert.False(t, hasBrand, "empty string values must be absent, not stored")
	_, hasDescription := out[MetaDescription]
	assert.False(t, hasDescription)
}

func TestNormalizeMetadataYearAndDateConflict(t *testing.T) {
	_, err := NormalizeMetadata(map[string]interface{}{
		MetaName:           "Gibson Les Paul",
		MetaYear:           1959,
		MetaProductionDate: "1959-06-12",
	})
	assert.ErrorIs(t, err, ErrConflictingProductionTime)
}

func TestNormalizeMetadataYearOnly(t *testing.T) {
	out, err := NormalizeMetadata(map[string]interface{}{
		MetaName: "Gibson Les Paul",
		MetaYear: 1959,
	})
	require.NoError(t, err)
	assert.Equal(t, 1959, out[MetaYear])
}

func TestNormalizeMetadataProductionDateOnly(t *testing.T) {
	out, err := NormalizeMetadata(map[string]interface{}{
		MetaName:           "Leica M6",
		MetaProductionDate: "1986-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "1986-03-01", out[MetaProductionDate])
}

func TestNormalizeMetadataEmptyDateClearsConflict(t *testing.T) {
	// "" means absence, so year + empty date is not a conflict
	out, err := NormalizeMetadata(map[string]interface{}{
		MetaName:           "Leica M6",
		MetaYear:           1986,
		MetaProductionDate: "",
	})
	require.NoError(t, err)
	assert.Equal(t, 1986, out[MetaYear])
}

func TestNormalizeMetadataYearCoercion(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want int
	}{
		{"int", 2021, 2021},
		{"int64", int64(2021), 2021},
		{"json float", float64(2021), 2021},
		{"numeric string", "2021", 2021},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NormalizeMetadata(map[string]interface{}{MetaYear: tt.raw})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out[MetaYear])
		})
	}
}

func TestNormalizeMetadataYearRejectsGarbage(t *testing.T) {
	for _, raw := range []interface{}{"soon", true, 999, 10000} {
		_, err := NormalizeMetadata(map[string]interface{}{MetaYear: raw})
		assert.Error(t, err, "year %v should be rejected", raw)
	}
}

func TestNormalizeMetadataKeepsUnknownKeys(t *testing.T) {
	out, err := NormalizeMetadata(map[string]interface{}{
		MetaName:        "Custom",
		"engraving":     "To J, with love",
		"service_count": 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "To J, with love", out["engraving"])
	assert.Equal(t, 3, out["service_count"])
}
