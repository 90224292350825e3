package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-datewheel/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"DefaultLanguage", config.DefaultLanguage},
		{"LocaleDir", config.LocaleDir},
		{"TKeyEraBC", config.TKeyEraBC},
		{"TKeyEraAD", config.TKeyEraAD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestGeometry_Sanity checks that the initial offset leaves room to scroll
// many cycles of the largest wheel in both directions.
func TestGeometry_Sanity(t *testing.T) {
	assert.Greater(t, config.InitialOffset, 0)
	assert.Less(t, config.InitialOffset, config.TotalRows)

	largestCycle := config.DefaultMaximumYear/config.YearsPerCentury + 1
	assert.GreaterOrEqual(t, config.InitialOffset, 10*largestCycle, "Not enough rows before the offset")
	assert.GreaterOrEqual(t, config.TotalRows-config.InitialOffset, 10*largestCycle, "Not enough rows after the offset")
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Greater(t, config.DefaultMaximumYear, config.DefaultMinimumYear)
	assert.Equal(t, 24*time.Hour, config.BoundTolerance)
	assert.Contains(t, config.SupportedLanguages, config.DefaultLanguage)
}
