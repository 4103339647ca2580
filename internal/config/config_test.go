package config_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/pimprenelle/marriedmore/internal/config"
	"github.com/stretchr/testify/assert"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime or UI logic.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"FallbackResIncomplete", config.FallbackResIncomplete},
		{"FallbackResOrder", config.FallbackResOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestSupportedZones_Sanity checks the shape of the zone whitelist: UTC comes
// first (it is the default selection) and every identifier is unique.
func TestSupportedZones_Sanity(t *testing.T) {
	t.Parallel()

	assert.Len(t, config.SupportedZones, 11, "the zone picker offers exactly eleven choices")
	assert.Equal(t, config.ZoneUTC, config.SupportedZones[0], "UTC must be the first (default) entry")

	seen := make(map[string]bool)
	for _, zone := range config.SupportedZones {
		assert.NotEmpty(t, zone)
		assert.False(t, seen[zone], "duplicate zone entry %s", zone)
		seen[zone] = true
	}
}

// TestGuidanceMessages_Pinned pins the user-facing guidance texts. These are
// part of the product contract and must not drift during refactors.
func TestGuidanceMessages_Pinned(t *testing.T) {
	assert.Equal(t, "Double-check that each calendar entry is complete.", config.FallbackResIncomplete)
	assert.Equal(t, "Your wedding must happen after your birthdate. Please adjust the earlier entry.", config.FallbackResOrder)
}

// TestTimings_Sanity verifies the copy-status reversion delay. Two seconds is
// the agreed flash duration; shorter feels jumpy, longer feels stuck.
func TestTimings_Sanity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2*time.Second, config.CopyStatusResetDelay)
}

// TestEntryPatterns_Shapes ensures the validator regexps compile and accept
// exactly the lexical shapes the normalizer can parse.
func TestEntryPatterns_Shapes(t *testing.T) {
	t.Parallel()

	date := regexp.MustCompile(config.PatternDate)
	datetime := regexp.MustCompile(config.PatternDateTime)

	assert.True(t, date.MatchString("1990-01-01"))
	assert.False(t, date.MatchString("1990-1-1"))
	assert.False(t, date.MatchString("1990-01-01T08:00"))

	assert.True(t, datetime.MatchString("2000-06-15T08:00"))
	assert.True(t, datetime.MatchString("2000-06-15T08:00:30"))
	assert.False(t, datetime.MatchString("2000-06-15"))
	assert.False(t, datetime.MatchString("2000-06-15 08:00"))
}
