package engine_test

import (
	"testing"
	"time"

	"github.com/pimprenelle/marriedmore/internal/config"
	"github.com/pimprenelle/marriedmore/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Basic_MidnightUTC(t *testing.T) {
	// Basic mode reads a bare calendar date and anchors it at midnight UTC,
	// regardless of where the user happens to be.
	got := engine.Normalize(config.ModeBasic, engine.MilestoneInput{Value: "1990-01-01"})

	assert.Equal(t, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestNormalize_InvalidValues_TableDriven(t *testing.T) {
	tests := []struct {
		desc  string
		mode  string
		input engine.MilestoneInput
	}{
		{"empty basic", config.ModeBasic, engine.MilestoneInput{}},
		{"garbage basic", config.ModeBasic, engine.MilestoneInput{Value: "not-a-date"}},
		{"datetime in basic mode", config.ModeBasic, engine.MilestoneInput{Value: "1990-01-01T08:00"}},
		{"bare date in advanced mode", config.ModeAdvanced, engine.MilestoneInput{Value: "1990-01-01", Zone: config.ZoneUTC}},
		{"unknown zone", config.ModeAdvanced, engine.MilestoneInput{Value: "1990-01-01T08:00", Zone: "Mars/Olympus"}},
		{"out-of-range month", config.ModeBasic, engine.MilestoneInput{Value: "1990-13-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := engine.Normalize(tt.mode, tt.input)
			assert.True(t, got.IsZero(), "unusable input must map to the zero sentinel")
		})
	}
}

func TestNormalize_Advanced_DSTOffsets(t *testing.T) {
	// Los Angeles observes UTC-7 in June (PDT) and UTC-8 in January (PST).
	// The normalizer must pick the offset in force at the entered moment,
	// not a fixed one for the zone.
	summer := engine.Normalize(config.ModeAdvanced,
		engine.MilestoneInput{Value: "2000-06-15T08:00", Zone: "America/Los_Angeles"})
	assert.Equal(t, time.Date(2000, 6, 15, 15, 0, 0, 0, time.UTC), summer)

	winter := engine.Normalize(config.ModeAdvanced,
		engine.MilestoneInput{Value: "2000-01-15T08:00", Zone: "America/Los_Angeles"})
	assert.Equal(t, time.Date(2000, 1, 15, 16, 0, 0, 0, time.UTC), winter)
}

func TestNormalize_Advanced_SpringForwardRoundTrip(t *testing.T) {
	// A wall-clock moment entered the day after the US spring-forward
	// transition (2021-03-14) must survive a UTC round trip unchanged.
	const entered = "2021-03-15T09:30"

	got := engine.Normalize(config.ModeAdvanced,
		engine.MilestoneInput{Value: entered, Zone: "America/New_York"})
	require.False(t, got.IsZero())

	// EDT is UTC-4.
	assert.Equal(t, time.Date(2021, 3, 15, 13, 30, 0, 0, time.UTC), got)

	ny, err := engine.ZoneLocation("America/New_York")
	require.NoError(t, err)
	assert.Equal(t, entered, got.In(ny).Format(config.DateTimeLayoutMinute))
}

func TestNormalize_Advanced_SecondsOptional(t *testing.T) {
	withSeconds := engine.Normalize(config.ModeAdvanced,
		engine.MilestoneInput{Value: "2000-06-15T08:00:30", Zone: config.ZoneUTC})
	assert.Equal(t, time.Date(2000, 6, 15, 8, 0, 30, 0, time.UTC), withSeconds)

	withoutSeconds := engine.Normalize(config.ModeAdvanced,
		engine.MilestoneInput{Value: "2000-06-15T08:00", Zone: config.ZoneUTC})
	assert.Equal(t, time.Date(2000, 6, 15, 8, 0, 0, 0, time.UTC), withoutSeconds)
}

func TestZoneLocation_Whitelist(t *testing.T) {
	// Every zone the picker offers must resolve through the embedded IANA
	// database, with no dependency on the host system.
	for _, zone := range config.SupportedZones {
		t.Run(zone, func(t *testing.T) {
			loc, err := engine.ZoneLocation(zone)
			require.NoError(t, err)
			assert.NotNil(t, loc)
		})
	}
}

func TestZoneLocation_EmptyDefaultsToUTC(t *testing.T) {
	loc, err := engine.ZoneLocation("")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestFormInput_Complete_TableDriven(t *testing.T) {
	tests := []struct {
		desc  string
		input engine.FormInput
		want  bool
	}{
		{
			"basic complete",
			engine.FormInput{
				Mode:    config.ModeBasic,
				Birth:   engine.MilestoneInput{Value: "1990-01-01"},
				Wedding: engine.MilestoneInput{Value: "2020-01-01"},
			},
			true,
		},
		{
			"advanced all empty",
			engine.FormInput{Mode: config.ModeAdvanced},
			false,
		},
		{
			"basic missing value",
			engine.FormInput{
				Mode:  config.ModeBasic,
				Birth: engine.MilestoneInput{Value: "1990-01-01"},
			},
			false,
		},
		{
			"advanced complete",
			engine.FormInput{
				Mode:    config.ModeAdvanced,
				Birth:   engine.MilestoneInput{Value: "2000-06-15T08:00", Zone: config.ZoneUTC},
				Wedding: engine.MilestoneInput{Value: "2022-06-15T08:00", Zone: config.ZoneUTC},
			},
			true,
		},
		{
			"advanced missing one zone",
			engine.FormInput{
				Mode:    config.ModeAdvanced,
				Birth:   engine.MilestoneInput{Value: "2000-06-15T08:00", Zone: config.ZoneUTC},
				Wedding: engine.MilestoneInput{Value: "2022-06-15T08:00"},
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.Complete())
		})
	}
}
