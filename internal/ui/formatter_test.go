package ui

import (
	"testing"
	"time"

	"github.com/pimprenelle/marriedmore/internal/config"
	"github.com/pimprenelle/marriedmore/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyResult(marriedMore time.Time, age engine.AgeBreakdown) engine.Result {
	return engine.Result{
		State:       engine.StateReady,
		MarriedMore: marriedMore,
		Age:         age,
	}
}

func TestAgePhrase_Composition(t *testing.T) {
	app, _ := setupTestApp(t)

	tests := []struct {
		desc string
		age  engine.AgeBreakdown
		want string
	}{
		{"all zero keeps a months part", engine.AgeBreakdown{Years: 0, Months: 0}, "0 months"},
		{"single month", engine.AgeBreakdown{Years: 0, Months: 1}, "1 month"},
		{"months only", engine.AgeBreakdown{Years: 0, Months: 5}, "5 months"},
		{"single year drops zero months", engine.AgeBreakdown{Years: 1, Months: 0}, "1 year"},
		{"both singular", engine.AgeBreakdown{Years: 1, Months: 1}, "1 year, 1 month"},
		{"both plural", engine.AgeBreakdown{Years: 59, Months: 11}, "59 years, 11 months"},
		{"round years", engine.AgeBreakdown{Years: 60, Months: 0}, "60 years"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, app.agePhrase(tt.age), tt.desc)
	}
}

func TestAgePhrase_French(t *testing.T) {
	app, _ := setupTestApp(t)
	app.Preferences.SetString(config.PrefLanguage, "fr")
	app.UpdateLocalizer()

	assert.Equal(t, "1 an", app.agePhrase(engine.AgeBreakdown{Years: 1}))
	assert.Equal(t, "2 ans, 5 mois", app.agePhrase(engine.AgeBreakdown{Years: 2, Months: 5}))
}

func TestFormatAgeLine_FallbackWithoutLocalizer(t *testing.T) {
	app, _ := setupTestApp(t)
	app.Localizer = nil

	got := app.formatAgeLine(engine.AgeBreakdown{Years: 3})

	assert.Equal(t, "You will be 3 years old.", got)
}

func TestFormatResult_ReadyBasic(t *testing.T) {
	app, _ := setupTestApp(t)

	res := readyResult(
		time.Date(2049, time.December, 31, 0, 0, 0, 0, time.UTC),
		engine.AgeBreakdown{Years: 59, Months: 11},
	)
	p := app.formatResult(res, config.ModeBasic, config.ZoneUTC)

	assert.Equal(t, engine.StateReady, p.State)
	assert.Equal(t, "December 31, 2049", p.Date)
	assert.Equal(t, "You will be 59 years, 11 months old.", p.Age)
	assert.Equal(t,
		"On this day, you will have been married for as long as you had lived before your wedding.",
		p.Explain)
	assert.Empty(t, p.Note)

	require.Len(t, p.Lines(), 3)
	assert.Equal(t,
		"December 31, 2049\n"+
			"You will be 59 years, 11 months old.\n"+
			"On this day, you will have been married for as long as you had lived before your wedding.",
		p.Payload())
}

func TestFormatResult_AdvancedZoneClock(t *testing.T) {
	app, _ := setupTestApp(t)

	res := readyResult(
		time.Date(2044, time.June, 14, 15, 0, 0, 0, time.UTC),
		engine.AgeBreakdown{Years: 43, Months: 11},
	)

	// Summer moment on the Pacific clock
	p := app.formatResult(res, config.ModeAdvanced, "America/Los_Angeles")
	assert.Equal(t, "June 14, 2044 at 8:00 AM (PDT)", p.Date)

	// The same instant crosses midnight in Tokyo: 15:00 UTC is 00:00 JST
	// on the 15th.
	p = app.formatResult(res, config.ModeAdvanced, "Asia/Tokyo")
	assert.Equal(t, "June 15, 2044 at 12:00 AM (JST)", p.Date)
}

func TestFormatResult_UnknownZoneFallsBackToUTC(t *testing.T) {
	app, _ := setupTestApp(t)

	res := readyResult(
		time.Date(2044, time.June, 14, 15, 0, 0, 0, time.UTC),
		engine.AgeBreakdown{Years: 43, Months: 11},
	)
	p := app.formatResult(res, config.ModeAdvanced, "Mars/Olympus")

	assert.Equal(t, "June 14, 2044 at 3:00 PM (UTC)", p.Date)
}

func TestFormatResult_FutureNote(t *testing.T) {
	app, _ := setupTestApp(t)

	res := readyResult(
		time.Date(2069, time.May, 1, 0, 0, 0, 0, time.UTC),
		engine.AgeBreakdown{Years: 79},
	)
	res.WeddingIsFuture = true

	p := app.formatResult(res, config.ModeBasic, config.ZoneUTC)

	assert.Equal(t, "Note: your wedding date is still in the future.", p.Note)
	assert.Len(t, p.Lines(), 4)
}

func TestFormatResult_GuidancePassthrough(t *testing.T) {
	app, _ := setupTestApp(t)

	for _, state := range []engine.State{engine.StateIdle, engine.StateError} {
		res := engine.Result{State: state, Message: "guidance text"}
		p := app.formatResult(res, config.ModeBasic, config.ZoneUTC)

		assert.Equal(t, "guidance text", p.Message)
		assert.Empty(t, p.Date)
		assert.Empty(t, p.Age)
	}
}
