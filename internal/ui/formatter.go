package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pimprenelle/marriedmore/internal/config"
	"github.com/pimprenelle/marriedmore/internal/engine"
)

// Presentation is a Result rendered into user-facing strings. Date, Age,
// Explain and Note are filled for ready results; Message for the others.
type Presentation struct {
	State   engine.State
	Date    string // the MarriedMore day (or moment, in Advanced mode)
	Age     string // sentence carrying the age phrase
	Explain string // fixed sentence explaining what the day means
	Note    string // future-wedding note, empty unless applicable
	Message string // idle or error guidance
}

// Lines returns the shareable payload: date, age, explanation and, when the
// wedding is still ahead, the note.
func (p Presentation) Lines() []string {
	lines := []string{p.Date, p.Age, p.Explain}
	if p.Note != "" {
		lines = append(lines, p.Note)
	}
	return lines
}

// Payload joins the lines into the clipboard text.
func (p Presentation) Payload() string {
	return strings.Join(p.Lines(), config.PayloadLineSeparator)
}

// formatResult renders a Result for display and sharing. weddingZone is the
// Advanced-mode zone of the wedding milestone, which anchors the displayed
// time of day; Basic mode ignores it and shows the plain UTC date.
func (app *MarriedMoreApp) formatResult(res engine.Result, mode, weddingZone string) Presentation {
	p := Presentation{State: res.State}
	switch res.State {
	case engine.StateReady:
		p.Date = app.formatMoment(res.MarriedMore, mode, weddingZone)
		p.Age = app.formatAgeLine(res.Age)
		p.Explain = app.msgOr(config.TKeyResExplain, config.FallbackExplain)
		if res.WeddingIsFuture {
			p.Note = app.msgOr(config.TKeyResFutureNote, config.FallbackFutureNote)
		}
	case engine.StateIdle, engine.StateError:
		p.Message = res.Message
	}
	return p
}

// formatMoment renders the computed instant. Advanced results are shown on
// the wedding zone's clock, so the moment reads naturally for the couple.
func (app *MarriedMoreApp) formatMoment(t time.Time, mode, weddingZone string) string {
	if mode == config.ModeAdvanced {
		loc, err := engine.ZoneLocation(weddingZone)
		if err != nil {
			slog.Warn(config.ErrZoneLoad,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyZone, weddingZone,
				config.LogKeyError, err,
			)
			loc = time.UTC
		}
		layout := app.msgOr(config.TKeyFormatDateTime, config.DateTimeFormatDisplay)
		return t.In(loc).Format(layout)
	}
	layout := app.msgOr(config.TKeyFormatDate, config.DateFormatDisplay)
	return t.UTC().Format(layout)
}

// formatAgeLine wraps the age phrase into the localized sentence.
func (app *MarriedMoreApp) formatAgeLine(age engine.AgeBreakdown) string {
	phrase := app.agePhrase(age)
	if app.Localizer != nil {
		msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    config.TKeyResAge,
			TemplateData: map[string]interface{}{"Phrase": phrase},
		})
		if err == nil && msg != "" {
			return msg
		}
	}
	return fmt.Sprintf(config.FallbackResAge, phrase)
}

// agePhrase builds the "<N> years, <N> months" breakdown. Years appear when
// positive; months appear when positive or when the whole breakdown is zero,
// so the phrase never comes out empty.
func (app *MarriedMoreApp) agePhrase(age engine.AgeBreakdown) string {
	var parts []string
	if age.Years > 0 {
		parts = append(parts, app.pluralMsg(config.TKeyAgeYears, age.Years,
			config.FallbackYearOne, config.FallbackYearOther))
	}
	if age.Months > 0 || len(parts) == 0 {
		parts = append(parts, app.pluralMsg(config.TKeyAgeMonths, age.Months,
			config.FallbackMonthOne, config.FallbackMonthOther))
	}
	return strings.Join(parts, config.AgePhraseSeparator)
}

// pluralMsg localizes a counted message, falling back to English printf
// forms when the locale has no entry.
func (app *MarriedMoreApp) pluralMsg(key string, count int, one, other string) string {
	if app.Localizer != nil {
		msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    key,
			TemplateData: map[string]interface{}{"Count": count},
			PluralCount:  count,
		})
		if err == nil && msg != "" {
			return msg
		}
	}
	if count == 1 {
		return fmt.Sprintf(one, count)
	}
	return fmt.Sprintf(other, count)
}
