package engine

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/pimprenelle/marriedmore/internal/config"
)

// Milestones holds the dates extracted from a contact card. Zero values mark
// properties that were absent or unusable.
type Milestones struct {
	Name    string
	Birth   time.Time
	Wedding time.Time
}

// Empty reports whether the card carried no usable date at all.
func (m Milestones) Empty() bool {
	return m.Birth.IsZero() && m.Wedding.IsZero()
}

// ReadMilestones scans a vCard stream and returns the first card carrying a
// usable BDAY or ANNIVERSARY property (vCard 4.0, RFC 6350). Malformed cards
// are skipped to maximize data recovery from real-world address books.
func ReadMilestones(r io.Reader) (Milestones, error) {
	decoder := vcard.NewDecoder(r)
	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err)
			continue
		}

		m := milestonesFromCard(card)
		if !m.Empty() {
			slog.Debug(config.MsgImportDone,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyName, m.Name)
			return m, nil
		}
	}
	return Milestones{}, errors.New(config.ErrCardNoDates)
}

func milestonesFromCard(card vcard.Card) Milestones {
	m := Milestones{Name: config.FallbackName}
	if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
		m.Name = fn.Value
	}
	m.Birth = cardDate(card, config.VCardBDAY)
	m.Wedding = cardDate(card, config.VCardAnniversary)
	return m
}

// cardDate parses a dated property, requiring a full date with a year.
// Year-less values like --06-15 cannot anchor the calculation and are
// treated as absent.
func cardDate(card vcard.Card, field string) time.Time {
	prop := card.Get(field)
	if prop == nil || prop.Value == "" {
		return time.Time{}
	}
	t, err := parseCardDate(prop.Value)
	if err != nil {
		slog.Debug(config.MsgSkippedDate,
			config.LogKeyComponent, config.CompEngine,
			config.LogKeyValue, prop.Value)
		return time.Time{}
	}
	return t
}

// parseCardDate handles the date shapes seen in the wild for vCard BDAY and
// ANNIVERSARY values.
func parseCardDate(value string) (time.Time, error) {
	formats := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.New(config.ErrDateParse)
}
