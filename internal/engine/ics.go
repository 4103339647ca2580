package engine

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/pimprenelle/marriedmore/internal/config"
)

// ExportEvent describes the single calendar entry built from a ready Result.
type ExportEvent struct {
	Summary     string // localized event title
	Description string // the same text the clipboard receives
	AllDay      bool   // Basic mode exports a date, Advanced a date-time
}

// EncodeAnniversary renders a ready Result as an iCalendar document holding
// one event at the MarriedMore moment, suitable for import into any RFC 5545
// calendar client.
func (c *Calculator) EncodeAnniversary(res Result, evt ExportEvent) ([]byte, error) {
	if res.State != StateReady {
		return nil, errors.New(config.ErrExportNotReady)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, exportUID(res))
	event.Props.SetText(config.PropSummary, evt.Summary)
	if evt.Description != "" {
		event.Props.SetText(config.PropDescription, evt.Description)
	}

	dtStartProp := ical.NewProp(config.PropDTStart)
	if evt.AllDay {
		dtStartProp.SetDate(res.MarriedMore)
	} else {
		dtStartProp.SetDateTime(res.MarriedMore.UTC())
	}
	event.Props.Set(dtStartProp)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(c.Clock.Now().UTC())
	event.Props.Set(dtStampProp)

	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}

// exportUID derives a deterministic identifier from the computed moment, so
// re-exporting the same result replaces the event instead of duplicating it.
func exportUID(res Result) string {
	input := fmt.Sprintf(config.FormatHashInput,
		res.MarriedMore.UTC().Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf(config.FormatUID,
		fmt.Sprintf("%x", hash[:config.UIDHashLength]), config.ICalDomain)
}
