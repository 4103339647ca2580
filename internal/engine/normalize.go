package engine

import (
	"fmt"
	"log/slog"
	"time"
	// Embed the IANA database so zone resolution never depends on the host.
	_ "time/tzdata"

	"github.com/pimprenelle/marriedmore/internal/config"
)

// MilestoneInput carries the raw field values for one life milestone as the
// user typed them.
type MilestoneInput struct {
	Value string // Basic: YYYY-MM-DD; Advanced: YYYY-MM-DDTHH:MM[:SS]
	Zone  string // IANA zone identifier, Advanced mode only
}

// FormInput is a snapshot of the whole form: the active entry mode plus both
// milestones.
type FormInput struct {
	Mode    string // config.ModeBasic or config.ModeAdvanced
	Birth   MilestoneInput
	Wedding MilestoneInput
}

// Complete reports whether every field the active mode requires is filled in.
// An incomplete form is not an error, it simply cannot be evaluated yet.
func (in FormInput) Complete() bool {
	if in.Birth.Value == "" || in.Wedding.Value == "" {
		return false
	}
	if in.Mode == config.ModeAdvanced {
		return in.Birth.Zone != "" && in.Wedding.Zone != ""
	}
	return true
}

// Normalize converts one milestone into an absolute UTC instant.
// Basic mode reads a plain calendar date and anchors it at midnight UTC.
// Advanced mode reads a local wall-clock value and resolves it through the
// milestone's zone, so DST offsets at that moment are honored.
// The zero time is the invalid-instant sentinel for anything unparseable.
func Normalize(mode string, in MilestoneInput) time.Time {
	if in.Value == "" {
		return time.Time{}
	}
	if mode == config.ModeAdvanced {
		return normalizeZoned(in.Value, in.Zone)
	}
	return normalizeDate(in.Value)
}

func normalizeDate(value string) time.Time {
	t, err := time.Parse(config.DateLayoutBasic, value)
	if err != nil {
		slog.Debug(config.MsgSkippedDate,
			config.LogKeyComponent, config.CompEngine,
			config.LogKeyValue, value,
		)
		return time.Time{}
	}
	return t
}

func normalizeZoned(value, zone string) time.Time {
	loc, err := ZoneLocation(zone)
	if err != nil {
		slog.Warn(config.ErrZoneLoad,
			config.LogKeyComponent, config.CompEngine,
			config.LogKeyZone, zone,
			config.LogKeyError, err,
		)
		return time.Time{}
	}
	// Seconds are optional in the entry, so try the longer layout first.
	for _, layout := range []string{config.DateTimeLayoutSecond, config.DateTimeLayoutMinute} {
		if t, perr := time.ParseInLocation(layout, value, loc); perr == nil {
			return t.UTC()
		}
	}
	slog.Debug(config.MsgSkippedDate,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyValue, value,
	)
	return time.Time{}
}

// ZoneLocation resolves a supported zone identifier to its time.Location.
// An empty name defaults to UTC.
func ZoneLocation(name string) (*time.Location, error) {
	if name == "" || name == config.ZoneUTC {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", config.ErrZoneLoad, name, err)
	}
	return loc, nil
}
