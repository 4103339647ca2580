package engine

import (
	"time"

	"github.com/pimprenelle/marriedmore/internal/config"
)

// State identifies which variant of a Result is active.
type State int

const (
	// StateIdle means the form is not complete enough to compute anything.
	StateIdle State = iota
	// StateError means both milestones are present but semantically invalid.
	StateError
	// StateReady means the MarriedMore moment has been computed.
	StateReady
)

// String implements fmt.Stringer for log output.
func (s State) String() string {
	switch s {
	case StateIdle:
		return config.StateNameIdle
	case StateError:
		return config.StateNameError
	case StateReady:
		return config.StateNameReady
	default:
		return config.StateNameUnknown
	}
}

// AgeBreakdown decomposes the interval from birth to the MarriedMore moment
// into whole calendar years plus leftover whole months.
type AgeBreakdown struct {
	Years  int // never negative
	Months int // 0 through 11
}

// Result is the outcome of one evaluation. Exactly one state is active:
// MarriedMore, Age and WeddingIsFuture carry data only for StateReady,
// Message only for the other two states.
type Result struct {
	State           State
	Message         string
	MarriedMore     time.Time
	Age             AgeBreakdown
	WeddingIsFuture bool
}

// Calculator derives the MarriedMore moment, the instant at which time spent
// married equals time lived before the wedding. Localize lets the UI inject
// translated guidance strings; without it the config fallbacks apply.
type Calculator struct {
	Clock    Clock
	Localize func(key string) string
}

// Evaluate runs the normalize-then-compute pipeline on a form snapshot.
// Incomplete forms yield StateIdle without touching the normalizer, so a
// half-filled form never shows an error.
func (c *Calculator) Evaluate(in FormInput) Result {
	if !in.Complete() {
		return Result{
			State:   StateIdle,
			Message: c.guidance(config.TKeyResIdle, config.FallbackResIdle),
		}
	}
	birth := Normalize(in.Mode, in.Birth)
	wedding := Normalize(in.Mode, in.Wedding)
	return c.Compute(birth, wedding)
}

// Compute applies the MarriedMore rule to two absolute instants:
// span = wedding - birth, and the moment falls at wedding + span.
// A zero instant means a field failed normalization. Equal instants are
// rejected alongside reversed ones: a zero-length life before the wedding
// has no symmetric point.
func (c *Calculator) Compute(birth, wedding time.Time) Result {
	if birth.IsZero() || wedding.IsZero() {
		return Result{
			State:   StateError,
			Message: c.guidance(config.TKeyResErrIncomplete, config.FallbackResIncomplete),
		}
	}
	if !wedding.After(birth) {
		return Result{
			State:   StateError,
			Message: c.guidance(config.TKeyResErrOrder, config.FallbackResOrder),
		}
	}

	span := wedding.Sub(birth)
	marriedMore := wedding.Add(span)

	return Result{
		State:           StateReady,
		MarriedMore:     marriedMore,
		Age:             ageBetween(birth, marriedMore),
		WeddingIsFuture: wedding.After(c.Clock.Now()),
	}
}

// ageBetween counts whole calendar years and months from the anchor to the
// target. A month only counts once the anchor's day-of-month (and, on that
// day, its clock time) has been reached in the target month.
func ageBetween(anchor, target time.Time) AgeBreakdown {
	anchor, target = anchor.UTC(), target.UTC()
	months := (target.Year()-anchor.Year())*config.MonthsPerYear +
		int(target.Month()) - int(anchor.Month())
	if beforeMonthDay(anchor, target) {
		months--
	}
	if months < 0 {
		// Unreachable while Compute rejects wedding <= birth.
		months = 0
	}
	return AgeBreakdown{
		Years:  months / config.MonthsPerYear,
		Months: months % config.MonthsPerYear,
	}
}

// beforeMonthDay reports whether target sits earlier within its month than
// the anchor does within its own: day first, then clock time on a tie.
func beforeMonthDay(anchor, target time.Time) bool {
	if target.Day() != anchor.Day() {
		return target.Day() < anchor.Day()
	}
	ah, am, as := anchor.Clock()
	th, tm, ts := target.Clock()
	if th != ah {
		return th < ah
	}
	if tm != am {
		return tm < am
	}
	return ts < as
}

func (c *Calculator) guidance(key, fallback string) string {
	if c.Localize != nil {
		if msg := c.Localize(key); msg != "" && msg != key {
			return msg
		}
	}
	return fallback
}
