package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Married More"
	AppID       = "com.github.pimprenelle.marriedmore"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for the log file.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating the app cache directory.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth  = 560
	MainWindowHeight = 620

	// Preference Keys
	PrefLanguage    = "language"
	PrefMode        = "entry_mode"
	PrefBirthZone   = "birth_zone"
	PrefWeddingZone = "wedding_zone"
	PrefLastRun     = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Entry Modes & Tabs
// -----------------------------------------------------------------------------

const (
	ModeBasic    = "basic"
	ModeAdvanced = "advanced"

	TabIndexBasic    = 0
	TabIndexAdvanced = 1
)

// -----------------------------------------------------------------------------
// Time Zones
// -----------------------------------------------------------------------------

// ZoneUTC is the neutral zone and the default selection in Advanced mode.
const ZoneUTC = "UTC"

// SupportedZones is the closed set of zone identifiers offered by the UI.
// The normalizer only ever sees names from this list.
var SupportedZones = []string{
	ZoneUTC,
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"Europe/London",
	"Europe/Paris",
	"Europe/Berlin",
	"Asia/Tokyo",
	"Asia/Shanghai",
	"Australia/Sydney",
}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle         = "win_title"
	TKeyTabBasic         = "tab_basic"
	TKeyTabAdvanced      = "tab_advanced"
	TKeyLblMilestones    = "lbl_milestones"
	TKeyLblBirthDate     = "lbl_birth_date"
	TKeyLblWeddingDate   = "lbl_wedding_date"
	TKeyLblBirthMoment   = "lbl_birth_moment"
	TKeyLblWeddingMoment = "lbl_wedding_moment"
	TKeyLblBirthZone     = "lbl_birth_zone"
	TKeyLblWeddingZone   = "lbl_wedding_zone"
	TKeyHelpDate         = "help_date_format"
	TKeyHelpDateTime     = "help_datetime_format"
	TKeyHelpZone         = "help_zone"
	TKeyLblResult        = "lbl_result"
	TKeyResIdle          = "res_idle"
	TKeyResErrIncomplete = "res_err_incomplete"
	TKeyResErrOrder      = "res_err_order"
	TKeyResAge           = "res_age" // Requires Phrase
	TKeyResExplain       = "res_explain"
	TKeyResFutureNote    = "res_future_note"
	TKeyAgeYears         = "age_years"  // Requires Count (plural)
	TKeyAgeMonths        = "age_months" // Requires Count (plural)
	TKeyBtnCopy          = "btn_copy"
	TKeyBtnCopied        = "btn_copied"
	TKeyBtnCopyFailed    = "btn_copy_failed"
	TKeyBtnExport        = "btn_export"
	TKeyBtnImport        = "btn_import"
	TKeyEvtSummary       = "event_summary"
	TKeyImportEmpty      = "import_empty"
	TKeyLblLanguage      = "lbl_language"
	TKeyHelpLanguage     = "help_language"
	TKeyLblFooter        = "lbl_footer"

	// Validation Errors (UI)
	TKeyErrDateShape     = "err_date_shape"
	TKeyErrDateTimeShape = "err_datetime_shape"

	// Display layouts shipped as translations (Go time layout patterns)
	TKeyFormatDate     = "format_date_long"
	TKeyFormatDateTime = "format_datetime_long"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "en"
	MonthsPerYear   = 12

	// UID Generation (calendar export)
	UIDSalt         = "marriedmore-v1-" // Salt for deterministic UID generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s"
	FormatUID       = "%s@%s"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Married More//Calculator//EN"
	ICalCalName = "Married More"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "marriedmore"

	// iCal/vCard Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDescription = "DESCRIPTION"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardBDAY        = "BDAY"
	VCardAnniversary = "ANNIVERSARY"
	VCardFN          = "FN"
)

// -----------------------------------------------------------------------------
// Data Formats, Shapes & File Extensions
// -----------------------------------------------------------------------------

const (
	// Input layouts accepted by the normalizer
	DateLayoutBasic      = "2006-01-02"
	DateTimeLayoutMinute = "2006-01-02T15:04"
	DateTimeLayoutSecond = "2006-01-02T15:04:05"

	// Lexical shapes enforced by the entry validators
	PatternDate     = `^\d{4}-\d{2}-\d{2}$`
	PatternDateTime = `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}(?::\d{2})?$`

	// Date layouts used for parsing vCard BDAY/ANNIVERSARY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"

	// Display fallbacks when the locale carries no layout
	DateFormatDisplay     = "January 2, 2006"
	DateTimeFormatDisplay = "January 2, 2006 at 3:04 PM (MST)"

	// File Extensions
	ExtICS   = ".ics"
	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"

	ExportFileName = "marriedmore.ics"
)

// -----------------------------------------------------------------------------
// Timings & Layout
// -----------------------------------------------------------------------------

const (
	// CopyStatusResetDelay is how long the copy button wears its transient
	// outcome label before reverting to the default.
	CopyStatusResetDelay = 2 * time.Second

	LayoutColumnsTriple = 3

	AgePhraseSeparator   = ", "
	PayloadLineSeparator = "\n"

	PlaceholderDate     = "YYYY-MM-DD"
	PlaceholderDateTime = "YYYY-MM-DDTHH:MM"
)

// -----------------------------------------------------------------------------
// Result State Names (logs)
// -----------------------------------------------------------------------------

const (
	StateNameIdle    = "idle"
	StateNameError   = "error"
	StateNameReady   = "ready"
	StateNameUnknown = "unknown"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrAppFailed       = "application failed unexpectedly"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrZoneLoad        = "unsupported time zone"
	ErrDateParse       = "unable to parse date"
	ErrCardNoDates     = "no usable milestone dates in contact card"
	ErrCardImport      = "contact card import failed"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrExportNotReady  = "nothing to export: result is not ready"
	ErrExportWrite     = "failed to write calendar file"
	ErrClipboardDriver = "clipboard driver unavailable"
	ErrCopyFailed      = "copy to clipboard failed"
)

// -----------------------------------------------------------------------------
// Fallbacks & Defaults
// -----------------------------------------------------------------------------

// Guidance fallbacks used by the calculator when no localizer is injected.
// The English locale carries the same strings.
const (
	FallbackResIdle       = "Enter both milestones to see your MarriedMore day."
	FallbackResIncomplete = "Double-check that each calendar entry is complete."
	FallbackResOrder      = "Your wedding must happen after your birthdate. Please adjust the earlier entry."
)

const (
	FallbackResAge      = "You will be %s old."
	FallbackExplain     = "On this day, you will have been married for as long as you had lived before your wedding."
	FallbackFutureNote  = "Note: your wedding date is still in the future."
	FallbackEvtSummary  = "MarriedMore day"
	FallbackImportEmpty = "No usable birth or wedding dates were found in this card."
	FallbackName        = "Unknown"

	FallbackYearOne    = "%d year"
	FallbackYearOther  = "%d years"
	FallbackMonthOne   = "%d month"
	FallbackMonthOther = "%d months"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting  = "Starting application"
	MsgAppStop      = "Application stopped gracefully"
	MsgCtxCancel    = "Context cancelled, shutting down UI"
	MsgLangApplied  = "Language applied"
	MsgRecompute    = "Result recomputed"
	MsgCopyDone     = "Result copied to clipboard"
	MsgCopyFallback = "Primary clipboard rejected the write, trying fallback"
	MsgExportDone   = "Calendar event exported"
	MsgImportDone   = "Milestones imported from contact card"
	MsgSkippedCard  = "Skipping malformed contact card"
	MsgSkippedDate  = "Skipping invalid date value"
	MsgLocaleSkip   = "Skipping non-locale file"
	MsgLocaleLoaded = "Locale loaded successfully"
	MsgTransMissing = "Missing translation key"
	MsgLogWarning   = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyMode      = "mode"
	LogKeyState     = "state"
	LogKeyLang      = "lang"
	LogKeyFile      = "file"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyName      = "name"
	LogKeyZone      = "zone"
	LogKeyLines     = "lines"
	LogKeySizeBytes = "size_bytes"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain      = "main"
	CompUI        = "ui"
	CompEngine    = "engine"
	CompI18n      = "i18n"
	CompClipboard = "clipboard"
)
