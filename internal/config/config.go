package config

import "time"

// -----------------------------------------------------------------------------
// Wheel Geometry
// -----------------------------------------------------------------------------

const (
	// TotalRows is the size of the virtual row space of every cyclic wheel.
	TotalRows = 20_000

	// InitialOffset is where value 0 of a freshly centred cyclic wheel sits.
	// It must be far enough from both ends that no scroll gesture reaches one.
	InitialOffset = 10_000

	// EraRows is the fixed row count of the era wheel (BC, AD).
	EraRows = 2

	DaysPerCycle         = 31
	MonthsPerCycle       = 12
	SubCenturiesPerCycle = 100
	YearsPerCentury      = 100
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultMinimumYear = -9999
	DefaultMaximumYear = 9999

	// BoundTolerance widens the range used when previewing an edit, so that
	// rows on the bound year are not greyed out because of time-of-day.
	BoundTolerance = 24 * time.Hour

	DefaultLanguage = "en"
)

// SupportedLanguages defines the list of bundled label languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	// TKeyMonthFormat and TKeyMonthShortFormat expect a 1-based month number.
	TKeyMonthFormat      = "month_%02d"
	TKeyMonthShortFormat = "month_short_%02d"

	TKeyEraBC = "era_bc"
	TKeyEraAD = "era_ad"

	// TKeyEraFormat names era indices that have no label.
	TKeyEraFormat = "era_%d"

	LocaleDir    = "locales"
	LocalePrefix = "active."
	LocaleExt    = ".json"
)

// -----------------------------------------------------------------------------
// Label Formats
// -----------------------------------------------------------------------------

const (
	FormatDay        = "%d"
	FormatCentury    = "%d"
	FormatSubCentury = "%02d"

	// ColumnPadding is the number of cells added around each wheel column.
	ColumnPadding = 1
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidBounds   = "configuration error: invalid year bounds"
	ErrBoundsOrder     = "maximum year must be greater than minimum year"
	ErrInvalidGeometry = "configuration error: invalid wheel geometry"
	ErrInvalidDate     = "fields do not form a valid calendar date"
	ErrContract        = "contract violation"
	ErrUnknownComp     = "unknown wheel component"
	ErrRowRange        = "virtual row out of range"
	ErrBoundsTooWide   = "more centuries than the wheel geometry holds"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgPickerReady     = "Date picker initialised"
	MsgBoundsRejected  = "Rejected year bounds"
	MsgBoundsUpdated   = "Year bounds updated"
	MsgDateSet         = "Date set"
	MsgDateClamped     = "Date clamped to bounds"
	MsgWheelSettled    = "Wheel settled"
	MsgEditDiscarded   = "Discarding edit that does not form a valid date"
	MsgWheelRecentered = "Wheel re-centred"
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleBadName   = "Skipping malformed locale filename"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTransMissing    = "Missing translation key"
	MsgLangFallback    = "Unsupported language, falling back to default"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyWheel     = "wheel"
	LogKeyRow       = "row"
	LogKeyValue     = "value"
	LogKeyDate      = "date"
	LogKeyMinYear   = "min_year"
	LogKeyMaxYear   = "max_year"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyOld       = "old"
	LogKeyNew       = "new"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompPicker = "picker"
	CompBounds = "bounds"
	CompLabels = "labels"
)
