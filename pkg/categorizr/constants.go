package categorizr

// Category is the device class a user agent resolves to.
type Category string

// Device categories surfaced to callers.
const (
	// CategoryMobile identifies phones and anything unrecognised (mobile first).
	CategoryMobile Category = "mobile"

	// CategoryTablet identifies tablets: iPad, Android tablets, Kindle, etc.
	CategoryTablet Category = "tablet"

	// CategoryDesktop identifies desktop and laptop computers.
	CategoryDesktop Category = "desktop"

	// CategoryTV identifies smart TVs, set-top boxes and TV-connected consoles.
	CategoryTV Category = "tv"
)

// Rule groups of the pattern catalog. RuleGroupRobot never surfaces as a
// device category; robots resolve to desktop or mobile.
const (
	RuleGroupTV      = "tv"
	RuleGroupTablet  = "tablet"
	RuleGroupMobile  = "mobile"
	RuleGroupDesktop = "desktop"
	RuleGroupRobot   = "robot"
)

// Subrule names of the pattern catalog.
const (
	RuleSmartTV          = "smart"
	RuleConsole          = "console"
	RuleIPad             = "ipad"
	RuleKnownPhoneTokens = "known_phone_tokens"
	RulePreAndroid3      = "pre_android3"
	RuleMac              = "mac"
	RuleUnique           = "unique"
	RuleWindowsLegacy    = "windows_legacy"
	RuleOperaMobile      = "opera_mobile"
	RuleWindows          = "windows"
	RuleWinLoose         = "win_loose"
	RuleNix              = "nix"
	RuleBots             = "bots"
)

// Categories returns the four device categories in cascade priority order.
func Categories() []Category {
	return []Category{CategoryTV, CategoryTablet, CategoryMobile, CategoryDesktop}
}

// String returns the category tag.
func (c Category) String() string { return string(c) }

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryMobile, CategoryTablet, CategoryDesktop, CategoryTV:
		return true
	}
	return false
}
