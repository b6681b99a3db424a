package categorizr

import (
	"regexp"
	"strings"
)

// Rule is a single entry of the pattern catalog.
type Rule struct {
	Group         string
	Name          string
	Pattern       string
	CaseSensitive bool
}

type compiledRule struct {
	Rule
	re *regexp.Regexp
}

// alt joins alternatives into a single regex alternation.
func alt(tokens ...string) string { return strings.Join(tokens, "|") }

// catalog is built once at package init and never mutated.
// Anything that a plain substring check can do is done in predicates.go instead.
var catalog = buildCatalog([]Rule{
	{Group: RuleGroupTV, Name: RuleSmartTV, Pattern: alt(
		`GoogleTV`, `SmartTV`, `Internet.TV`, `NetCast`, `NETTV`, `AppleTV`,
		`boxee`, `Kylo`, `Roku`, `DLNADOC`, `CE\-HTML`,
	)},
	{Group: RuleGroupTV, Name: RuleConsole, Pattern: alt(`Xbox`, `PLAYSTATION.3`, `Wii`)},

	{Group: RuleGroupTablet, Name: RuleIPad, Pattern: `iP(a|ro)d`},
	// Known to be phones even though they look like Android tablets.
	{Group: RuleGroupTablet, Name: RuleKnownPhoneTokens, Pattern: alt(
		`Fennec`, `mobi`, `HTC.Magic`, `HTCX06HT`, `Nexus.One`, `SC-02B`, `fone.945`,
	)},
	{Group: RuleGroupTablet, Name: RulePreAndroid3, Pattern: alt(
		`GT-P10`, `SC-01C`, `SHW-M180S`, `SGH-T849`, `SCH-I800`, `SHW-M180L`,
		`SPH-P100`, `SGH-I987`, `zt180`, `HTC(.Flyer|_Flyer)`, `Sprint.ATP51`,
		`ViewPad7`, `pandigital(sprnova|nova)`, `Ideos.S7`, `Dell.Streak.7`,
		`Advent.Vega`, `A101IT`, `A70BHT`, `MID7015`, `Next2`, `nook`,
	)},
	{Group: RuleGroupTablet, Name: RuleMac, Pattern: `Mac.OS`},

	{Group: RuleGroupMobile, Name: RuleUnique, Pattern: alt(
		`BOLT`, `Fennec`, `Iris`, `Maemo`, `Minimo`, `Mobi`, `mowser`, `NetFront`,
		`Novarra`, `Prism`, `RX-34`, `Skyfire`, `Tear`, `XV6875`, `XV6975`,
		`Google.Wireless.Transcoder`,
	)},
	{Group: RuleGroupMobile, Name: RuleWindowsLegacy, Pattern: `Windows.NT.5`},
	{Group: RuleGroupMobile, Name: RuleOperaMobile, Pattern: alt(
		`HTC`, `Xda`, `Mini`, `Vario`, `SAMSUNG\-GT\-i8000`, `SAMSUNG\-SGH\-i9`,
	)},

	{Group: RuleGroupDesktop, Name: RuleWindows, Pattern: `Windows.(NT|XP|ME|9)`, CaseSensitive: true},
	{Group: RuleGroupDesktop, Name: RuleWinLoose, Pattern: `Win(9|.9|NT)`},
	{Group: RuleGroupDesktop, Name: RuleMac, Pattern: `Macintosh|PowerPC`},
	{Group: RuleGroupDesktop, Name: RuleNix, Pattern: `Solaris|SunOS|BSD`},

	// Search engines and crawlers.
	{Group: RuleGroupRobot, Name: RuleBots, Pattern: alt(
		`Bot`, `Crawler`, `Spider`, `Yahoo`, `ia_archiver`, `Covario-IDS`,
		`findlinks`, `DataparkSearch`, `larbin`, `Mediapartners-Google`,
		`NG-Search`, `Snappy`, `Teoma`, `Jeeves`, `TinEye`,
	)},
})

type patternCatalog struct {
	rules []compiledRule
	index map[string]*regexp.Regexp
}

func buildCatalog(rules []Rule) patternCatalog {
	c := patternCatalog{
		rules: make([]compiledRule, 0, len(rules)),
		index: make(map[string]*regexp.Regexp, len(rules)),
	}
	for _, r := range rules {
		expr := r.Pattern
		if !r.CaseSensitive {
			expr = "(?i)" + expr
		}
		re := regexp.MustCompile(expr)
		c.rules = append(c.rules, compiledRule{Rule: r, re: re})
		c.index[ruleKey(r.Group, r.Name)] = re
	}
	return c
}

func ruleKey(group, name string) string { return group + "." + name }

// mustRule is used by the predicates; a missing rule is a programming error.
func (c patternCatalog) mustRule(group, name string) *regexp.Regexp {
	re, ok := c.index[ruleKey(group, name)]
	if !ok {
		panic("categorizr: missing catalog rule " + ruleKey(group, name))
	}
	return re
}

// Compiled rules, resolved once so the cascade never touches the index map.
var (
	reSmartTV          = catalog.mustRule(RuleGroupTV, RuleSmartTV)
	reConsole          = catalog.mustRule(RuleGroupTV, RuleConsole)
	reIPad             = catalog.mustRule(RuleGroupTablet, RuleIPad)
	reKnownPhoneTokens = catalog.mustRule(RuleGroupTablet, RuleKnownPhoneTokens)
	rePreAndroid3      = catalog.mustRule(RuleGroupTablet, RulePreAndroid3)
	reTabletMac        = catalog.mustRule(RuleGroupTablet, RuleMac)
	reMobileUnique     = catalog.mustRule(RuleGroupMobile, RuleUnique)
	reWindowsLegacy    = catalog.mustRule(RuleGroupMobile, RuleWindowsLegacy)
	reOperaMobile      = catalog.mustRule(RuleGroupMobile, RuleOperaMobile)
	reDesktopWindows   = catalog.mustRule(RuleGroupDesktop, RuleWindows)
	reWinLoose         = catalog.mustRule(RuleGroupDesktop, RuleWinLoose)
	reDesktopMac       = catalog.mustRule(RuleGroupDesktop, RuleMac)
	reNix              = catalog.mustRule(RuleGroupDesktop, RuleNix)
	reBots             = catalog.mustRule(RuleGroupRobot, RuleBots)
)

// Rules returns a copy of the catalog entries in declaration order.
func Rules() []Rule {
	out := make([]Rule, len(catalog.rules))
	for i, r := range catalog.rules {
		out[i] = r.Rule
	}
	return out
}

// MatchRule reports whether the catalog rule group.name matches anywhere in
// userAgent. The second result is false when no such rule exists.
func MatchRule(group, name, userAgent string) (matched, ok bool) {
	re, ok := catalog.index[ruleKey(group, name)]
	if !ok {
		return false, false
	}
	return newUserAgent(userAgent).search(re), true
}
