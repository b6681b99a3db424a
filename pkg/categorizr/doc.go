// Package categorizr classifies HTTP User-Agent strings into one of four
// device categories: tv, tablet, mobile or desktop.
//
// Classification is mobile first. An ordered cascade of predicates built from
// a fixed catalog of precompiled patterns is evaluated and the first match
// wins; anything the cascade does not recognise is reported as mobile.
//
// # Cascade
//
// The predicates are evaluated in this order and short-circuit:
//
//	tv ──▶ tablet ──▶ mobile ──▶ desktop ──▶ robot ──▶ (default) mobile
//
// A detected robot is reported as desktop, or falls through to the mobile
// default when RobotsAsMobile is set. After the cascade, TabletsAsDesktops and
// TVsAsDesktops fold tablets and TVs into desktop.
//
// All patterns are matched case-insensitively anywhere in the agent, except the
// desktop Windows rule (Windows NT/XP/ME/9x), which is case-sensitive.
//
// # Usage
//
//	engine := categorizr.New(categorizr.WithTabletsAsDesktops(true))
//
//	device := engine.Detect(r.UserAgent())
//	if device.IsMobile() {
//	    // serve the mobile layout
//	}
//
// Engines are immutable and safe for concurrent use; the pattern catalog is
// shared read-only by every engine. For settings sourced from the environment
// use Config with NewFromConfig.
//
// # Error Handling
//
// Detect never fails. NewDevice resolves unknown tags to mobile; ParseCategory
// is the strict variant and returns ErrUnknownCategory.
package categorizr
