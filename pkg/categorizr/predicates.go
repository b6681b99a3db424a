package categorizr

// The predicates below keep the operator precedence of the original rule set:
// AND binds tighter than OR and no extra grouping is applied. Some clauses read
// oddly as a result (the FOLIO check is not tied to the RX-34 negation); that
// behaviour is relied upon and must not be "fixed".

// isTV matches smart TVs, set-top boxes and TV-based game consoles.
func isTV(ua userAgent) bool {
	return ua.search(reSmartTV) || ua.search(reConsole)
}

func isTablet(ua userAgent) bool {
	// iPad / iPod and generic tablet tokens.
	if ua.search(reIPad) ||
		ua.contains("tablet") && !ua.contains("RX-34") ||
		ua.contains("FOLIO") {
		return true
	}
	// Android tablets, unless a known phone token is present.
	if ua.contains("linux") && ua.contains("android") && !ua.search(reKnownPhoneTokens) {
		return true
	}
	// Kindle and Kindle Fire (Silk on Mac OS).
	if ua.contains("Kindle") || ua.search(reTabletMac) && ua.contains("Silk") {
		return true
	}
	// Pre Android 3.0 tablets.
	return ua.search(rePreAndroid3) || ua.contains("MB511") && ua.contains("RUTEM")
}

func isMobile(ua userAgent) bool {
	if ua.search(reMobileUnique) {
		return true
	}
	// Opera Mobile on Windows Mobile reports itself as Windows NT 5.
	return ua.contains("Opera") && ua.search(reWindowsLegacy) && ua.search(reOperaMobile)
}

func isDesktop(ua userAgent) bool {
	if ua.search(reDesktopWindows) && !ua.contains("Phone") || ua.search(reWinLoose) {
		return true
	}
	if ua.search(reDesktopMac) && !ua.contains("Silk") {
		return true
	}
	if ua.contains("Linux") && ua.contains("X11") {
		return true
	}
	// Solaris, SunOS, BSD.
	return ua.search(reNix)
}

// isRobot matches crawlers, spiders and known search engine agents.
func isRobot(ua userAgent) bool {
	return ua.search(reBots)
}

// cascade evaluates the predicates in priority order and returns the first
// match. A robot with robotsAsMobile set falls through to the mobile default.
func cascade(ua userAgent, robotsAsMobile bool) Category {
	switch {
	case isTV(ua):
		return CategoryTV
	case isTablet(ua):
		return CategoryTablet
	case isMobile(ua):
		return CategoryMobile
	case isDesktop(ua):
		return CategoryDesktop
	case isRobot(ua) && !robotsAsMobile:
		return CategoryDesktop
	}
	return CategoryMobile
}
