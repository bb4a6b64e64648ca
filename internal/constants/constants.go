package constants

// Session / context keys
const (
	SessionCookieName = "organizer_session"
	ContextKeyUserID  = "user_id"
)

// Pagination
const (
	DefaultPageSize = 10
	MinPage         = 1
)

// Auth
const (
	MinPasswordLength = 8
	LoginPath         = "/login"
)

// XHRHeader marks AJAX calls; its value must be XHRHeaderValue.
const (
	XHRHeader      = "X-Requested-With"
	XHRHeaderValue = "XMLHttpRequest"
)

// Dashboard list limits
const (
	DashboardTaskListLimit      = 10
	DashboardRecentTasksLimit   = 5
	DashboardRecentGoalsLimit   = 5
	DashboardTodayApptLimit     = 5
	DashboardUpcomingApptLimit  = 5
	DashboardRecentApptLimit    = 6
	DashboardUpcomingWindowDays = 7
	DashboardPastApptWindowDays = 30
	DashboardPastApptLimit      = 10
)

// Calendar bounds
const (
	CalendarMinYear = 1900
	CalendarMaxYear = 2100
)
