package domain

// Status is a read-only snapshot of the navigator
type Status struct {
	Current         int
	Total           int
	IsFirst         bool
	IsLast          bool
	ProgressPercent float64
}

// NotificationKind selects notification styling
type NotificationKind string

const (
	KindInfo    NotificationKind = "info"
	KindSuccess NotificationKind = "success"
)

// Notification is a transient message shown on top of the deck
type Notification struct {
	Message string
	Kind    NotificationKind
}

// CTAAction identifies a call-to-action button on a slide
type CTAAction string

const (
	CTANone             CTAAction = ""
	CTABookConsultation CTAAction = "book-consultation"
	CTACalculateROI     CTAAction = "calculate-roi"
	CTAScheduleDemo     CTAAction = "schedule-demo"
	CTAGetStarted       CTAAction = "get-started"
	CTAUnknown          CTAAction = "unknown"
)

// ParseCTAAction maps a configured action name onto a known action.
// Anything unrecognised becomes CTAUnknown.
func ParseCTAAction(s string) CTAAction {
	switch CTAAction(s) {
	case CTANone, CTABookConsultation, CTACalculateROI, CTAScheduleDemo, CTAGetStarted:
		return CTAAction(s)
	default:
		return CTAUnknown
	}
}

// Label returns the button caption for the action
func (a CTAAction) Label() string {
	switch a {
	case CTABookConsultation:
		return "Book a Free Consultation"
	case CTACalculateROI:
		return "Calculate Your ROI"
	case CTAScheduleDemo:
		return "Schedule a Demo"
	case CTAGetStarted:
		return "Get Started Today"
	case CTANone:
		return ""
	default:
		return "Learn More"
	}
}

// Notification returns the notification a click on the action produces
func (a CTAAction) Notification() Notification {
	switch a {
	case CTABookConsultation:
		return Notification{Message: "🗓️ Consultation booking system would open here", Kind: KindInfo}
	case CTACalculateROI:
		return Notification{Message: "📊 ROI calculator would launch here", Kind: KindInfo}
	case CTAScheduleDemo:
		return Notification{Message: "🎬 Demo scheduling would open here", Kind: KindInfo}
	case CTAGetStarted:
		return Notification{Message: "🚀 Contact form would open here - Ready to charge ahead!", Kind: KindSuccess}
	default:
		return Notification{Message: "✨ Feature would be available in production", Kind: KindInfo}
	}
}
