package deck

import (
	"fmt"
	"time"

	"slidedeck/internal/domain"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// staggered reveals widgets prefix-1..prefix-n at 300ms + step*i
func staggered(prefix string, n int, step int) []AnimationStep {
	steps := make([]AnimationStep, 0, n)
	for i := 0; i < n; i++ {
		steps = append(steps, AnimationStep{
			Delay:  ms(i*step + 300),
			Target: fmt.Sprintf("%s-%d", prefix, i+1),
			Effect: EffectReveal,
		})
	}
	return steps
}

func widgets(prefix string, kind WidgetKind, labels ...string) []*Widget {
	out := make([]*Widget, 0, len(labels))
	for i, l := range labels {
		out = append(out, &Widget{ID: fmt.Sprintf("%s-%d", prefix, i+1), Kind: kind, Label: l})
	}
	return out
}

// interleave alternates a and b, starting with a
func interleave(a, b []*Widget) []*Widget {
	out := make([]*Widget, 0, len(a)+len(b))
	for i := 0; i < len(a) || i < len(b); i++ {
		if i < len(a) {
			out = append(out, a[i])
		}
		if i < len(b) {
			out = append(out, b[i])
		}
	}
	return out
}

// Default returns the built-in eight slide deck
func Default() *Deck {
	ecosystemItems := widgets("ecosystem-item", WidgetCard, "Chargers", "Cloud Platform", "Mobile App", "Fleet Portal")
	ecosystemLinks := widgets("ecosystem-connector", WidgetConnector, "", "", "")
	var ecosystemSteps []AnimationStep
	for i := range ecosystemItems {
		ecosystemSteps = append(ecosystemSteps, AnimationStep{Delay: ms(i*400 + 300), Target: ecosystemItems[i].ID, Effect: EffectReveal})
		if i < len(ecosystemLinks) {
			ecosystemSteps = append(ecosystemSteps, AnimationStep{Delay: ms(i*400 + 500), Target: ecosystemLinks[i].ID, Effect: EffectReveal})
		}
	}

	d := &Deck{
		Title: "VoltPoint Smart Charging",
		Slides: []*Slide{
			{
				Title:    "VoltPoint",
				Subtitle: "Smart EV charging for every business",
				Body:     []string{"Charge ahead with networked, revenue-ready chargers."},
				Widgets: []*Widget{
					{ID: "charger-icon", Kind: WidgetIcon, Label: "⚡ charger"},
					{ID: "lightning-bolt", Kind: WidgetIcon, Label: "⚡"},
				},
				Animations: []AnimationStep{
					{Delay: ms(1000), Target: "lightning-bolt", Effect: EffectPulse},
				},
				Notes: "Open with the problem: drivers need reliable charging where they park.",
			},
			{
				Title:      "Why VoltPoint",
				Widgets:    widgets("value-prop", WidgetCard, "New revenue stream", "Attract and retain customers", "Sustainability credentials", "Zero-hassle operations"),
				Animations: staggered("value-prop", 4, 200),
			},
			{
				Title: "Technical Specifications",
				Body: []string{
					"Output: 7.4 kW to 22 kW AC",
					"Connectors: Type 2 / J1772",
					"Connectivity: 4G, Wi-Fi, Ethernet, OCPP 1.6J",
				},
				Widgets: []*Widget{{ID: "gauge-fill", Kind: WidgetGauge, Label: "Efficiency"}},
				Animations: []AnimationStep{
					{Delay: ms(1500), Target: "gauge-fill", Effect: EffectFill, Value: 85},
				},
			},
			{
				Title: "Features",
				Body: []string{
					"Touchscreen with guided sessions",
					"RFID, app and contactless payments",
					"Dynamic load balancing",
				},
				Widgets: []*Widget{{ID: "touchscreen-mockup", Kind: WidgetIcon, Label: "▣ touchscreen"}},
				Animations: []AnimationStep{
					{Delay: ms(1000), Target: "touchscreen-mockup", Effect: EffectFloat},
				},
			},
			{
				Title:    "Return on Investment",
				Subtitle: "Operating cost compared with a conventional installation",
				CTA:      domain.CTACalculateROI,
				Widgets: []*Widget{
					{ID: "comparison-1", Kind: WidgetBar, Label: "Conventional"},
					{ID: "comparison-2", Kind: WidgetBar, Label: "VoltPoint"},
				},
				Animations: []AnimationStep{
					{Delay: ms(1000), Target: "comparison-1", Effect: EffectFill, Value: 70},
					{Delay: ms(1000), Target: "comparison-2", Effect: EffectFill, Value: 45},
				},
			},
			{
				Title:      "Markets",
				CTA:        domain.CTABookConsultation,
				Widgets:    widgets("market-card", WidgetCard, "Retail", "Hospitality", "Workplace", "Multi-family"),
				Animations: staggered("market-card", 4, 200),
			},
			{
				Title:      "The Ecosystem",
				CTA:        domain.CTAScheduleDemo,
				Widgets:    interleave(ecosystemItems, ecosystemLinks),
				Animations: ecosystemSteps,
			},
			{
				Title:    "Ready to Charge Ahead?",
				Subtitle: "hello@voltpoint.example",
				CTA:      domain.CTAGetStarted,
				Widgets:  []*Widget{{ID: "final-cta", Kind: WidgetButton, Label: "Get Started Today"}},
				Animations: []AnimationStep{
					{Delay: ms(1500), Target: "final-cta", Effect: EffectPulse},
				},
			},
		},
	}

	for i, s := range d.Slides {
		s.Number = i + 1
		s.ResetWidgets()
	}
	return d
}
