package tracker

import (
	"cmp"
	"slices"
	"time"
)

type (
	// Alert is a message shown to the user for a limited time, e.g. when the
	// MIDI port cannot be opened or the recovery file cannot be written.
	Alert struct {
		Name     string
		Priority AlertPriority
		Message  string
		Duration time.Duration

		shown time.Time
	}

	AlertPriority int

	Alerts Model
)

const (
	Info AlertPriority = iota
	Warning
	Error
)

const defaultAlertDuration = 3 * time.Second

func (m *Model) Alerts() *Alerts { return (*Alerts)(m) }

// Add adds a new alert with the default duration.
func (m *Alerts) Add(message string, priority AlertPriority) {
	m.AddAlert(Alert{Priority: priority, Message: message, Duration: defaultAlertDuration})
}

// AddNamed adds an alert, replacing any previous alert with the same name.
func (m *Alerts) AddNamed(name, message string, priority AlertPriority) {
	m.AddAlert(Alert{Name: name, Priority: priority, Message: message, Duration: defaultAlertDuration})
}

func (m *Alerts) AddAlert(a Alert) {
	if a.Duration == 0 {
		a.Duration = defaultAlertDuration
	}
	a.shown = m.clock.Now()
	if a.Name != "" {
		for i := range m.alerts {
			if m.alerts[i].Name == a.Name {
				m.alerts[i] = a
				return
			}
		}
	}
	m.alerts = append(m.alerts, a)
}

// Visible returns the alerts that have not yet expired, dropping the expired
// ones. The highest priority alert is first.
func (m *Alerts) Visible() []Alert {
	now := m.clock.Now()
	alerts := m.alerts[:0]
	for _, a := range m.alerts {
		if now.Sub(a.shown) < a.Duration {
			alerts = append(alerts, a)
		}
	}
	m.alerts = alerts
	ret := make([]Alert, len(alerts))
	copy(ret, alerts)
	slices.SortStableFunc(ret, func(a, b Alert) int { return cmp.Compare(b.Priority, a.Priority) })
	return ret
}
