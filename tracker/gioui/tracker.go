package gioui

import (
	"image"
	"io"
	"log/slog"
	"time"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/vsariola/tabula/tracker"
)

type (
	// Tracker is the presentation layer: it owns the window, drives the
	// transport once per display frame and turns input into model calls.
	Tracker struct {
		Theme     *Theme
		TabRows   *TabRows
		StatusBar *StatusBar
		Dialog    *Dialog
		Frames    *tracker.FrameQueue

		recovery    Recovery
		preferences Preferences
		log         *slog.Logger

		*tracker.Model
	}

	// Recovery is implemented by document stores that periodically save a
	// recovery file.
	Recovery interface {
		SaveRecovery() error
	}

	C = layout.Context
	D = layout.Dimensions
)

// RecoveryInterval is how often the recovery file is saved.
const RecoveryInterval = 30 * time.Second

func NewTracker(model *tracker.Model, frames *tracker.FrameQueue, recovery Recovery, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	t := &Tracker{
		Theme:     NewTheme(),
		TabRows:   &TabRows{},
		StatusBar: NewStatusBar(model),
		Dialog:    &Dialog{},
		Frames:    frames,
		recovery:  recovery,
		log:       logger,
		Model:     model,
	}
	var err error
	if t.preferences, err = MakePreferences(); err != nil {
		model.Alerts().AddAlert(tracker.Alert{
			Priority: tracker.Warning,
			Message:  err.Error(),
			Duration: 10 * time.Second,
		})
	}
	t.TabRows.Mode = t.preferences.LayoutMode()
	return t
}

func (t *Tracker) Main() {
	recoveryTicker := time.NewTicker(RecoveryInterval)
	defer recoveryTicker.Stop()
	var ops op.Ops
	w := t.newWindow()
	acks := make(chan struct{})
	events := make(chan event.Event)
	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-acks
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()
F:
	for {
		select {
		case e := <-t.Broker().ToModel:
			t.ProcessMsg(e)
			w.Invalidate()
		case <-t.Broker().CloseGUI:
			w.Perform(system.ActionClose)
		case e := <-events:
			switch e := e.(type) {
			case app.DestroyEvent:
				if e.Err != nil {
					t.log.Error("window closed with error", "err", e.Err)
				}
				acks <- struct{}{}
				break F
			case app.FrameEvent:
				t.Frames.Advance(e.Now)
				gtx := app.NewContext(&ops, e)
				t.Layout(gtx)
				if t.Frames.Pending() {
					gtx.Execute(op.InvalidateCmd{})
				}
				e.Frame(gtx.Ops)
			}
			acks <- struct{}{}
		case <-recoveryTicker.C:
			t.saveRecovery()
		}
	}
	t.Transport().Stop().Do()
	t.saveRecovery()
	close(t.Broker().FinishedGUI)
}

func (t *Tracker) newWindow() *app.Window {
	w := new(app.Window)
	w.Option(app.Title("Tabula"), app.Size(t.preferences.WindowSize()))
	if t.preferences.Window.Maximized {
		w.Option(app.Maximized.Option())
	}
	return w
}

func (t *Tracker) saveRecovery() {
	if t.recovery == nil {
		return
	}
	if err := t.recovery.SaveRecovery(); err != nil {
		t.log.Warn("could not save recovery file", "err", err)
		t.Alerts().AddNamed("Recovery", err.Error(), tracker.Warning)
	}
}

func (t *Tracker) Layout(gtx C) {
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, t.Theme.Material.Bg)
	event.Op(gtx.Ops, t)
	// top level input handler for all the keys nobody else handled
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: "", Optional: key.ModAlt | key.ModCommand | key.ModShift | key.ModShortcut | key.ModSuper | key.ModCtrl},
		)
		if !ok {
			break
		}
		if e, ok := ev.(key.Event); ok {
			if ke, ok := translateKey(e); ok {
				t.HandleKey(ke)
			}
		}
	}
	layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D { return t.StatusBar.Layout(gtx, t.Theme, t) }),
		layout.Flexed(1, func(gtx C) D { return t.TabRows.Layout(gtx, t.Theme, t.Model, t.preferences) }),
	)
	LayoutAlerts(gtx, t.Theme, t.Alerts())
	t.Dialog.Layout(gtx, t.Theme, t.Model)
}
