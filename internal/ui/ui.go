package ui

import (
	"context"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pimprenelle/marriedmore/internal/config"
	"github.com/pimprenelle/marriedmore/internal/engine"
)

// MarriedMoreApp encapsulates the UI state, preferences, and the result
// pipeline from form snapshot to rendered card.
type MarriedMoreApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Clock  engine.Clock // Injected clock for testability (e.g. mocking time travel)
	Copier Copier       // Clipboard destination, driver first with OS fallback

	SupportedLanguages []string

	form   *formWidgets
	latest engine.Result // most recent evaluation, drives copy and export

	statusResetDelay time.Duration
	statusReset      *time.Timer // pending copy-label reversion, nil when none
}

// NewMarriedMoreApp constructs the application and wires dependencies.
func NewMarriedMoreApp(a fyne.App, ctx context.Context) *MarriedMoreApp {
	return &MarriedMoreApp{
		App:         a,
		Preferences: a.Preferences(),
		Ctx:         ctx,
		Clock:       engine.RealClock{}, // Default to real clock in production
		Copier: FallbackCopier{
			Primary:   DriverClipboard{Clipboard: a.Clipboard()},
			Secondary: SystemClipboard{},
		},
		SupportedLanguages: config.SupportedLanguages,
		statusResetDelay:   config.CopyStatusResetDelay,
	}
}

// calculator assembles the engine entry point from the app's injected clock
// and the active localizer.
func (app *MarriedMoreApp) calculator() *engine.Calculator {
	return &engine.Calculator{Clock: app.Clock, Localize: app.GetMsg}
}

// Run initializes translations, builds the main window and starts the UI
// loop. It blocks until the window closes or the context is cancelled.
func (app *MarriedMoreApp) Run() {
	app.SetupI18n()
	app.BuildMainWindow()

	go func() {
		<-app.Ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompUI)
		fyne.Do(app.App.Quit)
	}()

	app.Window.ShowAndRun()
}

// Recompute re-derives the result from the current inputs and refreshes the
// card. It runs synchronously on every committed field change, so the
// display always reflects the latest form state.
func (app *MarriedMoreApp) Recompute() {
	in := app.formInput()
	res := app.calculator().Evaluate(in)
	app.latest = res
	app.renderResult(res)

	slog.Debug(config.MsgRecompute,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyMode, in.Mode,
		config.LogKeyState, res.State.String(),
	)
}

// formInput assembles the engine input from the widgets of the active tab.
func (app *MarriedMoreApp) formInput() engine.FormInput {
	sw := app.form
	if app.mode() == config.ModeAdvanced {
		return engine.FormInput{
			Mode:    config.ModeAdvanced,
			Birth:   engine.MilestoneInput{Value: sw.advBirth.Text, Zone: sw.advBirthZone.Selected},
			Wedding: engine.MilestoneInput{Value: sw.advWedding.Text, Zone: sw.advWeddingZone.Selected},
		}
	}
	return engine.FormInput{
		Mode:    config.ModeBasic,
		Birth:   engine.MilestoneInput{Value: sw.basicBirth.Text},
		Wedding: engine.MilestoneInput{Value: sw.basicWedding.Text},
	}
}

// mode maps the selected tab to the calculation mode.
func (app *MarriedMoreApp) mode() string {
	if app.form != nil && app.form.tabs != nil &&
		app.form.tabs.SelectedIndex() == config.TabIndexAdvanced {
		return config.ModeAdvanced
	}
	return config.ModeBasic
}

// weddingZone returns the zone the displayed time of day is anchored to.
func (app *MarriedMoreApp) weddingZone() string {
	if app.form == nil || app.form.advWeddingZone == nil {
		return config.ZoneUTC
	}
	if zone := app.form.advWeddingZone.Selected; zone != "" {
		return zone
	}
	return config.ZoneUTC
}

// copyResult pushes the current payload to the clipboard and flashes the
// outcome on the copy button.
func (app *MarriedMoreApp) copyResult() {
	if app.latest.State != engine.StateReady {
		// The button is disabled in the other states; guard direct calls.
		return
	}

	p := app.formatResult(app.latest, app.mode(), app.weddingZone())
	if err := app.Copier.Copy(p.Payload()); err != nil {
		slog.Warn(config.ErrCopyFailed,
			config.LogKeyComponent, config.CompClipboard,
			config.LogKeyError, err,
		)
		app.flashCopyStatus(config.TKeyBtnCopyFailed)
		return
	}

	slog.Info(config.MsgCopyDone,
		config.LogKeyComponent, config.CompClipboard,
		config.LogKeyLines, len(p.Lines()),
	)
	app.flashCopyStatus(config.TKeyBtnCopied)
}

// flashCopyStatus shows a transient outcome label on the copy button and
// schedules its reversion. A fresh flash supersedes any pending one, so at
// most one reversion timer exists and an old timer can never clobber a
// newer status.
func (app *MarriedMoreApp) flashCopyStatus(key string) {
	app.cancelStatusReset()
	app.form.btnCopy.SetText(app.GetMsg(key))
	app.statusReset = time.AfterFunc(app.statusResetDelay, func() {
		// The timer fires off the event thread.
		fyne.Do(func() {
			app.form.btnCopy.SetText(app.GetMsg(config.TKeyBtnCopy))
		})
	})
}

// cancelStatusReset stops a pending copy-label reversion, if any.
func (app *MarriedMoreApp) cancelStatusReset() {
	if app.statusReset != nil {
		app.statusReset.Stop()
		app.statusReset = nil
	}
}
