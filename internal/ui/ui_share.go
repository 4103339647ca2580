package ui

import (
	"fmt"
	"io"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/pimprenelle/marriedmore/internal/config"
	"github.com/pimprenelle/marriedmore/internal/engine"
)

// exportResult saves the computed anniversary as an iCalendar file.
func (app *MarriedMoreApp) exportResult() {
	if app.latest.State != engine.StateReady {
		return
	}

	// The dialog callback may run after further recomputes, so capture the
	// result the user actually asked to export.
	res := app.latest
	mode := app.mode()
	zone := app.weddingZone()

	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer func() { _ = wc.Close() }()
		app.writeEvent(res, mode, zone, wc)
	}, app.Window)
	d.SetFileName(config.ExportFileName)
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtICS}))
	d.Show()
}

// writeEvent encodes the anniversary event and streams it to the chosen
// destination.
func (app *MarriedMoreApp) writeEvent(res engine.Result, mode, zone string, w io.Writer) {
	p := app.formatResult(res, mode, zone)

	data, err := app.calculator().EncodeAnniversary(res, engine.ExportEvent{
		Summary:     app.msgOr(config.TKeyEvtSummary, config.FallbackEvtSummary),
		Description: p.Payload(),
		AllDay:      mode == config.ModeBasic,
	})
	if err != nil {
		slog.Error(config.ErrICalEncode,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err,
		)
		dialog.ShowError(err, app.Window)
		return
	}

	if _, err := w.Write(data); err != nil {
		slog.Error(config.ErrExportWrite,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err,
		)
		dialog.ShowError(fmt.Errorf("%s: %w", config.ErrExportWrite, err), app.Window)
		return
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompUI,
		config.LogKeySizeBytes, len(data),
	)
}

// importCard prefills the milestones from a contact card.
func (app *MarriedMoreApp) importCard() {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer func() { _ = rc.Close() }()
		app.applyMilestones(rc)
	}, app.Window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtVCF, config.ExtVCard}))
	d.Show()
}

// applyMilestones pushes imported dates into the Basic tab. Card dates carry
// no clock or zone, so the date-only mode is their natural home.
func (app *MarriedMoreApp) applyMilestones(r io.Reader) {
	m, err := engine.ReadMilestones(r)
	if err != nil {
		slog.Warn(config.ErrCardImport,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err,
		)
		dialog.ShowInformation(
			app.GetMsg(config.TKeyBtnImport),
			app.msgOr(config.TKeyImportEmpty, config.FallbackImportEmpty),
			app.Window,
		)
		return
	}

	sw := app.form
	sw.tabs.SelectIndex(config.TabIndexBasic)
	if !m.Birth.IsZero() {
		sw.basicBirth.SetText(m.Birth.Format(config.DateLayoutBasic))
	}
	if !m.Wedding.IsZero() {
		sw.basicWedding.SetText(m.Wedding.Format(config.DateLayoutBasic))
	}

	slog.Info(config.MsgImportDone,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyName, m.Name,
	)
	app.Recompute()
}
