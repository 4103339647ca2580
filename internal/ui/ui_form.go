package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/pimprenelle/marriedmore/internal/config"
	"github.com/pimprenelle/marriedmore/internal/engine"
)

// formWidgets holds references to UI elements to simplify refreshing the
// form and snapshotting its state across rebuilds.
type formWidgets struct {
	tabs *container.AppTabs

	basicBirth   *DateEntry
	basicWedding *DateEntry

	advBirth       *DateEntry
	advBirthZone   *widget.Select
	advWedding     *DateEntry
	advWeddingZone *widget.Select

	dateLabel    *widget.Label
	ageLabel     *widget.Label
	explainLabel *widget.Label
	noteLabel    *widget.Label
	messageLabel *widget.Label

	btnCopy   *widget.Button
	btnExport *widget.Button
	btnImport *widget.Button

	langSelect *widget.Select
}

// formSnapshot captures everything the user typed so a window rebuild (for
// example after a language change) does not lose their input.
type formSnapshot struct {
	mode         string
	basicBirth   string
	basicWedding string
	advBirth     string
	advWedding   string
	birthZone    string
	weddingZone  string
}

// BuildMainWindow constructs the single application window and runs the
// initial evaluation so the result card never starts blank.
func (app *MarriedMoreApp) BuildMainWindow() {
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window = w

	w.SetContent(app.buildContent())
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	w.SetOnClosed(func() {
		app.cancelStatusReset()
	})

	app.Recompute()
}

// buildContent assembles the full widget tree from the current locale and
// preferences. Language changes rebuild it wholesale.
func (app *MarriedMoreApp) buildContent() fyne.CanvasObject {
	sw := &formWidgets{}
	app.form = sw

	recompute := func(string) { app.Recompute() }

	// --- 1. Basic tab (calendar dates only) ---

	sw.basicBirth = NewDateEntry()
	sw.basicBirth.PlaceHolder = config.PlaceholderDate
	sw.basicBirth.Validator = app.dateValidator(false)
	sw.basicBirth.OnChanged = recompute

	sw.basicWedding = NewDateEntry()
	sw.basicWedding.PlaceHolder = config.PlaceholderDate
	sw.basicWedding.Validator = app.dateValidator(false)
	sw.basicWedding.OnChanged = recompute

	itemBasicBirth := widget.NewFormItem(app.GetMsg(config.TKeyLblBirthDate), sw.basicBirth)
	itemBasicBirth.HintText = app.GetMsg(config.TKeyHelpDate)
	itemBasicWedding := widget.NewFormItem(app.GetMsg(config.TKeyLblWeddingDate), sw.basicWedding)
	itemBasicWedding.HintText = app.GetMsg(config.TKeyHelpDate)

	basicForm := widget.NewForm(itemBasicBirth, itemBasicWedding)

	// --- 2. Advanced tab (local date-times plus time zones) ---

	sw.advBirth = NewDateTimeEntry()
	sw.advBirth.PlaceHolder = config.PlaceholderDateTime
	sw.advBirth.Validator = app.dateValidator(true)
	sw.advBirth.OnChanged = recompute

	sw.advWedding = NewDateTimeEntry()
	sw.advWedding.PlaceHolder = config.PlaceholderDateTime
	sw.advWedding.Validator = app.dateValidator(true)
	sw.advWedding.OnChanged = recompute

	// Select widgets are created without a handler first. Assigning
	// OnChanged only after SetSelected keeps the restored preference from
	// firing a recompute against a half-built form.
	sw.advBirthZone = widget.NewSelect(config.SupportedZones, nil)
	sw.advBirthZone.SetSelected(app.Preferences.StringWithFallback(config.PrefBirthZone, config.ZoneUTC))
	sw.advBirthZone.OnChanged = func(zone string) {
		app.Preferences.SetString(config.PrefBirthZone, zone)
		app.Recompute()
	}

	sw.advWeddingZone = widget.NewSelect(config.SupportedZones, nil)
	sw.advWeddingZone.SetSelected(app.Preferences.StringWithFallback(config.PrefWeddingZone, config.ZoneUTC))
	sw.advWeddingZone.OnChanged = func(zone string) {
		app.Preferences.SetString(config.PrefWeddingZone, zone)
		app.Recompute()
	}

	itemAdvBirth := widget.NewFormItem(app.GetMsg(config.TKeyLblBirthMoment), sw.advBirth)
	itemAdvBirth.HintText = app.GetMsg(config.TKeyHelpDateTime)
	itemAdvBirthZone := widget.NewFormItem(app.GetMsg(config.TKeyLblBirthZone), sw.advBirthZone)
	itemAdvBirthZone.HintText = app.GetMsg(config.TKeyHelpZone)
	itemAdvWedding := widget.NewFormItem(app.GetMsg(config.TKeyLblWeddingMoment), sw.advWedding)
	itemAdvWedding.HintText = app.GetMsg(config.TKeyHelpDateTime)
	itemAdvWeddingZone := widget.NewFormItem(app.GetMsg(config.TKeyLblWeddingZone), sw.advWeddingZone)
	itemAdvWeddingZone.HintText = app.GetMsg(config.TKeyHelpZone)

	advForm := widget.NewForm(itemAdvBirth, itemAdvBirthZone, itemAdvWedding, itemAdvWeddingZone)

	// --- 3. Mode tabs ---

	sw.tabs = container.NewAppTabs(
		container.NewTabItem(app.GetMsg(config.TKeyTabBasic), basicForm),
		container.NewTabItem(app.GetMsg(config.TKeyTabAdvanced), advForm),
	)
	if app.Preferences.StringWithFallback(config.PrefMode, config.ModeBasic) == config.ModeAdvanced {
		sw.tabs.SelectIndex(config.TabIndexAdvanced)
	}
	sw.tabs.OnSelected = func(*container.TabItem) {
		app.Preferences.SetString(config.PrefMode, app.mode())
		app.Recompute()
	}

	entryCard := widget.NewCard(app.GetMsg(config.TKeyLblMilestones), "", sw.tabs)

	// --- 4. Result card ---

	sw.dateLabel = widget.NewLabel("")
	sw.dateLabel.TextStyle = fyne.TextStyle{Bold: true}

	sw.ageLabel = widget.NewLabel("")

	sw.explainLabel = widget.NewLabel("")
	sw.explainLabel.Wrapping = fyne.TextWrapWord

	sw.noteLabel = widget.NewLabel("")
	sw.noteLabel.TextStyle = fyne.TextStyle{Italic: true}

	sw.messageLabel = widget.NewLabel("")
	sw.messageLabel.Wrapping = fyne.TextWrapWord

	resultCard := widget.NewCard(app.GetMsg(config.TKeyLblResult), "", container.NewVBox(
		sw.messageLabel,
		sw.dateLabel,
		sw.ageLabel,
		sw.explainLabel,
		sw.noteLabel,
	))

	// --- 5. Action buttons ---

	sw.btnCopy = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCopy), theme.ContentCopyIcon(), app.copyResult)
	sw.btnCopy.Importance = widget.HighImportance
	sw.btnExport = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnExport), theme.DocumentSaveIcon(), app.exportResult)
	sw.btnImport = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnImport), theme.FolderOpenIcon(), app.importCard)

	buttonRow := container.NewGridWithColumns(config.LayoutColumnsTriple, sw.btnCopy, sw.btnExport, sw.btnImport)

	// --- 6. Language and footer ---

	sw.langSelect = widget.NewSelect(app.SupportedLanguages, nil)
	sw.langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))
	sw.langSelect.OnChanged = app.applyLanguage

	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)
	itemLang.HintText = app.GetMsg(config.TKeyHelpLanguage)
	langForm := widget.NewForm(itemLang)

	footerText := fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version)
	footerLabel := widget.NewLabel(footerText)
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	return container.NewPadded(container.NewVBox(
		entryCard,
		resultCard,
		buttonRow,
		langForm,
		footerLabel,
	))
}

// dateValidator enforces the lexical shape of a calendar field. An empty
// field is legal: it means "not filled in yet", not "wrong".
func (app *MarriedMoreApp) dateValidator(withTime bool) fyne.StringValidator {
	pattern := regexp.MustCompile(config.PatternDate)
	key := config.TKeyErrDateShape
	if withTime {
		pattern = regexp.MustCompile(config.PatternDateTime)
		key = config.TKeyErrDateTimeShape
	}

	return func(value string) error {
		if value == "" {
			return nil
		}
		if !pattern.MatchString(value) {
			return errors.New(app.GetMsg(key))
		}
		return nil
	}
}

// renderResult refreshes the result card for the given evaluation.
func (app *MarriedMoreApp) renderResult(res engine.Result) {
	sw := app.form
	p := app.formatResult(res, app.mode(), app.weddingZone())

	switch res.State {
	case engine.StateReady:
		sw.messageLabel.Hide()
		sw.dateLabel.SetText(p.Date)
		sw.dateLabel.Show()
		sw.ageLabel.SetText(p.Age)
		sw.ageLabel.Show()
		sw.explainLabel.SetText(p.Explain)
		sw.explainLabel.Show()
		if p.Note != "" {
			sw.noteLabel.SetText(p.Note)
			sw.noteLabel.Show()
		} else {
			sw.noteLabel.Hide()
		}
		sw.btnCopy.Enable()
		sw.btnExport.Enable()

	case engine.StateError:
		app.showGuidance(p.Message, widget.DangerImportance)

	default:
		app.showGuidance(p.Message, widget.MediumImportance)
	}
}

// showGuidance collapses the result card to a single message line and locks
// the actions that need a computed result.
func (app *MarriedMoreApp) showGuidance(msg string, importance widget.Importance) {
	sw := app.form

	sw.dateLabel.Hide()
	sw.ageLabel.Hide()
	sw.explainLabel.Hide()
	sw.noteLabel.Hide()

	sw.messageLabel.Importance = importance
	sw.messageLabel.SetText(msg)
	sw.messageLabel.Refresh()
	sw.messageLabel.Show()

	sw.btnCopy.Disable()
	sw.btnExport.Disable()
}

// applyLanguage persists the language choice and rebuilds the window with
// relocalized widgets, preserving whatever the user already typed.
func (app *MarriedMoreApp) applyLanguage(lang string) {
	app.Preferences.SetString(config.PrefLanguage, lang)
	app.UpdateLocalizer()

	snap := app.snapshotForm()
	app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
	app.Window.SetContent(app.buildContent())
	app.restoreForm(snap)

	slog.Info(config.MsgLangApplied,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyLang, lang,
	)
	app.Recompute()
}

// snapshotForm captures both tabs, not only the visible one, so nothing
// typed on the hidden tab is lost across a rebuild.
func (app *MarriedMoreApp) snapshotForm() formSnapshot {
	sw := app.form
	return formSnapshot{
		mode:         app.mode(),
		basicBirth:   sw.basicBirth.Text,
		basicWedding: sw.basicWedding.Text,
		advBirth:     sw.advBirth.Text,
		advWedding:   sw.advWedding.Text,
		birthZone:    sw.advBirthZone.Selected,
		weddingZone:  sw.advWeddingZone.Selected,
	}
}

// restoreForm pushes a snapshot back into freshly built widgets.
func (app *MarriedMoreApp) restoreForm(snap formSnapshot) {
	sw := app.form

	sw.basicBirth.SetText(snap.basicBirth)
	sw.basicWedding.SetText(snap.basicWedding)
	sw.advBirth.SetText(snap.advBirth)
	sw.advWedding.SetText(snap.advWedding)
	if snap.birthZone != "" {
		sw.advBirthZone.SetSelected(snap.birthZone)
	}
	if snap.weddingZone != "" {
		sw.advWeddingZone.SetSelected(snap.weddingZone)
	}

	if snap.mode == config.ModeAdvanced {
		sw.tabs.SelectIndex(config.TabIndexAdvanced)
	} else {
		sw.tabs.SelectIndex(config.TabIndexBasic)
	}
}
