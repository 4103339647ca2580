package ui

import (
	"errors"
	"log/slog"

	"fyne.io/fyne/v2"
	"github.com/atotto/clipboard"
	"github.com/pimprenelle/marriedmore/internal/config"
)

// Copier writes text to a clipboard destination.
type Copier interface {
	Copy(text string) error
}

// DriverClipboard adapts the windowing driver's clipboard handle to the
// Copier contract.
type DriverClipboard struct {
	Clipboard fyne.Clipboard
}

// Copy pushes text through the driver clipboard.
func (d DriverClipboard) Copy(text string) error {
	if d.Clipboard == nil {
		return errors.New(config.ErrClipboardDriver)
	}
	d.Clipboard.SetContent(text)
	return nil
}

// SystemClipboard writes through the OS clipboard utilities, independent of
// the windowing driver.
type SystemClipboard struct{}

// Copy implements the Copier interface.
func (SystemClipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// FallbackCopier tries Primary first and hands the text to Secondary when
// the primary is unavailable or rejects the write.
type FallbackCopier struct {
	Primary   Copier
	Secondary Copier
}

// Copy implements the Copier interface.
func (f FallbackCopier) Copy(text string) error {
	err := f.Primary.Copy(text)
	if err == nil {
		return nil
	}
	if f.Secondary == nil {
		return err
	}
	slog.Debug(config.MsgCopyFallback,
		config.LogKeyComponent, config.CompClipboard,
		config.LogKeyError, err,
	)
	return f.Secondary.Copy(text)
}
