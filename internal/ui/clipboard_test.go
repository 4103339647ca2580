package ui_test

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/pimprenelle/marriedmore/internal/config"
	"github.com/pimprenelle/marriedmore/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCopier records writes and fails on demand.
type stubCopier struct {
	texts []string
	err   error
}

func (s *stubCopier) Copy(text string) error {
	if s.err != nil {
		return s.err
	}
	s.texts = append(s.texts, text)
	return nil
}

func TestFallbackCopier_PrimaryWins(t *testing.T) {
	primary := &stubCopier{}
	secondary := &stubCopier{}
	c := ui.FallbackCopier{Primary: primary, Secondary: secondary}

	require.NoError(t, c.Copy("payload"))

	assert.Equal(t, []string{"payload"}, primary.texts)
	assert.Empty(t, secondary.texts, "secondary must stay untouched while the primary works")
}

func TestFallbackCopier_SecondaryOnPrimaryFailure(t *testing.T) {
	primary := &stubCopier{err: errors.New("driver unavailable")}
	secondary := &stubCopier{}
	c := ui.FallbackCopier{Primary: primary, Secondary: secondary}

	require.NoError(t, c.Copy("payload"))

	assert.Equal(t, []string{"payload"}, secondary.texts)
}

func TestFallbackCopier_BothFail(t *testing.T) {
	primary := &stubCopier{err: errors.New("driver unavailable")}
	secondary := &stubCopier{err: errors.New("no system clipboard")}
	c := ui.FallbackCopier{Primary: primary, Secondary: secondary}

	err := c.Copy("payload")

	require.Error(t, err)
	assert.Equal(t, "no system clipboard", err.Error(), "the caller should see the last attempt's error")
}

func TestFallbackCopier_NoSecondary(t *testing.T) {
	primary := &stubCopier{err: errors.New("driver unavailable")}
	c := ui.FallbackCopier{Primary: primary}

	err := c.Copy("payload")

	require.Error(t, err)
	assert.Equal(t, "driver unavailable", err.Error())
}

func TestDriverClipboard_NilHandle(t *testing.T) {
	c := ui.DriverClipboard{}

	err := c.Copy("payload")

	require.Error(t, err)
	assert.Equal(t, config.ErrClipboardDriver, err.Error())
}

func TestDriverClipboard_WritesThroughDriver(t *testing.T) {
	a := test.NewApp()
	c := ui.DriverClipboard{Clipboard: a.Clipboard()}

	require.NoError(t, c.Copy("payload"))

	assert.Equal(t, "payload", a.Clipboard().Content())
}
