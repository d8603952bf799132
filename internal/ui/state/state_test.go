package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"slidedeck/internal/navigator"
)

func TestUISyncSetters(t *testing.T) {
	s := NewAppState()
	assert.Equal(t, 1, s.ActiveIndicator)
	assert.False(t, s.PrevEnabled)
	assert.True(t, s.NextEnabled)

	s.SetActiveIndicator(3)
	s.SetButtonEnabled(navigator.ButtonPrevious, true)
	s.SetButtonEnabled(navigator.ButtonNext, false)
	s.SetButtonEnabled(navigator.Button("other"), false)
	s.SetProgress(37.5)

	assert.Equal(t, 3, s.ActiveIndicator)
	assert.True(t, s.PrevEnabled)
	assert.False(t, s.NextEnabled)
	assert.Equal(t, 38, s.ProgressRounded())
}

func TestSetProgressClamps(t *testing.T) {
	s := NewAppState()
	s.SetProgress(140)
	assert.Equal(t, 100.0, s.Progress)
	s.SetProgress(-5)
	assert.Equal(t, 0.0, s.Progress)
}
