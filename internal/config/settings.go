package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyPaceMillis = "animation_pace_ms"
	KeyLanguage   = "app_language"
	KeyLastCount  = "last_count"
)

// Default values
const (
	DefaultPaceMillis = 2
	DefaultLanguage   = "system"

	MaxPaceMillis = 500
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetPaceMillis returns the delay between two animated swaps in milliseconds
func (s *Settings) GetPaceMillis() int {
	return s.app.Preferences().IntWithFallback(KeyPaceMillis, DefaultPaceMillis)
}

// SetPaceMillis sets the delay between two animated swaps, clamped to [0, MaxPaceMillis]
func (s *Settings) SetPaceMillis(ms int) {
	if ms < 0 {
		ms = 0
	}
	if ms > MaxPaceMillis {
		ms = MaxPaceMillis
	}
	s.app.Preferences().SetInt(KeyPaceMillis, ms)
}

// GetPace returns the animation pace as a duration
func (s *Settings) GetPace() time.Duration {
	return time.Duration(s.GetPaceMillis()) * time.Millisecond
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetLastCount returns the last accepted count, or 0 if none was stored
func (s *Settings) GetLastCount() int {
	return s.app.Preferences().Int(KeyLastCount)
}

// SetLastCount remembers the last accepted count to prefill the input
func (s *Settings) SetLastCount(count int) {
	s.app.Preferences().SetInt(KeyLastCount, count)
}
