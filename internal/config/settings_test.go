package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestPace(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if pace := settings.GetPaceMillis(); pace != DefaultPaceMillis {
		t.Errorf("Expected default pace %d, got %d", DefaultPaceMillis, pace)
	}

	// Test setting custom value
	settings.SetPaceMillis(25)
	if pace := settings.GetPace(); pace != 25*time.Millisecond {
		t.Errorf("Expected pace 25ms, got %s", pace)
	}

	// Test boundary values
	settings.SetPaceMillis(-3) // Should be clamped to 0
	if settings.GetPaceMillis() != 0 {
		t.Error("Pace should be clamped to minimum 0")
	}

	settings.SetPaceMillis(10000) // Should be clamped to max
	if settings.GetPaceMillis() != MaxPaceMillis {
		t.Errorf("Pace should be clamped to maximum %d", MaxPaceMillis)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ru")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "ru" {
		t.Errorf("Expected language 'ru', got %s", retrievedLang)
	}
}

func TestLastCount(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetLastCount() != 0 {
		t.Errorf("Expected no stored count, got %d", settings.GetLastCount())
	}

	settings.SetLastCount(1000)
	if settings.GetLastCount() != 1000 {
		t.Errorf("Expected stored count 1000, got %d", settings.GetLastCount())
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
