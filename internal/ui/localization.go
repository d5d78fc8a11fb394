package ui

import (
	"golang.org/x/text/language"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyPrompt            = "prompt"
	KeyEnter             = "enter"
	KeySort              = "sort"
	KeyReset             = "reset"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyPace              = "pace"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyInvalidNumber     = "invalid_number"
	KeyOutOfRange        = "out_of_range"
	KeySelectLowValue    = "select_low_value"
	KeySortInProgress    = "sort_in_progress"
	KeySortCompleted     = "sort_completed"
	KeyCountPlaceholder  = "count_placeholder"
	KeyInterfaceSettings = "interface_settings"
)

// supportedLanguages are matched against the system locale, English first as fallback
var supportedLanguages = []language.Tag{
	language.English,
	language.Russian,
	language.Portuguese,
}

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" resolves systemLocale
// (a BCP 47 tag such as "pt-BR") against the available translations.
func (l *Localization) SetLanguage(lang, systemLocale string) {
	if lang == "system" {
		lang = MatchLanguage(systemLocale)
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// MatchLanguage returns the base language code of the closest available
// translation for a locale tag, falling back to English.
func MatchLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return "en"
	}

	matcher := language.NewMatcher(supportedLanguages)
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return "en"
	}

	base, _ := supportedLanguages[index].Base()
	return base.String()
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Sort Visualizer",
		KeyPrompt:            "How many numbers to display?",
		KeyEnter:             "Enter",
		KeySort:              "Sort",
		KeyReset:             "Reset",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyPace:              "Animation delay, ms",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyInvalidNumber:     "Invalid input. Please enter a valid number.",
		KeyOutOfRange:        "Please enter a number between 1 and 1000.",
		KeySelectLowValue:    "Please select a value smaller or equal to 30.",
		KeySortInProgress:    "Please wait until sorting is finished.",
		KeySortCompleted:     "Sorted",
		KeyCountPlaceholder:  "1-1000",
		KeyInterfaceSettings: "Interface Settings",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Визуализатор сортировки",
		KeyPrompt:            "Сколько чисел показать?",
		KeyEnter:             "Ввод",
		KeySort:              "Сортировать",
		KeyReset:             "Сброс",
		KeySettings:          "Настройки",
		KeyLanguage:          "Язык",
		KeyPace:              "Задержка анимации, мс",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyInvalidNumber:     "Неверный ввод. Введите число.",
		KeyOutOfRange:        "Введите число от 1 до 1000.",
		KeySelectLowValue:    "Выберите значение не больше 30.",
		KeySortInProgress:    "Дождитесь окончания сортировки.",
		KeySortCompleted:     "Отсортировано",
		KeyCountPlaceholder:  "1-1000",
		KeyInterfaceSettings: "Интерфейс",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Visualizador de Ordenação",
		KeyPrompt:            "Quantos números exibir?",
		KeyEnter:             "Entrar",
		KeySort:              "Ordenar",
		KeyReset:             "Reiniciar",
		KeySettings:          "Configurações",
		KeyLanguage:          "Idioma",
		KeyPace:              "Atraso da animação, ms",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyInvalidNumber:     "Entrada inválida. Digite um número válido.",
		KeyOutOfRange:        "Digite um número entre 1 e 1000.",
		KeySelectLowValue:    "Selecione um valor menor ou igual a 30.",
		KeySortInProgress:    "Aguarde o fim da ordenação.",
		KeySortCompleted:     "Ordenado",
		KeyCountPlaceholder:  "1-1000",
		KeyInterfaceSettings: "Interface",
	}
}
