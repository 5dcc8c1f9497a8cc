package ui

import (
	"os"
	"strings"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyQuickPaste         = "quick_paste"
	KeyConfig             = "config"
	KeySettings           = "settings"
	KeyManageSlots        = "manage_slots"
	KeySlotName           = "slot_name"
	KeyLabelPlaceholder   = "label_placeholder"
	KeyContentPlaceholder = "content_placeholder"
	KeyNote               = "note"
	KeyAutoSaved          = "auto_saved"
	KeyHandleHint         = "handle_hint"
	KeyShowSlotsFile      = "show_slots_file"
	KeyClipboardMissing   = "clipboard_missing"
	KeyCopyFailed         = "copy_failed"
	KeyCopyFailedHint     = "copy_failed_hint"
	KeyErrorOpeningFile   = "error_opening_file"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the language from
// the LC_ALL, LC_MESSAGES or LANG environment variables.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" || lang == "" {
		lang = systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
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

func systemLanguage() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(env)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, "_.@-"); i > 0 {
			v = v[:i]
		}
		return strings.ToLower(v)
	}
	return "en"
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "SolarClip",
		KeyQuickPaste:         "Quick Paste",
		KeyConfig:             "Config",
		KeySettings:           "Settings",
		KeyManageSlots:        "Manage Clipboard Slots",
		KeySlotName:           "Slot %d",
		KeyLabelPlaceholder:   "Button Name",
		KeyContentPlaceholder: "Content to copy to clipboard...",
		KeyNote:               "Note:",
		KeyAutoSaved:          "Changes are saved automatically.",
		KeyHandleHint:         "Click to toggle, Drag to move",
		KeyShowSlotsFile:      "Show slots file",
		KeyClipboardMissing:   "Clipboard integration is not available. Copying is disabled.",
		KeyCopyFailed:         "Copy failed",
		KeyCopyFailedHint:     "Copy this text manually:",
		KeyErrorOpeningFile:   "Error opening file",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "SolarClip",
		KeyQuickPaste:         "Быстрая вставка",
		KeyConfig:             "Настройки",
		KeySettings:           "Настройки",
		KeyManageSlots:        "Слоты буфера обмена",
		KeySlotName:           "Слот %d",
		KeyLabelPlaceholder:   "Название кнопки",
		KeyContentPlaceholder: "Текст для копирования...",
		KeyNote:               "Примечание:",
		KeyAutoSaved:          "Изменения сохраняются автоматически.",
		KeyHandleHint:         "Нажмите, чтобы развернуть, перетащите, чтобы переместить",
		KeyShowSlotsFile:      "Показать файл слотов",
		KeyClipboardMissing:   "Буфер обмена недоступен. Копирование отключено.",
		KeyCopyFailed:         "Не удалось скопировать",
		KeyCopyFailedHint:     "Скопируйте текст вручную:",
		KeyErrorOpeningFile:   "Ошибка открытия файла",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "SolarClip",
		KeyQuickPaste:         "Colagem rápida",
		KeyConfig:             "Configurar",
		KeySettings:           "Configurações",
		KeyManageSlots:        "Gerenciar espaços da área de transferência",
		KeySlotName:           "Espaço %d",
		KeyLabelPlaceholder:   "Nome do botão",
		KeyContentPlaceholder: "Conteúdo para copiar...",
		KeyNote:               "Nota:",
		KeyAutoSaved:          "As alterações são salvas automaticamente.",
		KeyHandleHint:         "Clique para alternar, arraste para mover",
		KeyShowSlotsFile:      "Mostrar arquivo de espaços",
		KeyClipboardMissing:   "A área de transferência não está disponível. A cópia está desativada.",
		KeyCopyFailed:         "Falha ao copiar",
		KeyCopyFailedHint:     "Copie este texto manualmente:",
		KeyErrorOpeningFile:   "Erro ao abrir arquivo",
	}
}
