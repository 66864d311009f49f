package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/peder1981/Secre-Tina/internal/config"
	"github.com/peder1981/Secre-Tina/internal/i18n"
	"github.com/peder1981/Secre-Tina/internal/ui"
)

// settingsKeys is the fixed menu order of the editable settings.
var settingsKeys = []string{
	config.KeyModel,
	config.KeyOpenAIKey,
	config.KeyOllamaURL,
	config.KeyWhisperModel,
	config.KeyLanguage,
}

// runSettings drives the settings submenu until the user goes back.
// Each accepted edit is persisted immediately and the live state
// (presenter, transcriber, backend registry) rebuilt from the store.
func (o *Orchestrator) runSettings() {
	for {
		o.println(ui.MenuStyle, o.pres.T(i18n.MsgSettings))
		for i, key := range settingsKeys {
			o.println(ui.MenuStyle, fmt.Sprintf("%d. %s = %s", i+1, key, displayValue(key, o.cfg.Value(key))))
		}

		choice, ok := o.promptLine("> ")
		if !ok || choice == "0" {
			return
		}
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(settingsKeys) {
			o.println(ui.WarnStyle, o.pres.T(i18n.MsgInvalidSelection))
			continue
		}

		key := settingsKeys[n-1]
		value, ok := o.promptLine(o.pres.Tf(i18n.MsgNewValue, key))
		if !ok {
			return
		}
		o.updateSetting(key, value)
	}
}

// updateSetting validates and persists one edit, then reloads the
// configuration so the change takes effect in the running session.
func (o *Orchestrator) updateSetting(key, value string) {
	if err := o.store.Update(map[string]string{key: value}); err != nil {
		var invalid *config.InvalidValueError
		if errors.As(err, &invalid) {
			o.println(ui.WarnStyle, o.pres.Tf(i18n.MsgInvalidValue, invalid.Field))
			return
		}
		o.report(err)
		return
	}

	cfg, err := o.store.Load()
	if err != nil {
		o.report(err)
		return
	}
	o.applyConfig(cfg)
	o.println(ui.SuccessStyle, o.pres.T(i18n.MsgSettingUpdated))
	slog.Info("setting updated", "key", key)
}

// displayValue masks secrets in the settings listing.
func displayValue(key, value string) string {
	if key == config.KeyOpenAIKey && value != "" {
		return strings.Repeat("*", 8)
	}
	return value
}
