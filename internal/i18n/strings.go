// Package i18n holds the localized UI string tables.
package i18n

import "fmt"

// DefaultLanguage is used when the configured language is unsupported.
const DefaultLanguage = "pt"

// Message identifies a UI string.
type Message string

const (
	MsgWelcome          Message = "welcome"
	MsgActionSelect     Message = "action_select"
	MsgNewRecording     Message = "new_recording"
	MsgReviewAudio      Message = "review_audio"
	MsgSelectAudio      Message = "select_audio"
	MsgAudioNotFound    Message = "audio_not_found"
	MsgInvalidSelection Message = "invalid_selection"
	MsgSelectedFile     Message = "selected_file"
	MsgModeSelect       Message = "mode_select"
	MsgMeetingMode      Message = "meeting_mode"
	MsgDiaryMode        Message = "diary_mode"
	MsgRecordingStart   Message = "recording_start"
	MsgRecordingStop    Message = "recording_stop"
	MsgTranscribing     Message = "transcribing"
	MsgTranscriptSaved  Message = "transcript_saved"
	MsgSummarizing      Message = "summarizing"
	MsgComplete         Message = "complete"
	MsgError            Message = "error"
	MsgNoAI             Message = "no_ai"
	MsgSettings         Message = "settings"
	MsgNewValue         Message = "new_value"
	MsgSettingUpdated   Message = "setting_updated"
	MsgInvalidValue     Message = "invalid_value"
	MsgGoodbye          Message = "goodbye"
)

// Presenter renders localized UI strings.
type Presenter struct {
	lang string
}

// New creates a presenter for the given language, falling back to the
// default language when unsupported.
func New(lang string) Presenter {
	if _, ok := tables[lang]; !ok {
		lang = DefaultLanguage
	}
	return Presenter{lang: lang}
}

// Language returns the effective presenter language.
func (p Presenter) Language() string { return p.lang }

// T returns the localized string for a message id.
func (p Presenter) T(id Message) string {
	if s, ok := tables[p.lang][id]; ok {
		return s
	}
	return tables[DefaultLanguage][id]
}

// Tf returns the localized string formatted with args.
func (p Presenter) Tf(id Message, args ...any) string {
	return fmt.Sprintf(p.T(id), args...)
}

var tables = map[string]map[Message]string{
	"pt": {
		MsgWelcome:          "🎙️ Bem-vindo à Secre-Tina! 🤖",
		MsgActionSelect:     "Escolha a ação:\n1. Nova Gravação\n2. Revisar Áudio Existente\n3. Configurações\n0. Sair\n> ",
		MsgNewRecording:     "🎙️ Nova gravação selecionada",
		MsgReviewAudio:      "🔊 Revisão de áudio selecionada",
		MsgSelectAudio:      "Selecione o arquivo de áudio para revisão na pasta %s:",
		MsgAudioNotFound:    "Nenhum arquivo de áudio encontrado na pasta %s",
		MsgInvalidSelection: "Seleção inválida. Por favor, tente novamente.",
		MsgSelectedFile:     "Arquivo selecionado: %s",
		MsgModeSelect:       "Escolha o modo:\n1. Reunião\n2. Diário\n> ",
		MsgMeetingMode:      "📋 Modo Reunião selecionado",
		MsgDiaryMode:        "📔 Modo Diário selecionado",
		MsgRecordingStart:   "🔴 Gravação iniciada. Pressione Enter quando terminar...",
		MsgRecordingStop:    "⏹️ Gravação finalizada!",
		MsgTranscribing:     "🔄 Transcrevendo o áudio...",
		MsgTranscriptSaved:  "📝 Transcrição salva em: %s",
		MsgSummarizing:      "💭 Gerando resumo com IA...",
		MsgComplete:         "✅ Processo completo! Resumo salvo em: %s",
		MsgError:            "❌ Erro: %s",
		MsgNoAI:             "Nem OpenAI nem Ollama estão disponíveis. Verifique suas configurações.",
		MsgSettings:         "⚙️ Configurações (0 para voltar):",
		MsgNewValue:         "Novo valor para %s: ",
		MsgSettingUpdated:   "✅ Configuração atualizada.",
		MsgInvalidValue:     "Valor inválido para %s. O valor anterior foi mantido.",
		MsgGoodbye:          "Até logo! 👋",
	},
	"en": {
		MsgWelcome:          "🎙️ Welcome to Secre-Tina! 🤖",
		MsgActionSelect:     "Choose action:\n1. New Recording\n2. Review Existing Audio\n3. Settings\n0. Exit\n> ",
		MsgNewRecording:     "🎙️ New recording selected",
		MsgReviewAudio:      "🔊 Audio review selected",
		MsgSelectAudio:      "Select an audio file for review in the %s folder:",
		MsgAudioNotFound:    "No audio files found in the %s folder",
		MsgInvalidSelection: "Invalid selection. Please try again.",
		MsgSelectedFile:     "Selected file: %s",
		MsgModeSelect:       "Choose mode:\n1. Meeting\n2. Diary\n> ",
		MsgMeetingMode:      "📋 Meeting Mode selected",
		MsgDiaryMode:        "📔 Diary Mode selected",
		MsgRecordingStart:   "🔴 Recording started. Press Enter when finished...",
		MsgRecordingStop:    "⏹️ Recording stopped!",
		MsgTranscribing:     "🔄 Transcribing audio...",
		MsgTranscriptSaved:  "📝 Transcript saved at: %s",
		MsgSummarizing:      "💭 Generating AI summary...",
		MsgComplete:         "✅ Process complete! Summary saved at: %s",
		MsgError:            "❌ Error: %s",
		MsgNoAI:             "Neither OpenAI nor Ollama are available. Check your settings.",
		MsgSettings:         "⚙️ Settings (0 to go back):",
		MsgNewValue:         "New value for %s: ",
		MsgSettingUpdated:   "✅ Setting updated.",
		MsgInvalidValue:     "Invalid value for %s. The previous value was kept.",
		MsgGoodbye:          "Goodbye! 👋",
	},
	"es": {
		MsgWelcome:          "🎙️ ¡Bienvenido a Secre-Tina! 🤖",
		MsgActionSelect:     "Elija la acción:\n1. Nueva Grabación\n2. Revisar Audio Existente\n3. Configuración\n0. Salir\n> ",
		MsgNewRecording:     "🎙️ Nueva grabación seleccionada",
		MsgReviewAudio:      "🔊 Revisión de audio seleccionada",
		MsgSelectAudio:      "Seleccione un archivo de audio para revisar en la carpeta %s:",
		MsgAudioNotFound:    "No se encontraron archivos de audio en la carpeta %s",
		MsgInvalidSelection: "Selección inválida. Por favor, inténtelo de nuevo.",
		MsgSelectedFile:     "Archivo seleccionado: %s",
		MsgModeSelect:       "Elija el modo:\n1. Reunión\n2. Diario\n> ",
		MsgMeetingMode:      "📋 Modo Reunión seleccionado",
		MsgDiaryMode:        "📔 Modo Diario seleccionado",
		MsgRecordingStart:   "🔴 Grabación iniciada. Presione Enter cuando termine...",
		MsgRecordingStop:    "⏹️ ¡Grabación finalizada!",
		MsgTranscribing:     "🔄 Transcribiendo el audio...",
		MsgTranscriptSaved:  "📝 Transcripción guardada en: %s",
		MsgSummarizing:      "💭 Generando resumen con IA...",
		MsgComplete:         "✅ ¡Proceso completo! Resumen guardado en: %s",
		MsgError:            "❌ Error: %s",
		MsgNoAI:             "Ni OpenAI ni Ollama están disponibles. Verifique su configuración.",
		MsgSettings:         "⚙️ Configuración (0 para volver):",
		MsgNewValue:         "Nuevo valor para %s: ",
		MsgSettingUpdated:   "✅ Configuración actualizada.",
		MsgInvalidValue:     "Valor inválido para %s. Se mantuvo el valor anterior.",
		MsgGoodbye:          "¡Hasta luego! 👋",
	},
}
