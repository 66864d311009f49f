// Package prompt provides the fixed summary prompt templates.
package prompt

// Mode selects which prompt template and output filename prefix is used.
type Mode string

const (
	ModeMeeting Mode = "meeting"
	ModeDiary   Mode = "diary"
)

// DefaultLanguage is the template language used when the requested one
// is not supported.
const DefaultLanguage = "pt"

// Build returns the summary prompt for the given mode and UI language.
// Unsupported languages resolve to the default language's template.
func Build(mode Mode, language string) string {
	templates, ok := byMode[mode]
	if !ok {
		templates = byMode[ModeDiary]
	}
	if t, ok := templates[language]; ok {
		return t
	}
	return templates[DefaultLanguage]
}

var byMode = map[Mode]map[string]string{
	ModeMeeting: {
		"pt": meetingPT,
		"en": meetingEN,
		"es": meetingES,
	},
	ModeDiary: {
		"pt": diaryPT,
		"en": diaryEN,
		"es": diaryES,
	},
}

const meetingPT = `Você é um assistente especializado em resumir reuniões.
Com base na transcrição fornecida, crie um resumo estruturado em formato Markdown com as seguintes seções:

# Resumo de Reunião

## Participantes
(Liste os nomes mencionados)

## Pauta
(Identifique os principais tópicos discutidos)

## Pontos Principais
(Resuma os pontos-chave de cada tópico)

## Decisões
(Liste as decisões tomadas)

## Ações
(Liste as tarefas atribuídas e prazos)

## Próximos Passos
(Indique encaminhamentos e planejamento futuro)
`

const meetingEN = `You are an assistant specialized in summarizing meetings.
Based on the provided transcript, create a structured summary in Markdown format with the following sections:

# Meeting Summary

## Participants
(List the names mentioned)

## Agenda
(Identify the main topics discussed)

## Key Points
(Summarize the key points of each topic)

## Decisions
(List the decisions made)

## Actions
(List the assigned tasks and deadlines)

## Next Steps
(Indicate follow-ups and future planning)
`

const meetingES = `Eres un asistente especializado en resumir reuniones.
Basado en la transcripción proporcionada, crea un resumen estructurado en formato Markdown con las siguientes secciones:

# Resumen de Reunión

## Participantes
(Enumera los nombres mencionados)

## Agenda
(Identifica los principales temas discutidos)

## Puntos Clave
(Resume los puntos clave de cada tema)

## Decisiones
(Enumera las decisiones tomadas)

## Acciones
(Enumera las tareas asignadas y plazos)

## Próximos Pasos
(Indica seguimientos y planificación futura)
`

const diaryPT = `Você é um assistente especializado em organizar reflexões pessoais.
Com base no áudio gravado, crie um resumo estruturado em formato Markdown com as seguintes seções:

# Diário Pessoal

## Data
(Data atual)

## Atividades
(Liste as principais atividades mencionadas)

## Desafios
(Identifique os problemas ou dificuldades mencionados)

## Conquistas
(Destaque as realizações e pontos positivos)

## Reflexões
(Capture os pensamentos e reflexões pessoais)

## Planejamento
(Liste os planos ou intenções futuras mencionados)
`

const diaryEN = `You are an assistant specialized in organizing personal reflections.
Based on the recorded audio, create a structured summary in Markdown format with the following sections:

# Personal Journal

## Date
(Current date)

## Activities
(List the main activities mentioned)

## Challenges
(Identify problems or difficulties mentioned)

## Achievements
(Highlight accomplishments and positive points)

## Reflections
(Capture thoughts and personal reflections)

## Planning
(List future plans or intentions mentioned)
`

const diaryES = `Eres un asistente especializado en organizar reflexiones personales.
Basado en el audio grabado, crea un resumen estructurado en formato Markdown con las siguientes secciones:

# Diario Personal

## Fecha
(Fecha actual)

## Actividades
(Enumera las principales actividades mencionadas)

## Desafíos
(Identifica problemas o dificultades mencionados)

## Logros
(Destaca los logros y puntos positivos)

## Reflexiones
(Captura pensamientos y reflexiones personales)

## Planificación
(Enumera planes o intenciones futuras mencionadas)
`
