package llmmodels

import (
	"career-tools-backend/lib/llm/completion"
	objectionmodels "career-tools-backend/models/api/objection"
)

type ModelsResponse struct {
	Provider           string                   `json:"provider"`            // groq, yandexgpt
	Models             []completion.ModelOption `json:"models"`              // допустимые модели
	DefaultModel       string                   `json:"default_model"`       // модель по умолчанию
	DefaultTemperature float64                  `json:"default_temperature"` // температура по умолчанию
	Tones              []objectionmodels.Tone   `json:"tones"`               // тоны ответа на возражение
}
