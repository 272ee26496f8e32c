package objectionmodels

import (
	"strings"

	"career-tools-backend/lib/llm/completion"

	"github.com/pkg/errors"
)

type Tone string

const (
	ToneConfident    Tone = "Confident"
	ToneConsultative Tone = "Consultative"
	ToneFriendly     Tone = "Friendly"
	ToneAggressive   Tone = "Aggressive"
)

var Tones = []Tone{ToneConfident, ToneConsultative, ToneFriendly, ToneAggressive}

func (t Tone) IsValid() bool {
	for _, item := range Tones {
		if item == t {
			return true
		}
	}
	return false
}

type GenerationSettings struct {
	Model       string   `json:"model"`       // идентификатор или название модели, по умолчанию из настроек
	Temperature *float64 `json:"temperature"` // [0.0, 1.0], по умолчанию из настроек
}

func (s GenerationSettings) Validate() error {
	if s.Temperature != nil {
		return completion.ValidateTemperature(*s.Temperature)
	}
	return nil
}

type ReplyRequest struct {
	GenerationSettings
	Message string `json:"message"` // сообщение или возражение собеседника
	Tone    Tone   `json:"tone"`    // Confident, Consultative, Friendly, Aggressive
}

func (r ReplyRequest) Validate() error {
	if len(strings.TrimSpace(r.Message)) == 0 {
		return errors.New("сообщение не должно быть пустым")
	}
	if r.Tone != "" && !r.Tone.IsValid() {
		return errors.Errorf("неизвестный тон ответа: %s", r.Tone)
	}
	return r.GenerationSettings.Validate()
}

type JourneyRequest struct {
	GenerationSettings
	Context string `json:"context"` // описание ситуации с собеседником
}

func (r JourneyRequest) Validate() error {
	if len(strings.TrimSpace(r.Context)) == 0 {
		return errors.New("описание ситуации не должно быть пустым")
	}
	return r.GenerationSettings.Validate()
}

type GenerationResponse struct {
	Text  string `json:"text"`  // сгенерированный текст
	Model string `json:"model"` // использованная модель
}
