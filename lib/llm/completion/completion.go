package completion

import (
	"context"
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Provider выполняет один запрос к completion endpoint.
// Ошибки сети и API не возвращаются через error, а упаковываются в Result.
type Provider interface {
	Complete(ctx context.Context, req Request) Result
	Name() string
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
}

type Request struct {
	Model       string
	Messages    []Message
	Temperature float64
}

// NewRequest собирает запрос: системная инструкция (если задана) и
// пользовательский текст без изменений.
func NewRequest(model, systemPrompt, userContent string, temperature float64) Request {
	messages := make([]Message, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, Message{Role: RoleSystem, Content: systemPrompt})
	}
	messages = append(messages, Message{Role: RoleUser, Content: userContent})
	return Request{
		Model:       model,
		Messages:    messages,
		Temperature: temperature,
	}
}

func (r Request) Validate() error {
	if !IsAllowedModel(r.Model) {
		return errors.Errorf("модель %q не поддерживается", r.Model)
	}
	if err := ValidateTemperature(r.Temperature); err != nil {
		return err
	}
	if len(r.Messages) == 0 {
		return errors.New("список сообщений не должен быть пустым")
	}
	for idx, msg := range r.Messages {
		if msg.Role == RoleSystem && idx != 0 {
			return errors.New("системное сообщение должно быть первым")
		}
	}
	if r.Messages[len(r.Messages)-1].Role != RoleUser {
		return errors.New("последнее сообщение должно быть от пользователя")
	}
	return nil
}

// ValidateTemperature отклоняет значения вне [0.0, 1.0], включая NaN
func ValidateTemperature(temperature float64) error {
	if math.IsNaN(temperature) || temperature < MinTemperature || temperature > MaxTemperature {
		return errors.Errorf("температура должна быть в диапазоне [%.1f, %.1f]", MinTemperature, MaxTemperature)
	}
	return nil
}

// SystemPrompt и UserPrompt нужны для журнала запросов.
func (r Request) SystemPrompt() string {
	if len(r.Messages) > 0 && r.Messages[0].Role == RoleSystem {
		return r.Messages[0].Content
	}
	return ""
}

func (r Request) UserPrompt() string {
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[len(r.Messages)-1].Content
}

type FailureKind string

const (
	NetworkError      FailureKind = "NetworkError"
	InvalidCredential FailureKind = "InvalidCredential"
	RateLimited       FailureKind = "RateLimited"
	MalformedResponse FailureKind = "MalformedResponse"
	UnexpectedStatus  FailureKind = "UnexpectedStatus"
)

type Failure struct {
	Kind       FailureKind `json:"kind"`
	StatusCode int         `json:"status_code,omitempty"`
	Detail     string      `json:"detail"`
}

func (f *Failure) Error() string {
	if f.StatusCode != 0 {
		return fmt.Sprintf("%s (%d): %s", f.Kind, f.StatusCode, f.Detail)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
}

// Result - либо текст ответа, либо Failure. Определять ошибку по
// содержимому текста нельзя, только по Failure.
type Result struct {
	Text    string
	Failure *Failure
}

func Success(text string) Result {
	return Result{Text: text}
}

func Fail(kind FailureKind, statusCode int, detail string) Result {
	return Result{Failure: &Failure{Kind: kind, StatusCode: statusCode, Detail: detail}}
}

func (r Result) IsSuccess() bool {
	return r.Failure == nil
}

// KindByStatus классифицирует не успешный HTTP статус.
func KindByStatus(statusCode int) FailureKind {
	switch statusCode {
	case 401, 403:
		return InvalidCredential
	case 429:
		return RateLimited
	default:
		return UnexpectedStatus
	}
}
