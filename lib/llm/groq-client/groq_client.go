package groqclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"career-tools-backend/lib/llm/completion"
	openaimodels "career-tools-backend/models/api/openai"

	log "github.com/sirupsen/logrus"
)

const providerName = completion.ProviderGroq

type impl struct {
	url    string
	apiKey string
	client *http.Client
}

// NewClient создаёт клиента OpenAI-совместимого Chat Completions API.
// timeout == 0 - без ограничения времени ответа.
func NewClient(url, apiKey string, timeout time.Duration) completion.Provider {
	return &impl{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

func (i impl) Name() string {
	return providerName
}

func (i impl) Complete(ctx context.Context, req completion.Request) completion.Result {
	body, err := json.Marshal(toChatRequest(req))
	if err != nil {
		return completion.Fail(completion.MalformedResponse, 0, fmt.Sprintf("ошибка сериализации запроса: %v", err))
	}
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, i.url, bytes.NewReader(body))
	if err != nil {
		return completion.Fail(completion.NetworkError, 0, err.Error())
	}
	r.Header.Set("Authorization", fmt.Sprintf("Bearer %v", i.apiKey))
	r.Header.Set("Content-Type", "application/json")

	logger := log.
		WithField("external_request", i.url).
		WithField("model", req.Model)

	response, err := i.client.Do(r)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки запроса в LLM")
		return completion.Fail(completion.NetworkError, 0, err.Error())
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return completion.Fail(completion.NetworkError, response.StatusCode, fmt.Sprintf("ошибка чтения ответа: %v", err))
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		logger.
			WithField("status", response.StatusCode).
			WithField("response_body", string(responseBody)).
			Error("LLM вернула неуспешный статус")
		return completion.Fail(
			completion.KindByStatus(response.StatusCode),
			response.StatusCode,
			fmt.Sprintf("LLM Error (%d): %s", response.StatusCode, string(responseBody)),
		)
	}
	return parseChatResponse(response.StatusCode, responseBody)
}

func toChatRequest(req completion.Request) openaimodels.ChatCompletionRequest {
	messages := make([]openaimodels.ChatMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, openaimodels.ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	return openaimodels.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: req.Temperature,
	}
}

func parseChatResponse(statusCode int, body []byte) completion.Result {
	resp := openaimodels.ChatCompletionResponse{}
	if err := json.Unmarshal(body, &resp); err != nil {
		return completion.Fail(completion.MalformedResponse, statusCode, fmt.Sprintf("ошибка десериализации ответа: %v, body: %s", err, string(body)))
	}
	if len(resp.Choices) == 0 {
		return completion.Fail(completion.MalformedResponse, statusCode, fmt.Sprintf("в ответе нет choices, body: %s", string(body)))
	}
	msg := resp.Choices[0].Message
	if msg == nil || msg.Content == nil {
		return completion.Fail(completion.MalformedResponse, statusCode, fmt.Sprintf("в ответе нет choices[0].message.content, body: %s", string(body)))
	}
	return completion.Success(*msg.Content)
}
