package yagptclient

import (
	"context"
	"errors"
	"fmt"

	"career-tools-backend/lib/llm/completion"

	yandexgptclient "github.com/sheeiavellie/go-yandexgpt"
	log "github.com/sirupsen/logrus"
)

const (
	providerName    = completion.ProviderYandexGPT
	modelURIPattern = "gpt://%s/%s/latest"
)

type impl struct {
	client    *yandexgptclient.YandexGPTClient
	catalogID string
}

func NewClient(token, catalog string) completion.Provider {
	return impl{
		client:    yandexgptclient.NewYandexGPTClientWithIAMToken(token),
		catalogID: catalog,
	}
}

func (i impl) Name() string {
	return providerName
}

func (i impl) Complete(ctx context.Context, req completion.Request) completion.Result {
	request := yandexgptclient.YandexGPTRequest{
		ModelURI: fmt.Sprintf(modelURIPattern, i.catalogID, req.Model),
		CompletionOptions: yandexgptclient.YandexGPTCompletionOptions{
			Stream:      false,
			Temperature: float32(req.Temperature),
			MaxTokens:   2000,
		},
		Messages:          toYandexMessages(req.Messages),
	}

	response, err := i.client.CreateRequest(ctx, request)
	if err != nil {
		log.
			WithField("model", req.Model).
			WithError(err).
			Error("Ошибка при отправке запроса на генерацию в API YandexGPT")
		// библиотека не различает сетевые ошибки и ошибки API
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return completion.Fail(completion.NetworkError, 0, err.Error())
		}
		return completion.Fail(completion.UnexpectedStatus, 0, err.Error())
	}
	if len(response.Result.Alternatives) == 0 {
		return completion.Fail(completion.MalformedResponse, 0, "в ответе YandexGPT нет alternatives")
	}
	return completion.Success(response.Result.Alternatives[0].Message.Text)
}

func toYandexMessages(messages []completion.Message) []yandexgptclient.YandexGPTMessage {
	result := make([]yandexgptclient.YandexGPTMessage, 0, len(messages))
	for _, msg := range messages {
		role := yandexgptclient.YandexGPTMessageRoleUser
		if msg.Role == completion.RoleSystem {
			role = yandexgptclient.YandexGPTMessageRoleSystem
		}
		result = append(result, yandexgptclient.YandexGPTMessage{
			Role: role,
			Text: msg.Content,
		})
	}
	return result
}
