package completion

const (
	MinTemperature = 0.0
	MaxTemperature = 1.0

	ProviderGroq      = "groq"
	ProviderYandexGPT = "yandexgpt"
)

type ModelOption struct {
	Title string `json:"title"`
	ID    string `json:"id"`
}

var groqModels = []ModelOption{
	{Title: "LLaMA 3 (8B)", ID: "llama3-8b-8192"},
	{Title: "Mixtral (8x7B)", ID: "mixtral-8x7b-32768"},
}

var yandexModels = []ModelOption{
	{Title: "YandexGPT Lite", ID: "yandexgpt-lite"},
	{Title: "YandexGPT Pro", ID: "yandexgpt"},
}

// Models возвращает список допустимых моделей.
func Models() []ModelOption {
	list := make([]ModelOption, 0, len(groqModels)+len(yandexModels))
	list = append(list, groqModels...)
	return append(list, yandexModels...)
}

func GroqModels() []ModelOption {
	return append([]ModelOption(nil), groqModels...)
}

func YandexModels() []ModelOption {
	return append([]ModelOption(nil), yandexModels...)
}

// ProviderModels возвращает модели провайдера, первая из них используется по умолчанию
func ProviderModels(provider string) []ModelOption {
	if provider == ProviderYandexGPT {
		return YandexModels()
	}
	return GroqModels()
}

// IsProviderModel проверяет, что идентификатор модели есть у провайдера
func IsProviderModel(provider, id string) bool {
	for _, item := range ProviderModels(provider) {
		if item.ID == id {
			return true
		}
	}
	return false
}

func IsAllowedModel(id string) bool {
	for _, item := range Models() {
		if item.ID == id {
			return true
		}
	}
	return false
}

// ResolveModel принимает идентификатор модели или её название в списке.
func ResolveModel(value string) (string, bool) {
	for _, item := range Models() {
		if item.ID == value || item.Title == value {
			return item.ID, true
		}
	}
	return "", false
}
