package wsmodels

const (
	CodeSection = "section" // готов очередной раздел отчёта
	CodeFailure = "failure" // ошибка ИИ, формирование остановлено
	CodeDone    = "done"    // отчёт сформирован
	CodeError   = "error"   // некорректный запрос или внутренняя ошибка
)

type ServerMessage struct {
	ToClientID string      `json:"-"`
	Time       string      `json:"time"`           // время события
	Code       string      `json:"code"`           // код события
	Msg        string      `json:"msg"`            // текст события
	Data       interface{} `json:"data,omitempty"` // раздел отчёта или итоговый результат
}
