package dbmodels

import "github.com/lib/pq"

// CareerRun - метаданные запуска карьерного плана, без данных профиля
type CareerRun struct {
	BaseModel
	Roles       pq.StringArray  `gorm:"type:text[]" comment:"Рекомендованные роли"`
	NoRoles     bool            `comment:"Роли не выделены из ответа ИИ"`
	Result      CareerRunResult `gorm:"type:varchar(255)" comment:"Результат"`
	FailureKind string          `gorm:"type:varchar(255)" comment:"Тип ошибки ИИ"`
	Sections    int             `comment:"Количество разделов отчёта"`
}

type CareerRunResult string

const (
	CareerRunCompleted CareerRunResult = "completed"
	CareerRunFailed    CareerRunResult = "failed"
)
