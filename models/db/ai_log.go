package dbmodels

type AiLog struct {
	BaseModel
	SysPromt    string       `comment:"System промт"`
	UserPromt   string       `comment:"User промт"`
	Answer      string       `comment:"Ответ ИИ"`
	ReportID    string       `gorm:"type:varchar(36);index" comment:"Идентификатор отчёта карьерного плана"`
	ReqestType  AiReqestType `gorm:"type:varchar(255)" comment:"Тип запроса к ИИ"`
	AiName      string       `gorm:"type:varchar(255)" comment:"Название провайдера ИИ"`
	Model       string       `gorm:"type:varchar(255)" comment:"Модель"`
	FailureKind string       `gorm:"type:varchar(255)" comment:"Тип ошибки, пусто при успехе"`
	DurationMs  int64        `comment:"Время ответа, мс"`
}

type AiReqestType string

const (
	AiObjectionReplyType   AiReqestType = "ObjectionReply"
	AiProspectJourneyType  AiReqestType = "ProspectJourney"
	AiResumeReviewType     AiReqestType = "ResumeReview"
	AiRoleRecommendType    AiReqestType = "RoleRecommendation"
	AiRoleRoadmapType      AiReqestType = "RoleRoadmap"
	AiSalaryProjectionType AiReqestType = "SalaryProjection"
	AiMockInterviewType    AiReqestType = "MockInterview"
)
