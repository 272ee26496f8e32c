package careermodels

import (
	"net/mail"
	"strings"
	"time"

	"career-tools-backend/lib/llm/completion"

	"github.com/pkg/errors"
)

type Education string

const (
	EducationHighSchool Education = "High School"
	EducationBachelor   Education = "Bachelor's Degree"
	EducationMaster     Education = "Master's Degree"
	EducationPhD        Education = "PhD"
	EducationOther      Education = "Other"
)

var Educations = []Education{EducationHighSchool, EducationBachelor, EducationMaster, EducationPhD, EducationOther}

func (e Education) IsValid() bool {
	for _, item := range Educations {
		if item == e {
			return true
		}
	}
	return false
}

const (
	MinExperienceYears = 0
	MaxExperienceYears = 30
	MinLearningLevel   = 1
	MaxLearningLevel   = 10

	DefaultExperienceYears = 2
	DefaultLearningLevel   = 7
)

type PlanRequest struct {
	Skills          string    `json:"skills" form:"skills"`                     // навыки через запятую
	Interest        string    `json:"interest" form:"interest"`                 // основной интерес или отрасль
	Education       Education `json:"education" form:"education"`               // High School, Bachelor's Degree, Master's Degree, PhD, Other
	ExperienceYears *int      `json:"experience_years" form:"experience_years"` // 0-30, по умолчанию 2
	LearningLevel   *int      `json:"learning_level" form:"learning_level"`     // 1-10, по умолчанию 7
	ResumeText      string    `json:"resume_text" form:"-"`                     // текст резюме, для multipart передаётся файлом resume
	Model           string    `json:"model" form:"model"`                       // модель, по умолчанию из настроек
	Temperature     *float64  `json:"temperature" form:"temperature"`           // [0.0, 1.0], по умолчанию из настроек
}

func (r PlanRequest) Validate() error {
	if !r.Education.IsValid() {
		return errors.Errorf("неизвестный уровень образования: %s", r.Education)
	}
	if r.ExperienceYears != nil && (*r.ExperienceYears < MinExperienceYears || *r.ExperienceYears > MaxExperienceYears) {
		return errors.Errorf("опыт работы должен быть от %d до %d лет", MinExperienceYears, MaxExperienceYears)
	}
	if r.LearningLevel != nil && (*r.LearningLevel < MinLearningLevel || *r.LearningLevel > MaxLearningLevel) {
		return errors.Errorf("готовность к обучению должна быть от %d до %d", MinLearningLevel, MaxLearningLevel)
	}
	if r.Temperature != nil {
		return completion.ValidateTemperature(*r.Temperature)
	}
	return nil
}

func (r PlanRequest) Profile() UserProfile {
	profile := UserProfile{
		Skills:          ParseSkills(r.Skills),
		Interest:        r.Interest,
		Education:       r.Education,
		ExperienceYears: DefaultExperienceYears,
		LearningLevel:   DefaultLearningLevel,
		ResumeText:      r.ResumeText,
	}
	if r.ExperienceYears != nil {
		profile.ExperienceYears = *r.ExperienceYears
	}
	if r.LearningLevel != nil {
		profile.LearningLevel = *r.LearningLevel
	}
	return profile
}

type UserProfile struct {
	Skills          []string
	Interest        string
	Education       Education
	ExperienceYears int
	LearningLevel   int
	ResumeText      string
}

// ParseSkills разбирает список через запятую, пустые значения отбрасываются
func ParseSkills(skills string) []string {
	result := []string{}
	for _, item := range strings.Split(skills, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

type Section struct {
	Title string `json:"title"` // заголовок раздела
	Text  string `json:"text"`  // ответ ИИ
}

func (s Section) Document() string {
	return "### " + s.Title + "\n" + s.Text
}

type Report struct {
	ID        string              `json:"id"`
	CreatedAt time.Time           `json:"created_at"`
	Roles     []string            `json:"roles"`
	NoRoles   bool                `json:"no_roles"`
	Sections  []Section           `json:"sections"`
	Failure   *completion.Failure `json:"failure,omitempty"`
}

// Document склеивает разделы через пустую строку
func (r Report) Document() string {
	parts := make([]string, 0, len(r.Sections))
	for _, section := range r.Sections {
		parts = append(parts, section.Document())
	}
	return strings.Join(parts, "\n\n")
}

type PlanResponse struct {
	ReportID  string              `json:"report_id"`
	Roles     []string            `json:"roles"`
	NoRoles   bool                `json:"no_roles"`   // из ответа ИИ не удалось выделить роли
	Sections  []Section           `json:"sections"`
	Failure   *completion.Failure `json:"failure,omitempty"`
	ExportURL string              `json:"export_url,omitempty"` // ссылка на PDF, только при успешном выполнении
}

type ResumeReviewRequest struct {
	Model       string   `json:"model" form:"model"`
	Temperature *float64 `json:"temperature" form:"temperature"`
}

func (r ResumeReviewRequest) Validate() error {
	if r.Temperature != nil {
		return completion.ValidateTemperature(*r.Temperature)
	}
	return nil
}

type ResumeReviewResponse struct {
	Review string `json:"review"`
}

type EmailRequest struct {
	Email string `json:"email"` // адрес получателя отчёта
}

func (r EmailRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("адрес почты не должен быть пустым")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("некорректный адрес почты")
	}
	return nil
}

type ExportFormat string

const (
	ExportPDF  ExportFormat = "pdf"
	ExportXLSX ExportFormat = "xlsx"
)

func (f ExportFormat) IsValid() bool {
	return f == ExportPDF || f == ExportXLSX
}

type ExportFile struct {
	FileName    string
	ContentType string
	Body        []byte
}
