package careerhandler

import (
	"fmt"
	"strings"

	careermodels "career-tools-backend/models/api/career"
)

const (
	resumeReviewTpl = "Review this resume and give suggestions:\n\n%s\n\nBe brief, mention strengths and improvement points."

	rolesTpl = `User profile:
- Skills: %s
- Interest: %s
- Education: %s
- Experience: %d years
- Learning Willingness: %d/10

Suggest 2 best career roles for them with short reasons. Format:
1. Role - Reason
2. Role - Reason`

	roadmapTpl = `Provide a 3-phase learning roadmap to become a %[1]s. Include 3–5 items per phase and link free online courses (YouTube, Coursera, etc.).
Format:
### %[1]s Roadmap
**Beginner**:
- Topic - Course/Link
...`

	salaryTpl = `Estimate salary growth in India for a %s with:
- %d years experience
- Education: %s
- Learning willingness: %d/10

Provide:
- Starting salary (₹)
- Annual growth rate (%%)
- 10-year salary projection

Format:
**Starting Salary**: ₹X
**Growth Rate**: Y%%
**10-Year Projection**:
Year 1: ₹X1
Year 2: ₹X2
...`

	interviewTpl = `Give 5 mock interview questions (with answers) for a %s.
Include both technical and behavioral questions.`
)

func ResumeReviewPrompt(resumeText string) string {
	return fmt.Sprintf(resumeReviewTpl, resumeText)
}

func RolesPrompt(profile careermodels.UserProfile) string {
	return fmt.Sprintf(rolesTpl,
		strings.Join(profile.Skills, ", "),
		profile.Interest,
		profile.Education,
		profile.ExperienceYears,
		profile.LearningLevel,
	)
}

func RoadmapPrompt(role string, _ careermodels.UserProfile) string {
	return fmt.Sprintf(roadmapTpl, role)
}

func SalaryPrompt(role string, profile careermodels.UserProfile) string {
	return fmt.Sprintf(salaryTpl, role, profile.ExperienceYears, profile.Education, profile.LearningLevel)
}

func InterviewPrompt(role string, _ careermodels.UserProfile) string {
	return fmt.Sprintf(interviewTpl, role)
}
