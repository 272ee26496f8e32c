package careerhandler

import (
	"context"
	"strings"
	"sync"
	"time"

	llmhandler "career-tools-backend/lib/llm"
	"career-tools-backend/lib/llm/completion"
)

const (
	rolesMarker     = "Suggest 2 best career roles"
	roadmapMarker   = "Provide a 3-phase learning roadmap"
	salaryMarker    = "Estimate salary growth"
	interviewMarker = "Give 5 mock interview questions"
	resumeMarker    = "Review this resume"
)

// fakeClient отвечает по функции answer и запоминает все запросы
type fakeClient struct {
	mu       sync.Mutex
	requests []completion.Request
	answer   func(prompt string) completion.Result
}

func (f *fakeClient) Name() string {
	return "groq"
}

func (f *fakeClient) Complete(_ context.Context, req completion.Request) completion.Result {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return f.answer(req.UserPrompt())
}

func (f *fakeClient) prompts(marker string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := []string{}
	for _, req := range f.requests {
		if strings.Contains(req.UserPrompt(), marker) {
			result = append(result, req.UserPrompt())
		}
	}
	return result
}

func (f *fakeClient) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func newFakeLLM(answer func(prompt string) completion.Result) (*fakeClient, llmhandler.Provider) {
	client := &fakeClient{answer: answer}
	return client, llmhandler.New(client, nil, "llama3-8b-8192", 0.7)
}

// answerRoles отвечает rolesOutput на запрос ролей и "<marker> ok" на остальные
func answerRoles(rolesOutput string) func(prompt string) completion.Result {
	return func(prompt string) completion.Result {
		if strings.Contains(prompt, rolesMarker) {
			return completion.Success(rolesOutput)
		}
		return completion.Success("ok")
	}
}

func delayed(d time.Duration, result completion.Result) completion.Result {
	time.Sleep(d)
	return result
}
