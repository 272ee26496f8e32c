package objectionhandler

import (
	"context"
	"fmt"
	"strings"

	llmhandler "career-tools-backend/lib/llm"
	"career-tools-backend/lib/llm/completion"
	objectionmodels "career-tools-backend/models/api/objection"
	dbmodels "career-tools-backend/models/db"
)

const (
	replySysPromtTpl = "You are a network marketing mentor. " +
		"Help the user craft a confident, persuasive reply to a prospect's objection or concern. " +
		"Use a %s tone."

	journeySysPromt = "You are a top-tier network marketing strategist. Based on the user's description of their situation with a prospect, generate a custom prospecting roadmap. " +
		"The roadmap should flow logically from the current stage all the way to signup, using psychological insights, communication strategy, and confidence-building steps. " +
		"Avoid hardcoded stage names — adapt fluidly to the user's input."
)

type Provider interface {
	// GenerateReply возвращает err только при некорректном запросе,
	// ошибки ИИ приходят через failure.
	GenerateReply(ctx context.Context, req objectionmodels.ReplyRequest) (resp objectionmodels.GenerationResponse, failure *completion.Failure, err error)
	GenerateJourney(ctx context.Context, req objectionmodels.JourneyRequest) (resp objectionmodels.GenerationResponse, failure *completion.Failure, err error)
}

var Instance Provider

func NewHandler(llm llmhandler.Provider) {
	Instance = impl{
		llm: llm,
	}
}

type impl struct {
	llm llmhandler.Provider
}

func ReplySysPromt(tone objectionmodels.Tone) string {
	if tone == "" {
		tone = objectionmodels.ToneConfident
	}
	return fmt.Sprintf(replySysPromtTpl, strings.ToLower(string(tone)))
}

func (i impl) GenerateReply(ctx context.Context, req objectionmodels.ReplyRequest) (resp objectionmodels.GenerationResponse, failure *completion.Failure, err error) {
	if err = req.Validate(); err != nil {
		return resp, nil, err
	}
	llmReq, err := i.llm.BuildRequest(req.Model, req.Temperature, ReplySysPromt(req.Tone), req.Message)
	if err != nil {
		return resp, nil, err
	}
	return i.run(ctx, llmReq, dbmodels.AiObjectionReplyType)
}

func (i impl) GenerateJourney(ctx context.Context, req objectionmodels.JourneyRequest) (resp objectionmodels.GenerationResponse, failure *completion.Failure, err error) {
	if err = req.Validate(); err != nil {
		return resp, nil, err
	}
	llmReq, err := i.llm.BuildRequest(req.Model, req.Temperature, journeySysPromt, req.Context)
	if err != nil {
		return resp, nil, err
	}
	return i.run(ctx, llmReq, dbmodels.AiProspectJourneyType)
}

func (i impl) run(ctx context.Context, llmReq completion.Request, reqType dbmodels.AiReqestType) (resp objectionmodels.GenerationResponse, failure *completion.Failure, err error) {
	result := i.llm.Complete(ctx, llmhandler.Call{
		RequestType: reqType,
		Request:     llmReq,
	})
	if !result.IsSuccess() {
		return resp, result.Failure, nil
	}
	return objectionmodels.GenerationResponse{
		Text:  result.Text,
		Model: llmReq.Model,
	}, nil, nil
}
