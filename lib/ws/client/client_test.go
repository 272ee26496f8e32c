package wsclient

import (
	"context"
	"io"
	"testing"
	"time"

	careerhandler "career-tools-backend/lib/career"
	"career-tools-backend/lib/llm/completion"
	connectionhub "career-tools-backend/lib/ws/hub/connection-hub"
	careermodels "career-tools-backend/models/api/career"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	messages chan []byte
}

func (f fakeReader) ReadMessage() (int, []byte, error) {
	data, ok := <-f.messages
	if !ok {
		return 0, nil, io.EOF
	}
	return websocket.TextMessage, data, nil
}

// blockingCareer ждёт отмены контекста внутри BuildPlan
type blockingCareer struct {
	requests chan careermodels.PlanRequest
	stopped  chan error
}

func (f *blockingCareer) BuildPlan(ctx context.Context, req careermodels.PlanRequest, _ careerhandler.Observer) (careermodels.PlanResponse, error) {
	f.requests <- req
	<-ctx.Done()
	f.stopped <- ctx.Err()
	return careermodels.PlanResponse{}, nil
}

func (f *blockingCareer) ReviewResume(context.Context, string, careermodels.ResumeReviewRequest) (careermodels.ResumeReviewResponse, *completion.Failure, error) {
	return careermodels.ResumeReviewResponse{}, nil, nil
}

func (f *blockingCareer) ExportReport(context.Context, string, careermodels.ExportFormat) (careermodels.ExportFile, error) {
	return careermodels.ExportFile{}, nil
}

func (f *blockingCareer) EmailReport(context.Context, string, careermodels.EmailRequest) error {
	return nil
}

func TestDispatch(t *testing.T) {
	connectionhub.Init()

	t.Run(`closed connection cancels the running plan`, func(t *testing.T) {
		career := &blockingCareer{
			requests: make(chan careermodels.PlanRequest, 1),
			stopped:  make(chan error, 1),
		}
		careerhandler.Instance = career
		reader := fakeReader{messages: make(chan []byte)}
		client := &WsClient{conn: reader, clientID: "client"}

		finished := make(chan struct{})
		go func() {
			client.Dispatch(context.Background())
			close(finished)
		}()

		reader.messages <- []byte(`not json`)
		reader.messages <- []byte(`{"skills":"sql","education":"PhD"}`)
		select {
		case req := <-career.requests:
			require.Equal(t, "sql", req.Skills)
		case <-time.After(time.Second):
			require.Fail(t, "план не запущен")
		}

		close(reader.messages)
		select {
		case err := <-career.stopped:
			require.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			require.Fail(t, "план не отменён после закрытия соединения")
		}
		select {
		case <-finished:
		case <-time.After(time.Second):
			require.Fail(t, "Dispatch не завершился")
		}
	})

	t.Run(`nil connection`, func(t *testing.T) {
		client := NewClient("client", nil)
		client.Dispatch(context.Background())
	})
}
