package smtp

import (
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestComposeMessage(t *testing.T) {
	t.Run(`message with pdf attachment`, func(t *testing.T) {
		reader, err := composeMessage("noreply@example.com", "jane@example.com", "Career Plan", "Your career plan is attached.",
			[]Attachment{{FileName: "career_plan.pdf", Body: []byte("%PDF-1.3 test")}})
		require.Nil(t, err)
		data, err := io.ReadAll(reader)
		require.Nil(t, err)
		msg := string(data)
		require.Contains(t, msg, "From: noreply@example.com")
		require.Contains(t, msg, "To: jane@example.com")
		require.Contains(t, msg, "Subject: Career Plan")
		require.Contains(t, msg, "Content-Disposition: attachment")
		require.Contains(t, msg, "career_plan.pdf")
		require.Contains(t, msg, "Your career plan is attached.")
	})

	t.Run(`message without attachments`, func(t *testing.T) {
		reader, err := composeMessage("noreply@example.com", "jane@example.com", "Hi", "text", nil)
		require.Nil(t, err)
		data, err := io.ReadAll(reader)
		require.Nil(t, err)
		require.False(t, strings.Contains(string(data), "Content-Disposition: attachment"))
	})
}

func TestSendEMail(t *testing.T) {
	t.Run(`not configured`, func(t *testing.T) {
		require.Nil(t, Connect("", "", "", "", "", true))
		err := Instance.SendEMail("jane@example.com", "Career Plan", "text")
		require.True(t, errors.Is(err, ErrNotConfigured))
	})
}
