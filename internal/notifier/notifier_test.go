package notifier

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/charliemac24/myosystems/internal/model"
)

type stubSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (s *stubSender) SendWithContext(_ context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.sent = append(s.sent, params)
	return &resend.SendEmailResponse{Id: "email_123"}, nil
}

func TestNotify_SendsFormattedEmail(t *testing.T) {
	logger := zap.NewNop()
	sender := &stubSender{}
	n := New(logger, sender, "MYO Systems <onboarding@resend.dev>", "leads@example.com")

	sub := &model.AttendanceEnquiry{
		FullName: "Jane Cruz", Role: "Admin", SchoolName: "St. Mark Academy",
		CityProvince: "Cebu", Email: "jane@example.com", Phone: "09171234567",
		EstimatedStudents: "250", HighSchool: "no", Message: "We'd like a demo.",
	}
	err := n.Notify(context.Background(), sub)
	assert.NoError(t, err)
	assert.Len(t, sender.sent, 1)

	req := sender.sent[0]
	assert.Equal(t, "MYO Systems <onboarding@resend.dev>", req.From)
	assert.Equal(t, []string{"leads@example.com"}, req.To)
	assert.Equal(t, "New Attendance Enquiry from St. Mark Academy", req.Subject)
	assert.Contains(t, req.Html, "Admin")
	assert.Contains(t, req.Html, "250")
	assert.Contains(t, req.Html, "St. Mark Academy")
}

func TestNotify_EscapesHTMLSpecialCharacters(t *testing.T) {
	logger := zap.NewNop()
	sender := &stubSender{}
	n := New(logger, sender, "from@example.com", "to@example.com")

	sub := &model.ContactSubmission{
		Name:    `<script>alert("x")</script>`,
		Email:   "evil@example.com",
		Message: `a & b < c > d "quoted" 'single'`,
	}
	err := n.Notify(context.Background(), sub)
	assert.NoError(t, err)
	assert.Len(t, sender.sent, 1)

	body := sender.sent[0].Html
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "a &amp; b &lt; c &gt; d &#34;quoted&#34; &#39;single&#39;")
}

func TestNotify_SkipsWhenUnconfigured(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	n := New(zap.New(core), nil, "from@example.com", "to@example.com")

	err := n.Notify(context.Background(), &model.ContactSubmission{
		Name: "A", Email: "a@example.com", Message: "hi",
	})
	assert.NoError(t, err)

	skipped := logs.FilterMessageSnippet("skipping notification").All()
	assert.Len(t, skipped, 1)
}

func TestNotify_ReturnsProviderError(t *testing.T) {
	logger := zap.NewNop()
	sender := &stubSender{err: errors.New("provider unavailable")}
	n := New(logger, sender, "from@example.com", "to@example.com")

	err := n.Notify(context.Background(), &model.ContactSubmission{
		Name: "A", Email: "a@example.com", Message: "hi",
	})
	assert.Error(t, err)
}

func TestRenderHTML_OptionalFieldsFallBack(t *testing.T) {
	body := renderHTML(&model.ContactSubmission{
		Name: "A", Email: "a@example.com", Message: "hi",
	})
	assert.Equal(t, 3, strings.Count(body, "Not specified"),
		"inquiry type, tier and source page all unset")
}
