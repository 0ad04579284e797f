// Package notifier delivers submission summaries through the Resend email API.
package notifier

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/charliemac24/myosystems/internal/model"
)

// Sender is the slice of the Resend client the notifier depends on.
type Sender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Notifier formats and sends one notification email per accepted submission.
// Delivery is best-effort: the caller logs failures and moves on.
type Notifier struct {
	log    *zap.Logger
	sender Sender
	from   string
	to     string
}

// New creates a Notifier. A nil sender disables delivery; Notify becomes a no-op.
func New(log *zap.Logger, sender Sender, from, to string) *Notifier {
	return &Notifier{log: log, sender: sender, from: from, to: to}
}

// Notify renders sub as an HTML table and sends it. Every interpolated value
// is HTML-escaped before it reaches the message body.
func (n *Notifier) Notify(ctx context.Context, sub model.Submission) error {
	if n.sender == nil {
		n.log.Debug("email delivery not configured, skipping notification",
			zap.String("kind", sub.Kind()))
		return nil
	}

	sent, err := n.sender.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		Subject: sub.Subject(),
		Html:    renderHTML(sub),
	})
	if err != nil {
		return err
	}

	n.log.Info("notification email sent",
		zap.String("kind", sub.Kind()),
		zap.String("id", sent.Id))
	return nil
}

func renderHTML(sub model.Submission) string {
	var b strings.Builder
	b.WriteString("<h2>" + html.EscapeString(sub.Subject()) + "</h2>")
	b.WriteString(`<table style="border-collapse:collapse;width:100%;max-width:600px;">`)
	for _, f := range sub.Fields() {
		fmt.Fprintf(&b,
			`<tr><td style="padding:8px;border:1px solid #ddd;font-weight:bold;">%s</td>`+
				`<td style="padding:8px;border:1px solid #ddd;">%s</td></tr>`,
			html.EscapeString(f.Label), html.EscapeString(f.Value))
	}
	b.WriteString("</table>")
	return b.String()
}
