package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"gradtrak_backend/internal/config"
	"gradtrak_backend/internal/credits"
	"gradtrak_backend/internal/model"
	"gradtrak_backend/pkg/logger"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// MailMessage is a rendered email ready for any provider.
type MailMessage struct {
	ToName  string
	ToEmail string
	Subject string
	Text    string
	HTML    string
}

// MailProvider sends rendered messages. Providers are selected by config,
// same pattern as StorageProvider.
type MailProvider interface {
	Send(ctx context.Context, msg *MailMessage) error
}

// SendGridProvider relays through the SendGrid v3 API.
type SendGridProvider struct {
	APIKey    string
	FromName  string
	FromEmail string
}

func (p *SendGridProvider) Send(ctx context.Context, msg *MailMessage) error {
	from := sgmail.NewEmail(p.FromName, p.FromEmail)
	to := sgmail.NewEmail(msg.ToName, msg.ToEmail)
	m := sgmail.NewSingleEmail(from, msg.Subject, to, msg.Text, msg.HTML)

	client := sendgrid.NewSendClient(p.APIKey)
	resp, err := client.SendWithContext(ctx, m)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// ConsoleProvider logs instead of sending; used in debug mode and tests.
type ConsoleProvider struct{}

func (p *ConsoleProvider) Send(ctx context.Context, msg *MailMessage) error {
	logger.Log.Info("mail (console provider)",
		zap.String("to", msg.ToEmail),
		zap.String("subject", msg.Subject),
		zap.String("text", msg.Text),
	)
	return nil
}

type MailService struct {
	Provider MailProvider
	School   string
}

func NewMailService(cfg *config.Config) *MailService {
	var provider MailProvider
	switch cfg.Mail.Provider {
	case "sendgrid":
		provider = &SendGridProvider{
			APIKey:    cfg.Mail.APIKey,
			FromName:  cfg.Mail.FromName,
			FromEmail: cfg.Mail.FromEmail,
		}
	default:
		provider = &ConsoleProvider{}
	}
	return &MailService{Provider: provider, School: cfg.School.Name}
}

// Reload swaps the provider after a config change, so rotating the
// SendGrid key does not need a restart.
func (s *MailService) Reload(cfg *config.Config) {
	fresh := NewMailService(cfg)
	s.Provider = fresh.Provider
	s.School = fresh.School
}

// SendProgressSummary emails a student's credit standing to a counselor or
// guardian address.
func (s *MailService) SendProgressSummary(ctx context.Context, student *model.Student, summary credits.ProgressSummary, risk credits.RiskAssessment, toName, toEmail string) error {
	msg := BuildProgressEmail(s.School, student, summary, risk)
	msg.ToName = toName
	msg.ToEmail = toEmail
	return s.Provider.Send(ctx, msg)
}

// BuildProgressEmail renders the progress summary email. Kept pure so the
// wording can be tested without a provider.
func BuildProgressEmail(school string, student *model.Student, summary credits.ProgressSummary, risk credits.RiskAssessment) *MailMessage {
	subject := fmt.Sprintf("[%s] Credit progress for %s", school, student.FullName())

	var text strings.Builder
	fmt.Fprintf(&text, "Credit progress summary for %s (grade %d, class of %d)\n\n",
		student.FullName(), student.GradeLevel, student.GraduationYear)
	fmt.Fprintf(&text, "Credits earned: %.1f of %.1f required (%d%%)\n",
		summary.TotalEarned, summary.TotalRequired, summary.Percentage)

	if risk.Applicable {
		fmt.Fprintf(&text, "Standing: %s", risk.Tier)
		if risk.CreditsBehind > 0 {
			fmt.Fprintf(&text, " (%.1f credits behind the %d%% expectation)", risk.CreditsBehind, risk.ExpectedPercentage)
		}
		text.WriteString("\n")
	}

	if len(summary.Deficiencies) > 0 {
		text.WriteString("\nOutstanding requirements:\n")
		for _, d := range summary.Deficiencies {
			fmt.Fprintf(&text, "  - %s: %.1f of %.1f (needs %.1f more)\n",
				d.CategoryName, d.Earned, d.Required, d.Needed)
		}
	} else {
		text.WriteString("\nAll category requirements are met.\n")
	}

	if summary.TotalDualCredits > 0 {
		fmt.Fprintf(&text, "\nDual credit: %.1f total (%.1f associate-eligible, %.1f transfer-eligible)\n",
			summary.TotalDualCredits, summary.AssociateCredits, summary.TransferCredits)
	}

	// student and category names are user-entered; escape them for the
	// HTML variant
	var body strings.Builder
	body.WriteString("<html><body>")
	for _, line := range strings.Split(strings.TrimRight(text.String(), "\n"), "\n") {
		if line == "" {
			body.WriteString("<br>")
			continue
		}
		fmt.Fprintf(&body, "<p>%s</p>", html.EscapeString(line))
	}
	body.WriteString("</body></html>")

	return &MailMessage{
		Subject: subject,
		Text:    text.String(),
		HTML:    body.String(),
	}
}
