package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/config"
	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/models"
	"github.com/jcotes2k/digital-growth-marketing-sub002/pkg/logging"

	brevo "github.com/getbrevo/brevo-go/lib"
)

// EmailService sends transactional email through Brevo
type EmailService struct {
	client    *brevo.APIClient
	fromEmail string
	fromName  string
}

// NewEmailService creates a Brevo email service. Sending is a no-op
// when no API key is configured.
func NewEmailService() *EmailService {
	cfg := brevo.NewConfiguration()
	cfg.AddDefaultHeader("api-key", config.AppConfig.BrevoAPIKey)

	return &EmailService{
		client:    brevo.NewAPIClient(cfg),
		fromEmail: config.AppConfig.BrevoFromEmail,
		fromName:  config.AppConfig.BrevoFromName,
	}
}

// Enabled reports whether Brevo is configured
func (s *EmailService) Enabled() bool {
	return config.AppConfig.BrevoAPIKey != "" && s.fromEmail != ""
}

// NotifyCommission emails an affiliate that a commission was earned.
// Called from a goroutine, failures are logged and never bubble up to
// the webhook response.
func (s *EmailService) NotifyCommission(affiliate *models.Affiliate, referral *models.Referral) {
	if !s.Enabled() || affiliate.Email == "" {
		return
	}

	subject := fmt.Sprintf("You earned a commission of %.2f", referral.CommissionAmount)
	htmlContent := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
			<h2>New commission earned</h2>
			<p>Hi %s,</p>
			<p>A customer you referred just paid for the <strong>%s</strong> plan.</p>
			<p>Your commission: <strong>%.2f</strong></p>
			<p>It has been added to your pending payout balance.</p>
		</div>
	`, affiliate.Name, referral.ReferredPlan, referral.CommissionAmount)
	textContent := fmt.Sprintf("Hi %s, a customer you referred paid for the %s plan. Your commission of %.2f was added to your pending payout balance.",
		affiliate.Name, referral.ReferredPlan, referral.CommissionAmount)

	s.sendWithRetry(affiliate.Email, affiliate.Name, subject, htmlContent, textContent)
}

// sendWithRetry sends an email with a short retry schedule: 1s, 5s, 30s
func (s *EmailService) sendWithRetry(toEmail, toName, subject, htmlContent, textContent string) {
	retryDelays := []time.Duration{time.Second, 5 * time.Second, 30 * time.Second}

	for attempt := 0; attempt < len(retryDelays); attempt++ {
		err := s.send(toEmail, toName, subject, htmlContent, textContent)
		if err == nil {
			logging.Infof("Email sent - to: %s, subject: %s, attempt: %d", toEmail, subject, attempt+1)
			return
		}

		logging.Errorf("Email send failed - to: %s, attempt: %d, error: %v", toEmail, attempt+1, err)
		if attempt < len(retryDelays)-1 {
			time.Sleep(retryDelays[attempt])
		}
	}

	logging.Errorf("Email giving up after %d attempts - to: %s", len(retryDelays), toEmail)
}

func (s *EmailService) send(toEmail, toName, subject, htmlContent, textContent string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	email := brevo.SendSmtpEmail{
		Sender: &brevo.SendSmtpEmailSender{
			Name:  s.fromName,
			Email: s.fromEmail,
		},
		To: []brevo.SendSmtpEmailTo{
			{Email: toEmail, Name: toName},
		},
		Subject:     subject,
		HtmlContent: htmlContent,
		TextContent: textContent,
	}

	_, _, err := s.client.TransactionalEmailsApi.SendTransacEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("brevo send failed: %w", err)
	}
	return nil
}
