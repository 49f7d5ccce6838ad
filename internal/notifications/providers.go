// internal/notifications/providers.go

package notifications

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// EmailProvider defines the email provider interface
type EmailProvider interface {
	SendEmail(ctx context.Context, email *Email) error
}

// SMSProvider defines the SMS provider interface
type SMSProvider interface {
	SendSMS(ctx context.Context, message *SMSMessage) error
}

// SMTPEmailProvider implements EmailProvider using SMTP
type SMTPEmailProvider struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPEmailProvider creates a new SMTP email provider
func NewSMTPEmailProvider(host, port, username, password, from string) EmailProvider {
	return &SMTPEmailProvider{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// SendEmail sends a plain text email using SMTP
func (p *SMTPEmailProvider) SendEmail(ctx context.Context, email *Email) error {
	message := fmt.Sprintf("From: %s\r\n", p.from)
	message += fmt.Sprintf("To: %s\r\n", email.To)
	message += fmt.Sprintf("Subject: %s\r\n", email.Subject)
	message += "\r\n"
	message += email.Body

	auth := smtp.PlainAuth("", p.username, p.password, p.host)
	addr := fmt.Sprintf("%s:%s", p.host, p.port)

	if err := smtp.SendMail(addr, auth, p.from, []string{email.To}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendGridEmailProvider implements EmailProvider using SendGrid
type SendGridEmailProvider struct {
	apiKey string
	from   string
}

// NewSendGridEmailProvider creates a new SendGrid email provider
func NewSendGridEmailProvider(apiKey, from string) EmailProvider {
	return &SendGridEmailProvider{
		apiKey: apiKey,
		from:   from,
	}
}

// SendEmail sends an email using SendGrid
func (p *SendGridEmailProvider) SendEmail(ctx context.Context, email *Email) error {
	from := mail.NewEmail("FranMatch", p.from)
	to := mail.NewEmail("", email.To)

	message := mail.NewSingleEmail(from, email.Subject, to, email.Body, "")
	client := sendgrid.NewSendClient(p.apiKey)

	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email via SendGrid: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("SendGrid returned error status: %d", response.StatusCode)
	}
	return nil
}

// TwilioSMSProvider implements SMSProvider using Twilio
type TwilioSMSProvider struct {
	client      *twilio.RestClient
	phoneNumber string
}

// NewTwilioSMSProvider creates a new Twilio SMS provider
func NewTwilioSMSProvider(accountSID, authToken, phoneNumber string) SMSProvider {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioSMSProvider{
		client:      client,
		phoneNumber: phoneNumber,
	}
}

// SendSMS sends an SMS using Twilio
func (p *TwilioSMSProvider) SendSMS(ctx context.Context, message *SMSMessage) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(message.To)
	params.SetFrom(p.phoneNumber)
	params.SetBody(message.Message)

	if _, err := p.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS via Twilio: %w", err)
	}
	return nil
}

// MockEmailProvider implements EmailProvider for testing
type MockEmailProvider struct {
	SentEmails []Email
}

func NewMockEmailProvider() *MockEmailProvider {
	return &MockEmailProvider{SentEmails: make([]Email, 0)}
}

func (p *MockEmailProvider) SendEmail(ctx context.Context, email *Email) error {
	p.SentEmails = append(p.SentEmails, *email)
	return nil
}

// MockSMSProvider implements SMSProvider for testing
type MockSMSProvider struct {
	SentMessages []SMSMessage
}

func NewMockSMSProvider() *MockSMSProvider {
	return &MockSMSProvider{SentMessages: make([]SMSMessage, 0)}
}

func (p *MockSMSProvider) SendSMS(ctx context.Context, message *SMSMessage) error {
	p.SentMessages = append(p.SentMessages, *message)
	return nil
}
