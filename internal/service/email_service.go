package service

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// EmailService handles sending emails via Amazon SES
type EmailService struct {
	client     *sesv2.Client
	fromEmail  string
	fromName   string
	appBaseURL string
	enabled    bool
}

// NewEmailService creates a new email service. If fromEmail is empty
// the service is created disabled and all sends become no-ops.
func NewEmailService(awsRegion, fromEmail, fromName, appBaseURL string) (*EmailService, error) {
	if fromEmail == "" {
		log.Println("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false}, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := sesv2.NewFromConfig(cfg)
	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &EmailService{
		client:     client,
		fromEmail:  fromEmail,
		fromName:   fromName,
		appBaseURL: appBaseURL,
		enabled:    true,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendWelcomeEmail sends a welcome email to new users
func (s *EmailService) SendWelcomeEmail(ctx context.Context, toEmail, toName string) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): welcome to %s", toEmail)
		return nil
	}

	subject := "Welcome to Yamsoo!"
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<h1 style="color: #2c7a5a;">Welcome to Yamsoo!</h1>
		<p>Hi %s,</p>
		<p>Your Yamsoo account is ready. Start building your family tree:</p>
		<ul>
			<li>Complete your profile so relatives can recognise you</li>
			<li>Search for family members and send relationship requests</li>
			<li>Review suggested relatives as your tree grows</li>
		</ul>
		<p><a href="%s/login" style="display: inline-block; padding: 12px 30px; background-color: #2c7a5a; color: white; text-decoration: none; border-radius: 5px;">Get Started</a></p>
		<p style="font-size: 12px; color: #666;">This is an automated email from Yamsoo. Please do not reply.</p>
	</div>
</body>
</html>
`, toName, s.appBaseURL)

	textBody := fmt.Sprintf(`Hi %s,

Your Yamsoo account is ready. Start building your family tree:
- Complete your profile so relatives can recognise you
- Search for family members and send relationship requests
- Review suggested relatives as your tree grows

Get started: %s/login

---
This is an automated email from Yamsoo. Please do not reply.
`, toName, s.appBaseURL)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

// SendRelationshipRequestEmail notifies a user that a relative wants to
// connect with them.
func (s *EmailService) SendRelationshipRequestEmail(ctx context.Context, toEmail, toName, requesterName, kindName string) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): relationship request to %s", toEmail)
		return nil
	}

	subject := fmt.Sprintf("%s wants to connect with you on Yamsoo", requesterName)
	requestsLink := fmt.Sprintf("%s/requests", s.appBaseURL)
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<h1 style="color: #2c7a5a;">New Relationship Request</h1>
		<p>Hi %s,</p>
		<p><strong>%s</strong> says they are your <strong>%s</strong> and wants to connect on Yamsoo.</p>
		<p><a href="%s" style="display: inline-block; padding: 12px 30px; background-color: #2c7a5a; color: white; text-decoration: none; border-radius: 5px;">Review Request</a></p>
		<p style="font-size: 12px; color: #666;">This is an automated email from Yamsoo. Please do not reply.</p>
	</div>
</body>
</html>
`, toName, requesterName, kindName, requestsLink)

	textBody := fmt.Sprintf(`Hi %s,

%s says they are your %s and wants to connect on Yamsoo.

Review the request: %s

---
This is an automated email from Yamsoo. Please do not reply.
`, toName, requesterName, kindName, requestsLink)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

// sendEmail sends an email using Amazon SES
func (s *EmailService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	log.Printf("Email sent successfully: to=%s, subject=%s", toEmail, subject)
	return nil
}
