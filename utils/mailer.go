package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type Mailer struct {
	client *ses.Client
	from   string
}

// NewMailer builds the SES sender used for password-reset codes. Returns
// an error instead of dying so the server can come up without AWS
// credentials in local dev.
func NewMailer() (*Mailer, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &Mailer{
		client: ses.NewFromConfig(cfg),
		from:   os.Getenv("SES_EMAIL"),
	}, nil
}

func (m *Mailer) send(to, subject, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(m.from),
	}

	_, err := m.client.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

func (m *Mailer) SendResetEmail(to, code string) error {
	subject := "Your password reset code"
	body := fmt.Sprintf("Your password reset code is: %s\n\nIt expires in 15 minutes.", code)
	return m.send(to, subject, body)
}
