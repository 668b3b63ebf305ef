package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/sendgrid/rest"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

type fakeSendGrid struct {
	message *sgmail.SGMailV3
	status  int
	err     error
}

func (f *fakeSendGrid) SendWithContext(_ context.Context, email *sgmail.SGMailV3) (*rest.Response, error) {
	f.message = email
	if f.err != nil {
		return nil, f.err
	}
	return &rest.Response{StatusCode: f.status}, nil
}

func TestNewMailer_provider_selection(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()

	m, err := NewMailer(ctx, MailerConfig{Provider: "noop"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)

	m, err = NewMailer(ctx, MailerConfig{Provider: "carrier-pigeon"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)

	m, err = NewMailer(ctx, MailerConfig{
		Provider: "ses",
		SES:      SESConfig{Region: "us-east-1", AccessKeyID: "AKID", SecretAccessKey: "secret"},
	}, logger)
	require.NoError(t, err)
	assert.IsType(t, &sesMailer{}, m)

	m, err = NewMailer(ctx, MailerConfig{Provider: "smtp", SMTP: SMTPConfig{Host: "localhost", Port: 1025}}, logger)
	require.NoError(t, err)
	assert.IsType(t, &smtpMailer{}, m)

	_, err = NewMailer(ctx, MailerConfig{Provider: "smtp"}, logger)
	assert.Error(t, err)

	m, err = NewMailer(ctx, MailerConfig{Provider: "sendgrid", SendGrid: SendGridConfig{APIKey: "SG.key"}}, logger)
	require.NoError(t, err)
	assert.IsType(t, &sendGridMailer{}, m)

	_, err = NewMailer(ctx, MailerConfig{Provider: "sendgrid"}, logger)
	assert.Error(t, err)
}

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSES{}
	m := &sesMailer{client: client, fromAddress: "rsvp@example.com", fromName: "Elysium", logger: discardLogger()}

	err := m.Send(context.Background(), "guest@example.com", "Subject", "<p>hi</p>", "hi")
	require.NoError(t, err)

	require.NotNil(t, client.input)
	assert.Equal(t, "Elysium <rsvp@example.com>", aws.ToString(client.input.Source))
	assert.Equal(t, []string{"guest@example.com"}, client.input.Destination.ToAddresses)
	assert.Equal(t, "Subject", aws.ToString(client.input.Message.Subject.Data))
	assert.Equal(t, "<p>hi</p>", aws.ToString(client.input.Message.Body.Html.Data))
	assert.Equal(t, "hi", aws.ToString(client.input.Message.Body.Text.Data))
}

func TestSESMailer_Send_error(t *testing.T) {
	client := &fakeSES{err: errors.New("throttled")}
	m := &sesMailer{client: client, fromAddress: "rsvp@example.com", logger: discardLogger()}

	err := m.Send(context.Background(), "guest@example.com", "Subject", "", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
	assert.Equal(t, "rsvp@example.com", aws.ToString(client.input.Source))
	assert.Nil(t, client.input.Message.Body.Html)
}

func TestSMTPMailer_Send(t *testing.T) {
	dialer := &fakeDialer{}
	m := &smtpMailer{dialer: dialer, fromAddress: "rsvp@example.com", fromName: "Elysium", logger: discardLogger()}

	require.NoError(t, m.Send(context.Background(), "guest@example.com", "Subject", "<p>hi</p>", "hi"))
	require.Len(t, dialer.sent, 1)
	assert.Equal(t, []string{"guest@example.com"}, dialer.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"Subject"}, dialer.sent[0].GetHeader("Subject"))

	dialer.err = errors.New("connection refused")
	assert.Error(t, m.Send(context.Background(), "guest@example.com", "Subject", "", "hi"))
}

func TestSendGridMailer_Send(t *testing.T) {
	client := &fakeSendGrid{status: http.StatusAccepted}
	m := &sendGridMailer{client: client, fromAddress: "rsvp@example.com", fromName: "Elysium", logger: discardLogger()}

	require.NoError(t, m.Send(context.Background(), "guest@example.com", "Subject", "<p>hi</p>", "hi"))
	require.NotNil(t, client.message)
	assert.Equal(t, "rsvp@example.com", client.message.From.Address)
	assert.Equal(t, "Subject", client.message.Subject)

	client.status = http.StatusUnauthorized
	assert.Error(t, m.Send(context.Background(), "guest@example.com", "Subject", "", "hi"))

	client.err = errors.New("network down")
	assert.Error(t, m.Send(context.Background(), "guest@example.com", "Subject", "", "hi"))
}

func TestNoopMailer_Send(t *testing.T) {
	m := &noopMailer{logger: discardLogger()}
	assert.NoError(t, m.Send(context.Background(), "guest@example.com", "Subject", "", ""))
}
