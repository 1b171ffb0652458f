package managers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"money-manager-server/internal/config"
)

// ErrDispatchFailed marks an email that could not be submitted to the
// provider. Callers decide whether the failure is fatal; registration and
// the scheduled jobs log it and carry on.
var ErrDispatchFailed = errors.New("mail dispatch failed")

// MailMgr is an interface that outlines the contract for email dispatch.
type MailMgr interface {
	Send(to, subject, htmlBody string) error
	SendWithAttachment(to, subject, htmlBody string, attachment []byte, filename string) error
	SendActivationMail(to, fullName, activationLink string) error
}

// MailManager submits transactional emails to the Brevo HTTP API.
type MailManager struct {
	APIKey      string
	APIURL      string
	FromEmail   string
	FromName    string
	Environment string
	Client      *http.Client
}

type mailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type mailAttachment struct {
	Content string `json:"content"`
	Name    string `json:"name"`
}

type mailPayload struct {
	Sender      mailAddress      `json:"sender"`
	To          []mailAddress    `json:"to"`
	Subject     string           `json:"subject"`
	HTMLContent string           `json:"htmlContent"`
	Attachment  []mailAttachment `json:"attachment,omitempty"`
}

const mailTimeout = 10 * time.Second

// NewMailManager initializes a new MailManager from the mail configuration.
// Outside production the manager logs instead of calling the provider.
func NewMailManager(cfg config.MailConfig, environment string) MailMgr {
	log.Info("Initializing mail manager")

	if environment != "production" {
		log.Info("Running in development mode, email will not be sent to users")
	}

	return &MailManager{
		APIKey:      cfg.APIKey,
		APIURL:      cfg.APIURL,
		FromEmail:   cfg.FromEmail,
		FromName:    cfg.FromName,
		Environment: environment,
		Client:      &http.Client{Timeout: mailTimeout},
	}
}

// Send submits a single-recipient email. The body is wrapped in a minimal
// HTML envelope before submission.
func (mm *MailManager) Send(to, subject, htmlBody string) error {
	return mm.submit(to, subject, htmlBody, nil)
}

// SendWithAttachment submits a single-recipient email carrying one
// base64-encoded attachment.
func (mm *MailManager) SendWithAttachment(to, subject, htmlBody string, attachment []byte, filename string) error {
	attachments := []mailAttachment{
		{
			Content: base64.StdEncoding.EncodeToString(attachment),
			Name:    filename,
		},
	}
	return mm.submit(to, subject, htmlBody, attachments)
}

// SendActivationMail sends the account activation link to a freshly
// registered profile.
func (mm *MailManager) SendActivationMail(to, fullName, activationLink string) error {
	subject := "Activate your Money Manager account"
	body := "Hi " + fullName + ",<br><br>" +
		"Click on the following link to activate your Money Manager account:<br><br>" +
		"<a href=\"" + activationLink + "\">Activate Account</a>"

	return mm.Send(to, subject, body)
}

func (mm *MailManager) submit(to, subject, htmlBody string, attachments []mailAttachment) error {
	if mm.Environment != "production" {
		log.Info("Skipping mail dispatch in development mode")
		return nil
	}

	payload := mailPayload{
		Sender:      mailAddress{Email: mm.FromEmail, Name: mm.FromName},
		To:          []mailAddress{{Email: to}},
		Subject:     subject,
		HTMLContent: "<html><body>" + htmlBody + "</body></html>",
		Attachment:  attachments,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
	defer cancel()

	resp, err := mm.post(ctx, body)
	if err != nil {
		// One retry on transport errors; the provider call has no
		// side effects we could observe on this path.
		log.WithError(err).Warn("Mail dispatch failed, retrying once")
		resp, err = mm.post(ctx, body)
	}
	if err != nil {
		log.WithError(err).Warn("Error sending mail to " + to)
		return fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Warnf("Mail provider returned status %d for mail to %s", resp.StatusCode, to)
		return fmt.Errorf("%w: provider returned status %d", ErrDispatchFailed, resp.StatusCode)
	}

	log.Debug("Mail sent to ", to)
	return nil
}

func (mm *MailManager) post(ctx context.Context, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, mm.APIURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", mm.APIKey)

	return mm.Client.Do(req)
}
