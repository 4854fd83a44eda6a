package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	netmail "net/mail"
	"time"

	"github.com/medagenda/scheduler-api/internal/domain/scheduling"
)

// Mailer delivers appointment notifications through an HTTP mail provider.
// With no API key configured it degrades to a no-op, so local setups work
// without a mail account.
type Mailer struct {
	apiKey     string
	apiBaseURL string
	fromName   string
	httpClient *http.Client
}

func NewMailer(apiKey, apiBaseURL, fromName string) *Mailer {
	return &Mailer{
		apiKey:     apiKey,
		apiBaseURL: apiBaseURL,
		fromName:   fromName,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type sendPayload struct {
	ToAddress     string                       `json:"toAddress"`
	FromName      string                       `json:"fromName"`
	TemplateName  string                       `json:"templateName"`
	TemplateProps scheduling.AppointmentNotice `json:"templateProps"`
}

func (m *Mailer) SendAppointmentNotification(email string, notice scheduling.AppointmentNotice) error {
	if m.apiKey == "" {
		return nil
	}

	if _, err := netmail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}

	payload := sendPayload{
		ToAddress:     email,
		FromName:      m.fromName,
		TemplateName:  "appointment-" + notice.Status,
		TemplateProps: notice,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error marshaling notification: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, m.apiBaseURL+"/email/send", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("mail provider returned status %d", resp.StatusCode)
	}
	return nil
}

var _ scheduling.Notifier = (*Mailer)(nil)
