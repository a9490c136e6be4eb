package mailer

import "sync"

// MockMailer records sent mail for tests instead of talking to an SMTP
// server.
type MockMailer struct {
	mu   sync.Mutex
	Sent []MockMail
}

type MockMail struct {
	Recipient    string
	TemplateFile string
	Data         any
}

func (m *MockMailer) Send(recipient, templateFile string, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Sent = append(m.Sent, MockMail{
		Recipient:    recipient,
		TemplateFile: templateFile,
		Data:         data,
	})

	return nil
}

func (m *MockMailer) SentMails() []MockMail {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]MockMail(nil), m.Sent...)
}

func (m *MockMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Sent = nil
}
