package email

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
)

// ErrNotConfigured is returned when no SMTP host has been set up.
var ErrNotConfigured = errors.New("email: SMTP is not configured")

// Config holds SMTP configuration
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// Service handles email sending
type Service struct {
	config Config
}

// NewService creates a new email service
func NewService(config Config) *Service {
	return &Service{config: config}
}

// SendReceipt emails a generated receipt PDF as an attachment named
// receipt-{receiptNumber}.pdf.
func (s *Service) SendReceipt(to, receiptNumber string, pdf []byte) error {
	if s.config.SMTPHost == "" {
		return ErrNotConfigured
	}

	subject := "Rent Receipt " + receiptNumber
	body := fmt.Sprintf("Please find attached the rent receipt %s.", receiptNumber)
	filename := fmt.Sprintf("receipt-%s.pdf", receiptNumber)

	message, err := s.buildMessageWithAttachment(to, subject, body, filename, pdf)
	if err != nil {
		return fmt.Errorf("email: build message: %w", err)
	}
	return s.send(to, message)
}

// buildMessageWithAttachment assembles a multipart MIME mail with a plain
// text body and one application/pdf attachment.
func (s *Service) buildMessageWithAttachment(to, subject, body, filename string, attachment []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	headers := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\n"+
		"Content-Type: multipart/mixed; boundary=%q\r\n\r\n",
		s.config.FromName, s.config.FromEmail, to, subject, writer.Boundary())

	textPart, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=utf-8"},
	})
	if err != nil {
		return nil, err
	}
	if _, err := textPart.Write([]byte(body)); err != nil {
		return nil, err
	}

	pdfPart, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {"application/pdf"},
		"Content-Transfer-Encoding": {"base64"},
		"Content-Disposition":       {fmt.Sprintf("attachment; filename=%q", filename)},
	})
	if err != nil {
		return nil, err
	}
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(attachment)))
	base64.StdEncoding.Encode(encoded, attachment)
	if _, err := pdfPart.Write(encoded); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}
	return append([]byte(headers), buf.Bytes()...), nil
}

// send delivers the message using SMTP with plain auth
func (s *Service) send(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)
	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("email: send to %s: %w", to, err)
	}
	return nil
}
