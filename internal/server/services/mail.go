package services

import (
	"context"
	"fmt"
	"net"
	"net/smtp"

	"github.com/Dvesiz/Ship-Management-System/internal/server/config"
)

// Mailer delivers one-time verification codes.
type Mailer interface {
	SendCode(ctx context.Context, to, code string) error
}

type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
	}
}

func (m *SMTPMailer) SendCode(ctx context.Context, to, code string) error {
	subject := "Verification code"
	body := fmt.Sprintf(
		`<html><body><p>Your verification code is <b>%s</b>.</p>`+
			`<p>It expires in 5 minutes. If you did not request it, ignore this mail.</p></body></html>`,
		code)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n"+
		"MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		m.from, to, subject, body)

	addr := net.JoinHostPort(m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
