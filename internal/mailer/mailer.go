package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"
)

type Mailer interface {
	SendOTP(ctx context.Context, to, name string, code int) error
}

type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
}

func NewSMTP(host, port, username, password, from string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{
		addr: host + ":" + port,
		auth: auth,
		from: from,
	}
}

func (m *SMTPMailer) SendOTP(_ context.Context, to, name string, code int) error {
	msg := fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: OTP Verification\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=utf-8\r\n"+
			"\r\n"+
			"<p>Hi %s,</p><p>Your verification code is <b>%06d</b>.</p>",
		m.from, to, name, code,
	)
	return smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg))
}

// LogMailer stands in when SMTP is not configured. The code still reaches
// the logs so registration can be exercised locally end to end.
type LogMailer struct {
	log *zap.Logger
}

func NewLog(log *zap.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendOTP(_ context.Context, to, name string, code int) error {
	m.log.Info("otp mail (smtp not configured)",
		zap.String("to", to),
		zap.String("name", name),
		zap.Int("otp_code", code),
	)
	return nil
}
