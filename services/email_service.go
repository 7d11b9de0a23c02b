package services

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Emeenent14/omniverse/config"
	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService() (*EmailService, error) {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, errors.New("SMTP configuration missing")
	}

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}

	return &EmailService{
		dialer: gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}, nil
}

func (s *EmailService) SendOTPEmail(toEmail, otp string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Password Reset OTP - Omniverse")

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
        <h2 style="color: #333;">Password Reset Request</h2>
        <p>Use the code below to reset your Omniverse password. It expires in 10 minutes.</p>
        <div style="border: 2px dashed #6d28d9; padding: 20px; text-align: center; margin: 30px 0; border-radius: 8px;">
            <span style="font-size: 36px; font-weight: bold; color: #6d28d9; letter-spacing: 8px;">%s</span>
        </div>
        <p style="color: #666; font-size: 12px;">If you did not request a password reset, you can ignore this email.</p>
    </div>
</body>
</html>`, otp)

	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}
