package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

type EmailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func GetEmailConfig() *EmailConfig {
	return &EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

func SendEmail(to, subject, htmlBody string) error {
	config := GetEmailConfig()
	if config.Host == "" || config.Port == "" || config.From == "" {
		return fmt.Errorf("SMTP not configured")
	}

	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n",
		config.From, to, subject)
	msg := []byte(headers + htmlBody)

	var auth smtp.Auth
	if config.Username != "" && config.Password != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	addr := config.Host + ":" + config.Port
	return smtp.SendMail(addr, auth, config.From, []string{to}, msg)
}

func SendWelcomeEmail(email, name string) {
	go func() {
		subject := "Welcome to BarberBook!"
		body := fmt.Sprintf(`<h2>Welcome to BarberBook, %s!</h2>
<p>Thank you for creating your account. You can now:</p>
<ul>
<li>Browse barbershops near you</li>
<li>Book appointments with your favorite barbers</li>
<li>Leave reviews after your visit</li>
</ul>
<p>See you in the chair!</p>
<p>The BarberBook Team</p>`, strings.Split(name, " ")[0])
		if err := SendEmail(email, subject, body); err != nil {
			log.Printf("Failed to send welcome email to %s: %v", email, err)
		}
	}()
}

func SendBookingConfirmation(email, name, shopName, date, timeSlot string, price float64) {
	go func() {
		subject := fmt.Sprintf("Booking Confirmed - %s", shopName)
		body := fmt.Sprintf(`<h2>Booking Confirmed!</h2>
<p>Hi %s,</p>
<p>Your appointment at <strong>%s</strong> is booked for <strong>%s at %s</strong>.</p>
<p>Total: <strong>$%.2f</strong></p>
<p>Free cancellation up to 24 hours before your appointment.</p>
<p>The BarberBook Team</p>`, strings.Split(name, " ")[0], shopName, date, timeSlot, price)
		if err := SendEmail(email, subject, body); err != nil {
			log.Printf("Failed to send booking confirmation to %s: %v", email, err)
		}
	}()
}

func SendBookingStatusUpdate(email, name, shopName, status string) {
	go func() {
		subject := fmt.Sprintf("Appointment Update - %s", shopName)
		body := fmt.Sprintf(`<h2>Appointment Status Update</h2>
<p>Hi %s,</p>
<p>Your appointment at <strong>%s</strong> is now: <strong>%s</strong></p>
<p>The BarberBook Team</p>`, strings.Split(name, " ")[0], shopName, status)
		if err := SendEmail(email, subject, body); err != nil {
			log.Printf("Failed to send status update email to %s: %v", email, err)
		}
	}()
}

func SendPasswordResetEmail(email, name, resetToken, frontendURL string) {
	go func() {
		resetLink := fmt.Sprintf("%s/reset-password?token=%s", frontendURL, resetToken)
		subject := "Reset Your Password - BarberBook"
		body := fmt.Sprintf(`<h2>Password Reset Request</h2>
<p>Hi %s,</p>
<p>We received a request to reset your password. Click the link below to set a new password:</p>
<p><a href="%s" style="display:inline-block;padding:12px 24px;background:#1a1a2e;color:#ffffff;text-decoration:none;border-radius:8px;font-weight:bold;">Reset Password</a></p>
<p>This link will expire in 1 hour.</p>
<p>If you didn't request this, you can safely ignore this email.</p>
<p>The BarberBook Team</p>`, strings.Split(name, " ")[0], resetLink)
		if err := SendEmail(email, subject, body); err != nil {
			log.Printf("Failed to send password reset email to %s: %v", email, err)
		}
	}()
}
