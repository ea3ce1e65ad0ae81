package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendVerificationEmail(toEmail, name, token string) error
	SendPaymentSuccessEmail(toEmail, name, planName string, amount int64) error
	SendPaymentPendingEmail(toEmail, name, planName string, amount int64) error
	SendPaymentFailedEmail(toEmail, name, planName string) error
	SendRenewalReminderEmail(toEmail, name, planName, billingDate string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	clientURL   string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName, clientURL string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
		clientURL:   clientURL,
	}
}

func (s *emailService) send(toEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send %q to %s: %v\n", subject, toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] %q sent to %s\n", subject, toEmail)
	return nil
}

func (s *emailService) SendVerificationEmail(toEmail, name, token string) error {
	verifyLink := fmt.Sprintf("%s/verify-email?token=%s", s.clientURL, token)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to Testinesia, %s!</h2>
			<p>Please confirm your email address to activate your account:</p>
			<a href="%s" style="background-color: #6C5CE7; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Verify Email</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>If you didn't create an account, please ignore this email.</p>
		</div>
	`, name, verifyLink, verifyLink)

	return s.send(toEmail, "Verify your Testinesia account", body)
}

func (s *emailService) SendPaymentSuccessEmail(toEmail, name, planName string, amount int64) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Payment received</h2>
			<p>Hi %s, your payment of <strong>Rp %d</strong> for the <strong>%s</strong> plan was successful.</p>
			<p>Your new quotas are already active. Happy collecting!</p>
			<a href="%s/dashboard" style="background-color: #00B894; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Go to dashboard</a>
		</div>
	`, name, amount, planName, s.clientURL)

	return s.send(toEmail, "Payment successful - "+planName, body)
}

func (s *emailService) SendPaymentPendingEmail(toEmail, name, planName string, amount int64) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Payment pending</h2>
			<p>Hi %s, we're waiting for your payment of <strong>Rp %d</strong> for the <strong>%s</strong> plan.</p>
			<p>Complete the payment to activate your subscription.</p>
		</div>
	`, name, amount, planName)

	return s.send(toEmail, "Complete your payment - "+planName, body)
}

func (s *emailService) SendPaymentFailedEmail(toEmail, name, planName string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Payment failed</h2>
			<p>Hi %s, your payment for the <strong>%s</strong> plan was not completed.</p>
			<p>No charge was made. You can retry anytime from the pricing page.</p>
			<a href="%s/pricing" style="background-color: #D63031; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Try again</a>
		</div>
	`, name, planName, s.clientURL)

	return s.send(toEmail, "Payment failed - "+planName, body)
}

func (s *emailService) SendRenewalReminderEmail(toEmail, name, planName, billingDate string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Your subscription renews soon</h2>
			<p>Hi %s, your <strong>%s</strong> plan is due for renewal on <strong>%s</strong>.</p>
			<p>Renew before that date to keep your quotas topped up.</p>
			<a href="%s/pricing" style="background-color: #6C5CE7; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Renew now</a>
		</div>
	`, name, planName, billingDate, s.clientURL)

	return s.send(toEmail, "Renewal reminder - "+planName, body)
}
