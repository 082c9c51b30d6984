package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
)

// SMTPMailer sends storefront mail through a plain SMTP relay.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	appName  string
	logger   *slog.Logger

	// send is swappable in tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer builds a mailer for the given relay credentials.
func NewSMTPMailer(host string, port int, username, password, from string, logger *slog.Logger) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		appName:  "Native Delight",
		logger:   logger,
		send:     smtp.SendMail,
	}
}

// SendOrderConfirmation mails the customer an itemized summary of the order.
func (m *SMTPMailer) SendOrderConfirmation(ctx context.Context, order *model.Order) error {
	body := renderOrderConfirmation(order)
	return m.deliver(ctx, order.Email, "Successful Order", body)
}

// SendUserCredentials mails a newly invited user their generated password.
func (m *SMTPMailer) SendUserCredentials(ctx context.Context, email, password string, role model.UserRole) error {
	body := renderUserCredentials(m.appName, email, password, role)
	return m.deliver(ctx, email, "New User Created", body)
}

func (m *SMTPMailer) deliver(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.host == "" || m.from == "" {
		return fmt.Errorf("smtp relay not configured")
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := m.send(addr, auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// formatAmount renders minor currency units as a two-decimal major amount.
func formatAmount(minor int64) string {
	return decimal.NewFromInt(minor).Div(decimal.NewFromInt(100)).StringFixed(2)
}

func renderOrderConfirmation(order *model.Order) string {
	var b strings.Builder
	b.WriteString("<h2>Order Confirmation</h2>")
	b.WriteString("<p>Thank you for your order! Below are the details:</p>")
	b.WriteString(`<table border="1" cellpadding="5" cellspacing="0">`)
	b.WriteString("<thead><tr><th>Product Name</th><th>Quantity</th><th>Amount (NGN)</th></tr></thead><tbody>")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td><td>%s</td></tr>", item.Name, item.Quantity, formatAmount(item.Amount()))
	}
	fmt.Fprintf(&b, `<tr><td colspan="2">Grand Total</td><td>%s</td></tr>`, formatAmount(order.Total))
	b.WriteString("</tbody></table>")
	fmt.Fprintf(&b, "<p><strong>Shipping Address:</strong> %s</p>", order.Address)
	fmt.Fprintf(&b, "<p><strong>Contact Phone:</strong> %s</p>", order.Phone)
	b.WriteString("<p>We will notify you once your order is shipped.</p>")
	return b.String()
}

func renderUserCredentials(appName, email, password string, role model.UserRole) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Welcome to %s!</h2>", appName)
	b.WriteString("<p>Your account has been successfully created. Below are your account details:</p>")
	b.WriteString("<table>")
	fmt.Fprintf(&b, "<tr><td>Email:</td><td>%s</td></tr>", email)
	fmt.Fprintf(&b, "<tr><td>Password:</td><td>%s</td></tr>", password)
	fmt.Fprintf(&b, "<tr><td>Role:</td><td>%s</td></tr>", role)
	b.WriteString("</table>")
	b.WriteString("<p>Please use these credentials to log in to your account. For security, we recommend changing your password after your first login.</p>")
	fmt.Fprintf(&b, "<p>Best regards,<br>The %s Team</p>", appName)
	return b.String()
}
