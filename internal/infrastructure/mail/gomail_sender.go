package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/rcampos/vinylstore-backend/internal/domain/ports"
	"github.com/rcampos/vinylstore-backend/internal/infrastructure/config"
)

// GomailSender implementa ports.Mailer sobre SMTP
type GomailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailSender cria um novo GomailSender
func NewGomailSender(cfg *config.SMTPConfig) ports.Mailer {
	return &GomailSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (s *GomailSender) SendPurchaseConfirmation(to, recordName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Purchase Confirmation")
	m.SetBody("text/plain", fmt.Sprintf("Thank you for purchasing %s!", recordName))
	m.AddAlternative("text/html", fmt.Sprintf("<p>Thank you for purchasing <strong>%s</strong>!</p>", recordName))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	return nil
}
