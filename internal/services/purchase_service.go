package services

import (
	"context"
	stderrors "errors"

	"github.com/rcampos/vinylstore-backend/internal/domain/entities"
	"github.com/rcampos/vinylstore-backend/internal/domain/errors"
	"github.com/rcampos/vinylstore-backend/internal/domain/ports"
	"github.com/rcampos/vinylstore-backend/internal/domain/repositories"
)

// PurchaseService implementa o fluxo de checkout e a reconciliação de
// webhooks do provedor de pagamento.
//
// O fluxo é: checkout cria uma sessão no provedor (nenhum estado local),
// o provedor chama o webhook quando a sessão é concluída, e a
// reconciliação converte o evento verificado em exatamente uma Purchase.
// O provedor entrega eventos at-least-once; a unicidade é garantida pelo
// índice único em purchases.session_id, não por coordenação em memória.
type PurchaseService struct {
	purchaseRepo repositories.PurchaseRepository
	recordRepo   repositories.VinylRecordRepository
	userRepo     repositories.UserRepository
	gateway      ports.PaymentGateway
	mailer       ports.Mailer
	logger       ports.Logger
}

// NewPurchaseService cria um novo PurchaseService
func NewPurchaseService(
	purchaseRepo repositories.PurchaseRepository,
	recordRepo repositories.VinylRecordRepository,
	userRepo repositories.UserRepository,
	gateway ports.PaymentGateway,
	mailer ports.Mailer,
	logger ports.Logger,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		recordRepo:   recordRepo,
		userRepo:     userRepo,
		gateway:      gateway,
		mailer:       mailer,
		logger:       logger,
	}
}

// CreateCheckout valida o disco, abre a checkout session no provedor e
// retorna a URL de redirecionamento. O id do disco viaja na metadata da
// sessão para a reconciliação posterior.
func (s *PurchaseService) CreateCheckout(ctx context.Context, recordID, userEmail string) (string, error) {
	record, err := s.recordRepo.FindByID(ctx, recordID)
	if err != nil {
		return "", err
	}
	if record == nil {
		return "", errors.ErrRecordNotFound
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, ports.CheckoutInput{
		RecordID:      record.ID,
		RecordName:    record.Name,
		AmountInCents: record.PriceInCents(),
		CustomerEmail: userEmail,
	})
	if err != nil {
		return "", errors.ErrCheckoutFailed
	}

	s.logger.Info("checkout session created",
		"session_id", session.ID,
		"record_id", record.ID,
		"email", userEmail,
	)

	return session.URL, nil
}

// HandleWebhook verifica a assinatura do payload e processa o evento.
// Assinatura inválida é rejeitada sem nenhuma mudança de estado. Tipos
// de evento não tratados são aceitos e ignorados.
func (s *PurchaseService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.gateway.VerifyWebhook(payload, signature)
	if err != nil {
		return err
	}

	if event.Type != ports.WebhookCheckoutCompleted {
		s.logger.Debug("ignoring webhook event", "type", string(event.Type))
		return nil
	}

	return s.reconcile(ctx, event)
}

// reconcile converte um evento de sessão concluída em uma Purchase.
// Seguro sob entrega repetida do mesmo evento: a sessão já reconciliada
// é reconhecida pelo existence check e, na corrida entre duas entregas
// concorrentes, pelo índice único em session_id.
func (s *PurchaseService) reconcile(ctx context.Context, event *ports.WebhookEvent) error {
	existing, err := s.purchaseRepo.FindBySessionID(ctx, event.SessionID)
	if err != nil {
		return err
	}
	if existing != nil {
		s.logger.Info("webhook delivery for already reconciled session",
			"session_id", event.SessionID,
		)
		return nil
	}

	recordID := event.Metadata[ports.MetadataRecordIDKey]

	record, err := s.recordRepo.FindByID(ctx, recordID)
	if err != nil {
		return err
	}
	if record == nil {
		s.logger.Error("vinyl record not found during purchase reconciliation",
			"record_id", recordID,
			"session_id", event.SessionID,
		)
		return errors.ErrRecordNotFound
	}

	user, err := s.userRepo.FindByEmail(ctx, event.CustomerEmail)
	if err != nil {
		return err
	}
	if user == nil {
		s.logger.Error("user not found during purchase reconciliation",
			"email", event.CustomerEmail,
			"session_id", event.SessionID,
		)
		return errors.ErrUserNotFound
	}

	purchase := &entities.Purchase{
		UserID:        user.ID,
		VinylRecordID: record.ID,
		SessionID:     event.SessionID,
	}

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		if stderrors.Is(err, errors.ErrDuplicatePurchase) {
			s.logger.Info("concurrent webhook delivery already created purchase",
				"session_id", event.SessionID,
			)
			return nil
		}
		return err
	}

	s.logger.Info("purchase reconciled",
		"purchase_id", purchase.ID,
		"user_id", user.ID,
		"record_id", record.ID,
		"session_id", event.SessionID,
	)

	// Falha de email não reverte a compra nem falha o webhook; o provedor
	// não deve reentregar o evento por causa do SMTP.
	if err := s.mailer.SendPurchaseConfirmation(user.Email.String(), record.Name); err != nil {
		s.logger.Warn("failed to send purchase confirmation email",
			"email", user.Email.String(),
			"error", err,
		)
	}

	return nil
}
