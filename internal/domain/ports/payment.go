package ports

import "context"

// MetadataRecordIDKey é a chave de metadata que carrega o id do disco na
// checkout session. O gateway grava; a reconciliação do webhook lê.
const MetadataRecordIDKey = "vinyl_record_id"

// CheckoutInput contém os dados para abrir uma checkout session no provedor
type CheckoutInput struct {
	RecordID      string
	RecordName    string
	AmountInCents int64
	CustomerEmail string
}

// CheckoutSession representa a sessão criada no provedor de pagamento
type CheckoutSession struct {
	ID  string
	URL string
}

// WebhookEventType identifica o tipo de evento recebido via webhook
type WebhookEventType string

const (
	// WebhookCheckoutCompleted indica que uma checkout session foi concluída
	WebhookCheckoutCompleted WebhookEventType = "checkout.session.completed"
)

// WebhookEvent é um evento de webhook já verificado e decodificado
type WebhookEvent struct {
	Type          WebhookEventType
	SessionID     string
	CustomerEmail string
	Metadata      map[string]string
}

// PaymentGateway define a interface com o provedor de pagamento externo
type PaymentGateway interface {
	// CreateCheckoutSession abre uma sessão de pagamento e retorna a URL
	// de redirecionamento. Nenhum estado local é criado.
	CreateCheckoutSession(ctx context.Context, input CheckoutInput) (*CheckoutSession, error)

	// VerifyWebhook valida a assinatura do payload com o segredo compartilhado
	// e decodifica o evento. Payload não confiável nunca deve ser lido antes
	// da verificação.
	VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error)
}
