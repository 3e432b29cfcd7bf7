package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcampos/vinylstore-backend/internal/domain/entities"
	domainerrors "github.com/rcampos/vinylstore-backend/internal/domain/errors"
	"github.com/rcampos/vinylstore-backend/internal/domain/ports"
	"github.com/rcampos/vinylstore-backend/internal/domain/valueobjects"
)

type purchaseFixture struct {
	service      *PurchaseService
	purchaseRepo *memPurchaseRepo
	recordRepo   *memRecordRepo
	userRepo     *memUserRepo
	gateway      *fakeGateway
	mailer       *fakeMailer

	record *entities.VinylRecord
	user   *entities.User
}

func newPurchaseFixture(t *testing.T) *purchaseFixture {
	t.Helper()

	f := &purchaseFixture{
		purchaseRepo: newMemPurchaseRepo(),
		recordRepo:   newMemRecordRepo(),
		userRepo:     newMemUserRepo(),
		gateway:      &fakeGateway{},
		mailer:       &fakeMailer{},
	}

	f.record = &entities.VinylRecord{Name: "Harvest", AuthorName: "Neil Young", Price: 39.99}
	require.NoError(t, f.recordRepo.Create(context.Background(), f.record))

	email, err := valueobjects.NewEmail("buyer@example.com")
	require.NoError(t, err)
	f.user = &entities.User{Email: email, FirstName: "Bruno", Role: entities.RoleUser}
	require.NoError(t, f.userRepo.Create(context.Background(), f.user))

	f.service = NewPurchaseService(f.purchaseRepo, f.recordRepo, f.userRepo, f.gateway, f.mailer, noopLogger{})
	return f
}

func completedEvent(f *purchaseFixture, sessionID string) *ports.WebhookEvent {
	return &ports.WebhookEvent{
		Type:          ports.WebhookCheckoutCompleted,
		SessionID:     sessionID,
		CustomerEmail: f.user.Email.String(),
		Metadata:      map[string]string{ports.MetadataRecordIDKey: f.record.ID},
	}
}

func TestPurchaseService_CreateCheckout(t *testing.T) {
	t.Run("abre a sessão com o valor em centavos e retorna a URL", func(t *testing.T) {
		f := newPurchaseFixture(t)
		f.gateway.session = &ports.CheckoutSession{ID: "cs_123", URL: "https://checkout.example/cs_123"}

		url, err := f.service.CreateCheckout(context.Background(), f.record.ID, f.user.Email.String())
		require.NoError(t, err)

		assert.Equal(t, "https://checkout.example/cs_123", url)
		assert.Equal(t, int64(3999), f.gateway.lastInput.AmountInCents)
		assert.Equal(t, f.record.ID, f.gateway.lastInput.RecordID)
		assert.Equal(t, "buyer@example.com", f.gateway.lastInput.CustomerEmail)
	})

	t.Run("disco inexistente é not-found sem chamar o provedor", func(t *testing.T) {
		f := newPurchaseFixture(t)

		_, err := f.service.CreateCheckout(context.Background(), "missing", f.user.Email.String())
		assert.ErrorIs(t, err, domainerrors.ErrRecordNotFound)
		assert.Zero(t, f.gateway.createCalls)
	})

	t.Run("falha do provedor vira erro de checkout", func(t *testing.T) {
		f := newPurchaseFixture(t)
		f.gateway.createErr = errors.New("stripe down")

		_, err := f.service.CreateCheckout(context.Background(), f.record.ID, f.user.Email.String())
		assert.ErrorIs(t, err, domainerrors.ErrCheckoutFailed)
	})
}

func TestPurchaseService_HandleWebhook(t *testing.T) {
	t.Run("assinatura inválida é rejeitada sem mudança de estado", func(t *testing.T) {
		f := newPurchaseFixture(t)
		f.gateway.verifyErr = domainerrors.ErrInvalidSignature

		err := f.service.HandleWebhook(context.Background(), []byte(`{}`), "bad-sig")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidSignature)
		assert.Empty(t, f.purchaseRepo.purchases)
		assert.Empty(t, f.mailer.sent)
	})

	t.Run("eventos de outros tipos são aceitos e ignorados", func(t *testing.T) {
		f := newPurchaseFixture(t)
		f.gateway.event = &ports.WebhookEvent{Type: "payment_intent.created"}

		require.NoError(t, f.service.HandleWebhook(context.Background(), []byte(`{}`), "sig"))
		assert.Empty(t, f.purchaseRepo.purchases)
	})

	t.Run("sessão concluída cria a compra e envia o email", func(t *testing.T) {
		f := newPurchaseFixture(t)
		f.gateway.event = completedEvent(f, "cs_abc")

		require.NoError(t, f.service.HandleWebhook(context.Background(), []byte(`{}`), "sig"))

		require.Len(t, f.purchaseRepo.purchases, 1)
		purchase := f.purchaseRepo.purchases[0]
		assert.Equal(t, f.user.ID, purchase.UserID)
		assert.Equal(t, f.record.ID, purchase.VinylRecordID)
		assert.Equal(t, "cs_abc", purchase.SessionID)

		require.Len(t, f.mailer.sent, 1)
		assert.Equal(t, "buyer@example.com:Harvest", f.mailer.sent[0])
	})

	t.Run("entrega repetida do mesmo evento não duplica a compra", func(t *testing.T) {
		f := newPurchaseFixture(t)
		f.gateway.event = completedEvent(f, "cs_retry")

		require.NoError(t, f.service.HandleWebhook(context.Background(), []byte(`{}`), "sig"))
		require.NoError(t, f.service.HandleWebhook(context.Background(), []byte(`{}`), "sig"))

		assert.Len(t, f.purchaseRepo.purchases, 1)
		assert.Len(t, f.mailer.sent, 1, "email de confirmação não deve ser reenviado")
	})

	t.Run("corrida perdida no índice único conta como já reconciliada", func(t *testing.T) {
		f := newPurchaseFixture(t)
		f.gateway.event = completedEvent(f, "cs_race")
		f.purchaseRepo.createErr = domainerrors.ErrDuplicatePurchase

		err := f.service.HandleWebhook(context.Background(), []byte(`{}`), "sig")
		assert.NoError(t, err)
	})

	t.Run("disco ausente na reconciliação é not-found", func(t *testing.T) {
		f := newPurchaseFixture(t)
		event := completedEvent(f, "cs_norec")
		event.Metadata[ports.MetadataRecordIDKey] = "missing"
		f.gateway.event = event

		err := f.service.HandleWebhook(context.Background(), []byte(`{}`), "sig")
		assert.ErrorIs(t, err, domainerrors.ErrRecordNotFound)
		assert.Empty(t, f.purchaseRepo.purchases)
	})

	t.Run("usuário ausente na reconciliação é not-found", func(t *testing.T) {
		f := newPurchaseFixture(t)
		event := completedEvent(f, "cs_nouser")
		event.CustomerEmail = "stranger@example.com"
		f.gateway.event = event

		err := f.service.HandleWebhook(context.Background(), []byte(`{}`), "sig")
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
		assert.Empty(t, f.purchaseRepo.purchases)
	})

	t.Run("falha no envio do email não falha o webhook", func(t *testing.T) {
		f := newPurchaseFixture(t)
		f.gateway.event = completedEvent(f, "cs_mail")
		f.mailer.err = errors.New("smtp timeout")

		err := f.service.HandleWebhook(context.Background(), []byte(`{}`), "sig")
		assert.NoError(t, err)
		assert.Len(t, f.purchaseRepo.purchases, 1, "compra persiste mesmo sem email")
	})
}
