package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rcampos/vinylstore-backend/internal/domain/entities"
	domainerrors "github.com/rcampos/vinylstore-backend/internal/domain/errors"
	"github.com/rcampos/vinylstore-backend/internal/domain/ports"
	"github.com/rcampos/vinylstore-backend/internal/domain/repositories"
)

// noopLogger descarta todos os logs durante os testes
type noopLogger struct{}

func (noopLogger) Info(string, ...any)        {}
func (noopLogger) Error(string, ...any)       {}
func (noopLogger) Debug(string, ...any)       {}
func (noopLogger) Warn(string, ...any)        {}
func (l noopLogger) With(...any) ports.Logger { return l }

// memUserRepo é uma implementação em memória de repositories.UserRepository
type memUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*entities.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entities.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		r.seq++
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id], nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email.String() == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return domainerrors.ErrUserNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return domainerrors.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// memRecordRepo é uma implementação em memória de repositories.VinylRecordRepository
type memRecordRepo struct {
	mu      sync.Mutex
	seq     int
	records []*entities.VinylRecord

	listCalls   int
	searchCalls int
}

func newMemRecordRepo() *memRecordRepo {
	return &memRecordRepo{}
}

func (r *memRecordRepo) Create(_ context.Context, record *entities.VinylRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == "" {
		r.seq++
		record.ID = fmt.Sprintf("record-%d", r.seq)
	}
	r.records = append(r.records, record)
	return nil
}

func (r *memRecordRepo) FindByID(_ context.Context, id string) (*entities.VinylRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, record := range r.records {
		if record.ID == id {
			return record, nil
		}
	}
	return nil, nil
}

func (r *memRecordRepo) FindByNameAndAuthor(_ context.Context, name, authorName string) (*entities.VinylRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, record := range r.records {
		if record.Name == name && record.AuthorName == authorName {
			return record, nil
		}
	}
	return nil, nil
}

func (r *memRecordRepo) Update(_ context.Context, record *entities.VinylRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, current := range r.records {
		if current.ID == record.ID {
			r.records[i] = record
			return nil
		}
	}
	return domainerrors.ErrRecordNotFound
}

func (r *memRecordRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, record := range r.records {
		if record.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return domainerrors.ErrRecordNotFound
}

func (r *memRecordRepo) List(_ context.Context, page, limit int) ([]*entities.VinylRecord, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listCalls++
	return paginate(r.records, page, limit), int64(len(r.records)), nil
}

func (r *memRecordRepo) Search(_ context.Context, filters repositories.SearchFilters) ([]*entities.VinylRecord, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.searchCalls++

	var matched []*entities.VinylRecord
	term := strings.ToLower(filters.Term)
	for _, record := range r.records {
		if term == "" ||
			strings.Contains(strings.ToLower(record.Name), term) ||
			strings.Contains(strings.ToLower(record.AuthorName), term) {
			matched = append(matched, record)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		var less bool
		switch filters.SortBy {
		case repositories.SortByPrice:
			less = matched[i].Price < matched[j].Price
		case repositories.SortByAuthorName:
			less = matched[i].AuthorName < matched[j].AuthorName
		default:
			less = matched[i].Name < matched[j].Name
		}
		if filters.Order == repositories.OrderDesc {
			return !less
		}
		return less
	})

	return paginate(matched, filters.Page, filters.Limit), int64(len(matched)), nil
}

func paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return nil
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// memReviewRepo é uma implementação em memória de repositories.ReviewRepository
type memReviewRepo struct {
	mu      sync.Mutex
	seq     int
	reviews []*entities.Review

	createCalls int
}

func newMemReviewRepo() *memReviewRepo {
	return &memReviewRepo{}
}

func (r *memReviewRepo) Create(_ context.Context, review *entities.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.createCalls++
	if review.ID == "" {
		r.seq++
		review.ID = fmt.Sprintf("review-%d", r.seq)
	}
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *memReviewRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, review := range r.reviews {
		if review.ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return domainerrors.ErrReviewNotFound
}

func (r *memReviewRepo) ListByRecord(_ context.Context, recordID string, page, limit int) ([]*entities.Review, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entities.Review
	for _, review := range r.reviews {
		if review.VinylRecordID == recordID {
			matched = append(matched, review)
		}
	}
	return paginate(matched, page, limit), int64(len(matched)), nil
}

func (r *memReviewRepo) ListByUser(_ context.Context, userID string) ([]*entities.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entities.Review
	for _, review := range r.reviews {
		if review.UserID == userID {
			matched = append(matched, review)
		}
	}
	return matched, nil
}

// memPurchaseRepo é uma implementação em memória de repositories.PurchaseRepository.
// createErr permite simular a corrida em que o índice único rejeita a
// inserção mesmo após um existence check negativo.
type memPurchaseRepo struct {
	mu        sync.Mutex
	seq       int
	purchases []*entities.Purchase

	createErr error
}

func newMemPurchaseRepo() *memPurchaseRepo {
	return &memPurchaseRepo{}
}

func (r *memPurchaseRepo) Create(_ context.Context, purchase *entities.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}

	for _, existing := range r.purchases {
		if existing.SessionID == purchase.SessionID {
			return domainerrors.ErrDuplicatePurchase
		}
	}

	r.seq++
	purchase.ID = fmt.Sprintf("purchase-%d", r.seq)
	r.purchases = append(r.purchases, purchase)
	return nil
}

func (r *memPurchaseRepo) FindBySessionID(_ context.Context, sessionID string) (*entities.Purchase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, purchase := range r.purchases {
		if purchase.SessionID == sessionID {
			return purchase, nil
		}
	}
	return nil, nil
}

func (r *memPurchaseRepo) ListByUser(_ context.Context, userID string) ([]*entities.Purchase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entities.Purchase
	for _, purchase := range r.purchases {
		if purchase.UserID == userID {
			matched = append(matched, purchase)
		}
	}
	return matched, nil
}

// fakeUow executa a função diretamente, sem transação real
type fakeUow struct{}

func (fakeUow) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUow) Commit(context.Context) error                       { return nil }
func (fakeUow) Rollback(context.Context) error                     { return nil }

func (fakeUow) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// fakeGateway é um ports.PaymentGateway controlável pelos testes
type fakeGateway struct {
	session   *ports.CheckoutSession
	createErr error

	event     *ports.WebhookEvent
	verifyErr error

	lastInput   ports.CheckoutInput
	createCalls int
}

func (g *fakeGateway) CreateCheckoutSession(_ context.Context, input ports.CheckoutInput) (*ports.CheckoutSession, error) {
	g.createCalls++
	g.lastInput = input
	if g.createErr != nil {
		return nil, g.createErr
	}
	return g.session, nil
}

func (g *fakeGateway) VerifyWebhook([]byte, string) (*ports.WebhookEvent, error) {
	if g.verifyErr != nil {
		return nil, g.verifyErr
	}
	return g.event, nil
}

// fakeMailer registra os emails enviados
type fakeMailer struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (m *fakeMailer) SendPurchaseConfirmation(to, recordName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to+":"+recordName)
	return nil
}

// fakeSource é um ports.CatalogSource com releases fixos
type fakeSource struct {
	releases []ports.ExternalRelease
	err      error
}

func (s *fakeSource) FetchRandomReleases(_ context.Context, limit int) ([]ports.ExternalRelease, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit < len(s.releases) {
		return s.releases[:limit], nil
	}
	return s.releases, nil
}
