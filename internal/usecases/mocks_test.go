package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"tradedesk.backend/internal/domain/entities"
	"tradedesk.backend/internal/infrastructure/assistant"
	"tradedesk.backend/pkg/redis"
)

// Mock AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entities.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*entities.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateTheme(ctx context.Context, id uuid.UUID, theme entities.Theme) error {
	args := m.Called(ctx, id, theme)
	return args.Error(0)
}

func (m *MockAccountRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock SubscriberRepository
type MockSubscriberRepository struct {
	mock.Mock
}

func (m *MockSubscriberRepository) Create(ctx context.Context, s *entities.Subscriber) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSubscriberRepository) GetByID(ctx context.Context, id string) (*entities.Subscriber, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) List(ctx context.Context, filter entities.SubscriberFilter) ([]*entities.Subscriber, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) Update(ctx context.Context, s *entities.Subscriber) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSubscriberRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSubscriberRepository) GetExpiredActive(ctx context.Context, now time.Time, limit int) ([]*entities.Subscriber, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) ExpireSubscribers(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// Mock PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *entities.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id string) (*entities.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Payment), args.Error(1)
}

func (m *MockPaymentRepository) List(ctx context.Context) ([]*entities.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *entities.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock ReferralRepository
type MockReferralRepository struct {
	mock.Mock
}

func (m *MockReferralRepository) Create(ctx context.Context, r *entities.Referral) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReferralRepository) GetByID(ctx context.Context, id string) (*entities.Referral, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Referral), args.Error(1)
}

func (m *MockReferralRepository) List(ctx context.Context) ([]*entities.Referral, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Referral), args.Error(1)
}

func (m *MockReferralRepository) Update(ctx context.Context, r *entities.Referral) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReferralRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock IndicatorRepository
type MockIndicatorRepository struct {
	mock.Mock
}

func (m *MockIndicatorRepository) Create(ctx context.Context, ind *entities.Indicator) error {
	args := m.Called(ctx, ind)
	return args.Error(0)
}

func (m *MockIndicatorRepository) GetByID(ctx context.Context, id string) (*entities.Indicator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Indicator), args.Error(1)
}

func (m *MockIndicatorRepository) List(ctx context.Context) ([]*entities.Indicator, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Indicator), args.Error(1)
}

func (m *MockIndicatorRepository) Update(ctx context.Context, ind *entities.Indicator) error {
	args := m.Called(ctx, ind)
	return args.Error(0)
}

func (m *MockIndicatorRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock ConfirmationStore
type MockConfirmationStore struct {
	mock.Mock
}

func (m *MockConfirmationStore) Issue(ctx context.Context, resource, id, token string, ttl time.Duration) error {
	args := m.Called(ctx, resource, id, token, ttl)
	return args.Error(0)
}

func (m *MockConfirmationStore) Consume(ctx context.Context, resource, id, token string) (bool, error) {
	args := m.Called(ctx, resource, id, token)
	return args.Bool(0), args.Error(1)
}

// Mock PasswordResetStore
type MockPasswordResetStore struct {
	mock.Mock
}

func (m *MockPasswordResetStore) Save(ctx context.Context, reset *entities.PasswordReset, ttl time.Duration) error {
	args := m.Called(ctx, reset, ttl)
	return args.Error(0)
}

func (m *MockPasswordResetStore) Get(ctx context.Context, id string) (*entities.PasswordReset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PasswordReset), args.Error(1)
}

func (m *MockPasswordResetStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock SessionStore
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error {
	args := m.Called(ctx, sessionID, data, expiration)
	return args.Error(0)
}

func (m *MockSessionStore) GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*redis.SessionData), args.Error(1)
}

func (m *MockSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// Mock AssistantClient
type MockAssistantClient struct {
	mock.Mock
}

func (m *MockAssistantClient) Generate(ctx context.Context, history []assistant.Turn, prompt string) (string, error) {
	args := m.Called(ctx, history, prompt)
	return args.String(0), args.Error(1)
}

// memViewStore is an in-memory ViewStateStore
type memViewStore struct {
	states map[string]entities.ViewState
	err    error
}

func newMemViewStore() *memViewStore {
	return &memViewStore{states: map[string]entities.ViewState{}}
}

func (s *memViewStore) Get(_ context.Context, accountID uuid.UUID, scene string) (*entities.ViewState, error) {
	if s.err != nil {
		return nil, s.err
	}
	st := s.states[accountID.String()+":"+scene]
	return &st, nil
}

func (s *memViewStore) Save(_ context.Context, accountID uuid.UUID, scene string, state *entities.ViewState) error {
	if s.err != nil {
		return s.err
	}
	s.states[accountID.String()+":"+scene] = *state
	return nil
}

// memTranscriptStore is an in-memory TranscriptStore
type memTranscriptStore struct {
	entries map[uuid.UUID][]entities.TranscriptEntry
}

func newMemTranscriptStore() *memTranscriptStore {
	return &memTranscriptStore{entries: map[uuid.UUID][]entities.TranscriptEntry{}}
}

func (s *memTranscriptStore) Append(_ context.Context, accountID uuid.UUID, entries ...entities.TranscriptEntry) error {
	s.entries[accountID] = append(s.entries[accountID], entries...)
	return nil
}

func (s *memTranscriptStore) List(_ context.Context, accountID uuid.UUID) ([]entities.TranscriptEntry, error) {
	return append([]entities.TranscriptEntry(nil), s.entries[accountID]...), nil
}

func (s *memTranscriptStore) Clear(_ context.Context, accountID uuid.UUID) error {
	delete(s.entries, accountID)
	return nil
}
