package integration

import (
	"context"
	"sort"
	"sync"
	"time"

	"family-wallet-service/internal/core/domain"
	"family-wallet-service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]*domain.Wallet
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[uuid.UUID]*domain.Wallet)}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *w
	r.wallets[w.ID] = &cp
	return nil
}

func (r *inMemoryWalletRepo) GetByChildID(ctx context.Context, childID uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.wallets {
		if w.ChildID == childID {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) GetByChildIDForUpdate(ctx context.Context, tx pgx.Tx, childID uuid.UUID) (*domain.Wallet, error) {
	return r.GetByChildID(ctx, childID)
}

func (r *inMemoryWalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) UpdateBalances(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance, totalCredited, totalDebited int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return pgx.ErrNoRows
	}
	w.Balance = balance
	w.TotalCredited = totalCredited
	w.TotalDebited = totalDebited
	w.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryWalletRepo) SetActive(ctx context.Context, childID uuid.UUID, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.wallets {
		if w.ChildID == childID {
			w.Active = active
			return nil
		}
	}
	return pgx.ErrNoRows
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu      sync.RWMutex
	entries []domain.Transaction
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{}
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.WalletID == t.WalletID && e.ReferenceID == t.ReferenceID {
			return &pgconn.PgError{Code: "23505", ConstraintName: "transactions_wallet_reference_key"}
		}
	}
	r.entries = append(r.entries, *t)
	return nil
}

func (r *inMemoryTransactionRepo) GetByReference(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, referenceID string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.entries {
		if r.entries[i].WalletID == walletID && r.entries[i].ReferenceID == referenceID {
			cp := r.entries[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryTransactionRepo) SumPurchaseDebitsSince(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, since time.Time) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var sum int64
	for i := range r.entries {
		e := &r.entries[i]
		if e.WalletID == walletID && e.Kind == domain.TransactionKindDebit &&
			e.Source == domain.TransactionSourcePurchase && !e.CreatedAt.Before(since) {
			sum += e.Amount
		}
	}
	return sum, nil
}

func (r *inMemoryTransactionRepo) List(ctx context.Context, walletID uuid.UUID, page, pageSize int) ([]domain.Transaction, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	var all []domain.Transaction
	for i := range r.entries {
		if r.entries[i].WalletID == walletID {
			all = append(all, r.entries[i])
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := int64(len(all))
	start := (page - 1) * pageSize
	if start >= len(all) {
		return []domain.Transaction{}, total, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

// --- In-Memory Approval Settings Repo ---

type inMemorySettingsRepo struct {
	mu       sync.RWMutex
	settings map[uuid.UUID]*domain.ApprovalSettings
}

func newInMemorySettingsRepo() *inMemorySettingsRepo {
	return &inMemorySettingsRepo{settings: make(map[uuid.UUID]*domain.ApprovalSettings)}
}

func (r *inMemorySettingsRepo) Get(ctx context.Context, childID uuid.UUID) (*domain.ApprovalSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.settings[childID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *inMemorySettingsRepo) Upsert(ctx context.Context, s *domain.ApprovalSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.settings[s.ChildID] = &cp
	return nil
}

// --- In-Memory Purchase Request Repo ---

type inMemoryRequestRepo struct {
	mu       sync.RWMutex
	requests map[uuid.UUID]*domain.PurchaseRequest
}

func newInMemoryRequestRepo() *inMemoryRequestRepo {
	return &inMemoryRequestRepo{requests: make(map[uuid.UUID]*domain.PurchaseRequest)}
}

func (r *inMemoryRequestRepo) Create(ctx context.Context, tx pgx.Tx, req *domain.PurchaseRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *inMemoryRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, nil
	}
	cp := *req
	return &cp, nil
}

func (r *inMemoryRequestRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.PurchaseRequest, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryRequestRepo) MarkDecided(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.RequestStatus, decidedBy string, reason *string, decidedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok || req.Status != domain.RequestStatusPending {
		return false, nil
	}
	req.Status = status
	req.DecidedBy = &decidedBy
	req.RejectionReason = reason
	req.DecidedAt = &decidedAt
	return true, nil
}

func (r *inMemoryRequestRepo) Expire(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok || req.Status != domain.RequestStatusPending || now.Before(req.ExpiresAt) {
		return false, nil
	}
	decidedBy := domain.DecidedBySystem
	req.Status = domain.RequestStatusExpired
	req.DecidedBy = &decidedBy
	req.DecidedAt = &now
	return true, nil
}

func (r *inMemoryRequestRepo) List(ctx context.Context, params ports.PurchaseListParams) ([]domain.PurchaseRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.PurchaseRequest
	for _, req := range r.requests {
		if params.ChildID != nil && req.ChildID != *params.ChildID {
			continue
		}
		if params.Status != nil && req.Status != *params.Status {
			continue
		}
		out = append(out, *req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	limit := params.Limit
	if limit < 1 || limit > 200 {
		limit = 50
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *inMemoryRequestRepo) ListExpirable(ctx context.Context, now time.Time, limit int) ([]domain.PurchaseRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.PurchaseRequest
	for _, req := range r.requests {
		if req.Status == domain.RequestStatusPending && !now.Before(req.ExpiresAt) {
			out = append(out, *req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExpiresAt.Before(out[j].ExpiresAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- In-Memory Payment Session Repo ---

type inMemorySessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*domain.PaymentSession
}

func newInMemorySessionRepo() *inMemorySessionRepo {
	return &inMemorySessionRepo{sessions: make(map[string]*domain.PaymentSession)}
}

func (r *inMemorySessionRepo) Create(ctx context.Context, s *domain.PaymentSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.sessions[s.ID] = &cp
	return nil
}

func (r *inMemorySessionRepo) GetByID(ctx context.Context, id string) (*domain.PaymentSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *inMemorySessionRepo) MarkResolved(ctx context.Context, id string, status domain.SessionStatus, reason *domain.FailureReason, resolvedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || s.Status != domain.SessionStatusPending {
		return false, nil
	}
	s.Status = status
	s.FailureReason = reason
	s.ResolvedAt = &resolvedAt
	return true, nil
}

func (r *inMemorySessionRepo) MarkReconciled(ctx context.Context, id string, resolvedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || s.Status != domain.SessionStatusFailed ||
		s.FailureReason == nil || *s.FailureReason != domain.FailureReasonTimeout {
		return false, nil
	}
	s.Status = domain.SessionStatusCompleted
	s.FailureReason = nil
	s.ResolvedAt = &resolvedAt
	return true, nil
}

func (r *inMemorySessionRepo) ListPending(ctx context.Context, limit int) ([]domain.PaymentSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.PaymentSession
	for _, s := range r.sessions {
		if s.Status == domain.SessionStatusPending {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *inMemorySessionRepo) ListTimedOut(ctx context.Context, since time.Time, limit int) ([]domain.PaymentSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.PaymentSession
	for _, s := range r.sessions {
		if s.TimedOut() && !s.CreatedAt.Before(since) {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- In-Memory Transactor ---

// lockingTransactor serializes transactions on a single mutex, standing in
// for the row locks the postgres repos take with SELECT ... FOR UPDATE.
type lockingTransactor struct {
	mu sync.Mutex
}

func newLockingTransactor() *lockingTransactor {
	return &lockingTransactor{}
}

func (t *lockingTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &lockedTx{release: &t.mu}, nil
}

// lockedTx holds the transactor lock until Commit or Rollback, whichever
// comes first. The deferred Rollback after a Commit is a no-op.
type lockedTx struct {
	release *sync.Mutex
	once    sync.Once
}

func (t *lockedTx) unlock() {
	t.once.Do(func() { t.release.Unlock() })
}

func (t *lockedTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *lockedTx) Commit(ctx context.Context) error          { t.unlock(); return nil }
func (t *lockedTx) Rollback(ctx context.Context) error        { t.unlock(); return nil }
func (t *lockedTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *lockedTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *lockedTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *lockedTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *lockedTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *lockedTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *lockedTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *lockedTx) Conn() *pgx.Conn { return nil }

// --- Fake Payment Gateway ---

// fakeGateway scripts the provider's responses per checkout id.
type fakeGateway struct {
	mu       sync.Mutex
	statuses map[string]ports.GatewayStatus
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{statuses: make(map[string]ports.GatewayStatus)}
}

func (g *fakeGateway) InitiateSTKPush(ctx context.Context, req ports.STKPushRequest) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := "ws_CO_" + time.Now().UTC().Format("20060102") + "_" + uuid.NewString()[:8]
	if _, ok := g.statuses[id]; !ok {
		g.statuses[id] = ports.GatewayStatusPending
	}
	return id, nil
}

func (g *fakeGateway) QueryStatus(ctx context.Context, checkoutRequestID string) (ports.GatewayStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	status, ok := g.statuses[checkoutRequestID]
	if !ok {
		return ports.GatewayStatusFailed, nil
	}
	return status, nil
}

func (g *fakeGateway) resolve(id string, status ports.GatewayStatus) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.statuses[id] = status
}

