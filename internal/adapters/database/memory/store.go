// Package memory is a process-local record store used when no database is
// configured. Every method takes the store lock, so uniqueness checks and
// writes are atomic with respect to each other.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/biz_records_app/internal/core/ports/repositories"
	"github.com/SscSPs/biz_records_app/internal/utils/pagination"
)

// Store keeps every collection in maps keyed by primary ID.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	assets      map[string]domain.Asset
	liabilities map[string]domain.Liability
	incomes     map[string]domain.Income
	expenses    map[string]domain.Expense
	products    map[string]domain.Product
	orders      map[string]domain.Order
	suppliers   map[string]domain.Supplier
	promotions  map[string]domain.Promotion
	customers   map[string]domain.Customer
	inquiries   map[string]domain.Inquiry
	suggestions map[string]domain.Suggestion
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		now:         time.Now,
		assets:      map[string]domain.Asset{},
		liabilities: map[string]domain.Liability{},
		incomes:     map[string]domain.Income{},
		expenses:    map[string]domain.Expense{},
		products:    map[string]domain.Product{},
		orders:      map[string]domain.Order{},
		suppliers:   map[string]domain.Supplier{},
		promotions:  map[string]domain.Promotion{},
		customers:   map[string]domain.Customer{},
		inquiries:   map[string]domain.Inquiry{},
		suggestions: map[string]domain.Suggestion{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewRepositoryProvider exposes one store through every repository port.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AssetRepo:      s,
		LiabilityRepo:  s,
		IncomeRepo:     s,
		ExpenseRepo:    s,
		ProductRepo:    s,
		OrderRepo:      s,
		SupplierRepo:   s,
		PromotionRepo:  s,
		CustomerRepo:   s,
		InquiryRepo:    s,
		SuggestionRepo: s,
	}
}

var (
	_ portsrepo.AssetRepositoryFacade      = (*Store)(nil)
	_ portsrepo.LiabilityRepositoryFacade  = (*Store)(nil)
	_ portsrepo.IncomeRepositoryFacade     = (*Store)(nil)
	_ portsrepo.ExpenseRepositoryFacade    = (*Store)(nil)
	_ portsrepo.ProductRepositoryFacade    = (*Store)(nil)
	_ portsrepo.OrderRepositoryFacade      = (*Store)(nil)
	_ portsrepo.SupplierRepositoryFacade   = (*Store)(nil)
	_ portsrepo.PromotionRepositoryFacade  = (*Store)(nil)
	_ portsrepo.CustomerRepositoryFacade   = (*Store)(nil)
	_ portsrepo.InquiryRepositoryFacade    = (*Store)(nil)
	_ portsrepo.SuggestionRepositoryFacade = (*Store)(nil)
)

func (s *Store) read(ctx context.Context) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	return s.mu.RUnlock, nil
}

func (s *Store) write(ctx context.Context) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	return s.mu.Unlock, nil
}

// created resets timestamps to the store clock for a new record.
func (s *Store) created() domain.Timestamps {
	now := s.now().UTC()
	return domain.Timestamps{CreatedAt: now, UpdatedAt: now}
}

// updated keeps the original creation time and moves UpdatedAt forward.
func (s *Store) updated(prev domain.Timestamps) domain.Timestamps {
	return domain.Timestamps{CreatedAt: prev.CreatedAt, UpdatedAt: s.now().UTC()}
}

// page sorts rows newest first (or oldest first when opts.Ascending) by key,
// breaking ties on creation time then ID, and applies limit/offset.
func page[T any](rows map[string]T, key func(T) (time.Time, domain.Timestamps, string), opts domain.ListOptions, clone func(T) T) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, clone(r))
	}
	slices.SortFunc(out, func(a, b T) int {
		ka, ta, ida := key(a)
		kb, tb, idb := key(b)
		c := ka.Compare(kb)
		if c == 0 {
			c = ta.CreatedAt.Compare(tb.CreatedAt)
		}
		if c == 0 {
			c = strings.Compare(ida, idb)
		}
		if !opts.Ascending {
			c = -c
		}
		return c
	})
	start, end := pagination.Window(len(out), opts)
	return out[start:end]
}

// taken reports whether any row other than selfID satisfies match.
func taken[T any](rows map[string]T, selfID string, match func(T) bool) bool {
	for id, r := range rows {
		if id != selfID && match(r) {
			return true
		}
	}
	return false
}

func same(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func keep[T any](v T) T { return v }

func ptr[T any](v T) *T { return &v }
