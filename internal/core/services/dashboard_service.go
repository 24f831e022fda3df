package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/biz_records_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/biz_records_app/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	BaseService
	productRepo   portsrepo.ProductReader
	assetRepo     portsrepo.AssetReader
	expenseRepo   portsrepo.ExpenseReader
	incomeRepo    portsrepo.IncomeReader
	liabilityRepo portsrepo.LiabilityReader
	cache         portsrepo.SummaryCache
	cacheTTL      time.Duration
}

// NewDashboardService creates the summary service. A nil cache disables caching.
func NewDashboardService(repos portsrepo.RepositoryProvider, cache portsrepo.SummaryCache, cacheTTL time.Duration, opts ...ServiceOption) portssvc.DashboardSvc {
	svc := &dashboardService{
		productRepo:   repos.ProductRepo,
		assetRepo:     repos.AssetRepo,
		expenseRepo:   repos.ExpenseRepo,
		incomeRepo:    repos.IncomeRepo,
		liabilityRepo: repos.LiabilityRepo,
		cache:         cache,
		cacheTTL:      cacheTTL,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

func (s *dashboardService) Summary(ctx context.Context, fresh bool) (*domain.Summary, error) {
	if !fresh && s.cache != nil {
		cached, err := s.cache.GetSummary(ctx)
		if err != nil {
			s.LogError(ctx, err, "Failed to read cached summary")
		} else if cached != nil {
			s.LogDebug(ctx, "Serving cached summary", slog.Time("generated_at", cached.GeneratedAt))
			return cached, nil
		}
	}

	var (
		all         domain.ListOptions
		products    []domain.Product
		assets      []domain.Asset
		expenses    []domain.Expense
		incomes     []domain.Income
		liabilities []domain.Liability
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = s.productRepo.ListProducts(gctx, all)
		return err
	})
	g.Go(func() (err error) {
		assets, err = s.assetRepo.ListAssets(gctx, all)
		return err
	})
	g.Go(func() (err error) {
		expenses, err = s.expenseRepo.ListExpenses(gctx, all)
		return err
	})
	g.Go(func() (err error) {
		incomes, err = s.incomeRepo.ListIncomes(gctx, all)
		return err
	})
	g.Go(func() (err error) {
		liabilities, err = s.liabilityRepo.ListLiabilities(gctx, all)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load records for summary")
		return nil, fmt.Errorf("failed to build summary: %w", err)
	}

	summary := domain.Summarize(products, assets, expenses, incomes, liabilities)
	summary.GeneratedAt = s.Now()

	if s.cache != nil {
		if err := s.cache.SetSummary(ctx, summary, s.cacheTTL); err != nil {
			s.LogError(ctx, err, "Failed to cache summary")
		}
	}

	return &summary, nil
}
