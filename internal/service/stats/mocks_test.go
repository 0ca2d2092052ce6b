package stats

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/laporkota/backend/internal/domain"
)

var _ statsRepo = &statsRepoMock{}

type statsRepoMock struct {
	StatusGroupCountsFunc    func(ctx context.Context) ([]domain.StatusGroupCount, error)
	CategoryDistributionFunc func(ctx context.Context) ([]domain.CategoryCount, error)
	DailySeriesFunc          func(ctx context.Context, days int) ([]domain.SeriesBucket, error)
	MonthlySeriesFunc        func(ctx context.Context, year int) ([]domain.SeriesBucket, error)
	AgencyBudgetFunc         func(ctx context.Context, agencyID uuid.UUID) (domain.AgencyBudget, error)

	calls struct {
		StatusGroupCounts    []struct{}
		CategoryDistribution []struct{}
		DailySeries          []struct {
			Days int
		}
		MonthlySeries []struct {
			Year int
		}
		AgencyBudget []struct {
			AgencyID uuid.UUID
		}
	}
	lockStatusGroupCounts    sync.RWMutex
	lockCategoryDistribution sync.RWMutex
	lockDailySeries          sync.RWMutex
	lockMonthlySeries        sync.RWMutex
	lockAgencyBudget         sync.RWMutex
}

func (mock *statsRepoMock) StatusGroupCounts(ctx context.Context) ([]domain.StatusGroupCount, error) {
	if mock.StatusGroupCountsFunc == nil {
		panic("statsRepoMock.StatusGroupCountsFunc: method is nil but statsRepo.StatusGroupCounts was just called")
	}
	mock.lockStatusGroupCounts.Lock()
	mock.calls.StatusGroupCounts = append(mock.calls.StatusGroupCounts, struct{}{})
	mock.lockStatusGroupCounts.Unlock()
	return mock.StatusGroupCountsFunc(ctx)
}

func (mock *statsRepoMock) StatusGroupCountsCalls() []struct{} {
	mock.lockStatusGroupCounts.RLock()
	calls := mock.calls.StatusGroupCounts
	mock.lockStatusGroupCounts.RUnlock()
	return calls
}

func (mock *statsRepoMock) CategoryDistribution(ctx context.Context) ([]domain.CategoryCount, error) {
	if mock.CategoryDistributionFunc == nil {
		panic("statsRepoMock.CategoryDistributionFunc: method is nil but statsRepo.CategoryDistribution was just called")
	}
	mock.lockCategoryDistribution.Lock()
	mock.calls.CategoryDistribution = append(mock.calls.CategoryDistribution, struct{}{})
	mock.lockCategoryDistribution.Unlock()
	return mock.CategoryDistributionFunc(ctx)
}

func (mock *statsRepoMock) CategoryDistributionCalls() []struct{} {
	mock.lockCategoryDistribution.RLock()
	calls := mock.calls.CategoryDistribution
	mock.lockCategoryDistribution.RUnlock()
	return calls
}

func (mock *statsRepoMock) DailySeries(ctx context.Context, days int) ([]domain.SeriesBucket, error) {
	if mock.DailySeriesFunc == nil {
		panic("statsRepoMock.DailySeriesFunc: method is nil but statsRepo.DailySeries was just called")
	}
	callInfo := struct{ Days int }{Days: days}
	mock.lockDailySeries.Lock()
	mock.calls.DailySeries = append(mock.calls.DailySeries, callInfo)
	mock.lockDailySeries.Unlock()
	return mock.DailySeriesFunc(ctx, days)
}

func (mock *statsRepoMock) DailySeriesCalls() []struct{ Days int } {
	mock.lockDailySeries.RLock()
	calls := mock.calls.DailySeries
	mock.lockDailySeries.RUnlock()
	return calls
}

func (mock *statsRepoMock) MonthlySeries(ctx context.Context, year int) ([]domain.SeriesBucket, error) {
	if mock.MonthlySeriesFunc == nil {
		panic("statsRepoMock.MonthlySeriesFunc: method is nil but statsRepo.MonthlySeries was just called")
	}
	callInfo := struct{ Year int }{Year: year}
	mock.lockMonthlySeries.Lock()
	mock.calls.MonthlySeries = append(mock.calls.MonthlySeries, callInfo)
	mock.lockMonthlySeries.Unlock()
	return mock.MonthlySeriesFunc(ctx, year)
}

func (mock *statsRepoMock) MonthlySeriesCalls() []struct{ Year int } {
	mock.lockMonthlySeries.RLock()
	calls := mock.calls.MonthlySeries
	mock.lockMonthlySeries.RUnlock()
	return calls
}

func (mock *statsRepoMock) AgencyBudget(ctx context.Context, agencyID uuid.UUID) (domain.AgencyBudget, error) {
	if mock.AgencyBudgetFunc == nil {
		panic("statsRepoMock.AgencyBudgetFunc: method is nil but statsRepo.AgencyBudget was just called")
	}
	callInfo := struct{ AgencyID uuid.UUID }{AgencyID: agencyID}
	mock.lockAgencyBudget.Lock()
	mock.calls.AgencyBudget = append(mock.calls.AgencyBudget, callInfo)
	mock.lockAgencyBudget.Unlock()
	return mock.AgencyBudgetFunc(ctx, agencyID)
}

func (mock *statsRepoMock) AgencyBudgetCalls() []struct{ AgencyID uuid.UUID } {
	mock.lockAgencyBudget.RLock()
	calls := mock.calls.AgencyBudget
	mock.lockAgencyBudget.RUnlock()
	return calls
}
