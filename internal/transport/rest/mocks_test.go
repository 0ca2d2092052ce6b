package rest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/laporkota/backend/internal/domain"
	"github.com/laporkota/backend/internal/service/auth"
	"github.com/laporkota/backend/internal/service/disposition"
	"github.com/laporkota/backend/internal/service/report"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	RegisterFunc func(ctx context.Context, input auth.RegisterInput) (*auth.Result, error)
	LoginFunc    func(ctx context.Context, input auth.LoginInput) (*auth.Result, error)

	calls struct {
		Register []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
	}
	lockRegister sync.RWMutex
	lockLogin    sync.RWMutex
}

func (mock *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.Result, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input auth.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.Result, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

var _ reportService = &reportServiceMock{}

type reportServiceMock struct {
	CreateFunc  func(ctx context.Context, input report.CreateInput) (*domain.Report, error)
	GetFunc     func(ctx context.Context, id uuid.UUID) (*report.Detail, error)
	ListFunc    func(ctx context.Context, input report.ListInput) ([]domain.Report, error)
	SupportFunc func(ctx context.Context, reportID uuid.UUID) error
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input report.CreateInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input report.ListInput
		}
		Support []struct {
			Ctx      context.Context
			ReportID uuid.UUID
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate  sync.RWMutex
	lockGet     sync.RWMutex
	lockList    sync.RWMutex
	lockSupport sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *reportServiceMock) Create(ctx context.Context, input report.CreateInput) (*domain.Report, error) {
	if mock.CreateFunc == nil {
		panic("reportServiceMock.CreateFunc: method is nil but reportService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input report.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *reportServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input report.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reportServiceMock) Get(ctx context.Context, id uuid.UUID) (*report.Detail, error) {
	if mock.GetFunc == nil {
		panic("reportServiceMock.GetFunc: method is nil but reportService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *reportServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *reportServiceMock) List(ctx context.Context, input report.ListInput) ([]domain.Report, error) {
	if mock.ListFunc == nil {
		panic("reportServiceMock.ListFunc: method is nil but reportService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input report.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *reportServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input report.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *reportServiceMock) Support(ctx context.Context, reportID uuid.UUID) error {
	if mock.SupportFunc == nil {
		panic("reportServiceMock.SupportFunc: method is nil but reportService.Support was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ReportID uuid.UUID
	}{Ctx: ctx, ReportID: reportID}
	mock.lockSupport.Lock()
	mock.calls.Support = append(mock.calls.Support, callInfo)
	mock.lockSupport.Unlock()
	return mock.SupportFunc(ctx, reportID)
}

func (mock *reportServiceMock) SupportCalls() []struct {
	Ctx      context.Context
	ReportID uuid.UUID
} {
	mock.lockSupport.RLock()
	calls := mock.calls.Support
	mock.lockSupport.RUnlock()
	return calls
}

func (mock *reportServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("reportServiceMock.DeleteFunc: method is nil but reportService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *reportServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ dispositionService = &dispositionServiceMock{}

type dispositionServiceMock struct {
	DisposeFunc        func(ctx context.Context, input disposition.DisposeInput) (*domain.Report, error)
	RejectFunc         func(ctx context.Context, input disposition.RejectInput) (*domain.Report, error)
	VerifyFunc         func(ctx context.Context, input disposition.VerifyInput) (*domain.Report, error)
	RejectByAgencyFunc func(ctx context.Context, input disposition.RejectByAgencyInput) (*domain.Report, error)
	SetBudgetFunc      func(ctx context.Context, input disposition.SetBudgetInput) (*domain.Report, error)
	AddSpendFunc       func(ctx context.Context, input disposition.AddSpendInput) (*domain.Report, error)
	CompleteFunc       func(ctx context.Context, input disposition.CompleteInput) (*domain.Report, error)

	calls struct {
		Dispose []struct {
			Ctx   context.Context
			Input disposition.DisposeInput
		}
		Reject []struct {
			Ctx   context.Context
			Input disposition.RejectInput
		}
		Verify []struct {
			Ctx   context.Context
			Input disposition.VerifyInput
		}
		RejectByAgency []struct {
			Ctx   context.Context
			Input disposition.RejectByAgencyInput
		}
		SetBudget []struct {
			Ctx   context.Context
			Input disposition.SetBudgetInput
		}
		AddSpend []struct {
			Ctx   context.Context
			Input disposition.AddSpendInput
		}
		Complete []struct {
			Ctx   context.Context
			Input disposition.CompleteInput
		}
	}
	lockDispose        sync.RWMutex
	lockReject         sync.RWMutex
	lockVerify         sync.RWMutex
	lockRejectByAgency sync.RWMutex
	lockSetBudget      sync.RWMutex
	lockAddSpend       sync.RWMutex
	lockComplete       sync.RWMutex
}

func (mock *dispositionServiceMock) Dispose(ctx context.Context, input disposition.DisposeInput) (*domain.Report, error) {
	if mock.DisposeFunc == nil {
		panic("dispositionServiceMock.DisposeFunc: method is nil but dispositionService.Dispose was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input disposition.DisposeInput
	}{Ctx: ctx, Input: input}
	mock.lockDispose.Lock()
	mock.calls.Dispose = append(mock.calls.Dispose, callInfo)
	mock.lockDispose.Unlock()
	return mock.DisposeFunc(ctx, input)
}

func (mock *dispositionServiceMock) DisposeCalls() []struct {
	Ctx   context.Context
	Input disposition.DisposeInput
} {
	mock.lockDispose.RLock()
	calls := mock.calls.Dispose
	mock.lockDispose.RUnlock()
	return calls
}

func (mock *dispositionServiceMock) Reject(ctx context.Context, input disposition.RejectInput) (*domain.Report, error) {
	if mock.RejectFunc == nil {
		panic("dispositionServiceMock.RejectFunc: method is nil but dispositionService.Reject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input disposition.RejectInput
	}{Ctx: ctx, Input: input}
	mock.lockReject.Lock()
	mock.calls.Reject = append(mock.calls.Reject, callInfo)
	mock.lockReject.Unlock()
	return mock.RejectFunc(ctx, input)
}

func (mock *dispositionServiceMock) RejectCalls() []struct {
	Ctx   context.Context
	Input disposition.RejectInput
} {
	mock.lockReject.RLock()
	calls := mock.calls.Reject
	mock.lockReject.RUnlock()
	return calls
}

func (mock *dispositionServiceMock) Verify(ctx context.Context, input disposition.VerifyInput) (*domain.Report, error) {
	if mock.VerifyFunc == nil {
		panic("dispositionServiceMock.VerifyFunc: method is nil but dispositionService.Verify was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input disposition.VerifyInput
	}{Ctx: ctx, Input: input}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(ctx, input)
}

func (mock *dispositionServiceMock) VerifyCalls() []struct {
	Ctx   context.Context
	Input disposition.VerifyInput
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}

func (mock *dispositionServiceMock) RejectByAgency(ctx context.Context, input disposition.RejectByAgencyInput) (*domain.Report, error) {
	if mock.RejectByAgencyFunc == nil {
		panic("dispositionServiceMock.RejectByAgencyFunc: method is nil but dispositionService.RejectByAgency was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input disposition.RejectByAgencyInput
	}{Ctx: ctx, Input: input}
	mock.lockRejectByAgency.Lock()
	mock.calls.RejectByAgency = append(mock.calls.RejectByAgency, callInfo)
	mock.lockRejectByAgency.Unlock()
	return mock.RejectByAgencyFunc(ctx, input)
}

func (mock *dispositionServiceMock) RejectByAgencyCalls() []struct {
	Ctx   context.Context
	Input disposition.RejectByAgencyInput
} {
	mock.lockRejectByAgency.RLock()
	calls := mock.calls.RejectByAgency
	mock.lockRejectByAgency.RUnlock()
	return calls
}

func (mock *dispositionServiceMock) SetBudget(ctx context.Context, input disposition.SetBudgetInput) (*domain.Report, error) {
	if mock.SetBudgetFunc == nil {
		panic("dispositionServiceMock.SetBudgetFunc: method is nil but dispositionService.SetBudget was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input disposition.SetBudgetInput
	}{Ctx: ctx, Input: input}
	mock.lockSetBudget.Lock()
	mock.calls.SetBudget = append(mock.calls.SetBudget, callInfo)
	mock.lockSetBudget.Unlock()
	return mock.SetBudgetFunc(ctx, input)
}

func (mock *dispositionServiceMock) SetBudgetCalls() []struct {
	Ctx   context.Context
	Input disposition.SetBudgetInput
} {
	mock.lockSetBudget.RLock()
	calls := mock.calls.SetBudget
	mock.lockSetBudget.RUnlock()
	return calls
}

func (mock *dispositionServiceMock) AddSpend(ctx context.Context, input disposition.AddSpendInput) (*domain.Report, error) {
	if mock.AddSpendFunc == nil {
		panic("dispositionServiceMock.AddSpendFunc: method is nil but dispositionService.AddSpend was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input disposition.AddSpendInput
	}{Ctx: ctx, Input: input}
	mock.lockAddSpend.Lock()
	mock.calls.AddSpend = append(mock.calls.AddSpend, callInfo)
	mock.lockAddSpend.Unlock()
	return mock.AddSpendFunc(ctx, input)
}

func (mock *dispositionServiceMock) AddSpendCalls() []struct {
	Ctx   context.Context
	Input disposition.AddSpendInput
} {
	mock.lockAddSpend.RLock()
	calls := mock.calls.AddSpend
	mock.lockAddSpend.RUnlock()
	return calls
}

func (mock *dispositionServiceMock) Complete(ctx context.Context, input disposition.CompleteInput) (*domain.Report, error) {
	if mock.CompleteFunc == nil {
		panic("dispositionServiceMock.CompleteFunc: method is nil but dispositionService.Complete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input disposition.CompleteInput
	}{Ctx: ctx, Input: input}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, input)
}

func (mock *dispositionServiceMock) CompleteCalls() []struct {
	Ctx   context.Context
	Input disposition.CompleteInput
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}

var _ statsService = &statsServiceMock{}

type statsServiceMock struct {
	StatusGroupsFunc         func(ctx context.Context) ([]domain.StatusGroupCount, error)
	CategoryDistributionFunc func(ctx context.Context) ([]domain.CategoryCount, error)
	DailySeriesFunc          func(ctx context.Context, days int) ([]domain.SeriesBucket, error)
	MonthlySeriesFunc        func(ctx context.Context, year int) ([]domain.SeriesBucket, error)
	AgencyBudgetFunc         func(ctx context.Context, agencyID uuid.UUID) (domain.AgencyBudget, error)

	calls struct {
		StatusGroups []struct {
			Ctx context.Context
		}
		CategoryDistribution []struct {
			Ctx context.Context
		}
		DailySeries []struct {
			Ctx  context.Context
			Days int
		}
		MonthlySeries []struct {
			Ctx  context.Context
			Year int
		}
		AgencyBudget []struct {
			Ctx      context.Context
			AgencyID uuid.UUID
		}
	}
	lockStatusGroups         sync.RWMutex
	lockCategoryDistribution sync.RWMutex
	lockDailySeries          sync.RWMutex
	lockMonthlySeries        sync.RWMutex
	lockAgencyBudget         sync.RWMutex
}

func (mock *statsServiceMock) StatusGroups(ctx context.Context) ([]domain.StatusGroupCount, error) {
	if mock.StatusGroupsFunc == nil {
		panic("statsServiceMock.StatusGroupsFunc: method is nil but statsService.StatusGroups was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockStatusGroups.Lock()
	mock.calls.StatusGroups = append(mock.calls.StatusGroups, callInfo)
	mock.lockStatusGroups.Unlock()
	return mock.StatusGroupsFunc(ctx)
}

func (mock *statsServiceMock) CategoryDistribution(ctx context.Context) ([]domain.CategoryCount, error) {
	if mock.CategoryDistributionFunc == nil {
		panic("statsServiceMock.CategoryDistributionFunc: method is nil but statsService.CategoryDistribution was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockCategoryDistribution.Lock()
	mock.calls.CategoryDistribution = append(mock.calls.CategoryDistribution, callInfo)
	mock.lockCategoryDistribution.Unlock()
	return mock.CategoryDistributionFunc(ctx)
}

func (mock *statsServiceMock) DailySeries(ctx context.Context, days int) ([]domain.SeriesBucket, error) {
	if mock.DailySeriesFunc == nil {
		panic("statsServiceMock.DailySeriesFunc: method is nil but statsService.DailySeries was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Days int
	}{Ctx: ctx, Days: days}
	mock.lockDailySeries.Lock()
	mock.calls.DailySeries = append(mock.calls.DailySeries, callInfo)
	mock.lockDailySeries.Unlock()
	return mock.DailySeriesFunc(ctx, days)
}

func (mock *statsServiceMock) DailySeriesCalls() []struct {
	Ctx  context.Context
	Days int
} {
	mock.lockDailySeries.RLock()
	calls := mock.calls.DailySeries
	mock.lockDailySeries.RUnlock()
	return calls
}

func (mock *statsServiceMock) MonthlySeries(ctx context.Context, year int) ([]domain.SeriesBucket, error) {
	if mock.MonthlySeriesFunc == nil {
		panic("statsServiceMock.MonthlySeriesFunc: method is nil but statsService.MonthlySeries was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Year int
	}{Ctx: ctx, Year: year}
	mock.lockMonthlySeries.Lock()
	mock.calls.MonthlySeries = append(mock.calls.MonthlySeries, callInfo)
	mock.lockMonthlySeries.Unlock()
	return mock.MonthlySeriesFunc(ctx, year)
}

func (mock *statsServiceMock) MonthlySeriesCalls() []struct {
	Ctx  context.Context
	Year int
} {
	mock.lockMonthlySeries.RLock()
	calls := mock.calls.MonthlySeries
	mock.lockMonthlySeries.RUnlock()
	return calls
}

func (mock *statsServiceMock) AgencyBudget(ctx context.Context, agencyID uuid.UUID) (domain.AgencyBudget, error) {
	if mock.AgencyBudgetFunc == nil {
		panic("statsServiceMock.AgencyBudgetFunc: method is nil but statsService.AgencyBudget was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AgencyID uuid.UUID
	}{Ctx: ctx, AgencyID: agencyID}
	mock.lockAgencyBudget.Lock()
	mock.calls.AgencyBudget = append(mock.calls.AgencyBudget, callInfo)
	mock.lockAgencyBudget.Unlock()
	return mock.AgencyBudgetFunc(ctx, agencyID)
}

func (mock *statsServiceMock) AgencyBudgetCalls() []struct {
	Ctx      context.Context
	AgencyID uuid.UUID
} {
	mock.lockAgencyBudget.RLock()
	calls := mock.calls.AgencyBudget
	mock.lockAgencyBudget.RUnlock()
	return calls
}

var _ imageSigner = &imageSignerMock{}

type imageSignerMock struct {
	PresignedGetURLFunc func(ctx context.Context, key string, expiry time.Duration) (string, error)

	calls struct {
		PresignedGetURL []struct {
			Ctx    context.Context
			Key    string
			Expiry time.Duration
		}
	}
	lockPresignedGetURL sync.RWMutex
}

func (mock *imageSignerMock) PresignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if mock.PresignedGetURLFunc == nil {
		panic("imageSignerMock.PresignedGetURLFunc: method is nil but imageSigner.PresignedGetURL was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Key    string
		Expiry time.Duration
	}{Ctx: ctx, Key: key, Expiry: expiry}
	mock.lockPresignedGetURL.Lock()
	mock.calls.PresignedGetURL = append(mock.calls.PresignedGetURL, callInfo)
	mock.lockPresignedGetURL.Unlock()
	return mock.PresignedGetURLFunc(ctx, key, expiry)
}

func (mock *imageSignerMock) PresignedGetURLCalls() []struct {
	Ctx    context.Context
	Key    string
	Expiry time.Duration
} {
	mock.lockPresignedGetURL.RLock()
	calls := mock.calls.PresignedGetURL
	mock.lockPresignedGetURL.RUnlock()
	return calls
}
