package disposition

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/laporkota/backend/internal/domain"
)

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	UpdateFunc           func(ctx context.Context, report *domain.Report) error
	AddImageFunc         func(ctx context.Context, img *domain.ReportImage) error

	calls struct {
		GetByIDForUpdate []struct {
			ID uuid.UUID
		}
		Update []struct {
			Report *domain.Report
		}
		AddImage []struct {
			Img *domain.ReportImage
		}
	}
	lockGetByIDForUpdate sync.RWMutex
	lockUpdate           sync.RWMutex
	lockAddImage         sync.RWMutex
}

func (mock *reportRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("reportRepoMock.GetByIDForUpdateFunc: method is nil but reportRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *reportRepoMock) GetByIDForUpdateCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *reportRepoMock) Update(ctx context.Context, report *domain.Report) error {
	if mock.UpdateFunc == nil {
		panic("reportRepoMock.UpdateFunc: method is nil but reportRepo.Update was just called")
	}
	callInfo := struct{ Report *domain.Report }{Report: report}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, report)
}

func (mock *reportRepoMock) UpdateCalls() []struct{ Report *domain.Report } {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *reportRepoMock) AddImage(ctx context.Context, img *domain.ReportImage) error {
	if mock.AddImageFunc == nil {
		panic("reportRepoMock.AddImageFunc: method is nil but reportRepo.AddImage was just called")
	}
	callInfo := struct{ Img *domain.ReportImage }{Img: img}
	mock.lockAddImage.Lock()
	mock.calls.AddImage = append(mock.calls.AddImage, callInfo)
	mock.lockAddImage.Unlock()
	return mock.AddImageFunc(ctx, img)
}

func (mock *reportRepoMock) AddImageCalls() []struct{ Img *domain.ReportImage } {
	mock.lockAddImage.RLock()
	calls := mock.calls.AddImage
	mock.lockAddImage.RUnlock()
	return calls
}

var _ timelineRepo = &timelineRepoMock{}

type timelineRepoMock struct {
	CreateFunc func(ctx context.Context, event *domain.TimelineEvent) error

	calls struct {
		Create []struct {
			Event *domain.TimelineEvent
		}
	}
	lockCreate sync.RWMutex
}

func (mock *timelineRepoMock) Create(ctx context.Context, event *domain.TimelineEvent) error {
	if mock.CreateFunc == nil {
		panic("timelineRepoMock.CreateFunc: method is nil but timelineRepo.Create was just called")
	}
	callInfo := struct{ Event *domain.TimelineEvent }{Event: event}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, event)
}

func (mock *timelineRepoMock) CreateCalls() []struct{ Event *domain.TimelineEvent } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ agencyRepo = &agencyRepoMock{}

type agencyRepoMock struct {
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Agency, error)
	GetByTypeFunc func(ctx context.Context, agencyType domain.AgencyType) (*domain.Agency, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		GetByType []struct {
			AgencyType domain.AgencyType
		}
	}
	lockGetByID   sync.RWMutex
	lockGetByType sync.RWMutex
}

func (mock *agencyRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Agency, error) {
	if mock.GetByIDFunc == nil {
		panic("agencyRepoMock.GetByIDFunc: method is nil but agencyRepo.GetByID was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *agencyRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *agencyRepoMock) GetByType(ctx context.Context, agencyType domain.AgencyType) (*domain.Agency, error) {
	if mock.GetByTypeFunc == nil {
		panic("agencyRepoMock.GetByTypeFunc: method is nil but agencyRepo.GetByType was just called")
	}
	callInfo := struct{ AgencyType domain.AgencyType }{AgencyType: agencyType}
	mock.lockGetByType.Lock()
	mock.calls.GetByType = append(mock.calls.GetByType, callInfo)
	mock.lockGetByType.Unlock()
	return mock.GetByTypeFunc(ctx, agencyType)
}

func (mock *agencyRepoMock) GetByTypeCalls() []struct{ AgencyType domain.AgencyType } {
	mock.lockGetByType.RLock()
	calls := mock.calls.GetByType
	mock.lockGetByType.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

var _ eventPublisher = &eventPublisherMock{}

type eventPublisherMock struct {
	PublishReportEventFunc func(ctx context.Context, event domain.ReportEvent) error

	calls struct {
		PublishReportEvent []struct {
			Event domain.ReportEvent
		}
	}
	lockPublishReportEvent sync.RWMutex
}

func (mock *eventPublisherMock) PublishReportEvent(ctx context.Context, event domain.ReportEvent) error {
	if mock.PublishReportEventFunc == nil {
		panic("eventPublisherMock.PublishReportEventFunc: method is nil but eventPublisher.PublishReportEvent was just called")
	}
	callInfo := struct{ Event domain.ReportEvent }{Event: event}
	mock.lockPublishReportEvent.Lock()
	mock.calls.PublishReportEvent = append(mock.calls.PublishReportEvent, callInfo)
	mock.lockPublishReportEvent.Unlock()
	return mock.PublishReportEventFunc(ctx, event)
}

func (mock *eventPublisherMock) PublishReportEventCalls() []struct{ Event domain.ReportEvent } {
	mock.lockPublishReportEvent.RLock()
	calls := mock.calls.PublishReportEvent
	mock.lockPublishReportEvent.RUnlock()
	return calls
}
