package report

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/laporkota/backend/internal/domain"
)

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	ListFunc                func(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error)
	CountOpenByReporterFunc func(ctx context.Context, reporterID uuid.UUID) (int, error)
	CreateFunc              func(ctx context.Context, report *domain.Report) error
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error
	AddSupportFunc          func(ctx context.Context, reportID, userID uuid.UUID) error
	AddImageFunc            func(ctx context.Context, img *domain.ReportImage) error
	ListImagesFunc          func(ctx context.Context, reportID uuid.UUID) ([]domain.ReportImage, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		List []struct {
			Filter domain.ReportFilter
		}
		CountOpenByReporter []struct {
			ReporterID uuid.UUID
		}
		Create []struct {
			Report *domain.Report
		}
		Delete []struct {
			ID uuid.UUID
		}
		AddSupport []struct {
			ReportID uuid.UUID
			UserID   uuid.UUID
		}
		AddImage []struct {
			Img *domain.ReportImage
		}
		ListImages []struct {
			ReportID uuid.UUID
		}
	}
	lockGetByID             sync.RWMutex
	lockList                sync.RWMutex
	lockCountOpenByReporter sync.RWMutex
	lockCreate              sync.RWMutex
	lockDelete              sync.RWMutex
	lockAddSupport          sync.RWMutex
	lockAddImage            sync.RWMutex
	lockListImages          sync.RWMutex
}

func (mock *reportRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	if mock.GetByIDFunc == nil {
		panic("reportRepoMock.GetByIDFunc: method is nil but reportRepo.GetByID was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *reportRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *reportRepoMock) List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error) {
	if mock.ListFunc == nil {
		panic("reportRepoMock.ListFunc: method is nil but reportRepo.List was just called")
	}
	callInfo := struct{ Filter domain.ReportFilter }{Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *reportRepoMock) ListCalls() []struct{ Filter domain.ReportFilter } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *reportRepoMock) CountOpenByReporter(ctx context.Context, reporterID uuid.UUID) (int, error) {
	if mock.CountOpenByReporterFunc == nil {
		panic("reportRepoMock.CountOpenByReporterFunc: method is nil but reportRepo.CountOpenByReporter was just called")
	}
	callInfo := struct{ ReporterID uuid.UUID }{ReporterID: reporterID}
	mock.lockCountOpenByReporter.Lock()
	mock.calls.CountOpenByReporter = append(mock.calls.CountOpenByReporter, callInfo)
	mock.lockCountOpenByReporter.Unlock()
	return mock.CountOpenByReporterFunc(ctx, reporterID)
}

func (mock *reportRepoMock) CountOpenByReporterCalls() []struct{ ReporterID uuid.UUID } {
	mock.lockCountOpenByReporter.RLock()
	calls := mock.calls.CountOpenByReporter
	mock.lockCountOpenByReporter.RUnlock()
	return calls
}

func (mock *reportRepoMock) Create(ctx context.Context, report *domain.Report) error {
	if mock.CreateFunc == nil {
		panic("reportRepoMock.CreateFunc: method is nil but reportRepo.Create was just called")
	}
	callInfo := struct{ Report *domain.Report }{Report: report}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, report)
}

func (mock *reportRepoMock) CreateCalls() []struct{ Report *domain.Report } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reportRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("reportRepoMock.DeleteFunc: method is nil but reportRepo.Delete was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *reportRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *reportRepoMock) AddSupport(ctx context.Context, reportID, userID uuid.UUID) error {
	if mock.AddSupportFunc == nil {
		panic("reportRepoMock.AddSupportFunc: method is nil but reportRepo.AddSupport was just called")
	}
	callInfo := struct {
		ReportID uuid.UUID
		UserID   uuid.UUID
	}{ReportID: reportID, UserID: userID}
	mock.lockAddSupport.Lock()
	mock.calls.AddSupport = append(mock.calls.AddSupport, callInfo)
	mock.lockAddSupport.Unlock()
	return mock.AddSupportFunc(ctx, reportID, userID)
}

func (mock *reportRepoMock) AddSupportCalls() []struct {
	ReportID uuid.UUID
	UserID   uuid.UUID
} {
	mock.lockAddSupport.RLock()
	calls := mock.calls.AddSupport
	mock.lockAddSupport.RUnlock()
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

func (mock *reportRepoMock) ListImages(ctx context.Context, reportID uuid.UUID) ([]domain.ReportImage, error) {
	if mock.ListImagesFunc == nil {
		panic("reportRepoMock.ListImagesFunc: method is nil but reportRepo.ListImages was just called")
	}
	callInfo := struct{ ReportID uuid.UUID }{ReportID: reportID}
	mock.lockListImages.Lock()
	mock.calls.ListImages = append(mock.calls.ListImages, callInfo)
	mock.lockListImages.Unlock()
	return mock.ListImagesFunc(ctx, reportID)
}

func (mock *reportRepoMock) ListImagesCalls() []struct{ ReportID uuid.UUID } {
	mock.lockListImages.RLock()
	calls := mock.calls.ListImages
	mock.lockListImages.RUnlock()
	return calls
}

var _ timelineRepo = &timelineRepoMock{}

type timelineRepoMock struct {
	CreateFunc       func(ctx context.Context, event *domain.TimelineEvent) error
	ListByReportFunc func(ctx context.Context, reportID uuid.UUID) ([]domain.TimelineEvent, error)

	calls struct {
		Create []struct {
			Event *domain.TimelineEvent
		}
		ListByReport []struct {
			ReportID uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockListByReport sync.RWMutex
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

func (mock *timelineRepoMock) ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.TimelineEvent, error) {
	if mock.ListByReportFunc == nil {
		panic("timelineRepoMock.ListByReportFunc: method is nil but timelineRepo.ListByReport was just called")
	}
	callInfo := struct{ ReportID uuid.UUID }{ReportID: reportID}
	mock.lockListByReport.Lock()
	mock.calls.ListByReport = append(mock.calls.ListByReport, callInfo)
	mock.lockListByReport.Unlock()
	return mock.ListByReportFunc(ctx, reportID)
}

func (mock *timelineRepoMock) ListByReportCalls() []struct{ ReportID uuid.UUID } {
	mock.lockListByReport.RLock()
	calls := mock.calls.ListByReport
	mock.lockListByReport.RUnlock()
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
