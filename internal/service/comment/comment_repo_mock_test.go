package comment

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	CreateFunc         func(ctx context.Context, c domain.Comment) (*domain.Comment, error)
	GetByIDFunc        func(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error)
	UpdateBodyFunc     func(ctx context.Context, commentID uuid.UUID, body string) (*domain.Comment, error)
	SoftDeleteFunc     func(ctx context.Context, commentID uuid.UUID) error
	ListForTargetFunc  func(ctx context.Context, target domain.Target) ([]domain.Comment, error)
	CountForTargetFunc func(ctx context.Context, target domain.Target) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   domain.Comment
		}
		GetByID []struct {
			Ctx       context.Context
			CommentID uuid.UUID
		}
		UpdateBody []struct {
			Ctx       context.Context
			CommentID uuid.UUID
			Body      string
		}
		SoftDelete []struct {
			Ctx       context.Context
			CommentID uuid.UUID
		}
		ListForTarget []struct {
			Ctx    context.Context
			Target domain.Target
		}
		CountForTarget []struct {
			Ctx    context.Context
			Target domain.Target
		}
	}
	lockCreate         sync.RWMutex
	lockGetByID        sync.RWMutex
	lockUpdateBody     sync.RWMutex
	lockSoftDelete     sync.RWMutex
	lockListForTarget  sync.RWMutex
	lockCountForTarget sync.RWMutex
}

func (mock *commentRepoMock) Create(ctx context.Context, c domain.Comment) (*domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Comment
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *commentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.Comment
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *commentRepoMock) GetByID(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error) {
	if mock.GetByIDFunc == nil {
		panic("commentRepoMock.GetByIDFunc: method is nil but commentRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CommentID uuid.UUID
	}{Ctx: ctx, CommentID: commentID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, commentID)
}

func (mock *commentRepoMock) GetByIDCalls() []struct {
	Ctx       context.Context
	CommentID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *commentRepoMock) UpdateBody(ctx context.Context, commentID uuid.UUID, body string) (*domain.Comment, error) {
	if mock.UpdateBodyFunc == nil {
		panic("commentRepoMock.UpdateBodyFunc: method is nil but commentRepo.UpdateBody was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CommentID uuid.UUID
		Body      string
	}{Ctx: ctx, CommentID: commentID, Body: body}
	mock.lockUpdateBody.Lock()
	mock.calls.UpdateBody = append(mock.calls.UpdateBody, callInfo)
	mock.lockUpdateBody.Unlock()
	return mock.UpdateBodyFunc(ctx, commentID, body)
}

func (mock *commentRepoMock) UpdateBodyCalls() []struct {
	Ctx       context.Context
	CommentID uuid.UUID
	Body      string
} {
	mock.lockUpdateBody.RLock()
	calls := mock.calls.UpdateBody
	mock.lockUpdateBody.RUnlock()
	return calls
}

func (mock *commentRepoMock) SoftDelete(ctx context.Context, commentID uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("commentRepoMock.SoftDeleteFunc: method is nil but commentRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CommentID uuid.UUID
	}{Ctx: ctx, CommentID: commentID}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, commentID)
}

func (mock *commentRepoMock) SoftDeleteCalls() []struct {
	Ctx       context.Context
	CommentID uuid.UUID
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *commentRepoMock) ListForTarget(ctx context.Context, target domain.Target) ([]domain.Comment, error) {
	if mock.ListForTargetFunc == nil {
		panic("commentRepoMock.ListForTargetFunc: method is nil but commentRepo.ListForTarget was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Target domain.Target
	}{Ctx: ctx, Target: target}
	mock.lockListForTarget.Lock()
	mock.calls.ListForTarget = append(mock.calls.ListForTarget, callInfo)
	mock.lockListForTarget.Unlock()
	return mock.ListForTargetFunc(ctx, target)
}

func (mock *commentRepoMock) ListForTargetCalls() []struct {
	Ctx    context.Context
	Target domain.Target
} {
	mock.lockListForTarget.RLock()
	calls := mock.calls.ListForTarget
	mock.lockListForTarget.RUnlock()
	return calls
}

func (mock *commentRepoMock) CountForTarget(ctx context.Context, target domain.Target) (int, error) {
	if mock.CountForTargetFunc == nil {
		panic("commentRepoMock.CountForTargetFunc: method is nil but commentRepo.CountForTarget was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Target domain.Target
	}{Ctx: ctx, Target: target}
	mock.lockCountForTarget.Lock()
	mock.calls.CountForTarget = append(mock.calls.CountForTarget, callInfo)
	mock.lockCountForTarget.Unlock()
	return mock.CountForTargetFunc(ctx, target)
}

func (mock *commentRepoMock) CountForTargetCalls() []struct {
	Ctx    context.Context
	Target domain.Target
} {
	mock.lockCountForTarget.RLock()
	calls := mock.calls.CountForTarget
	mock.lockCountForTarget.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
