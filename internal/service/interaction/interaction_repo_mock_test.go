package interaction

import (
	"context"
	"sync"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

var _ interactionRepo = &interactionRepoMock{}

type interactionRepoMock struct {
	CreateFunc         func(ctx context.Context, ev domain.InteractionEvent) (*domain.InteractionEvent, error)
	ListForTargetFunc  func(ctx context.Context, target domain.Target, limit, offset int) ([]domain.InteractionEvent, error)
	CountForTargetFunc func(ctx context.Context, target domain.Target, kind domain.InteractionKind) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Ev  domain.InteractionEvent
		}
		ListForTarget []struct {
			Ctx    context.Context
			Target domain.Target
			Limit  int
			Offset int
		}
		CountForTarget []struct {
			Ctx    context.Context
			Target domain.Target
			Kind   domain.InteractionKind
		}
	}
	lockCreate         sync.RWMutex
	lockListForTarget  sync.RWMutex
	lockCountForTarget sync.RWMutex
}

func (mock *interactionRepoMock) Create(ctx context.Context, ev domain.InteractionEvent) (*domain.InteractionEvent, error) {
	if mock.CreateFunc == nil {
		panic("interactionRepoMock.CreateFunc: method is nil but interactionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  domain.InteractionEvent
	}{Ctx: ctx, Ev: ev}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ev)
}

func (mock *interactionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Ev  domain.InteractionEvent
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *interactionRepoMock) ListForTarget(ctx context.Context, target domain.Target, limit, offset int) ([]domain.InteractionEvent, error) {
	if mock.ListForTargetFunc == nil {
		panic("interactionRepoMock.ListForTargetFunc: method is nil but interactionRepo.ListForTarget was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Target domain.Target
		Limit  int
		Offset int
	}{Ctx: ctx, Target: target, Limit: limit, Offset: offset}
	mock.lockListForTarget.Lock()
	mock.calls.ListForTarget = append(mock.calls.ListForTarget, callInfo)
	mock.lockListForTarget.Unlock()
	return mock.ListForTargetFunc(ctx, target, limit, offset)
}

func (mock *interactionRepoMock) ListForTargetCalls() []struct {
	Ctx    context.Context
	Target domain.Target
	Limit  int
	Offset int
} {
	mock.lockListForTarget.RLock()
	calls := mock.calls.ListForTarget
	mock.lockListForTarget.RUnlock()
	return calls
}

func (mock *interactionRepoMock) CountForTarget(ctx context.Context, target domain.Target, kind domain.InteractionKind) (int, error) {
	if mock.CountForTargetFunc == nil {
		panic("interactionRepoMock.CountForTargetFunc: method is nil but interactionRepo.CountForTarget was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Target domain.Target
		Kind   domain.InteractionKind
	}{Ctx: ctx, Target: target, Kind: kind}
	mock.lockCountForTarget.Lock()
	mock.calls.CountForTarget = append(mock.calls.CountForTarget, callInfo)
	mock.lockCountForTarget.Unlock()
	return mock.CountForTargetFunc(ctx, target, kind)
}

func (mock *interactionRepoMock) CountForTargetCalls() []struct {
	Ctx    context.Context
	Target domain.Target
	Kind   domain.InteractionKind
} {
	mock.lockCountForTarget.RLock()
	calls := mock.calls.CountForTarget
	mock.lockCountForTarget.RUnlock()
	return calls
}
