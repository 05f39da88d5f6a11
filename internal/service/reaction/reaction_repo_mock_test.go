package reaction

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

var _ reactionRepo = &reactionRepoMock{}

type reactionRepoMock struct {
	FindOrCreateKindFunc    func(ctx context.Context, kind domain.ReactionKind) (*domain.ReactionKind, error)
	GetKindByIDFunc         func(ctx context.Context, kindID uuid.UUID) (*domain.ReactionKind, error)
	ToggleFunc              func(ctx context.Context, kindID, userID uuid.UUID, target domain.Target) (*domain.UserReaction, error)
	ListActiveForTargetFunc func(ctx context.Context, target domain.Target) ([]domain.ReactionCount, error)

	calls struct {
		FindOrCreateKind []struct {
			Ctx  context.Context
			Kind domain.ReactionKind
		}
		GetKindByID []struct {
			Ctx    context.Context
			KindID uuid.UUID
		}
		Toggle []struct {
			Ctx    context.Context
			KindID uuid.UUID
			UserID uuid.UUID
			Target domain.Target
		}
		ListActiveForTarget []struct {
			Ctx    context.Context
			Target domain.Target
		}
	}
	lockFindOrCreateKind    sync.RWMutex
	lockGetKindByID         sync.RWMutex
	lockToggle              sync.RWMutex
	lockListActiveForTarget sync.RWMutex
}

func (mock *reactionRepoMock) FindOrCreateKind(ctx context.Context, kind domain.ReactionKind) (*domain.ReactionKind, error) {
	if mock.FindOrCreateKindFunc == nil {
		panic("reactionRepoMock.FindOrCreateKindFunc: method is nil but reactionRepo.FindOrCreateKind was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.ReactionKind
	}{Ctx: ctx, Kind: kind}
	mock.lockFindOrCreateKind.Lock()
	mock.calls.FindOrCreateKind = append(mock.calls.FindOrCreateKind, callInfo)
	mock.lockFindOrCreateKind.Unlock()
	return mock.FindOrCreateKindFunc(ctx, kind)
}

func (mock *reactionRepoMock) FindOrCreateKindCalls() []struct {
	Ctx  context.Context
	Kind domain.ReactionKind
} {
	mock.lockFindOrCreateKind.RLock()
	calls := mock.calls.FindOrCreateKind
	mock.lockFindOrCreateKind.RUnlock()
	return calls
}

func (mock *reactionRepoMock) GetKindByID(ctx context.Context, kindID uuid.UUID) (*domain.ReactionKind, error) {
	if mock.GetKindByIDFunc == nil {
		panic("reactionRepoMock.GetKindByIDFunc: method is nil but reactionRepo.GetKindByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		KindID uuid.UUID
	}{Ctx: ctx, KindID: kindID}
	mock.lockGetKindByID.Lock()
	mock.calls.GetKindByID = append(mock.calls.GetKindByID, callInfo)
	mock.lockGetKindByID.Unlock()
	return mock.GetKindByIDFunc(ctx, kindID)
}

func (mock *reactionRepoMock) GetKindByIDCalls() []struct {
	Ctx    context.Context
	KindID uuid.UUID
} {
	mock.lockGetKindByID.RLock()
	calls := mock.calls.GetKindByID
	mock.lockGetKindByID.RUnlock()
	return calls
}

func (mock *reactionRepoMock) Toggle(ctx context.Context, kindID, userID uuid.UUID, target domain.Target) (*domain.UserReaction, error) {
	if mock.ToggleFunc == nil {
		panic("reactionRepoMock.ToggleFunc: method is nil but reactionRepo.Toggle was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		KindID uuid.UUID
		UserID uuid.UUID
		Target domain.Target
	}{Ctx: ctx, KindID: kindID, UserID: userID, Target: target}
	mock.lockToggle.Lock()
	mock.calls.Toggle = append(mock.calls.Toggle, callInfo)
	mock.lockToggle.Unlock()
	return mock.ToggleFunc(ctx, kindID, userID, target)
}

func (mock *reactionRepoMock) ToggleCalls() []struct {
	Ctx    context.Context
	KindID uuid.UUID
	UserID uuid.UUID
	Target domain.Target
} {
	mock.lockToggle.RLock()
	calls := mock.calls.Toggle
	mock.lockToggle.RUnlock()
	return calls
}

func (mock *reactionRepoMock) ListActiveForTarget(ctx context.Context, target domain.Target) ([]domain.ReactionCount, error) {
	if mock.ListActiveForTargetFunc == nil {
		panic("reactionRepoMock.ListActiveForTargetFunc: method is nil but reactionRepo.ListActiveForTarget was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Target domain.Target
	}{Ctx: ctx, Target: target}
	mock.lockListActiveForTarget.Lock()
	mock.calls.ListActiveForTarget = append(mock.calls.ListActiveForTarget, callInfo)
	mock.lockListActiveForTarget.Unlock()
	return mock.ListActiveForTargetFunc(ctx, target)
}

func (mock *reactionRepoMock) ListActiveForTargetCalls() []struct {
	Ctx    context.Context
	Target domain.Target
} {
	mock.lockListActiveForTarget.RLock()
	calls := mock.calls.ListActiveForTarget
	mock.lockListActiveForTarget.RUnlock()
	return calls
}
