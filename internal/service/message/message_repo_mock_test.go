package message

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

var _ messageRepo = &messageRepoMock{}

type messageRepoMock struct {
	FindOrCreateTypeFunc func(ctx context.Context, mt domain.MessageType) (*domain.MessageType, error)
	GetTypeBySlugFunc    func(ctx context.Context, tenantID uuid.UUID, slug string) (*domain.MessageType, error)
	CreateFunc           func(ctx context.Context, msg domain.Message) (*domain.Message, error)
	GetByIDFunc          func(ctx context.Context, tenantID, messageID uuid.UUID) (*domain.Message, error)

	calls struct {
		FindOrCreateType []struct {
			Ctx context.Context
			Mt  domain.MessageType
		}
		GetTypeBySlug []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			Slug     string
		}
		Create []struct {
			Ctx context.Context
			Msg domain.Message
		}
		GetByID []struct {
			Ctx       context.Context
			TenantID  uuid.UUID
			MessageID uuid.UUID
		}
	}
	lockFindOrCreateType sync.RWMutex
	lockGetTypeBySlug    sync.RWMutex
	lockCreate           sync.RWMutex
	lockGetByID          sync.RWMutex
}

func (mock *messageRepoMock) FindOrCreateType(ctx context.Context, mt domain.MessageType) (*domain.MessageType, error) {
	if mock.FindOrCreateTypeFunc == nil {
		panic("messageRepoMock.FindOrCreateTypeFunc: method is nil but messageRepo.FindOrCreateType was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Mt  domain.MessageType
	}{Ctx: ctx, Mt: mt}
	mock.lockFindOrCreateType.Lock()
	mock.calls.FindOrCreateType = append(mock.calls.FindOrCreateType, callInfo)
	mock.lockFindOrCreateType.Unlock()
	return mock.FindOrCreateTypeFunc(ctx, mt)
}

func (mock *messageRepoMock) FindOrCreateTypeCalls() []struct {
	Ctx context.Context
	Mt  domain.MessageType
} {
	mock.lockFindOrCreateType.RLock()
	calls := mock.calls.FindOrCreateType
	mock.lockFindOrCreateType.RUnlock()
	return calls
}

func (mock *messageRepoMock) GetTypeBySlug(ctx context.Context, tenantID uuid.UUID, slug string) (*domain.MessageType, error) {
	if mock.GetTypeBySlugFunc == nil {
		panic("messageRepoMock.GetTypeBySlugFunc: method is nil but messageRepo.GetTypeBySlug was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Slug     string
	}{Ctx: ctx, TenantID: tenantID, Slug: slug}
	mock.lockGetTypeBySlug.Lock()
	mock.calls.GetTypeBySlug = append(mock.calls.GetTypeBySlug, callInfo)
	mock.lockGetTypeBySlug.Unlock()
	return mock.GetTypeBySlugFunc(ctx, tenantID, slug)
}

func (mock *messageRepoMock) GetTypeBySlugCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	Slug     string
} {
	mock.lockGetTypeBySlug.RLock()
	calls := mock.calls.GetTypeBySlug
	mock.lockGetTypeBySlug.RUnlock()
	return calls
}

func (mock *messageRepoMock) Create(ctx context.Context, msg domain.Message) (*domain.Message, error) {
	if mock.CreateFunc == nil {
		panic("messageRepoMock.CreateFunc: method is nil but messageRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Msg domain.Message
	}{Ctx: ctx, Msg: msg}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, msg)
}

func (mock *messageRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Msg domain.Message
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *messageRepoMock) GetByID(ctx context.Context, tenantID, messageID uuid.UUID) (*domain.Message, error) {
	if mock.GetByIDFunc == nil {
		panic("messageRepoMock.GetByIDFunc: method is nil but messageRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TenantID  uuid.UUID
		MessageID uuid.UUID
	}{Ctx: ctx, TenantID: tenantID, MessageID: messageID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, tenantID, messageID)
}

func (mock *messageRepoMock) GetByIDCalls() []struct {
	Ctx       context.Context
	TenantID  uuid.UUID
	MessageID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
