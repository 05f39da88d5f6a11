package resolver

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

var _ registryRepo = &registryRepoMock{}

type registryRepoMock struct {
	FindOrCreateFunc func(ctx context.Context, def domain.EntityTypeDef) (*domain.EntityTypeDef, error)
	LookupFunc       func(ctx context.Context, tenantID uuid.UUID, slug string) (*domain.EntityTypeDef, error)

	calls struct {
		FindOrCreate []struct {
			Ctx context.Context
			Def domain.EntityTypeDef
		}
		Lookup []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			Slug     string
		}
	}
	lockFindOrCreate sync.RWMutex
	lockLookup       sync.RWMutex
}

func (mock *registryRepoMock) FindOrCreate(ctx context.Context, def domain.EntityTypeDef) (*domain.EntityTypeDef, error) {
	if mock.FindOrCreateFunc == nil {
		panic("registryRepoMock.FindOrCreateFunc: method is nil but registryRepo.FindOrCreate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Def domain.EntityTypeDef
	}{Ctx: ctx, Def: def}
	mock.lockFindOrCreate.Lock()
	mock.calls.FindOrCreate = append(mock.calls.FindOrCreate, callInfo)
	mock.lockFindOrCreate.Unlock()
	return mock.FindOrCreateFunc(ctx, def)
}

func (mock *registryRepoMock) FindOrCreateCalls() []struct {
	Ctx context.Context
	Def domain.EntityTypeDef
} {
	mock.lockFindOrCreate.RLock()
	calls := mock.calls.FindOrCreate
	mock.lockFindOrCreate.RUnlock()
	return calls
}

func (mock *registryRepoMock) Lookup(ctx context.Context, tenantID uuid.UUID, slug string) (*domain.EntityTypeDef, error) {
	if mock.LookupFunc == nil {
		panic("registryRepoMock.LookupFunc: method is nil but registryRepo.Lookup was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Slug     string
	}{Ctx: ctx, TenantID: tenantID, Slug: slug}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, callInfo)
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, tenantID, slug)
}

func (mock *registryRepoMock) LookupCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	Slug     string
} {
	mock.lockLookup.RLock()
	calls := mock.calls.Lookup
	mock.lockLookup.RUnlock()
	return calls
}
