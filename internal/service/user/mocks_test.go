package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (domain.User, error)
	UpdateProfileFunc func(ctx context.Context, id uuid.UUID, p domain.ProfileUpdateParams) (domain.User, error)
	CountFunc         func(ctx context.Context) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateProfile []struct {
			Ctx context.Context
			ID  uuid.UUID
			P   domain.ProfileUpdateParams
		}
		Count []struct {
			Ctx context.Context
		}
	}
	lockGetByID       sync.RWMutex
	lockUpdateProfile sync.RWMutex
	lockCount         sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) UpdateProfile(ctx context.Context, id uuid.UUID, p domain.ProfileUpdateParams) (domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userRepoMock.UpdateProfileFunc: method is nil but userRepo.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		P   domain.ProfileUpdateParams
	}{Ctx: ctx, ID: id, P: p}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, id, p)
}

func (mock *userRepoMock) UpdateProfileCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	P   domain.ProfileUpdateParams
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}

func (mock *userRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("userRepoMock.CountFunc: method is nil but userRepo.Count was just called")
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	MasteryCountsFunc func(ctx context.Context, userID uuid.UUID) (domain.MasteryBreakdown, error)
	CountAllFunc      func(ctx context.Context) (int, int, error)

	calls struct {
		MasteryCounts []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		CountAll []struct {
			Ctx context.Context
		}
	}
	lockMasteryCounts sync.RWMutex
	lockCountAll      sync.RWMutex
}

func (mock *wordRepoMock) MasteryCounts(ctx context.Context, userID uuid.UUID) (domain.MasteryBreakdown, error) {
	if mock.MasteryCountsFunc == nil {
		panic("wordRepoMock.MasteryCountsFunc: method is nil but wordRepo.MasteryCounts was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockMasteryCounts.Lock()
	mock.calls.MasteryCounts = append(mock.calls.MasteryCounts, callInfo)
	mock.lockMasteryCounts.Unlock()
	return mock.MasteryCountsFunc(ctx, userID)
}

func (mock *wordRepoMock) CountAll(ctx context.Context) (int, int, error) {
	if mock.CountAllFunc == nil {
		panic("wordRepoMock.CountAllFunc: method is nil but wordRepo.CountAll was just called")
	}
	mock.lockCountAll.Lock()
	mock.calls.CountAll = append(mock.calls.CountAll, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockCountAll.Unlock()
	return mock.CountAllFunc(ctx)
}

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	TotalsFunc             func(ctx context.Context, userID uuid.UUID) (domain.SessionTotals, error)
	CompletedDayCountsFunc func(ctx context.Context, userID uuid.UUID, from time.Time) ([]domain.DaySessionCount, error)
	CountAllFunc           func(ctx context.Context) (int, int, error)

	calls struct {
		Totals []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		CompletedDayCounts []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   time.Time
		}
		CountAll []struct {
			Ctx context.Context
		}
	}
	lockTotals             sync.RWMutex
	lockCompletedDayCounts sync.RWMutex
	lockCountAll           sync.RWMutex
}

func (mock *sessionRepoMock) Totals(ctx context.Context, userID uuid.UUID) (domain.SessionTotals, error) {
	if mock.TotalsFunc == nil {
		panic("sessionRepoMock.TotalsFunc: method is nil but sessionRepo.Totals was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockTotals.Lock()
	mock.calls.Totals = append(mock.calls.Totals, callInfo)
	mock.lockTotals.Unlock()
	return mock.TotalsFunc(ctx, userID)
}

func (mock *sessionRepoMock) CompletedDayCounts(ctx context.Context, userID uuid.UUID, from time.Time) ([]domain.DaySessionCount, error) {
	if mock.CompletedDayCountsFunc == nil {
		panic("sessionRepoMock.CompletedDayCountsFunc: method is nil but sessionRepo.CompletedDayCounts was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
	}{Ctx: ctx, UserID: userID, From: from}
	mock.lockCompletedDayCounts.Lock()
	mock.calls.CompletedDayCounts = append(mock.calls.CompletedDayCounts, callInfo)
	mock.lockCompletedDayCounts.Unlock()
	return mock.CompletedDayCountsFunc(ctx, userID, from)
}

func (mock *sessionRepoMock) CountAll(ctx context.Context) (int, int, error) {
	if mock.CountAllFunc == nil {
		panic("sessionRepoMock.CountAllFunc: method is nil but sessionRepo.CountAll was just called")
	}
	mock.lockCountAll.Lock()
	mock.calls.CountAll = append(mock.calls.CountAll, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockCountAll.Unlock()
	return mock.CountAllFunc(ctx)
}
