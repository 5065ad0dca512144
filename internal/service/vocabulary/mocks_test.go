package vocabulary

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
	"github.com/promisinganuj/kids-vocabulary-app/internal/provider"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	GetByIDFunc       func(ctx context.Context, userID, wordID uuid.UUID) (domain.Word, error)
	GetByTextFunc     func(ctx context.Context, userID uuid.UUID, textNormalized string) (domain.Word, error)
	GetBaseByIDFunc   func(ctx context.Context, wordID uuid.UUID) (domain.Word, error)
	ListFunc          func(ctx context.Context, userID uuid.UUID, filter domain.WordFilter) ([]domain.Word, int, error)
	ListBaseFunc      func(ctx context.Context, search string, difficulty *domain.Difficulty, limit, offset int) ([]domain.Word, int, error)
	CountByUserFunc   func(ctx context.Context, userID uuid.UUID) (int, error)
	CreateFunc        func(ctx context.Context, w domain.Word) (domain.Word, error)
	UpdateFunc        func(ctx context.Context, userID, wordID uuid.UUID, params domain.WordUpdateParams) (domain.Word, error)
	DeleteFunc        func(ctx context.Context, userID, wordID uuid.UUID) error
	SetFavoriteFunc   func(ctx context.Context, userID, wordID uuid.UUID, favorite bool) error
	SetHiddenFunc     func(ctx context.Context, userID, wordID uuid.UUID, hidden bool) error
	SetDifficultyFunc func(ctx context.Context, userID, wordID uuid.UUID, difficulty domain.Difficulty) error

	calls struct {
		Create []struct {
			Ctx context.Context
			W   domain.Word
		}
		SetHidden []struct {
			Ctx    context.Context
			UserID uuid.UUID
			WordID uuid.UUID
			Hidden bool
		}
	}
	lockCreate    sync.RWMutex
	lockSetHidden sync.RWMutex
}

func (mock *wordRepoMock) GetByID(ctx context.Context, userID, wordID uuid.UUID) (domain.Word, error) {
	if mock.GetByIDFunc == nil {
		panic("wordRepoMock.GetByIDFunc: method is nil but wordRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, wordID)
}

func (mock *wordRepoMock) GetByText(ctx context.Context, userID uuid.UUID, textNormalized string) (domain.Word, error) {
	if mock.GetByTextFunc == nil {
		panic("wordRepoMock.GetByTextFunc: method is nil but wordRepo.GetByText was just called")
	}
	return mock.GetByTextFunc(ctx, userID, textNormalized)
}

func (mock *wordRepoMock) GetBaseByID(ctx context.Context, wordID uuid.UUID) (domain.Word, error) {
	if mock.GetBaseByIDFunc == nil {
		panic("wordRepoMock.GetBaseByIDFunc: method is nil but wordRepo.GetBaseByID was just called")
	}
	return mock.GetBaseByIDFunc(ctx, wordID)
}

func (mock *wordRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.WordFilter) ([]domain.Word, int, error) {
	if mock.ListFunc == nil {
		panic("wordRepoMock.ListFunc: method is nil but wordRepo.List was just called")
	}
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *wordRepoMock) ListBase(ctx context.Context, search string, difficulty *domain.Difficulty, limit, offset int) ([]domain.Word, int, error) {
	if mock.ListBaseFunc == nil {
		panic("wordRepoMock.ListBaseFunc: method is nil but wordRepo.ListBase was just called")
	}
	return mock.ListBaseFunc(ctx, search, difficulty, limit, offset)
}

func (mock *wordRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("wordRepoMock.CountByUserFunc: method is nil but wordRepo.CountByUser was just called")
	}
	return mock.CountByUserFunc(ctx, userID)
}

func (mock *wordRepoMock) Create(ctx context.Context, w domain.Word) (domain.Word, error) {
	if mock.CreateFunc == nil {
		panic("wordRepoMock.CreateFunc: method is nil but wordRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   domain.Word
	}{Ctx: ctx, W: w}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, w)
}

func (mock *wordRepoMock) CreateCalls() []struct {
	Ctx context.Context
	W   domain.Word
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *wordRepoMock) Update(ctx context.Context, userID, wordID uuid.UUID, params domain.WordUpdateParams) (domain.Word, error) {
	if mock.UpdateFunc == nil {
		panic("wordRepoMock.UpdateFunc: method is nil but wordRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, userID, wordID, params)
}

func (mock *wordRepoMock) Delete(ctx context.Context, userID, wordID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("wordRepoMock.DeleteFunc: method is nil but wordRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, userID, wordID)
}

func (mock *wordRepoMock) SetFavorite(ctx context.Context, userID, wordID uuid.UUID, favorite bool) error {
	if mock.SetFavoriteFunc == nil {
		panic("wordRepoMock.SetFavoriteFunc: method is nil but wordRepo.SetFavorite was just called")
	}
	return mock.SetFavoriteFunc(ctx, userID, wordID, favorite)
}

func (mock *wordRepoMock) SetHidden(ctx context.Context, userID, wordID uuid.UUID, hidden bool) error {
	if mock.SetHiddenFunc == nil {
		panic("wordRepoMock.SetHiddenFunc: method is nil but wordRepo.SetHidden was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		WordID uuid.UUID
		Hidden bool
	}{Ctx: ctx, UserID: userID, WordID: wordID, Hidden: hidden}
	mock.lockSetHidden.Lock()
	mock.calls.SetHidden = append(mock.calls.SetHidden, callInfo)
	mock.lockSetHidden.Unlock()
	return mock.SetHiddenFunc(ctx, userID, wordID, hidden)
}

func (mock *wordRepoMock) SetHiddenCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	WordID uuid.UUID
	Hidden bool
} {
	mock.lockSetHidden.RLock()
	calls := mock.calls.SetHidden
	mock.lockSetHidden.RUnlock()
	return calls
}

func (mock *wordRepoMock) SetDifficulty(ctx context.Context, userID, wordID uuid.UUID, difficulty domain.Difficulty) error {
	if mock.SetDifficultyFunc == nil {
		panic("wordRepoMock.SetDifficultyFunc: method is nil but wordRepo.SetDifficulty was just called")
	}
	return mock.SetDifficultyFunc(ctx, userID, wordID, difficulty)
}

var _ lookupProvider = &lookupProviderMock{}

type lookupProviderMock struct {
	LookupWordFunc func(ctx context.Context, word string) (*provider.LookupResult, error)
}

func (mock *lookupProviderMock) LookupWord(ctx context.Context, word string) (*provider.LookupResult, error) {
	if mock.LookupWordFunc == nil {
		panic("lookupProviderMock.LookupWordFunc: method is nil but lookupProvider.LookupWord was just called")
	}
	return mock.LookupWordFunc(ctx, word)
}
