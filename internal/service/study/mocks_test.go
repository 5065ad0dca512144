package study

import (
	"github.com/google/uuid"
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
	"context"
	"sync"
	"time"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	SelectNewFunc       func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Word, error)
	SelectReviewFunc    func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Word, error)
	SelectDifficultFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Word, error)
	RecordReviewFunc    func(ctx context.Context, userID, wordID uuid.UUID, correct bool, now time.Time) (domain.Word, error)
	CountMasteredFunc   func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		SelectNew []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
		SelectReview []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
		SelectDifficult []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
		RecordReview []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			WordID  uuid.UUID
			Correct bool
			Now     time.Time
		}
		CountMastered []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockSelectNew       sync.RWMutex
	lockSelectReview    sync.RWMutex
	lockSelectDifficult sync.RWMutex
	lockRecordReview    sync.RWMutex
	lockCountMastered   sync.RWMutex
}

func (mock *wordRepoMock) SelectNew(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Word, error) {
	if mock.SelectNewFunc == nil {
		panic("wordRepoMock.SelectNewFunc: method is nil but wordRepo.SelectNew was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockSelectNew.Lock()
	mock.calls.SelectNew = append(mock.calls.SelectNew, callInfo)
	mock.lockSelectNew.Unlock()
	return mock.SelectNewFunc(ctx, userID, limit)
}

func (mock *wordRepoMock) SelectNewCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockSelectNew.RLock()
	calls := mock.calls.SelectNew
	mock.lockSelectNew.RUnlock()
	return calls
}

func (mock *wordRepoMock) SelectReview(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Word, error) {
	if mock.SelectReviewFunc == nil {
		panic("wordRepoMock.SelectReviewFunc: method is nil but wordRepo.SelectReview was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockSelectReview.Lock()
	mock.calls.SelectReview = append(mock.calls.SelectReview, callInfo)
	mock.lockSelectReview.Unlock()
	return mock.SelectReviewFunc(ctx, userID, limit)
}

func (mock *wordRepoMock) SelectReviewCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockSelectReview.RLock()
	calls := mock.calls.SelectReview
	mock.lockSelectReview.RUnlock()
	return calls
}

func (mock *wordRepoMock) SelectDifficult(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Word, error) {
	if mock.SelectDifficultFunc == nil {
		panic("wordRepoMock.SelectDifficultFunc: method is nil but wordRepo.SelectDifficult was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockSelectDifficult.Lock()
	mock.calls.SelectDifficult = append(mock.calls.SelectDifficult, callInfo)
	mock.lockSelectDifficult.Unlock()
	return mock.SelectDifficultFunc(ctx, userID, limit)
}

func (mock *wordRepoMock) SelectDifficultCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockSelectDifficult.RLock()
	calls := mock.calls.SelectDifficult
	mock.lockSelectDifficult.RUnlock()
	return calls
}

func (mock *wordRepoMock) RecordReview(ctx context.Context, userID, wordID uuid.UUID, correct bool, now time.Time) (domain.Word, error) {
	if mock.RecordReviewFunc == nil {
		panic("wordRepoMock.RecordReviewFunc: method is nil but wordRepo.RecordReview was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		WordID  uuid.UUID
		Correct bool
		Now     time.Time
	}{Ctx: ctx, UserID: userID, WordID: wordID, Correct: correct, Now: now}
	mock.lockRecordReview.Lock()
	mock.calls.RecordReview = append(mock.calls.RecordReview, callInfo)
	mock.lockRecordReview.Unlock()
	return mock.RecordReviewFunc(ctx, userID, wordID, correct, now)
}

func (mock *wordRepoMock) RecordReviewCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	WordID  uuid.UUID
	Correct bool
	Now     time.Time
} {
	mock.lockRecordReview.RLock()
	calls := mock.calls.RecordReview
	mock.lockRecordReview.RUnlock()
	return calls
}

func (mock *wordRepoMock) CountMastered(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountMasteredFunc == nil {
		panic("wordRepoMock.CountMasteredFunc: method is nil but wordRepo.CountMastered was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountMastered.Lock()
	mock.calls.CountMastered = append(mock.calls.CountMastered, callInfo)
	mock.lockCountMastered.Unlock()
	return mock.CountMasteredFunc(ctx, userID)
}

func (mock *wordRepoMock) CountMasteredCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCountMastered.RLock()
	calls := mock.calls.CountMastered
	mock.lockCountMastered.RUnlock()
	return calls
}

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc             func(ctx context.Context, session domain.StudySession) (domain.StudySession, error)
	GetByIDFunc            func(ctx context.Context, userID, sessionID uuid.UUID) (domain.StudySession, error)
	GetLiveByUserFunc      func(ctx context.Context, userID uuid.UUID) (domain.StudySession, error)
	AdvanceProgressFunc    func(ctx context.Context, userID, sessionID uuid.UUID, p domain.SessionAdvanceParams) (domain.StudySession, error)
	UpdateStatusFunc       func(ctx context.Context, userID, sessionID uuid.UUID, p domain.SessionStatusParams) (domain.StudySession, error)
	ResetFunc              func(ctx context.Context, userID, sessionID uuid.UUID, queue []uuid.UUID, resetAt time.Time) (domain.StudySession, error)
	CompletedDayCountsFunc func(ctx context.Context, userID uuid.UUID, from time.Time) ([]domain.DaySessionCount, error)

	calls struct {
		Create []struct {
			Ctx     context.Context
			Session domain.StudySession
		}
		GetByID []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			SessionID uuid.UUID
		}
		GetLiveByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		AdvanceProgress []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			SessionID uuid.UUID
			P         domain.SessionAdvanceParams
		}
		UpdateStatus []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			SessionID uuid.UUID
			P         domain.SessionStatusParams
		}
		Reset []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			SessionID uuid.UUID
			Queue     []uuid.UUID
			ResetAt   time.Time
		}
		CompletedDayCounts []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   time.Time
		}
	}
	lockCreate             sync.RWMutex
	lockGetByID            sync.RWMutex
	lockGetLiveByUser      sync.RWMutex
	lockAdvanceProgress    sync.RWMutex
	lockUpdateStatus       sync.RWMutex
	lockReset              sync.RWMutex
	lockCompletedDayCounts sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, session domain.StudySession) (domain.StudySession, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Session domain.StudySession
	}{Ctx: ctx, Session: session}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, session)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	Session domain.StudySession
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (domain.StudySession, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		SessionID uuid.UUID
	}{Ctx: ctx, UserID: userID, SessionID: sessionID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, sessionID)
}

func (mock *sessionRepoMock) GetByIDCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	SessionID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetLiveByUser(ctx context.Context, userID uuid.UUID) (domain.StudySession, error) {
	if mock.GetLiveByUserFunc == nil {
		panic("sessionRepoMock.GetLiveByUserFunc: method is nil but sessionRepo.GetLiveByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetLiveByUser.Lock()
	mock.calls.GetLiveByUser = append(mock.calls.GetLiveByUser, callInfo)
	mock.lockGetLiveByUser.Unlock()
	return mock.GetLiveByUserFunc(ctx, userID)
}

func (mock *sessionRepoMock) GetLiveByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetLiveByUser.RLock()
	calls := mock.calls.GetLiveByUser
	mock.lockGetLiveByUser.RUnlock()
	return calls
}

func (mock *sessionRepoMock) AdvanceProgress(ctx context.Context, userID, sessionID uuid.UUID, p domain.SessionAdvanceParams) (domain.StudySession, error) {
	if mock.AdvanceProgressFunc == nil {
		panic("sessionRepoMock.AdvanceProgressFunc: method is nil but sessionRepo.AdvanceProgress was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		SessionID uuid.UUID
		P         domain.SessionAdvanceParams
	}{Ctx: ctx, UserID: userID, SessionID: sessionID, P: p}
	mock.lockAdvanceProgress.Lock()
	mock.calls.AdvanceProgress = append(mock.calls.AdvanceProgress, callInfo)
	mock.lockAdvanceProgress.Unlock()
	return mock.AdvanceProgressFunc(ctx, userID, sessionID, p)
}

func (mock *sessionRepoMock) AdvanceProgressCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	SessionID uuid.UUID
	P         domain.SessionAdvanceParams
} {
	mock.lockAdvanceProgress.RLock()
	calls := mock.calls.AdvanceProgress
	mock.lockAdvanceProgress.RUnlock()
	return calls
}

func (mock *sessionRepoMock) UpdateStatus(ctx context.Context, userID, sessionID uuid.UUID, p domain.SessionStatusParams) (domain.StudySession, error) {
	if mock.UpdateStatusFunc == nil {
		panic("sessionRepoMock.UpdateStatusFunc: method is nil but sessionRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		SessionID uuid.UUID
		P         domain.SessionStatusParams
	}{Ctx: ctx, UserID: userID, SessionID: sessionID, P: p}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, userID, sessionID, p)
}

func (mock *sessionRepoMock) UpdateStatusCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	SessionID uuid.UUID
	P         domain.SessionStatusParams
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Reset(ctx context.Context, userID, sessionID uuid.UUID, queue []uuid.UUID, resetAt time.Time) (domain.StudySession, error) {
	if mock.ResetFunc == nil {
		panic("sessionRepoMock.ResetFunc: method is nil but sessionRepo.Reset was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		SessionID uuid.UUID
		Queue     []uuid.UUID
		ResetAt   time.Time
	}{Ctx: ctx, UserID: userID, SessionID: sessionID, Queue: queue, ResetAt: resetAt}
	mock.lockReset.Lock()
	mock.calls.Reset = append(mock.calls.Reset, callInfo)
	mock.lockReset.Unlock()
	return mock.ResetFunc(ctx, userID, sessionID, queue, resetAt)
}

func (mock *sessionRepoMock) ResetCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	SessionID uuid.UUID
	Queue     []uuid.UUID
	ResetAt   time.Time
} {
	mock.lockReset.RLock()
	calls := mock.calls.Reset
	mock.lockReset.RUnlock()
	return calls
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

func (mock *sessionRepoMock) CompletedDayCountsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   time.Time
} {
	mock.lockCompletedDayCounts.RLock()
	calls := mock.calls.CompletedDayCounts
	mock.lockCompletedDayCounts.RUnlock()
	return calls
}

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	CreateFunc      func(ctx context.Context, rec domain.SessionWordRecord) (domain.SessionWordRecord, error)
	CountByWordFunc func(ctx context.Context, sessionID, wordID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec domain.SessionWordRecord
		}
		CountByWord []struct {
			Ctx       context.Context
			SessionID uuid.UUID
			WordID    uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockCountByWord sync.RWMutex
}

func (mock *recordRepoMock) Create(ctx context.Context, rec domain.SessionWordRecord) (domain.SessionWordRecord, error) {
	if mock.CreateFunc == nil {
		panic("recordRepoMock.CreateFunc: method is nil but recordRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.SessionWordRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *recordRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec domain.SessionWordRecord
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *recordRepoMock) CountByWord(ctx context.Context, sessionID, wordID uuid.UUID) (int, error) {
	if mock.CountByWordFunc == nil {
		panic("recordRepoMock.CountByWordFunc: method is nil but recordRepo.CountByWord was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
		WordID    uuid.UUID
	}{Ctx: ctx, SessionID: sessionID, WordID: wordID}
	mock.lockCountByWord.Lock()
	mock.calls.CountByWord = append(mock.calls.CountByWord, callInfo)
	mock.lockCountByWord.Unlock()
	return mock.CountByWordFunc(ctx, sessionID, wordID)
}

func (mock *recordRepoMock) CountByWordCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
	WordID    uuid.UUID
} {
	mock.lockCountByWord.RLock()
	calls := mock.calls.CountByWord
	mock.lockCountByWord.RUnlock()
	return calls
}

var _ achievementRepo = &achievementRepoMock{}

type achievementRepoMock struct {
	AwardFunc      func(ctx context.Context, userID uuid.UUID, typ domain.AchievementType, earnedAt time.Time) (bool, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Achievement, error)

	calls struct {
		Award []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			Typ      domain.AchievementType
			EarnedAt time.Time
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockAward      sync.RWMutex
	lockListByUser sync.RWMutex
}

func (mock *achievementRepoMock) Award(ctx context.Context, userID uuid.UUID, typ domain.AchievementType, earnedAt time.Time) (bool, error) {
	if mock.AwardFunc == nil {
		panic("achievementRepoMock.AwardFunc: method is nil but achievementRepo.Award was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		Typ      domain.AchievementType
		EarnedAt time.Time
	}{Ctx: ctx, UserID: userID, Typ: typ, EarnedAt: earnedAt}
	mock.lockAward.Lock()
	mock.calls.Award = append(mock.calls.Award, callInfo)
	mock.lockAward.Unlock()
	return mock.AwardFunc(ctx, userID, typ, earnedAt)
}

func (mock *achievementRepoMock) AwardCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	Typ      domain.AchievementType
	EarnedAt time.Time
} {
	mock.lockAward.RLock()
	calls := mock.calls.Award
	mock.lockAward.RUnlock()
	return calls
}

func (mock *achievementRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Achievement, error) {
	if mock.ListByUserFunc == nil {
		panic("achievementRepoMock.ListByUserFunc: method is nil but achievementRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *achievementRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
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
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
