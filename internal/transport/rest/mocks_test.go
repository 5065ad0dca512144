package rest

import (
	"context"

	"github.com/google/uuid"
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
	"github.com/promisinganuj/kids-vocabulary-app/internal/provider"
	"github.com/promisinganuj/kids-vocabulary-app/internal/service/auth"
	"github.com/promisinganuj/kids-vocabulary-app/internal/service/study"
	"github.com/promisinganuj/kids-vocabulary-app/internal/service/user"
	"github.com/promisinganuj/kids-vocabulary-app/internal/service/vocabulary"
)

// Func-field service stubs for handler tests. A nil func panics so a
// test fails loudly when a handler calls something unexpected.

var _ authService = &authServiceMock{}

type authServiceMock struct {
	RegisterFunc      func(ctx context.Context, input auth.RegisterInput) (auth.AuthResult, error)
	LoginFunc         func(ctx context.Context, input auth.LoginInput) (auth.AuthResult, error)
	RefreshFunc       func(ctx context.Context, input auth.RefreshInput) (auth.AuthResult, error)
	LogoutFunc        func(ctx context.Context) error
	ValidateTokenFunc func(ctx context.Context, token string) (uuid.UUID, domain.UserRole, error)
}

func (m *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (auth.AuthResult, error) {
	if m.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc is nil")
	}
	return m.RegisterFunc(ctx, input)
}

func (m *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (auth.AuthResult, error) {
	if m.LoginFunc == nil {
		panic("authServiceMock.LoginFunc is nil")
	}
	return m.LoginFunc(ctx, input)
}

func (m *authServiceMock) Refresh(ctx context.Context, input auth.RefreshInput) (auth.AuthResult, error) {
	if m.RefreshFunc == nil {
		panic("authServiceMock.RefreshFunc is nil")
	}
	return m.RefreshFunc(ctx, input)
}

func (m *authServiceMock) Logout(ctx context.Context) error {
	if m.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc is nil")
	}
	return m.LogoutFunc(ctx)
}

func (m *authServiceMock) ValidateToken(ctx context.Context, token string) (uuid.UUID, domain.UserRole, error) {
	if m.ValidateTokenFunc == nil {
		panic("authServiceMock.ValidateTokenFunc is nil")
	}
	return m.ValidateTokenFunc(ctx, token)
}

var _ vocabularyService = &vocabularyServiceMock{}

type vocabularyServiceMock struct {
	CreateWordFunc    func(ctx context.Context, input vocabulary.CreateWordInput) (domain.Word, error)
	UpdateWordFunc    func(ctx context.Context, input vocabulary.UpdateWordInput) (domain.Word, error)
	DeleteWordFunc    func(ctx context.Context, wordID uuid.UUID) error
	GetWordFunc       func(ctx context.Context, wordID uuid.UUID) (domain.Word, error)
	ListWordsFunc     func(ctx context.Context, input vocabulary.ListWordsInput) (vocabulary.ListResult, error)
	SetFavoriteFunc   func(ctx context.Context, wordID uuid.UUID, favorite bool) error
	SetHiddenFunc     func(ctx context.Context, wordID uuid.UUID, hidden bool) error
	SetDifficultyFunc func(ctx context.Context, input vocabulary.SetDifficultyInput) error
	ListBaseWordsFunc func(ctx context.Context, input vocabulary.ListBaseWordsInput) (vocabulary.ListResult, error)
	AdoptBaseWordFunc func(ctx context.Context, baseWordID uuid.UUID) (domain.Word, error)
	LookupWordFunc    func(ctx context.Context, word string) (*provider.LookupResult, error)
}

func (m *vocabularyServiceMock) CreateWord(ctx context.Context, input vocabulary.CreateWordInput) (domain.Word, error) {
	if m.CreateWordFunc == nil {
		panic("vocabularyServiceMock.CreateWordFunc is nil")
	}
	return m.CreateWordFunc(ctx, input)
}

func (m *vocabularyServiceMock) UpdateWord(ctx context.Context, input vocabulary.UpdateWordInput) (domain.Word, error) {
	if m.UpdateWordFunc == nil {
		panic("vocabularyServiceMock.UpdateWordFunc is nil")
	}
	return m.UpdateWordFunc(ctx, input)
}

func (m *vocabularyServiceMock) DeleteWord(ctx context.Context, wordID uuid.UUID) error {
	if m.DeleteWordFunc == nil {
		panic("vocabularyServiceMock.DeleteWordFunc is nil")
	}
	return m.DeleteWordFunc(ctx, wordID)
}

func (m *vocabularyServiceMock) GetWord(ctx context.Context, wordID uuid.UUID) (domain.Word, error) {
	if m.GetWordFunc == nil {
		panic("vocabularyServiceMock.GetWordFunc is nil")
	}
	return m.GetWordFunc(ctx, wordID)
}

func (m *vocabularyServiceMock) ListWords(ctx context.Context, input vocabulary.ListWordsInput) (vocabulary.ListResult, error) {
	if m.ListWordsFunc == nil {
		panic("vocabularyServiceMock.ListWordsFunc is nil")
	}
	return m.ListWordsFunc(ctx, input)
}

func (m *vocabularyServiceMock) SetFavorite(ctx context.Context, wordID uuid.UUID, favorite bool) error {
	if m.SetFavoriteFunc == nil {
		panic("vocabularyServiceMock.SetFavoriteFunc is nil")
	}
	return m.SetFavoriteFunc(ctx, wordID, favorite)
}

func (m *vocabularyServiceMock) SetHidden(ctx context.Context, wordID uuid.UUID, hidden bool) error {
	if m.SetHiddenFunc == nil {
		panic("vocabularyServiceMock.SetHiddenFunc is nil")
	}
	return m.SetHiddenFunc(ctx, wordID, hidden)
}

func (m *vocabularyServiceMock) SetDifficulty(ctx context.Context, input vocabulary.SetDifficultyInput) error {
	if m.SetDifficultyFunc == nil {
		panic("vocabularyServiceMock.SetDifficultyFunc is nil")
	}
	return m.SetDifficultyFunc(ctx, input)
}

func (m *vocabularyServiceMock) ListBaseWords(ctx context.Context, input vocabulary.ListBaseWordsInput) (vocabulary.ListResult, error) {
	if m.ListBaseWordsFunc == nil {
		panic("vocabularyServiceMock.ListBaseWordsFunc is nil")
	}
	return m.ListBaseWordsFunc(ctx, input)
}

func (m *vocabularyServiceMock) AdoptBaseWord(ctx context.Context, baseWordID uuid.UUID) (domain.Word, error) {
	if m.AdoptBaseWordFunc == nil {
		panic("vocabularyServiceMock.AdoptBaseWordFunc is nil")
	}
	return m.AdoptBaseWordFunc(ctx, baseWordID)
}

func (m *vocabularyServiceMock) LookupWord(ctx context.Context, word string) (*provider.LookupResult, error) {
	if m.LookupWordFunc == nil {
		panic("vocabularyServiceMock.LookupWordFunc is nil")
	}
	return m.LookupWordFunc(ctx, word)
}

var _ studyService = &studyServiceMock{}

type studyServiceMock struct {
	StartSessionFunc     func(ctx context.Context, input study.StartSessionInput) (study.StartResult, error)
	SubmitAnswerFunc     func(ctx context.Context, input study.SubmitAnswerInput) (study.AnswerResult, error)
	GetActiveSessionFunc func(ctx context.Context) (domain.StudySession, error)
	GetSessionFunc       func(ctx context.Context, sessionID uuid.UUID) (domain.StudySession, error)
	PauseSessionFunc     func(ctx context.Context, sessionID uuid.UUID) (domain.StudySession, error)
	ResumeSessionFunc    func(ctx context.Context, sessionID uuid.UUID) (domain.StudySession, error)
	ResetSessionFunc     func(ctx context.Context, sessionID uuid.UUID) (study.StartResult, error)
	EndSessionFunc       func(ctx context.Context, sessionID uuid.UUID) (study.EndResult, error)
	GetAchievementsFunc  func(ctx context.Context) ([]domain.Achievement, error)
}

func (m *studyServiceMock) StartSession(ctx context.Context, input study.StartSessionInput) (study.StartResult, error) {
	if m.StartSessionFunc == nil {
		panic("studyServiceMock.StartSessionFunc is nil")
	}
	return m.StartSessionFunc(ctx, input)
}

func (m *studyServiceMock) SubmitAnswer(ctx context.Context, input study.SubmitAnswerInput) (study.AnswerResult, error) {
	if m.SubmitAnswerFunc == nil {
		panic("studyServiceMock.SubmitAnswerFunc is nil")
	}
	return m.SubmitAnswerFunc(ctx, input)
}

func (m *studyServiceMock) GetActiveSession(ctx context.Context) (domain.StudySession, error) {
	if m.GetActiveSessionFunc == nil {
		panic("studyServiceMock.GetActiveSessionFunc is nil")
	}
	return m.GetActiveSessionFunc(ctx)
}

func (m *studyServiceMock) GetSession(ctx context.Context, sessionID uuid.UUID) (domain.StudySession, error) {
	if m.GetSessionFunc == nil {
		panic("studyServiceMock.GetSessionFunc is nil")
	}
	return m.GetSessionFunc(ctx, sessionID)
}

func (m *studyServiceMock) PauseSession(ctx context.Context, sessionID uuid.UUID) (domain.StudySession, error) {
	if m.PauseSessionFunc == nil {
		panic("studyServiceMock.PauseSessionFunc is nil")
	}
	return m.PauseSessionFunc(ctx, sessionID)
}

func (m *studyServiceMock) ResumeSession(ctx context.Context, sessionID uuid.UUID) (domain.StudySession, error) {
	if m.ResumeSessionFunc == nil {
		panic("studyServiceMock.ResumeSessionFunc is nil")
	}
	return m.ResumeSessionFunc(ctx, sessionID)
}

func (m *studyServiceMock) ResetSession(ctx context.Context, sessionID uuid.UUID) (study.StartResult, error) {
	if m.ResetSessionFunc == nil {
		panic("studyServiceMock.ResetSessionFunc is nil")
	}
	return m.ResetSessionFunc(ctx, sessionID)
}

func (m *studyServiceMock) EndSession(ctx context.Context, sessionID uuid.UUID) (study.EndResult, error) {
	if m.EndSessionFunc == nil {
		panic("studyServiceMock.EndSessionFunc is nil")
	}
	return m.EndSessionFunc(ctx, sessionID)
}

func (m *studyServiceMock) GetAchievements(ctx context.Context) ([]domain.Achievement, error) {
	if m.GetAchievementsFunc == nil {
		panic("studyServiceMock.GetAchievementsFunc is nil")
	}
	return m.GetAchievementsFunc(ctx)
}

var _ userService = &userServiceMock{}

type userServiceMock struct {
	GetProfileFunc    func(ctx context.Context) (domain.User, error)
	UpdateProfileFunc func(ctx context.Context, input user.UpdateProfileInput) (domain.User, error)
	GetStatsFunc      func(ctx context.Context) (domain.UserStats, error)
}

func (m *userServiceMock) GetProfile(ctx context.Context) (domain.User, error) {
	if m.GetProfileFunc == nil {
		panic("userServiceMock.GetProfileFunc is nil")
	}
	return m.GetProfileFunc(ctx)
}

func (m *userServiceMock) UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (domain.User, error) {
	if m.UpdateProfileFunc == nil {
		panic("userServiceMock.UpdateProfileFunc is nil")
	}
	return m.UpdateProfileFunc(ctx, input)
}

func (m *userServiceMock) GetStats(ctx context.Context) (domain.UserStats, error) {
	if m.GetStatsFunc == nil {
		panic("userServiceMock.GetStatsFunc is nil")
	}
	return m.GetStatsFunc(ctx)
}

var _ adminService = &adminServiceMock{}

type adminServiceMock struct {
	GetPlatformStatsFunc func(ctx context.Context) (user.PlatformStats, error)
}

func (m *adminServiceMock) GetPlatformStats(ctx context.Context) (user.PlatformStats, error) {
	if m.GetPlatformStatsFunc == nil {
		panic("adminServiceMock.GetPlatformStatsFunc is nil")
	}
	return m.GetPlatformStatsFunc(ctx)
}
