package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/scorekeeper-backend/internal/domain"
	"github.com/heartmarshall/scorekeeper-backend/internal/service/scoring"
)

var _ scoringService = &scoringServiceMock{}

type scoringServiceMock struct {
	ListParticipantsFunc  func(ctx context.Context) []domain.Participant
	FindParticipantFunc   func(ctx context.Context, id uuid.UUID) *domain.Participant
	CreateParticipantFunc func(ctx context.Context, input scoring.CreateParticipantInput) scoring.ParticipantResult
	UpdateParticipantFunc func(ctx context.Context, input scoring.UpdateParticipantInput) scoring.ParticipantResult
	DeleteParticipantFunc func(ctx context.Context, id uuid.UUID) bool
	ListGamesFunc         func(ctx context.Context) []domain.Game
	CreateGameFunc        func(ctx context.Context, input scoring.CreateGameInput) scoring.CreateGameResult
	GameTitlesFunc        func(ctx context.Context) []string
	DeleteGameFunc        func(ctx context.Context, id uuid.UUID) bool
	StatisticsFunc        func(ctx context.Context) []domain.ParticipantStats
	StatisticsByGameFunc  func(ctx context.Context) []domain.TitleStats
	MigrateWithReportFunc func(ctx context.Context) scoring.MigrationReport

	calls struct {
		ListParticipants []struct {
			Ctx context.Context
		}
		FindParticipant []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		CreateParticipant []struct {
			Ctx   context.Context
			Input scoring.CreateParticipantInput
		}
		UpdateParticipant []struct {
			Ctx   context.Context
			Input scoring.UpdateParticipantInput
		}
		DeleteParticipant []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListGames []struct {
			Ctx context.Context
		}
		CreateGame []struct {
			Ctx   context.Context
			Input scoring.CreateGameInput
		}
		GameTitles []struct {
			Ctx context.Context
		}
		DeleteGame []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Statistics []struct {
			Ctx context.Context
		}
		StatisticsByGame []struct {
			Ctx context.Context
		}
		MigrateWithReport []struct {
			Ctx context.Context
		}
	}
	lockListParticipants  sync.RWMutex
	lockFindParticipant   sync.RWMutex
	lockCreateParticipant sync.RWMutex
	lockUpdateParticipant sync.RWMutex
	lockDeleteParticipant sync.RWMutex
	lockListGames         sync.RWMutex
	lockCreateGame        sync.RWMutex
	lockGameTitles        sync.RWMutex
	lockDeleteGame        sync.RWMutex
	lockStatistics        sync.RWMutex
	lockStatisticsByGame  sync.RWMutex
	lockMigrateWithReport sync.RWMutex
}

func (mock *scoringServiceMock) ListParticipants(ctx context.Context) []domain.Participant {
	if mock.ListParticipantsFunc == nil {
		panic("scoringServiceMock.ListParticipantsFunc: method is nil but scoringService.ListParticipants was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListParticipants.Lock()
	mock.calls.ListParticipants = append(mock.calls.ListParticipants, callInfo)
	mock.lockListParticipants.Unlock()
	return mock.ListParticipantsFunc(ctx)
}

func (mock *scoringServiceMock) ListParticipantsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListParticipants.RLock()
	calls := mock.calls.ListParticipants
	mock.lockListParticipants.RUnlock()
	return calls
}

func (mock *scoringServiceMock) FindParticipant(ctx context.Context, id uuid.UUID) *domain.Participant {
	if mock.FindParticipantFunc == nil {
		panic("scoringServiceMock.FindParticipantFunc: method is nil but scoringService.FindParticipant was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockFindParticipant.Lock()
	mock.calls.FindParticipant = append(mock.calls.FindParticipant, callInfo)
	mock.lockFindParticipant.Unlock()
	return mock.FindParticipantFunc(ctx, id)
}

func (mock *scoringServiceMock) FindParticipantCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockFindParticipant.RLock()
	calls := mock.calls.FindParticipant
	mock.lockFindParticipant.RUnlock()
	return calls
}

func (mock *scoringServiceMock) CreateParticipant(ctx context.Context, input scoring.CreateParticipantInput) scoring.ParticipantResult {
	if mock.CreateParticipantFunc == nil {
		panic("scoringServiceMock.CreateParticipantFunc: method is nil but scoringService.CreateParticipant was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input scoring.CreateParticipantInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateParticipant.Lock()
	mock.calls.CreateParticipant = append(mock.calls.CreateParticipant, callInfo)
	mock.lockCreateParticipant.Unlock()
	return mock.CreateParticipantFunc(ctx, input)
}

func (mock *scoringServiceMock) CreateParticipantCalls() []struct {
	Ctx   context.Context
	Input scoring.CreateParticipantInput
} {
	mock.lockCreateParticipant.RLock()
	calls := mock.calls.CreateParticipant
	mock.lockCreateParticipant.RUnlock()
	return calls
}

func (mock *scoringServiceMock) UpdateParticipant(ctx context.Context, input scoring.UpdateParticipantInput) scoring.ParticipantResult {
	if mock.UpdateParticipantFunc == nil {
		panic("scoringServiceMock.UpdateParticipantFunc: method is nil but scoringService.UpdateParticipant was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input scoring.UpdateParticipantInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateParticipant.Lock()
	mock.calls.UpdateParticipant = append(mock.calls.UpdateParticipant, callInfo)
	mock.lockUpdateParticipant.Unlock()
	return mock.UpdateParticipantFunc(ctx, input)
}

func (mock *scoringServiceMock) UpdateParticipantCalls() []struct {
	Ctx   context.Context
	Input scoring.UpdateParticipantInput
} {
	mock.lockUpdateParticipant.RLock()
	calls := mock.calls.UpdateParticipant
	mock.lockUpdateParticipant.RUnlock()
	return calls
}

func (mock *scoringServiceMock) DeleteParticipant(ctx context.Context, id uuid.UUID) bool {
	if mock.DeleteParticipantFunc == nil {
		panic("scoringServiceMock.DeleteParticipantFunc: method is nil but scoringService.DeleteParticipant was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteParticipant.Lock()
	mock.calls.DeleteParticipant = append(mock.calls.DeleteParticipant, callInfo)
	mock.lockDeleteParticipant.Unlock()
	return mock.DeleteParticipantFunc(ctx, id)
}

func (mock *scoringServiceMock) DeleteParticipantCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteParticipant.RLock()
	calls := mock.calls.DeleteParticipant
	mock.lockDeleteParticipant.RUnlock()
	return calls
}

func (mock *scoringServiceMock) ListGames(ctx context.Context) []domain.Game {
	if mock.ListGamesFunc == nil {
		panic("scoringServiceMock.ListGamesFunc: method is nil but scoringService.ListGames was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListGames.Lock()
	mock.calls.ListGames = append(mock.calls.ListGames, callInfo)
	mock.lockListGames.Unlock()
	return mock.ListGamesFunc(ctx)
}

func (mock *scoringServiceMock) ListGamesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListGames.RLock()
	calls := mock.calls.ListGames
	mock.lockListGames.RUnlock()
	return calls
}

func (mock *scoringServiceMock) CreateGame(ctx context.Context, input scoring.CreateGameInput) scoring.CreateGameResult {
	if mock.CreateGameFunc == nil {
		panic("scoringServiceMock.CreateGameFunc: method is nil but scoringService.CreateGame was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input scoring.CreateGameInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateGame.Lock()
	mock.calls.CreateGame = append(mock.calls.CreateGame, callInfo)
	mock.lockCreateGame.Unlock()
	return mock.CreateGameFunc(ctx, input)
}

func (mock *scoringServiceMock) CreateGameCalls() []struct {
	Ctx   context.Context
	Input scoring.CreateGameInput
} {
	mock.lockCreateGame.RLock()
	calls := mock.calls.CreateGame
	mock.lockCreateGame.RUnlock()
	return calls
}

func (mock *scoringServiceMock) GameTitles(ctx context.Context) []string {
	if mock.GameTitlesFunc == nil {
		panic("scoringServiceMock.GameTitlesFunc: method is nil but scoringService.GameTitles was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGameTitles.Lock()
	mock.calls.GameTitles = append(mock.calls.GameTitles, callInfo)
	mock.lockGameTitles.Unlock()
	return mock.GameTitlesFunc(ctx)
}

func (mock *scoringServiceMock) GameTitlesCalls() []struct {
	Ctx context.Context
} {
	mock.lockGameTitles.RLock()
	calls := mock.calls.GameTitles
	mock.lockGameTitles.RUnlock()
	return calls
}

func (mock *scoringServiceMock) DeleteGame(ctx context.Context, id uuid.UUID) bool {
	if mock.DeleteGameFunc == nil {
		panic("scoringServiceMock.DeleteGameFunc: method is nil but scoringService.DeleteGame was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteGame.Lock()
	mock.calls.DeleteGame = append(mock.calls.DeleteGame, callInfo)
	mock.lockDeleteGame.Unlock()
	return mock.DeleteGameFunc(ctx, id)
}

func (mock *scoringServiceMock) DeleteGameCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteGame.RLock()
	calls := mock.calls.DeleteGame
	mock.lockDeleteGame.RUnlock()
	return calls
}

func (mock *scoringServiceMock) Statistics(ctx context.Context) []domain.ParticipantStats {
	if mock.StatisticsFunc == nil {
		panic("scoringServiceMock.StatisticsFunc: method is nil but scoringService.Statistics was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStatistics.Lock()
	mock.calls.Statistics = append(mock.calls.Statistics, callInfo)
	mock.lockStatistics.Unlock()
	return mock.StatisticsFunc(ctx)
}

func (mock *scoringServiceMock) StatisticsCalls() []struct {
	Ctx context.Context
} {
	mock.lockStatistics.RLock()
	calls := mock.calls.Statistics
	mock.lockStatistics.RUnlock()
	return calls
}

func (mock *scoringServiceMock) StatisticsByGame(ctx context.Context) []domain.TitleStats {
	if mock.StatisticsByGameFunc == nil {
		panic("scoringServiceMock.StatisticsByGameFunc: method is nil but scoringService.StatisticsByGame was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStatisticsByGame.Lock()
	mock.calls.StatisticsByGame = append(mock.calls.StatisticsByGame, callInfo)
	mock.lockStatisticsByGame.Unlock()
	return mock.StatisticsByGameFunc(ctx)
}

func (mock *scoringServiceMock) StatisticsByGameCalls() []struct {
	Ctx context.Context
} {
	mock.lockStatisticsByGame.RLock()
	calls := mock.calls.StatisticsByGame
	mock.lockStatisticsByGame.RUnlock()
	return calls
}

func (mock *scoringServiceMock) MigrateWithReport(ctx context.Context) scoring.MigrationReport {
	if mock.MigrateWithReportFunc == nil {
		panic("scoringServiceMock.MigrateWithReportFunc: method is nil but scoringService.MigrateWithReport was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMigrateWithReport.Lock()
	mock.calls.MigrateWithReport = append(mock.calls.MigrateWithReport, callInfo)
	mock.lockMigrateWithReport.Unlock()
	return mock.MigrateWithReportFunc(ctx)
}

func (mock *scoringServiceMock) MigrateWithReportCalls() []struct {
	Ctx context.Context
} {
	mock.lockMigrateWithReport.RLock()
	calls := mock.calls.MigrateWithReport
	mock.lockMigrateWithReport.RUnlock()
	return calls
}
