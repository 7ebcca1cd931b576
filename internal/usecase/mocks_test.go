package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

type mockGameRepository struct {
	mock.Mock
}

func newMockGameRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *mockGameRepository {
	repo := &mockGameRepository{}
	repo.Test(t)
	t.Cleanup(func() { repo.AssertExpectations(t) })

	return repo
}

func (that *mockGameRepository) CreateGameRecord(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockGameRepository) GetGameRecord(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGameRepository) ListMoves(ctx context.Context, gameID string) ([]entity.Move, error) {
	args := that.Called(ctx, gameID)
	moves, _ := args.Get(0).([]entity.Move)
	return moves, args.Error(1)
}

func (that *mockGameRepository) SaveTurn(
	ctx context.Context,
	gameID string,
	moves []entity.Move,
	turn string,
	status entity.Status,
) error {
	args := that.Called(ctx, gameID, moves, turn, status)
	return args.Error(0)
}

type mockGameCache struct {
	mock.Mock
}

func newMockGameCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *mockGameCache {
	gameCache := &mockGameCache{}
	gameCache.Test(t)
	t.Cleanup(func() { gameCache.AssertExpectations(t) })

	return gameCache
}

func (that *mockGameCache) Put(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockGameCache) Get(ctx context.Context, id string) (*entity.Game, bool, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Bool(1), args.Error(2)
}
