package services

import (
	"context"
	"fmt"
	"trivia/internal/models/db_models"
	"trivia/internal/models/response_models"
	"trivia/internal/repositories"
	"trivia/pkg/utils"
)

// BoardValues are the point values of one game column, in play order.
var BoardValues = []int{100, 200, 300, 400, 500}

type GameServiceInterface interface {
	StartGame(ctx context.Context, categoryID uint) ([]response_models.ClueResponse, error)
}

type GameService struct {
	clueRepo     repositories.ClueRepository
	categoryRepo repositories.CategoryRepository
}

func NewGameService(clueRepo repositories.ClueRepository, categoryRepo repositories.CategoryRepository) GameServiceInterface {
	return &GameService{
		clueRepo:     clueRepo,
		categoryRepo: categoryRepo,
	}
}

// StartGame draws one random clue per board value. It fails when any value has no clue.
func (g *GameService) StartGame(ctx context.Context, categoryID uint) ([]response_models.ClueResponse, error) {
	exists, err := g.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		return nil, storeError(err)
	}
	if !exists {
		return nil, categoryNotFound(categoryID)
	}

	board := make([]db_models.Clue, 0, len(BoardValues))
	for _, value := range BoardValues {
		clue, err := g.clueRepo.FindRandom(ctx, categoryID, value)
		if err != nil {
			return nil, storeError(err)
		}
		if clue == nil {
			return nil, fmt.Errorf("%w: category %d has no clue worth %d", utils.ErrMissingClueValue, categoryID, value)
		}
		board = append(board, *clue)
	}

	return toClueResponses(board), nil
}
