package services

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"trivia/internal/models/db_models"
	"trivia/internal/repositories"
	"trivia/pkg/utils"
)

func seedBoard(t *testing.T, uniqueClueValues bool, values []int, perValue int) (GameServiceInterface, uint) {
	t.Helper()
	db := setupTestDB(t, uniqueClueValues)

	cat := db_models.Category{Name: "Board"}
	require.NoError(t, db.Create(&cat).Error)
	for _, v := range values {
		for i := 0; i < perValue; i++ {
			require.NoError(t, db.Create(&db_models.Clue{Answer: "a", Question: "q", Value: v, CategoryID: cat.ID}).Error)
		}
	}

	return NewGameService(repositories.NewClueRepository(db), repositories.NewCategoryRepository(db)), cat.ID
}

func TestStartGameReturnsOneCluePerValue(t *testing.T) {
	svc, catID := seedBoard(t, false, []int{500, 400, 300, 200, 100}, 3)

	board, err := svc.StartGame(context.Background(), catID)
	require.NoError(t, err)
	require.Len(t, board, 5)

	values := make([]int, 0, len(board))
	for _, clue := range board {
		values = append(values, clue.Value)
		assert.Equal(t, catID, clue.CategoryID)
	}
	assert.Equal(t, []int{100, 200, 300, 400, 500}, values)
}

func TestStartGameMissingValue(t *testing.T) {
	svc, catID := seedBoard(t, true, []int{100, 200, 400, 500}, 1)

	_, err := svc.StartGame(context.Background(), catID)
	assert.ErrorIs(t, err, utils.ErrMissingClueValue)
	assert.True(t, utils.IsNotFound(err))
	assert.Contains(t, err.Error(), "300")
}

func TestStartGameUnknownCategory(t *testing.T) {
	svc, catID := seedBoard(t, true, BoardValues, 1)

	_, err := svc.StartGame(context.Background(), catID+1)
	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)
}
