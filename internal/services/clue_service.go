package services

import (
	"context"
	"errors"
	"fmt"
	"trivia/internal/models/db_models"
	"trivia/internal/models/request_models"
	"trivia/internal/models/response_models"
	"trivia/internal/repositories"
	"trivia/pkg/utils"
)

type ClueServiceInterface interface {
	ListClues(ctx context.Context, limit int, random bool) ([]response_models.ClueResponse, error)
	ListCluesByCategory(ctx context.Context, categoryID uint) ([]response_models.ClueResponse, error)
	GetClue(ctx context.Context, id uint) (response_models.ClueResponse, error)
	CreateClue(ctx context.Context, req request_models.CreateClueRequest) (response_models.ClueResponse, error)
	CreateClues(ctx context.Context, reqs []request_models.CreateClueRequest) ([]response_models.ClueResponse, error)
	UpdateClue(ctx context.Context, id uint, req request_models.UpdateClueRequest) (response_models.ClueResponse, error)
	DeleteClue(ctx context.Context, id uint) (response_models.ClueDeletedResponse, error)
}

type ClueService struct {
	clueRepo     repositories.ClueRepository
	categoryRepo repositories.CategoryRepository
}

func NewClueService(clueRepo repositories.ClueRepository, categoryRepo repositories.CategoryRepository) ClueServiceInterface {
	return &ClueService{
		clueRepo:     clueRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *ClueService) ListClues(ctx context.Context, limit int, random bool) ([]response_models.ClueResponse, error) {
	clues, err := s.clueRepo.List(ctx, limit, random)
	if err != nil {
		return nil, storeError(err)
	}
	return toClueResponses(clues), nil
}

func (s *ClueService) ListCluesByCategory(ctx context.Context, categoryID uint) ([]response_models.ClueResponse, error) {
	if err := s.requireCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	clues, err := s.clueRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, storeError(err)
	}
	return toClueResponses(clues), nil
}

func (s *ClueService) GetClue(ctx context.Context, id uint) (response_models.ClueResponse, error) {
	clue, err := s.clueRepo.FindByID(ctx, id)
	if err != nil {
		return response_models.ClueResponse{}, storeError(err)
	}
	if clue == nil {
		return response_models.ClueResponse{}, clueNotFound(id)
	}
	return toClueResponse(*clue), nil
}

func (s *ClueService) CreateClue(ctx context.Context, req request_models.CreateClueRequest) (response_models.ClueResponse, error) {
	clue := newClue(req)
	if err := s.requireCategory(ctx, clue.CategoryID); err != nil {
		return response_models.ClueResponse{}, err
	}

	if err := s.clueRepo.Create(ctx, &clue); err != nil {
		return response_models.ClueResponse{}, clueWriteError(err, clue.CategoryID, clue.Value)
	}
	return toClueResponse(clue), nil
}

// CreateClues stores every clue or none of them.
func (s *ClueService) CreateClues(ctx context.Context, reqs []request_models.CreateClueRequest) ([]response_models.ClueResponse, error) {
	clues := make([]db_models.Clue, 0, len(reqs))
	checked := make(map[uint]bool)
	for _, req := range reqs {
		clue := newClue(req)
		if !checked[clue.CategoryID] {
			if err := s.requireCategory(ctx, clue.CategoryID); err != nil {
				return nil, err
			}
			checked[clue.CategoryID] = true
		}
		clues = append(clues, clue)
	}
	if len(clues) == 0 {
		return []response_models.ClueResponse{}, nil
	}

	if err := s.clueRepo.CreateMany(ctx, clues); err != nil {
		if errors.Is(err, utils.ErrClueValueTaken) {
			return nil, err
		}
		return nil, storeError(err)
	}
	return toClueResponses(clues), nil
}

// UpdateClue changes only the fields present in req.
func (s *ClueService) UpdateClue(ctx context.Context, id uint, req request_models.UpdateClueRequest) (response_models.ClueResponse, error) {
	fields := make(map[string]interface{})
	if req.Answer != nil {
		fields["answer"] = *req.Answer
	}
	if req.Question != nil {
		fields["question"] = *req.Question
	}
	if req.Value != nil {
		fields["value"] = *req.Value
	}
	if req.CategoryID != nil {
		if err := s.requireCategory(ctx, *req.CategoryID); err != nil {
			return response_models.ClueResponse{}, err
		}
		fields["category_id"] = *req.CategoryID
	}

	clue, err := s.clueRepo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, utils.ErrClueNotFound) {
			return response_models.ClueResponse{}, clueNotFound(id)
		}
		return response_models.ClueResponse{}, storeError(err)
	}
	return toClueResponse(*clue), nil
}

func (s *ClueService) DeleteClue(ctx context.Context, id uint) (response_models.ClueDeletedResponse, error) {
	clue, err := s.clueRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrClueNotFound) {
			return response_models.ClueDeletedResponse{}, clueNotFound(id)
		}
		return response_models.ClueDeletedResponse{}, storeError(err)
	}
	return response_models.ClueDeletedResponse{Answer: clue.Answer}, nil
}

func (s *ClueService) requireCategory(ctx context.Context, id uint) error {
	exists, err := s.categoryRepo.Exists(ctx, id)
	if err != nil {
		return storeError(err)
	}
	if !exists {
		return categoryNotFound(id)
	}
	return nil
}

func newClue(req request_models.CreateClueRequest) db_models.Clue {
	clue := db_models.Clue{
		Answer:   req.Answer,
		Question: req.Question,
	}
	if req.Value != nil {
		clue.Value = *req.Value
	}
	if req.CategoryID != nil {
		clue.CategoryID = *req.CategoryID
	}
	return clue
}

func clueWriteError(err error, categoryID uint, value int) error {
	switch {
	case errors.Is(err, utils.ErrClueValueTaken):
		return fmt.Errorf("%w: category %d, value %d", err, categoryID, value)
	case errors.Is(err, utils.ErrCategoryNotFound):
		return categoryNotFound(categoryID)
	default:
		return storeError(err)
	}
}

func clueNotFound(id uint) error {
	return fmt.Errorf("%w: id %d", utils.ErrClueNotFound, id)
}

func toClueResponse(clue db_models.Clue) response_models.ClueResponse {
	return response_models.ClueResponse{
		ID:         clue.ID,
		Answer:     clue.Answer,
		Question:   clue.Question,
		Value:      clue.Value,
		CategoryID: clue.CategoryID,
	}
}

func toClueResponses(clues []db_models.Clue) []response_models.ClueResponse {
	responses := make([]response_models.ClueResponse, 0, len(clues))
	for _, clue := range clues {
		responses = append(responses, toClueResponse(clue))
	}
	return responses
}
