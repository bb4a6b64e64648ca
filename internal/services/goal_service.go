package services

import (
	"errors"
	"fmt"

	"github.com/ikedoebber/organizer-api/internal/models"
	"github.com/ikedoebber/organizer-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrGoalNotFound  = errors.New("goal not found")
	ErrInvalidPeriod = errors.New("invalid period")
)

// GoalService handles goal business logic.
type GoalService struct {
	goalRepo repository.GoalRepository
}

// NewGoalService creates a new GoalService.
func NewGoalService(goalRepo repository.GoalRepository) *GoalService {
	return &GoalService{
		goalRepo: goalRepo,
	}
}

// UpdatePeriod applies a validated period change to a goal owned by the
// user. Only the period column is written.
func (s *GoalService) UpdatePeriod(userID, goalID uint64, period models.GoalPeriod) (*models.Goal, error) {
	if !period.IsValid() {
		return nil, ErrInvalidPeriod
	}

	goal, err := s.goalRepo.FindByIDForUser(goalID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to look up goal: %w", err)
	}

	if err := s.goalRepo.UpdatePeriod(goal, period); err != nil {
		return nil, fmt.Errorf("failed to update goal period: %w", err)
	}
	goal.Period = period
	return goal, nil
}
