package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/event-dashboard/internal/dashboard"
	"github.com/event-dashboard/internal/domain"
	"github.com/event-dashboard/internal/usecase/dto"
)

// DashboardUseCase - session-bound dashboard operations. Every mutation
// returns the view as it stands afterwards.
type DashboardUseCase struct {
	sessions *dashboard.Manager
	logger   *zap.Logger
}

// NewDashboardUseCase - create a new DashboardUseCase
func NewDashboardUseCase(sessions *dashboard.Manager, logger *zap.Logger) *DashboardUseCase {
	return &DashboardUseCase{
		sessions: sessions,
		logger:   logger,
	}
}

// CreateSession opens a session on the category picker.
func (uc *DashboardUseCase) CreateSession() (*dto.SessionResponse, *dashboard.View) {
	s := uc.sessions.Create()
	v := s.View()
	return &dto.SessionResponse{SessionID: s.ID()}, &v
}

// DeleteSession closes a session. Unknown ids are not an error.
func (uc *DashboardUseCase) DeleteSession(id string) {
	uc.sessions.Delete(id)
}

func (uc *DashboardUseCase) View(id string) (*dashboard.View, error) {
	return uc.with(id, func(*dashboard.Session) error { return nil })
}

func (uc *DashboardUseCase) SelectCategory(ctx context.Context, id string, req dto.SelectCategoryRequest) (*dashboard.View, error) {
	return uc.with(id, func(s *dashboard.Session) error {
		category, _ := domain.ParseCategory(req.Category)
		if err := s.SelectCategory(ctx, category); err != nil {
			return err
		}
		uc.logger.Debug("Category selected",
			zap.String("session_id", id),
			zap.String("category", string(category)))
		return nil
	})
}

func (uc *DashboardUseCase) Back(id string) (*dashboard.View, error) {
	return uc.with(id, func(s *dashboard.Session) error {
		s.GoBack()
		return nil
	})
}

func (uc *DashboardUseCase) Search(id string, req dto.SearchRequest) (*dashboard.View, error) {
	return uc.with(id, func(s *dashboard.Session) error { return s.Search(req.Term) })
}

func (uc *DashboardUseCase) SetFilters(id string, req dto.FilterRequest) (*dashboard.View, error) {
	return uc.with(id, func(s *dashboard.Session) error {
		return s.SetFilters(dashboard.FilterChange{Status: req.Status, Type: req.Type})
	})
}

func (uc *DashboardUseCase) ClearFilters(id string) (*dashboard.View, error) {
	return uc.with(id, (*dashboard.Session).ClearFilters)
}

func (uc *DashboardUseCase) Select(id string, req dto.SelectRequest) (*dashboard.View, error) {
	return uc.with(id, func(s *dashboard.Session) error { return s.OnSelect(domain.ID(req.ID)) })
}

func (uc *DashboardUseCase) ClickMarker(id, markerID string) (*dashboard.View, error) {
	return uc.with(id, func(s *dashboard.Session) error { return s.OnMarkerClick(domain.ID(markerID)) })
}

func (uc *DashboardUseCase) ClearSelection(id string) (*dashboard.View, error) {
	return uc.with(id, (*dashboard.Session).ClearSelection)
}

func (uc *DashboardUseCase) ShowAll(id string) (*dashboard.View, error) {
	return uc.with(id, (*dashboard.Session).ShowAll)
}

func (uc *DashboardUseCase) Reload(ctx context.Context, id string) (*dashboard.View, error) {
	return uc.with(id, func(s *dashboard.Session) error { return s.Reload(ctx) })
}

func (uc *DashboardUseCase) with(id string, op func(*dashboard.Session) error) (*dashboard.View, error) {
	s, err := uc.sessions.Get(id)
	if err != nil {
		return nil, toAppError(err)
	}
	if err := op(s); err != nil {
		uc.logger.Debug("Dashboard operation rejected",
			zap.String("session_id", id),
			zap.Error(err))
		return nil, toAppError(err)
	}
	v := s.View()
	return &v, nil
}
