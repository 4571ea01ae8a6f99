package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/event-dashboard/internal/domain"
	"github.com/event-dashboard/internal/domain/repository"
	"github.com/event-dashboard/internal/filter"
	"github.com/event-dashboard/internal/selection"
	"go.uber.org/zap"
)

// FilterChange - partial update of the status and type filters. Nil fields
// keep their current value.
type FilterChange struct {
	Status *string
	Type   *string
}

// Session - one user's dashboard: the active category, its dataset and the
// transient filter and selection state on top of it.
//
// All operations serialize on the session mutex. The debounced search is
// the only asynchronous path; it re-enters under the same mutex and is
// dropped when the epoch moved since it was scheduled.
type Session struct {
	id     string
	deps   Deps
	opts   Options
	render renderer

	debounce *filter.Debouncer
	lastSeen atomic.Int64

	mu       sync.Mutex
	category domain.Category
	state    *categoryState
	epoch    uint64
}

// NewSession creates a session sitting on the category picker.
func NewSession(id string, deps Deps, opts Options) *Session {
	deps = deps.withDefaults()
	opts = opts.withDefaults()
	s := &Session{
		id:       id,
		deps:     deps,
		opts:     opts,
		render:   renderer{fmt: deps.Formatter, limit: opts.ListLimit, zoom: opts.CameraZoom},
		debounce: filter.NewDebouncer(deps.Clock, opts.Debounce),
		state:    newCategoryState(domain.CategoryNone),
	}
	s.touch()
	return s
}

func (s *Session) ID() string { return s.id }

// LastSeen returns the unix-nano time of the last operation.
func (s *Session) LastSeen() int64 { return s.lastSeen.Load() }

func (s *Session) touch() {
	s.lastSeen.Store(s.deps.Clock.Now().UnixNano())
}

// SelectCategory switches to category and loads its dataset. An unknown
// category lands on the picker and returns domain.ErrUnknownCategory. A
// failed load is not an error: the view carries the failure instead.
func (s *Session) SelectCategory(ctx context.Context, category domain.Category) error {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := behaviors[category]; !ok {
		s.resetLocked(domain.CategoryNone)
		return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}

	s.resetLocked(category)
	s.countSwitch(category)
	s.loadLocked(ctx)
	return nil
}

// GoBack returns to the category picker.
func (s *Session) GoBack() {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked(domain.CategoryNone)
	s.countSwitch(domain.CategoryNone)
}

// Search records a keystroke. The term is applied once the debounce quiet
// period passes with no newer keystroke.
func (s *Session) Search(term string) error {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.category == domain.CategoryNone {
		return domain.ErrNoActiveCategory
	}
	s.state.input = term
	epoch, category := s.epoch, s.category
	s.debounce.Trigger(func() {
		s.commitSearch(epoch, category, term)
	})
	return nil
}

func (s *Session) commitSearch(epoch uint64, category domain.Category, term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != epoch || s.category != category {
		s.deps.Logger.Debug("Dropping stale search",
			zap.String("session_id", s.id),
			zap.String("term", term))
		return
	}
	s.state.criteria.SearchTerm = term
	if s.deps.Metrics != nil {
		s.deps.Metrics.SearchesApplied.WithLabelValues(string(category)).Inc()
	}
}

// SetFilters applies status and type immediately.
func (s *Session) SetFilters(change FilterChange) error {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.category == domain.CategoryNone {
		return domain.ErrNoActiveCategory
	}
	if change.Status != nil {
		s.state.criteria.Status = *change.Status
	}
	if change.Type != nil {
		s.state.criteria.Type = *change.Type
	}
	s.state.criteria = s.state.criteria.Normalize()
	return nil
}

// ClearFilters resets search, status and type and drops a pending search.
// Selection is kept.
func (s *Session) ClearFilters() error {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.category == domain.CategoryNone {
		return domain.ErrNoActiveCategory
	}
	s.debounce.Cancel()
	s.epoch++
	s.state.criteria = filter.DefaultCriteria()
	s.state.input = ""
	return nil
}

// OnSelect handles a list row click. Unknown ids clear the selection.
func (s *Session) OnSelect(id domain.ID) error {
	return s.selectWith(id, behavior.selectItem)
}

// OnMarkerClick handles a map marker click. For weather the marker is a
// hazard and the event selection is kept.
func (s *Session) OnMarkerClick(id domain.ID) error {
	return s.selectWith(id, behavior.clickMarker)
}

func (s *Session) selectWith(id domain.ID, pick func(behavior, *categoryState, domain.ID) (selection.Granularity, bool)) error {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := behaviors[s.category]
	if !ok {
		return domain.ErrNoActiveCategory
	}
	granularity, found := pick(b, s.state, id)
	if !found {
		s.deps.Logger.Debug("Selection miss",
			zap.String("session_id", s.id),
			zap.String("category", string(s.category)),
			zap.String("id", string(id)))
		return nil
	}
	if s.deps.Metrics != nil {
		s.deps.Metrics.Selections.WithLabelValues(string(s.category), string(granularity)).Inc()
	}
	return nil
}

// ClearSelection drops every selection of the active category.
func (s *Session) ClearSelection() error {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := behaviors[s.category]
	if !ok {
		return domain.ErrNoActiveCategory
	}
	b.clearSelection(s.state)
	return nil
}

// ShowAll plots the hazards of every listed event. Weather only.
func (s *Session) ShowAll() error {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := behaviors[s.category]
	if !ok {
		return domain.ErrNoActiveCategory
	}
	return b.showAll(s.state)
}

// Reload refetches the active dataset, bypassing caches. Criteria are kept
// and selections that no longer exist are dropped.
func (s *Session) Reload(ctx context.Context) error {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := behaviors[s.category]
	if !ok {
		return domain.ErrNoActiveCategory
	}
	if inv, ok := s.deps.Source.(repository.Invalidator); ok {
		if err := inv.Invalidate(ctx, s.category); err != nil {
			s.deps.Logger.Warn("Failed to invalidate dataset",
				zap.String("category", string(s.category)), zap.Error(err))
		}
	}
	s.loadLocked(ctx)
	b.reconcile(s.state)
	return nil
}

// View renders the current state.
func (s *Session) View() View {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		SessionID: s.id,
		Category:  s.category,
		Map:       MapFrame{Center: DefaultCenter, Zoom: DefaultZoom},
		Items:     []ListItem{},
		Markers:   []Marker{},
		Shapes:    []Shape{},
	}

	b, ok := behaviors[s.category]
	if !ok {
		v.Categories = domain.Categories()
		return v
	}

	st := s.state
	if info, ok := s.category.Info(); ok {
		v.CategoryName = info.Name
	}
	v.Criteria = st.criteria
	v.SearchInput = st.input
	v.SearchPending = s.debounce.Pending()
	v.DatasetTotal = st.index.Total
	v.TypeOptions = append([]string{}, st.index.Types...)
	if !st.dataset.FetchedAt.IsZero() {
		fetched := st.dataset.FetchedAt
		v.FetchedAt = &fetched
	}

	b.render(s.render, st, &v)

	if st.loadErr != nil {
		v.LoadError = LoadErrorMessage
	}
	if v.Total == 0 {
		v.EmptyMessage = EmptyMessage
	}
	return v
}

// Close drops any pending search.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debounce.Cancel()
	s.epoch++
}

func (s *Session) resetLocked(category domain.Category) {
	s.debounce.Cancel()
	s.epoch++
	s.category = category
	s.state = newCategoryState(category)
}

func (s *Session) loadLocked(ctx context.Context) {
	category := s.category
	b := behaviors[category]

	ctx, cancel := context.WithTimeout(ctx, s.opts.FetchTimeout)
	defer cancel()

	start := s.deps.Clock.Now()
	ds, err := s.deps.Source.FetchAll(ctx, category)
	elapsed := s.deps.Clock.Since(start)

	outcome := "success"
	if err == nil && ds == nil {
		err = fmt.Errorf("%w: empty response", domain.ErrDataFetch)
	}
	if err != nil {
		outcome = "error"
		if !errors.Is(err, domain.ErrDataFetch) {
			err = fmt.Errorf("%w: %w", domain.ErrDataFetch, err)
		}
		s.deps.Logger.Error("Failed to load dataset",
			zap.String("session_id", s.id),
			zap.String("category", string(category)),
			zap.Error(err))
		ds = &domain.Dataset{Category: category}
	}
	if s.deps.Metrics != nil {
		s.deps.Metrics.DatasetFetches.WithLabelValues(string(category), outcome).Inc()
		s.deps.Metrics.FetchDuration.WithLabelValues(string(category)).Observe(elapsed.Seconds())
	}

	s.state.dataset = ds
	s.state.index = b.index(ds)
	s.state.loadErr = err
	s.deps.Logger.Debug("Dataset loaded",
		zap.String("session_id", s.id),
		zap.String("category", string(category)),
		zap.Int("records", ds.Len()),
		zap.Duration("elapsed", elapsed))
}

func (s *Session) countSwitch(category domain.Category) {
	if s.deps.Metrics == nil {
		return
	}
	label := string(category)
	if label == "" {
		label = "picker"
	}
	s.deps.Metrics.CategorySwitches.WithLabelValues(label).Inc()
}
