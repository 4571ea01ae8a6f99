package dashboard

import (
	"fmt"

	"github.com/event-dashboard/internal/domain"
	"github.com/event-dashboard/internal/filter"
	"github.com/event-dashboard/internal/pkg/timefmt"
)

// Listing - one-shot filter result over a dataset, without session state
type Listing struct {
	Category     domain.Category `json:"category"`
	Criteria     filter.Criteria `json:"criteria"`
	Items        []ListItem      `json:"items"`
	Total        int             `json:"total"`
	DatasetTotal int             `json:"dataset_total"`
	TypeOptions  []string        `json:"type_options"`
	Stats        *Stats          `json:"stats,omitempty"`
	EmptyMessage string          `json:"empty_message,omitempty"`
}

// List applies c to ds and renders the sidebar rows the way a session
// would, with nothing selected. Non-positive limit uses filter.DefaultListLimit.
func List(ds *domain.Dataset, c filter.Criteria, limit int, f *timefmt.Formatter) (Listing, error) {
	b, ok := behaviors[ds.Category]
	if !ok {
		return Listing{}, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, ds.Category)
	}
	if limit <= 0 {
		limit = filter.DefaultListLimit
	}
	if f == nil {
		f, _ = timefmt.New(timefmt.DefaultZone, nil)
	}

	st := newCategoryState(ds.Category)
	st.dataset = ds
	st.index = b.index(ds)
	st.criteria = c.Normalize()

	var v View
	b.render(renderer{fmt: f, limit: limit}, st, &v)

	out := Listing{
		Category:     ds.Category,
		Criteria:     st.criteria,
		Items:        v.Items,
		Total:        v.Total,
		DatasetTotal: st.index.Total,
		TypeOptions:  append([]string{}, st.index.Types...),
		Stats:        v.Stats,
	}
	if out.Items == nil {
		out.Items = []ListItem{}
	}
	if out.Total == 0 {
		out.EmptyMessage = EmptyMessage
	}
	return out, nil
}
