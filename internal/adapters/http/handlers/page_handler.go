package handlers

import (
	"bytes"
	_ "embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-address-selector/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-address-selector/internal/domain/address"
	"github.com/jsamuelsen11/go-address-selector/internal/domain/selection"
	"github.com/jsamuelsen11/go-address-selector/internal/platform/logging"
	"github.com/jsamuelsen11/go-address-selector/internal/ports"
)

//go:embed templates/selector.html
var selectorHTML string

var selectorTemplate = template.Must(template.New("selector").Parse(selectorHTML))

// PageHandler renders the server-side address selector. The current choices
// travel in the query string, so each request replays them through a fresh
// selector and no session is kept.
type PageHandler struct {
	svc ports.SelectionService
}

// NewPageHandler creates a new PageHandler with the given service port.
func NewPageHandler(svc ports.SelectionService) *PageHandler {
	return &PageHandler{svc: svc}
}

type optionView struct {
	ID       string
	Name     string
	Selected bool
}

type levelView struct {
	Options  []optionView
	Disabled bool
}

type addressView struct {
	Province string
	District string
	Ward     string
	Empty    bool
}

type pageView struct {
	Province    levelView
	District    levelView
	Ward        levelView
	Loading     bool
	Failed      bool
	Address     addressView
	NoSelection string
}

// Selector handles GET /.
func (h *PageHandler) Selector(w http.ResponseWriter, r *http.Request) {
	province, district, ward := cascadeQuery(r)

	st, err := h.svc.ReplaySelection(r.Context(), province, district, ward)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := selectorTemplate.Execute(&buf, newPageView(st)); err != nil {
		logging.FromContextOr(r.Context(), slog.Default()).Error("failed to render selector page",
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func newPageView(st selection.State) pageView {
	controls := st.Controls()
	return pageView{
		Province: levelView{Options: toOptions(st.Provinces, st.Address.Province.ID), Disabled: !controls.Province},
		District: levelView{Options: toOptions(st.Districts, st.Address.District.ID), Disabled: !controls.District},
		Ward:     levelView{Options: toOptions(st.Wards, st.Address.Ward.ID), Disabled: !controls.Ward},
		Loading:  st.Loading(),
		Failed:   st.Phase() == selection.PhaseError,
		Address: addressView{
			Province: st.Address.Province.Name,
			District: st.Address.District.Name,
			Ward:     st.Address.Ward.Name,
			Empty:    st.Address.IsEmpty(),
		},
		NoSelection: address.NoSelection,
	}
}

func toOptions[T address.Unit](units []T, selected string) []optionView {
	opts := make([]optionView, 0, len(units))
	for _, u := range units {
		opts = append(opts, optionView{ID: u.Key(), Name: u.Label(), Selected: u.Key() == selected})
	}
	return opts
}
