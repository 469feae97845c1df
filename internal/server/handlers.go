package server

import (
	"encoding/json"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hydromet/explorer/internal/constants"
	"github.com/hydromet/explorer/internal/log"
	"github.com/hydromet/explorer/pkg/catalog"
	"github.com/hydromet/explorer/pkg/hydro"
	"github.com/hydromet/explorer/pkg/responseformat"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	controller *Controller
	formatter  *responseformat.Formatter
}

// NewHandlers creates a new handlers instance
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{
		controller: ctrl,
		formatter:  responseformat.NewFormatter(),
	}
}

// errorResponse is the wire form of every API error
type errorResponse struct {
	Error string `json:"error"`
	Param string `json:"param,omitempty"`
}

// evaluationResponse is the wire form of an evaluation result, a tagged
// union keyed on which member is present.
type evaluationResponse struct {
	Model  string      `json:"model"`
	Series interface{} `json:"series,omitempty"`
	Runoff interface{} `json:"runoff,omitempty"`
}

// writeError maps core errors onto HTTP statuses: unknown models are
// 404, placeholder models 501, domain errors 400 naming the offending
// parameter, and a failed implicit solve 422 (the request was
// well-formed; the parameters just would not converge).
func (h *Handlers) writeError(w http.ResponseWriter, req *http.Request, err error) {
	var invalid *hydro.InvalidInputError
	var convergence *hydro.ConvergenceError

	switch {
	case errors.Is(err, catalog.ErrUnknownModel):
		h.formatter.WriteResponseWithStatus(w, req, http.StatusNotFound, errorResponse{Error: err.Error()}, nil)
	case errors.Is(err, catalog.ErrNotImplemented):
		h.formatter.WriteResponseWithStatus(w, req, http.StatusNotImplemented, errorResponse{Error: err.Error()}, nil)
	case errors.As(err, &invalid):
		h.formatter.WriteResponseWithStatus(w, req, http.StatusBadRequest, errorResponse{Error: err.Error(), Param: invalid.Param}, nil)
	case errors.As(err, &convergence):
		h.formatter.WriteResponseWithStatus(w, req, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()}, nil)
	default:
		log.Errorf("evaluation error: %v", err)
		h.formatter.WriteResponseWithStatus(w, req, http.StatusInternalServerError, errorResponse{Error: "internal error"}, nil)
	}
}

// GetModels returns every cataloged model descriptor, placeholders
// included so the frontend can render "coming soon" tabs.
func (h *Handlers) GetModels(w http.ResponseWriter, req *http.Request) {
	err := h.formatter.WriteResponse(w, req, catalog.Descriptors(), nil)
	if err != nil {
		log.Errorf("error writing models response: %v", err)
	}
}

// GetModel returns one model descriptor by slug
func (h *Handlers) GetModel(w http.ResponseWriter, req *http.Request) {
	slug := mux.Vars(req)["model"]
	d, ok := catalog.LookupSlug(slug)
	if !ok {
		h.writeError(w, req, fmt.Errorf("%w %q", catalog.ErrUnknownModel, slug))
		return
	}
	if err := h.formatter.WriteResponse(w, req, d, nil); err != nil {
		log.Errorf("error writing model response: %v", err)
	}
}

// EvaluateModel evaluates a model with parameters taken from the query
// string. Parameter keys are the descriptor's; start, end, and points
// override the default grid; solver selects the Green-Ampt cumulative
// method.
func (h *Handlers) EvaluateModel(w http.ResponseWriter, req *http.Request) {
	slug := mux.Vars(req)["model"]
	kind, err := catalog.ParseKind(slug)
	if err != nil {
		h.writeError(w, req, err)
		return
	}

	creq := catalog.Request{Kind: kind, Solver: req.URL.Query().Get("solver")}

	grid, err := gridFromQuery(req)
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	creq.Grid = grid

	d, _ := catalog.Lookup(kind)
	params := make(map[string]float64)
	for _, p := range d.Params {
		raw := req.URL.Query().Get(p.Key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.writeError(w, req, &hydro.InvalidInputError{Param: p.Key, Reason: "not a number"})
			return
		}
		params[p.Key] = v
	}
	creq.Params = params

	h.evaluate(w, req, creq)
}

// EvaluateRequest evaluates a model from a JSON request body. This is
// the same operation as EvaluateModel with the request spelled out as a
// document instead of a query string.
func (h *Handlers) EvaluateRequest(w http.ResponseWriter, req *http.Request) {
	var body struct {
		Model  string             `json:"model"`
		Params map[string]float64 `json:"params"`
		Grid   *catalog.GridSpec  `json:"grid"`
		Solver string             `json:"solver"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.formatter.WriteResponseWithStatus(w, req, http.StatusBadRequest, errorResponse{Error: "malformed request body: " + err.Error()}, nil)
		return
	}

	kind, err := catalog.ParseKind(body.Model)
	if err != nil {
		h.writeError(w, req, err)
		return
	}

	h.evaluate(w, req, catalog.Request{
		Kind:   kind,
		Params: body.Params,
		Grid:   body.Grid,
		Solver: body.Solver,
	})
}

// evaluate applies the grid-size guard rail, runs the catalog dispatch,
// and writes the tagged result.
func (h *Handlers) evaluate(w http.ResponseWriter, req *http.Request, creq catalog.Request) {
	if creq.Grid != nil && creq.Grid.Points > h.controller.serverConfig.MaxGridPoints {
		h.writeError(w, req, &hydro.InvalidInputError{
			Param:  "points",
			Reason: fmt.Sprintf("grid is capped at %d points", h.controller.serverConfig.MaxGridPoints),
		})
		return
	}

	result, err := catalog.Evaluate(creq)
	if err != nil {
		h.writeError(w, req, err)
		return
	}

	resp := evaluationResponse{Model: result.Kind.String()}
	if result.Series != nil {
		resp.Series = result.Series
	}
	if result.Runoff != nil {
		resp.Runoff = result.Runoff
	}
	if err := h.formatter.WriteResponse(w, req, resp, nil); err != nil {
		log.Errorf("error writing evaluation response: %v", err)
	}
}

// gridFromQuery builds a GridSpec from start/end/points query
// parameters. All three must appear together; a partial grid is an
// error rather than a silent mix of defaults and overrides.
func gridFromQuery(req *http.Request) (*catalog.GridSpec, error) {
	q := req.URL.Query()
	rawStart, rawEnd, rawPoints := q.Get("start"), q.Get("end"), q.Get("points")
	if rawStart == "" && rawEnd == "" && rawPoints == "" {
		return nil, nil
	}
	if rawStart == "" || rawEnd == "" || rawPoints == "" {
		return nil, &hydro.InvalidInputError{Param: "grid", Reason: "start, end, and points must be given together"}
	}

	start, err := strconv.ParseFloat(rawStart, 64)
	if err != nil {
		return nil, &hydro.InvalidInputError{Param: "start", Reason: "not a number"}
	}
	end, err := strconv.ParseFloat(rawEnd, 64)
	if err != nil {
		return nil, &hydro.InvalidInputError{Param: "end", Reason: "not a number"}
	}
	points, err := strconv.Atoi(rawPoints)
	if err != nil {
		return nil, &hydro.InvalidInputError{Param: "points", Reason: "not an integer"}
	}
	return &catalog.GridSpec{Start: start, End: end, Points: points}, nil
}

// GetSite returns the presentation settings the frontend renders: page
// title and about text. Purely presentation state; nothing here touches
// the numeric packages.
func (h *Handlers) GetSite(w http.ResponseWriter, req *http.Request) {
	site := h.controller.siteConfig
	err := h.formatter.WriteResponse(w, req, map[string]string{
		"page_title": site.PageTitle,
		"about_html": site.AboutHTML,
	}, nil)
	if err != nil {
		log.Errorf("error writing site response: %v", err)
	}
}

// GetVersion returns the server version
func (h *Handlers) GetVersion(w http.ResponseWriter, req *http.Request) {
	err := h.formatter.WriteResponse(w, req, map[string]string{"version": constants.Version}, nil)
	if err != nil {
		log.Errorf("error writing version response: %v", err)
	}
}

// ServeIndexTemplate renders the frontend index page with the
// configured page title baked in.
func (h *Handlers) ServeIndexTemplate(w http.ResponseWriter, req *http.Request) {
	tmpl, err := htmltemplate.ParseFS(h.controller.FS, "index.html.tmpl")
	if err != nil {
		log.Errorf("error parsing index template: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	err = tmpl.Execute(w, map[string]interface{}{
		"PageTitle": h.controller.siteConfig.PageTitle,
		"AboutHTML": htmltemplate.HTML(h.controller.siteConfig.AboutHTML),
	})
	if err != nil {
		log.Errorf("error rendering index template: %v", err)
	}
}
