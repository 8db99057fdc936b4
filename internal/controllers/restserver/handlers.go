package restserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/chrissnell/turngeometry/internal/calc"
	"github.com/chrissnell/turngeometry/pkg/angle"
	"github.com/chrissnell/turngeometry/pkg/precision"
	"github.com/chrissnell/turngeometry/pkg/responseformat"
	"github.com/chrissnell/turngeometry/pkg/trig"
	"github.com/chrissnell/turngeometry/pkg/turn"
	"github.com/gorilla/mux"
)

// trigOps are the operations reachable under /trig/{op}/{value}
var trigOps = map[string]bool{
	"sine":       true,
	"cosine":     true,
	"tangent":    true,
	"arcsine":    true,
	"arccosine":  true,
	"arctangent": true,
}

// Handlers contains all HTTP handlers for the REST server
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

// ConstantsResponse lists the turn constants
type ConstantsResponse struct {
	Full    float64 `json:"full"`
	Half    float64 `json:"half"`
	Quarter float64 `json:"quarter"`
}

// GetConstants handles requests for the turn constants
func (h *Handlers) GetConstants(w http.ResponseWriter, req *http.Request) {
	h.write(w, req, http.StatusOK, ConstantsResponse{
		Full:    turn.FullTurn(),
		Half:    turn.HalfTurn(),
		Quarter: turn.QuarterTurn(),
	})
}

// GetOperations lists every operation name the calculator understands
func (h *Handlers) GetOperations(w http.ResponseWriter, req *http.Request) {
	h.write(w, req, http.StatusOK, calc.Operations())
}

// GetAngle converts an angle given in degrees or turn-radians
func (h *Handlers) GetAngle(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	v, err := parseNumber(vars["value"])
	if err != nil {
		h.writeError(w, req, err)
		return
	}

	var a angle.Angle
	if vars["unit"] == "turn" {
		a = angle.FromTurnRadians(v)
	} else {
		a = angle.FromDegrees(v)
	}
	h.write(w, req, http.StatusOK, struct {
		Degree     responseformat.Number `json:"degree"`
		TurnRadian responseformat.Number `json:"turnRadian"`
	}{responseformat.Number(a.Degree), responseformat.Number(a.TurnRadian)})
}

// GetTrig evaluates one of the trig operations
func (h *Handlers) GetTrig(w http.ResponseWriter, req *http.Request) {
	op := mux.Vars(req)["op"]
	if !trigOps[op] {
		h.writeError(w, req, fmt.Errorf("%q: %w", op, calc.ErrUnknownOperation))
		return
	}
	h.evaluate(op, "value")(w, req)
}

// GetCircleArea evaluates a circle area, optionally scaled by ?fraction=
func (h *Handlers) GetCircleArea(w http.ResponseWriter, req *http.Request) {
	r, err := parseNumber(mux.Vars(req)["r"])
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	args := []float64{r}
	if f := req.URL.Query().Get("fraction"); f != "" {
		fraction, err := parseNumber(f)
		if err != nil {
			h.writeError(w, req, err)
			return
		}
		args = append(args, fraction)
	}
	h.respond(w, req, "circle-area", args)
}

// GetPrecision runs a precision sweep. ?summary=true omits per-angle samples.
func (h *Handlers) GetPrecision(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	opts := precision.Options{From: -trig.ConvergenceLimit, To: trig.ConvergenceLimit, Step: 1}

	for name, dst := range map[string]*float64{
		"from":      &opts.From,
		"to":        &opts.To,
		"step":      &opts.Step,
		"tolerance": &opts.Tolerance,
	} {
		if s := q.Get(name); s != "" {
			v, err := parseNumber(s)
			if err != nil {
				h.writeError(w, req, err)
				return
			}
			*dst = v
		}
	}

	report, err := precision.Analyze(h.controller.calculator.Engine(), opts)
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	if q.Get("summary") == "true" {
		report.Samples = nil
	}
	h.write(w, req, http.StatusOK, report)
}

// evaluate returns a handler running op with arguments taken from the named
// route variables, in order.
func (h *Handlers) evaluate(op string, varNames ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		vars := mux.Vars(req)
		args := make([]float64, 0, len(varNames))
		for _, name := range varNames {
			v, err := parseNumber(vars[name])
			if err != nil {
				h.writeError(w, req, err)
				return
			}
			args = append(args, v)
		}
		h.respond(w, req, op, args)
	}
}

func (h *Handlers) respond(w http.ResponseWriter, req *http.Request, op string, args []float64) {
	res, err := h.controller.calculator.Evaluate(op, args...)
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.write(w, req, http.StatusOK, res)
}

func (h *Handlers) write(w http.ResponseWriter, req *http.Request, status int, data any) {
	if err := h.formatter.WriteResponse(w, req, status, data); err != nil {
		h.controller.logger.Errorw("error encoding response", "path", req.URL.Path, "error", err)
	}
}

// errBadNumber marks an unparseable numeric path or query value
var errBadNumber = errors.New("invalid number")

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, errBadNumber)
	}
	return v, nil
}

// statusFor maps calculation errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, trig.ErrDomain):
		return http.StatusUnprocessableEntity
	case errors.Is(err, calc.ErrUnknownOperation):
		return http.StatusNotFound
	case errors.Is(err, errBadNumber), errors.Is(err, calc.ErrArity), errors.Is(err, precision.ErrInvalidRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, req *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.controller.logger.Errorw("request failed", "path", req.URL.Path, "error", err)
	}
	if werr := h.formatter.WriteError(w, req, status, err); werr != nil {
		h.controller.logger.Errorw("error encoding error response", "path", req.URL.Path, "error", werr)
	}
}
