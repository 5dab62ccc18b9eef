// Package server exposes a wizard over a small JSON HTTP API.
//
// Routes:
//
//	GET  /forms        found, loaded and supported forms plus the default
//	POST /parse        {"expr": "1.5 kcal", "form": "gonum", "unit": false}
//	POST /convert      {"expr": "1.5 kcal", "to": "kJ"}
//	POST /translate    {"expr": "10 m", "to_form": "gounits"}
//	POST /standardize  {"expr": "1 km"}
//
// The server never loads, unloads or switches forms: a request picks its
// form with the "form" field and falls back to the wizard's default.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/unitwiz/pkg/errors"
	"github.com/matzehuels/unitwiz/pkg/forms"
	"github.com/matzehuels/unitwiz/pkg/wizard"
)

const (
	maxBodyBytes    = 64 << 10
	shutdownTimeout = 5 * time.Second
)

// Server serves the HTTP API for one wizard.
type Server struct {
	wiz    *wizard.Wizard
	logger *log.Logger
	router chi.Router
}

// New builds the router for w. Requests are logged at debug level.
func New(w *wizard.Wizard, logger *log.Logger) *Server {
	s := &Server{wiz: w, logger: logger, router: chi.NewRouter()}
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.logRequests)

	s.router.Get("/forms", s.handleForms)
	s.router.Post("/parse", s.handleParse)
	s.router.Post("/convert", s.handleConvert)
	s.router.Post("/translate", s.handleTranslate)
	s.router.Post("/standardize", s.handleStandardize)
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
			"id", middleware.GetReqID(r.Context()))
	})
}

// =============================================================================
// Payloads
// =============================================================================

type request struct {
	Expr   string `json:"expr"`
	Form   string `json:"form,omitempty"`
	Unit   bool   `json:"unit,omitempty"`
	To     string `json:"to,omitempty"`
	ToForm string `json:"to_form,omitempty"`
}

// Value describes a quantity or unit in a response.
type Value struct {
	Form         string         `json:"form"`
	Text         string         `json:"text"`
	Magnitude    any            `json:"magnitude,omitempty"`
	Unit         string         `json:"unit"`
	Dimension    string         `json:"dimension"`
	Exponents    map[string]int `json:"exponents,omitempty"`
	Intermediate string         `json:"intermediate,omitempty"`
}

// FormsResponse is the body of GET /forms.
type FormsResponse struct {
	Found     []forms.Form `json:"found"`
	Loaded    []forms.Form `json:"loaded"`
	Supported []forms.Form `json:"supported"`
	Default   forms.Form   `json:"default,omitempty"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
	Form    string      `json:"form,omitempty"`
	Input   string      `json:"input,omitempty"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleForms(w http.ResponseWriter, r *http.Request) {
	resp := FormsResponse{
		Found:     s.wiz.ListFound(),
		Loaded:    s.wiz.ListLoaded(),
		Supported: s.wiz.ListSupported(),
	}
	if s.wiz.Registry().HasDefault() {
		resp.Default, _ = s.wiz.GetDefaultForm()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	var (
		x   any
		err error
	)
	if req.Unit {
		x, err = s.wiz.ParseUnit(req.Expr, callOptions(req.Form)...)
	} else {
		x, err = s.wiz.ParseQuantity(req.Expr, callOptions(req.Form)...)
	}
	s.respond(w, x, err)
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	if req.To == "" {
		s.fail(w, errors.New(errors.ErrCodeInvalidInput, "field \"to\" is required"))
		return
	}
	q, err := s.wiz.ParseQuantity(req.Expr, callOptions(req.Form)...)
	if err != nil {
		s.fail(w, err)
		return
	}
	out, err := s.wiz.Convert(q, req.To)
	s.respond(w, out, err)
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	if err := errors.ValidateFormName(req.ToForm); err != nil {
		s.fail(w, err)
		return
	}
	q, err := s.wiz.ParseQuantity(req.Expr, callOptions(req.Form)...)
	if err != nil {
		s.fail(w, err)
		return
	}
	in, err := s.wiz.Decompose(q)
	if err != nil {
		s.fail(w, err)
		return
	}
	out, err := s.wiz.Translate(q, forms.Form(req.ToForm))
	if err != nil {
		s.fail(w, err)
		return
	}
	v, err := s.describe(out)
	if err != nil {
		s.fail(w, err)
		return
	}
	v.Intermediate = in.Expr
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleStandardize(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	q, err := s.wiz.ParseQuantity(req.Expr, callOptions(req.Form)...)
	if err != nil {
		s.fail(w, err)
		return
	}
	out, err := s.wiz.Standardize(q)
	s.respond(w, out, err)
}

// =============================================================================
// Helpers
// =============================================================================

func callOptions(form string) []wizard.CallOption {
	if form == "" {
		return nil
	}
	return []wizard.CallOption{wizard.InForm(forms.Form(form))}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (request, bool) {
	var req request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.fail(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return request{}, false
	}
	if req.Form != "" {
		if err := errors.ValidateFormName(req.Form); err != nil {
			s.fail(w, err)
			return request{}, false
		}
	}
	return req, true
}

func (s *Server) respond(w http.ResponseWriter, x any, err error) {
	if err != nil {
		s.fail(w, err)
		return
	}
	v, err := s.describe(x)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) describe(x any) (Value, error) {
	form, err := s.wiz.GetForm(x)
	if err != nil {
		return Value{}, err
	}
	text, err := s.wiz.ToString(x)
	if err != nil {
		return Value{}, err
	}
	d, err := s.wiz.Dimensionality(x)
	if err != nil {
		return Value{}, err
	}
	v := Value{Form: string(form), Text: text, Dimension: d.String(), Exponents: d.Map()}

	u := x
	if s.wiz.IsQuantity(x) {
		mag, unit, err := s.wiz.GetMagnitudeAndUnit(x)
		if err != nil {
			return Value{}, err
		}
		v.Magnitude, u = mag, unit
	}
	if v.Unit, err = s.wiz.ToString(u); err != nil {
		return Value{}, err
	}
	return v, nil
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status := statusFor(errors.GetCode(err))
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	detail := errorDetail{Code: errors.GetCode(err), Message: errors.UserMessage(err)}
	if e, ok := err.(*errors.Error); ok {
		detail.Form, detail.Input = e.Form, e.Input
	}
	writeJSON(w, status, errorBody{Error: detail})
}

// statusFor maps error codes to HTTP statuses: malformed requests are 400,
// well-formed requests the units cannot satisfy are 422.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeParse, errors.ErrCodeInvalidForm, errors.ErrCodeTypeMismatch:
		return http.StatusBadRequest
	case errors.ErrCodeDimensionMismatch, errors.ErrCodeUnsupportedDimension, errors.ErrCodeUnsupportedUnit:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeLoad:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
