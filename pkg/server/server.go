// Package server exposes the normalization engine over HTTP.
package server

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/TryMightyAI/unorm/pkg/cache"
	"github.com/TryMightyAI/unorm/pkg/config"
	"github.com/TryMightyAI/unorm/pkg/norm"
)

// Server wires the engine, the result cache, and the HTTP routes.
type Server struct {
	app   *fiber.App
	cfg   *config.Config
	cache cache.Cache
}

// New builds a Server from cfg. A nil results cache falls back to the
// no-op implementation.
func New(cfg *config.Config, results cache.Cache) *Server {
	if results == nil {
		results = cache.Noop{}
	}
	s := &Server{
		cfg:   cfg,
		cache: results,
	}
	s.app = fiber.New(fiber.Config{
		AppName:   "unorm",
		BodyLimit: cfg.MaxTextBytes + 4096, // JSON envelope overhead
	})
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Use(requestID)
	s.app.Get("/healthz", s.handleHealth)
	s.app.Post("/v1/normalize", s.handleNormalize)
	s.app.Post("/v1/check", s.handleCheck)
	s.app.Post("/v1/compare", s.handleCompare)
}

// Listen serves until the listener fails or is shut down.
func (s *Server) Listen() error {
	fmt.Printf("[INFO] unorm listening on %s\n", s.cfg.ListenAddr)
	return s.app.Listen(s.cfg.ListenAddr)
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App returns the underlying fiber app, used by tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// requestID tags every request and response for log correlation.
func requestID(c fiber.Ctx) error {
	id := c.Get("X-Request-ID")
	if id == "" {
		id = uuid.New().String()
	}
	c.Locals("request_id", id)
	c.Set("X-Request-ID", id)
	return c.Next()
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) fail(c fiber.Ctx, status int, err error) error {
	id, _ := c.Locals("request_id").(string)
	return c.Status(status).JSON(errorResponse{Error: err.Error(), RequestID: id})
}

// engineStatus maps engine error kinds to HTTP statuses.
func engineStatus(err error) int {
	if errors.Is(err, norm.ErrInvalidInput) {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// failTooLarge rejects a request whose text exceeds the configured cap.
// Every text-bearing endpoint enforces the cap itself; the fiber body
// limit only guards the raw envelope.
func (s *Server) failTooLarge(c fiber.Ctx) error {
	return s.fail(c, fiber.StatusRequestEntityTooLarge,
		fmt.Errorf("text exceeds %d bytes", s.cfg.MaxTextBytes))
}

func (s *Server) parseForm(name string) (norm.Form, error) {
	if name == "" {
		name = s.cfg.DefaultForm
	}
	return norm.ParseForm(name)
}

type normalizeRequest struct {
	Form string `json:"form"`
	Text string `json:"text"`
}

type normalizeResponse struct {
	Form    string `json:"form"`
	Result  string `json:"result"`
	Changed bool   `json:"changed"`
}

func (s *Server) handleNormalize(c fiber.Ctx) error {
	var req normalizeRequest
	if err := c.Bind().Body(&req); err != nil {
		return s.fail(c, fiber.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
	}
	if len(req.Text) > s.cfg.MaxTextBytes {
		return s.failTooLarge(c)
	}
	form, err := s.parseForm(req.Form)
	if err != nil {
		return s.fail(c, fiber.StatusBadRequest, err)
	}

	if hit, err := s.cache.Get(c.Context(), form.String(), req.Text); err == nil {
		return c.JSON(normalizeResponse{
			Form:    form.String(),
			Result:  hit,
			Changed: hit != req.Text,
		})
	}

	result, err := norm.NormalizeString(form, req.Text)
	if err != nil {
		return s.fail(c, engineStatus(err), err)
	}
	if err := s.cache.Set(c.Context(), form.String(), req.Text, result); err != nil {
		// Serving the result matters more than caching it.
		fmt.Printf("[WARN] cache store failed: %v\n", err)
	}
	return c.JSON(normalizeResponse{
		Form:    form.String(),
		Result:  result,
		Changed: result != req.Text,
	})
}

type checkRequest struct {
	Form string `json:"form"`
	Text string `json:"text"`
}

type checkResponse struct {
	Form       string `json:"form"`
	QuickCheck string `json:"quick_check"`
	Normalized bool   `json:"normalized"`
}

func (s *Server) handleCheck(c fiber.Ctx) error {
	var req checkRequest
	if err := c.Bind().Body(&req); err != nil {
		return s.fail(c, fiber.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
	}
	if len(req.Text) > s.cfg.MaxTextBytes {
		return s.failTooLarge(c)
	}
	form, err := s.parseForm(req.Form)
	if err != nil {
		return s.fail(c, fiber.StatusBadRequest, err)
	}

	quick := norm.QuickCheck(form, []rune(req.Text))
	normalized, err := norm.IsNormalString(form, req.Text)
	if err != nil {
		return s.fail(c, engineStatus(err), err)
	}
	return c.JSON(checkResponse{
		Form:       form.String(),
		QuickCheck: quick.String(),
		Normalized: normalized,
	})
}

type compareRequest struct {
	A              string `json:"a"`
	B              string `json:"b"`
	IgnoreCase     bool   `json:"ignore_case"`
	CodePointOrder bool   `json:"code_point_order"`
	InputIsFCD     bool   `json:"input_is_fcd"`
}

type compareResponse struct {
	Ordering int  `json:"ordering"`
	Equal    bool `json:"equal"`
}

func (s *Server) handleCompare(c fiber.Ctx) error {
	var req compareRequest
	if err := c.Bind().Body(&req); err != nil {
		return s.fail(c, fiber.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
	}
	if len(req.A) > s.cfg.MaxTextBytes || len(req.B) > s.cfg.MaxTextBytes {
		return s.failTooLarge(c)
	}
	var opts norm.CompareOption
	if req.IgnoreCase {
		opts |= norm.IgnoreCase
	}
	if req.CodePointOrder {
		opts |= norm.CodePointOrder
	}
	if req.InputIsFCD {
		opts |= norm.InputIsFCD
	}

	ordering, err := norm.Compare(opts, []rune(req.A), []rune(req.B))
	if err != nil {
		return s.fail(c, engineStatus(err), err)
	}
	return c.JSON(compareResponse{Ordering: ordering, Equal: ordering == 0})
}

type healthResponse struct {
	Status string `json:"status"`
	Cache  bool   `json:"cache"`
}

func (s *Server) handleHealth(c fiber.Ctx) error {
	return c.JSON(healthResponse{
		Status: "ok",
		Cache:  s.cache.IsHealthy(c.Context()),
	})
}
