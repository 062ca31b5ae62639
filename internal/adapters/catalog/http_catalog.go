package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"route-resolver-service/internal/domain"
	"route-resolver-service/internal/platform/obs"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// StatusError reports a non-2xx answer from the catalog backend.
type StatusError struct {
	Code int
	Body string
	Hint string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("catalog: status %d", e.Code)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

// ErrInvalidInput wraps every validation failure, before any request is sent.
var ErrInvalidInput = errors.New("catalog: invalid input")

const hintReservasByRuta = "the reservations-by-route endpoint (/api/reservas/ruta/{rutaId}) is not available on the backend"

// HTTPCatalog is a JSON client for the routes and reservations CRUD backend.
type HTTPCatalog struct {
	session  *http.Client
	baseURL  *url.URL
	validate *validator.Validate
	logger   *zap.Logger
}

func NewHTTPCatalog(baseURL string, timeout time.Duration, logger *zap.Logger) (*HTTPCatalog, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("catalog: parse base url: %w", err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("catalog: base url %q must be absolute", baseURL)
	}
	if timeout <= 0 {
		return nil, errors.New("catalog: timeout must be positive")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &HTTPCatalog{
		session:  &http.Client{Timeout: timeout},
		baseURL:  u,
		validate: validator.New(),
		logger:   logger,
	}, nil
}

func (c *HTTPCatalog) ListRutas(ctx context.Context) (_ []domain.Ruta, err error) {
	defer obs.Time(ctx, c.logger, "catalog.ListRutas")(&err)

	var out []domain.Ruta
	if err := c.doJSON(ctx, http.MethodGet, "/api/rutas", nil, &out); err != nil {
		return nil, fmt.Errorf("list rutas: %w", err)
	}
	return out, nil
}

func (c *HTTPCatalog) CreateRuta(ctx context.Context, r domain.Ruta) (_ domain.Ruta, err error) {
	defer obs.Time(ctx, c.logger, "catalog.CreateRuta")(&err)

	if err := c.check(r); err != nil {
		return domain.Ruta{}, fmt.Errorf("create ruta: %w", err)
	}

	r.ID = 0
	var out domain.Ruta
	if err := c.doJSON(ctx, http.MethodPost, "/api/rutas", r, &out); err != nil {
		return domain.Ruta{}, fmt.Errorf("create ruta: %w", err)
	}
	return out, nil
}

func (c *HTTPCatalog) UpdateRuta(ctx context.Context, id int64, r domain.Ruta) (_ domain.Ruta, err error) {
	defer obs.Time(ctx, c.logger, "catalog.UpdateRuta")(&err)

	if id <= 0 {
		return domain.Ruta{}, fmt.Errorf("update ruta: %w: id must be positive", ErrInvalidInput)
	}
	if err := c.check(r); err != nil {
		return domain.Ruta{}, fmt.Errorf("update ruta %d: %w", id, err)
	}

	r.ID = 0
	var out domain.Ruta
	if err := c.doJSON(ctx, http.MethodPut, "/api/rutas/"+strconv.FormatInt(id, 10), r, &out); err != nil {
		return domain.Ruta{}, fmt.Errorf("update ruta %d: %w", id, err)
	}
	return out, nil
}

func (c *HTTPCatalog) DeleteRuta(ctx context.Context, id int64) (err error) {
	defer obs.Time(ctx, c.logger, "catalog.DeleteRuta")(&err)

	if id <= 0 {
		return fmt.Errorf("delete ruta: %w: id must be positive", ErrInvalidInput)
	}
	if err := c.doJSON(ctx, http.MethodDelete, "/api/rutas/"+strconv.FormatInt(id, 10), nil, nil); err != nil {
		return fmt.Errorf("delete ruta %d: %w", id, err)
	}
	return nil
}

func (c *HTTPCatalog) CreateReserva(ctx context.Context, r domain.Reserva) (_ domain.Reserva, err error) {
	defer obs.Time(ctx, c.logger, "catalog.CreateReserva")(&err)

	if err := c.check(r); err != nil {
		return domain.Reserva{}, fmt.Errorf("create reserva: %w", err)
	}

	r.ID = 0
	var out domain.Reserva
	if err := c.doJSON(ctx, http.MethodPost, "/api/reservas", r, &out); err != nil {
		return domain.Reserva{}, fmt.Errorf("create reserva: %w", err)
	}
	return out, nil
}

func (c *HTTPCatalog) ListReservasByRuta(ctx context.Context, rutaID int64) (_ []domain.Reserva, err error) {
	defer obs.Time(ctx, c.logger, "catalog.ListReservasByRuta")(&err)

	if rutaID <= 0 {
		return nil, fmt.Errorf("list reservas: %w: ruta id must be positive", ErrInvalidInput)
	}

	var out []domain.Reserva
	err = c.doJSON(ctx, http.MethodGet, "/api/reservas/ruta/"+strconv.FormatInt(rutaID, 10), nil, &out)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			se.Hint = hintReservasByRuta
		}
		return nil, fmt.Errorf("list reservas for ruta %d: %w", rutaID, err)
	}
	return out, nil
}

// check runs struct validation and reports failures as ErrInvalidInput.
func (c *HTTPCatalog) check(v any) error {
	if err := c.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// doJSON sends body (when non-nil) as JSON and decodes a 2xx answer into out
// (when non-nil). Non-2xx answers become *StatusError.
func (c *HTTPCatalog) doJSON(ctx context.Context, method, path string, body any, out any) error {
	endpoint := c.baseURL.ResolveReference(&url.URL{Path: path})

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.session.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
