// Package dispatch is the single choke point every inbound operation passes
// through: validation, then a circuit-breaker-guarded, cache-backed handler
// invocation, then error translation.
package dispatch

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/yeshsurya/React-Flow-MCP-Server/internal/breaker"
	"github.com/yeshsurya/React-Flow-MCP-Server/internal/cache"
	"github.com/yeshsurya/React-Flow-MCP-Server/internal/catalog"
	"github.com/yeshsurya/React-Flow-MCP-Server/internal/errors"
	"github.com/yeshsurya/React-Flow-MCP-Server/internal/logging"
	"github.com/yeshsurya/React-Flow-MCP-Server/internal/validation"
)

// Handler maps normalized parameters to a content payload.
type Handler func(ctx context.Context, params validation.Params) (*catalog.Result, error)

// Result cache TTLs by operation shape. The content is static, so staleness
// is a performance concern only; these follow the calling convention of
// 30 min for single-item lookups, 60 min for lists, 15 min for searches.
const (
	TTLSingle = 30 * time.Minute
	TTLList   = 60 * time.Minute
	TTLSearch = 15 * time.Minute
)

// Dispatcher orchestrates validation, breaker-guarded invocation, and error
// translation for every inbound operation.
type Dispatcher struct {
	validator *validation.Validator
	breaker   *breaker.CircuitBreaker
	cache     *cache.QueryCache
	handlers  map[string]Handler
	logger    logging.Logger
}

// New creates a dispatcher wired to the given catalog. The cache and breaker
// are constructed once at process start and injected here so tests can use
// fresh instances.
func New(cat *catalog.Catalog, cb *breaker.CircuitBreaker, qc *cache.QueryCache, logger logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.NopLogger{}
	}

	d := &Dispatcher{
		validator: validation.NewValidator(logger),
		breaker:   cb,
		cache:     qc,
		handlers:  make(map[string]Handler),
		logger:    logger.WithComponent("dispatch"),
	}

	d.registerCatalogHandlers(cat)
	return d
}

// Register installs a handler for an operation, replacing any existing one.
// Used by the catalog wiring and by tests that need failing handlers.
func (d *Dispatcher) Register(operation string, h Handler) {
	d.handlers[operation] = h
}

// Dispatch validates rawParams, then invokes the operation's handler under
// the circuit breaker with a cache in front of the computation.
//
// Validation failures return immediately; the breaker and handler are never
// reached. A breaker rejection surfaces as a circuit-open error. Handler
// errors are logged with operation context, counted toward the breaker's
// failure budget, and propagated unchanged. Unknown names are not errors:
// handlers return a successful payload listing the valid alternatives.
func (d *Dispatcher) Dispatch(ctx context.Context, operation string, rawParams map[string]interface{}) (*catalog.Result, error) {
	params, err := d.validator.Validate(ctx, operation, rawParams)
	if err != nil {
		d.logger.Warn(ctx, err, "Request validation failed", "operation", operation)
		return nil, err
	}

	handler, ok := d.handlers[operation]
	if !ok {
		err := errors.NewHandlerError(
			errors.ErrCodeUnknownOperation,
			fmt.Sprintf("no handler registered for operation %q", operation),
			nil,
		).WithOperation(operation)
		d.logger.Error(ctx, err, "Unknown operation", "operation", operation)
		return nil, err
	}

	key := cacheKey(operation, params)

	var result *catalog.Result
	err = d.breaker.Execute(ctx, func(ctx context.Context) error {
		if text, hit := d.cache.Get(key); hit {
			result = catalog.TextResult(text)
			return nil
		}

		r, herr := handler(ctx, params)
		if herr != nil {
			return herr
		}

		result = r
		d.cache.Set(key, r.Text(), ttlFor(operation))
		return nil
	})

	if err != nil {
		if errors.IsCircuitOpen(err) {
			d.logger.Warn(ctx, err, "Circuit breaker rejected operation", "operation", operation)
		} else {
			d.logger.Error(ctx, err, "Operation handler failed", "operation", operation)
		}
		return nil, err
	}

	d.logger.Debug(ctx, "Operation completed", "operation", operation)
	return result, nil
}

// BreakerState exposes the breaker's state for health reporting.
func (d *Dispatcher) BreakerState() breaker.State {
	return d.breaker.State()
}

// CacheHitRate exposes the cache hit rate for health reporting.
func (d *Dispatcher) CacheHitRate() float64 {
	return d.cache.HitRate()
}

// ttlFor picks the cache TTL for an operation by its shape.
func ttlFor(operation string) time.Duration {
	switch {
	case operation == validation.OpSearchExamples:
		return TTLSearch
	case strings.HasPrefix(operation, "list_"):
		return TTLList
	default:
		return TTLSingle
	}
}

// cacheKey builds a stable key from the operation and normalized parameters.
func cacheKey(operation string, params validation.Params) string {
	if len(params) == 0 {
		return operation
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(operation)
	for _, k := range keys {
		b.WriteByte('|')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	return b.String()
}

// registerCatalogHandlers wires every operation to its catalog lookup.
// Catalog lookups cannot fail; unknown names yield descriptive payloads.
func (d *Dispatcher) registerCatalogHandlers(cat *catalog.Catalog) {
	d.Register(validation.OpGetComponent, func(_ context.Context, p validation.Params) (*catalog.Result, error) {
		return cat.GetComponent(p.Get("componentName")), nil
	})
	d.Register(validation.OpListComponents, func(_ context.Context, p validation.Params) (*catalog.Result, error) {
		return cat.ListComponents(p.Get("category")), nil
	})
	d.Register(validation.OpGetHook, func(_ context.Context, p validation.Params) (*catalog.Result, error) {
		return cat.GetHook(p.Get("hookName")), nil
	})
	d.Register(validation.OpListHooks, func(_ context.Context, p validation.Params) (*catalog.Result, error) {
		return cat.ListHooks(p.Get("category")), nil
	})
	d.Register(validation.OpGetType, func(_ context.Context, p validation.Params) (*catalog.Result, error) {
		return cat.GetType(p.Get("typeName")), nil
	})
	d.Register(validation.OpListTypes, func(_ context.Context, p validation.Params) (*catalog.Result, error) {
		return cat.ListTypes(p.Get("category")), nil
	})
	d.Register(validation.OpGetUtility, func(_ context.Context, p validation.Params) (*catalog.Result, error) {
		return cat.GetUtility(p.Get("utilityName")), nil
	})
	d.Register(validation.OpListUtilities, func(_ context.Context, _ validation.Params) (*catalog.Result, error) {
		return cat.ListUtilities(), nil
	})
	d.Register(validation.OpGetExample, func(_ context.Context, p validation.Params) (*catalog.Result, error) {
		return cat.GetExample(p.Get("exampleType")), nil
	})
	d.Register(validation.OpSearchExamples, func(_ context.Context, p validation.Params) (*catalog.Result, error) {
		return cat.SearchExamples(p.Get("query")), nil
	})
	d.Register(validation.OpGetDocs, func(_ context.Context, p validation.Params) (*catalog.Result, error) {
		return cat.GetDocs(p.Get("topic")), nil
	})
}
