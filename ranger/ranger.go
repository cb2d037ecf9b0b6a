package ranger

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/xy-planning-network/override"
	"github.com/xy-planning-network/override/http/middleware"
	"github.com/xy-planning-network/override/http/router"
	"github.com/xy-planning-network/override/logger"
)

// ReadyPath is answered by every Ranger with the result of [*Ranger.Ready].
const ReadyPath = "/readyz"

const shutdownTimeout = 5 * time.Second

// A Ranger manages and exposes all components of an app to one another.
type Ranger struct {
	*router.Router

	addr          atomic.Value
	beforeRouting []middleware.Adapter
	cfg           Config
	done          chan struct{}
	handler       http.Handler
	l             logger.Logger
	ov            *middleware.Override
	serving       atomic.Bool
	shutdown      sync.Once
	srv           *http.Server
}

// New constructs a Ranger from the environment and the provided options.
// Options supplied to New overwrite configuration read from the environment.
func New(opts ...Option) (*Ranger, error) {
	rng := &Ranger{
		cfg:  NewConfig(),
		done: make(chan struct{}),
	}

	for _, opt := range opts {
		if err := opt(rng); err != nil {
			return nil, fmt.Errorf("%w: %w", override.ErrBadConfig, err)
		}
	}

	if rng.l == nil {
		rng.l = logger.New(
			logger.WithEnv(rng.cfg.Env.String()),
			logger.WithLevel(rng.cfg.LogLevel),
		)
	}

	if rng.Router == nil {
		rng.Router = router.New(rng.cfg.Env)
	}

	if rng.beforeRouting == nil {
		rng.beforeRouting = defaultBeforeRouting(rng.cfg, rng.l)
	}

	if rng.srv == nil {
		rng.srv = &http.Server{
			IdleTimeout:  rng.cfg.IdleTimeout,
			ReadTimeout:  rng.cfg.ReadTimeout,
			WriteTimeout: rng.cfg.WriteTimeout,
		}
	}

	if rng.srv.Addr == "" {
		rng.srv.Addr = net.JoinHostPort(rng.cfg.Host, rng.cfg.Port)
	}

	// NOTE: the override wraps the router so routes match on the overridden method;
	// everything before routing wraps the override.
	rng.ov = middleware.NewOverride(rng.Router)
	adapters := append([]middleware.Adapter{rng.readiness()}, rng.beforeRouting...)
	rng.handler = middleware.Chain(rng.ov, adapters...)
	rng.srv.Handler = rng.handler

	rng.l.Debug(fmt.Sprintf("configured for %s at %s", rng.cfg.Env, rng.srv.Addr), nil)

	return rng, nil
}

// defaultBeforeRouting builds the middlewares every request passes through
// on its way to the method override.
func defaultBeforeRouting(cfg Config, l logger.Logger) []middleware.Adapter {
	var vs *middleware.Visitors
	if cfg.RateLimitRPS > 0 {
		vs = middleware.NewVisitors(float64(cfg.RateLimitRPS), cfg.RateLimitBurst)
	}

	return []middleware.Adapter{
		middleware.ForceHTTPS(cfg.ForceHTTPS),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.RateLimit(vs),
		middleware.CORS(cfg.BaseURL),
		middleware.LogRequest(l),
	}
}

// Addr is the address the web server is listening on,
// or empty if [*Ranger.Guide] has not been called.
func (rng *Ranger) Addr() string {
	addr, _ := rng.addr.Load().(string)
	return addr
}

// Config returns the Config the Ranger was built with.
func (rng *Ranger) Config() Config { return rng.cfg }

// EmitLogger exposes the Ranger's logger.Logger.
func (rng *Ranger) EmitLogger() logger.Logger { return rng.l }

// Handler is the http.Handler serving every request:
// the readiness check and before-routing middlewares around the method override around the router.
func (rng *Ranger) Handler() http.Handler { return rng.handler }

// ServeHTTP serves r through [*Ranger.Handler],
// rather than straight to the embedded router.
func (rng *Ranger) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rng.handler.ServeHTTP(w, r)
}

// Ready reports an error wrapping override.ErrNotReady
// unless the web server is running and its routes are ready.
func (rng *Ranger) Ready(ctx context.Context) error {
	if !rng.serving.Load() {
		return fmt.Errorf("%w: web server not running", override.ErrNotReady)
	}

	return rng.ov.Ready(ctx)
}

// Guide begins the web server and blocks until it stops.
// Guide returns immediately if the Ranger has already been shut down.
//
// These, and (*Ranger).Shutdown, stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (rng *Ranger) Guide() error {
	ln, err := net.Listen("tcp", rng.srv.Addr)
	if err != nil {
		return fmt.Errorf("could not listen: %w", err)
	}
	rng.addr.Store(ln.Addr().String())

	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer signal.Stop(ch)

	select {
	case <-rng.done:
		ln.Close()
		return nil
	default:
	}

	errCh := make(chan error, 1)
	served := make(chan struct{})
	rng.l.Info(fmt.Sprintf("running web server at %s", ln.Addr()), nil)
	go func() {
		defer close(served)
		if err := rng.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	rng.serving.Store(true)
	defer func() {
		rng.serving.Store(false)
		<-served
	}()

	select {
	case s := <-ch:
		rng.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
		return rng.Shutdown()
	case err := <-errCh:
		err = fmt.Errorf("could not serve: %w", err)
		rng.l.Error(err.Error(), &logger.LogContext{Error: err})
		return err
	case <-rng.done:
		return nil
	}
}

// Shutdown gracefully shuts down the web server,
// waiting up to five seconds for open requests to finish.
func (rng *Ranger) Shutdown() error {
	rng.serving.Store(false)

	var err error
	rng.shutdown.Do(func() {
		defer close(rng.done)

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		rng.l.Info("shutting down web server", nil)
		if err = rng.srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			err = fmt.Errorf("could not shutdown: %w", err)
			return
		}

		err = nil
		rng.l.Info("web server shutdown successfully", nil)
	})

	return err
}

// readiness answers GET requests to ReadyPath with 200 OK when ready
// and 503 Service Unavailable otherwise.
func (rng *Ranger) readiness() middleware.Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != ReadyPath || r.Method != http.MethodGet {
				h.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Cache-Control", "no-store")
			if err := rng.Ready(r.Context()); err != nil {
				http.Error(w, err.Error(), http.StatusServiceUnavailable)
				return
			}

			w.WriteHeader(http.StatusOK)
			fmt.Fprintln(w, "ok")
		})
	}
}
