package ranger

import (
	"fmt"
	"net/http"

	"github.com/xy-planning-network/override"
	"github.com/xy-planning-network/override/http/middleware"
	"github.com/xy-planning-network/override/http/router"
	"github.com/xy-planning-network/override/logger"
)

// An Option configures a *Ranger under construction.
// Options run after the Config is read from the environment
// and before any defaults fill in what the options left unset.
type Option func(rng *Ranger) error

// WithBeforeRouting replaces the middlewares wrapping the method override.
// They see every request before its method is overridden and before it is routed.
//
// By default, those are ForceHTTPS, RequestID, InjectIPAddress, RateLimit, CORS, and LogRequest.
func WithBeforeRouting(adapters ...middleware.Adapter) Option {
	return func(rng *Ranger) error {
		rng.beforeRouting = append([]middleware.Adapter{}, adapters...)
		return nil
	}
}

// WithEnv sets the Environment the Ranger runs in,
// replacing the value of the ENVIRONMENT environment variable.
func WithEnv(env override.Environment) Option {
	return func(rng *Ranger) error {
		if err := env.Valid(); err != nil {
			return fmt.Errorf("%w environment %q", err, env)
		}

		rng.cfg.Env = env
		return nil
	}
}

// WithHost sets the host the web server listens on.
func WithHost(host string) Option {
	return func(rng *Ranger) error {
		rng.cfg.Host = host
		return nil
	}
}

// WithLogger exposes the provided logger.Logger to the app.
func WithLogger(l logger.Logger) Option {
	return func(rng *Ranger) error {
		if l == nil {
			return fmt.Errorf("%w logger", override.ErrNotValid)
		}

		rng.l = l
		return nil
	}
}

// WithPort sets the port the web server listens on.
// "0" picks any free port; see [*Ranger.Addr].
func WithPort(port string) Option {
	return func(rng *Ranger) error {
		if port == "" {
			return fmt.Errorf("%w port", override.ErrNotValid)
		}

		rng.cfg.Port = port
		return nil
	}
}

// WithRouter exposes the provided *router.Router to the app.
func WithRouter(r *router.Router) Option {
	return func(rng *Ranger) error {
		if r == nil {
			return fmt.Errorf("%w router", override.ErrNotValid)
		}

		rng.Router = r
		return nil
	}
}

// WithServer uses the provided *http.Server.
// Its Handler is replaced with the Ranger's.
// An empty Addr is filled in from the host and port.
func WithServer(s *http.Server) Option {
	return func(rng *Ranger) error {
		if s == nil {
			return fmt.Errorf("%w server", override.ErrNotValid)
		}

		rng.srv = s
		return nil
	}
}
