package devserver

import (
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Deps are the collaborators shared by the handlers.
type Deps struct {
	Config  Config
	Users   *Directory
	Tokens  *Tokens
	Limiter *IPRateLimiter
	Log     zerolog.Logger
}

// Router builds the HTTP handler: CORS, request id, request logging and
// panic recovery for every route, rate limiting on login only.
func Router(deps *Deps) http.Handler {
	if deps.Limiter == nil {
		deps.Limiter = NewIPRateLimiter(rate.Limit(deps.Config.LoginRate), deps.Config.LoginBurst)
	}

	r := chi.NewRouter()

	origins := deps.Config.AllowedOrigins
	if deps.Config.Dev || len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(deps.Log))
	r.Use(middleware.Recoverer)

	r.Get("/health", HandleHealth)

	r.Route("/api", func(api chi.Router) {
		api.With(deps.Limiter.Middleware).Post("/login", HandleLogin(deps))
	})

	return r
}

// anonymizeIP zeroes the host part of an address before it is logged.
func anonymizeIP(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}

	ip := net.ParseIP(addr)
	if ip == nil {
		return "unknown_ip"
	}
	if ip.IsLoopback() {
		return "127.0.0.1"
	}
	if v4 := ip.To4(); v4 != nil {
		return v4[:3].String() + ".0"
	}
	return ip.Mask(net.CIDRMask(64, 128)).String()
}

// RequestLogger logs one line per request and puts a request scoped logger
// into the context for handlers (zerolog.Ctx).
func RequestLogger(base zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			logger := base.With().
				Str("component", "http").
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("remote_ip", anonymizeIP(r.RemoteAddr)).
				Str("request_method", r.Method).
				Str("request_uri", r.RequestURI).
				Logger()
			r = r.WithContext(logger.WithContext(r.Context()))

			start := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()
			ev := logger.Info()
			switch {
			case status >= 500:
				ev = logger.Error()
			case status >= 400:
				ev = logger.Warn()
			}
			ev.Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("latency", time.Since(start)).
				Msg("request completed")
		})
	}
}
