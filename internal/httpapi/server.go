package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hostevents/internal/events"
	"hostevents/internal/upstream"
	"hostevents/pkg/types"
)

// Service is the daemon surface the HTTP layer drives.
type Service interface {
	Post(n types.Notification) (events.Kind, error)
	NotifyCommand(name string, payload any) error
	Subscribe(l events.Listener) (events.Subscription, error)
	Status() types.StatusResponse
	Ready() bool
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: defaultIfEmpty(corsAllowedOrigins, []string{"*"}),
			AllowedMethods: defaultIfEmpty(corsAllowedMethods, []string{"GET", "POST", "OPTIONS"}),
			AllowedHeaders: defaultIfEmpty(corsAllowedHeaders, []string{"Content-Type", "X-Log-Level"}),
			MaxAge:         300,
		}))
	}

	// The websocket stream must not sit behind the compressor.
	r.Get("/stream", streamHandler(svc))

	r.Group(func(r chi.Router) {
		// Compression for JSON endpoints
		r.Use(middleware.Compress(5))
		r.Post("/native/{kind}", postNative(svc))
		r.Post("/commands", postCommand(svc))
		r.Get("/status", getStatus(svc))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("starting"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}

// postNative godoc
// @Summary      Push a native notification
// @Description  Queues one upstream notification for delivery to registered listeners.
// @Tags         native
// @Accept       json
// @Produce      json
// @Param        kind     path  string  true  "Notification kind"  Enums(app-launched, component-lifecycle, command-completed, native-event)
// @Param        payload  body  object  false "Kind-specific payload"
// @Success      202  {object}  types.AcceptedResponse
// @Failure      400  {object}  types.ErrorResponse
// @Failure      404  {object}  types.ErrorResponse
// @Failure      415  {object}  types.ErrorResponse
// @Failure      429  {object}  types.ErrorResponse
// @Failure      503  {object}  types.ErrorResponse
// @Router       /native/{kind} [post]
func postNative(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isJSON(r) {
			writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}
		name := chi.URLParam(r, "kind")
		// Limit body size (configurable, default 1MiB)
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if len(body) > 0 && !json.Valid(body) {
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		kind, err := svc.Post(types.Notification{Kind: name, Payload: body})
		if err != nil {
			if z := requestEvent(r, LevelInfo, err); z != nil {
				z.Str("kind", name).Msg("notification rejected")
			}
			switch {
			case errors.Is(err, upstream.ErrUnknownKind):
				writeJSONError(w, http.StatusNotFound, err.Error())
			case errors.Is(err, upstream.ErrBadPayload):
				writeJSONError(w, http.StatusBadRequest, err.Error())
			default:
				rejectQueued(w, err)
			}
			return
		}
		IncrementNotification(kind.String())
		if z := requestEvent(r, LevelDebug, nil); z != nil {
			z.Str("kind", kind.String()).Msg("notification queued")
		}
		writeAccepted(w, kind, svc)
	}
}

// postCommand godoc
// @Summary      Notify command listeners
// @Description  Queues a command notification for every registered command listener.
// @Tags         commands
// @Accept       json
// @Produce      json
// @Param        request  body  types.CommandRequest  true  "Command"
// @Success      202  {object}  types.AcceptedResponse
// @Failure      400  {object}  types.ErrorResponse
// @Failure      415  {object}  types.ErrorResponse
// @Failure      429  {object}  types.ErrorResponse
// @Failure      503  {object}  types.ErrorResponse
// @Router       /commands [post]
func postCommand(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isJSON(r) {
			writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var req types.CommandRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			writeJSONError(w, http.StatusBadRequest, "name is required")
			return
		}
		if err := svc.NotifyCommand(req.Name, req.Payload); err != nil {
			if z := requestEvent(r, LevelInfo, err); z != nil {
				z.Str("command", req.Name).Msg("command rejected")
			}
			rejectQueued(w, err)
			return
		}
		IncrementNotification(events.KindCommand.String())
		if z := requestEvent(r, LevelDebug, nil); z != nil {
			z.Str("command", req.Name).Msg("command queued")
		}
		writeAccepted(w, events.KindCommand, svc)
	}
}

// getStatus godoc
// @Summary      Registry status
// @Tags         status
// @Produce      json
// @Success      200  {object}  types.StatusResponse
// @Router       /status [get]
func getStatus(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(svc.Status()); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
			return
		}
	}
}

func rejectQueued(w http.ResponseWriter, err error) {
	status := statusForQueueError(err)
	if status == http.StatusTooManyRequests {
		IncrementBackpressure("queue_full")
	}
	writeJSONError(w, status, err.Error())
}

func writeAccepted(w http.ResponseWriter, kind events.Kind, svc Service) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(types.AcceptedResponse{
		Kind:     kind.String(),
		QueueLen: svc.Status().QueueLen,
	})
}

func isJSON(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return ct != "" && strings.HasPrefix(strings.ToLower(ct), "application/json")
}

func defaultIfEmpty(v, def []string) []string {
	if len(v) == 0 {
		return def
	}
	return v
}
