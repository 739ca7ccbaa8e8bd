package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"hostevents/internal/events"
	"hostevents/pkg/types"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// With CORS enabled browsers from other origins are expected.
		if corsEnabled {
			return true
		}
		origin := r.Header.Get("Origin")
		return origin == "" || strings.HasSuffix(origin, "://"+r.Host)
	},
}

// streamKinds is the default kind set for /stream when ?kinds= is absent.
var streamKinds []events.Kind

// SetStreamKinds sets the default kinds streamed to clients. Unknown names
// are returned as an error and leave the current setting untouched.
func SetStreamKinds(names []string) error {
	kinds, err := parseKinds(names)
	if err != nil {
		return err
	}
	streamKinds = kinds
	return nil
}

func parseKinds(names []string) ([]events.Kind, error) {
	var out []events.Kind
	seen := make(map[events.Kind]bool)
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		k, err := events.ParseKind(n)
		if err != nil {
			return nil, err
		}
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out, nil
}

// streamHandler godoc
// @Summary      Stream events over a websocket
// @Description  Upgrades to a websocket and writes one JSON frame per delivered event.
// @Tags         stream
// @Param        kinds  query  string  false  "Comma-separated kind names (default: all)"
// @Success      101  {object}  types.StreamFrame
// @Failure      400  {object}  types.ErrorResponse
// @Failure      503  {object}  types.ErrorResponse
// @Router       /stream [get]
func streamHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kinds := streamKinds
		if q := r.URL.Query().Get("kinds"); q != "" {
			parsed, err := parseKinds(strings.Split(q, ","))
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, err.Error())
				return
			}
			kinds = parsed
		}
		if len(kinds) == 0 {
			kinds = events.Kinds()
		}

		frames := make(chan types.StreamFrame, streamBuffer)
		push := func(kind events.Kind, name string, data any) {
			f := types.StreamFrame{Kind: kind.String(), Name: name, Data: data, TimeUnixMs: time.Now().UnixMilli()}
			select {
			case frames <- f:
			default:
				streamDroppedTotal.Inc()
			}
		}

		subs := make([]events.Subscription, 0, len(kinds))
		for _, k := range kinds {
			sub, err := svc.Subscribe(streamListener(k, push))
			if err != nil {
				events.NewGroup(subs...).Remove()
				writeJSONError(w, http.StatusServiceUnavailable, err.Error())
				return
			}
			subs = append(subs, sub)
		}
		group := events.NewGroup(subs...)
		defer group.Remove()

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// The upgrader already replied to the client.
			if z := requestEvent(r, LevelError, err); z != nil {
				z.Msg("stream upgrade failed")
			}
			return
		}
		defer conn.Close()
		streamClients.Inc()
		defer streamClients.Dec()

		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		// Hijacked connections never cancel the request context, so a reader
		// goroutine watches for the client going away.
		go func() {
			defer cancel()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		if z := requestEvent(r, LevelInfo, nil); z != nil {
			z.Str("subscription", group.ID()).Int("kinds", len(kinds)).Msg("stream open")
		}
		err = writeFrames(ctx, conn, frames)
		if z := requestEvent(r, LevelInfo, err); z != nil {
			z.Str("subscription", group.ID()).Msg("stream closed")
		}
	}
}

func writeFrames(ctx context.Context, conn *websocket.Conn, frames <-chan types.StreamFrame) error {
	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
				time.Now().Add(time.Second))
			return nil
		case f := <-frames:
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
			if err := conn.WriteJSON(f); err != nil {
				return fmt.Errorf("write frame: %w", err)
			}
		}
	}
}

// streamListener builds the listener variant for kind that forwards every
// event to push.
func streamListener(kind events.Kind, push func(events.Kind, string, any)) events.Listener {
	switch kind {
	case events.KindAppLaunched:
		return events.AppLaunchedListener(func() { push(kind, "", nil) })
	case events.KindComponentLifecycle:
		return events.ComponentLifecycleListener(func(ev events.LifecycleEvent) {
			push(kind, string(ev.Type), ev)
		})
	case events.KindCommand:
		return events.CommandListener(func(name string, params any) { push(kind, name, params) })
	case events.KindCommandCompleted:
		return events.CommandCompletedListener(func(ev events.CommandCompletedEvent) {
			push(kind, ev.CommandID, ev)
		})
	default:
		return events.NativeEventListener(func(name string, params any) { push(kind, name, params) })
	}
}
