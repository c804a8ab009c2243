package ratelimit

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Limiter — лимит запросов на клиента по фиксированному окну.
// Превышение отвечает 429; клиент ленты трактует его как терминальный
// сигнал и перестает подгружать страницы.
type Limiter struct {
	log    *slog.Logger
	limit  int
	window time.Duration

	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	start time.Time
	count int
}

func New(limit int, per time.Duration, log *slog.Logger) *Limiter {
	return &Limiter{
		log:     log.With(slog.String("component", "ratelimit")),
		limit:   limit,
		window:  per,
		windows: make(map[string]*window),
	}
}

func (l *Limiter) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !l.allow(clientKey(ctx.RemoteAddr())) {
			ctx.SetStatus(http.StatusTooManyRequests)
			ctx.SetHeader("Content-Type", "application/json")
			if err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
				"message": "Слишком много запросов",
			}); err != nil {
				l.log.Error("не удалось записать тело 429", "error", err)
			}
			return
		}

		next(ctx)
	}
}

func (l *Limiter) allow(key string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.window {
		// заодно выбрасываем чужие истекшие окна, чтобы карта не росла
		if len(l.windows) > 1024 {
			for k, old := range l.windows {
				if now.Sub(old.start) >= l.window {
					delete(l.windows, k)
				}
			}
		}
		l.windows[key] = &window{start: now, count: 1}
		return true
	}

	w.count++
	return w.count <= l.limit
}

func clientKey(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
