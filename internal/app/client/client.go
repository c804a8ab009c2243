package client

import (
	"golang.org/x/exp/slog"

	"gomarket/internal/app/client/config"
)

// App собирает клиент целиком: транспорт, локальное хранилище
// и кооперирующие сторы. Каждый экземпляр App владеет собственными
// кэшами — глобального состояния между сессиями нет, поэтому тесты
// и параллельные сессии не протекают друг в друга.
type App struct {
	config *config.Config
	log    *slog.Logger

	Client    *Client
	Session   *SessionStore
	Cart      *CartStore
	Addresses *AddressStore
	Prefill   *PrefillCoordinator
	Feed      *FeedPager
	Favorites *FavoritesStore
	Orders    *OrderStore
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpClient := NewClient(cfg.ServerURL, log)

	// локальное хранилище: sqlite на диске, при неудаче — память
	var backend KVBackend
	sqliteBackend, err := NewSQLiteBackend(cfg.DataPath)
	if err != nil {
		log.Warn("не удалось открыть локальную базу, используем память", "error", err)
		backend = NewMemoryBackend()
	} else {
		backend = sqliteBackend
	}
	store := NewStore(backend, log)

	session := NewSessionStore(httpClient, store, log)
	cart := NewCartStore(store, log)
	addresses := NewAddressStore(httpClient, log)
	prefill := NewPrefillCoordinator(httpClient, addresses, log)

	app := &App{
		config:    cfg,
		log:       log,
		Client:    httpClient,
		Session:   session,
		Cart:      cart,
		Addresses: addresses,
		Prefill:   prefill,
		Feed:      NewFeedPager(httpClient, log),
		Favorites: NewFavoritesStore(httpClient, log),
		Orders:    NewOrderStore(httpClient, log),
	}

	// восстанавливаем сессию с прошлого запуска
	session.Hydrate()

	return app, nil
}
