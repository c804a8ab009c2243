package client

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"gomarket/internal/domain/address"
	"gomarket/internal/domain/user"
)

// Статусы загрузки предзаполнения чекаута.
type PrefillStatus string

const (
	PrefillIdle    PrefillStatus = "idle"
	PrefillLoading PrefillStatus = "loading"
	PrefillSuccess PrefillStatus = "success"
	PrefillError   PrefillStatus = "error"
)

// DefaultPrefillTTL — время жизни кэша предзаполнения.
const DefaultPrefillTTL = 60 * time.Second

type prefillEntry struct {
	at         time.Time
	contacts   []user.Contact
	addresses  []address.Address
	selectedID string
}

// PrefillCoordinator готовит данные страницы чекаута: параллельно
// грузит контакты и адреса, кэширует результат на пользователя
// с TTL, отбрасывает устаревшие ответы и ровно один раз за сессию
// создает адрес из свободного текста старого профиля.
//
// Кэш живет только в памяти процесса и не переживает перезапуск.
type PrefillCoordinator struct {
	client    *Client
	addresses *AddressStore
	log       *slog.Logger
	ttl       time.Duration

	mu        sync.Mutex
	cache     map[string]prefillEntry
	attempted map[string]bool
	// generation монотонно растет на каждый запуск загрузки:
	// применяется результат последнего выданного запроса,
	// а не последнего завершившегося.
	generation uint64
	cancel     context.CancelFunc

	status   PrefillStatus
	contacts []user.Contact
	errMsg   string
}

func NewPrefillCoordinator(c *Client, addresses *AddressStore, log *slog.Logger) *PrefillCoordinator {
	return &PrefillCoordinator{
		client:    c,
		addresses: addresses,
		log:       log,
		ttl:       DefaultPrefillTTL,
		cache:     make(map[string]prefillEntry),
		attempted: make(map[string]bool),
		status:    PrefillIdle,
	}
}

// Load запускает загрузку предзаполнения для пользователя.
// Свежая кэш-запись применяется синхронно без сети.
func (p *PrefillCoordinator) Load(ctx context.Context, u *user.User, token string) {
	if u == nil || token == "" {
		p.resetIdle()
		return
	}

	p.mu.Lock()

	if entry, ok := p.cache[u.ID]; ok && time.Since(entry.at) < p.ttl {
		p.applyEntryLocked(entry)
		p.mu.Unlock()
		return
	}

	// новый запуск вытесняет предыдущий незавершенный
	if p.cancel != nil {
		p.cancel()
	}
	p.generation++
	gen := p.generation

	loadCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.status = PrefillLoading
	p.errMsg = ""
	p.mu.Unlock()

	contacts, err := p.fetch(loadCtx, u)

	p.mu.Lock()
	defer p.mu.Unlock()

	// ответ, вытесненный более новым запросом, не трогает состояние
	if gen != p.generation {
		return
	}

	switch {
	case err == nil:
		p.cache[u.ID] = prefillEntry{
			at:         time.Now(),
			contacts:   contacts,
			addresses:  p.addresses.Addresses(),
			selectedID: p.addresses.Selected(),
		}
		p.contacts = contacts
		p.status = PrefillSuccess

	case errors.Is(err, context.Canceled):
		// прерванный запрос — не успех и не ошибка

	case IsStatus(err, http.StatusUnauthorized), errors.Is(err, ErrSessionExpired):
		// переавторизацию берет на себя транспортный слой
		p.contacts = nil
		p.status = PrefillError

	default:
		p.errMsg = "Не удалось загрузить данные для оформления заказа"
		p.status = PrefillError
		p.log.Warn("загрузка предзаполнения не удалась", "error", err)
	}
}

func (p *PrefillCoordinator) fetch(ctx context.Context, u *user.User) ([]user.Contact, error) {
	var contacts []user.Contact

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		contacts, err = RequestJSON[[]user.Contact](gctx, p.client, "/api/v1/contacts", RequestOptions{})
		return err
	})
	g.Go(func() error {
		p.addresses.LoadAddresses(gctx, u.ID)
		return gctx.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := p.synthesizeLegacyAddress(ctx, u); err != nil {
		p.log.Warn("не удалось создать адрес из старого профиля", "error", err)
	}

	return contacts, nil
}

// synthesizeLegacyAddress один раз за сессию создает структурированный
// адрес из свободного текста старого профиля — только если у
// пользователя еще нет ни одного адреса.
func (p *PrefillCoordinator) synthesizeLegacyAddress(ctx context.Context, u *user.User) error {
	if u.LegacyAddress == "" || len(p.addresses.Addresses()) > 0 {
		return nil
	}

	p.mu.Lock()
	if p.attempted[u.ID] {
		p.mu.Unlock()
		return nil
	}
	p.attempted[u.ID] = true
	p.mu.Unlock()

	created, err := p.addresses.AddAddress(ctx, address.Address{
		AddressText: u.LegacyAddress,
	})
	if err != nil {
		return err
	}

	return p.addresses.SelectAddress(ctx, u.ID, created.ID)
}

// EnsureContact лениво создает контакт при первом чекауте либо
// обновляет существующий, когда значения формы отличаются от
// сохраненных (сравнение после нормализации телефона). Если
// значения не менялись, запись не отправляется.
func (p *PrefillCoordinator) EnsureContact(ctx context.Context, name, phone, email string) (user.Contact, error) {
	normalized := user.NormalizePhone(phone)

	p.mu.Lock()
	var existing *user.Contact
	for i := range p.contacts {
		if user.NormalizePhone(p.contacts[i].Phone) == normalized {
			existing = &p.contacts[i]
			break
		}
	}
	p.mu.Unlock()

	if existing != nil {
		if existing.Equal(name, phone, email) {
			// значения не менялись — лишней записи не будет
			return *existing, nil
		}

		updated, err := RequestJSON[user.Contact](ctx, p.client, "/api/v1/contacts/"+existing.ID, RequestOptions{
			Method: http.MethodPut,
			Body:   map[string]string{"name": name, "phone": phone, "email": email},
		})
		if err != nil {
			return user.Contact{}, err
		}

		p.replaceContact(updated)
		return updated, nil
	}

	created, err := RequestJSON[user.Contact](ctx, p.client, "/api/v1/contacts", RequestOptions{
		Method: http.MethodPost,
		Body:   map[string]string{"name": name, "phone": phone, "email": email},
	})
	if err != nil {
		return user.Contact{}, err
	}

	p.mu.Lock()
	p.contacts = append(p.contacts, created)
	p.mu.Unlock()

	return created, nil
}

// Invalidate сбрасывает кэш пользователя. По умолчанию кэш
// устаревает только по TTL; этот метод — явная ручка для сценариев,
// которым нужно read-your-writes сразу после мутации.
func (p *PrefillCoordinator) Invalidate(userID string) {
	p.mu.Lock()
	delete(p.cache, userID)
	p.mu.Unlock()
}

// Status возвращает текущий статус загрузки.
func (p *PrefillCoordinator) Status() PrefillStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Contacts возвращает копию загруженных контактов.
func (p *PrefillCoordinator) Contacts() []user.Contact {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]user.Contact, len(p.contacts))
	copy(out, p.contacts)
	return out
}

// Err возвращает человекочитаемое сообщение последней ошибки.
func (p *PrefillCoordinator) Err() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

func (p *PrefillCoordinator) resetIdle() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.generation++
	p.status = PrefillIdle
	p.contacts = nil
	p.errMsg = ""
}

func (p *PrefillCoordinator) replaceContact(c user.Contact) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.contacts {
		if p.contacts[i].ID == c.ID {
			p.contacts[i] = c
			return
		}
	}
}

// applyEntryLocked применяет кэш-запись целиком: контакты берет себе,
// адресный снапшот с выбором возвращает в стор адресов, который к этому
// моменту мог быть сброшен.
func (p *PrefillCoordinator) applyEntryLocked(entry prefillEntry) {
	p.contacts = entry.contacts
	p.addresses.restore(entry.addresses, entry.selectedID)
	p.status = PrefillSuccess
	p.errMsg = ""
}
