package client

import (
	"context"
	"net/http"
	"sync"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"gomarket/internal/domain/address"
)

type defaultPointer struct {
	AddressID string `json:"addressId"`
}

// AddressStore — адреса пользователя и выбранный адрес доставки.
// Выбор хранится отдельно от адресов (userID → addressID) и потому
// переживает правки и удаления без миграции.
type AddressStore struct {
	mu         sync.RWMutex
	client     *Client
	log        *slog.Logger
	addresses  []address.Address
	selectedID string
}

func NewAddressStore(c *Client, log *slog.Logger) *AddressStore {
	return &AddressStore{
		client: c,
		log:    log,
	}
}

// LoadAddresses параллельно загружает список адресов и указатель
// по умолчанию. Если указатель не задан, выбирается первый адрес
// и выбор сохраняется на сервере: у пользователя с адресами всегда
// есть явный дефолт.
//
// Ошибка загрузки намеренно не отдается наружу: отсутствие списка
// адресов не фатально для чекаута — стор сбрасывается в пустое
// состояние.
func (s *AddressStore) LoadAddresses(ctx context.Context, userID string) {
	var (
		addresses []address.Address
		pointer   defaultPointer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		addresses, err = RequestJSON[[]address.Address](gctx, s.client, "/api/v1/addresses", RequestOptions{})
		return err
	})
	g.Go(func() error {
		var err error
		pointer, err = RequestJSON[defaultPointer](gctx, s.client, "/api/v1/addresses/default", RequestOptions{})
		if IsStatus(err, http.StatusNotFound) {
			// дефолт просто не выбран
			return nil
		}
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.Warn("не удалось загрузить адреса, сбрасываем", "error", err)
		s.Reset()
		return
	}

	selected := pointer.AddressID
	if selected == "" && len(addresses) > 0 {
		selected = addresses[0].ID
		if err := s.persistDefault(ctx, selected); err != nil {
			s.log.Warn("не удалось сохранить адрес по умолчанию", "error", err)
		}
	}

	s.mu.Lock()
	s.addresses = addresses
	s.selectedID = selected
	s.mu.Unlock()
}

// SelectAddress сохраняет новый указатель на сервере и лишь затем
// обновляет локальный выбор.
func (s *AddressStore) SelectAddress(ctx context.Context, userID, addressID string) error {
	if err := s.persistDefault(ctx, addressID); err != nil {
		return err
	}

	s.mu.Lock()
	s.selectedID = addressID
	s.mu.Unlock()

	return nil
}

// AddAddress создает адрес на сервере и вставляет результат
// в голову локального списка.
func (s *AddressStore) AddAddress(ctx context.Context, a address.Address) (address.Address, error) {
	created, err := RequestJSON[address.Address](ctx, s.client, "/api/v1/addresses", RequestOptions{
		Method: http.MethodPost,
		Body:   a,
	})
	if err != nil {
		return address.Address{}, err
	}

	s.mu.Lock()
	s.addresses = append([]address.Address{created}, s.addresses...)
	s.mu.Unlock()

	return created, nil
}

// UpdateAddress обновляет адрес на сервере и заменяет его в списке по id.
func (s *AddressStore) UpdateAddress(ctx context.Context, a address.Address) (address.Address, error) {
	updated, err := RequestJSON[address.Address](ctx, s.client, "/api/v1/addresses/"+a.ID, RequestOptions{
		Method: http.MethodPut,
		Body:   a,
	})
	if err != nil {
		return address.Address{}, err
	}

	s.mu.Lock()
	for i := range s.addresses {
		if s.addresses[i].ID == updated.ID {
			s.addresses[i] = updated
			break
		}
	}
	s.mu.Unlock()

	return updated, nil
}

// RemoveAddress удаляет адрес. Если удален выбранный адрес, выбор
// становится пустым — повторный выбор с запасным id остается
// обязанностью вызывающей стороны.
func (s *AddressStore) RemoveAddress(ctx context.Context, id string) error {
	if _, err := s.client.Request(ctx, "/api/v1/addresses/"+id, RequestOptions{
		Method: http.MethodDelete,
	}); err != nil {
		return err
	}

	s.mu.Lock()
	filtered := s.addresses[:0]
	for _, a := range s.addresses {
		if a.ID != id {
			filtered = append(filtered, a)
		}
	}
	s.addresses = filtered
	if s.selectedID == id {
		s.selectedID = ""
	}
	s.mu.Unlock()

	return nil
}

// restore заменяет содержимое стора снапшотом из кэша предзаполнения.
func (s *AddressStore) restore(addresses []address.Address, selectedID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addresses = make([]address.Address, len(addresses))
	copy(s.addresses, addresses)
	s.selectedID = selectedID
}

// Reset очищает список и выбор (используется при разлогине).
func (s *AddressStore) Reset() {
	s.mu.Lock()
	s.addresses = nil
	s.selectedID = ""
	s.mu.Unlock()
}

// Addresses возвращает копию списка.
func (s *AddressStore) Addresses() []address.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]address.Address, len(s.addresses))
	copy(out, s.addresses)
	return out
}

// Selected возвращает id выбранного адреса ("" — не выбран).
func (s *AddressStore) Selected() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedID
}

func (s *AddressStore) persistDefault(ctx context.Context, addressID string) error {
	_, err := s.client.Request(ctx, "/api/v1/addresses/default", RequestOptions{
		Method: http.MethodPut,
		Body:   defaultPointer{AddressID: addressID},
	})
	return err
}
