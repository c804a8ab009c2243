package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/singleflight"
)

const refreshPath = "/api/v1/auth/refresh"

// ErrSessionExpired возвращается, когда refresh не смог выдать новый
// access-токен и сессия принудительно завершена.
var ErrSessionExpired = errors.New("сессия истекла")

// APIError — ошибка HTTP-уровня с кодом статуса и разобранным телом.
// Code заполняется из вложенного error.code и используется для
// ветвления на конкретные доменные ошибки (например, contact_exists).
type APIError struct {
	Status  int
	Code    string
	Message string
	Body    json.RawMessage
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("сервер вернул %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("сервер вернул статус %d", e.Status)
}

// IsStatus сообщает, является ли err ошибкой API с данным статусом.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// IsCode сообщает, несет ли err данный доменный код ошибки.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// Response — нормализованный успешный ответ. Сервер может вернуть как
// голое значение, так и обертку {data: ...}; клиент приводит оба
// варианта к одной форме ровно один раз, на границе транспорта.
type Response struct {
	Data json.RawMessage
}

// RequestOptions — параметры одного запроса.
type RequestOptions struct {
	Method string
	Body   any
	// Token переопределяет сохраненный access-токен.
	Token   string
	Headers map[string]string
	// noRetry взводится при повторе после refresh, чтобы
	// исключить бесконечный цикл 401 → refresh → 401.
	noRetry bool
}

// Client — HTTP-клиент API маркетплейса с прозрачным обновлением
// access-токена: на первый 401 выполняется ровно один refresh,
// разделяемый всеми конкурентными вызовами, после чего исходный
// запрос повторяется один раз.
type Client struct {
	http    *http.Client
	baseURL string
	log     *slog.Logger

	mu    sync.RWMutex
	token string

	refresh        singleflight.Group
	onForcedLogout func()
}

func NewClient(baseURL string, log *slog.Logger) *Client {
	// refresh-токен ездит в HTTP-only cookie, поэтому клиенту нужен jar
	jar, _ := cookiejar.New(nil)

	return &Client{
		http: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

// SetToken устанавливает access-токен для последующих запросов.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token возвращает текущий access-токен.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// OnForcedLogout регистрирует обработчик принудительного разлогина.
// Клиент не трогает состояние сессии сам — он только подает сигнал,
// который наблюдает слой аутентификации.
func (c *Client) OnForcedLogout(fn func()) {
	c.onForcedLogout = fn
}

// Request выполняет запрос и нормализует успешный ответ к {data: T}.
// Отмена через ctx: прерванный запрос возвращает ошибку контекста,
// и вызывающая сторона обязана не применять результат к состоянию.
func (c *Client) Request(ctx context.Context, path string, opts RequestOptions) (Response, error) {
	if opts.Method == "" {
		opts.Method = http.MethodGet
	}

	// тело-ридер вычитывается заранее: повтор после refresh отправил бы
	// уже потребленный поток пустым
	if r, ok := opts.Body.(io.Reader); ok {
		raw, err := io.ReadAll(r)
		if err != nil {
			return Response{}, fmt.Errorf("ошибка чтения тела запроса: %w", err)
		}
		opts.Body = raw
	}

	token := opts.Token
	if token == "" {
		token = c.Token()
	}

	status, body, err := c.do(ctx, path, opts, token)
	if err != nil {
		return Response{}, err
	}

	// Прозрачный refresh: один раз, не для самого refresh-эндпоинта.
	if status == http.StatusUnauthorized && path != refreshPath && !opts.noRetry {
		newToken, err := c.refreshAccessToken(ctx)
		if err != nil {
			return Response{}, err
		}

		opts.noRetry = true
		opts.Token = newToken
		return c.Request(ctx, path, opts)
	}

	if status < 200 || status > 299 {
		return Response{}, newAPIError(status, body)
	}

	return normalizeBody(body), nil
}

// RequestJSON выполняет запрос и декодирует нормализованное data-поле в T.
func RequestJSON[T any](ctx context.Context, c *Client, path string, opts RequestOptions) (T, error) {
	var out T

	resp, err := c.Request(ctx, path, opts)
	if err != nil {
		return out, err
	}

	if len(resp.Data) == 0 || string(resp.Data) == "null" {
		return out, nil
	}

	if err := json.Unmarshal(resp.Data, &out); err != nil {
		return out, fmt.Errorf("ошибка парсинга ответа: %w", err)
	}

	return out, nil
}

func (c *Client) do(ctx context.Context, path string, opts RequestOptions, token string) (int, []byte, error) {
	reqBody, contentType, err := encodeBody(opts.Body)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	c.log.Debug("отправка запроса", "method", opts.Method, "url", req.URL.String())

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		// тело не дочиталось — статус важнее: считаем тело пустым
		c.log.Warn("не удалось прочитать тело ответа", "error", err)
		body = nil
	}

	c.log.Debug("получен ответ", "status", resp.StatusCode)

	return resp.StatusCode, body, nil
}

// encodeBody сериализует тело: io.Reader и []byte проходят как есть,
// url.Values кодируются формой, остальное — JSON.
func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case io.Reader:
		return b, "", nil
	case []byte:
		return bytes.NewReader(b), "", nil
	case url.Values:
		return strings.NewReader(b.Encode()), "application/x-www-form-urlencoded", nil
	default:
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("ошибка сериализации тела запроса: %w", err)
		}
		return bytes.NewReader(raw), "application/json", nil
	}
}

// refreshAccessToken выполняет refresh в режиме single-flight: при
// нескольких одновременных 401 к серверу уходит ровно один запрос,
// остальные вызовы ждут его результата.
func (c *Client) refreshAccessToken(ctx context.Context) (string, error) {
	// refresh переживает отмену исходного запроса: его результатом
	// пользуются и другие ожидающие вызовы
	refreshCtx := context.WithoutCancel(ctx)

	token, err, shared := c.refresh.Do("refresh", func() (interface{}, error) {
		return c.doRefresh(refreshCtx)
	})
	if err != nil {
		return "", err
	}

	if shared {
		c.log.Debug("refresh разделен между конкурентными запросами")
	}

	return token.(string), nil
}

func (c *Client) doRefresh(ctx context.Context) (string, error) {
	status, body, err := c.do(ctx, refreshPath, RequestOptions{Method: http.MethodPost}, "")
	if err != nil {
		return "", err
	}

	switch {
	case status == http.StatusNoContent,
		status == http.StatusUnauthorized,
		status == http.StatusForbidden:
		// обновить токен нечем — глобальный разлогин
		c.forceLogout()
		return "", ErrSessionExpired
	case status < 200 || status > 299:
		// прочие ошибки refresh не приводят к разлогину
		return "", newAPIError(status, body)
	}

	token := extractAccessToken(body)
	if token == "" {
		return "", fmt.Errorf("ответ refresh не содержит токен")
	}

	c.SetToken(token)
	c.log.Debug("access-токен обновлен")

	return token, nil
}

// extractAccessToken принимает все три формы ответа refresh:
// {accessToken}, {token} и {data:{accessToken}}.
func extractAccessToken(body []byte) string {
	var payload struct {
		AccessToken string `json:"accessToken"`
		Token       string `json:"token"`
		Data        struct {
			AccessToken string `json:"accessToken"`
		} `json:"data"`
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	switch {
	case payload.AccessToken != "":
		return payload.AccessToken
	case payload.Token != "":
		return payload.Token
	default:
		return payload.Data.AccessToken
	}
}

func (c *Client) forceLogout() {
	c.SetToken("")
	if c.onForcedLogout != nil {
		c.onForcedLogout()
	}
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		Status: status,
		Body:   body,
	}

	var payload struct {
		Message string `json:"message"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Message
		apiErr.Code = payload.Error.Code
	}

	return apiErr
}

// normalizeBody приводит тело успешного ответа к форме {data: ...}
// без двойной обертки.
func normalizeBody(body []byte) Response {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return Response{Data: json.RawMessage("null")}
	}

	if trimmed[0] == '{' {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err == nil && envelope.Data != nil {
			return Response{Data: envelope.Data}
		}
	}

	return Response{Data: json.RawMessage(trimmed)}
}
