// Package backend реализует HTTP клиент удаленного REST бекенда:
// шлюз аутентифицированных запросов, обновление токенов и классификацию ошибок.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"nclexfront/internal/frontend/config"
	"nclexfront/internal/frontend/domain"
	"nclexfront/internal/frontend/ports/credentials"
	"nclexfront/pkg/logger"
)

// Константы для логирования.
const (
	LogRequestSent     = "backend request sent"
	LogUnauthorized    = "backend returned 401, refreshing tokens"
	LogRetryingRequest = "retrying request with refreshed token"

	ErrorRequestBuild   = "failed to build backend request"
	ErrorRequestFailed  = "backend request failed"
	ErrorReadBody       = "failed to read backend response body"
	ErrorEncodeBody     = "failed to encode request body"
	ErrorDecodeResponse = "failed to decode backend response"
)

// contentTypeJSON - Content-Type для JSON запросов. Multipart запросы
// передают собственный Content-Type с boundary без изменений.
const contentTypeJSON = "application/json"

// Request описывает один запрос к бекенду.
type Request struct {
	Method string
	Path   string
	Query  url.Values

	// JSON сериализуется в тело запроса, когда не nil.
	JSON any

	// Body - сырое тело (multipart passthrough). Требует ContentType.
	Body        io.Reader
	ContentType string
}

// Response - ответ бекенда, прочитанный целиком.
type Response struct {
	StatusCode int
	Body       []byte
}

// Success сообщает, является ли статус ответа успешным (2xx).
func (r *Response) Success() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Client - клиент REST бекенда. Безопасен для конкурентного использования.
type Client struct {
	baseURL    string
	httpClient *http.Client
	refreshes  *refreshGroup
}

// NewClient создает новый экземпляр клиента бекенда.
func NewClient(cfg *config.BackendConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		refreshes:  newRefreshGroup(),
	}
}

// Do выполняет аутентифицированный запрос от имени сессии store.
//
// Отсутствие access-токена допустимо: запрос уходит без заголовка
// Authorization и, скорее всего, получит 401. На 401 выполняется ровно одна
// попытка обновления токенов и ровно один повтор запроса с новым токеном;
// ответ повтора возвращается как есть независимо от статуса. Если обновление
// не удалось, возвращается ошибка вида KindAuthExpired без повтора.
func (c *Client) Do(ctx context.Context, store credentials.Store, req Request) (*Response, error) {
	log := logger.Log(ctx).With(
		zap.String("method", req.Method),
		zap.String("path", req.Path),
	)

	body, err := encodeBody(req)
	if err != nil {
		log.Error(ctx, ErrorEncodeBody, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorEncodeBody, err)
	}

	token := ""
	pair, err := store.Read(ctx)
	if err != nil && !errors.Is(err, credentials.ErrNoCredentials) {
		return nil, fmt.Errorf("reading credentials: %w", err)
	}
	if err == nil {
		token = pair.AccessToken
	}

	resp, err := c.send(ctx, req, body, token)
	if err != nil {
		log.Error(ctx, ErrorRequestFailed, zap.Error(err))
		return nil, domain.NewNetworkError()
	}

	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	log.Debug(ctx, LogUnauthorized)

	newToken, err := c.refreshes.refresh(ctx, c, store)
	if err != nil {
		if errors.Is(err, domain.ErrAuthenticationExpired) {
			// Обновление провалилось: учетные данные уже очищены, повторов не будет.
			return nil, domain.NewAuthExpiredError()
		}
		return nil, fmt.Errorf("refreshing tokens: %w", err)
	}

	log.Debug(ctx, LogRetryingRequest)

	resp, err = c.send(ctx, req, body, newToken)
	if err != nil {
		log.Error(ctx, ErrorRequestFailed, zap.Error(err))
		return nil, domain.NewNetworkError()
	}

	return resp, nil
}

// DoPublic выполняет запрос к публичному эндпоинту: без токена и без
// попыток обновления.
func (c *Client) DoPublic(ctx context.Context, req Request) (*Response, error) {
	log := logger.Log(ctx).With(
		zap.String("method", req.Method),
		zap.String("path", req.Path),
	)

	body, err := encodeBody(req)
	if err != nil {
		log.Error(ctx, ErrorEncodeBody, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorEncodeBody, err)
	}

	resp, err := c.send(ctx, req, body, "")
	if err != nil {
		log.Error(ctx, ErrorRequestFailed, zap.Error(err))
		return nil, domain.NewNetworkError()
	}

	return resp, nil
}

// send отправляет один запрос и читает ответ целиком.
func (c *Client) send(ctx context.Context, req Request, body []byte, token string) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req, body, token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorRequestBuild, err)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorRequestFailed, err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorReadBody, err)
	}

	logger.Log(ctx).Debug(ctx, LogRequestSent,
		zap.String("method", req.Method),
		zap.String("path", req.Path),
		zap.Int("status", httpResp.StatusCode))

	return &Response{StatusCode: httpResp.StatusCode, Body: respBody}, nil
}

// buildRequest собирает http.Request с заголовками авторизации и Content-Type.
func (c *Client) buildRequest(ctx context.Context, req Request, body []byte, token string) (*http.Request, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	switch {
	case req.Body != nil:
		httpReq.Header.Set("Content-Type", req.ContentType)
	case req.JSON != nil:
		httpReq.Header.Set("Content-Type", contentTypeJSON)
	}

	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	return httpReq, nil
}

// encodeBody превращает тело запроса в повторно отправляемый буфер.
// Сырое тело читается один раз: повтор после 401 должен отправить те же байты.
func encodeBody(req Request) ([]byte, error) {
	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("reading raw body: %w", err)
		}
		return data, nil
	}
	if req.JSON != nil {
		data, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, fmt.Errorf("marshaling json body: %w", err)
		}
		return data, nil
	}
	return nil, nil
}

// decodeJSON разбирает успешный ответ бекенда в out.
func decodeJSON(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w", ErrorDecodeResponse, err)
	}
	return nil
}
