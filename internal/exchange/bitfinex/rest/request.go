package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Response is an undecoded exchange reply.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r *Response) String() string {
	return string(r.Body)
}

func (c *Public) get(ctx context.Context, path string, out any) (*Response, error) {
	return c.doRequest(ctx, http.MethodGet, path, nil, nil, out)
}

// doRequest sends one request and interprets the reply. A nil out asks for
// the raw response; exchange errors are surfaced either way.
func (c *Public) doRequest(ctx context.Context, method, path string, body []byte, headers map[string]string, out any) (*Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpointURL(path), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("Не удалось создать запрос: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	entry := c.logEntry().WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"method":     method,
		"path":       requestPath(path),
	})

	started := time.Now()
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		entry.WithError(err).Warn("Ошибка запроса.")
		return nil, fmt.Errorf("Ошибка запроса: %w", err)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		entry.WithError(err).Warn("Не удалось прочитать ответ.")
		return nil, fmt.Errorf("Не удалось прочитать ответ: %w", err)
	}

	entry = entry.WithFields(logrus.Fields{
		"status":  httpResp.StatusCode,
		"elapsed": time.Since(started).String(),
	})

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       data,
	}

	if err := interpret(resp, httpResp.Status, out); err != nil {
		entry.WithError(err).Warn("Запрос завершился ошибкой.")
		return resp, err
	}

	entry.Debug("Запрос выполнен.")
	return resp, nil
}

// interpret checks the status, then the JSON "error" field, then decodes
// into out when it is not nil.
func interpret(resp *Response, status string, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if status == "" {
			status = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		return &HTTPError{StatusCode: resp.StatusCode, Status: status, Body: resp.Body}
	}

	var generic any
	decodeErr := json.Unmarshal(resp.Body, &generic)
	if decodeErr == nil {
		if obj, ok := generic.(map[string]any); ok {
			if msg, ok := errorField(obj); ok {
				return &ExchangeError{Message: msg}
			}
		}
	}

	if out == nil {
		return nil
	}
	if decodeErr != nil {
		return &DecodeError{Body: resp.Body, Err: decodeErr}
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return &DecodeError{Body: resp.Body, Err: err}
	}
	return nil
}

func errorField(obj map[string]any) (string, bool) {
	switch v := obj["error"].(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case bool:
		return "true", v
	case float64:
		return fmt.Sprint(v), v != 0
	case []any:
		return fmt.Sprint(v), len(v) > 0
	case map[string]any:
		return fmt.Sprint(v), len(v) > 0
	default:
		return fmt.Sprint(v), true
	}
}

func (c *Public) endpointURL(path string) string {
	return strings.TrimRight(c.baseURL, "/") + requestPath(path)
}

// requestPath normalizes "v1/x" and "/v1/x" to "/v1/x".
func requestPath(path string) string {
	return "/" + strings.TrimLeft(path, "/")
}

func (c *Public) logEntry() *logrus.Entry {
	return c.log.WithComponent("bitfinex_rest")
}
