package rest

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented is returned by endpoints the client declares but does
	// not support yet.
	ErrNotImplemented = errors.New("Метод не поддерживается")

	// ErrInvalidArgument is returned before any request is sent.
	ErrInvalidArgument = errors.New("Некорректный аргумент")
)

// HTTPError is a non-2xx response. It is raised before the body is inspected
// for exchange errors.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("Неуспешный статус: %s: %s", e.Status, truncate(e.Body, 256))
}

// DecodeError means a JSON body was expected but could not be decoded.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Не удалось разобрать ответ %q: %v", truncate(e.Body, 256), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ExchangeError carries the "error" field of a JSON response body.
type ExchangeError struct {
	Message string
}

func (e *ExchangeError) Error() string {
	return "Ошибка bitfinex: " + e.Message
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func notImplemented(method string) error {
	return fmt.Errorf("%s: %w", method, ErrNotImplemented)
}

func truncate(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "..."
}
