package rest

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

const (
	headerAPIKey    = "X-BFX-APIKEY"
	headerPayload   = "X-BFX-PAYLOAD"
	headerSignature = "X-BFX-SIGNATURE"
)

// envelope is the signed form of one request payload.
type envelope struct {
	Body      []byte
	Payload   string
	Signature string
}

// signPayload serializes the payload with sorted keys, base64-encodes it and
// signs the encoding with HMAC-SHA384.
func signPayload(payload map[string]any, secret string) (envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return envelope{}, fmt.Errorf("Не удалось подготовить тело запроса: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(body)
	return envelope{
		Body:      body,
		Payload:   encoded,
		Signature: sign(secret, encoded),
	}, nil
}

func sign(secret, payload string) string {
	mac := hmac.New(sha512.New384, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// buildPayload merges params under the reserved "nonce" and "request" keys.
// The reserved keys always win.
func buildPayload(nonce int64, path string, params map[string]any) map[string]any {
	payload := make(map[string]any, len(params)+2)
	for k, v := range params {
		payload[k] = v
	}
	payload["nonce"] = strconv.FormatInt(nonce, 10)
	payload["request"] = requestPath(path)
	return payload
}

// post issues one signed POST. A nil out returns the raw response.
func (c *Private) post(ctx context.Context, path string, params map[string]any, out any) (*Response, error) {
	nonce := c.nonce.next()

	env, err := signPayload(buildPayload(nonce, path, params), c.secret)
	if err != nil {
		return nil, err
	}

	c.logEntry().WithField("nonce", nonce).WithField("path", requestPath(path)).Trace("Подписан запрос.")

	headers := map[string]string{
		headerAPIKey:    c.apiKey,
		headerPayload:   env.Payload,
		headerSignature: env.Signature,
	}
	return c.doRequest(ctx, http.MethodPost, path, env.Body, headers, out)
}
