package iyzico

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/polattozlu/munch-gokhan/pkg/config"
	pkgerrors "github.com/polattozlu/munch-gokhan/pkg/errors"
	"github.com/polattozlu/munch-gokhan/pkg/logger"
)

const (
	sandboxEnv    = "sandbox"
	productionEnv = "production"

	paymentAuthPath             = "/payment/auth"
	responseBodyReadLimit int64 = 4096
)

var (
	errAPIKeyRequired    = errors.New("iyzico api key is required")
	errSecretKeyRequired = errors.New("iyzico secret key is required")
	errInvalidEnv        = fmt.Errorf("iyzico environment must be %q or %q", sandboxEnv, productionEnv)
	errLoggerRequired    = errors.New("iyzico logger is required")
)

// Client wraps the iyzico card-payment API with auth signing, logging, and
// error mapping. Only the sandbox environment performs no real capture.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	secretKey   string
	environment string
	logger      *logger.Logger
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the configured gateway base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// NewClient initializes the iyzico wrapper and validates the credentials.
func NewClient(ctx context.Context, cfg config.IyzicoConfig, logg *logger.Logger, opts ...Option) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}
	env, err := normalizeEnv(cfg.Environment())
	if err != nil {
		return nil, err
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errAPIKeyRequired
	}
	secretKey := strings.TrimSpace(cfg.SecretKey)
	if secretKey == "" {
		return nil, errSecretKeyRequired
	}

	c := &Client{
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		baseURL:     strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:      apiKey,
		secretKey:   secretKey,
		environment: env,
		logger:      logg,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	logg.Info(ctx, "iyzico client initialized")
	return c, nil
}

// Environment reports the normalized gateway environment.
func (c *Client) Environment() string {
	if c == nil {
		return ""
	}
	return c.environment
}

// CreatePayment submits a single-installment card payment. A gateway-level
// failure status comes back as a coded error, not a response.
func (c *Client) CreatePayment(ctx context.Context, req PaymentRequest) (*PaymentResponse, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "iyzico client not configured")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal payment request")
	}

	c.log(ctx, "request", "create_payment", map[string]any{
		"conversation_id": req.ConversationID,
		"paid_price":      req.PaidPrice,
		"basket_items":    len(req.BasketItems),
		"card_number":     req.PaymentCard.CardNumber,
	})

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+paymentAuthPath, bytes.NewReader(payload))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build payment request")
	}
	randomKey := uuid.NewString()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", c.authorizationHeader(randomKey, paymentAuthPath, payload))
	httpReq.Header.Set("x-iyzi-rnd", randomKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log(ctx, "error", "create_payment", map[string]any{"error": err.Error()})
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute payment request")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read payment response")
	}
	if resp.StatusCode != http.StatusOK {
		c.log(ctx, "error", "create_payment", map[string]any{"error": fmt.Sprintf("status %d", resp.StatusCode)})
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency,
			fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))), "payment request failed")
	}

	var paymentResp PaymentResponse
	if err := json.Unmarshal(body, &paymentResp); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode payment response")
	}

	if !paymentResp.Succeeded() {
		c.log(ctx, "error", "create_payment", map[string]any{
			"error":      paymentResp.ErrorMessage,
			"error_code": paymentResp.ErrorCode,
		})
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "payment was declined").
			WithDetails(map[string]any{"errorCode": paymentResp.ErrorCode})
	}

	c.log(ctx, "response", "create_payment", map[string]any{
		"payment_id":      paymentResp.PaymentID,
		"conversation_id": paymentResp.ConversationID,
	})
	return &paymentResp, nil
}

// authorizationHeader builds the IYZWSv2 signature over the random key, the
// request path, and the raw body.
func (c *Client) authorizationHeader(randomKey, path string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(c.secretKey))
	mac.Write([]byte(randomKey))
	mac.Write([]byte(path))
	mac.Write(body)
	signature := hex.EncodeToString(mac.Sum(nil))

	pair := fmt.Sprintf("apiKey:%s&randomKey:%s&signature:%s", c.apiKey, randomKey, signature)
	return "IYZWSv2 " + base64.StdEncoding.EncodeToString([]byte(pair))
}

func (c *Client) log(ctx context.Context, phase, op string, fields map[string]any) {
	if c == nil || c.logger == nil {
		return
	}
	logFields := map[string]any{
		"operation": op,
		"phase":     phase,
	}
	for k, v := range fields {
		logFields[k] = redact(k, v)
	}
	ctx = c.logger.WithFields(ctx, logFields)
	switch phase {
	case "error":
		c.logger.Error(ctx, fmt.Sprintf("iyzico %s", op), errors.New(fmt.Sprint(fields["error"])))
	default:
		c.logger.Info(ctx, fmt.Sprintf("iyzico %s", phase))
	}
}

func redact(key string, value any) any {
	lower := strings.ToLower(key)
	for _, sensitive := range []string{"card", "cvc", "cvv", "secret", "email", "phone"} {
		if strings.Contains(lower, sensitive) {
			return "[REDACTED]"
		}
	}
	return value
}

func normalizeEnv(raw string) (string, error) {
	env := strings.TrimSpace(strings.ToLower(raw))
	if env == "" {
		env = sandboxEnv
	}
	switch env {
	case sandboxEnv, productionEnv:
		return env, nil
	}
	return "", errInvalidEnv
}
