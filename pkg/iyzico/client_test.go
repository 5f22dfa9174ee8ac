package iyzico

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/polattozlu/munch-gokhan/pkg/config"
	"github.com/polattozlu/munch-gokhan/pkg/db/models"
	pkgerrors "github.com/polattozlu/munch-gokhan/pkg/errors"
	"github.com/polattozlu/munch-gokhan/pkg/logger"
)

func testClient(t *testing.T, rt roundTripFunc) *Client {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "iyzico-test", Output: io.Discard})
	client, err := NewClient(context.Background(), config.IyzicoConfig{
		APIKey:    "test-key",
		SecretKey: "test-secret",
		BaseURL:   "http://iyzico.test",
		Env:       "sandbox",
	}, logg, WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestClientCreatePaymentRequest(t *testing.T) {
	const expectedURL = "http://iyzico.test/payment/auth"
	respBody := `{"status":"success","paymentId":"pay_123","conversationId":"SIP-20250801-000001"}`

	var capturedURL string
	var capturedHeaders http.Header

	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		capturedURL = req.URL.String()
		capturedHeaders = req.Header.Clone()

		bodyBytes, err := io.ReadAll(req.Body)
		if err != nil {
			t.Fatalf("read request body: %v", err)
		}
		var payload map[string]any
		if err := json.Unmarshal(bodyBytes, &payload); err != nil {
			t.Fatalf("unmarshal request body: %v", err)
		}
		if payload["paidPrice"] != "95.00" {
			t.Fatalf("unexpected paidPrice %v", payload["paidPrice"])
		}
		if payload["currency"] != "TRY" {
			t.Fatalf("unexpected currency %v", payload["currency"])
		}

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(respBody)),
			Header:     http.Header{},
		}, nil
	})

	client := testClient(t, rt)
	order := &models.Order{
		ID:    "SIP-20250801-000001",
		Total: decimal.RequireFromString("95.00"),
		Items: []models.OrderItem{
			{MenuItemID: 7, Name: "Adana Kebap", Price: decimal.RequireFromString("47.50"), Quantity: 2},
		},
	}
	req := BuildPaymentRequest(order, PaymentCard{CardNumber: "5528790000000008"}, Buyer{ID: "guest"}, Address{City: "Istanbul"})

	resp, err := client.CreatePayment(context.Background(), req)
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}
	if capturedURL != expectedURL {
		t.Fatalf("unexpected URL %q", capturedURL)
	}
	if !strings.HasPrefix(capturedHeaders.Get("Authorization"), "IYZWSv2 ") {
		t.Fatalf("authorization header missing, got %q", capturedHeaders.Get("Authorization"))
	}
	if capturedHeaders.Get("x-iyzi-rnd") == "" {
		t.Fatalf("random key header missing")
	}
	if resp.PaymentID != "pay_123" {
		t.Fatalf("unexpected payment id %q", resp.PaymentID)
	}
}

func TestClientCreatePaymentDeclined(t *testing.T) {
	respBody := `{"status":"failure","errorCode":"10051","errorMessage":"Insufficient funds"}`
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(respBody)),
			Header:     http.Header{},
		}, nil
	})

	client := testClient(t, rt)
	_, err := client.CreatePayment(context.Background(), PaymentRequest{ConversationID: "SIP-20250801-000002"})
	if err == nil {
		t.Fatalf("expected decline error")
	}
	coded := pkgerrors.As(err)
	if coded == nil || coded.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency code, got %v", err)
	}
}

func TestBuildPaymentRequestExpandsQuantities(t *testing.T) {
	order := &models.Order{
		ID:    "SIP-20250801-000003",
		Total: decimal.RequireFromString("135.00"),
		Items: []models.OrderItem{
			{MenuItemID: 1, Name: "Lahmacun", Price: decimal.RequireFromString("45.00"), Quantity: 3},
		},
	}
	req := BuildPaymentRequest(order, PaymentCard{}, Buyer{}, Address{})
	if len(req.BasketItems) != 3 {
		t.Fatalf("expected 3 basket items, got %d", len(req.BasketItems))
	}
	if req.Price != "135.00" || req.PaidPrice != "135.00" {
		t.Fatalf("unexpected prices %q/%q", req.Price, req.PaidPrice)
	}
	if req.Installment != 1 || req.Locale != "tr" {
		t.Fatalf("unexpected defaults %+v", req)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
