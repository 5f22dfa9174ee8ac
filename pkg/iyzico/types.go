package iyzico

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/polattozlu/munch-gokhan/pkg/db/models"
)

const (
	localeTurkish = "tr"
	currencyTRY   = "TRY"

	// StatusSuccess and StatusFailure mirror the gateway's response status field.
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// PaymentCard carries the raw card input. Values are only sent to the gateway
// and must never be logged or persisted.
type PaymentCard struct {
	CardHolderName string `json:"cardHolderName"`
	CardNumber     string `json:"cardNumber"`
	ExpireMonth    string `json:"expireMonth"`
	ExpireYear     string `json:"expireYear"`
	CVC            string `json:"cvc"`
}

// Buyer identifies the paying customer.
type Buyer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
	Phone     string `json:"gsmNumber"`
	IP        string `json:"ip"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Address   string `json:"registrationAddress"`
	ZipCode   string `json:"zipCode,omitempty"`
	IdentityN string `json:"identityNumber,omitempty"`
}

// Address is the shipping/billing payload shape.
type Address struct {
	ContactName string `json:"contactName"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Description string `json:"address"`
	ZipCode     string `json:"zipCode,omitempty"`
}

// BasketItem is a single priced line in the payment request.
type BasketItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category1"`
	ItemType string `json:"itemType"`
	Price    string `json:"price"`
}

// PaymentRequest is the wire payload for a card payment.
type PaymentRequest struct {
	Locale          string       `json:"locale"`
	ConversationID  string       `json:"conversationId"`
	Price           string       `json:"price"`
	PaidPrice       string       `json:"paidPrice"`
	Currency        string       `json:"currency"`
	Installment     int          `json:"installment"`
	PaymentCard     PaymentCard  `json:"paymentCard"`
	Buyer           Buyer        `json:"buyer"`
	ShippingAddress Address      `json:"shippingAddress"`
	BillingAddress  Address      `json:"billingAddress"`
	BasketItems     []BasketItem `json:"basketItems"`
}

// PaymentResponse is the gateway's answer for a card payment.
type PaymentResponse struct {
	Status         string `json:"status"`
	PaymentID      string `json:"paymentId"`
	ConversationID string `json:"conversationId"`
	ErrorCode      string `json:"errorCode,omitempty"`
	ErrorMessage   string `json:"errorMessage,omitempty"`
}

// Succeeded reports whether the gateway accepted the payment.
func (r *PaymentResponse) Succeeded() bool {
	return r != nil && r.Status == StatusSuccess
}

// BuildPaymentRequest maps an order snapshot plus card/buyer input into the
// gateway payload. Basket lines expand per quantity so line prices sum to the
// order total.
func BuildPaymentRequest(order *models.Order, card PaymentCard, buyer Buyer, shipping Address) PaymentRequest {
	items := make([]BasketItem, 0, len(order.Items))
	for _, line := range order.Items {
		for i := 0; i < line.Quantity; i++ {
			items = append(items, BasketItem{
				ID:       strconv.FormatInt(line.MenuItemID, 10),
				Name:     line.Name,
				Category: "Food",
				ItemType: "PHYSICAL",
				Price:    formatPrice(line.Price),
			})
		}
	}

	return PaymentRequest{
		Locale:          localeTurkish,
		ConversationID:  order.ID,
		Price:           formatPrice(order.Total),
		PaidPrice:       formatPrice(order.Total),
		Currency:        currencyTRY,
		Installment:     1,
		PaymentCard:     card,
		Buyer:           buyer,
		ShippingAddress: shipping,
		BillingAddress:  shipping,
		BasketItems:     items,
	}
}

func formatPrice(d decimal.Decimal) string {
	return d.StringFixed(2)
}
