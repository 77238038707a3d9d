package utils

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"kursdunyasi/config"
)

// Hosted checkout client for the iyzico sandbox/production API.
// The flow is: InitializeCheckout -> browser redirect to PaymentPageUrl ->
// provider POSTs a token to our callback -> RetrieveCheckout for the
// authoritative payment status. The redirect alone is never trusted.

type CheckoutBuyer struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Surname        string `json:"surname"`
	Email          string `json:"email"`
	IdentityNumber string `json:"identityNumber"`
	Address        string `json:"registrationAddress"`
	Ip             string `json:"ip"`
	City           string `json:"city"`
	Country        string `json:"country"`
}

type CheckoutItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category1"`
	ItemType string  `json:"itemType"`
	Price    float64 `json:"price,string"`
}

type CheckoutInitRequest struct {
	Locale         string         `json:"locale"`
	ConversationID string         `json:"conversationId"`
	Price          float64        `json:"price,string"`
	PaidPrice      float64        `json:"paidPrice,string"`
	Currency       string         `json:"currency"`
	BasketID       string         `json:"basketId"`
	PaymentGroup   string         `json:"paymentGroup"`
	CallbackUrl    string         `json:"callbackUrl"`
	Buyer          CheckoutBuyer  `json:"buyer"`
	Items          []CheckoutItem `json:"basketItems"`
}

type CheckoutInitResponse struct {
	Status         string `json:"status"` // "success" or "failure"
	ErrorMessage   string `json:"errorMessage"`
	Token          string `json:"token"`
	PaymentPageUrl string `json:"paymentPageUrl"`
}

type CheckoutResult struct {
	Status        string `json:"status"`        // request status
	PaymentStatus string `json:"paymentStatus"` // "SUCCESS" when the payment went through
	BasketID      string `json:"basketId"`
	PaymentID     string `json:"paymentId"`
	ErrorMessage  string `json:"errorMessage"`
}

// The whole initialize call races a fixed ceiling; an initialize that is
// still in flight after this is abandoned and the purchase stays PENDING.
const checkoutTimeout = 15 * time.Second

func checkoutClient() *resty.Client {
	return resty.New().
		SetBaseURL(config.AppConfig.IyzicoBaseURL).
		SetTimeout(checkoutTimeout)
}

// InitializeCheckout creates a hosted checkout session. BasketID carries the
// purchase order id so the callback can find the row again.
func InitializeCheckout(price float64, basketID, callbackUrl string, buyer CheckoutBuyer, items []CheckoutItem) (*CheckoutInitResponse, error) {
	for i := range items {
		items[i].ItemType = "VIRTUAL"
	}

	reqBody := CheckoutInitRequest{
		Locale:         "tr",
		ConversationID: basketID,
		Price:          price,
		PaidPrice:      price,
		Currency:       "TRY",
		BasketID:       basketID,
		PaymentGroup:   "PRODUCT",
		CallbackUrl:    callbackUrl,
		Buyer:          buyer,
		Items:          items,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	resp, err := checkoutClient().R().
		SetHeaders(authHeaders(body)).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/payment/iyzipos/checkoutform/initialize/auth/ecom")
	if err != nil {
		return nil, fmt.Errorf("checkout initialize failed: %v", err)
	}

	var result CheckoutInitResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("invalid checkout initialize response: %v", err)
	}

	return &result, nil
}

// RetrieveCheckout asks the provider for the authoritative result of a
// checkout session identified by the callback token.
func RetrieveCheckout(token string) (*CheckoutResult, error) {
	body, err := json.Marshal(map[string]string{
		"locale": "tr",
		"token":  token,
	})
	if err != nil {
		return nil, err
	}

	resp, err := checkoutClient().R().
		SetHeaders(authHeaders(body)).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/payment/iyzipos/checkoutform/auth/ecom/detail")
	if err != nil {
		return nil, fmt.Errorf("checkout retrieve failed: %v", err)
	}

	var result CheckoutResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("invalid checkout retrieve response: %v", err)
	}

	return &result, nil
}

// authHeaders builds the IYZWS authorization headers: a per-request random
// key plus base64(sha1(apiKey + randomKey + secretKey + body)).
func authHeaders(body []byte) map[string]string {
	apiKey := config.AppConfig.IyzicoApiKey
	secretKey := config.AppConfig.IyzicoSecretKey
	randomKey := strconv.FormatInt(time.Now().UnixNano(), 10) + strconv.Itoa(rand.Intn(999999))

	h := sha1.New()
	h.Write([]byte(apiKey))
	h.Write([]byte(randomKey))
	h.Write([]byte(secretKey))
	h.Write(body)
	signature := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return map[string]string{
		"Authorization":   "IYZWS " + apiKey + ":" + signature,
		"x-iyzi-rnd":      randomKey,
		"x-iyzi-client-v": "kursdunyasi-1.0",
	}
}
