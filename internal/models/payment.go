package models

type CreateCheckoutSessionRequest struct {
	PriceID string `json:"priceId" validate:"required"`
}

type CreateCheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
