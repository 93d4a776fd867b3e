package dto

type PaymentResponseDTO struct {
	ID          string `json:"id"`
	OrderID     int    `json:"order_id"`
	AmountCents int64  `json:"amount_cents"`
	Method      string `json:"method"`
	Purpose     string `json:"purpose"`
	ExternalRef string `json:"external_ref,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type CheckoutResponseDTO struct {
	Params map[string]string `json:"params"`
}
