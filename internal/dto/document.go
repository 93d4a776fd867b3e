package dto

type SubmitDocumentRequestDTO struct {
	Kind          string `json:"kind" validate:"required,oneof=ID_CARD DRIVER_LICENSE"`
	Number        string `json:"number" validate:"required"`
	FrontImageRef string `json:"front_image_ref" validate:"required"`
	BackImageRef  string `json:"back_image_ref" validate:"required"`
}

type ReviewDocumentRequestDTO struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason,omitempty"`
}

type DocumentResponseDTO struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	Number       string `json:"number"`
	Status       string `json:"status"`
	RejectReason string `json:"reject_reason,omitempty"`
	SubmittedAt  string `json:"submitted_at"`
}
