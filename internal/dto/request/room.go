package request

type CreateRoomRequest struct {
	HotelID string `json:"hotel_id" validate:"required,uuid4"`
	Number  int    `json:"number" validate:"required,min=1"`
}

type UpdateRoomRequest struct {
	ID          string `json:"id" validate:"required,uuid4"`
	Number      int    `json:"number" validate:"required,min=1"`
	Available   bool   `json:"available"`
	TimesBooked int    `json:"times_booked" validate:"min=0"`
}

// ConfirmRequest places a hold on a room for an inclusive date range.
// RequestID is the caller-supplied idempotency token: a second confirm
// with the same token is rejected instead of double-applied.
type ConfirmRequest struct {
	RequestID string `json:"request_id" validate:"required"`
	DateStart string `json:"date_start" validate:"required,datetime=2006-01-02"`
	DateEnd   string `json:"date_end" validate:"required,datetime=2006-01-02"`
}

type ReleaseRequest struct {
	RequestID string `json:"request_id" validate:"required"`
}
