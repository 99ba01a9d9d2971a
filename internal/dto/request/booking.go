package request

// CreateBookingRequest carries an inclusive date range in YYYY-MM-DD.
// AutoSelect is accepted for API compatibility but unused: room selection
// is the caller's responsibility.
type CreateBookingRequest struct {
	RoomID     string `json:"room_id" validate:"required,uuid4"`
	DateStart  string `json:"date_start" validate:"required,datetime=2006-01-02"`
	DateEnd    string `json:"date_end" validate:"required,datetime=2006-01-02"`
	AutoSelect bool   `json:"auto_select"`
}
