package payload

type VerifyScanPayload struct {
	Payload string `json:"payload" validate:"required"`
	CheckIn bool   `json:"check_in"`
}

type VerifyScanResult struct {
	MemberID      string `json:"member_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	TeamID        string `json:"team_id"`
	TeamCode      string `json:"team_code"`
	PaymentStatus string `json:"payment_status"`
	Attended      bool   `json:"attended"`
	CheckedIn     bool   `json:"checked_in"`
}
