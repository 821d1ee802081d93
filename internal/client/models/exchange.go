package models

// ExchangeProgress is the lifecycle state of an exchange.
type ExchangeProgress string

const (
	ExchangeCreated  ExchangeProgress = "created"
	ExchangeAccepted ExchangeProgress = "accepted"
	ExchangeDeclined ExchangeProgress = "declined"
	ExchangeFinished ExchangeProgress = "finished"
	ExchangeCanceled ExchangeProgress = "canceled"
)

type Exchange struct {
	ID           int              `json:"id"`
	Book         Book             `json:"book"`
	Owner        UserSummary      `json:"owner"`
	Requester    UserSummary      `json:"requester"`
	Progress     ExchangeProgress `json:"progress"`
	MeetingTime  *string          `json:"meeting_time,omitempty"`
	CreatedAt    string           `json:"created_at"`
	CancelReason *string          `json:"cancel_reason,omitempty"`
}

type ExchangeActionPayload struct {
	CancelReason *string `json:"cancel_reason,omitempty"`
}

type EditExchangePayload struct {
	MeetingTime *string `json:"meeting_time"`
}
