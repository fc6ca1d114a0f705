package eventcontract

import "strings"

// EventType is the closed set of type tags carried in the "type" field.
type EventType string

const (
	OrderCreated      EventType = "order.created"
	OrderConfirmed    EventType = "order.confirmed"
	OrderShipped      EventType = "order.shipped"
	OrderCancelled    EventType = "order.cancelled"
	PaymentAuthorized EventType = "payment.authorized"
	PaymentFailed     EventType = "payment.failed"
)

// String returns the wire form of the tag.
func (t EventType) String() string {
	return string(t)
}

// Family groups event types by the channel they travel on.
type Family string

const (
	FamilyOrder   Family = "order"
	FamilyPayment Family = "payment"
)

// Family returns the family prefix of the tag ("order" for "order.created").
func (t EventType) Family() Family {
	prefix, _, _ := strings.Cut(string(t), ".")
	return Family(prefix)
}

// Event is an immutable order or payment message. Every event carries the
// same envelope; Data holds the variant payload whose shape is determined
// by Type. Events built by the factory or returned by the inbound
// validator have already passed full schema validation.
type Event struct {
	Type          EventType `json:"type"`
	OrderID       int64     `json:"orderId"`
	UserID        int64     `json:"userId"`
	CorrelationID string    `json:"correlationId"`
	Timestamp     string    `json:"timestamp"`
	Data          any       `json:"data"`
}

// Item is one order line in an order.created or order.confirmed payload.
type Item struct {
	ProductID int64   `json:"productId"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderCreatedData is the payload for order.created.
type OrderCreatedData struct {
	Items           []Item  `json:"items"`
	TotalAmount     float64 `json:"totalAmount"`
	ShippingAddress string  `json:"shippingAddress,omitempty"`
}

// OrderConfirmedData is the payload for order.confirmed.
type OrderConfirmedData struct {
	Items       []Item  `json:"items"`
	TotalAmount float64 `json:"totalAmount"`
	PaymentID   string  `json:"paymentId,omitempty"`
}

// OrderShippedData is the payload for order.shipped. All fields are
// optional; an empty payload is a valid shipment notice.
type OrderShippedData struct {
	TrackingNumber    string `json:"trackingNumber,omitempty"`
	Carrier           string `json:"carrier,omitempty"`
	EstimatedDelivery string `json:"estimatedDelivery,omitempty"`
}

// CancelActor identifies who cancelled an order.
type CancelActor string

const (
	CancelledByUser   CancelActor = "user"
	CancelledBySystem CancelActor = "system"
	CancelledByAdmin  CancelActor = "admin"
)

// OrderCancelledData is the payload for order.cancelled. RefundAmount is
// a pointer so that an absent refund is distinguishable from a zero one.
type OrderCancelledData struct {
	Reason       string      `json:"reason"`
	CancelledBy  CancelActor `json:"cancelledBy"`
	RefundAmount *float64    `json:"refundAmount,omitempty"`
}

// PaymentAuthorizedData is the payload for payment.authorized.
type PaymentAuthorizedData struct {
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
}

// PaymentFailedData is the payload for payment.failed.
type PaymentFailedData struct {
	Reason    string `json:"reason"`
	Retryable bool   `json:"retryable"`
}
