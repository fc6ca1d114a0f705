package eventcontract

// Conventional channel and subscriber-group names. These are opaque
// string constants shared between services; no behavior in this package
// depends on them beyond the family mapping below.
const (
	ChannelOrders   = "orders"
	ChannelPayments = "payments"
)

const (
	GroupOrderProcessing   = "order-processing"
	GroupPaymentProcessing = "payment-processing"
	GroupNotifications     = "notifications"
	GroupAnalytics         = "analytics"
)

// ChannelFor returns the conventional channel an event type travels on,
// or "" for a tag outside the contract's two families.
func ChannelFor(t EventType) string {
	switch t.Family() {
	case FamilyOrder:
		return ChannelOrders
	case FamilyPayment:
		return ChannelPayments
	default:
		return ""
	}
}

// GroupsFor returns the conventional subscriber groups for a channel.
func GroupsFor(channel string) []string {
	switch channel {
	case ChannelOrders:
		return []string{GroupOrderProcessing, GroupNotifications, GroupAnalytics}
	case ChannelPayments:
		return []string{GroupPaymentProcessing, GroupNotifications, GroupAnalytics}
	default:
		return nil
	}
}
