package eventcontract_test

import (
	"testing"

	"github.com/randalmurphal/eventcontract/pkg/eventcontract"
)

func TestDefaultRegistry(t *testing.T) {
	for _, typ := range allTypes() {
		schema, ok := eventcontract.DefaultRegistry.Lookup(typ)
		if !ok {
			t.Fatalf("expected schema for %s", typ)
		}
		if schema.Type != typ {
			t.Errorf("expected schema type %s, got %s", typ, schema.Type)
		}
		if !eventcontract.DefaultRegistry.Has(typ) {
			t.Errorf("expected Has(%s) to be true", typ)
		}
	}

	if _, ok := eventcontract.DefaultRegistry.Lookup("order.refunded"); ok {
		t.Error("expected lookup of unknown tag to fail")
	}
	if eventcontract.DefaultRegistry.Has("bogus.tag") {
		t.Error("expected Has to return false for unknown tag")
	}
}

func TestRegistryTypes(t *testing.T) {
	types := eventcontract.DefaultRegistry.Types()
	want := []eventcontract.EventType{
		eventcontract.OrderCancelled,
		eventcontract.OrderConfirmed,
		eventcontract.OrderCreated,
		eventcontract.OrderShipped,
		eventcontract.PaymentAuthorized,
		eventcontract.PaymentFailed,
	}
	if len(types) != len(want) {
		t.Fatalf("expected %d types, got %d", len(want), len(types))
	}
	for i, typ := range want {
		if types[i] != typ {
			t.Errorf("expected types[%d] = %s, got %s", i, typ, types[i])
		}
	}
}

func TestFamilies(t *testing.T) {
	tests := []struct {
		typ  eventcontract.EventType
		want eventcontract.Family
	}{
		{eventcontract.OrderCreated, eventcontract.FamilyOrder},
		{eventcontract.OrderCancelled, eventcontract.FamilyOrder},
		{eventcontract.PaymentAuthorized, eventcontract.FamilyPayment},
		{eventcontract.PaymentFailed, eventcontract.FamilyPayment},
	}
	for _, tt := range tests {
		if got := tt.typ.Family(); got != tt.want {
			t.Errorf("%s: expected family %s, got %s", tt.typ, tt.want, got)
		}
	}
}

func TestChannels(t *testing.T) {
	if got := eventcontract.ChannelFor(eventcontract.OrderShipped); got != eventcontract.ChannelOrders {
		t.Errorf("expected orders channel, got %s", got)
	}
	if got := eventcontract.ChannelFor(eventcontract.PaymentFailed); got != eventcontract.ChannelPayments {
		t.Errorf("expected payments channel, got %s", got)
	}
	if got := eventcontract.ChannelFor("bogus.tag"); got != "" {
		t.Errorf("expected no channel for a tag outside the contract, got %q", got)
	}

	orderGroups := eventcontract.GroupsFor(eventcontract.ChannelOrders)
	if len(orderGroups) == 0 || orderGroups[0] != eventcontract.GroupOrderProcessing {
		t.Errorf("unexpected order groups: %v", orderGroups)
	}
	if groups := eventcontract.GroupsFor("unknown"); groups != nil {
		t.Errorf("expected nil groups for unknown channel, got %v", groups)
	}
}
