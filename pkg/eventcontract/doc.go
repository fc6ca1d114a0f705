/*
Package eventcontract defines the shared message contract for order and
payment events exchanged between services over the message bus.

# Overview

eventcontract is the single source of truth for the shape of the six
event types the platform emits. Producers build events through the
factory functions, consumers classify and validate untrusted wire
payloads through the inbound validator, and both sides agree on the
JSON field names and constraints defined here.

The contract is closed: the six event types are fixed at build time.
Adding a new type means extending the type constants, the payload
structs, the schema set, and the test matrix in this package - there is
no runtime registration.

# Producing Events

Producers call the family factory for the event they want to publish.
Correlation ID and timestamp are generated when not supplied:

	evt, err := eventcontract.NewOrderEvent(
	    eventcontract.OrderCreated, 123, 456,
	    eventcontract.OrderCreatedData{
	        Items:       []eventcontract.Item{{ProductID: 1, Quantity: 2, Price: 19.99}},
	        TotalAmount: 39.98,
	    },
	)
	if err != nil {
	    // construction is fail-loud: a malformed request is a bug
	}
	payload, _ := json.Marshal(evt)

Pass eventcontract.WithCorrelationID to join an existing correlation
chain. Only an omitted option triggers generation - an explicitly
supplied empty string is kept and rejected by validation rather than
silently replaced.

# Consuming Events

Consumers hand freshly deserialized values (or raw bytes) to the
inbound validator, which never panics on malformed input:

	res := eventcontract.ParseEvent(raw)
	if !res.Success {
	    // log and skip; malformed messages are expected on the wire
	    return
	}
	handle(res.Event)

# Error Taxonomy

Validation failures carry every violated field in one pass
(*ValidationError), unknown type tags are distinguishable
(*UnknownTypeError) so consumers can special-case events from newer
contract versions, and a malformed envelope is reported as a validation
failure of the envelope itself.

# Subpackages

  - field: the reusable field-level predicates schemas are built from
  - config: channel/subscriber-group topology with YAML/JSON loading
  - observability: slog helpers plus OTel metrics and tracing for
    validation outcomes
*/
package eventcontract
