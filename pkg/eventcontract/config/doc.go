/*
Package config provides the contract's channel/subscriber-group topology
and type-safe configuration extraction from map[string]any.

# Topology

Producers and consumers agree on channel and group names by loading the
same topology. The conventional names are built in; a YAML or JSON file
overrides them:

	topo, err := config.LoadTopology("topology.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	channel := topo.ChannelFor(eventcontract.OrderCreated) // "orders"

# Generic Access

Config wraps a map[string]any and provides typed accessor methods that
handle missing keys and type mismatches gracefully by returning default
values:

	cfg, _ := config.FromYAML(data)
	name := cfg.Sub("channels").String("orders", "orders")

All accessors return the default if the key is missing or the value
cannot be converted to the requested type.

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation.
*/
package config
