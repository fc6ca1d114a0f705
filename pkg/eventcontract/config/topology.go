package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/eventcontract/pkg/eventcontract"
)

// Topology names the channels and subscriber groups the contract's
// events travel through. The names are opaque deployment conventions;
// nothing in validation depends on them, but producers and consumers
// load the same topology so their wiring agrees.
type Topology struct {
	OrderChannel   string
	PaymentChannel string
	OrderGroups    []string
	PaymentGroups  []string
}

// DefaultTopology returns the conventional channel and group names.
func DefaultTopology() Topology {
	return Topology{
		OrderChannel:   eventcontract.ChannelOrders,
		PaymentChannel: eventcontract.ChannelPayments,
		OrderGroups:    eventcontract.GroupsFor(eventcontract.ChannelOrders),
		PaymentGroups:  eventcontract.GroupsFor(eventcontract.ChannelPayments),
	}
}

// FromYAML parses YAML configuration data. The document must be a
// mapping at the top level.
func FromYAML(data []byte) (Config, error) {
	m := map[string]any{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("parse yaml config: %w", err)
	}
	return New(m), nil
}

// FromJSON parses JSON configuration data. The document must be an
// object at the top level.
func FromJSON(data []byte) (Config, error) {
	m := map[string]any{}
	if err := json.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("parse json config: %w", err)
	}
	return New(m), nil
}

// FromConfig extracts a Topology, falling back to the conventional
// defaults for anything the configuration does not override.
//
// Expected shape:
//
//	channels:
//	  orders: orders
//	  payments: payments
//	groups:
//	  orders: [order-processing, notifications, analytics]
//	  payments: [payment-processing, notifications, analytics]
func FromConfig(cfg Config) Topology {
	def := DefaultTopology()
	channels := cfg.Sub("channels")
	groups := cfg.Sub("groups")
	return Topology{
		OrderChannel:   channels.String("orders", def.OrderChannel),
		PaymentChannel: channels.String("payments", def.PaymentChannel),
		OrderGroups:    groups.StringSlice("orders", def.OrderGroups),
		PaymentGroups:  groups.StringSlice("payments", def.PaymentGroups),
	}
}

// LoadTopology reads a topology file, picking the parser from the file
// extension (.yaml/.yml or .json).
func LoadTopology(path string) (Topology, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Topology{}, fmt.Errorf("read topology file: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		cfg, err = FromYAML(raw)
	case ".json":
		cfg, err = FromJSON(raw)
	default:
		return Topology{}, fmt.Errorf("topology file %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return Topology{}, err
	}
	return FromConfig(cfg), nil
}

// ChannelFor returns the configured channel for an event type, or ""
// for a tag outside the contract's two families.
func (t Topology) ChannelFor(et eventcontract.EventType) string {
	switch et.Family() {
	case eventcontract.FamilyOrder:
		return t.OrderChannel
	case eventcontract.FamilyPayment:
		return t.PaymentChannel
	default:
		return ""
	}
}

// GroupsFor returns the configured subscriber groups for a channel.
func (t Topology) GroupsFor(channel string) []string {
	switch channel {
	case t.OrderChannel:
		return t.OrderGroups
	case t.PaymentChannel:
		return t.PaymentGroups
	default:
		return nil
	}
}
