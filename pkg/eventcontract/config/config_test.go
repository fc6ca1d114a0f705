package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/eventcontract/pkg/eventcontract"
	"github.com/randalmurphal/eventcontract/pkg/eventcontract/config"
)

// TestNew verifies Config creation from maps.
func TestNew(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
	}{
		{"nil map", nil},
		{"empty map", map[string]any{}},
		{"with values", map[string]any{"key": "value"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.NotNil(t, cfg.Raw())
		})
	}
}

// TestString verifies string extraction with defaults.
func TestString(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal string
		want       string
	}{
		{"key exists", map[string]any{"name": "orders"}, "name", "default", "orders"},
		{"key missing", map[string]any{"other": "value"}, "name", "default", "default"},
		{"empty string", map[string]any{"name": ""}, "name", "default", ""},
		{"wrong type int", map[string]any{"name": 123}, "name", "default", "default"},
		{"nil map", nil, "name", "default", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.Equal(t, tt.want, cfg.String(tt.key, tt.defaultVal))
		})
	}
}

// TestStringSlice verifies list extraction with both YAML and native forms.
func TestStringSlice(t *testing.T) {
	def := []string{"fallback"}
	tests := []struct {
		name string
		data map[string]any
		want []string
	}{
		{"native strings", map[string]any{"groups": []string{"a", "b"}}, []string{"a", "b"}},
		{"decoded any list", map[string]any{"groups": []any{"a", "b"}}, []string{"a", "b"}},
		{"mixed list", map[string]any{"groups": []any{"a", 2}}, def},
		{"missing", map[string]any{}, def},
		{"wrong type", map[string]any{"groups": "a"}, def},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.Equal(t, tt.want, cfg.StringSlice("groups", def))
		})
	}
}

// TestSub verifies nested map access never requires nil checks.
func TestSub(t *testing.T) {
	cfg := config.New(map[string]any{
		"channels": map[string]any{"orders": "orders-v2"},
		"scalar":   42,
	})

	assert.Equal(t, "orders-v2", cfg.Sub("channels").String("orders", "orders"))
	assert.Equal(t, "orders", cfg.Sub("missing").String("orders", "orders"))
	assert.Equal(t, "orders", cfg.Sub("scalar").String("orders", "orders"))
}

// TestDefaultTopology verifies the built-in conventional names.
func TestDefaultTopology(t *testing.T) {
	topo := config.DefaultTopology()

	assert.Equal(t, eventcontract.ChannelOrders, topo.OrderChannel)
	assert.Equal(t, eventcontract.ChannelPayments, topo.PaymentChannel)
	assert.Contains(t, topo.OrderGroups, eventcontract.GroupOrderProcessing)
	assert.Contains(t, topo.PaymentGroups, eventcontract.GroupPaymentProcessing)
}

// TestFromConfigOverrides verifies partial overrides keep defaults elsewhere.
func TestFromConfigOverrides(t *testing.T) {
	cfg, err := config.FromYAML([]byte(`
channels:
  orders: orders-v2
groups:
  payments: [billing]
`))
	require.NoError(t, err)

	topo := config.FromConfig(cfg)
	assert.Equal(t, "orders-v2", topo.OrderChannel)
	assert.Equal(t, eventcontract.ChannelPayments, topo.PaymentChannel)
	assert.Equal(t, []string{"billing"}, topo.PaymentGroups)
	assert.Equal(t, config.DefaultTopology().OrderGroups, topo.OrderGroups)
}

// TestTopologyRouting verifies channel and group lookup on a loaded topology.
func TestTopologyRouting(t *testing.T) {
	topo := config.DefaultTopology()

	assert.Equal(t, topo.OrderChannel, topo.ChannelFor(eventcontract.OrderCreated))
	assert.Equal(t, topo.PaymentChannel, topo.ChannelFor(eventcontract.PaymentAuthorized))
	assert.Equal(t, "", topo.ChannelFor("bogus.tag"))
	assert.Equal(t, topo.OrderGroups, topo.GroupsFor(topo.OrderChannel))
	assert.Nil(t, topo.GroupsFor("nope"))
}

// TestLoadTopology verifies file loading for both formats.
func TestLoadTopology(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "topology.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("channels:\n  payments: payments-v2\n"), 0o644))

	topo, err := config.LoadTopology(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "payments-v2", topo.PaymentChannel)

	jsonPath := filepath.Join(dir, "topology.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"channels":{"orders":"orders-v3"}}`), 0o644))

	topo, err = config.LoadTopology(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "orders-v3", topo.OrderChannel)

	_, err = config.LoadTopology(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	badExt := filepath.Join(dir, "topology.toml")
	require.NoError(t, os.WriteFile(badExt, []byte(""), 0o644))
	_, err = config.LoadTopology(badExt)
	assert.Error(t, err)
}
