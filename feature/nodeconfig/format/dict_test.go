package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDict_Decode(t *testing.T) {
	tests := []struct {
		name string
		data string
		want map[string]any
	}{
		{"EmptyCall", "dict()", map[string]any{}},
		{"TrailingComma", "dict(door_opened = True,)", map[string]any{"door_opened": true}},
		{"Product", "dict(sleep_interval = 10*60)", map[string]any{"sleep_interval": 600}},
		{"Negative", "dict(offset = -5)", map[string]any{"offset": -5}},
		{"Underscores", "dict(sleep_interval = 86_400)", map[string]any{"sleep_interval": 86400}},
		{"Hex", "dict(mask = 0x1F)", map[string]any{"mask": 31}},
		{"Braces", `{"adafruit_io": True, 'dht11_temp': False}`, map[string]any{"adafruit_io": true, "dht11_temp": false}},
		{
			"CommentsEverywhere",
			"# node: lake\ndict(  # overrides\n  sleep_interval = 60,  # minute\n  local_influxdb = False\n)\n# end\n",
			map[string]any{"sleep_interval": 60, "local_influxdb": false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dict{}.Decode([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDict_DecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		message string
	}{
		{"Empty", "", "expected dict(...)"},
		{"FunctionCall", "open('/etc/passwd').read()", "expected dict(...)"},
		{"StringValue", "dict(name = 'lake')", "expected integer"},
		{"FloatValue", "dict(sleep_interval = 1.5)", "unexpected character '.'"},
		{"NameValue", "dict(sleep_interval = interval)", "unsupported value"},
		{"Duplicate", "dict(a = 1, a = 2)", `key "a" repeated`},
		{"MissingComma", "dict(a = 1 b = 2)", "expected ',' or ')'"},
		{"Unterminated", "dict(a = 1", "expected ',' or ')'"},
		{"TrailingCode", "dict(a = 1)\nimport os", "after dictionary"},
		{"BareKeyInBraces", "{a: 1}", "expected quoted setting name"},
		{"LeadingZero", "dict(a = 010)", "leading zeros"},
		{"Overflow", "dict(a = 9223372036854775807*2)", "integer overflow"},
		{"UnterminatedString", `{"a: 1}`, "unterminated string"},
		{"ReservedKey", "dict(True = 1)", "expected setting name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Dict{}.Decode([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestDict_ErrorLine(t *testing.T) {
	_, err := Dict{}.Decode([]byte("dict(\n  a = 1,\n  b = 'x'\n)"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}
