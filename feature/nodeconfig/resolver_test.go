package nodeconfig

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"node-config/feature/nodeconfig/format"
	"node-config/feature/nodeconfig/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"
)

func setupResolver(t *testing.T, f format.Format) (*Resolver, string, *observer.ObservedLogs) {
	t.Helper()
	dir := t.TempDir()
	core, logs := observer.New(zapcore.DebugLevel)
	return NewResolver(source.NewDir(dir), f, zap.New(core)), dir, logs
}

func writeOverride(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func expectedWith(overrides map[string]any) map[string]any {
	want := Defaults()
	for k, v := range overrides {
		want[k] = v
	}
	return want
}

func TestResolve_NoOverride(t *testing.T) {
	r, dir, logs := setupResolver(t, format.TOML{})

	conf := r.Resolve(context.Background(), "non_existent_node")
	assert.Equal(t, Defaults(), conf)

	entries := logs.FilterMessage("Config for node not found").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "non_existent_node", entries[0].ContextMap()["node"])
	assert.Equal(t, filepath.Join(dir, "non_existent_node.toml"), entries[0].ContextMap()["file"])
}

func TestResolve_LakeOverride(t *testing.T) {
	tests := []struct {
		format  format.Format
		content string
	}{
		{format.TOML{}, "sleep_interval = 10\ndfrobot_moisture = true\n"},
		{format.YAML{}, "sleep_interval: 10\ndfrobot_moisture: true\n"},
		{format.Dict{}, "dict(\n    sleep_interval = 10,  # log every minute\n    dfrobot_moisture = True\n)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format.Name(), func(t *testing.T) {
			r, dir, logs := setupResolver(t, tt.format)
			writeOverride(t, dir, "lake"+tt.format.Ext(), tt.content)

			conf := r.Resolve(context.Background(), "lake")
			assert.Equal(t, expectedWith(map[string]any{
				"sleep_interval":   10,
				"dfrobot_moisture": true,
			}), conf)
			assert.Zero(t, logs.Len())
		})
	}
}

func TestResolve_OverrideWithFalseAndZero(t *testing.T) {
	r, dir, _ := setupResolver(t, format.TOML{})
	writeOverride(t, dir, "cellar.toml", "local_influxdb = false\nsleep_interval = 0\n")

	conf := r.Resolve(context.Background(), "cellar")
	assert.Equal(t, false, conf["local_influxdb"])
	assert.Equal(t, 0, conf["sleep_interval"])
}

func TestResolve_UnknownKeysPassThrough(t *testing.T) {
	r, dir, _ := setupResolver(t, format.TOML{})
	writeOverride(t, dir, "pump.toml", "relay_pin = 4\nwatering = true\n")

	conf := r.Resolve(context.Background(), "pump")
	assert.Equal(t, expectedWith(map[string]any{"relay_pin": 4, "watering": true}), conf)
}

func TestResolve_EmptyOverride(t *testing.T) {
	r, dir, logs := setupResolver(t, format.TOML{})
	writeOverride(t, dir, "plain.toml", "# nothing to change\n")

	assert.Equal(t, Defaults(), r.Resolve(context.Background(), "plain"))
	assert.Zero(t, logs.Len())
}

func TestResolve_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Syntax", "sleep_interval = = 10"},
		{"PythonBool", "dfrobot_moisture = True"},
		{"StringValue", `sleep_interval = "10"`},
		{"FloatValue", "sleep_interval = 1.5"},
		{"Table", "[sensors]\ndht11 = true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, dir, logs := setupResolver(t, format.TOML{})
			writeOverride(t, dir, "broken.toml", tt.content)

			conf := r.Resolve(context.Background(), "broken")
			assert.Equal(t, Defaults(), conf)

			entries := logs.FilterMessage("Config for node is malformed").All()
			require.Len(t, entries, 1)
			assert.Equal(t, "broken", entries[0].ContextMap()["node"])
			assert.Equal(t, 1, logs.Len())
		})
	}
}

func TestResolve_Unreadable(t *testing.T) {
	r, dir, logs := setupResolver(t, format.TOML{})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "odd.toml"), 0o755))

	assert.Equal(t, Defaults(), r.Resolve(context.Background(), "odd"))
	assert.Equal(t, 1, logs.FilterMessage("Config for node could not be read").Len())
}

func TestResolve_RejectsTraversal(t *testing.T) {
	parent := t.TempDir()
	nodes := filepath.Join(parent, "nodes")
	require.NoError(t, os.Mkdir(nodes, 0o755))
	writeOverride(t, parent, "secret.toml", "sleep_interval = 1\n")

	core, logs := observer.New(zapcore.DebugLevel)
	r := NewResolver(source.NewDir(nodes), format.TOML{}, zap.New(core))

	for _, name := range []string{"../secret", "..", "a/../../secret", "/etc/passwd"} {
		conf := r.Resolve(context.Background(), name)
		assert.Equal(t, Defaults(), conf, name)
	}
	assert.Equal(t, 4, logs.FilterMessage("Rejected node name").Len())
}

func TestResolve_NoCaching(t *testing.T) {
	r, dir, _ := setupResolver(t, format.TOML{})

	writeOverride(t, dir, "lake.toml", "sleep_interval = 10\n")
	assert.Equal(t, 10, r.Resolve(context.Background(), "lake")["sleep_interval"])

	writeOverride(t, dir, "lake.toml", "sleep_interval = 20\n")
	assert.Equal(t, 20, r.Resolve(context.Background(), "lake")["sleep_interval"])

	require.NoError(t, os.Remove(filepath.Join(dir, "lake.toml")))
	assert.Equal(t, 600, r.Resolve(context.Background(), "lake")["sleep_interval"])
}

func TestResolve_ResultsAreIndependent(t *testing.T) {
	r, dir, _ := setupResolver(t, format.TOML{})
	writeOverride(t, dir, "lake.toml", "sleep_interval = 10\n")

	first := r.Resolve(context.Background(), "lake")
	first["sleep_interval"] = 99
	first["injected"] = true

	second := r.Resolve(context.Background(), "lake")
	assert.Equal(t, 10, second["sleep_interval"])
	assert.NotContains(t, second, "injected")
	assert.Equal(t, 600, Defaults()["sleep_interval"])
}

func TestResolve_Concurrent(t *testing.T) {
	r, dir, _ := setupResolver(t, format.TOML{})
	for i := 0; i < 8; i++ {
		writeOverride(t, dir, fmt.Sprintf("node%d.toml", i), fmt.Sprintf("sleep_interval = %d\n", i+1))
	}

	var g errgroup.Group
	for n := 0; n < 200; n++ {
		i := n % 10
		g.Go(func() error {
			conf := r.Resolve(context.Background(), fmt.Sprintf("node%d", i))
			want := 600
			if i < 8 {
				want = i + 1
			}
			if conf["sleep_interval"] != want {
				return fmt.Errorf("node%d: got %v, want %d", i, conf["sleep_interval"], want)
			}
			if len(conf) != len(Defaults()) {
				return errors.New("unexpected keys in resolved configuration")
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())
}

func TestInspect_ClassifiesErrors(t *testing.T) {
	r, dir, logs := setupResolver(t, format.TOML{})
	writeOverride(t, dir, "broken.toml", "sleep_interval = [")

	_, err := r.Inspect(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrOverrideNotFound)
	assert.ErrorIs(t, err, source.ErrNotFound)

	_, err = r.Inspect(context.Background(), "broken")
	assert.ErrorIs(t, err, ErrOverrideMalformed)

	_, err = r.Inspect(context.Background(), "../x")
	assert.ErrorIs(t, err, ErrInvalidNodeName)

	assert.Zero(t, logs.Len())
}

func TestLoadOverride_NormalizesIntegers(t *testing.T) {
	r, dir, _ := setupResolver(t, format.TOML{})
	writeOverride(t, dir, "lake.toml", "sleep_interval = 10\n")

	override, err := r.LoadOverride(context.Background(), "lake")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"sleep_interval": 10}, override)
}

func TestWithLogger(t *testing.T) {
	r, _, base := setupResolver(t, format.TOML{})
	core, scoped := observer.New(zapcore.DebugLevel)

	r.WithLogger(zap.New(core)).Resolve(context.Background(), "missing")
	assert.Equal(t, 1, scoped.Len())
	assert.Zero(t, base.Len())
}
