package core

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"
)

const testDef = `
[form]
title = "Customer"
width = 872

[[form.groupbox]]
label = "Address"
columns = 2

[[form.groupbox.item]]
label = "Street"
grid = { w = 0 }

[[form.groupbox.item]]
label = "City"

[[form.groupbox.item]]
label = "Zip"
hidden = true
`

const testDef2 = `
[form]
[[form.groupbox]]
[[form.groupbox.item]]
label = "a"
[[form.groupbox.item]]
label = "b"
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

//----------

func TestVersion(t *testing.T) {
	out, err := runCmd(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}

func TestLayoutCmd(t *testing.T) {
	fn := writeFile(t, "form.toml", testDef)
	out, err := runCmd(t, "layout", fn)
	require.NoError(t, err)

	assert.Contains(t, out, `form "Customer" 872x`)
	assert.Contains(t, out, `  groupbox "Address" cols=2 rows=2 `)
	assert.Contains(t, out, `    field "Street" grid={x=0 y=0 w=2 h=1 wx=2 wy=0} bounds=(0,0)-(872,30)`)
	assert.Contains(t, out, `    field "City" grid={x=0 y=1 w=1 h=1 wx=1 wy=0} bounds=(0,40)-(420,70)`)
	assert.Contains(t, out, `    field "Zip" hidden`)
	assert.NotContains(t, out, "Label:")
}

func TestLayoutCmdDump(t *testing.T) {
	fn := writeFile(t, "form.toml", testDef)
	out, err := runCmd(t, "layout", "--dump", fn)
	require.NoError(t, err)
	assert.Contains(t, out, `Label: (string) (len=6) "Street"`)
	assert.Contains(t, out, "Hints: (logicalgrid.GridData)")
	assert.Contains(t, out, "Resolved: (logicalgrid.GridData)")
}

func TestLayoutCmdMissingFile(t *testing.T) {
	_, err := runCmd(t, "layout", filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = runCmd(t, "layout")
	assert.Error(t, err)
}

func TestLayoutCmdInvalidDef(t *testing.T) {
	fn := writeFile(t, "form.toml", "[form]\nunknown = 1\n")
	_, err := runCmd(t, "layout", fn)
	assert.Error(t, err)
}

func TestLayoutCmdConfigFile(t *testing.T) {
	cfg := writeFile(t, "formlayout.yaml", `
log:
  level: debug
layout:
  column_width: 100
  hgap: 10
`)
	fn := writeFile(t, "form.toml", testDef2)
	out, err := runCmd(t, "--config", cfg, "layout", "--width", "210", fn)
	require.NoError(t, err)
	assert.Contains(t, out, `field "a" grid={x=0 y=0 w=1 h=1 wx=1 wy=0} bounds=(0,0)-(100,30)`)
	assert.Contains(t, out, `field "b" grid={x=1 y=0 w=1 h=1 wx=1 wy=0} bounds=(110,0)-(210,30)`)
}

func TestLayoutCmdEnv(t *testing.T) {
	t.Setenv("FORMLAYOUT_LAYOUT_COLUMN_WIDTH", "100")
	t.Setenv("FORMLAYOUT_LAYOUT_HGAP", "10")
	fn := writeFile(t, "form.toml", testDef2)
	out, err := runCmd(t, "layout", fn)
	require.NoError(t, err)
	assert.Contains(t, out, `form "" 210x30`)
	assert.Contains(t, out, `bounds=(110,0)-(210,30)`)
}

func TestLayoutCmdFont(t *testing.T) {
	font := filepath.Join(t.TempDir(), "goregular.ttf")
	require.NoError(t, os.WriteFile(font, goregular.TTF, 0o644))
	fn := writeFile(t, "form.toml", testDef)
	out, err := runCmd(t, "layout", "--font", font, "--font-size", "20", fn)
	require.NoError(t, err)
	assert.Contains(t, out, `field "Street"`)

	_, err = runCmd(t, "layout", "--font", font+".missing", fn)
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 420, cfg.Layout.Env().ColumnWidth)

	_, err = loadConfig(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

//----------

func TestLayoutWatch(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	fn := writeFile(t, "form.toml", testDef2)
	out := &bytes.Buffer{}
	rebuilt := make(chan struct{}, 16)
	r := &layoutRunner{
		app:      &cliApp{cfg: DefaultConfig(), log: zap.NewNop()},
		opts:     &layoutOpts{watch: true},
		filename: fn,
		out:      out,
		onRebuilt: func() {
			select {
			case rebuilt <- struct{}{}:
			default:
			}
		},
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- r.run(ctx) }()

	wait := func() {
		t.Helper()
		select {
		case <-rebuilt:
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for the layout")
		}
	}
	wait()
	def := testDef2 + "[[form.groupbox.item]]\nlabel = \"extra\"\n"
	// replaced in one step, as editors do
	tmp := fn + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(def), 0o644))
	require.NoError(t, os.Rename(tmp, fn))
	wait()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for the runner")
	}
	assert.Contains(t, out.String(), `field "extra"`)
}
