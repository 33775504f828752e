package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the root command with args and stdin, and returns stdout
// and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "--version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}

func TestCssText(t *testing.T) {
	out, errOut, err := run(t, `div { padding: 1px 2px } p { colour: red }`, "css")
	require.NoError(t, err)
	assert.Contains(t, out, "div {")
	assert.Contains(t, out, "padding-left")
	assert.Contains(t, errOut, "<stdin>:1:")
}

func TestCssYAML(t *testing.T) {
	out, _, err := run(t, `.a, #b > div { width: 10px }`, "css", "--format", "yaml")
	require.NoError(t, err)
	var rules []ruleOut
	require.NoError(t, yaml.Unmarshal([]byte(out), &rules))
	require.Len(t, rules, 2)
	assert.Equal(t, ".a", rules[0].Selector)
	assert.Len(t, rules[1].Declarations, 1)
}

func TestUnknownFormat(t *testing.T) {
	_, _, err := run(t, "", "keys", "-f", "xml")
	assert.ErrorIs(t, err, errFormat)
}

func TestKeys(t *testing.T) {
	out, _, err := run(t, "", "keys", "-f", "yaml")
	require.NoError(t, err)
	var keys []keyOut
	require.NoError(t, yaml.Unmarshal([]byte(out), &keys))
	found := false
	for _, k := range keys {
		if k.Key == "font-size" {
			found = true
			assert.True(t, k.Inherited)
		}
	}
	assert.True(t, found, "font-size is listed")
}

const doc = `<html><head><style>.box { width: 10px; color: red }</style></head>
<body><div class="box"><p>hi</p></div></body></html>`

func TestCascadeYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.html")
	require.NoError(t, os.WriteFile(file, []byte(doc), 0o644))
	out, _, err := run(t, "", "cascade", file, "--native=false", "--hidpi", "2", "-f", "yaml")
	require.NoError(t, err)
	var root styledNodeOut
	require.NoError(t, yaml.Unmarshal([]byte(out), &root))
	assert.Equal(t, "body", root.Node)
	require.Len(t, root.Children, 1)
	box := root.Children[0]
	assert.Equal(t, 1, box.ID)
	assert.Equal(t, "20px", box.Styles["width"])
	require.Len(t, box.Children, 1)
	assert.Empty(t, box.Children[0].Styles["width"], "width is not inherited")
}

func TestCascadePositions(t *testing.T) {
	out, _, err := run(t, doc, "cascade", "-f", "yaml",
		"--css", ".box { position: absolute; top: 5px; left: 0 }")
	require.NoError(t, err)
	var root styledNodeOut
	require.NoError(t, yaml.Unmarshal([]byte(out), &root))
	require.Len(t, root.Children, 1)
	box := root.Children[0]
	assert.True(t, strings.HasPrefix(box.Position, "absolute"), box.Position)
	assert.Contains(t, box.Position, "top=5px")
	assert.Contains(t, box.Position, "left=")
	require.Len(t, box.Children, 1)
	assert.NotContains(t, box.Children[0].Position, "absolute", "position is not inherited")
}

func TestCascadeText(t *testing.T) {
	out, _, err := run(t, doc, "cascade", "--css", "p { height: 5px }")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "#0 body"))
	assert.Contains(t, out, "div.box")
	assert.Contains(t, out, "height")
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("GUISTYLE_FORMAT", "yaml")
	out, _, err := run(t, "", "keys")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "- key:"))
}
