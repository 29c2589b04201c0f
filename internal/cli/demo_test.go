package cli

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/idlink/internal/idgen"
)

func executeDemo(t *testing.T, format string, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewDemoCommand(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestDemoCommand_Golden(t *testing.T) {
	out := executeDemo(t, "text")

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "demo", []byte(out))
}

func TestDemoCommand_Random(t *testing.T) {
	out := executeDemo(t, "text", "--random")
	assert.Contains(t, out, "account.ID() = Identifier<cli.Account>(")
	assert.Contains(t, out, "session belongs to account: true")
	assert.Contains(t, out, "account minted first: true")
}

func TestDemoCommand_JSON(t *testing.T) {
	out := executeDemo(t, "json")

	var resp struct {
		Status string     `json:"status"`
		Data   DemoReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data.Sections, 4)
	assert.Equal(t, "Identifiers as map keys", resp.Data.Sections[2].Title)
	assert.Equal(t, "Identifier<phantom.Foo>(4) -> absent", resp.Data.Sections[2].Lines[3])
}

func TestBuildDemo_ConsumesTwoPayloads(t *testing.T) {
	gen := idgen.NewFixedGenerator(demoUUIDs...)
	BuildDemo(gen)
	assert.Panics(t, func() { gen.Generate() })
}
