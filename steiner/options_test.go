package steiner_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsteiner/steiner"
)

func TestDefaultOptions(t *testing.T) {
	o := steiner.DefaultOptions()
	assert.Equal(t, 3, o.MaxComponentSize)
	assert.Equal(t, steiner.WinAbsolute, o.WinCalculation)
	assert.Equal(t, steiner.GenerationVoronoi, o.TripleGeneration)
	assert.Equal(t, steiner.ReducingOn, o.TripleReducing)
	assert.Equal(t, steiner.SaveHybrid, o.SaveCalculation)
	assert.Equal(t, steiner.PassMulti, o.Pass)
	assert.Equal(t, time.Hour, o.TimeLimit)
	assert.NoError(t, o.Validate())
}

func TestParseOptions(t *testing.T) {
	o, err := steiner.ParseOptions([]byte(`
max_component_size: 4
win_calculation: relative
triple_generation: onDemand
triple_reducing: "off"
save_calculation: dynamicLCATree
pass: onePass
time_limit: 30s
`))
	require.NoError(t, err)
	assert.Equal(t, 4, o.MaxComponentSize)
	assert.Equal(t, steiner.WinRelative, o.WinCalculation)
	assert.Equal(t, steiner.GenerationOnDemand, o.TripleGeneration)
	assert.Equal(t, steiner.ReducingOff, o.TripleReducing)
	assert.Equal(t, steiner.SaveDynamicLCATree, o.SaveCalculation)
	assert.Equal(t, steiner.PassOne, o.Pass)
	assert.Equal(t, 30*time.Second, o.TimeLimit)

	empty, err := steiner.ParseOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, steiner.DefaultOptions(), empty)
}

func TestParseOptions_Errors(t *testing.T) {
	for name, doc := range map[string]string{
		"bad enum":        "pass: twoPass",
		"unknown key":     "colour: blue",
		"small k":         "max_component_size: 2",
		"zero time limit": "time_limit: 0s",
		"not a mapping":   "- 1",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := steiner.ParseOptions([]byte(doc))
			assert.ErrorIs(t, err, steiner.ErrBadOption)
		})
	}
}

func TestOptions_YAMLRoundTrip(t *testing.T) {
	in := steiner.DefaultOptions()
	in.MaxComponentSize = 5
	in.WinCalculation = steiner.WinRelative
	in.TripleGeneration = steiner.GenerationExhaustive
	in.SaveCalculation = steiner.SaveStaticLCATree
	in.Pass = steiner.PassOne
	in.TimeLimit = 90 * time.Second

	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), "save_calculation: staticLCATree")
	assert.Contains(t, string(data), "triple_generation: exhaustive")

	out, err := steiner.ParseOptions(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "hybrid", steiner.SaveHybrid.String())
	assert.Equal(t, "onDemand", steiner.GenerationOnDemand.String())
	assert.Equal(t, "multiPass", steiner.PassMulti.String())
	assert.Equal(t, "Pass(7)", steiner.Pass(7).String())
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { steiner.WithMaxComponentSize(2) })
	assert.Panics(t, func() { steiner.WithTimeLimit(0) })
	assert.NotPanics(t, func() { steiner.WithMaxComponentSize(3) })
}

func TestCall_RejectsInvalidOptions(t *testing.T) {
	bad := steiner.DefaultOptions()
	bad.Pass = steiner.Pass(9)
	g := pathGraph(t, 3)
	_, _, err := steiner.NewZelikovsky(steiner.WithOptions(bad)).Call(g, []string{"0", "2"}, nil)
	assert.ErrorIs(t, err, steiner.ErrBadOption)
	_, _, err = steiner.NewRZLoss(steiner.WithOptions(bad)).Call(g, []string{"0", "1", "2"}, nil)
	assert.ErrorIs(t, err, steiner.ErrBadOption)
}
