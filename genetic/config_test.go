package genetic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const fullConfig = `
[Algorithm]
pop_size = 20
genes = x y z
interval_min = -5
interval_max = 5
encoding = integer

[Selection]
method = universal ; fitness-proportionate with low spread
shuffle_order = true

[Crossover]
method = mean
probability = 0.8
group_size = 3

[Mutation]
method = swap_mutation
probability = 0.2
max_swap_size = 4

[Replacement]
method = plus_strategy
new_generation_size = 10
generation_gap = 2
`

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig(writeConfigFile(t, fullConfig))
	require.NoError(t, err)

	assert.Equal(t, 20, config.Algorithm.PopSize)
	assert.Equal(t, []string{"x", "y", "z"}, config.Algorithm.Genes)
	assert.Equal(t, -5.0, config.Algorithm.IntervalMin)
	assert.Equal(t, 5.0, config.Algorithm.IntervalMax)
	assert.Equal(t, "integer", config.Algorithm.Encoding)

	// Inline comments are stripped from method strings.
	assert.Equal(t, "universal", config.Selection.Method)
	assert.True(t, config.Selection.ShuffleOrder)

	assert.Equal(t, "mean", config.Crossover.Method)
	assert.Equal(t, 0.8, config.Crossover.Probability)
	assert.Equal(t, 3, config.Crossover.GroupSize)

	assert.Equal(t, "swap_mutation", config.Mutation.Method)
	assert.Equal(t, 0.2, config.Mutation.Probability)
	assert.Equal(t, 4, config.Mutation.MaxSwapSize)
	// Unset mutation fields fall back to the documented defaults.
	assert.Equal(t, DefaultMaxPercentChange, config.Mutation.MaxPercentChange)
	assert.Equal(t, DefaultMaxStructuralSize, config.Mutation.MaxShrinkSize)

	assert.Equal(t, "plus_strategy", config.Replacement.Method)
	assert.Equal(t, 10, config.Replacement.NewGenerationSize)
	assert.Equal(t, 2, config.Replacement.GenerationGap)
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig(writeConfigFile(t, `
[Algorithm]
pop_size = 5
genes = a b
`))
	require.NoError(t, err)

	assert.Equal(t, "real", config.Algorithm.Encoding)
	assert.Equal(t, DefaultMaxVariableLength, config.Algorithm.MaxVariableLength)
	assert.Equal(t, "best", config.Selection.Method)
	assert.Equal(t, "one_point", config.Crossover.Method)
	assert.Equal(t, 1.0, config.Crossover.Probability)
	assert.Equal(t, DefaultGroupSize, config.Crossover.GroupSize)
	assert.Equal(t, "uniform_mutation", config.Mutation.Method)
	assert.Equal(t, DefaultMutationProbability, config.Mutation.Probability)
	assert.Equal(t, DefaultMaxStructuralSize, config.Mutation.MaxGrowthSize)
	assert.Equal(t, "generational", config.Replacement.Method)
	assert.Equal(t, 0, config.Replacement.GenerationGap)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestLoadConfigValidation(t *testing.T) {
	cases := map[string]string{
		"negative pop size": `
[Algorithm]
pop_size = -1
genes = a
`,
		"inverted interval": `
[Algorithm]
pop_size = 5
genes = a
interval_min = 10
interval_max = 1
`,
		"missing genes": `
[Algorithm]
pop_size = 5
`,
		"bad encoding": `
[Algorithm]
pop_size = 5
genes = a
encoding = binary
`,
		"bad selection method": `
[Algorithm]
pop_size = 5
genes = a

[Selection]
method = tournament
`,
		"bad mutation method": `
[Algorithm]
pop_size = 5
genes = a

[Mutation]
method = gaussian_mutation
`,
		"crossover probability out of range": `
[Algorithm]
pop_size = 5
genes = a

[Crossover]
probability = 1.5
`,
		"mutation probability out of range": `
[Algorithm]
pop_size = 5
genes = a

[Mutation]
probability = -0.5
`,
		"negative group size": `
[Algorithm]
pop_size = 5
genes = a

[Crossover]
group_size = -2
`,
		"negative generation gap": `
[Algorithm]
pop_size = 5
genes = a

[Replacement]
generation_gap = -1
`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfigFile(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigVariableLengthNeedsNoGenes(t *testing.T) {
	config, err := LoadConfig(writeConfigFile(t, `
[Algorithm]
pop_size = 5
variable_length = true
max_variable_length = 8
`))
	require.NoError(t, err)
	assert.True(t, config.Algorithm.VariableLength)
	assert.Equal(t, 8, config.Algorithm.MaxVariableLength)
}

func TestNewAlgorithmFromConfig(t *testing.T) {
	config, err := LoadConfig(writeConfigFile(t, fullConfig))
	require.NoError(t, err)

	fitness := func(ind *Individual) float64 { return Sum(ind.Values) }
	alg, err := NewAlgorithmFromConfig(config, fitness)
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y", "z"}, alg.Genes)
	assert.Equal(t, Interval{Min: -5, Max: 5}, alg.Interval)
	assert.Equal(t, EncodingInteger, alg.Encoding)
	assert.False(t, alg.VariableLength)
}

func TestNewAlgorithmFromConfigVariableLength(t *testing.T) {
	config, err := LoadConfig(writeConfigFile(t, `
[Algorithm]
pop_size = 5
variable_length = true
max_variable_length = 8
`))
	require.NoError(t, err)

	alg, err := NewAlgorithmFromConfig(config, func(ind *Individual) float64 { return 0 })
	require.NoError(t, err)
	assert.True(t, alg.VariableLength)
	assert.Equal(t, 8, alg.MaxVariableLength)
}

func TestConfigTypedAccessors(t *testing.T) {
	config, err := LoadConfig(writeConfigFile(t, fullConfig))
	require.NoError(t, err)

	assert.Equal(t, SelectionUniversal, config.SelectionMethod())
	assert.True(t, config.SelectionOptions().ShuffleOrder)
	assert.Equal(t, CrossoverMean, config.CrossoverMethod())
	assert.Equal(t, 0.8, config.CrossoverOptions().Probability)
	assert.Equal(t, 3, config.GroupingOptions().GroupSize)
	assert.Equal(t, MutationSwap, config.MutationMethod())
	assert.Equal(t, 0.2, config.MutationOptions().Probability)
	assert.Equal(t, 4, config.MutationOptions().MaxSwapSize)
	assert.Equal(t, ReplacementPlus, config.ReplacementMethod())
	assert.Equal(t, 10, config.ReplacementOptions().NewGenerationSize)
	assert.Equal(t, 2, config.ReplacementOptions().GenerationGap)
}

func TestCleanIniString(t *testing.T) {
	assert.Equal(t, "best", cleanIniString(" best ; comment"))
	assert.Equal(t, "mean", cleanIniString("mean # comment"))
	assert.Equal(t, "one_point", cleanIniString("one_point"))
}
