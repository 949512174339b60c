package genetic

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// Config stores the algorithm description and the per-operator option
// defaults loaded from an INI file. Callers that configure everything
// programmatically can skip it and use NewAlgorithm directly; the operator
// methods accept their options per call either way.
type Config struct {
	Algorithm   AlgorithmConfig
	Selection   SelectionConfig
	Crossover   CrossoverConfig
	Mutation    MutationConfig
	Replacement ReplacementConfig
}

// AlgorithmConfig holds the [Algorithm] section.
type AlgorithmConfig struct {
	PopSize           int      `ini:"pop_size"`
	Genes             []string `ini:"genes" delim:" "` // space-separated gene keys
	VariableLength    bool     `ini:"variable_length"`
	MaxVariableLength int      `ini:"max_variable_length"`
	IntervalMin       float64  `ini:"interval_min"`
	IntervalMax       float64  `ini:"interval_max"`
	Encoding          string   `ini:"encoding"` // "real" or "integer"
}

// SelectionConfig holds the [Selection] section.
type SelectionConfig struct {
	Method       string `ini:"method"`
	ShuffleOrder bool   `ini:"shuffle_order"`
}

// CrossoverConfig holds the [Crossover] section.
type CrossoverConfig struct {
	Method          string  `ini:"method"`
	Probability     float64 `ini:"probability"`
	DifferentPoints bool    `ini:"different_points"`
	GroupSize       int     `ini:"group_size"`
}

// MutationConfig holds the [Mutation] section.
type MutationConfig struct {
	Method           string  `ini:"method"`
	Probability      float64 `ini:"probability"`
	MaxPercentChange float64 `ini:"max_percent_change"`
	MaxShrinkSize    int     `ini:"max_shrink_size"`
	MaxGrowthSize    int     `ini:"max_growth_size"`
	MaxSwapSize      int     `ini:"max_swap_size"`
	MaxReplaceSize   int     `ini:"max_replace_size"`
	MaxInsertSize    int     `ini:"max_insert_size"`
}

// ReplacementConfig holds the [Replacement] section.
type ReplacementConfig struct {
	Method            string `ini:"method"`
	NewGenerationSize int    `ini:"new_generation_size"`
	GenerationGap     int    `ini:"generation_gap"`
}

// LoadConfig loads configuration parameters from an INI file, applies the
// documented defaults to missing values, and validates the result.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true, // Allow comments starting with # or ;
		UnescapeValueCommentSymbols: true, // If # or ; appear in a value, treat as value
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	config := &Config{}

	// Map sections to structs.
	if err := cfg.Section("Algorithm").MapTo(&config.Algorithm); err != nil {
		return nil, fmt.Errorf("failed to map [Algorithm] section: %w", err)
	}
	if err := cfg.Section("Selection").MapTo(&config.Selection); err != nil {
		return nil, fmt.Errorf("failed to map [Selection] section: %w", err)
	}
	if err := cfg.Section("Crossover").MapTo(&config.Crossover); err != nil {
		return nil, fmt.Errorf("failed to map [Crossover] section: %w", err)
	}
	if err := cfg.Section("Mutation").MapTo(&config.Mutation); err != nil {
		return nil, fmt.Errorf("failed to map [Mutation] section: %w", err)
	}
	if err := cfg.Section("Replacement").MapTo(&config.Replacement); err != nil {
		return nil, fmt.Errorf("failed to map [Replacement] section: %w", err)
	}

	// Clean string values read from INI.
	config.Algorithm.Encoding = cleanIniString(config.Algorithm.Encoding)
	config.Selection.Method = cleanIniString(config.Selection.Method)
	config.Crossover.Method = cleanIniString(config.Crossover.Method)
	config.Mutation.Method = cleanIniString(config.Mutation.Method)
	config.Replacement.Method = cleanIniString(config.Replacement.Method)
	for i, key := range config.Algorithm.Genes {
		config.Algorithm.Genes[i] = strings.TrimSpace(key)
	}

	// Defaults for values the file leaves unset.
	if config.Algorithm.MaxVariableLength == 0 {
		config.Algorithm.MaxVariableLength = DefaultMaxVariableLength
	}
	if config.Algorithm.Encoding == "" {
		config.Algorithm.Encoding = "real"
	}
	if config.Selection.Method == "" {
		config.Selection.Method = "best"
	}
	if config.Crossover.Method == "" {
		config.Crossover.Method = "one_point"
	}
	if config.Crossover.Probability == 0 {
		config.Crossover.Probability = 1.0
	}
	if config.Crossover.GroupSize == 0 {
		config.Crossover.GroupSize = DefaultGroupSize
	}
	if config.Mutation.Method == "" {
		config.Mutation.Method = "uniform_mutation"
	}
	if config.Mutation.Probability == 0 {
		config.Mutation.Probability = DefaultMutationProbability
	}
	if config.Mutation.MaxPercentChange == 0 {
		config.Mutation.MaxPercentChange = DefaultMaxPercentChange
	}
	if config.Mutation.MaxShrinkSize == 0 {
		config.Mutation.MaxShrinkSize = DefaultMaxStructuralSize
	}
	if config.Mutation.MaxGrowthSize == 0 {
		config.Mutation.MaxGrowthSize = DefaultMaxStructuralSize
	}
	if config.Mutation.MaxSwapSize == 0 {
		config.Mutation.MaxSwapSize = DefaultMaxStructuralSize
	}
	if config.Mutation.MaxReplaceSize == 0 {
		config.Mutation.MaxReplaceSize = DefaultMaxStructuralSize
	}
	if config.Mutation.MaxInsertSize == 0 {
		config.Mutation.MaxInsertSize = DefaultMaxStructuralSize
	}
	if config.Replacement.Method == "" {
		config.Replacement.Method = "generational"
	}

	// --- Validation ---

	if config.Algorithm.PopSize < 0 {
		return nil, fmt.Errorf("config error: %w", ErrNegativeSize)
	}
	if config.Algorithm.IntervalMin > config.Algorithm.IntervalMax {
		return nil, fmt.Errorf("config error: %w", ErrInvalidInterval)
	}
	if !config.Algorithm.VariableLength && len(config.Algorithm.Genes) == 0 {
		return nil, fmt.Errorf("config error: %w", ErrNoGenes)
	}
	if config.Algorithm.MaxVariableLength < 0 {
		return nil, fmt.Errorf("config error: max_variable_length cannot be negative")
	}
	if _, err := ParseEncoding(config.Algorithm.Encoding); err != nil {
		return nil, err
	}
	if _, err := ParseSelectionMethod(config.Selection.Method); err != nil {
		return nil, err
	}
	if _, err := ParseCrossoverMethod(config.Crossover.Method); err != nil {
		return nil, err
	}
	if _, err := ParseMutationMethod(config.Mutation.Method); err != nil {
		return nil, err
	}
	if _, err := ParseReplacementMethod(config.Replacement.Method); err != nil {
		return nil, err
	}
	if config.Crossover.Probability < 0 || config.Crossover.Probability > 1 {
		return nil, fmt.Errorf("config error: crossover probability must be between 0 and 1")
	}
	if config.Crossover.GroupSize < 1 {
		return nil, fmt.Errorf("config error: group_size must be positive")
	}
	if config.Mutation.Probability < 0 || config.Mutation.Probability > 1 {
		return nil, fmt.Errorf("config error: mutation probability must be between 0 and 1")
	}
	if config.Mutation.MaxShrinkSize < 1 || config.Mutation.MaxGrowthSize < 1 ||
		config.Mutation.MaxSwapSize < 1 || config.Mutation.MaxReplaceSize < 1 ||
		config.Mutation.MaxInsertSize < 1 {
		return nil, fmt.Errorf("config error: mutation segment sizes must be positive")
	}
	if config.Replacement.NewGenerationSize < 0 {
		return nil, fmt.Errorf("config error: new_generation_size cannot be negative")
	}
	if config.Replacement.GenerationGap < 0 {
		return nil, fmt.Errorf("config error: generation_gap cannot be negative")
	}

	return config, nil
}

// NewAlgorithmFromConfig builds the immutable Algorithm description from a
// loaded config and the user-supplied fitness function.
func NewAlgorithmFromConfig(config *Config, fitness FitnessFunc) (*Algorithm, error) {
	encoding, err := ParseEncoding(config.Algorithm.Encoding)
	if err != nil {
		return nil, err
	}
	interval := Interval{Min: config.Algorithm.IntervalMin, Max: config.Algorithm.IntervalMax}
	if config.Algorithm.VariableLength {
		return NewVariableLengthAlgorithm(config.Algorithm.MaxVariableLength, interval, encoding, fitness)
	}
	return NewAlgorithm(config.Algorithm.Genes, interval, encoding, fitness)
}

// The typed accessors below convert the validated string/number sections
// into the method and option values the operator calls expect, so a caller
// can feed a loaded config straight into the pipeline.

// SelectionMethod returns the configured selection method.
func (c *Config) SelectionMethod() SelectionMethod {
	method, _ := ParseSelectionMethod(c.Selection.Method)
	return method
}

// SelectionOptions returns the configured selection options.
func (c *Config) SelectionOptions() *SelectionOptions {
	return &SelectionOptions{ShuffleOrder: c.Selection.ShuffleOrder}
}

// CrossoverMethod returns the configured crossover method.
func (c *Config) CrossoverMethod() CrossoverMethod {
	method, _ := ParseCrossoverMethod(c.Crossover.Method)
	return method
}

// CrossoverOptions returns the configured crossover options.
func (c *Config) CrossoverOptions() *CrossoverOptions {
	return &CrossoverOptions{
		Probability:     c.Crossover.Probability,
		DifferentPoints: c.Crossover.DifferentPoints,
	}
}

// GroupingOptions returns the configured grouping options.
func (c *Config) GroupingOptions() *GroupingOptions {
	return &GroupingOptions{GroupSize: c.Crossover.GroupSize}
}

// MutationMethod returns the configured mutation method.
func (c *Config) MutationMethod() MutationMethod {
	method, _ := ParseMutationMethod(c.Mutation.Method)
	return method
}

// MutationOptions returns the configured mutation options.
func (c *Config) MutationOptions() *MutationOptions {
	return &MutationOptions{
		Probability:      c.Mutation.Probability,
		MaxPercentChange: c.Mutation.MaxPercentChange,
		MaxShrinkSize:    c.Mutation.MaxShrinkSize,
		MaxGrowthSize:    c.Mutation.MaxGrowthSize,
		MaxSwapSize:      c.Mutation.MaxSwapSize,
		MaxReplaceSize:   c.Mutation.MaxReplaceSize,
		MaxInsertSize:    c.Mutation.MaxInsertSize,
	}
}

// ReplacementMethod returns the configured replacement method.
func (c *Config) ReplacementMethod() ReplacementMethod {
	method, _ := ParseReplacementMethod(c.Replacement.Method)
	return method
}

// ReplacementOptions returns the configured replacement options.
func (c *Config) ReplacementOptions() *ReplacementOptions {
	return &ReplacementOptions{
		NewGenerationSize: c.Replacement.NewGenerationSize,
		GenerationGap:     c.Replacement.GenerationGap,
	}
}

// cleanIniString removes inline comments and trims whitespace from a string
// read from INI.
func cleanIniString(s string) string {
	if idx := strings.IndexAny(s, "#;"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
