package genetic

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"
)

// PopulationSaveData holds the serializable parts of a Population. The
// Algorithm is not saved — its fitness and generator fields are function
// values — so LoadCheckpoint re-links the caller-supplied Algorithm instead.
// The random source is reseeded rather than persisted.
type PopulationSaveData struct {
	Individuals []*Individual
	Generation  int
}

// SaveCheckpoint writes the population's current state to a gzip-compressed
// gob file at filePath.
func (p *Population) SaveCheckpoint(filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)

	saveData := PopulationSaveData{
		Individuals: p.Individuals,
		Generation:  p.Generation,
	}
	if err := gob.NewEncoder(gzWriter).Encode(saveData); err != nil {
		gzWriter.Close()
		return fmt.Errorf("failed to encode population data: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("failed to finish checkpoint '%s': %w", filePath, err)
	}
	return nil
}

// LoadCheckpoint restores a population saved by SaveCheckpoint. alg must be
// the algorithm configuration the population was created with; it is
// re-linked here because function values cannot be serialized. Stored
// fitness values are reused as-is, not recomputed.
func LoadCheckpoint(filePath string, alg *Algorithm) (*Population, error) {
	if alg == nil {
		return nil, fmt.Errorf("an algorithm configuration is required to restore a checkpoint")
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open checkpoint file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for checkpoint: %w", err)
	}
	defer gzReader.Close()

	saveData := PopulationSaveData{}
	if err := gob.NewDecoder(gzReader).Decode(&saveData); err != nil {
		return nil, fmt.Errorf("failed to decode population data from checkpoint: %w", err)
	}

	p := NewPopulation(alg)
	p.Individuals = saveData.Individuals
	p.Generation = saveData.Generation
	return p, nil
}
