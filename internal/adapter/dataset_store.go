package adapter

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/applyeval/internal/model"
)

//go:embed dataset/builtin.yaml
var builtinDataset []byte

const defaultLanguage = "python"

// ErrInvalidExample is returned when a dataset row breaks a required field.
var ErrInvalidExample = errors.New("invalid dataset example")

// DatasetStore loads evaluation examples.
type DatasetStore interface {
	// Load reads examples from path, or the built-in dataset when path is empty.
	Load(path m.Path) ([]m.Example, error)
}

type datasetFile struct {
	Examples []m.Example `yaml:"examples"`
}

// LocalDatasetStore reads datasets from YAML files.
type LocalDatasetStore struct {
	fs SourceFSAdapter
}

// NewLocalDatasetStore constructs a DatasetStore reading files through fs.
func NewLocalDatasetStore(fs SourceFSAdapter) *LocalDatasetStore {
	return &LocalDatasetStore{fs: fs}
}

// Load implements DatasetStore.
func (s *LocalDatasetStore) Load(path m.Path) ([]m.Example, error) {
	data := builtinDataset

	if path != "" {
		content, err := s.fs.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read dataset %s: %w", path, err)
		}

		data = content
	}

	return parseDataset(data)
}

// BuiltinDataset returns the embedded dataset.
func BuiltinDataset() ([]m.Example, error) {
	return parseDataset(builtinDataset)
}

func parseDataset(data []byte) ([]m.Example, error) {
	var file datasetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	seen := make(map[int]struct{}, len(file.Examples))

	for i := range file.Examples {
		ex := &file.Examples[i]
		if ex.Language == "" {
			ex.Language = defaultLanguage
		}

		if err := validateExample(*ex); err != nil {
			return nil, err
		}

		if _, dup := seen[ex.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidExample, ex.ID)
		}

		seen[ex.ID] = struct{}{}
	}

	return file.Examples, nil
}

func validateExample(ex m.Example) error {
	switch {
	case ex.FunctionName == "":
		return fmt.Errorf("%w: example %d has no expected_function_name", ErrInvalidExample, ex.ID)
	case !ex.Difficulty.Valid():
		return fmt.Errorf("%w: example %d has unknown difficulty %q", ErrInvalidExample, ex.ID, ex.Difficulty)
	case ex.Language != defaultLanguage:
		return fmt.Errorf("%w: example %d uses unsupported language %q", ErrInvalidExample, ex.ID, ex.Language)
	}

	return nil
}
