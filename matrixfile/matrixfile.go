package matrixfile

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tspmtz/matrix"
)

// MaxFileSize bounds the size of an instance file Load accepts (4MB).
const MaxFileSize = 4 << 20

var (
	// ErrNoInstances is returned when a document holds no instance.
	ErrNoInstances = errors.New("matrixfile: no instances")

	// ErrFileTooLarge is returned for files above MaxFileSize.
	ErrFileTooLarge = errors.New("matrixfile: file too large")

	// ErrNotFound is returned by Find for an unknown instance name.
	ErrNotFound = errors.New("matrixfile: instance not found")

	// ErrDuplicateName is returned when two instances share a name.
	ErrDuplicateName = errors.New("matrixfile: duplicate instance name")

	// ErrSyntax wraps YAML decoding failures.
	ErrSyntax = errors.New("matrixfile: malformed document")
)

//go:embed samples.yaml
var samplesYAML []byte

// Instance is one named distance matrix.
type Instance struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Optimum     *int64    `yaml:"optimum,omitempty"`
	Distances   [][]int64 `yaml:"distances,flow"`
}

// Distance validates the rows and returns the immutable matrix.
func (in Instance) Distance() (*matrix.Distance, error) {
	d, err := matrix.NewDistance(in.Distances)
	if err != nil {
		return nil, fmt.Errorf("matrixfile: instance %q: %w", in.Name, err)
	}

	return d, nil
}

type document struct {
	Instances []Instance `yaml:"instances"`
}

// Parse decodes a bare matrix or an instance set. A bare matrix becomes a
// single instance named after defaultName. Matrices are not validated here;
// call Instance.Distance.
func Parse(data []byte, defaultName string) ([]Instance, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if len(root.Content) == 0 {
		return nil, ErrNoInstances
	}

	var instances []Instance
	switch top := root.Content[0]; top.Kind {
	case yaml.SequenceNode:
		var rows [][]int64
		if err := top.Decode(&rows); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		instances = []Instance{{Name: defaultName, Distances: rows}}
	case yaml.MappingNode:
		var doc document
		if err := top.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		instances = doc.Instances
	default:
		return nil, fmt.Errorf("%w: expected a matrix or an instance set", ErrSyntax)
	}

	if len(instances) == 0 {
		return nil, ErrNoInstances
	}
	seen := make(map[string]struct{}, len(instances))
	for i := range instances {
		if instances[i].Name == "" {
			instances[i].Name = fmt.Sprintf("%s#%d", defaultName, i+1)
		}
		if _, dup := seen[instances[i].Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, instances[i].Name)
		}
		seen[instances[i].Name] = struct{}{}
	}

	return instances, nil
}

// Load reads and parses the file at path. "-" reads standard input.
func Load(path string) ([]Instance, error) {
	var (
		r    io.Reader
		name = path
	)
	if path == "-" {
		r, name = os.Stdin, "stdin"
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("matrixfile: %w", err)
		}
		defer f.Close()
		r = f
	}

	return Read(r, name)
}

// Read parses at most MaxFileSize bytes from r.
func Read(r io.Reader, name string) ([]Instance, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("matrixfile: read %s: %w", name, err)
	}
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrFileTooLarge, name, MaxFileSize)
	}

	return Parse(data, name)
}

// Write encodes instances as an instance set.
func Write(w io.Writer, instances []Instance) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Instances: instances}); err != nil {
		return fmt.Errorf("matrixfile: encode: %w", err)
	}

	return enc.Close()
}

// Samples returns a fresh copy of the built-in instances.
func Samples() []Instance {
	instances, err := Parse(samplesYAML, "samples")
	if err != nil {
		panic(fmt.Sprintf("matrixfile: embedded samples: %v", err))
	}

	return instances
}

// Find returns the instance called name.
func Find(instances []Instance, name string) (Instance, error) {
	for _, in := range instances {
		if in.Name == name {
			return in, nil
		}
	}

	return Instance{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Sample returns the built-in instance called name.
func Sample(name string) (Instance, error) {
	return Find(Samples(), name)
}
