package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

const (
	ColumnNumeric = "numeric"
	ColumnOneHot  = "onehot"

	EstimatorRandomForest = "random_forest"
	EstimatorLinear       = "linear"
)

// Artifact is the serialized form of a trained prediction pipeline.
type Artifact struct {
	Name          string         `json:"name"`
	Version       string         `json:"version"`
	Target        string         `json:"target"`
	TrainedAt     string         `json:"trained_at,omitempty"`
	BinaryMapping map[string]int `json:"binary_mapping,omitempty"`
	Columns       []Column       `json:"columns"`
	Estimator     EstimatorSpec  `json:"estimator"`
}

type Column struct {
	Name       string   `json:"name"`
	Kind       string   `json:"kind"`
	Categories []string `json:"categories,omitempty"`
}

type EstimatorSpec struct {
	Kind         string    `json:"kind"`
	Trees        []Tree    `json:"trees,omitempty"`
	Intercept    float64   `json:"intercept,omitempty"`
	Coefficients []float64 `json:"coefficients,omitempty"`
}

// Tree uses the flat node layout of sklearn's tree_ arrays. A node whose
// Left is negative is a leaf.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

func (n Node) isLeaf() bool { return n.Left < 0 }

// Load reads and decodes the artifact stored at path.
func Load(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pipeline artifact %s: %w", path, err)
	}
	return Decode(data)
}

func Decode(data []byte) (*Artifact, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var a Artifact
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}
	return &a, nil
}

// FeatureNames lists the encoded feature vector slots in order.
func (a *Artifact) FeatureNames() []string {
	var names []string
	for _, c := range a.Columns {
		if c.Kind == ColumnOneHot {
			for _, cat := range c.Categories {
				names = append(names, c.Name+"="+cat)
			}
			continue
		}
		names = append(names, c.Name)
	}
	return names
}
