package pipeline

import "fmt"

// Estimator maps an encoded feature vector to a prediction.
type Estimator interface {
	Predict(x []float64) float64
}

func newEstimator(spec EstimatorSpec, width int) (Estimator, error) {
	switch spec.Kind {
	case EstimatorRandomForest:
		return newForest(spec.Trees, width)
	case EstimatorLinear:
		if len(spec.Coefficients) != width {
			return nil, fmt.Errorf("%w: linear model has %d coefficients for %d features",
				ErrInvalidArtifact, len(spec.Coefficients), width)
		}
		return linear{intercept: spec.Intercept, coef: spec.Coefficients}, nil
	default:
		return nil, fmt.Errorf("%w: unknown estimator kind %q", ErrInvalidArtifact, spec.Kind)
	}
}

type forest struct {
	trees []Tree
}

func newForest(trees []Tree, width int) (*forest, error) {
	if len(trees) == 0 {
		return nil, fmt.Errorf("%w: random forest has no trees", ErrInvalidArtifact)
	}
	for t, tree := range trees {
		if err := validateTree(tree, width); err != nil {
			return nil, fmt.Errorf("%w: tree %d: %v", ErrInvalidArtifact, t, err)
		}
	}
	return &forest{trees: trees}, nil
}

// validateTree requires children to come after their parent, which makes
// every traversal finite.
func validateTree(tree Tree, width int) error {
	n := len(tree.Nodes)
	if n == 0 {
		return fmt.Errorf("no nodes")
	}
	for i, node := range tree.Nodes {
		if node.isLeaf() {
			continue
		}
		if node.Feature < 0 || node.Feature >= width {
			return fmt.Errorf("node %d splits on feature %d outside [0,%d)", i, node.Feature, width)
		}
		if node.Left <= i || node.Left >= n || node.Right <= i || node.Right >= n {
			return fmt.Errorf("node %d has invalid children %d/%d", i, node.Left, node.Right)
		}
	}
	return nil
}

func (f *forest) Predict(x []float64) float64 {
	var sum float64
	for _, tree := range f.trees {
		sum += tree.predict(x)
	}
	return sum / float64(len(f.trees))
}

func (t Tree) predict(x []float64) float64 {
	i := 0
	for {
		node := t.Nodes[i]
		if node.isLeaf() {
			return node.Value
		}
		if x[node.Feature] <= node.Threshold {
			i = node.Left
		} else {
			i = node.Right
		}
	}
}

type linear struct {
	intercept float64
	coef      []float64
}

func (l linear) Predict(x []float64) float64 {
	y := l.intercept
	for i, c := range l.coef {
		y += c * x[i]
	}
	return y
}
