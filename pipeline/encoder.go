package pipeline

import (
	"encoding/json"
	"fmt"
)

// Encoder turns a mapped row into the dense feature vector the estimator
// was fitted on.
type Encoder struct {
	columns []Column
	index   []map[string]int
	width   int
}

func NewEncoder(columns []Column) (*Encoder, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrInvalidArtifact)
	}

	e := &Encoder{
		columns: columns,
		index:   make([]map[string]int, len(columns)),
	}
	seen := make(map[string]struct{}, len(columns))
	for i, c := range columns {
		if c.Name == "" {
			return nil, fmt.Errorf("%w: column %d has no name", ErrInvalidArtifact, i)
		}
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrInvalidArtifact, c.Name)
		}
		seen[c.Name] = struct{}{}

		switch c.Kind {
		case ColumnNumeric:
			e.width++
		case ColumnOneHot:
			if len(c.Categories) == 0 {
				return nil, fmt.Errorf("%w: column %q has no categories", ErrInvalidArtifact, c.Name)
			}
			idx := make(map[string]int, len(c.Categories))
			for j, cat := range c.Categories {
				if _, dup := idx[cat]; dup {
					return nil, fmt.Errorf("%w: column %q repeats category %q", ErrInvalidArtifact, c.Name, cat)
				}
				idx[cat] = j
			}
			e.index[i] = idx
			e.width += len(c.Categories)
		default:
			return nil, fmt.Errorf("%w: column %q has unknown kind %q", ErrInvalidArtifact, c.Name, c.Kind)
		}
	}
	return e, nil
}

// Width is the length of the encoded feature vector.
func (e *Encoder) Width() int { return e.width }

func (e *Encoder) Transform(row Row) ([]float64, error) {
	x := make([]float64, e.width)
	pos := 0
	for i, c := range e.columns {
		v, ok := row[c.Name]
		if !ok || v == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c.Name)
		}

		if c.Kind == ColumnOneHot {
			cat := fmt.Sprint(v)
			j, found := e.index[i][cat]
			if !found {
				return nil, fmt.Errorf("%w: %s=%q", ErrUnknownCategory, c.Name, cat)
			}
			x[pos+j] = 1
			pos += len(c.Categories)
			continue
		}

		f, err := toFloat(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Name, err)
		}
		x[pos] = f
		pos++
	}
	return x, nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, n.String())
		}
		return f, nil
	case string:
		// Strings that survive the binary mapper are outside its vocabulary.
		return 0, fmt.Errorf("%w: %q: %w", ErrNotNumeric, n, ErrUnknownCategory)
	default:
		return 0, fmt.Errorf("%w: %T", ErrNotNumeric, v)
	}
}
