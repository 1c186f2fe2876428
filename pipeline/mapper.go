package pipeline

// Row is a single-row feature table keyed by column name.
type Row map[string]any

// DefaultBinaryMapping is the yes/no vocabulary the pipelines are trained with.
var DefaultBinaryMapping = map[string]int{
	"yes":          1,
	"no":           0,
	"Required":     1,
	"Not Required": 0,
}

// BinaryMapper substitutes categorical yes/no style values with 0/1.
// Values outside the vocabulary pass through unchanged.
type BinaryMapper struct {
	mapping map[string]int
}

func NewBinaryMapper(mapping map[string]int) BinaryMapper {
	if len(mapping) == 0 {
		mapping = DefaultBinaryMapping
	}
	m := make(map[string]int, len(mapping))
	for k, v := range mapping {
		m[k] = v
	}
	return BinaryMapper{mapping: m}
}

// Apply returns a mapped copy of row. It is applied to every column.
func (b BinaryMapper) Apply(row Row) Row {
	out := make(Row, len(row))
	for col, v := range row {
		out[col] = b.mapValue(v)
	}
	return out
}

func (b BinaryMapper) mapValue(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if mapped, found := b.mapping[s]; found {
		return mapped
	}
	return v
}
