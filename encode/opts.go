package encode

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 2

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level.  It must be positive.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// MaxDepth makes encoding fail once sequences and mappings nest deeper
// than n.  Zero means no limit.
func MaxDepth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
