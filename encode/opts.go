package encode

type EncodeOption func(*EncState)

// EncodeIndent sets the number of spaces per nesting level. The default
// is 4.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = max(n, 0) }
}

// EncodeShortLimit sets the total length of string elements above which
// an all-scalar array is no longer written on one line. The default is
// 80. A negative limit disables one line arrays.
func EncodeShortLimit(n int) EncodeOption {
	return func(es *EncState) { es.shortLimit = n }
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
