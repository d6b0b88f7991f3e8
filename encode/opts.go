package encode

type EncodeOption func(*EncState)

// EncodeXMLHeader controls whether an XML declaration starts the output.
func EncodeXMLHeader(v bool) EncodeOption {
	return func(es *EncState) { es.header = v }
}

// EncodeColors colors the output for display. Colored output is not
// meant to be parsed.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
