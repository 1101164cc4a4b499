package jsontree

// A Colorizer wraps printed scalars and keys in ANSI color codes.  A
// nil *Colorizer is valid and prints without any codes.
type Colorizer struct {
	KeyColorCode []byte
	// Color codes indexed by Kind for null, boolean, number and
	// string scalars.
	ScalarColorCodes [4][]byte
	ResetCode        []byte
}

func (c *Colorizer) PrintScalar(p Printer, kind Kind, b []byte) {
	if c != nil {
		p.PrintBytes(c.ScalarColorCodes[kind])
	}
	p.PrintBytes(b)
	if c != nil {
		p.PrintBytes(c.ResetCode)
	}
}

func (c *Colorizer) PrintKey(p Printer, b []byte) {
	if c != nil {
		p.PrintBytes(c.KeyColorCode)
	}
	p.PrintBytes(b)
	if c != nil {
		p.PrintBytes(c.ResetCode)
	}
}
