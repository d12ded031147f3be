package eddsa

// TraceDecompress records the steps of every Decompress call until the
// returned function is called.
func TraceDecompress() (steps func() []string, stop func()) {
	var got []string
	traceStep = func(step string) { got = append(got, step) }
	return func() []string { return got }, func() { traceStep = nil }
}
