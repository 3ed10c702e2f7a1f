package console

// Sink is a named file destination for one Output call. It receives either
// literal caller-supplied lines or a colorless mirror of the Console's own
// rendered output.
type Sink struct {
	path   string
	lines  []string
	mirror bool
}

// MirrorSink returns a sink that mirrors the Console's rendered output,
// without color escapes, to path.
func MirrorSink(path string) Sink {
	return Sink{path: path, mirror: true}
}

// TextSink returns a sink that writes the given lines to path, bypassing
// the Console's buffer entirely.
func TextSink(path string, lines []string) Sink {
	return Sink{path: path, lines: append([]string(nil), lines...)}
}

// Path returns the sink's destination path.
func (s Sink) Path() string {
	return s.path
}
