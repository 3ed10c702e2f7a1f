// Package console implements the diagnostics engine: producers append
// structured log entries to a Console, and at the end of a unit of work a
// single Output call renders the buffer with severity-based coloring,
// translating entry text into the active language, and mirrors the
// colorless transcript into log file sinks.
package console

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// generatorName appears in the header block of every written log file.
const generatorName = "conslog"

// headerTimeLayout is the ISO-like local timestamp in the log file header.
const headerTimeLayout = "2006-01-02 15:04:05 -07:00"

// msgLogLimitExceeded titles the synthetic note injected when a render
// exceeds the configured limit.
const msgLogLimitExceeded = "LogLimitExceeded"

// FileWriter persists rendered text to disk. It is the only file operation
// the Console depends on; richer file access belongs to the collaborator
// behind this interface.
type FileWriter interface {
	WriteFile(path, content string) error
}

// Console aggregates log entries for one unit of work. It is exclusively
// owned by its creator, mutated only through its own operations, and not
// safe for concurrent use.
type Console struct {
	lang  string
	logs  []Log
	limit Limit
	out   io.Writer
	files FileWriter
	color bool

	// IgnoreLogs discards all future appends when set. Entries already
	// buffered are unaffected, as are Clear, Pop and Output.
	IgnoreLogs bool
}

// NewConsole creates a Console rendering in the given language. Terminal
// lines go to out; sink transcripts are persisted through files. Terminal
// coloring starts enabled.
func NewConsole(out io.Writer, files FileWriter, lang string, limit Limit) *Console {
	return &Console{
		lang:  lang,
		limit: limit,
		out:   out,
		files: files,
		color: true,
	}
}

// Lang returns the active language code.
func (c *Console) Lang() string {
	return c.lang
}

// Len returns the number of buffered entries.
func (c *Console) Len() int {
	return len(c.logs)
}

// SetColorOutput toggles ANSI coloring of the terminal sequence. The
// colorless sink mirror never carries escapes either way.
func (c *Console) SetColorOutput(enabled bool) {
	c.color = enabled
}

// SetLimit replaces the render limit policy. Entries buffered beyond a
// previous limit become visible to later renders.
func (c *Console) SetLimit(limit Limit) {
	c.limit = limit
}

// Append adds the entry to the end of the buffer unless IgnoreLogs is set.
func (c *Console) Append(log Log) {
	if !c.IgnoreLogs {
		c.logs = append(c.logs, log)
	}
}

// Clear drops all buffered entries. Idempotent.
func (c *Console) Clear() {
	c.logs = nil
}

// Pop drops the last buffered entry. A no-op on an empty buffer.
func (c *Console) Pop() {
	if len(c.logs) > 0 {
		c.logs = c.logs[:len(c.logs)-1]
	}
}

// Output renders the buffer once, printing to the terminal writer as a
// side effect, and writes the colorless transcript, prefixed by the header
// block, to every sink. Failures degrade to terminal notices; Output has
// no failure return path.
func (c *Console) Output(sinks []Sink) {
	lines := c.render()

	header := strings.Join([]string{
		"--- Log File ---",
		"",
		" * created at " + time.Now().Format(headerTimeLayout),
		" * generated by " + generatorName,
	}, "\n")

	for _, sink := range sinks {
		content := sink.lines
		if sink.mirror {
			content = lines
		}
		if err := c.files.WriteFile(sink.path, header+"\n\n"+strings.Join(content, "\n")); err != nil {
			// One failing sink must not stop the remaining sinks.
			c.printNotice("log file writing failure")
		}
	}
}

// render scans the whole buffer in append order, printing to the terminal
// and collecting the parallel colorless line sequence. Exceeding the limit
// emits one synthetic truncation note and stops the scan; the skipped
// entries stay in the buffer.
func (c *Console) render() []string {
	lines := make([]string, 0, len(c.logs)*2)

	count := 0
	for _, log := range c.logs {
		if c.limit.limited && count+1 > c.limit.max {
			note := NewLog(KindNote, Text{
				Key:  msgLogLimitExceeded,
				Data: map[string]any{"Limit": c.limit.String()},
			})
			c.printLog(note, &lines)
			break
		}

		c.printLog(log, &lines)
		count++
	}

	return lines
}

// printLog renders one entry: the `[kind] title` line, then each
// description verbatim, then one blank separator line. A title or
// description that does not resolve for the active language prints a fixed
// notice to the terminal only and abandons the rest of the entry.
func (c *Console) printLog(log Log, lines *[]string) {
	title, err := log.title.Translate(c.lang)
	if err != nil {
		c.printNotice("unknown language")
		c.separator(lines)
		return
	}

	fmt.Fprintln(c.out, formatTitle(log.kind, title, c.color))
	*lines = append(*lines, formatTitle(log.kind, title, false))

	for _, desc := range log.descs {
		text, err := desc.Translate(c.lang)
		if err != nil {
			c.printNotice("unknown language")
			c.separator(lines)
			return
		}

		fmt.Fprintln(c.out, text)
		*lines = append(*lines, text)
	}

	c.separator(lines)
}

// separator ends an entry block in both sequences.
func (c *Console) separator(lines *[]string) {
	fmt.Fprintln(c.out)
	*lines = append(*lines, "")
}

// printNotice prints a fixed Error-formatted line to the terminal only.
func (c *Console) printNotice(text string) {
	fmt.Fprintln(c.out, formatTitle(KindError, text, c.color))
}

// formatTitle builds `[kind] title`. When colored, the bracketed label is
// wrapped in the kind's color escape; the colorless form carries no
// escapes at all.
func formatTitle(kind Kind, title string, colored bool) string {
	if colored {
		return fmt.Sprintf("\x1b[%dm[%s]\x1b[m %s", kind.colorNum(), kind.name(), title)
	}
	return fmt.Sprintf("[%s] %s", kind.name(), title)
}
