package render

import "errors"

type call struct {
	kind    string
	text    string
	x, y    int
	advance bool
}

// recorder is a Cursor that remembers every primitive it was asked for.
type recorder struct {
	calls []call
}

func (r *recorder) PrintAt(text string, x, y int) {
	r.calls = append(r.calls, call{kind: "printAt", text: text, x: x, y: y})
}

func (r *recorder) SetCursorPosition(x, y int, advanceLine bool) {
	r.calls = append(r.calls, call{kind: "setCursor", x: x, y: y, advance: advanceLine})
}

func (r *recorder) Print(text string) {
	r.calls = append(r.calls, call{kind: "print", text: text})
}

func (r *recorder) ClearScreen() {
	r.calls = append(r.calls, call{kind: "clear"})
}

func (r *recorder) Err() error { return nil }

func (r *recorder) printAts() []call {
	var out []call
	for _, c := range r.calls {
		if c.kind == "printAt" {
			out = append(out, c)
		}
	}
	return out
}

// at returns the text painted at (x, y), or "" when nothing was.
func (r *recorder) at(x, y int) string {
	for _, c := range r.calls {
		if c.kind == "printAt" && c.x == x && c.y == y {
			return c.text
		}
	}
	return ""
}

type failingWriter struct {
	writes int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	f.writes++
	return 0, errors.New("closed")
}
