package gen

import "fmt"

// Emitter accumulates generated statements for one body.
//
// Scopes (opacity regions, per-path regions) open and close in balanced
// pairs. An unbalanced body is a generator bug, not a runtime
// condition, so Close panics on a tag mismatch and Finish panics on
// anything left open.
type Emitter struct {
	lines  []string
	indent int
	scopes []string
}

// Stmt appends one formatted statement at the current indentation.
func (e *Emitter) Stmt(format string, args ...any) {
	e.append(fmt.Sprintf(format, args...))
}

// Comment appends an advisory comment line.
func (e *Emitter) Comment(format string, args ...any) {
	e.append("// " + fmt.Sprintf(format, args...))
}

// Open emits stmt and enters a scope identified by tag.
func (e *Emitter) Open(tag string, format string, args ...any) {
	e.append(fmt.Sprintf(format, args...))
	e.scopes = append(e.scopes, tag)
	e.indent++
}

// Close emits stmt and leaves the innermost scope, which must carry tag.
func (e *Emitter) Close(tag string, format string, args ...any) {
	if len(e.scopes) == 0 {
		panic(fmt.Sprintf("gen: close %q with no open scope", tag))
	}
	top := e.scopes[len(e.scopes)-1]
	if top != tag {
		panic(fmt.Sprintf("gen: close %q but innermost scope is %q", tag, top))
	}
	e.scopes = e.scopes[:len(e.scopes)-1]
	e.indent--
	e.append(fmt.Sprintf(format, args...))
}

// Depth returns the number of currently open scopes.
func (e *Emitter) Depth() int {
	return len(e.scopes)
}

// Finish returns the accumulated lines. It panics if any scope is
// still open.
func (e *Emitter) Finish() []string {
	if len(e.scopes) != 0 {
		panic(fmt.Sprintf("gen: %d scope(s) left open: %v", len(e.scopes), e.scopes))
	}
	return e.lines
}

func (e *Emitter) append(line string) {
	prefix := ""
	for i := 0; i < e.indent; i++ {
		prefix += "    "
	}
	e.lines = append(e.lines, prefix+line)
}
