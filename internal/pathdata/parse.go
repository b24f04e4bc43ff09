package pathdata

import (
	"strconv"

	"github.com/loomgen/loom/internal/geom"
)

// arity is the fixed operand count per command letter (uppercase form).
var arity = map[byte]int{
	'M': 2,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'Q': 4,
	'Z': 0,
}

// Parse converts a path data string into absolute commands.
//
// A running cursor resolves relative variants: lowercase commands add
// their operands to the cursor before emitting the absolute command.
// H/V update only one axis. An operand run exceeding the command arity
// splits into repeated commands of the same type. A run shorter than the
// arity drops the trailing partial command. Parse never fails; the worst
// outcome for malformed input is an empty command list.
func Parse(data string) []Command {
	var cmds []Command
	var cursor geom.Vec2

	i := 0
	for i < len(data) {
		c := data[i]
		if !isCommandLetter(c) {
			// Unknown letters, whitespace and separators are skipped.
			i++
			continue
		}
		i++

		operands, n := scanOperands(data[i:])
		i += n

		upper := c
		relative := false
		if 'a' <= upper && upper <= 'z' {
			upper -= 'a' - 'A'
			relative = true
		}

		want := arity[upper]
		if upper == 'Z' {
			cmds = append(cmds, Close{})
			continue
		}

		// Implicit repetition: consume the operand run in arity-sized
		// groups, emitting one command per group.
		for len(operands) >= want {
			group := operands[:want]
			operands = operands[want:]
			if cmd, ok := apply(upper, relative, group, &cursor); ok {
				cmds = append(cmds, cmd)
			}
		}
	}
	return cmds
}

// apply resolves one operand group against the cursor and returns the
// absolute command. The cursor is advanced to the command end point.
func apply(cmd byte, relative bool, ops []float32, cursor *geom.Vec2) (Command, bool) {
	switch cmd {
	case 'M':
		p := geom.Vec2{X: ops[0], Y: ops[1]}
		if relative {
			p = p.Add(*cursor)
		}
		*cursor = p
		return MoveTo{P: p}, true

	case 'L':
		p := geom.Vec2{X: ops[0], Y: ops[1]}
		if relative {
			p = p.Add(*cursor)
		}
		*cursor = p
		return LineTo{P: p}, true

	case 'H':
		x := ops[0]
		if relative {
			x += cursor.X
		}
		cursor.X = x
		return LineTo{P: *cursor}, true

	case 'V':
		y := ops[0]
		if relative {
			y += cursor.Y
		}
		cursor.Y = y
		return LineTo{P: *cursor}, true

	case 'C':
		c1 := geom.Vec2{X: ops[0], Y: ops[1]}
		c2 := geom.Vec2{X: ops[2], Y: ops[3]}
		p := geom.Vec2{X: ops[4], Y: ops[5]}
		if relative {
			c1 = c1.Add(*cursor)
			c2 = c2.Add(*cursor)
			p = p.Add(*cursor)
		}
		*cursor = p
		return CubicTo{C1: c1, C2: c2, P: p}, true

	case 'Q':
		c := geom.Vec2{X: ops[0], Y: ops[1]}
		p := geom.Vec2{X: ops[2], Y: ops[3]}
		if relative {
			c = c.Add(*cursor)
			p = p.Add(*cursor)
		}
		*cursor = p
		return QuadTo{C: c, P: p}, true
	}
	return nil, false
}

// isCommandLetter reports whether c starts a recognized path command.
func isCommandLetter(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'Q', 'q', 'Z', 'z':
		return true
	}
	return false
}

// scanOperands reads the numeric run following a command letter.
// Returns the parsed values and the number of bytes consumed.
func scanOperands(s string) ([]float32, int) {
	var out []float32
	i := 0
	for i < len(s) {
		// Skip separators.
		for i < len(s) && isSeparator(s[i]) {
			i++
		}
		if i >= len(s) || !isNumberStart(s[i]) {
			break
		}
		j := i
		if s[j] == '+' || s[j] == '-' {
			j++
		}
		for j < len(s) && (isDigit(s[j]) || s[j] == '.') {
			j++
		}
		// Exponent part: e or E, optional sign, digits.
		if j < len(s) && (s[j] == 'e' || s[j] == 'E') {
			k := j + 1
			if k < len(s) && (s[k] == '+' || s[k] == '-') {
				k++
			}
			if k < len(s) && isDigit(s[k]) {
				for k < len(s) && isDigit(s[k]) {
					k++
				}
				j = k
			}
		}
		v, err := strconv.ParseFloat(s[i:j], 32)
		if err != nil {
			// Degenerate token like "." or "-"; skip it.
			i = j
			continue
		}
		out = append(out, float32(v))
		i = j
	}
	return out, i
}

func isSeparator(c byte) bool {
	return c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isNumberStart(c byte) bool {
	return isDigit(c) || c == '.' || c == '+' || c == '-'
}
