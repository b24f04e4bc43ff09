// Package render assembles generated component units into source files.
// The boilerplate is fixed; all variability comes from the unit's
// bodies, member registrations and image refs, so identical input
// produces byte-identical files.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/loomgen/loom/internal/gen"
)

const header = "// Generated by loom. DO NOT EDIT."

const bodyIndent = "    "

// File renders one component unit as a single source file: class
// declaration, constructor with member wiring and image preloads, then
// the paint and resize bodies.
func File(u *gen.Unit) []byte {
	var b strings.Builder

	b.WriteString(header + "\n\n")

	b.WriteString(fmt.Sprintf("class %s : public Component {\n", u.Name))
	b.WriteString("public:\n")
	b.WriteString(bodyIndent + u.Name + "();\n\n")
	b.WriteString(bodyIndent + "void paint(Canvas& c, const Rect& bounds);\n")
	b.WriteString(bodyIndent + "void resize(const Rect& bounds);\n")

	if len(u.Members) > 0 || len(u.Parts) > 0 {
		b.WriteString("\nprivate:\n")
		for _, m := range u.Members {
			b.WriteString(fmt.Sprintf("%s%s %s;\n", bodyIndent, m.TypeHint, m.Name))
		}
		for _, p := range u.Parts {
			b.WriteString(fmt.Sprintf("%sBox %s;\n", bodyIndent, p))
		}
	}
	b.WriteString("};\n\n")

	b.WriteString(fmt.Sprintf("%s::%s() {\n", u.Name, u.Name))
	for _, ref := range u.Images {
		b.WriteString(fmt.Sprintf("%spreloadImage(%q);\n", bodyIndent, ref))
	}
	for _, m := range u.Members {
		for _, line := range m.Constructor {
			b.WriteString(bodyIndent + line + "\n")
		}
	}
	b.WriteString("}\n\n")

	writeMethod(&b, u.Name, "paint(Canvas& c, const Rect& bounds)", u.PaintBody)
	b.WriteString("\n")
	writeMethod(&b, u.Name, "resize(const Rect& bounds)", u.ResizeBody)

	return []byte(b.String())
}

func writeMethod(b *strings.Builder, typ, signature string, body []string) {
	b.WriteString(fmt.Sprintf("void %s::%s {\n", typ, signature))
	for _, line := range body {
		b.WriteString(bodyIndent + line + "\n")
	}
	b.WriteString("}\n")
}

// FileName derives the on-disk name for a unit from its type name.
func FileName(u *gen.Unit) string {
	return snake(u.Name) + ".gen.cpp"
}

// WriteUnits renders every unit into dir, one file each.
func WriteUnits(dir string, units []*gen.Unit) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	for _, u := range units {
		path := filepath.Join(dir, FileName(u))
		if err := os.WriteFile(path, File(u), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

// snake lowers an UpperCamel type name to snake_case.
func snake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
