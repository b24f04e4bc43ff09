package normalize

// mapKeep converts each entry, dropping those the converter rejects.
// This is the single place where the "silently skip unknown or
// invisible" policy lives; every list conversion in this package (fills,
// strokes, effects, children) goes through it so the default-and-drop
// contract stays auditable in one spot. Order is preserved.
func mapKeep[R, O any](in []R, conv func(R) (O, bool)) []O {
	var out []O
	for _, r := range in {
		if o, ok := conv(r); ok {
			out = append(out, o)
		}
	}
	return out
}
