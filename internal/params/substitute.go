package params

// Substitute rewrites every placeholder occurrence in body using the caller's
// context. Each occurrence resolves independently: a context value wins (and
// is stringified per type), otherwise the occurrence's own inline default is
// reused verbatim as the author typed it, otherwise the placeholder collapses
// to the empty string.
//
// Reusing the unparsed default text is deliberate: a color default written as
// ff0000 stays ff0000 in the markup even though the schema records #ff0000.
// No escaping or sanitization is applied; template authors are trusted
// operators and callers own sanitization of untrusted context values.
func Substitute(body string, ctx Context) string {
	return placeholderPattern.ReplaceAllStringFunc(body, func(occurrence string) string {
		match := placeholderPattern.FindStringSubmatch(occurrence)
		name := match[1]
		rawDefault := match[3]

		if value, ok := ctx[name]; ok {
			return Stringify(value)
		}
		if rawDefault != "" {
			return rawDefault
		}
		return ""
	})
}
