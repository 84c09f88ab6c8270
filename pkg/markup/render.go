package markup

import "strings"

// Target selects the output language for [Render]. The set is closed: the
// native document format keeps markup verbatim, the Graphviz target uses
// HTML-like label elements, and the TeX target uses LaTeX commands.
type Target int

const (
	// TargetNative preserves the text exactly as typed, tags included.
	TargetNative Target = iota
	// TargetDOT renders for Graphviz HTML-like labels.
	TargetDOT
	// TargetTeX renders for LaTeX (qtree) output.
	TargetTeX
)

// texCommands maps paired tags to their LaTeX opening command. Every command
// is closed with a single brace.
var texCommands = map[string]string{
	TagBold:      `\textbf{`,
	TagItalic:    `\textit{`,
	TagUnderline: `\underline{`,
	TagSuper:     `^{`,
	TagSub:       `_{`,
}

// mathTags are the tags that only work inside TeX math mode. Maximal runs of
// them are wrapped in a single $...$ span.
var mathTags = map[string]bool{
	TagSuper: true,
	TagSub:   true,
	TagNull:  true,
	TagBar:   true,
}

// Render transforms text for the given target.
//
// For [TargetNative] the text is returned unchanged. For the other targets,
// well-formed markup is translated into the target's own conventions and all
// characters that are syntactically significant there are escaped, so the
// output can be embedded without producing a malformed document. Text whose
// markup fails [Validate] is rendered as escaped plain text with the tags
// dropped and the content kept; Render never fails.
func Render(text string, target Target) string {
	switch target {
	case TargetDOT:
		return renderDOT(text)
	case TargetTeX:
		return renderTeX(text)
	default:
		return text
	}
}

func renderDOT(text string) string {
	toks := tokenize(text)
	var b strings.Builder
	if Validate(text) != nil {
		for _, t := range toks {
			switch t.typ {
			case tokenText:
				b.WriteString(escapeHTML(t.text))
			case tokenVoid:
				writeDOTGlyph(&b, t.tag)
			}
		}
		return b.String()
	}
	for _, t := range toks {
		switch t.typ {
		case tokenText:
			b.WriteString(escapeHTML(t.text))
		case tokenOpen:
			b.WriteString("<" + t.tag + ">")
		case tokenClose:
			b.WriteString("</" + t.tag + ">")
		case tokenVoid:
			writeDOTGlyph(&b, t.tag)
		}
	}
	return b.String()
}

func writeDOTGlyph(b *strings.Builder, tag string) {
	switch tag {
	case TagNull:
		b.WriteString("Ø")
	case TagBar:
		b.WriteString("<sup>′</sup>")
	}
}

func escapeHTML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

func renderTeX(text string) string {
	toks := tokenize(text)
	var b strings.Builder
	if Validate(text) != nil {
		for _, t := range toks {
			switch t.typ {
			case tokenText:
				b.WriteString(escapeTeX(t.text))
			case tokenVoid:
				// Math-mode glyphs still need their $ fence in the fallback.
				switch t.tag {
				case TagNull:
					b.WriteString(`${\O}$`)
				case TagBar:
					b.WriteString(`$^{\prime}$`)
				}
			}
		}
		return b.String()
	}

	// mathDepth counts currently open math-requiring tags. The $ fence opens
	// when the first one starts and closes when the last one ends, so nested
	// sup/sub share one math span.
	mathDepth := 0
	for _, t := range toks {
		switch t.typ {
		case tokenText:
			b.WriteString(escapeTeX(t.text))
		case tokenOpen:
			if mathTags[t.tag] {
				if mathDepth == 0 {
					b.WriteString("$")
				}
				mathDepth++
			}
			b.WriteString(texCommands[t.tag])
		case tokenClose:
			b.WriteString("}")
			if mathTags[t.tag] {
				mathDepth--
				if mathDepth == 0 {
					b.WriteString("$")
				}
			}
		case tokenVoid:
			if mathDepth == 0 {
				b.WriteString("$")
			}
			switch t.tag {
			case TagNull:
				b.WriteString(`{\O}`)
			case TagBar:
				b.WriteString(`^{\prime}`)
			}
			if mathDepth == 0 {
				b.WriteString("$")
			}
		}
	}
	return b.String()
}

// escapeTeX neutralizes every character LaTeX treats specially in text runs.
func escapeTeX(s string) string {
	r := strings.NewReplacer(
		`\`, `\textbackslash{}`,
		`{`, `\{`,
		`}`, `\}`,
		`$`, `\$`,
		`%`, `\%`,
		`&`, `\&`,
		`#`, `\#`,
		`_`, `\_`,
		`^`, `\textasciicircum{}`,
		`~`, `\textasciitilde{}`,
	)
	return r.Replace(s)
}
