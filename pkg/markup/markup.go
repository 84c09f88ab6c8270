// Package markup parses and renders the small inline tag vocabulary that may
// be embedded in node labels and values.
//
// The vocabulary is fixed: the paired tags b, i, u, sup and sub may nest
// arbitrarily but must be well-formed (a tag closes before its ancestor's
// sibling tags open), and the void tags null and bar are self-closing and
// render as fixed glyphs (Ø and ′).
//
// Validation is advisory: text is allowed to hold partial or invalid markup
// at any time (it is the normal mid-typing state), and rendering degrades
// gracefully instead of failing. [Validate] reports the first problem with
// its byte position so an editing surface can point at it; [Render] always
// produces output that is syntactically safe for the requested target.
package markup

import (
	"fmt"
	"strings"
)

// Tag names in the inline vocabulary.
const (
	TagBold      = "b"
	TagItalic    = "i"
	TagUnderline = "u"
	TagSuper     = "sup"
	TagSub       = "sub"
	TagNull      = "null"
	TagBar       = "bar"
)

var (
	pairedTags = map[string]bool{
		TagBold:      true,
		TagItalic:    true,
		TagUnderline: true,
		TagSuper:     true,
		TagSub:       true,
	}
	voidTags = map[string]bool{
		TagNull: true,
		TagBar:  true,
	}
)

// ErrorKind classifies markup validation failures.
type ErrorKind int

const (
	// UnknownTag reports a tag whose name is not part of the vocabulary,
	// or a tag carrying attributes (the vocabulary has none).
	UnknownTag ErrorKind = iota
	// UnclosedTag reports a paired tag that is still open at end of text.
	UnclosedTag
	// MismatchedClose reports a closing tag with no matching open tag.
	MismatchedClose
)

// String returns a short name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case UnknownTag:
		return "unknown tag"
	case UnclosedTag:
		return "unclosed tag"
	case MismatchedClose:
		return "mismatched closing tag"
	}
	return "invalid markup"
}

// Error describes the first markup problem found in a text.
// Pos is the byte offset of the offending tag's opening angle bracket.
type Error struct {
	Kind ErrorKind
	Tag  string
	Pos  int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s <%s> at offset %d", e.Kind, e.Tag, e.Pos)
}

// tokenType distinguishes the pieces the tokenizer produces.
type tokenType int

const (
	tokenText    tokenType = iota // literal text run
	tokenOpen                     // <b>, <i>, ...
	tokenClose                    // </b>, </i>, ...
	tokenVoid                     // <null/>, <bar/>
	tokenUnknown                  // tag-shaped but not in the vocabulary
)

// token is one lexical piece of a marked-up text.
type token struct {
	typ  tokenType
	tag  string // tag name for tag tokens
	text string // literal content for text tokens, raw source for unknown tags
	pos  int    // byte offset of the token start
}

// tokenize splits text into literal runs and tag tokens. It is deliberately
// lenient: anything shaped like a tag becomes a tag token even when the name
// is unknown, while a stray '<' that does not form a tag stays literal text.
// Tokenization never fails.
func tokenize(text string) []token {
	var toks []token
	var lit strings.Builder
	litStart := 0

	flush := func() {
		if lit.Len() > 0 {
			toks = append(toks, token{typ: tokenText, text: lit.String(), pos: litStart})
			lit.Reset()
		}
	}

	i := 0
	for i < len(text) {
		c := text[i]
		if c != '<' {
			if lit.Len() == 0 {
				litStart = i
			}
			lit.WriteByte(c)
			i++
			continue
		}
		end := strings.IndexByte(text[i:], '>')
		if end < 0 {
			// No closing bracket on this line of thought: literal.
			if lit.Len() == 0 {
				litStart = i
			}
			lit.WriteByte(c)
			i++
			continue
		}
		inner := text[i+1 : i+end]
		tok, ok := classifyTag(inner, i)
		if !ok {
			if lit.Len() == 0 {
				litStart = i
			}
			lit.WriteByte(c)
			i++
			continue
		}
		flush()
		toks = append(toks, tok)
		i += end + 1
	}
	flush()
	return toks
}

// classifyTag interprets the text between angle brackets. It returns false
// when the content is not tag-shaped at all (empty, nested brackets), in
// which case the caller treats the '<' as literal text.
func classifyTag(inner string, pos int) (token, bool) {
	if inner == "" || strings.ContainsAny(inner, "<>") {
		return token{}, false
	}
	raw := inner
	closing := strings.HasPrefix(inner, "/")
	if closing {
		inner = inner[1:]
	}
	selfClosed := strings.HasSuffix(inner, "/")
	if selfClosed {
		inner = inner[:len(inner)-1]
	}
	name := strings.ToLower(inner)
	if !isName(name) || (closing && selfClosed) {
		return token{typ: tokenUnknown, tag: name, text: "<" + raw + ">", pos: pos}, true
	}
	switch {
	case voidTags[name]:
		if closing {
			// </null> has no meaning; there is nothing to close.
			return token{typ: tokenClose, tag: name, pos: pos}, true
		}
		return token{typ: tokenVoid, tag: name, pos: pos}, true
	case pairedTags[name]:
		if selfClosed {
			return token{typ: tokenUnknown, tag: name, text: "<" + raw + ">", pos: pos}, true
		}
		if closing {
			return token{typ: tokenClose, tag: name, pos: pos}, true
		}
		return token{typ: tokenOpen, tag: name, pos: pos}, true
	default:
		return token{typ: tokenUnknown, tag: name, text: "<" + raw + ">", pos: pos}, true
	}
}

// isName reports whether s is a plausible tag name: non-empty, letters only.
// Anything else (attributes, digits, punctuation) is not part of the vocabulary.
func isName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// Validate checks text for well-formed markup and returns nil when it is
// clean. The first problem found is returned as an *Error carrying the kind,
// tag name and byte offset. Validation is advisory: callers may render text
// that fails validation, and [Render] will degrade to escaped plain text.
func Validate(text string) error {
	type open struct {
		tag string
		pos int
	}
	var stack []open
	for _, t := range tokenize(text) {
		switch t.typ {
		case tokenUnknown:
			return &Error{Kind: UnknownTag, Tag: t.tag, Pos: t.pos}
		case tokenOpen:
			stack = append(stack, open{t.tag, t.pos})
		case tokenClose:
			if len(stack) == 0 || stack[len(stack)-1].tag != t.tag {
				return &Error{Kind: MismatchedClose, Tag: t.tag, Pos: t.pos}
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return &Error{Kind: UnclosedTag, Tag: top.tag, Pos: top.pos}
	}
	return nil
}

// Valid reports whether text passes [Validate].
func Valid(text string) bool { return Validate(text) == nil }

// PlainText strips all markup from text, rendering the void tags as the
// words "Null" and "Bar" so that distinct glyph-only labels stay
// distinguishable. It is used to derive graph node identifiers and plain
// display text; unknown tags are dropped entirely.
func PlainText(text string) string {
	var b strings.Builder
	for _, t := range tokenize(text) {
		switch t.typ {
		case tokenText:
			b.WriteString(t.text)
		case tokenVoid:
			switch t.tag {
			case TagNull:
				b.WriteString("Null")
			case TagBar:
				b.WriteString("Bar")
			}
		}
	}
	return b.String()
}
