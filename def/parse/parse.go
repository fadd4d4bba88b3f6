package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dekarrin/sophtrie/def"
	"github.com/dekarrin/sophtrie/keysymbol"
	"golang.org/x/text/unicode/norm"
)

// ParseError reports a failure to parse a sopheme sequence, along with a
// human-readable dump of where the cursor was when it gave up.
type ParseError struct {
	Message    string
	CursorInfo string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("\n\n%s\n\n%s\n\n", e.Message, e.CursorInfo)
}

type tokenCursor struct {
	tokens []Token
	index  int
}

func newTokenCursor(tokens []Token) tokenCursor {
	return tokenCursor{tokens: tokens}
}

func (c tokenCursor) token() Token {
	return c.at(c.index)
}

func (c tokenCursor) at(index int) Token {
	if index < 0 || index >= len(c.tokens) {
		return Token{Class: Whitespace, Value: ""}
	}
	return c.tokens[index]
}

func (c tokenCursor) movedTo(index int) tokenCursor {
	c.index = index
	return c
}

func (c tokenCursor) movedBy(delta int) tokenCursor {
	next := c.index + delta
	if next < 0 {
		next = 0
	}
	return c.movedTo(next)
}

func (c tokenCursor) next() tokenCursor {
	return c.movedBy(1)
}

func (c tokenCursor) tokenIsDot() bool {
	t := c.token()
	return t.Class == Symbol && t.Value == "."
}

func (c tokenCursor) tokenIs(class TokenClass, value string) bool {
	t := c.token()
	return t.Class == class && t.Value == value
}

func (c tokenCursor) done() bool {
	return c.index >= len(c.tokens)
}

func (c tokenCursor) debugString() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for _, t := range c.tokens {
		sb.WriteString(t.Value)
	}
	sb.WriteByte('\n')

	for i, t := range c.tokens {
		if i < c.index {
			sb.WriteByte('.')
			for i := 1; i < len(t.Value); i++ {
				sb.WriteByte('~')
			}
		} else if i == c.index {
			sb.WriteByte('^')
			break
		}
	}
	sb.WriteByte('\n')
	sb.WriteString(fmt.Sprintf("%+v\n", c.token()))

	return sb.String()
}

func errAt(c tokenCursor, message string) ParseError {
	return ParseError{Message: message, CursorInfo: c.debugString()}
}

func consumeStress(c tokenCursor) (uint8, tokenCursor, error) {
	if !c.tokenIs(Symbol, "!") {
		return 0, c, nil
	}

	stress := uint8(1)
	c = c.next()

	if c.token().Class == Chars {
		value, err := strconv.ParseUint(c.token().Value, 10, 8)
		if err != nil {
			return 0, c, errAt(c, "Expected a number here")
		}
		stress = uint8(value)
		c = c.next()
	}

	return stress, c, nil
}

func consumeKeysymbol(c tokenCursor) (keysymbol.Keysymbol, tokenCursor, error) {
	if c.token().Class != Chars {
		return keysymbol.Keysymbol{}, c, errAt(c, "Expected a keysymbol identifier here")
	}

	chars := c.token().Value
	c = c.next()

	stress, c, err := consumeStress(c)
	if err != nil {
		return keysymbol.Keysymbol{}, c, err
	}

	if !c.tokenIs(Symbol, "?") {
		return keysymbol.New(chars, stress, false), c, nil
	}

	c = c.next()
	return keysymbol.New(chars, stress, true), c, nil
}

func consumeKeysymbolSeq(c tokenCursor) ([]keysymbol.Keysymbol, tokenCursor, error) {
	var keysymbols []keysymbol.Keysymbol

	for !c.tokenIs(Symbol, ")") {
		ks, newCursor, err := consumeKeysymbol(c)
		if err != nil {
			return nil, c, err
		}
		keysymbols = append(keysymbols, ks)
		c = newCursor

		if c.token().Class == Whitespace {
			c = c.next()
		}
	}

	return keysymbols, c, nil
}

func consumeSophemeOrtho(c tokenCursor) (string, tokenCursor, error) {
	if c.token().Class == Chars {
		return c.token().Value, c.movedBy(1), nil
	}
	if c.tokenIsDot() {
		return "", c, nil
	}
	return "", c, errAt(c, "Expected a sopheme orthography here")
}

func consumeSophemeDot(c tokenCursor) (tokenCursor, error) {
	if c.tokenIsDot() {
		return c.next(), nil
	}
	return c, errAt(c, "Expected a dot here")
}

func consumeSophemePhono(c tokenCursor) ([]keysymbol.Keysymbol, tokenCursor, error) {
	if c.token().Class == Chars {
		ks, newCursor, err := consumeKeysymbol(c)
		if err != nil {
			return nil, c, err
		}
		return []keysymbol.Keysymbol{ks}, newCursor, nil
	}

	if c.tokenIs(Symbol, "(") {
		c = c.next()
		keysymbols, newCursor, err := consumeKeysymbolSeq(c)
		if err != nil {
			return nil, c, err
		}
		c = newCursor.next()
		return keysymbols, c, nil
	}

	if c.token().Class == Whitespace {
		return nil, c, nil
	}

	return nil, c, errAt(c, "Expected a sopheme phonology here")
}

func consumeSopheme(c tokenCursor) (def.Sopheme, tokenCursor, error) {
	ortho, c, err := consumeSophemeOrtho(c)
	if err != nil {
		return def.Sopheme{}, c, err
	}

	c, err = consumeSophemeDot(c)
	if err != nil {
		return def.Sopheme{}, c, err
	}

	phono, c, err := consumeSophemePhono(c)
	if err != nil {
		return def.Sopheme{}, c, err
	}

	return def.NewSopheme(norm.NFC.String(ortho), phono), c, nil
}

func consumeTransclusion(c tokenCursor) (def.Transclusion, tokenCursor, error) {
	if !c.tokenIs(Symbol, "{") {
		return def.Transclusion{}, c, errAt(c, "Expected a transclusion here")
	}
	c = c.next()

	if c.token().Class != Chars {
		return def.Transclusion{}, c, errAt(c, "Expected a variable name here")
	}
	varname := c.token().Value
	c = c.next()

	if !c.tokenIs(Symbol, "}") {
		return def.Transclusion{}, c, errAt(c, "Expected a closing brace here")
	}
	c = c.next()

	stress, c, err := consumeStress(c)
	if err != nil {
		return def.Transclusion{}, c, err
	}

	return def.NewTransclusion(varname, stress), c, nil
}

// consumeEntity parses one entity from the cursor: a transclusion or a
// sopheme. RawDef is deliberately not produced here; it only ever arises
// from pipe output built on top of parsed entities, never from raw parser
// output.
func consumeEntity(c tokenCursor) (def.Entity, tokenCursor, error) {
	if t, newCursor, err := consumeTransclusion(c); err == nil {
		return def.NewTransclusionEntity(t), newCursor, nil
	}

	if s, newCursor, err := consumeSopheme(c); err == nil {
		return def.NewSophemeEntity(s), newCursor, nil
	}

	return def.Entity{}, c, errAt(c, "Expected an entity here")
}

func parseLine(tokens []Token) ([]def.Entity, error) {
	c := newTokenCursor(tokens)
	var entities []def.Entity

	if c.done() {
		return entities, nil
	}

	for {
		entity, newCursor, err := consumeEntity(c)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
		c = newCursor

		if c.done() {
			break
		}

		if c.token().Class == Whitespace {
			c = c.next()
		} else {
			return nil, errAt(c, "Expected whitespace here")
		}
	}

	return entities, nil
}

// ParseEntryDefinition parses a full dictionary entry's right-hand side
// (a sequence of sophemes and transclusions) from text. It never produces
// RawDef entities.
func ParseEntryDefinition(seq string) ([]def.Entity, error) {
	return parseLine(LexSophemeSequence(seq))
}

func parseSophemeSeqLine(tokens []Token) ([]def.Sopheme, error) {
	c := newTokenCursor(tokens)
	var sophemes []def.Sopheme

	if c.done() {
		return sophemes, nil
	}

	for {
		sopheme, newCursor, err := consumeSopheme(c)
		if err != nil {
			return nil, err
		}
		sophemes = append(sophemes, sopheme)
		c = newCursor

		if c.done() {
			break
		}

		if c.token().Class == Whitespace {
			c = c.next()
		} else {
			return nil, errAt(c, "Expected whitespace here")
		}
	}

	return sophemes, nil
}

// ParseSophemeSeq parses a bare sequence of sophemes (no transclusions or
// raw defs allowed) from text.
func ParseSophemeSeq(seq string) ([]def.Sopheme, error) {
	return parseSophemeSeqLine(LexSophemeSequence(seq))
}

// ParseKeysymbolSeq parses a bare, whitespace-separated sequence of
// keysymbols from text.
func ParseKeysymbolSeq(seq string) ([]keysymbol.Keysymbol, error) {
	tokens := LexSophemeSequence(seq)
	c := newTokenCursor(tokens)
	var keysymbols []keysymbol.Keysymbol

	if c.done() {
		return keysymbols, nil
	}

	for {
		ks, newCursor, err := consumeKeysymbol(c)
		if err != nil {
			return nil, err
		}
		keysymbols = append(keysymbols, ks)
		c = newCursor

		if c.done() {
			break
		}

		if c.token().Class == Whitespace {
			c = c.next()
		} else {
			return nil, errAt(c, "Expected whitespace here")
		}
	}

	return keysymbols, nil
}
