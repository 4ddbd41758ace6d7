// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = func() map[string]string {
	equ := maps.Collect(Defines())
	equ["LINENO"] = "0"
	return equ
}()

// exprSpans returns the byte offsets [start, end) of each $(...) expression
// in text, with balanced parentheses. An unterminated $( is not a span.
func exprSpans(text string) (spans [][2]int) {
	for n := 0; n+1 < len(text); n++ {
		if text[n] != '$' || text[n+1] != '(' {
			continue
		}
		depth := 0
		for m := n + 1; m < len(text); m++ {
			switch text[m] {
			case '(':
				depth++
			case ')':
				depth--
			}
			if depth == 0 {
				spans = append(spans, [2]int{n, m + 1})
				n = m
				break
			}
		}
	}

	return
}

// stripComment removes a trailing // comment. A // inside a $(...)
// expression is starlark floor division, not a comment.
func stripComment(text string) string {
	spans := exprSpans(text)
	for n := 0; n+1 < len(text); n++ {
		if text[n] != '/' || text[n+1] != '/' {
			continue
		}
		inside := false
		for _, span := range spans {
			if n >= span[0] && n < span[1] {
				inside = true
				break
			}
		}
		if !inside {
			return text[:n]
		}
	}

	return text
}

// Loader parses the textual program listing format:
//
//	ADDR: HEX [HEX...] [// comment]
//
// ADDR is a hex address followed by a colon. Each HEX value is either two
// hex digits (one byte) or four hex digits (one big-endian word), placed
// consecutively from ADDR. Blank lines and // comments are ignored.
//
// Two extensions are supported:
//
//	.equ NAME HEX    ; defines NAME, usable in place of an address or value
//	$(expr)          ; evaluated at load time, replaced by a four digit word
type Loader struct {
	Verbose bool              // If set, verbosely logs the loader actions.
	Equate  map[string]string // Map of equates.

	predefine map[string]string // Predefines
}

// Predefine defines a new equate or redefines an existing equate.
func (ldr *Loader) Predefine(equ string, value string) {
	if ldr.predefine == nil {
		ldr.predefine = map[string]string{equ: value}
	} else {
		ldr.predefine[equ] = value
	}
}

// parseHex parses a bare hex number.
func parseHex(word string, bits int) (value uint64, err error) {
	value, err = strconv.ParseUint(word, 16, bits)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	return
}

// expand replaces a word by its equate, if it has one.
func (ldr *Loader) expand(word string) string {
	equate, ok := ldr.Equate[word]
	if ok {
		return equate
	}
	return word
}

// parenEval does load-time $(...) evaluations
func (ldr *Loader) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range ldr.Equate {
		var value64 uint64
		value64, err = parseHex(str, 32)
		if err != nil {
			// Ignore non-numeric equates.
			err = nil
			continue
		}
		pred[key] = starlark.MakeUint64(value64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_uint64, ok := st_int.Uint64()
	if !ok || st_uint64 > 0xffffffff {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_uint64)
	return
}

// parseLine parses a single listing line. Lines that place no data return
// a nil line.
func (ldr *Loader) parseLine(text string, lineno int) (line *Line, err error) {
	// Set line number.
	ldr.Equate["LINENO"] = fmt.Sprintf("%X", lineno)

	// Do $() evaluations
	var sb strings.Builder
	last := 0
	for _, span := range exprSpans(text) {
		sb.WriteString(text[last:span[0]])
		var value uint32
		value, err = ldr.parenEval(text[span[0]+2 : span[1]-1])
		if err == nil && value > 0xffff {
			err = ErrValueWidth
		}
		if err != nil {
			return
		}
		fmt.Fprintf(&sb, "%04X", value)
		last = span[1]
	}
	sb.WriteString(text[last:])
	text = sb.String()

	words := strings.Fields(text)
	if len(words) == 0 {
		return
	}

	// .equ NAME VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := ldr.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		ldr.Equate[words[1]] = ldr.expand(words[2])
		return
	}

	label, ok := strings.CutSuffix(words[0], ":")
	if !ok || len(label) == 0 {
		err = ErrAddressMissing
		return
	}

	addr, err := parseHex(ldr.expand(label), 16)
	if err != nil {
		err = errors.Join(ErrAddressInvalid, err)
		return
	}
	if addr >= MEMORY_SIZE {
		err = ErrAddressRange
		return
	}

	line = &Line{
		LineNo:  lineno,
		Address: uint16(addr),
		Words:   slices.Clone(words),
	}

	values := words[1:]
	if len(values) == 0 {
		err = ErrValueMissing
		return
	}

	for n, word := range values {
		word = ldr.expand(word)
		line.Words[1+n] = word

		var value uint64
		switch len(word) {
		case 2:
			value, err = parseHex(word, 8)
			line.Data = append(line.Data, uint8(value))
		case 4:
			value, err = parseHex(word, 16)
			line.Data = append(line.Data, uint8(value>>8), uint8(value))
		default:
			err = errors.Join(ErrValueWidth, ErrParseNumber(word))
		}
		if err != nil {
			err = errors.Join(ErrValueInvalid, err)
			return
		}
	}

	if int(addr)+len(line.Data) > MEMORY_SIZE {
		err = ErrAddressRange
		return
	}

	return
}

// Parse parses an input stream into a Program. Any error aborts the whole
// parse, and no Program is returned.
func (ldr *Loader) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var text string
	var lineno int
	var lines []Line

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: text, Err: err}
		}
	}()

	ldr.Equate = maps.Clone(sysEquate)
	for attr, val := range ldr.predefine {
		ldr.Equate[attr] = val
	}

	for scanner.Scan() {
		text = scanner.Text()
		lineno += 1

		if ldr.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		body := strings.TrimSpace(stripComment(text))
		if len(body) == 0 {
			continue
		}

		var line *Line
		line, err = ldr.parseLine(body, lineno)
		if err != nil {
			return
		}
		if line != nil {
			lines = append(lines, *line)
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Lines: lines,
	}

	return
}
