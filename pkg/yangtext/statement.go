// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package yangtext

import (
	"bytes"
	"fmt"
	"strings"
)

// Statement is one generic YANG statement: a keyword, an optional
// argument, and nested sub-statements. ParseStatements produces a forest of
// these without knowing anything about what any particular keyword
// means; build.go is what turns a Statement tree into compiled
// *yang.Module/SchemaNode values.
type Statement struct {
	Keyword     string
	HasArgument bool
	Argument    string
	Statements  []*Statement

	File string
	Line int
	Col  int
}

// Location renders s's source position for diagnostics.
func (s *Statement) Location() string {
	switch {
	case s.File == "" && s.Line == 0:
		return "unknown"
	case s.File == "":
		return fmt.Sprintf("line %d:%d", s.Line, s.Col)
	case s.Line == 0:
		return s.File
	default:
		return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Col)
	}
}

// String renders s and its descendants back out as YANG source text,
// useful for diagnostics and tests; it is not guaranteed to reproduce
// the original formatting.
func (s *Statement) String() string {
	var b bytes.Buffer
	s.write(&b, "")
	return b.String()
}

func (s *Statement) write(w *bytes.Buffer, indent string) {
	if s.Keyword == "" {
		for _, c := range s.Statements {
			c.write(w, indent)
		}
		return
	}
	fmt.Fprintf(w, "%s%s", indent, s.Keyword)
	if s.HasArgument {
		fmt.Fprintf(w, " %q", s.Argument)
	}
	if len(s.Statements) == 0 {
		fmt.Fprintf(w, ";\n")
		return
	}
	fmt.Fprintf(w, " {\n")
	for _, c := range s.Statements {
		c.write(w, indent+"\t")
	}
	fmt.Fprintf(w, "%s}\n", indent)
}

// parser turns a token stream into a slice of root Statements.
type parser struct {
	lex      *lexer
	errout   *bytes.Buffer
	tokens   []*token
	hitBrace *Statement
}

var ignoreMe = &Statement{}

// ParseStatements tokenizes input (source read from path, used only
// for diagnostics) and parses it into a forest of generic Statements.
// It performs no semantic validation: keywords and arguments are not
// checked here, and Build later skips keywords it does not recognize.
func ParseStatements(input, path string) ([]*Statement, error) {
	p := &parser{
		lex:      newLexer(input, path),
		errout:   &bytes.Buffer{},
		hitBrace: &Statement{},
	}
	p.lex.errout = p.errout

	var statements []*Statement
	for {
		ns := p.nextStatement()
		if ns == nil {
			break
		}
		if ns == p.hitBrace {
			fmt.Fprintf(p.errout, "%s:%d:%d: unexpected %c\n", ns.File, ns.Line, ns.Col, closeBrace)
			continue
		}
		statements = append(statements, ns)
	}

	if p.errout.Len() == 0 {
		return statements, nil
	}
	return nil, fmt.Errorf("%s", strings.TrimSpace(p.errout.String()))
}

func (p *parser) push(t ...*token) {
	p.tokens = append(p.tokens, t...)
}

func (p *parser) pop() *token {
	if n := len(p.tokens); n > 0 {
		n--
		defer func() { p.tokens = p.tokens[:n] }()
		return p.tokens[n]
	}
	return nil
}

// next returns the next token, handling `"a" + "b"` string
// concatenation along the way.
func (p *parser) next() *token {
	if t := p.pop(); t != nil {
		return t
	}
	nextNonError := func() *token {
		for {
			if t := p.lex.NextToken(); t.Code() != tError {
				return t
			}
		}
	}
	t := nextNonError()
	if t.Code() != tString {
		return t
	}
	for {
		nt := nextNonError()
		switch nt.Code() {
		case tEOF:
			return t
		case tIdentifier:
			if nt.Text != "+" {
				p.push(nt)
				return t
			}
		default:
			p.push(nt)
			return t
		}
		st := nextNonError()
		switch st.Code() {
		case tEOF:
			p.push(nt)
			return t
		case tString:
			t.Text += st.Text
		default:
			p.push(st, nt)
			return t
		}
	}
}

// nextStatement reads one Statement, recursing for its sub-statements.
func (p *parser) nextStatement() *Statement {
	t := p.next()
	switch t.Code() {
	case tEOF:
		return nil
	case closeBrace:
		p.hitBrace.File = t.File
		p.hitBrace.Line = t.Line
		p.hitBrace.Col = t.Col
		return p.hitBrace
	case tIdentifier:
	default:
		fmt.Fprintf(p.errout, "%v: not an identifier\n", t)
		return ignoreMe
	}

	s := &Statement{
		Keyword: t.Text,
		File:    t.File,
		Line:    t.Line,
		Col:     t.Col,
	}

	p.lex.inPattern = t.Text == "pattern"
	t = p.next()
	p.lex.inPattern = false
	switch t.Code() {
	case tString, tIdentifier:
		s.HasArgument = true
		s.Argument = t.Text
		t = p.next()
	}
	switch t.Code() {
	case tEOF:
		fmt.Fprintf(p.errout, "%s: unexpected EOF\n", s.File)
		return nil
	case ';':
		return s
	case openBrace:
		for {
			ns := p.nextStatement()
			switch ns {
			case nil:
				return nil
			case p.hitBrace:
				return s
			default:
				s.Statements = append(s.Statements, ns)
			}
		}
	default:
		fmt.Fprintf(p.errout, "%v: syntax error\n", t)
		return ignoreMe
	}
}
