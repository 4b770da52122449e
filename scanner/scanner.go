// Package scanner turns a stream of characters from the source package into
// a stream of Tokens, one at a time, on demand.
package scanner

import (
	"strings"

	"github.com/willvillegas/triangle-go/diag"
	"github.com/willvillegas/triangle-go/source"
	"github.com/willvillegas/triangle-go/token"
)

// operatorChars is the alphabet a compound Operator token may be built
// from (spec §4.1).
const operatorChars = "+-*/\\=<>"

// illegal is scanOne's internal result for a run of characters that starts
// no token; NextToken never returns it.
const illegal token.Kind = -1

func isLetter(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isOperatorChar(c rune) bool {
	return strings.ContainsRune(operatorChars, c)
}

// Scanner is a pull-based, single-threaded lexical analyzer. It keeps one
// character of lookahead (currentChar) and produces tokens through
// NextToken, never reading further ahead than it needs to classify the
// current token.
type Scanner struct {
	reader *source.Reader
	report diag.Reporter

	currentChar rune
	currentPos  token.Position
}

// New creates a Scanner over the given source text, reporting lexical
// errors through report.
func New(text string, report diag.Reporter) *Scanner {
	s := &Scanner{
		reader: source.New(text),
		report: report,
	}
	s.advance()
	return s
}

// advance consumes the next source character into currentChar/currentPos.
func (s *Scanner) advance() {
	s.currentChar, s.currentPos = s.reader.Next()
}

// skipWhitespaceAndComments repeatedly skips whitespace runs and `!`
// line-comments until the lookahead character starts real token text.
func (s *Scanner) skipWhitespaceAndComments() {
	for {
		switch {
		case s.currentChar == '!':
			for s.currentChar != '\n' && s.currentChar != source.NUL {
				s.advance()
			}
		case isWhitespace(s.currentChar):
			s.advance()
		default:
			return
		}
	}
}

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// NextToken scans and returns the next Token in the source, terminated by
// an EndOfText token that is then returned on every subsequent call.
func (s *Scanner) NextToken() token.Token {
	s.skipWhitespaceAndComments()

	start := s.currentPos
	var spelling strings.Builder
	kind := s.scanOne(&spelling)
	for kind == illegal {
		// The illegal run was reported and skipped; scan the token after it.
		s.skipWhitespaceAndComments()
		start = s.currentPos
		spelling.Reset()
		kind = s.scanOne(&spelling)
	}
	finish := s.currentPos

	text := spelling.String()
	if kind == token.Identifier {
		if keywordKind, ok := token.Keywords[text]; ok {
			kind = keywordKind
		}
	}

	return token.Token{Kind: kind, Spelling: text, Span: token.Span{Start: start, Finish: finish}}
}

// scanOne dispatches on the lookahead character, consuming exactly one
// token's worth of source text into spelling and returning its Kind. On
// entry currentChar is the first character of the token; on exit
// currentPos is the position of the first character after the token, which
// NextToken records as the token's Finish (so Finish is one past the last
// character consumed, not the last character itself).
func (s *Scanner) scanOne(spelling *strings.Builder) token.Kind {
	c := s.currentChar

	switch {
	case c == source.NUL:
		return token.EndOfText

	case isLetter(c):
		return s.scanIdentifier(spelling)

	case isDigit(c):
		return s.scanInteger(spelling)

	case c == '\'':
		return s.scanCharacterLiteral(spelling)

	case c == '(':
		return s.single(spelling, token.LeftParen)
	case c == ')':
		return s.single(spelling, token.RightParen)
	case c == '[':
		return s.single(spelling, token.LeftBracket)
	case c == ']':
		return s.single(spelling, token.RightBracket)
	case c == '{':
		return s.single(spelling, token.LeftCurly)
	case c == '}':
		return s.single(spelling, token.RightCurly)
	case c == ',':
		return s.single(spelling, token.Comma)
	case c == '.':
		return s.single(spelling, token.Dot)
	case c == ';':
		return s.single(spelling, token.Semicolon)

	case c == ':':
		spelling.WriteRune(c)
		s.advance()
		if s.currentChar == '=' {
			spelling.WriteRune(s.currentChar)
			s.advance()
			return token.Becomes
		}
		return token.Colon

	case c == '~':
		return s.single(spelling, token.Is)

	case isOperatorChar(c):
		return s.scanOperator(spelling)

	default:
		illegalStart := s.currentPos
		for !isWhitespace(s.currentChar) && s.currentChar != source.NUL {
			spelling.WriteRune(s.currentChar)
			s.advance()
		}
		diag.Lexical(s.report, token.Span{Start: illegalStart, Finish: s.currentPos}, "unexpected character(s): %q", spelling.String())
		return illegal
	}
}

func (s *Scanner) single(spelling *strings.Builder, kind token.Kind) token.Kind {
	spelling.WriteRune(s.currentChar)
	s.advance()
	return kind
}

func (s *Scanner) scanIdentifier(spelling *strings.Builder) token.Kind {
	for isLetter(s.currentChar) || isDigit(s.currentChar) {
		spelling.WriteRune(s.currentChar)
		s.advance()
	}
	return token.Identifier
}

func (s *Scanner) scanInteger(spelling *strings.Builder) token.Kind {
	for isDigit(s.currentChar) {
		spelling.WriteRune(s.currentChar)
		s.advance()
	}
	return token.IntegerLiteral
}

// scanCharacterLiteral consumes 'c' for exactly one source character c; no
// escape syntax is recognized (spec §4.1, open question resolved by
// accepting any single character verbatim, control characters included).
func (s *Scanner) scanCharacterLiteral(spelling *strings.Builder) token.Kind {
	start := s.currentPos
	s.advance() // consume opening quote

	if s.currentChar == source.NUL {
		diag.Lexical(s.report, token.Span{Start: start, Finish: s.currentPos}, "unterminated character literal")
		return token.EndOfText
	}

	spelling.WriteRune(s.currentChar)
	s.advance()

	if s.currentChar != '\'' {
		diag.Lexical(s.report, token.Span{Start: start, Finish: s.currentPos}, "unterminated character literal: %q", spelling.String())
		return token.CharacterLiteral
	}
	s.advance() // consume closing quote
	return token.CharacterLiteral
}

// scanOperator consumes one operator character and, for the four
// compounding characters in spec §4.1, an optional second character that
// extends it into /\, \/, \=, //, <=, or >=.
func (s *Scanner) scanOperator(spelling *strings.Builder) token.Kind {
	first := s.currentChar
	spelling.WriteRune(first)
	s.advance()

	switch first {
	case '/':
		if s.currentChar == '\\' || s.currentChar == '/' {
			spelling.WriteRune(s.currentChar)
			s.advance()
		}
	case '\\':
		if s.currentChar == '=' || s.currentChar == '/' {
			spelling.WriteRune(s.currentChar)
			s.advance()
		}
	case '<', '>':
		if s.currentChar == '=' {
			spelling.WriteRune(s.currentChar)
			s.advance()
		}
	}
	return token.Operator
}
