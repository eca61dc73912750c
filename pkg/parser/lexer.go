package parser

import "fmt"

// TokenType represents the type of a lexer token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdent
	TokenNumber // 12, -4, 1.5, 12px
	TokenString // "..."
	TokenColor  // #rrggbb or #rrggbbaa
	TokenLBrace
	TokenRBrace
	TokenLParen
	TokenRParen
	TokenColon
	TokenSemicolon
	TokenComma
	TokenPipe
	TokenIllegal
)

// Token is a single token with its line number for error reporting.
type Token struct {
	Literal string
	Type    TokenType
	Line    int
}

func (t Token) String() string {
	return fmt.Sprintf("%q (line %d)", t.Literal, t.Line)
}

// Lexer tokenizes style declaration input.
type Lexer struct {
	input   string
	pos     int
	readPos int
	line    int
	ch      byte
}

// NewLexer creates a lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()

	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
	}
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}

	return l.input[l.readPos]
}

func (l *Lexer) skipSpaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != 0 && l.ch != '\n' {
				l.readChar()
			}

			continue
		}
		if l.ch == '/' && l.peekChar() == '*' {
			l.readChar()
			l.readChar()
			for l.ch != 0 && !(l.ch == '*' && l.peekChar() == '/') {
				l.readChar()
			}
			l.readChar()
			l.readChar()

			continue
		}

		return
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	l.skipSpaceAndComments()

	line := l.line
	switch l.ch {
	case 0:
		return Token{Type: TokenEOF, Line: line}
	case '{':
		l.readChar()

		return Token{Type: TokenLBrace, Literal: "{", Line: line}
	case '}':
		l.readChar()

		return Token{Type: TokenRBrace, Literal: "}", Line: line}
	case '(':
		l.readChar()

		return Token{Type: TokenLParen, Literal: "(", Line: line}
	case ')':
		l.readChar()

		return Token{Type: TokenRParen, Literal: ")", Line: line}
	case ':':
		l.readChar()

		return Token{Type: TokenColon, Literal: ":", Line: line}
	case ';':
		l.readChar()

		return Token{Type: TokenSemicolon, Literal: ";", Line: line}
	case ',':
		l.readChar()

		return Token{Type: TokenComma, Literal: ",", Line: line}
	case '|':
		l.readChar()

		return Token{Type: TokenPipe, Literal: "|", Line: line}
	case '"':
		return Token{Type: TokenString, Literal: l.readString(), Line: line}
	case '#':
		l.readChar()

		return Token{Type: TokenColor, Literal: l.readHex(), Line: line}
	case '-':
		if isDigit(l.peekChar()) {
			return Token{Type: TokenNumber, Literal: l.readNumber(), Line: line}
		}
		l.readChar()

		return Token{Type: TokenIllegal, Literal: "-", Line: line}
	}

	if isDigit(l.ch) {
		return Token{Type: TokenNumber, Literal: l.readNumber(), Line: line}
	}
	if isIdentStart(l.ch) {
		return Token{Type: TokenIdent, Literal: l.readIdent(), Line: line}
	}

	ch := l.ch
	l.readChar()

	return Token{Type: TokenIllegal, Literal: string(ch), Line: line}
}

func (l *Lexer) readIdent() string {
	start := l.pos
	for isIdentChar(l.ch) {
		l.readChar()
	}

	return l.input[start:l.pos]
}

// readNumber reads an optionally negative integer or decimal literal,
// including a trailing unit suffix ("12px").
func (l *Lexer) readNumber() string {
	start := l.pos
	if l.ch == '-' {
		l.readChar()
	}
	for isDigit(l.ch) || l.ch == '.' {
		l.readChar()
	}
	for isIdentStart(l.ch) {
		l.readChar()
	}

	return l.input[start:l.pos]
}

func (l *Lexer) readHex() string {
	start := l.pos
	for isHexDigit(l.ch) {
		l.readChar()
	}

	return l.input[start:l.pos]
}

func (l *Lexer) readString() string {
	l.readChar()
	var result []byte
	for l.ch != 0 && l.ch != '"' {
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				result = append(result, '\n')
			case 't':
				result = append(result, '\t')
			default:
				result = append(result, l.ch)
			}
		} else {
			result = append(result, l.ch)
		}
		l.readChar()
	}
	if l.ch == '"' {
		l.readChar()
	}

	return string(result)
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
