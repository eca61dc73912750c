package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/stylegen-io/stylegen/pkg/structure"
	"github.com/stylegen-io/stylegen/pkg/styerrors"
)

// Loader reads style files and resolves includes against a list of
// search paths. Include cycles are hard errors.
type Loader struct {
	searchPaths []string
	loaded      map[string]*structure.Module
	loading     map[string]bool
}

// NewLoader creates a loader with the given include search paths.
func NewLoader(searchPaths ...string) *Loader {
	return &Loader{
		searchPaths: searchPaths,
		loaded:      map[string]*structure.Module{},
		loading:     map[string]bool{},
	}
}

// Load parses the file at filePath, following includes recursively.
func (ld *Loader) Load(filePath string) (*structure.Module, error) {
	resolved, err := ld.resolve(filePath, "")
	if err != nil {
		return nil, err
	}

	return ld.load(resolved)
}

func (ld *Loader) load(resolved string) (*structure.Module, error) {
	if m, ok := ld.loaded[resolved]; ok {
		return m, nil
	}
	if ld.loading[resolved] {
		return nil, fmt.Errorf("%w: include cycle through %q", styerrors.ErrParse, resolved)
	}
	ld.loading[resolved] = true
	defer delete(ld.loading, resolved)

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", styerrors.ErrFileNotFound, err)
	}

	m, err := Parse(string(data), resolved, ld)
	if err != nil {
		return nil, err
	}
	ld.loaded[resolved] = m

	return m, nil
}

func (ld *Loader) resolve(include, from string) (string, error) {
	if from != "" {
		candidate := filepath.Join(filepath.Dir(from), include)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	for _, dir := range ld.searchPaths {
		candidate := filepath.Join(dir, include)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	if _, err := os.Stat(include); err == nil {
		return include, nil
	}

	return "", fmt.Errorf("%w: %q", styerrors.ErrFileNotFound, include)
}

// Parse parses a single file's content into a module. The loader may be
// nil, in which case include statements fail.
func Parse(input, filePath string, loader *Loader) (*structure.Module, error) {
	p := &parser{
		lexer:    NewLexer(input),
		module:   structure.NewModule(filePath),
		filePath: filePath,
		loader:   loader,
	}
	p.next()
	if err := p.parseFile(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", styerrors.ErrParse, filePath, err)
	}

	return p.module, nil
}

type parser struct {
	lexer    *Lexer
	module   *structure.Module
	loader   *Loader
	filePath string
	tok      Token
}

func (p *parser) next() {
	p.tok = p.lexer.NextToken()
}

func (p *parser) expect(tt TokenType, what string) (Token, error) {
	if p.tok.Type != tt {
		return Token{}, fmt.Errorf("expected %s, got %s", what, p.tok)
	}
	tok := p.tok
	p.next()

	return tok, nil
}

func (p *parser) parseFile() error {
	for p.tok.Type != TokenEOF {
		if p.tok.Type != TokenIdent {
			return fmt.Errorf("expected declaration, got %s", p.tok)
		}
		if p.tok.Literal == "include" {
			if err := p.parseInclude(); err != nil {
				return err
			}

			continue
		}

		name := p.tok.Literal
		p.next()
		switch p.tok.Type {
		case TokenLBrace:
			if err := p.parseStructDecl(name); err != nil {
				return err
			}
		case TokenColon:
			p.next()
			if err := p.parseVariable(name); err != nil {
				return err
			}
		default:
			return fmt.Errorf("expected '{' or ':' after %q, got %s", name, p.tok)
		}
	}

	return nil
}

func (p *parser) parseInclude() error {
	p.next()
	tok, err := p.expect(TokenString, "include path")
	if err != nil {
		return err
	}
	if _, err := p.expect(TokenSemicolon, "';'"); err != nil {
		return err
	}
	if p.loader == nil {
		return fmt.Errorf("include %q: no loader configured", tok.Literal)
	}
	resolved, err := p.loader.resolve(tok.Literal, p.filePath)
	if err != nil {
		return err
	}
	included, err := p.loader.load(resolved)
	if err != nil {
		return err
	}
	p.module.AddInclude(included)

	return nil
}

func (p *parser) parseStructDecl(name string) error {
	p.next() // consume '{'
	var fields []structure.Field
	for p.tok.Type != TokenRBrace {
		fieldTok, err := p.expect(TokenIdent, "field name")
		if err != nil {
			return err
		}
		if _, err := p.expect(TokenColon, "':'"); err != nil {
			return err
		}
		typeTok, err := p.expect(TokenIdent, "field type")
		if err != nil {
			return err
		}
		fieldType, err := p.resolveTypeName(typeTok.Literal)
		if err != nil {
			return err
		}
		if _, err := p.expect(TokenSemicolon, "';'"); err != nil {
			return err
		}
		fields = append(fields, structure.Field{
			Name: structure.FullName{fieldTok.Literal},
			Type: fieldType,
		})
	}
	p.next() // consume '}'

	return p.module.AddStruct(structure.Struct{
		Name:   structure.FullName{name},
		Fields: fields,
	})
}

func (p *parser) resolveTypeName(name string) (structure.Type, error) {
	switch name {
	case "int":
		return structure.Type{Tag: structure.TagInt}, nil
	case "double":
		return structure.Type{Tag: structure.TagDouble}, nil
	case "pixels":
		return structure.Type{Tag: structure.TagPixels}, nil
	case "string":
		return structure.Type{Tag: structure.TagString}, nil
	case "color":
		return structure.Type{Tag: structure.TagColor}, nil
	case "point":
		return structure.Type{Tag: structure.TagPoint}, nil
	case "size":
		return structure.Type{Tag: structure.TagSize}, nil
	case "cursor":
		return structure.Type{Tag: structure.TagCursor}, nil
	case "align":
		return structure.Type{Tag: structure.TagAlign}, nil
	case "margins":
		return structure.Type{Tag: structure.TagMargins}, nil
	case "font":
		return structure.Type{Tag: structure.TagFont}, nil
	case "icon":
		return structure.Type{Tag: structure.TagIcon}, nil
	}
	typeName := structure.FullName{name}
	if _, ok := p.module.FindStruct(typeName); !ok {
		return structure.Type{}, fmt.Errorf("%w: type %q", styerrors.ErrStructNotFound, name)
	}

	return structure.Type{Tag: structure.TagStruct, Name: typeName}, nil
}

func (p *parser) parseVariable(name string) error {
	value, err := p.parseValue()
	if err != nil {
		return fmt.Errorf("variable %q: %w", name, err)
	}
	// Struct values close with '}', everything else requires ';'.
	if p.tok.Type == TokenSemicolon {
		p.next()
	} else if value.Type().Tag != structure.TagStruct {
		return fmt.Errorf("variable %q: expected ';', got %s", name, p.tok)
	}

	return p.module.AddVariable(structure.Variable{
		Name:  structure.FullName{name},
		Value: value,
	})
}

func (p *parser) parseValue() (structure.Value, error) {
	switch p.tok.Type {
	case TokenNumber:
		return p.parseNumber()
	case TokenString:
		v := structure.StringValue(structure.TagString, p.tok.Literal)
		p.next()

		return v, nil
	case TokenColor:
		return p.parseColor()
	case TokenIdent:
		return p.parseIdentValue()
	}

	return structure.Value{}, fmt.Errorf("unexpected value %s", p.tok)
}

func (p *parser) parseNumber() (structure.Value, error) {
	literal := p.tok.Literal
	p.next()
	if strings.HasSuffix(literal, "px") {
		n, err := strconv.Atoi(strings.TrimSuffix(literal, "px"))
		if err != nil {
			return structure.Value{}, fmt.Errorf("bad pixels literal %q", literal)
		}

		return structure.IntValue(structure.TagPixels, n), nil
	}
	if strings.Contains(literal, ".") {
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return structure.Value{}, fmt.Errorf("bad double literal %q", literal)
		}

		return structure.DoubleValue(f), nil
	}
	n, err := strconv.Atoi(literal)
	if err != nil {
		return structure.Value{}, fmt.Errorf("bad int literal %q", literal)
	}

	return structure.IntValue(structure.TagInt, n), nil
}

func (p *parser) parseColor() (structure.Value, error) {
	literal := p.tok.Literal
	p.next()
	color, err := parseColorLiteral(literal)
	if err != nil {
		return structure.Value{}, err
	}
	if p.tok.Type == TokenPipe {
		p.next()
		fallback, err := p.expect(TokenIdent, "fallback name")
		if err != nil {
			return structure.Value{}, err
		}
		color.Fallback = fallback.Literal
	}

	return structure.ColorValue(color), nil
}

func parseColorLiteral(literal string) (structure.Color, error) {
	if len(literal) != 6 && len(literal) != 8 {
		return structure.Color{}, fmt.Errorf("bad color literal #%s", literal)
	}
	parsed, err := strconv.ParseUint(literal, 16, 64)
	if err != nil {
		return structure.Color{}, fmt.Errorf("bad color literal #%s", literal)
	}
	color := structure.Color{Alpha: 255}
	if len(literal) == 8 {
		color.Alpha = uint8(parsed & 0xff)
		parsed >>= 8
	}
	color.Red = uint8(parsed >> 16)
	color.Green = uint8(parsed >> 8)
	color.Blue = uint8(parsed)

	return color, nil
}

func (p *parser) parseIdentValue() (structure.Value, error) {
	name := p.tok.Literal
	p.next()
	switch name {
	case "point":
		px, err := p.parsePxArgs(2)
		if err != nil {
			return structure.Value{}, err
		}

		return structure.PointValue(structure.Point{X: px[0], Y: px[1]}), nil
	case "size":
		px, err := p.parsePxArgs(2)
		if err != nil {
			return structure.Value{}, err
		}

		return structure.SizeValue(structure.Size{Width: px[0], Height: px[1]}), nil
	case "margins":
		px, err := p.parsePxArgs(4)
		if err != nil {
			return structure.Value{}, err
		}

		return structure.MarginsValue(structure.Margins{
			Left: px[0], Top: px[1], Right: px[2], Bottom: px[3],
		}), nil
	case "font":
		return p.parseFont()
	case "cursor":
		return p.parseNamed(structure.TagCursor)
	case "align":
		return p.parseNamed(structure.TagAlign)
	case "icon":
		return p.parseIcon()
	}
	if _, ok := p.module.FindStruct(structure.FullName{name}); ok && p.tok.Type == TokenLBrace {
		return p.parseStructValue(name)
	}

	return p.parseAlias(name)
}

// parseAlias resolves a bare name into a copyOf value with the type of
// the referenced declaration. In palette modules a color alias resolves
// to the target's concrete color with the target recorded as fallback,
// which fixes the override precedence of the generated finalize.
func (p *parser) parseAlias(name string) (structure.Value, error) {
	target, ok := p.module.FindVariable(structure.FullName{name})
	if !ok {
		return structure.Value{}, fmt.Errorf("%w: %q", styerrors.ErrUnknownName, name)
	}
	if p.module.IsPalette() && target.Value.Type().Tag == structure.TagColor {
		color := target.Value.Color()
		color.Fallback = name

		return structure.ColorValue(color), nil
	}

	return structure.CopyOfValue(target.Value.Type(), structure.FullName{name}), nil
}

func (p *parser) parsePxArgs(count int) ([]int, error) {
	if _, err := p.expect(TokenLParen, "'('"); err != nil {
		return nil, err
	}
	result := make([]int, 0, count)
	for i := 0; i < count; i++ {
		if i > 0 {
			if _, err := p.expect(TokenComma, "','"); err != nil {
				return nil, err
			}
		}
		tok, err := p.expect(TokenNumber, "pixels literal")
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(strings.TrimSuffix(tok.Literal, "px"))
		if err != nil || !strings.HasSuffix(tok.Literal, "px") {
			return nil, fmt.Errorf("bad pixels literal %q", tok.Literal)
		}
		result = append(result, n)
	}
	if _, err := p.expect(TokenRParen, "')'"); err != nil {
		return nil, err
	}

	return result, nil
}

func (p *parser) parseFont() (structure.Value, error) {
	if _, err := p.expect(TokenLParen, "'('"); err != nil {
		return structure.Value{}, err
	}
	sizeTok, err := p.expect(TokenNumber, "font size")
	if err != nil {
		return structure.Value{}, err
	}
	size, err := strconv.Atoi(strings.TrimSuffix(sizeTok.Literal, "px"))
	if err != nil || !strings.HasSuffix(sizeTok.Literal, "px") {
		return structure.Value{}, fmt.Errorf("bad font size %q", sizeTok.Literal)
	}

	font := structure.Font{Size: size}
	for p.tok.Type == TokenComma {
		p.next()
		switch p.tok.Type {
		case TokenString:
			font.Family = p.tok.Literal
			p.next()
		case TokenIdent:
			switch p.tok.Literal {
			case "bold":
				font.Flags |= structure.FontFlagBold
			case "italic":
				font.Flags |= structure.FontFlagItalic
			case "underline":
				font.Flags |= structure.FontFlagUnderline
			case "semibold":
				font.Flags |= structure.FontFlagSemibold
			default:
				return structure.Value{}, fmt.Errorf("unknown font flag %q", p.tok.Literal)
			}
			p.next()
		default:
			return structure.Value{}, fmt.Errorf("expected font flag or family, got %s", p.tok)
		}
	}
	if _, err := p.expect(TokenRParen, "')'"); err != nil {
		return structure.Value{}, err
	}

	return structure.FontValue(font), nil
}

func (p *parser) parseNamed(tag structure.TypeTag) (structure.Value, error) {
	if _, err := p.expect(TokenLParen, "'('"); err != nil {
		return structure.Value{}, err
	}
	tok, err := p.expect(TokenIdent, "name")
	if err != nil {
		return structure.Value{}, err
	}
	if _, err := p.expect(TokenRParen, "')'"); err != nil {
		return structure.Value{}, err
	}

	return structure.StringValue(tag, tok.Literal), nil
}

func (p *parser) parseIcon() (structure.Value, error) {
	if _, err := p.expect(TokenLBrace, "'{'"); err != nil {
		return structure.Value{}, err
	}
	var parts []structure.IconPart
	for p.tok.Type != TokenRBrace {
		part, err := p.parseIconPart()
		if err != nil {
			return structure.Value{}, err
		}
		parts = append(parts, part)
		if p.tok.Type == TokenComma {
			p.next()
		}
	}
	p.next() // consume '}'

	return structure.IconValue(structure.Icon{Parts: parts}), nil
}

func (p *parser) parseIconPart() (structure.IconPart, error) {
	if _, err := p.expect(TokenLBrace, "'{'"); err != nil {
		return structure.IconPart{}, err
	}
	fileTok, err := p.expect(TokenString, "mask file")
	if err != nil {
		return structure.IconPart{}, err
	}
	if _, err := p.expect(TokenComma, "','"); err != nil {
		return structure.IconPart{}, err
	}

	color, err := p.parseValue()
	if err != nil {
		return structure.IconPart{}, err
	}
	if color.Type().Tag != structure.TagColor {
		return structure.IconPart{}, fmt.Errorf("icon part color has type %s", color.Type().Tag)
	}
	if _, err := p.expect(TokenComma, "','"); err != nil {
		return structure.IconPart{}, err
	}

	offset, err := p.parseValue()
	if err != nil {
		return structure.IconPart{}, err
	}
	if offset.Type().Tag != structure.TagPoint {
		return structure.IconPart{}, fmt.Errorf("icon part offset has type %s", offset.Type().Tag)
	}
	if _, err := p.expect(TokenRBrace, "'}'"); err != nil {
		return structure.IconPart{}, err
	}

	return structure.IconPart{
		Filename: fileTok.Literal,
		Color:    color,
		Offset:   offset,
	}, nil
}

func (p *parser) parseStructValue(typeName string) (structure.Value, error) {
	shape, ok := p.module.FindStruct(structure.FullName{typeName})
	if !ok {
		return structure.Value{}, fmt.Errorf("%w: %q", styerrors.ErrStructNotFound, typeName)
	}
	p.next() // consume '{'

	assigned := map[string]structure.Value{}
	for p.tok.Type != TokenRBrace {
		fieldTok, err := p.expect(TokenIdent, "field name")
		if err != nil {
			return structure.Value{}, err
		}
		if _, err := p.expect(TokenColon, "':'"); err != nil {
			return structure.Value{}, err
		}
		value, err := p.parseValue()
		if err != nil {
			return structure.Value{}, err
		}
		if p.tok.Type == TokenSemicolon {
			p.next()
		}
		if _, dup := assigned[fieldTok.Literal]; dup {
			return structure.Value{}, fmt.Errorf("duplicate field %q", fieldTok.Literal)
		}
		assigned[fieldTok.Literal] = value
	}
	p.next() // consume '}'

	fields := make([]structure.FieldValue, 0, len(shape.Fields))
	for _, field := range shape.Fields {
		value, ok := assigned[field.Name.Back()]
		if !ok {
			return structure.Value{}, fmt.Errorf("%s.%s is not assigned", typeName, field.Name.Back())
		}
		if value.Type().Tag != field.Type.Tag {
			return structure.Value{}, fmt.Errorf("%s.%s has type %s, want %s",
				typeName, field.Name.Back(), value.Type().Tag, field.Type.Tag)
		}
		delete(assigned, field.Name.Back())
		fields = append(fields, structure.FieldValue{
			Field:    field,
			Variable: structure.Variable{Name: field.Name, Value: value},
		})
	}
	if len(assigned) != 0 {
		for name := range assigned {
			return structure.Value{}, fmt.Errorf("%s has no field %q", typeName, name)
		}
	}

	return structure.StructValue(structure.FullName{typeName}, fields), nil
}
