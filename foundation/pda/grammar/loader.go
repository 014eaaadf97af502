// File: loader.go
// Title: Grammar File Loading
// Description: Loads grammar definitions from TOML or YAML files into
//              validated grammar tables. Files carry the grammar name,
//              goal symbol, optional lexer keywords, and the rules with
//              their productions in element notation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial grammar file loading

package grammar

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	ckconfig "github.com/msto63/chomsky/foundation/core/config"
	ckerrors "github.com/msto63/chomsky/foundation/core/errors"
	"github.com/msto63/chomsky/foundation/pda/lexer"
	"github.com/msto63/chomsky/foundation/utils/stringx"
)

// grammarFile is the on-disk shape of a grammar definition
type grammarFile struct {
	Name     string     `toml:"name" yaml:"name"`
	Goal     string     `toml:"goal" yaml:"goal"`
	Keywords []string   `toml:"keywords" yaml:"keywords"`
	Rules    []ruleFile `toml:"rules" yaml:"rules"`
}

// ruleFile is one rule entry: a non-terminal name and its productions,
// each production an array of element notation strings
type ruleFile struct {
	Name        string     `toml:"name" yaml:"name"`
	Productions [][]string `toml:"productions" yaml:"productions"`
}

// LoadFile loads a grammar definition from a TOML or YAML file, with
// the format detected from the file extension. A missing name field
// defaults to the file's base name.
func LoadFile(path string) (*Grammar, error) {
	if stringx.IsBlank(path) {
		return nil, ckerrors.ValidationFailed(ckerrors.ModuleGrammar, "path", path, "must not be empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ckerrors.NotFound(ckerrors.ModuleGrammar, "LoadFile", path)
		}
		return nil, ckerrors.Wrap(err, "failed to read grammar file").
			WithCode(ckerrors.CodeConfigError).
			WithOperation("grammar.LoadFile").
			WithDetail("path", path)
	}

	file, err := decode(data, detectFormat(path))
	if err != nil {
		return nil, ckerrors.Wrap(err, "failed to parse grammar file").
			WithCode(ckerrors.CodeGrammarSyntax).
			WithOperation("grammar.LoadFile").
			WithDetail("path", path)
	}

	if stringx.IsBlank(file.Name) {
		base := filepath.Base(path)
		file.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return assemble(file)
}

// LoadString loads a grammar definition from an in-memory source
// string. FormatAuto defaults to TOML.
func LoadString(source string, format ckconfig.Format) (*Grammar, error) {
	if format == ckconfig.FormatAuto {
		format = ckconfig.FormatTOML
	}

	file, err := decode([]byte(source), format)
	if err != nil {
		return nil, ckerrors.Wrap(err, "failed to parse grammar source").
			WithCode(ckerrors.CodeGrammarSyntax).
			WithOperation("grammar.LoadString").
			WithDetail("format", format.String())
	}

	return assemble(file)
}

// detectFormat maps a file extension to a grammar source format
func detectFormat(path string) ckconfig.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ckconfig.FormatYAML
	default:
		return ckconfig.FormatTOML
	}
}

// decode unmarshals grammar file content in the given format
func decode(data []byte, format ckconfig.Format) (grammarFile, error) {
	var file grammarFile

	switch format {
	case ckconfig.FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return grammarFile{}, err
		}
	default:
		if err := toml.Unmarshal(data, &file); err != nil {
			return grammarFile{}, err
		}
	}

	return file, nil
}

// assemble turns a decoded grammar file into a validated grammar table
func assemble(file grammarFile) (*Grammar, error) {
	builder := NewBuilder(file.Name).
		Goal(file.Goal).
		Keywords(file.Keywords...)

	for _, rule := range file.Rules {
		productions := make([]Production, 0, len(rule.Productions))
		for pi, raw := range rule.Productions {
			elements := make([]Element, 0, len(raw))
			for _, notation := range raw {
				elem, err := ParseElement(notation)
				if err != nil {
					return nil, ckerrors.Wrap(err, "invalid element notation").
						WithCode(ckerrors.CodeGrammarSyntax).
						WithOperation("grammar.LoadFile").
						WithDetail("grammar", file.Name).
						WithDetail("rule", rule.Name).
						WithDetail("production", pi)
				}
				elements = append(elements, elem)
			}
			productions = append(productions, Production{Elements: elements})
		}
		builder.Rule(rule.Name, productions...)
	}

	return builder.Build()
}

// ParseElement parses one element notation string: a quoted literal is
// a terminal, a bracketed identifier is an optional, and a bare
// identifier is a non-terminal reference.
func ParseElement(s string) (Element, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Element{}, ckerrors.New("element notation is empty").
			WithCode(ckerrors.CodeGrammarSyntax)
	}

	if len(s) >= 2 {
		last := len(s) - 1
		if (s[0] == '\'' && s[last] == '\'') || (s[0] == '"' && s[last] == '"') {
			lit := s[1:last]
			if lit == "" {
				return Element{}, ckerrors.New("terminal literal is empty").
					WithCode(ckerrors.CodeGrammarSyntax)
			}
			return Terminal(lit), nil
		}

		if s[0] == '[' && s[last] == ']' {
			name := strings.TrimSpace(s[1:last])
			if !lexer.IsValidIdentifier(name) {
				return Element{}, ckerrors.Newf("optional reference %q is not a valid identifier", name).
					WithCode(ckerrors.CodeGrammarSyntax)
			}
			return Optional(name), nil
		}
	}

	if !lexer.IsValidIdentifier(s) {
		return Element{}, ckerrors.Newf("element %q is neither a quoted terminal, a bracketed optional, nor a valid non-terminal", s).
			WithCode(ckerrors.CodeGrammarSyntax)
	}

	return NonTerminal(s), nil
}
