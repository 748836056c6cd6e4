/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uritemplate

import (
	"strconv"
	"strings"

	"github.com/jplu/websyntax/internal/combinator"
	"github.com/jplu/websyntax/internal/pct"
)

// variableNameParser matches a dot-separated run of varchar groups
// (RFC 6570 §2.3's varname), each group decoded through the shared
// percent-encoding codec.
func variableNameParser(in *combinator.Input) (string, error) {
	first, err := pct.Parser1(isVarChar)(in)
	if err != nil {
		return "", err
	}
	segments := []string{first}
	for {
		mark := in.Mark()
		if _, err := combinator.Byte('.')(in); err != nil {
			in.Reset(mark)
			break
		}
		seg, err := pct.Parser1(isVarChar)(in)
		if err != nil {
			in.Reset(mark)
			break
		}
		segments = append(segments, seg)
	}
	return strings.Join(segments, "."), nil
}

// modifierParser matches an optional ":" 1*4DIGIT (Prefix) or "*"
// (Explode) suffix.
func modifierParser(in *combinator.Input) *Modifier {
	mark := in.Mark()
	if _, err := combinator.Byte('*')(in); err == nil {
		return &Modifier{Kind: ModifierKindExplode}
	}
	in.Reset(mark)

	if _, err := combinator.Byte(':')(in); err != nil {
		in.Reset(mark)
		return nil
	}
	var b strings.Builder
	for b.Len() < 4 {
		c, ok := in.Peek()
		if !ok || !combinator.IsDigit(c) {
			break
		}
		b.WriteByte(c)
		in.Next()
	}
	if b.Len() == 0 {
		in.Reset(mark)
		return nil
	}
	n, _ := strconv.Atoi(b.String())
	return &Modifier{Kind: ModifierKindPrefix, PrefixLength: n}
}

func variableSpecParser(in *combinator.Input) (VariableSpec, error) {
	name, err := variableNameParser(in)
	if err != nil {
		return VariableSpec{}, err
	}
	return VariableSpec{Name: name, Modifier: modifierParser(in)}, nil
}

func expressionParser(in *combinator.Input) (Expression, error) {
	if _, err := combinator.Byte('{')(in); err != nil {
		return Expression{}, err
	}

	var op Operator
	if c, ok := in.Peek(); ok && isOperatorByte(c) {
		op = Operator(c)
		in.Next()
	}

	vars, err := combinator.SepBy1[VariableSpec, byte](variableSpecParser, combinator.Byte(','))(in)
	if err != nil {
		return Expression{}, err
	}

	if _, err := combinator.Byte('}')(in); err != nil {
		return Expression{}, err
	}

	return Expression{Operator: op, Variables: vars}, nil
}

func literalPartParser(in *combinator.Input) (Part, error) {
	s, err := pct.Parser1(isLiteralByte)(in)
	if err != nil {
		return nil, err
	}
	return Literal(s), nil
}

func expressionPartParser(in *combinator.Input) (Part, error) {
	e, err := expressionParser(in)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func partParser(in *combinator.Input) (Part, error) {
	return combinator.Choice(expressionPartParser, literalPartParser)(in)
}

func templateParser(in *combinator.Input) (UriTemplate, error) {
	parts, err := combinator.Many1(partParser)(in)
	if err != nil {
		return UriTemplate{}, err
	}
	return UriTemplate{Parts: parts}, nil
}

// Parse parses s as a complete URI Template.
func Parse(s string) (UriTemplate, error) {
	return combinator.Run(templateParser, s)
}

// TryParse is the panic-free form of Parse.
func TryParse(s string) (UriTemplate, bool) {
	v, err := Parse(s)
	return v, err == nil
}

func formatVariableName(name string) string {
	segments := strings.Split(name, ".")
	for i, seg := range segments {
		segments[i] = pct.Encode(seg, isVarChar)
	}
	return strings.Join(segments, ".")
}

func formatModifier(m *Modifier) string {
	if m == nil {
		return ""
	}
	switch m.Kind {
	case ModifierKindExplode:
		return "*"
	case ModifierKindPrefix:
		return ":" + strconv.Itoa(m.PrefixLength)
	default:
		return ""
	}
}

func formatVariableSpec(v VariableSpec) string {
	return formatVariableName(v.Name) + formatModifier(v.Modifier)
}

func formatExpression(e Expression) string {
	var b strings.Builder
	b.WriteByte('{')
	b.WriteString(e.Operator.Format())
	for i, v := range e.Variables {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(formatVariableSpec(v))
	}
	b.WriteByte('}')
	return b.String()
}

// Format renders the template in its canonical textual form.
func (t UriTemplate) Format() string {
	var b strings.Builder
	for _, part := range t.Parts {
		switch p := part.(type) {
		case Literal:
			b.WriteString(pct.Encode(string(p), isLiteralByte))
		case Expression:
			b.WriteString(formatExpression(p))
		}
	}
	return b.String()
}
