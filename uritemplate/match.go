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
	"github.com/jplu/websyntax/internal/combinator"
	"github.com/jplu/websyntax/internal/pct"
)

// Match is Render's inverse: it parses a concrete string against t,
// extracting the UriTemplateData binding that (some call to) Render
// would have needed to produce it. Each template part builds its own
// sub-parser; an Expression's sub-parser is built dynamically from its
// (operator, modifier) pairs, choosing the operator's charset (reserved
// vs unreserved) and, for an exploded variable, trying the Keys shape
// before falling back to List.
//
// RFC 6570 itself is not uniquely invertible in general: an exploded
// multi-variable expression sharing one separator among its variables'
// items, or a non-exploded variable bound to an even-length comma list,
// cannot be told apart from a single string without more context. This
// Match handles the common, well-defined shapes (single-variable
// expressions, and multi-variable expressions where every variable is
// present) rather than attempting an exhaustive disambiguation search;
// variables that Render would have omitted entirely cannot be recovered.
func (t UriTemplate) Match(s string) (UriTemplateData, error) {
	in := combinator.NewInput(s)
	data := UriTemplateData{}

	for _, part := range t.Parts {
		switch p := part.(type) {
		case Literal:
			if _, err := combinator.Literal(pct.Encode(string(p), isLiteralByte))(in); err != nil {
				return nil, err
			}
		case Expression:
			exprData, err := matchExpression(in, p)
			if err != nil {
				return nil, err
			}
			data = data.Merge(exprData)
		}
	}

	if !in.EOF() {
		return nil, combinator.ErrTrailingInput(in)
	}
	return data, nil
}

func matchExpression(in *combinator.Input, e Expression) (UriTemplateData, error) {
	rule, ok := expansionRules[e.Operator]
	if !ok {
		return UriTemplateData{}, nil
	}

	mark := in.Mark()
	if rule.prefix != "" {
		if _, err := combinator.Literal(rule.prefix)(in); err != nil {
			in.Reset(mark)
			return UriTemplateData{}, nil
		}
	}

	parsers := make([]combinator.Parser[binding], len(e.Variables))
	for i, v := range e.Variables {
		v := v
		parsers[i] = func(in *combinator.Input) (binding, error) {
			val, err := matchVariableValue(in, v, rule)
			if err != nil {
				return binding{}, err
			}
			return binding{name: v.Name, value: val}, nil
		}
	}
	bound, err := combinator.MultiSepBy(parsers, combinator.Literal(rule.sep))(in)
	if err != nil {
		return nil, err
	}

	data := make(UriTemplateData, len(bound))
	for _, b := range bound {
		data[b.name] = b.value
	}
	return data, nil
}

// binding pairs a variable name with the value its sub-parser extracted.
type binding struct {
	name  string
	value Value
}

func matchVariableValue(in *combinator.Input, v VariableSpec, rule expansionRule) (Value, error) {
	charset := isUnreserved
	if rule.allowReserved {
		charset = isUnreservedOrReserved
	}

	if v.Modifier != nil && v.Modifier.Kind == ModifierKindExplode {
		if kvs, ok := tryMatchKeysExplode(in, charset, rule.sep); ok {
			return KeysValue(kvs), nil
		}
		items, ok := matchListExplodeItems(in, charset, rule, v.Name)
		if !ok {
			return Value{}, combinator.Fail(in, "could not match exploded value for %q", v.Name)
		}
		return ListValue(items), nil
	}

	if rule.named {
		mark := in.Mark()
		if _, err := combinator.Literal(v.Name + "=")(in); err == nil {
			return matchPlainValue(in, charset, rule)
		}
		in.Reset(mark)
		if rule.omitEqualsOnEmpty {
			if _, err := combinator.Literal(v.Name)(in); err == nil {
				return AtomValue(""), nil
			}
		}
		return Value{}, combinator.Fail(in, "expected %q", v.Name+"=")
	}

	return matchPlainValue(in, charset, rule)
}

// matchPlainValue matches a value with no modifier: a run of charset
// bytes, stopping at the expression's separator. A literal "," inside
// that run is interpreted as the boundary of a non-exploded List; a run
// with no "," is an Atom. Non-exploded Keys ("k1,v1,k2,...") are not
// distinguished from a plain List of the same shape by this heuristic,
// a limitation of reverse matching, not of rendering.
func matchPlainValue(in *combinator.Input, charset pct.Predicate, rule expansionRule) (Value, error) {
	items, ok := matchCommaList(in, stopAt(charset, rule.sep[0]))
	if !ok {
		return Value{}, combinator.Fail(in, "expected a value")
	}
	if len(items) == 1 {
		return AtomValue(items[0]), nil
	}
	return ListValue(items), nil
}

// matchCommaList consumes one or more charset-bounded runs separated by
// literal ",".
func matchCommaList(in *combinator.Input, charset pct.Predicate) ([]string, bool) {
	mark := in.Mark()
	first, err := pct.Parser(charset)(in)
	if err != nil {
		in.Reset(mark)
		return nil, false
	}
	items := []string{first}
	for {
		sepMark := in.Mark()
		if _, err := combinator.Byte(',')(in); err != nil {
			in.Reset(sepMark)
			break
		}
		item, err := pct.Parser(charset)(in)
		if err != nil {
			in.Reset(sepMark)
			break
		}
		items = append(items, item)
	}
	return items, true
}

// matchListExplodeItems matches a List value rendered with the Explode
// modifier: items separated by rule.sep, each "name=" prefixed under a
// named operator (exploded lists repeat "name=v" per item when named).
func matchListExplodeItems(in *combinator.Input, charset pct.Predicate, rule expansionRule, name string) ([]string, bool) {
	mark := in.Mark()
	var items []string
	for {
		itemMark := in.Mark()
		if rule.named {
			if _, err := combinator.Literal(name + "=")(in); err != nil {
				in.Reset(itemMark)
				break
			}
		}
		v, err := pct.Parser(stopAt(charset, rule.sep[0]))(in)
		if err != nil {
			in.Reset(itemMark)
			break
		}
		items = append(items, v)

		sepMark := in.Mark()
		if _, err := combinator.Literal(rule.sep)(in); err != nil {
			in.Reset(sepMark)
			break
		}
	}
	if len(items) == 0 {
		in.Reset(mark)
		return nil, false
	}
	return items, true
}

// tryMatchKeysExplode attempts to match a Keys value rendered with the
// Explode modifier: "k1=v1<sep>k2=v2...", with no "name=" prefix at all
// (the variable name is shadowed by each pair's key).
func tryMatchKeysExplode(in *combinator.Input, charset pct.Predicate, sep string) ([]KeyValue, bool) {
	mark := in.Mark()
	var kvs []KeyValue
	for {
		itemMark := in.Mark()
		key, err := pct.Parser1(stopAt(charset, sep[0], '='))(in)
		if err != nil {
			in.Reset(itemMark)
			break
		}
		if _, err := combinator.Byte('=')(in); err != nil {
			in.Reset(itemMark)
			break
		}
		val, err := pct.Parser(stopAt(charset, sep[0]))(in)
		if err != nil {
			in.Reset(itemMark)
			break
		}
		kvs = append(kvs, KeyValue{Key: key, Value: val})

		sepMark := in.Mark()
		if _, err := combinator.Literal(sep)(in); err != nil {
			in.Reset(sepMark)
			break
		}
	}
	if len(kvs) == 0 {
		in.Reset(mark)
		return nil, false
	}
	return kvs, true
}
