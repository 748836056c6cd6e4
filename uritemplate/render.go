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
	"strings"

	"github.com/jplu/websyntax/internal/pct"
)

// Render expands t against data, producing a concrete string.
// Unbound variables, and variables bound to an empty List or
// empty Keys, are filtered out of their expression; an expression all of
// whose variables are filtered contributes nothing, including its
// prefix.
func (t UriTemplate) Render(data UriTemplateData) string {
	var b strings.Builder
	for _, part := range t.Parts {
		switch p := part.(type) {
		case Literal:
			b.WriteString(pct.Encode(string(p), isLiteralByte))
		case Expression:
			b.WriteString(renderExpression(p, data))
		}
	}
	return b.String()
}

func renderExpression(e Expression, data UriTemplateData) string {
	rule, ok := expansionRules[e.Operator]
	if !ok {
		return ""
	}

	var items []string
	for _, v := range e.Variables {
		val, present := data[v.Name]
		if !present {
			continue
		}
		rendered, ok := renderVariable(v, val, rule)
		if !ok {
			continue
		}
		items = append(items, rendered)
	}
	if len(items) == 0 {
		return ""
	}
	return rule.prefix + strings.Join(items, rule.sep)
}

func renderVariable(spec VariableSpec, val Value, rule expansionRule) (string, bool) {
	switch val.Kind() {
	case ValueKindAtom:
		return renderAtom(spec, val, rule), true

	case ValueKindList:
		items, _ := val.List()
		if len(items) == 0 {
			return "", false
		}
		return renderList(spec, items, rule), true

	case ValueKindKeys:
		kvs, _ := val.Keys()
		if len(kvs) == 0 {
			return "", false
		}
		return renderKeys(spec, kvs, rule), true

	default:
		return "", false
	}
}

func renderAtom(spec VariableSpec, val Value, rule expansionRule) string {
	a, _ := val.Atom()
	text := a
	if spec.Modifier != nil && spec.Modifier.Kind == ModifierKindPrefix {
		text = prefixRunes(a, spec.Modifier.PrefixLength)
	}
	encoded := encodeValue(text, rule)
	if !rule.named {
		return encoded
	}
	if text == "" && rule.omitEqualsOnEmpty {
		return spec.Name
	}
	return spec.Name + "=" + encoded
}

func renderList(spec VariableSpec, items []string, rule expansionRule) string {
	if spec.Modifier != nil && spec.Modifier.Kind == ModifierKindExplode {
		parts := make([]string, len(items))
		for i, it := range items {
			enc := encodeValue(it, rule)
			if rule.named {
				parts[i] = spec.Name + "=" + enc
			} else {
				parts[i] = enc
			}
		}
		return strings.Join(parts, rule.sep)
	}

	encoded := make([]string, len(items))
	for i, it := range items {
		encoded[i] = encodeValue(it, rule)
	}
	joined := strings.Join(encoded, ",")
	if rule.named {
		return spec.Name + "=" + joined
	}
	return joined
}

// renderKeys renders a Keys value. Exploded, each pair becomes "k=v";
// non-exploded, pairs flatten to "k1,v1,k2,v2,...", optionally prefixed
// by "name=". In the exploded form the variable's own name plays no
// role at all, being shadowed by each pair's key, so unlike renderList,
// rule.named only matters in the non-exploded branch.
func renderKeys(spec VariableSpec, kvs []KeyValue, rule expansionRule) string {
	if spec.Modifier != nil && spec.Modifier.Kind == ModifierKindExplode {
		parts := make([]string, len(kvs))
		for i, kv := range kvs {
			parts[i] = encodeValue(kv.Key, rule) + "=" + encodeValue(kv.Value, rule)
		}
		return strings.Join(parts, rule.sep)
	}

	flat := make([]string, 0, len(kvs)*2)
	for _, kv := range kvs {
		flat = append(flat, encodeValue(kv.Key, rule), encodeValue(kv.Value, rule))
	}
	joined := strings.Join(flat, ",")
	if rule.named {
		return spec.Name + "=" + joined
	}
	return joined
}

func encodeValue(s string, rule expansionRule) string {
	if rule.allowReserved {
		return pct.Encode(s, isUnreservedOrReserved)
	}
	return pct.Encode(s, isUnreserved)
}

func prefixRunes(s string, n int) string {
	runes := []rune(s)
	if n >= len(runes) {
		return s
	}
	return string(runes[:n])
}
