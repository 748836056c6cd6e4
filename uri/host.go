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

package uri

import (
	"net/netip"
	"strings"

	"github.com/jplu/websyntax/internal/combinator"
	"github.com/jplu/websyntax/internal/pct"
)

// hostParser is the ordered choice "[ IPv6 ]", then IPv4, then RegName.
// IPv4 and IPv6 candidates are validated by actually parsing them as
// addresses of the claimed family via net/netip; on failure the
// alternative is rejected, letting a numerically-shaped name such as
// "1.2.3.4.5" fall through to RegName. The RFC's fallback discipline is
// observable, so the alternatives are kept separate rather than folded
// into a single combined pattern.
func hostParser(in *combinator.Input) (Host, error) {
	return combinator.Choice(ipv6HostParser, ipv4HostParser, regNameHostParser)(in)
}

func ipv6HostParser(in *combinator.Input) (Host, error) {
	mark := in.Mark()
	if _, err := combinator.Byte('[')(in); err != nil {
		return Host{}, err
	}
	var b strings.Builder
	for {
		c, ok := in.Next()
		if !ok {
			in.Reset(mark)
			return Host{}, combinator.Fail(in, "unterminated IPv6 literal")
		}
		if c == ']' {
			addr, err := netip.ParseAddr(b.String())
			if err != nil || !addr.Is6() {
				in.Reset(mark)
				return Host{}, combinator.Fail(in, "invalid IPv6 address %q", b.String())
			}
			return NewHostIPv6(addr), nil
		}
		b.WriteByte(c)
	}
}

func ipv4HostParser(in *combinator.Input) (Host, error) {
	mark := in.Mark()
	var b strings.Builder
	for {
		c, ok := in.Peek()
		if !ok || !(combinator.IsDigit(c) || c == '.') {
			break
		}
		b.WriteByte(c)
		in.Next()
	}
	addr, err := netip.ParseAddr(b.String())
	if err != nil || !addr.Is4() {
		in.Reset(mark)
		return Host{}, combinator.Fail(in, "invalid IPv4 address %q", b.String())
	}
	return NewHostIPv4(addr), nil
}

func regNameHostParser(in *combinator.Input) (Host, error) {
	decoded, err := pct.Parser(isRegNameChar)(in)
	if err != nil {
		return Host{}, err
	}
	return NewHostName(RegName(decoded)), nil
}

// ParseHost parses s as a complete host (IPv4, IPv6 literal, or
// registered name).
func ParseHost(s string) (Host, error) {
	return combinator.Run(hostParser, s)
}

// TryParseHost is the panic-free form of ParseHost.
func TryParseHost(s string) (Host, bool) {
	v, err := ParseHost(s)
	return v, err == nil
}

// Format renders the host in its canonical textual form: an IPv6 address
// enclosed in square brackets, an IPv4 address bare, and a registered
// name percent-re-encoded.
func (h Host) Format() string {
	switch h.kind {
	case HostKindIPv4:
		return h.addr.String()
	case HostKindIPv6:
		return "[" + h.addr.String() + "]"
	default:
		return pct.Encode(string(h.name), isRegNameChar)
	}
}
