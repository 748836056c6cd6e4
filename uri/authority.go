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
	"strconv"
	"strings"

	"github.com/jplu/websyntax/internal/combinator"
	"github.com/jplu/websyntax/internal/pct"
)

// userInfoParser matches the decoded userinfo subcomponent. It does not
// consume the trailing "@"; that is authorityParser's job, since
// userinfo is only present when an "@" actually follows.
func userInfoParser(in *combinator.Input) (UserInfo, error) {
	decoded, err := pct.Parser(isUserinfoChar)(in)
	if err != nil {
		return "", err
	}
	return UserInfo(decoded), nil
}

// portParser matches 1*DIGIT following a ":".
func portParser(in *combinator.Input) (Port, error) {
	var b strings.Builder
	for {
		c, ok := in.Peek()
		if !ok || !combinator.IsDigit(c) {
			break
		}
		b.WriteByte(c)
		in.Next()
	}
	if b.Len() == 0 {
		return 0, combinator.Fail(in, "port must have at least one digit")
	}
	n, err := strconv.ParseUint(b.String(), 10, 32)
	if err != nil {
		return 0, combinator.Fail(in, "port %q out of range", b.String())
	}
	return Port(n), nil
}

// authorityParser matches [ userinfo "@" ] host [ ":" port ]. The
// userinfo alternative is tried with backtracking: the "@" terminator is
// the only disambiguator, so the parser consumes a candidate userinfo
// and falls back to parsing the same bytes as a host if no "@" follows.
func authorityParser(in *combinator.Input) (Authority, error) {
	userInfo := tryParseUserInfoPrefix(in)

	host, err := hostParser(in)
	if err != nil {
		return Authority{}, err
	}

	var port *Port
	mark := in.Mark()
	if _, err := combinator.Byte(':')(in); err == nil {
		p, err := portParser(in)
		if err != nil {
			in.Reset(mark)
		} else {
			port = &p
		}
	} else {
		in.Reset(mark)
	}

	return Authority{Host: host, Port: port, UserInfo: userInfo}, nil
}

func tryParseUserInfoPrefix(in *combinator.Input) *UserInfo {
	mark := in.Mark()
	ui, err := userInfoParser(in)
	if err != nil {
		in.Reset(mark)
		return nil
	}
	if _, err := combinator.Byte('@')(in); err != nil {
		in.Reset(mark)
		return nil
	}
	return &ui
}

// ParseAuthority parses s as a complete authority.
func ParseAuthority(s string) (Authority, error) {
	return combinator.Run(authorityParser, s)
}

// TryParseAuthority is the panic-free form of ParseAuthority.
func TryParseAuthority(s string) (Authority, bool) {
	v, err := ParseAuthority(s)
	return v, err == nil
}

// Format renders the authority in RFC 3986 textual order: userinfo,
// host, port. This differs from the struct's own field order.
func (a Authority) Format() string {
	var b strings.Builder
	if a.UserInfo != nil {
		b.WriteString(pct.Encode(string(*a.UserInfo), isUserinfoChar))
		b.WriteByte('@')
	}
	b.WriteString(a.Host.Format())
	if a.Port != nil {
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(uint64(*a.Port), 10))
	}
	return b.String()
}
