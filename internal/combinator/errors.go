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

package combinator

import "fmt"

// ParseError is the single error kind produced by every grammar package
// built on this substrate: it carries a human-readable message and the
// byte offset into the original input where the failure was detected.
// It is returned by Parse and wrapped as a value by TryParse.
type ParseError struct {
	Message string
	Offset  int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (at offset %d)", e.Message, e.Offset)
}

// Fail builds a *ParseError anchored at in's current cursor position.
func Fail(in *Input, format string, args ...any) error {
	return &ParseError{Message: fmt.Sprintf(format, args...), Offset: in.pos}
}

// ErrTrailingInput is returned by Run when a parser succeeds but does not
// consume the entire input.
func ErrTrailingInput(in *Input) error {
	return &ParseError{Message: fmt.Sprintf("unexpected trailing input %q", in.Remaining()), Offset: in.pos}
}
