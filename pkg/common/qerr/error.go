// Copyright 2026 The Quiver Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package qerr

import (
	"context"
	"fmt"
)

// Error codes. Grouped the same way the engine groups failures:
// internal, typing, evaluation, and state errors. Codes are stable,
// messages are not.
const (
	// Group 1: internal errors
	ErrInternal uint16 = 20101
	ErrNYI      uint16 = 20102

	// Group 2: typing and input
	ErrType         uint16 = 20200
	ErrInvalidInput uint16 = 20201
	ErrBadConfig    uint16 = 20202

	// Group 3: execution
	ErrEval          uint16 = 20300
	ErrSerialization uint16 = 20301

	// Group 4: unexpected state
	ErrInvalidState uint16 = 20400
)

var errNames = map[uint16]string{
	ErrInternal:      "internal error",
	ErrNYI:           "not yet implemented",
	ErrType:          "type error",
	ErrInvalidInput:  "invalid input",
	ErrBadConfig:     "invalid configuration",
	ErrEval:          "eval error",
	ErrSerialization: "serialization error",
	ErrInvalidState:  "invalid state",
}

// Error is the coded error type used across the engine. It carries a
// stable error code so that call sites can branch on failure class
// without parsing messages.
type Error struct {
	code    uint16
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) ErrorCode() uint16 {
	return e.code
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.code == e.code
}

func newError(_ context.Context, code uint16, format string, args ...any) *Error {
	var msg string
	if len(args) == 0 {
		msg = format
	} else {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{
		code:    code,
		message: fmt.Sprintf("%s: %s", errNames[code], msg),
	}
}

func NewInternal(ctx context.Context, format string, args ...any) *Error {
	return newError(ctx, ErrInternal, format, args...)
}

func NewNYI(ctx context.Context, format string, args ...any) *Error {
	return newError(ctx, ErrNYI, format, args...)
}

func NewType(ctx context.Context, format string, args ...any) *Error {
	return newError(ctx, ErrType, format, args...)
}

func NewInvalidInput(ctx context.Context, format string, args ...any) *Error {
	return newError(ctx, ErrInvalidInput, format, args...)
}

func NewBadConfig(ctx context.Context, format string, args ...any) *Error {
	return newError(ctx, ErrBadConfig, format, args...)
}

func NewEval(ctx context.Context, format string, args ...any) *Error {
	return newError(ctx, ErrEval, format, args...)
}

func NewSerialization(ctx context.Context, format string, args ...any) *Error {
	return newError(ctx, ErrSerialization, format, args...)
}

func NewInvalidState(ctx context.Context, format string, args ...any) *Error {
	return newError(ctx, ErrInvalidState, format, args...)
}

// IsErrCode reports whether err is a quiver error carrying the given code.
func IsErrCode(err error, code uint16) bool {
	if err == nil {
		return false
	}
	e, ok := err.(*Error)
	return ok && e.code == code
}
