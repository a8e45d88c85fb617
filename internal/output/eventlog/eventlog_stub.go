//go:build !windows

package eventlog

import (
	"context"

	"github.com/seralba/devsink/internal/model"
)

// Output is only available on Windows.
type Output struct{}

// New returns ErrNotSupported on non-Windows platforms.
func New(source string) (*Output, error) {
	return nil, ErrNotSupported
}

func (o *Output) Write(context.Context, model.Message) error { return ErrNotSupported }
func (o *Output) Close() error                               { return nil }
