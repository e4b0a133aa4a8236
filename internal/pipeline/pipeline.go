// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pipeline

import (
	"context"
	"runtime/debug"
	"sync"
)

type (
	// Deferred is a computation producing a value or an error.
	Deferred[T any] func(ctx context.Context) (T, error)

	// OnSuccess continues a pipeline with its resolved value.
	OnSuccess[In, Out any] func(ctx context.Context, value In) (Out, error)

	// OnFail continues a pipeline with its failure.
	OnFail[Out any] func(ctx context.Context, err error) (Out, error)
)

// Pipeline is an immutable handle to a deferred computation.
type Pipeline[T any] struct {
	deferred Deferred[T]

	once  sync.Once
	value T
	err   error
}

// Of creates a pipeline from a deferred computation.
func Of[T any](deferred Deferred[T]) *Pipeline[T] {
	return &Pipeline[T]{deferred: deferred}
}

// Resolved creates a pipeline already holding value.
func Resolved[T any](value T) *Pipeline[T] {
	return Of(func(context.Context) (T, error) {
		return value, nil
	})
}

// Failed creates a pipeline already holding err.
func Failed[T any](err error) *Pipeline[T] {
	return Of(func(context.Context) (T, error) {
		var zero T
		return zero, err
	})
}

// Resolve runs the deferred computation on its first call and returns its outcome.
// Later calls, also from other goroutines, return the same outcome. Resolution cannot be
// cancelled, the context only carries request scoped values to the continuations.
func (p *Pipeline[T]) Resolve(ctx context.Context) (T, error) {
	p.once.Do(func() {
		p.value, p.err = settle(ctx, p.deferred)
	})

	return p.value, p.err
}

// Then returns a pipeline running onSuccess with the resolved value or onFail with the
// failure. A nil onSuccess passes the value through, a nil onFail passes the error through.
func (p *Pipeline[T]) Then(onSuccess OnSuccess[T, T], onFail OnFail[T]) *Pipeline[T] {
	if onSuccess == nil {
		onSuccess = func(_ context.Context, value T) (T, error) {
			return value, nil
		}
	}

	return Chain(p, onSuccess, onFail)
}

// Catch returns a pipeline handling only the failure branch of p.
func (p *Pipeline[T]) Catch(onFail OnFail[T]) *Pipeline[T] {
	return p.Then(nil, onFail)
}

// Chain is Then for continuations producing a different type. onSuccess is required.
func Chain[In, Out any](p *Pipeline[In], onSuccess OnSuccess[In, Out], onFail OnFail[Out]) *Pipeline[Out] {
	return Of(func(ctx context.Context) (Out, error) {
		value, err := p.Resolve(ctx)
		if err != nil {
			if onFail == nil {
				var zero Out
				return zero, err
			}

			return onFail(ctx, err)
		}

		return onSuccess(ctx, value)
	})
}

// Bind continues p with a function returning another pipeline, which is awaited in turn.
func Bind[In, Out any](p *Pipeline[In], fn func(ctx context.Context, value In) *Pipeline[Out]) *Pipeline[Out] {
	return Chain(p, func(ctx context.Context, value In) (Out, error) {
		next := fn(ctx, value)
		if next == nil {
			var zero Out
			return zero, nil
		}

		return next.Resolve(ctx)
	}, nil)
}

// settle runs deferred converting a panic into a *PanicError.
func settle[T any](ctx context.Context, deferred Deferred[T]) (value T, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			var zero T
			value = zero
			err = &PanicError{
				Value: recovered,
				Stack: debug.Stack(),
			}
		}
	}()

	if deferred == nil {
		return value, nil
	}

	return deferred(ctx)
}
