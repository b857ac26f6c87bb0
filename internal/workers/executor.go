// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/neo-f/go-blog/internal/config"
	"github.com/neo-f/go-blog/internal/logger"
)

type reply struct {
	val any
	err error
}

type envelope struct {
	ctx   context.Context
	job   func(context.Context) (any, error)
	reply chan reply
}

// Executor is a bounded mailbox drained by a fixed number of goroutines.
// Jobs are submitted with [Ask].
type Executor struct {
	mailbox    chan envelope
	size       int
	askTimeout time.Duration

	mu      sync.RWMutex
	started bool
	closed  bool
	quit    chan struct{}
	wg      sync.WaitGroup

	logger *logger.Logger
}

// NewExecutor creates a stopped executor. Call Run to start its goroutines.
func NewExecutor(cfg config.Workers, log *logger.Logger) *Executor {
	size := cfg.Executors
	if size < 1 {
		size = 1
	}
	l := log.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("component", "executor")
	})

	return &Executor{
		mailbox:    make(chan envelope, cfg.MailboxCapacity),
		size:       size,
		askTimeout: cfg.AskTimeout,
		quit:       make(chan struct{}),
		logger:     l,
	}
}

// Run starts the executor goroutines.
func (e *Executor) Run() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started || e.closed {
		return
	}
	e.started = true

	for i := 0; i < e.size; i++ {
		e.wg.Add(1)
		go e.loop(i)
	}
	e.logger.Info().Str("func", "Executor.Run").Int("executors", e.size).Int("capacity", cap(e.mailbox)).Msg("executor started")
}

// Stop closes the mailbox and waits for the goroutines to exit. Callers
// still waiting on a reply receive a [MailboxClosed] error.
func (e *Executor) Stop() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	close(e.quit)
	e.mu.Unlock()

	e.wg.Wait()
	e.logger.Info().Str("func", "Executor.Stop").Msg("executor stopped")
}

func (e *Executor) loop(id int) {
	defer e.wg.Done()
	for {
		select {
		case <-e.quit:
			return
		case env := <-e.mailbox:
			e.handle(id, env)
		}
	}
}

func (e *Executor) handle(id int, env envelope) {
	if env.ctx.Err() != nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().Str("func", "Executor.handle").Int("executor", id).Interface("panic", r).Msg("job panicked")
			env.reply <- reply{err: fmt.Errorf("%w: %v", ErrJobPanicked, r)}
		}
	}()

	val, err := env.job(env.ctx)
	env.reply <- reply{val: val, err: err}
}

func (e *Executor) submit(env envelope) error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		return &MailboxError{Kind: MailboxClosed, Err: ErrMailboxClosed}
	}

	select {
	case e.mailbox <- env:
		return nil
	default:
		return &MailboxError{Kind: MailboxFull, Err: ErrMailboxFull}
	}
}

// Ask submits fn to the executor and waits for its result. Mailbox failures
// are returned as [*MailboxError]; the error returned by fn is passed
// through unchanged.
func Ask[T any](ctx context.Context, e *Executor, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	if e.askTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.askTimeout)
		defer cancel()
	}

	env := envelope{
		ctx: ctx,
		job: func(ctx context.Context) (any, error) {
			return fn(ctx)
		},
		reply: make(chan reply, 1),
	}
	if err := e.submit(env); err != nil {
		return zero, err
	}

	select {
	case r := <-env.reply:
		if r.err != nil {
			return zero, r.err
		}
		v, _ := r.val.(T)
		return v, nil
	case <-ctx.Done():
		return zero, &MailboxError{Kind: MailboxTimeout, Err: ctx.Err()}
	case <-e.quit:
		return zero, &MailboxError{Kind: MailboxClosed, Err: ErrMailboxClosed}
	}
}

// Do is [Ask] for jobs that return only an error.
func Do(ctx context.Context, e *Executor, fn func(context.Context) error) error {
	_, err := Ask(ctx, e, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}
