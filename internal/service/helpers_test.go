// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/neo-f/go-blog/internal/config"
	"github.com/neo-f/go-blog/internal/hashid"
	"github.com/neo-f/go-blog/internal/logger"
	"github.com/neo-f/go-blog/internal/workers"
)

func newTestExecutor(t *testing.T) *workers.Executor {
	t.Helper()
	ex := workers.NewExecutor(config.Workers{Executors: 2, MailboxCapacity: 8, AskTimeout: time.Second}, logger.Nop())
	ex.Run()
	t.Cleanup(ex.Stop)
	return ex
}

func newTestEncoder(t *testing.T) *hashid.Encoder {
	t.Helper()
	enc, err := hashid.NewEncoder("test salt", "", 6)
	require.NoError(t, err)
	return enc
}
