package main

import (
	"errors"
	"testing"

	worktech "github.com/fekuna/worktech-api"
	"github.com/fekuna/worktech-api/config"
	"github.com/fekuna/worktech-api/internal/dbtest"
	"github.com/fekuna/worktech-api/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestRun_ExitCodes(t *testing.T) {
	db := dbtest.NewDB(t)
	opened := 0
	open := func(*config.Config, logger.ZapLogger) (*worktech.Client, error) {
		opened++
		return worktech.New(db, nil), nil
	}

	assert.Equal(t, 2, run(nil, open))
	assert.Equal(t, 2, run([]string{"-nosuchflag"}, open))
	assert.Equal(t, 0, opened)

	assert.Equal(t, 1, run([]string{"bogus"}, open))
	assert.Equal(t, 1, run([]string{"job"}, open))
	assert.Equal(t, 1, run([]string{"workorder", "WO-1"}, open))
	assert.Equal(t, 3, opened)

	// Every failed command released its connection on the way out.
	assert.Equal(t, 0, db.Stats().InUse)
}

func TestRun_OpenFailure(t *testing.T) {
	open := func(*config.Config, logger.ZapLogger) (*worktech.Client, error) {
		return nil, errors.New("connection refused")
	}

	assert.Equal(t, 1, run([]string{"workorder", "WO-1"}, open))
}
