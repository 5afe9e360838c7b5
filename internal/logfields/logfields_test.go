package logfields

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelperKeys(t *testing.T) {
	cases := []struct {
		name string
		key  string
		got  string
	}{
		{"RunID", KeyRunID, RunID("abc").Key},
		{"Mode", KeyMode, Mode("focus").Key},
		{"NextMode", KeyNextMode, NextMode("long_break").Key},
		{"Remaining", KeyRemaining, Remaining(10).Key},
		{"Tally", KeyTally, Tally(4).Key},
		{"Running", KeyRunning, Running(true).Key},
		{"Source", KeySource, Source("model").Key},
		{"Addr", KeyAddr, Addr(":9090").Key},
		{"Path", KeyPath, Path("/tmp/x").Key},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.key, c.got)
		})
	}
}

func TestErrorAttr(t *testing.T) {
	assert.Equal(t, "", Error(nil).Value.String())
	assert.Equal(t, "boom", Error(errors.New("boom")).Value.String())
}
