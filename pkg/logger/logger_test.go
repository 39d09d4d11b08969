package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_defaultLogger_WithPrefix(t *testing.T) {
	orig := log.Writer()
	defer log.SetOutput(orig)

	var buf bytes.Buffer
	log.SetOutput(&buf)

	l := NewLogger(INFO).WithPrefix("GET /getTally")
	l.Infof("%d", 0)
	require.Contains(t, buf.String(), "GET /getTally | 0")

	// Below-level lines are dropped, prefixed or not.
	buf.Reset()
	l.Debugf("%d", 0)
	require.Empty(t, buf.String())
}
