package cli

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnbufferedReader_ReadString(t *testing.T) {
	src := strings.NewReader("0 0\nc\nrest")
	r := newUnbufferedReader(src)

	line, err := r.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "0 0\n", line)
	assert.Equal(t, len("c\nrest"), src.Len(), "read past the newline")

	line, err = r.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "c\n", line)

	line, err = r.ReadString('\n')
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "rest", line)
}

func TestSession_StartSharedInputLeavesRest(t *testing.T) {
	src := strings.NewReader("0 0\nq\nkeys for the viewer")
	s, _, _ := newTestSession(t, WithInput(src), WithSharedInput(true))

	s.Start(context.Background())

	assert.Len(t, s.Points(), 1)
	assert.Equal(t, len("keys for the viewer"), src.Len())
}
