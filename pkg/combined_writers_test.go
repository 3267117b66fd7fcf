package pkg

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (fw *failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("writer broken")
}

func TestCombinedWriter_Write(t *testing.T) {
	first := &strings.Builder{}
	second := &strings.Builder{}
	first.WriteString("prefix|")

	cw := NewCombinedWriter(first, second)
	require.NotNil(t, cw)

	n, err := cw.Write([]byte("one"))
	require.NoError(t, err)
	assert.Equal(t, 2*len("one"), n)
	n, err = cw.Write([]byte("two"))
	require.NoError(t, err)
	assert.Equal(t, 2*len("two"), n)

	assert.Equal(t, "prefix|onetwo", first.String())
	assert.Equal(t, "onetwo", second.String())
}

func TestCombinedWriter_Write_FailingWriterDoesNotStopOthers(t *testing.T) {
	sb := &strings.Builder{}
	cw := NewCombinedWriter(&failingWriter{}, sb)

	n, err := cw.Write([]byte("a message"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writer broken")

	assert.Equal(t, len("a message"), n)
	assert.Equal(t, "a message", sb.String())
}
