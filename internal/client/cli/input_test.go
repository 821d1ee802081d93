package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  hello world  \n"))

	s, err := GetSimpleText(r, "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", s)
	assert.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("partial"))

	s, err := GetSimpleText(r, "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "partial", s)
}

func TestGetOptionalText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("\nvalue\n"))

	got, err := GetOptionalText(r, "First", &out)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = GetOptionalText(r, "Second", &out)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "value", *got)
}

func TestGetInt(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("42\nnope\n"))

	n, err := GetInt(r, "Number", &out)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = GetInt(r, "Number", &out)
	assert.Error(t, err)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Contains(t, out.String(), "Enter password")
}
