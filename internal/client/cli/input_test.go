package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  123456 \n"), "Número da carteirinha", &out)
	if err != nil || got != "123456" {
		t.Fatalf("got %q, err=%v", got, err)
	}
	assert.Equal(t, "Número da carteirinha\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.ErrorIs(t, err, io.EOF)
}

func stubTerminal(t *testing.T, tty bool, pw []byte, pwErr error) {
	t.Helper()
	origTTY, origRead := isTerminal, readPassword
	isTerminal = func(int) bool { return tty }
	readPassword = func(int) ([]byte, error) { return pw, pwErr }
	t.Cleanup(func() {
		isTerminal = origTTY
		readPassword = origRead
	})
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, []byte("secret1"), nil)

	var out bytes.Buffer
	pw, err := GetPassword(rdr("ignored\n"), "Senha: ", &out)
	require.NoError(t, err)
	assert.Equal(t, "secret1", string(pw))
	assert.Equal(t, "Senha: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	stubTerminal(t, true, nil, errors.New("boom"))

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), "Senha: ", &out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetPassword_PipedInputReadsLine(t *testing.T) {
	stubTerminal(t, false, nil, errors.New("must not be called"))

	var out bytes.Buffer
	r := rdr("secret1\r\nnext\n")
	pw, err := GetPassword(r, "Senha: ", &out)
	require.NoError(t, err)
	assert.Equal(t, "secret1", string(pw))

	rest, err := readLine(r)
	require.NoError(t, err)
	assert.Equal(t, "next", rest, "only one line is consumed")
}

func TestWipe(t *testing.T) {
	b := []byte("secret")
	wipe(b)
	assert.Equal(t, make([]byte, 6), b)
}
