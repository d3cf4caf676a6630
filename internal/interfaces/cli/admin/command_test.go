package admin

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_FromStdin(t *testing.T) {
	cmd := newHashPasswordCommand()
	out := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader("s3cret-pass\n"))
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--cost", "4"})

	require.NoError(t, cmd.Execute())

	hash := strings.TrimSpace(out.String())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret-pass")))
}

func TestHashPassword_RejectsEmpty(t *testing.T) {
	cmd := newHashPasswordCommand()
	cmd.SetIn(strings.NewReader("\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	assert.Error(t, cmd.Execute())
}
