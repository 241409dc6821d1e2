/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package bootstrapper

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	for _, name := range Names {
		for _, input := range []string{name, strings.ToLower(name), strings.ToUpper(name)} {
			got, err := Canonicalize(input)
			require.NoError(t, err, input)
			assert.Equal(t, name, got)
		}
	}

	got, err := Canonicalize("")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	for _, input := range []string{"bloxstrap2", " Sober", "roblox", "strap"} {
		_, err := Canonicalize(input)
		assert.True(t, errors.Is(err, ErrUnknownBootstrapper), input)
	}
}

func TestDefault(t *testing.T) {
	assert.Equal(t, Sober, Default("linux"))
	assert.Equal(t, "", Default("windows"))
	assert.Equal(t, "", Default("darwin"))
}

func TestEnvJoin(t *testing.T) {
	win := Env{GOOS: "windows"}
	assert.Equal(t, `C:\Users\X\a\b`, win.join(`C:\Users\X\`, "a", `\b\`))
	assert.Equal(t, `C:\a`, win.join(`C:\`, "a"))

	linux := Env{GOOS: "linux"}
	assert.Equal(t, "/home/x/a/b", linux.join("/home/x/", "a", "b"))
}

func TestHostEnv(t *testing.T) {
	env := HostEnv()
	assert.NotEmpty(t, env.GOOS)
	assert.NotNil(t, env.LookupEnv)
}
