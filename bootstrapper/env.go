/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package bootstrapper

import (
	"os"
	"path"
	"runtime"
	"strings"
)

// Env describes the host the deployment paths are computed for.
type Env struct {
	// GOOS is the host operating system, as runtime.GOOS.
	GOOS string
	// Home is the user's home directory.
	Home string
	// LookupEnv looks up environment variables, as os.LookupEnv.
	LookupEnv func(key string) (string, bool)
}

// HostEnv returns the Env of the running process.
func HostEnv() Env {
	home, _ := os.UserHomeDir()
	return Env{
		GOOS:      runtime.GOOS,
		Home:      home,
		LookupEnv: os.LookupEnv,
	}
}

func (e Env) getenv(key string) string {
	if e.LookupEnv == nil {
		return ""
	}
	v, _ := e.LookupEnv(key)
	return v
}

// join joins path elements with the separator of e.GOOS.
func (e Env) join(elem ...string) string {
	if e.GOOS != "windows" {
		return path.Join(elem...)
	}
	parts := make([]string, 0, len(elem))
	for i, el := range elem {
		if i > 0 {
			el = strings.Trim(el, `\/`)
		} else {
			el = strings.TrimRight(el, `\/`)
		}
		if el != "" {
			parts = append(parts, el)
		}
	}
	return strings.Join(parts, `\`)
}
