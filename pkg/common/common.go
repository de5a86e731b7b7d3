// 29 Apr 2020

// Package common has the bits shared by the commands and their tests.
package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
// suffix lets viper and friends guess the file type from the name.
func WrtTemp(s, suffix string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing*"+suffix)
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer f_tmp.Close()

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v: %w", f_tmp.Name(), err)
	}
	return f_tmp.Name(), nil
}
