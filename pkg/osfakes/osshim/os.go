// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package osshim

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../../license_prefix.txt

import (
	"io"
	"os"
)

// Os is shim for methods from os package
//
//counterfeiter:generate . Os
type Os interface {
	Open(name string) (io.ReadCloser, error)
	ReadFile(name string) ([]byte, error)
	IsNotExist(err error) bool
}

// OsShim is default Os implementation
type OsShim struct{}

// Open see os.Open
func (sh *OsShim) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// ReadFile see os.ReadFile
func (sh *OsShim) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// IsNotExist see os.IsNotExist
func (sh *OsShim) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}
