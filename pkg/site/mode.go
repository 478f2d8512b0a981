// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

// BuildMode tells a one-shot build apart from a live-preview session
type BuildMode int

const (
	// OneShot is a single static build
	OneShot BuildMode = iota
	// Serve is a live-preview session
	Serve
)

// ServeCommand is the command name that starts a live-preview session
const ServeCommand = "serve"

// ModeFromCommand maps the invoked command name to a BuildMode
func ModeFromCommand(command string) BuildMode {
	if command == ServeCommand {
		return Serve
	}
	return OneShot
}

func (m BuildMode) String() string {
	switch m {
	case Serve:
		return "serve"
	default:
		return "one-shot"
	}
}
