// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides TOML input and output functions
// built on [iox] and go-toml.
package tomlx

import (
	"io"
	"io/fs"

	"github.com/nightcity/citygpu/base/iox"
	"github.com/pelletier/go-toml/v2"
)

// Open reads the given object from the given TOML file.
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// OpenFiles reads the given object from the given TOML files,
// in order, with later files overwriting earlier settings.
func OpenFiles(v any, filenames ...string) error {
	return iox.OpenFiles(v, filenames, NewDecoder)
}

// OpenFS reads the given object from the given TOML file,
// from the given [fs.FS] filesystem (e.g., for embed files).
func OpenFS(v any, fsys fs.FS, filename string) error {
	return iox.OpenFS(v, fsys, filename, NewDecoder)
}

// Read reads the given object from the given TOML reader.
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, NewDecoder)
}

// ReadBytes reads the given object from the given TOML bytes.
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, NewDecoder)
}

// NewDecoder returns a new [iox.Decoder] for TOML.
func NewDecoder(r io.Reader) iox.Decoder { return toml.NewDecoder(r) }

// Save writes the given object to the given TOML file.
func Save(v any, filename string) error {
	return iox.Save(v, filename, NewEncoder)
}

// Write writes the given object to the given TOML writer.
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, NewEncoder)
}

// WriteBytes writes the given object to TOML bytes.
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, NewEncoder)
}

// NewEncoder returns a new [iox.Encoder] for TOML.
func NewEncoder(w io.Writer) iox.Encoder { return toml.NewEncoder(w) }
