// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox provides the shared [Decoder] / [Encoder] contract and the
// Open/Read/Save/Write helpers that the tomlx, yamlx, jsonx, and xmlx
// packages build their format-specific wrappers on top of.
package iox

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Decoder is the common interface implemented by the standard library's
// encoding/*.Decoder types (json.Decoder, xml.Decoder, yaml.Decoder, ...).
type Decoder interface {
	Decode(v any) error
}

// Encoder is the common interface implemented by the standard library's
// encoding/*.Encoder types.
type Encoder interface {
	Encode(v any) error
}

// DecoderFunc constructs a [Decoder] reading from r.
type DecoderFunc func(r io.Reader) Decoder

// EncoderFunc constructs an [Encoder] writing to w.
type EncoderFunc func(w io.Writer) Encoder

// NewDecoderFunc adapts a constructor returning a concrete decoder type
// (e.g. json.NewDecoder) into a [DecoderFunc].
func NewDecoderFunc[T Decoder](f func(r io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder { return f(r) }
}

// NewEncoderFunc adapts a constructor returning a concrete encoder type
// (e.g. json.NewEncoder) into an [EncoderFunc].
func NewEncoderFunc[T Encoder](f func(w io.Writer) T) EncoderFunc {
	return func(w io.Writer) Encoder { return f(w) }
}

// Open reads the given object from the given filename using the given
// decoder constructor.
func Open(v any, filename string, newDecoder DecoderFunc) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Read(v, f, newDecoder)
}

// OpenFiles reads the given object sequentially from the given filenames,
// each decode updating v, using the given decoder constructor.
func OpenFiles(v any, filenames []string, newDecoder DecoderFunc) error {
	for _, filename := range filenames {
		if err := Open(v, filename, newDecoder); err != nil {
			return fmt.Errorf("iox.OpenFiles: %q: %w", filename, err)
		}
	}
	return nil
}

// OpenFS reads the given object from the given filename using the given
// decoder constructor, using the given [fs.FS] filesystem (e.g., for
// embedded files).
func OpenFS(v any, fsys fs.FS, filename string, newDecoder DecoderFunc) error {
	f, err := fsys.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Read(v, f, newDecoder)
}

// OpenFilesFS reads the given object sequentially from the given filenames
// using the given [fs.FS] filesystem.
func OpenFilesFS(v any, fsys fs.FS, filenames []string, newDecoder DecoderFunc) error {
	for _, filename := range filenames {
		if err := OpenFS(v, fsys, filename, newDecoder); err != nil {
			return fmt.Errorf("iox.OpenFilesFS: %q: %w", filename, err)
		}
	}
	return nil
}

// Read reads the given object from the given reader using the given
// decoder constructor.
func Read(v any, reader io.Reader, newDecoder DecoderFunc) error {
	return newDecoder(reader).Decode(v)
}

// ReadBytes reads the given object from the given bytes using the given
// decoder constructor.
func ReadBytes(v any, data []byte, newDecoder DecoderFunc) error {
	return Read(v, bytes.NewReader(data), newDecoder)
}

// Save writes the given object to the given filename using the given
// encoder constructor.
func Save(v any, filename string, newEncoder EncoderFunc) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(v, f, newEncoder)
}

// Write writes the given object using the given encoder constructor.
func Write(v any, writer io.Writer, newEncoder EncoderFunc) error {
	return newEncoder(writer).Encode(v)
}

// WriteBytes writes the given object using the given encoder constructor,
// returning the encoded bytes.
func WriteBytes(v any, newEncoder EncoderFunc) ([]byte, error) {
	var b bytes.Buffer
	if err := Write(v, &b, newEncoder); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
