// File: filex.go
// Title: File Utilities
// Description: Path expansion and content-based text file detection for
//              shell commands that accept file arguments.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-16 v0.2.0: Reduced to path expansion and encoding detection

// Package filex provides file helpers for command arguments: expanding
// user paths, deciding whether a file holds text and sniffing its media type.
package filex

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"

	kiterror "github.com/msto63/cmdkit/foundation/core/error"
	kiterrors "github.com/msto63/cmdkit/foundation/core/errors"
	kitlog "github.com/msto63/cmdkit/foundation/core/log"
)

// Encoding is the result of content detection
type Encoding int

const (
	// EncodingBinary means the content is neither ASCII nor valid UTF-8
	EncodingBinary Encoding = iota
	// EncodingEmpty means the file has no content
	EncodingEmpty
	// EncodingASCII means every byte is 7-bit
	EncodingASCII
	// EncodingUTF8 means the content is valid UTF-8 with non-ASCII characters
	EncodingUTF8
)

// String returns the encoding name
func (e Encoding) String() string {
	switch e {
	case EncodingEmpty:
		return "empty"
	case EncodingASCII:
		return "ascii"
	case EncodingUTF8:
		return "utf-8"
	default:
		return "binary"
	}
}

// IsText reports whether the encoding counts as a text file
func (e Encoding) IsText() bool {
	return e == EncodingASCII || e == EncodingUTF8
}

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ExpandPath trims surrounding whitespace, expands a leading "~" to the
// user's home directory and returns the absolute path.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)

	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", kiterrors.OperationError(kiterrors.ModuleFilex, "expand",
				kiterror.CodeEnvironmentError, err, map[string]interface{}{"path": path})
		}
		path = filepath.Join(home, path[1:])
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", kiterrors.OperationError(kiterrors.ModuleFilex, "expand",
			kiterror.CodeIOError, err, map[string]interface{}{"path": path})
	}
	return abs, nil
}

// DetectEncoding classifies the content of the file at path. The path is
// expanded first.
func DetectEncoding(path string) (Encoding, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return EncodingBinary, err
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return EncodingBinary, readError(expanded, err)
	}

	return Classify(data), nil
}

// Classify returns the encoding of data
func Classify(data []byte) Encoding {
	if len(data) == 0 {
		return EncodingEmpty
	}
	ascii := true
	for _, b := range data {
		if b >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	switch {
	case ascii:
		return EncodingASCII
	case utf8.Valid(data):
		return EncodingUTF8
	default:
		return EncodingBinary
	}
}

// IsTextFile reports whether the file contains at least one line of ASCII or
// UTF-8 text. Unreadable files are not text files.
func IsTextFile(path string) bool {
	enc, err := DetectEncoding(path)
	if err != nil {
		kitlog.GetDefault().DebugWithErr("text detection failed", err, kitlog.Fields{
			"module": kiterrors.ModuleFilex,
			"path":   path,
		})
		return false
	}
	return enc.IsText()
}

// MIMEType sniffs the media type of the file at path from its leading
// bytes, e.g. "text/plain; charset=utf-8" or "image/png".
func MIMEType(path string) (string, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return "", err
	}

	mtype, err := mimetype.DetectFile(expanded)
	if err != nil {
		return "", readError(expanded, err)
	}
	return mtype.String(), nil
}

func readError(path string, err error) error {
	code := kiterror.CodeIOError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		code = kiterror.CodeNotFound
	case errors.Is(err, fs.ErrPermission):
		code = kiterror.CodePermissionDenied
	}
	return kiterrors.OperationError(kiterrors.ModuleFilex, "detect", code, err,
		map[string]interface{}{"path": path})
}
