// SPDX-License-Identifier: EPL-2.0

package sgxd

import "errors"

var (
	// ErrFormat is returned when the global header is unusable. No bank is
	// produced.
	ErrFormat = errors.New("sgxd: invalid header")

	// ErrTruncated marks a chunk or record running past the end of the
	// file. Only the affected chunk or record is dropped.
	ErrTruncated = errors.New("sgxd: truncated")

	// ErrUnresolvedReference marks an offset or index pointing outside its
	// table. The referenced entity is treated as absent.
	ErrUnresolvedReference = errors.New("sgxd: unresolved reference")

	// ErrRequestDepth is returned when REQUEST groups nest too deeply.
	ErrRequestDepth = errors.New("sgxd: request groups nested too deeply")
)
