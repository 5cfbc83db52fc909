/*
Copyright 2011-2017 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package arcode

import "errors"

// The four error kinds surfaced to the user (spec §7). Decode wraps each
// of its failures in one of these kinds, as the app does for open and
// usage failures, so callers can errors.Is against the kind. The
// lower-level error that detected the condition is kept only as message
// text; errors.Is against it does not match.
var (
	// ErrOpenFailed indicates a file could not be opened.
	ErrOpenFailed = errors.New("arcode: could not open file")

	// ErrInvalidHeader indicates a table or data magic mismatch,
	// including a register-width mismatch.
	ErrInvalidHeader = errors.New("arcode: invalid header")

	// ErrPrematureEnd indicates the compressed stream ran out of bytes
	// before N symbols were decoded.
	ErrPrematureEnd = errors.New("arcode: compressed stream ended prematurely")

	// ErrUsage indicates a missing or unrecognized subcommand/argument.
	ErrUsage = errors.New("arcode: usage error")
)
