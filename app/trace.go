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

package main

import "github.com/sirupsen/logrus"

// debugFlags is the Go replacement for original_source's debugflags class:
// a per-character set of active trace flags, fed from the "-@" argument.
// '@' itself is the special case that turns every flag on.
type debugFlags struct {
	all   bool
	flags map[byte]bool
}

func newDebugFlags(spec string) *debugFlags {
	d := &debugFlags{flags: make(map[byte]bool, len(spec))}
	d.set(spec)
	return d
}

func (d *debugFlags) set(spec string) {
	for i := 0; i < len(spec); i++ {
		flag := spec[i]

		if flag == '@' {
			d.all = true
			continue
		}

		d.flags[flag] = true
	}
}

func (d *debugFlags) isSet(flag byte) bool {
	return d.all || d.flags[flag]
}

// trace logs msg under logrus's Debug level, tagged with the trace flag,
// but only when that flag (or '@') is active — mirroring DEBUGF's cheap
// early-exit check so callers never pay for formatting an inactive trace.
func (d *debugFlags) trace(log *logrus.Logger, flag byte, msg string, fields logrus.Fields) {
	if !d.isSet(flag) {
		return
	}

	log.WithFields(fields).WithField("trace", string(flag)).Debug(msg)
}
