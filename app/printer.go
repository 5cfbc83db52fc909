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

import (
	"time"

	"github.com/rfbergeron/arithmetic-coding"
	"github.com/sirupsen/logrus"
)

// infoPrinter is the sole arcode.Listener implementation in this package,
// replacing the teacher's InfoPrinter (which tracked per-block stage
// timings across a concurrent block pipeline). There is only one stream
// and no blocks here, so it just tracks the start time of the run and
// logs each milestone at Info level with its elapsed time.
type infoPrinter struct {
	log   *logrus.Logger
	start time.Time
}

func newInfoPrinter(log *logrus.Logger) *infoPrinter {
	return &infoPrinter{log: log, start: time.Now()}
}

func (p *infoPrinter) ProcessEvent(evt arcode.Event) {
	p.log.WithFields(logrus.Fields{
		"event":   arcode.EventName(evt.Type),
		"size":    evt.Size,
		"elapsed": evt.Time.Sub(p.start),
	}).Info("arcode event")
}
