// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/hiddenfield/internal/astutil"
	"fillmore-labs.com/hiddenfield/internal/hiddenfield"
)

// Reporter converts hidden field violations into diagnostics of an analysis pass.
//
// Violations suppressed by a nolint directive of the current file are dropped.
type Reporter struct {
	pass *analysis.Pass
	file astutil.CurrentFile
}

// NewReporter creates a [Reporter] for p.
func NewReporter(p *analysis.Pass) *Reporter {
	return &Reporter{pass: p}
}

// SetFile sets the file subsequent violations belong to.
func (r *Reporter) SetFile(file astutil.CurrentFile) {
	r.file = file
}

// Report implements [hiddenfield.Reporter].
func (r *Reporter) Report(v hiddenfield.Violation) {
	id := v.Ident
	if r.file.Suppressed(id.Pos()) {
		return
	}

	r.pass.Report(analysis.Diagnostic{
		Pos:      id.Pos(),
		End:      id.End(),
		Category: v.Key,
		Message:  v.Message(),
	})
}
