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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/hiddenfield/internal/astutil"
	"fillmore-labs.com/hiddenfield/internal/config"
	"fillmore-labs.com/hiddenfield/internal/gosource"
	"fillmore-labs.com/hiddenfield/internal/hiddenfield"
	"fillmore-labs.com/hiddenfield/internal/report"
	"fillmore-labs.com/hiddenfield/internal/syntax"
	"fillmore-labs.com/hiddenfield/internal/walk"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the hiddenfield analyzer's pipeline.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("hiddenfield: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	reporter := report.NewReporter(p)

	check, err := hiddenfield.New(o.CheckConfig(), reporter)
	if err != nil {
		return nil, fmt.Errorf("hiddenfield: %w", err)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "HiddenField")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	onError := func(n *syntax.Node, err error) {
		astutil.InternalError(p, n, "%v", err)
	}

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !o.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if astutil.DocHasNoLint(file.Doc) {
			continue
		}

		reporter.SetFile(currentFile)

		checkFile(ctx, p, f, check, onError)
	}

	return nil, nil
}

// checkFile converts a file into a syntax tree and walks it with check.
func checkFile(ctx context.Context, p *analysis.Pass, f inspector.Cursor, check walk.Check, onError walk.ErrorFunc) {
	region := trace.StartRegion(ctx, "BuildTree")
	root := gosource.Build(p.TypesInfo, p.Pkg, f)
	region.End()

	defer trace.StartRegion(ctx, "Walk").End()

	walk.Walk(root, check, onError)
}
