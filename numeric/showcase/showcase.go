/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package showcase demonstrates every operation of the numeric package by printing its results.
package showcase

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/numeric"
	"github.com/ARM-software/golang-numeric/parallelisation"
)

const ruleWidth = 80

// DemoFunc writes a demonstration to a printer. Reorderable operations are executed according to the policy.
type DemoFunc func(ctx context.Context, out *Printer, p *numeric.Policy) error

// Section is a named demonstration.
type Section struct {
	Name string
	Demo DemoFunc
}

// Sections returns every demonstration, in the order Run executes them.
func Sections() []Section {
	return []Section{
		{Name: "iota", Demo: demoIota},
		{Name: "accumulate", Demo: demoAccumulate},
		{Name: "reduce", Demo: demoReduce},
		{Name: "transform_reduce", Demo: demoTransformReduce},
		{Name: "inner_product", Demo: demoInnerProduct},
		{Name: "adjacent_difference", Demo: demoAdjacentDifference},
		{Name: "partial_sum", Demo: demoPartialSum},
		{Name: "exclusive_scan_inclusive_scan", Demo: demoScans},
		{Name: "transform_exclusive_scan_transform_inclusive_scan", Demo: demoTransformScans},
		{Name: "gcd", Demo: demoGCD},
		{Name: "lcm", Demo: demoLCM},
		{Name: "midpoint", Demo: demoMidpoint},
	}
}

// Run writes every demonstration to w.
func Run(ctx context.Context, w io.Writer, p *numeric.Policy) error {
	return RunSections(ctx, w, p, Sections()...)
}

// RunSections writes a banner followed by the demonstrations of the sections given, in order.
// It stops at the first failing section or if the context is cancelled.
func RunSections(ctx context.Context, w io.Writer, p *numeric.Policy, sections ...Section) error {
	if w == nil {
		return commonerrors.UndefinedParameter("writer")
	}
	out := NewPrinter(w)
	out.Println("golang-numeric showcase")
	out.Printf("Go version: %v\n", runtime.Version())
	out.Printf("Execution policy: %v\n", p)
	if err := out.Err(); err != nil {
		return err
	}
	functions := make([]parallelisation.ContextualFunc, 0, len(sections))
	for i := range sections {
		section := sections[i]
		functions = append(functions, func(subCtx context.Context) error {
			return runSection(subCtx, out, p, section)
		})
	}
	return parallelisation.BreakOnError(ctx, parallelisation.WithOptions(parallelisation.Sequential), functions...)
}

func runSection(ctx context.Context, out *Printer, p *numeric.Policy, section Section) error {
	if section.Demo == nil {
		return commonerrors.UndefinedVariable(fmt.Sprintf("demonstration of section %v", section.Name))
	}
	out.Printf("Function: %v\n", section.Name)
	out.Println(strings.Repeat("-", ruleWidth))
	out.Println()
	err := section.Demo(ctx, out, p)
	if err != nil {
		return commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "demonstration of %v failed", section.Name)
	}
	out.Println()
	return out.Err()
}
