// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

type callerSettings struct {
	file *bool
	line *bool
	funC *bool
}

func newCallerSettings(file, line, funC bool) callerSettings {
	return callerSettings{
		file: &file,
		line: &line,
		funC: &funC,
	}
}

func (c *callerSettings) mergeWith(other callerSettings) {
	c.file = mergeBool(c.file, other.file)
	c.line = mergeBool(c.line, other.line)
	c.funC = mergeBool(c.funC, other.funC)
}

func mergeBool(current, other *bool) *bool {
	if other == nil {
		return current
	}
	value := *other
	return &value
}

func (c *callerSettings) setDefaults() {
	disabled := false
	if c.file == nil {
		c.file = &disabled
	}
	if c.line == nil {
		c.line = &disabled
	}
	if c.funC == nil {
		c.funC = &disabled
	}
}

func (c callerSettings) enabled() bool {
	return *c.file || *c.line || *c.funC
}

// callerString returns the caller description located depth
// frames above it, as file:Lline:function.
func (c callerSettings) callerString(depth int) (s string) {
	pc, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		return "error"
	}

	fields := make([]string, 0, 3)

	if *c.file {
		fields = append(fields, filepath.Base(file))
	}

	if *c.line {
		fields = append(fields, "L"+strconv.Itoa(line))
	}

	if *c.funC {
		details := runtime.FuncForPC(pc)
		if details != nil {
			funcName := strings.TrimLeft(filepath.Ext(details.Name()), ".")
			fields = append(fields, funcName)
		}
	}

	return strings.Join(fields, ":")
}
