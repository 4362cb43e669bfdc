// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

type settings struct {
	writer  io.Writer
	level   *Level
	format  *Format
	caller  callerSettings
	context []contextKeyValues
}

type contextKeyValues struct {
	key    string
	values []string
}

func newSettings(options []Option) (s settings) {
	for _, option := range options {
		option(&s)
	}
	return s
}

// mergeWith sets values from other settings, which take
// precedence over the current settings. Context values of
// other are appended to the current context values.
func (s *settings) mergeWith(other settings) {
	if other.writer != nil {
		s.writer = other.writer
	}

	if other.level != nil {
		value := *other.level
		s.level = &value
	}

	if other.format != nil {
		value := *other.format
		s.format = &value
	}

	s.caller.mergeWith(other.caller)

	for _, kv := range other.context {
		for _, value := range kv.values {
			s.addContext(kv.key, value)
		}
	}
}

func (s *settings) addContext(key, value string) {
	for i := range s.context {
		if s.context[i].key == key {
			s.context[i].values = append(s.context[i].values, value)
			return
		}
	}
	s.context = append(s.context, contextKeyValues{key: key, values: []string{value}})
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}

	if s.level == nil {
		s.level = levelPtr(Info)
	}

	if s.format == nil {
		s.format = formatPtr(FormatConsole)
	}

	s.caller.setDefaults()
}

func levelPtr(l Level) *Level { return &l }

func formatPtr(f Format) *Format { return &f }
