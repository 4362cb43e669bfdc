// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"

	"github.com/ChainSafe/gotries/internal/log"
	"github.com/go-playground/validator/v10"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := log.ParseLevel(fl.Field().String())
		return err == nil
	})
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks the configuration values are valid.
func (c Config) Validate() (err error) {
	err = validate.Struct(c)
	if err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}
	return nil
}
