/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"reflect"
	"strings"

	"github.com/ARM-software/golang-numeric/field"
)

// ValidateEmbedded uses reflection to find embedded structs and validate them
func ValidateEmbedded(cfg Validator) error {
	r := reflect.ValueOf(cfg).Elem()
	for i := 0; i < r.NumField(); i++ {
		f := r.Field(i)
		if f.Kind() == reflect.Struct {
			validator, ok := f.Addr().Interface().(Validator)
			if !ok {
				continue
			}
			err := validator.Validate()
			structField := r.Type().Field(i)

			err = wrapFieldValidationError(structField, err)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func wrapFieldValidationError(structField reflect.StructField, err error) error {
	if err == nil {
		return nil
	}
	var mapStructure *string
	if tag, hasTag := structField.Tag.Lookup("mapstructure"); hasTag {
		if processed := processMapStructureString(tag); processed != "" {
			mapStructure = field.ToOptionalString(processed)
		}
	}
	return WrapFieldValidationError(structField.Name, mapStructure, nil, err)
}

// processMapStructureString returns the key name of a mapstructure tag, dropping its options.
func processMapStructureString(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	name = strings.TrimSpace(name)
	if name == "-" {
		return ""
	}
	return name
}
