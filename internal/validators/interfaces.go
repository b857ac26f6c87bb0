// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request models against their `validate` struct
// tags. A failed check is reported as a [*FieldError] naming the first
// offending field, which the service layer turns into a BadRequest.
package validators

import "context"

// Validator checks v. When fields are given only those struct fields are
// checked, so a login request can skip the registration-only rules.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
