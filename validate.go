// Copyright 2024 <climacell.com>. All rights reserved.
// Post-decode validation of required directory tags

package tiff

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Validate checks a single directory: every required tag must be able
// to produce a value. All failures are aggregated, not just the first.
func (d *IFD) Validate() error {
	var result *multierror.Error
	for _, tag := range d.RequiredTags() {
		if !d.Has(tag) {
			result = multierror.Append(result, &MissingRequiredFieldError{Tag: tag})
		}
	}
	return result.ErrorOrNil()
}

// Validate checks every decoded directory and aggregates the failures
// with their IFD index. A nil return means every required tag in every
// IFD can produce a value.
func (r *Reader) Validate() error {
	var result *multierror.Error
	for i, d := range r.IFDs {
		if err := d.Validate(); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "IFD %d", i))
		}
	}
	return result.ErrorOrNil()
}
