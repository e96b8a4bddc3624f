// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/nightcity/citygpu/base/errors"
	"github.com/nightcity/citygpu/base/reflectx"
)

// SetFromDefaults sets the values of the given config object from
// `default:` struct field tag values. Errors are logged in addition
// to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(reflectx.SetFromDefaultTags(cfg))
}
