// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sides

import (
	"encoding/json"
	"fmt"
)

// UnmarshalJSON accepts the three shorthand forms documents use for
// side/corner values: a single number applied to all four, an array of
// one to four numbers expanded per the CSS convention, or the explicit
// object form.
func (sf *Floats) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case '{':
		var obj struct {
			Top    float32 `json:"top"`
			Right  float32 `json:"right"`
			Bottom float32 `json:"bottom"`
			Left   float32 `json:"left"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		sf.Top, sf.Right, sf.Bottom, sf.Left = obj.Top, obj.Right, obj.Bottom, obj.Left
		return nil
	case '[':
		var vals []float32
		if err := json.Unmarshal(b, &vals); err != nil {
			return err
		}
		if len(vals) > 4 {
			return fmt.Errorf("sides: expected at most 4 values, got %d", len(vals))
		}
		sf.Set(vals...)
		return nil
	default:
		var v float32
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		sf.SetAll(v)
		return nil
	}
}
