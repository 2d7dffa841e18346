// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"math"
	"strconv"

	"go.yaml.in/yaml/v3"
)

var jsonNull = []byte("null")

// NullFloat is an optional float64. Every catalog measurement and every
// derived quantity uses it so that absence is never confused with zero.
// The zero value is missing.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// Some returns a present value. NaN and infinities are not physical
// quantities and come back missing.
func Some(v float64) NullFloat {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NullFloat{}
	}
	return NullFloat{Float64: v, Valid: true}
}

// None returns a missing value.
func None() NullFloat {
	return NullFloat{}
}

// Get returns the value and whether it is present.
func (n NullFloat) Get() (float64, bool) {
	return n.Float64, n.Valid
}

// Map applies f to a present value. Missing values stay missing.
func (n NullFloat) Map(f func(float64) float64) NullFloat {
	if !n.Valid {
		return n
	}
	return Some(f(n.Float64))
}

// String formats the value with the shortest exact representation, or ""
// when missing.
func (n NullFloat) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatFloat(n.Float64, 'g', -1, 64)
}

func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return json.Marshal(n.Float64)
}

func (n *NullFloat) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*n = NullFloat{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Some(v)
	return nil
}

func (n NullFloat) MarshalYAML() (any, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Float64, nil
}

func (n *NullFloat) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*n = NullFloat{}
		return nil
	}
	var v float64
	if err := node.Decode(&v); err != nil {
		return err
	}
	*n = Some(v)
	return nil
}

// Value implements driver.Valuer; missing values are stored as NULL.
func (n NullFloat) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Float64, nil
}

// Scan implements sql.Scanner.
func (n *NullFloat) Scan(src any) error {
	var s sql.NullFloat64
	if err := s.Scan(src); err != nil {
		return err
	}
	*n = NullFloat{Float64: s.Float64, Valid: s.Valid}
	return nil
}

// NullInt is an optional int64, used for whole-number catalog columns such
// as the discovery year.
type NullInt struct {
	Int64 int64
	Valid bool
}

// SomeInt returns a present integer.
func SomeInt(v int64) NullInt {
	return NullInt{Int64: v, Valid: true}
}

// String formats the value, or "" when missing.
func (n NullInt) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatInt(n.Int64, 10)
}

func (n NullInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return json.Marshal(n.Int64)
}

func (n *NullInt) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*n = NullInt{}
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = SomeInt(v)
	return nil
}

func (n NullInt) MarshalYAML() (any, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Int64, nil
}

func (n *NullInt) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*n = NullInt{}
		return nil
	}
	var v int64
	if err := node.Decode(&v); err != nil {
		return err
	}
	*n = SomeInt(v)
	return nil
}

func (n NullInt) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Int64, nil
}

func (n *NullInt) Scan(src any) error {
	var s sql.NullInt64
	if err := s.Scan(src); err != nil {
		return err
	}
	*n = NullInt{Int64: s.Int64, Valid: s.Valid}
	return nil
}
