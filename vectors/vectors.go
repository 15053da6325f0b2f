// Package vectors loads JSON test vectors for the bit-manipulation primitives
// and reports expected/actual differences.
package vectors

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/colorfulnotion/xbit/common"
	"github.com/colorfulnotion/xbit/demo"
	"github.com/colorfulnotion/xbit/log"
	"github.com/colorfulnotion/xbit/xbiterrors"
)

type Vector struct {
	Name     string
	Op       string
	Input    uint32
	Shift    uint32
	Expected uint32
}

// vectorJSON is the on-disk form; numbers are strings in 0x, 0b or decimal notation.
type vectorJSON struct {
	Name     string `json:"name"`
	Op       string `json:"op"`
	Input    string `json:"input"`
	Shift    string `json:"shift,omitempty"`
	Expected string `json:"expected"`
}

// Result is the outcome of one vector. Err is set when the vector could not be
// evaluated; such a result never passes.
type Result struct {
	Vector
	Actual uint32
	Pass   bool
	Err    error
}

func Load(path string) ([]Vector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	vs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug(log.VectorMonitoring, "loaded vectors", "path", path, "count", len(vs))
	return vs, nil
}

func Parse(data []byte) ([]Vector, error) {
	var raw []vectorJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", xbiterrors.ErrVBadVectorFile, err)
	}
	vs := make([]Vector, 0, len(raw))
	for i, r := range raw {
		v, err := r.toVector()
		if err != nil {
			return nil, fmt.Errorf("vector %d (%s): %w", i, r.Name, err)
		}
		if v.Name == "" {
			v.Name = fmt.Sprintf("vector-%d", i)
		}
		vs = append(vs, v)
	}
	return vs, nil
}

func (r vectorJSON) toVector() (Vector, error) {
	op, ok := demo.CanonicalOp(r.Op)
	if !ok {
		return Vector{}, fmt.Errorf("%w: %q", xbiterrors.ErrVUnknownOp, r.Op)
	}
	v := Vector{Name: r.Name, Op: op}
	fields := []struct {
		name string
		s    string
		dst  *uint32
	}{
		{"input", r.Input, &v.Input},
		{"shift", r.Shift, &v.Shift},
		{"expected", r.Expected, &v.Expected},
	}
	for _, f := range fields {
		if f.s == "" && f.name == "shift" {
			continue
		}
		n, err := common.ParseUint32(f.s)
		if err != nil {
			return Vector{}, fmt.Errorf("%w: %s %q", xbiterrors.ErrVBadNumber, f.name, f.s)
		}
		*f.dst = n
	}
	return v, nil
}

// Evaluate computes every vector with the software primitives. Vectors with an
// unknown op fail with ErrVUnknownOp recorded on the result.
func Evaluate(vs []Vector) []Result {
	results := make([]Result, len(vs))
	for i, v := range vs {
		op, ok := demo.CanonicalOp(v.Op)
		if !ok {
			results[i] = Result{Vector: v, Err: fmt.Errorf("%w: %q", xbiterrors.ErrVUnknownOp, v.Op)}
			log.Debug(log.VectorMonitoring, "vector rejected", "name", v.Name, "op", v.Op)
			continue
		}
		actual, err := demo.Apply(op, v.Input, v.Shift)
		if err != nil {
			results[i] = Result{Vector: v, Err: err}
			continue
		}
		results[i] = Result{Vector: v, Actual: actual, Pass: actual == v.Expected}
		if !results[i].Pass {
			log.Debug(log.VectorMonitoring, "vector mismatch", "name", v.Name,
				"expected", common.FormatHex32(v.Expected), "actual", common.FormatHex32(actual))
		}
	}
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Pass {
			failed = append(failed, r)
		}
	}
	return failed
}
