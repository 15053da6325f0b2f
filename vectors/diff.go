package vectors

import (
	"encoding/json"
	"fmt"

	"github.com/colorfulnotion/xbit/common"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// resultKey orders documents by vector position.
func resultKey(i int, r Result) string {
	return fmt.Sprintf("%03d %s %s", i, r.Op, r.Name)
}

func documents(results []Result) (expected, actual map[string]string) {
	expected = make(map[string]string, len(results))
	actual = make(map[string]string, len(results))
	for i, r := range results {
		key := resultKey(i, r)
		expected[key] = common.FormatHex32(r.Expected)
		actual[key] = common.FormatHex32(r.Actual)
	}
	return expected, actual
}

// Diff renders the expected and actual results as JSON documents and returns
// an ASCII diff of them. The bool reports whether any value differs.
func Diff(results []Result, coloring bool) (string, bool, error) {
	expected, actual := documents(results)
	expJSON, err := json.Marshal(expected)
	if err != nil {
		return "", false, err
	}
	actJSON, err := json.Marshal(actual)
	if err != nil {
		return "", false, err
	}

	differ := gojsondiff.New()
	delta, err := differ.Compare(expJSON, actJSON)
	if err != nil {
		return "", false, err
	}
	if !delta.Modified() {
		return "", false, nil
	}

	var leftObj interface{}
	if err := json.Unmarshal(expJSON, &leftObj); err != nil {
		return "", true, err
	}
	asciiFmt := formatter.NewAsciiFormatter(leftObj, formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       coloring,
	})
	out, err := asciiFmt.Format(delta)
	if err != nil {
		return "", true, err
	}
	return out, true, nil
}
