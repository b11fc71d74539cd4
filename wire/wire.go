package wire

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/fuzzyfind/internal/core"
)

// QueryArgs is the wire shape of a Query command's arguments.
type QueryArgs struct {
	Query      string
	Context    string
	NumResults int
}

// EncodeQueryArgs renders a into a JSON object:
// {"query":...,"context":...,"num_results":...}.
func EncodeQueryArgs(a QueryArgs) string {
	json := "{}"
	json, _ = sjson.Set(json, "query", a.Query)
	json, _ = sjson.Set(json, "context", a.Context)
	json, _ = sjson.Set(json, "num_results", a.NumResults)
	return json
}

// DecodeQueryArgs parses a JSON object produced by EncodeQueryArgs (or
// an equivalent one from another host language).
func DecodeQueryArgs(json string) (QueryArgs, error) {
	if !gjson.Valid(json) {
		return QueryArgs{}, fmt.Errorf("wire: invalid query args json")
	}
	r := gjson.Parse(json)
	return QueryArgs{
		Query:      r.Get("query").String(),
		Context:    r.Get("context").String(),
		NumResults: int(r.Get("num_results").Int()),
	}, nil
}

// EncodeLines renders lines as a JSON array of {"path":...,"text":...}
// objects.
func EncodeLines(lines []core.Line) string {
	json := "[]"
	for i, l := range lines {
		json, _ = sjson.Set(json, fmt.Sprintf("%d.path", i), l.Path)
		json, _ = sjson.Set(json, fmt.Sprintf("%d.text", i), l.Text)
	}
	return json
}

// DecodeLines parses a JSON array produced by EncodeLines.
func DecodeLines(json string) ([]core.Line, error) {
	if !gjson.Valid(json) {
		return nil, fmt.Errorf("wire: invalid lines json")
	}
	arr := gjson.Parse(json).Array()
	lines := make([]core.Line, len(arr))
	for i, v := range arr {
		lines[i] = core.Line{
			Path: v.Get("path").String(),
			Text: v.Get("text").String(),
		}
	}
	return lines, nil
}

// EncodeMatches renders matches as a JSON array of objects carrying
// every Match field, so a native caller can sort or display results
// without a second round trip through the engine.
func EncodeMatches(matches []core.Match) string {
	json := "[]"
	for i, m := range matches {
		base := fmt.Sprintf("%d.", i)
		json, _ = sjson.Set(json, base+"index", m.Index)
		json, _ = sjson.Set(json, base+"score", m.Score)
		json, _ = sjson.Set(json, base+"context_score", m.ContextScore)
		json, _ = sjson.Set(json, base+"query_score", m.QueryScore)
		json, _ = sjson.Set(json, base+"frequency_score", m.FrequencyScore)
	}
	return json
}

// DecodeMatches parses a JSON array produced by EncodeMatches.
func DecodeMatches(json string) ([]core.Match, error) {
	if !gjson.Valid(json) {
		return nil, fmt.Errorf("wire: invalid matches json")
	}
	arr := gjson.Parse(json).Array()
	matches := make([]core.Match, len(arr))
	for i, v := range arr {
		matches[i] = core.Match{
			Index:          v.Get("index").Uint(),
			Score:          v.Get("score").Float(),
			ContextScore:   v.Get("context_score").Float(),
			QueryScore:     v.Get("query_score").Float(),
			FrequencyScore: v.Get("frequency_score").Float(),
		}
	}
	return matches, nil
}
