package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/hrygo/chronoparse/plugin/aitime"
	"github.com/hrygo/chronoparse/plugin/datetime/model"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatText = "text"
)

func validFormat(format string) bool {
	switch format {
	case formatJSON, formatYAML, formatText:
		return true
	}
	return false
}

type resultView struct {
	Text        string            `json:"text" yaml:"text"`
	Start       int               `json:"start" yaml:"start"`
	Length      int               `json:"length" yaml:"length"`
	Type        string            `json:"type" yaml:"type"`
	Timex       string            `json:"timex" yaml:"timex"`
	Values      valueList         `json:"values" yaml:"values"`
	Range       *aitime.TimeRange `json:"range,omitempty" yaml:"range,omitempty"`
	Occurrences []time.Time       `json:"occurrences,omitempty" yaml:"occurrences,omitempty"`
}

func newResultView(res model.FinalParseResult) resultView {
	return resultView{
		Text:   res.Text,
		Start:  res.Start,
		Length: res.Length,
		Type:   string(res.ResolvedKind),
		Timex:  res.Timex,
		Values: res.Dictionary.Values,
	}
}

// valueList renders resolution dictionaries in insertion order.
type valueList []*model.ResolutionDictionary

func (v valueList) MarshalYAML() (any, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, d := range v {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range d.Keys() {
			value, _ := d.Get(k)
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
			)
		}
		seq.Content = append(seq.Content, m)
	}
	return seq, nil
}

func write(w io.Writer, format string, views []resultView) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return errors.Wrap(err, "failed to encode yaml")
		}
		return enc.Close()
	case formatText:
		for _, v := range views {
			if _, err := fmt.Fprintln(w, textLine(v)); err != nil {
				return err
			}
		}
		return nil
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	}
}

// textLine prints one result as tab-separated text, type and timex
// followed by key=value pairs of every dictionary.
func textLine(v resultView) string {
	fields := []string{v.Text, v.Type, v.Timex}
	for _, d := range v.Values {
		var pairs []string
		for _, k := range d.Keys() {
			if k == model.KeyTimex || k == model.KeyType {
				continue
			}
			value, _ := d.Get(k)
			pairs = append(pairs, k+"="+value)
		}
		fields = append(fields, strings.Join(pairs, " "))
	}
	if v.Range != nil {
		fields = append(fields, "range="+formatBound(v.Range.Start)+"/"+formatBound(v.Range.End))
	}
	for _, t := range v.Occurrences {
		fields = append(fields, t.Format(time.RFC3339))
	}
	return strings.Join(fields, "\t")
}

func formatBound(t time.Time) string {
	if t.IsZero() {
		return ".."
	}
	return t.Format(time.RFC3339)
}
