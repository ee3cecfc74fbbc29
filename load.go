package docindex

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// LoadOption configures Load and ParseEntries.
type LoadOption func(*loadConfig)

type loadConfig struct {
	skip       bool
	warn       func(*MalformedDataError)
	normalizer Normalizer
	indexOpts  []IndexOption
}

// SkipMalformed makes loading drop malformed records instead of failing.
// Each dropped record is reported to warn, which may be nil. Payloads whose
// overall shape is wrong still fail.
func SkipMalformed(warn func(*MalformedDataError)) LoadOption {
	return func(c *loadConfig) {
		c.skip = true
		c.warn = warn
	}
}

// WithNormalizer rewrites the text of every record while loading.
func WithNormalizer(n Normalizer) LoadOption {
	return func(c *loadConfig) {
		c.normalizer = n
	}
}

// WithIndexOptions passes options through to NewIndex when using Load.
func WithIndexOptions(opts ...IndexOption) LoadOption {
	return func(c *loadConfig) {
		c.indexOpts = append(c.indexOpts, opts...)
	}
}

// Load parses a search-index payload into an Index. The payload is either a
// JSON object with a "docs" array or a JavaScript assignment of such an
// object, as in `var documenterSearchIndex = {"docs": [...]}`.
func Load(payload []byte, opts ...LoadOption) (*Index, error) {
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	entries, err := parseEntries(payload, &cfg)
	if err != nil {
		return nil, err
	}
	return NewIndex(entries, cfg.indexOpts...), nil
}

// ParseEntries decodes the records of a search-index payload in order.
// It applies the same validation as Load.
func ParseEntries(payload []byte, opts ...LoadOption) ([]*Entry, error) {
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return parseEntries(payload, &cfg)
}

// recordFields lists the required string fields of a record.
var recordFields = []string{"location", "page", "title", "text", "category"}

func parseEntries(payload []byte, cfg *loadConfig) ([]*Entry, error) {
	body, err := stripAssignment(payload)
	if err != nil {
		return nil, err
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil || top == nil {
		return nil, &MalformedDataError{Record: -1, Reason: "payload is not a JSON object"}
	}

	rawDocs, ok := top["docs"]
	if !ok {
		return nil, &MalformedDataError{Record: -1, Reason: `missing "docs" array`}
	}
	var records []json.RawMessage
	if err := json.Unmarshal(rawDocs, &records); err != nil || isNull(rawDocs) {
		return nil, &MalformedDataError{Record: -1, Reason: `"docs" is not an array`}
	}

	entries := make([]*Entry, 0, len(records))
	for i, raw := range records {
		e, merr := decodeRecord(i, raw)
		if merr != nil {
			if !cfg.skip {
				return nil, merr
			}
			if cfg.warn != nil {
				cfg.warn(merr)
			}
			continue
		}

		if cfg.normalizer != nil && e.Text != "" {
			text, err := cfg.normalizer.Normalize(e.Text)
			if err != nil {
				return nil, fmt.Errorf("normalize record %d: %w", i, err)
			}
			e.Text = text
		}

		entries = append(entries, e)
	}

	return entries, nil
}

func decodeRecord(i int, raw json.RawMessage) (*Entry, *MalformedDataError) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, &MalformedDataError{Record: i, Reason: "record is not an object"}
	}

	values := make(map[string]string, len(recordFields))
	for _, name := range recordFields {
		v, ok := fields[name]
		if !ok {
			return nil, &MalformedDataError{Record: i, Field: name, Reason: "is missing"}
		}
		var s string
		if isNull(v) || json.Unmarshal(v, &s) != nil {
			return nil, &MalformedDataError{Record: i, Field: name, Reason: "is not a string"}
		}
		values[name] = s
	}

	e := &Entry{
		Location: values["location"],
		Page:     values["page"],
		Title:    values["title"],
		Text:     values["text"],
		Category: Category(values["category"]),
	}

	for _, name := range []string{"location", "title", "category"} {
		if values[name] == "" {
			return nil, &MalformedDataError{Record: i, Field: name, Reason: "is empty"}
		}
	}

	return e, nil
}

// stripAssignment returns the JSON object of a payload, removing a
// JavaScript `var name =` prefix and trailing semicolon when present.
func stripAssignment(payload []byte) ([]byte, error) {
	b := bytes.TrimSpace(bytes.TrimPrefix(payload, []byte("\xef\xbb\xbf")))
	if len(b) == 0 {
		return nil, &MalformedDataError{Record: -1, Reason: "payload is empty"}
	}
	if b[0] == '{' {
		return b, nil
	}

	eq := bytes.IndexByte(b, '=')
	if eq < 0 {
		return nil, &MalformedDataError{Record: -1, Reason: "payload is not a JSON object"}
	}
	b = bytes.TrimSpace(b[eq+1:])
	b = bytes.TrimSpace(bytes.TrimSuffix(b, []byte(";")))
	return b, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
