package codec

import (
	"bytes"
	"encoding/json"
	stderrors "errors"

	"github.com/arthur-debert/alx/pkg/alias"
	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/arthur-debert/alx/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk and export payload shape
type Document struct {
	Aliases []types.Alias `json:"aliases" toml:"aliases" yaml:"aliases"`
}

// Encode serializes records in the given format. Record order is preserved.
func Encode(records []types.Alias, format Format) ([]byte, error) {
	if records == nil {
		records = []types.Alias{}
	}
	doc := Document{Aliases: records}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FormatTOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(false)
		err = enc.Encode(doc)
		data = buf.Bytes()
	case FormatYAML:
		data, err = yaml.Marshal(doc)
	default:
		return nil, unsupported(format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to encode %s", format)
	}
	return data, nil
}

// Decode parses a payload into records. Timestamps are normalized; record
// validity is left to the caller (the store or the importer).
func Decode(data []byte, format Format) ([]types.Alias, error) {
	var doc Document

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, corruptJSON(data, err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, corruptTOML(err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, errors.ErrCorruptFile, "invalid yaml")
		}
	default:
		return nil, unsupported(format)
	}

	records := make([]types.Alias, len(doc.Aliases))
	for i, rec := range doc.Aliases {
		records[i] = rec.Normalize()
	}
	return records, nil
}

// EncodeStore serializes the whole store, records ordered by name
func EncodeStore(s *alias.Store, format Format) ([]byte, error) {
	return Encode(s.Export(""), format)
}

// DecodeStore parses a payload into a store. Unlike Import, any invalid
// or duplicate record fails the whole decode with CorruptFile.
func DecodeStore(data []byte, format Format, opts ...alias.Option) (*alias.Store, error) {
	records, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	s, err := alias.FromRecords(records, opts...)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCorruptFile, "invalid alias record")
	}
	return s, nil
}

func unsupported(format Format) error {
	return errors.Newf(errors.ErrUnsupportedFormat, "unsupported format: %s", format).
		WithDetail("format", string(format))
}

func corruptTOML(err error) error {
	wrapped := errors.Wrap(err, errors.ErrCorruptFile, "invalid toml")
	var decodeErr *toml.DecodeError
	if stderrors.As(err, &decodeErr) {
		row, column := decodeErr.Position()
		wrapped.WithDetail("line", row).WithDetail("column", column)
	}
	return wrapped
}

func corruptJSON(data []byte, err error) error {
	wrapped := errors.Wrap(err, errors.ErrCorruptFile, "invalid json")

	var offset int64 = -1
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case stderrors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case stderrors.As(err, &typeErr):
		offset = typeErr.Offset
	}
	if offset >= 0 {
		line, column := lineColumn(data, offset)
		wrapped.WithDetail("line", line).WithDetail("column", column)
	}
	return wrapped
}

// lineColumn converts a byte offset into 1-based line and column numbers
func lineColumn(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	prefix := data[:offset]
	line := bytes.Count(prefix, []byte{'\n'}) + 1
	column := len(prefix) - bytes.LastIndexByte(prefix, '\n')
	return line, column
}
