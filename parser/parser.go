package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oastype/oaserrors"
	"github.com/erraggy/oastype/openapi"
)

// DefaultMaxSize is the largest document accepted when no limit is set.
const DefaultMaxSize int64 = 10 << 20

// Parser reads OpenAPI 3.0.x documents from JSON or YAML sources.
type Parser struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
	// MaxSize is the maximum document size in bytes.
	// Default: 10 MiB
	MaxSize int64
	// Codecs decodes the document tree. If nil, openapi.DefaultCodecs is used.
	Codecs *openapi.Codecs
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{MaxSize: DefaultMaxSize}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

func (p *Parser) maxSize() int64 {
	if p.MaxSize > 0 {
		return p.MaxSize
	}
	return DefaultMaxSize
}

func (p *Parser) codecs() *openapi.Codecs {
	if p.Codecs != nil {
		return p.Codecs
	}
	return openapi.DefaultCodecs()
}

// SourceFormat represents the format of the source document
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains the parsed document and metadata about its source.
//
// Callers should treat ParseResult, and in particular Document, as
// read-only after parsing.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// Note: if the source was not a file path, this will be set to the name of the method
	// and end in '.yaml' or '.json' based on the detected format
	SourcePath string
	// SourceFormat is the format the document was decoded from (JSON or YAML)
	SourceFormat SourceFormat
	// Data is the generic document tree the typed document was decoded from
	Data map[string]any
	// Document is the typed document
	Document *openapi.OpenAPI
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the document
	Stats DocumentStats
	// Codecs decoded the document; pass it to MarshalJSONWithCodecs or
	// MarshalYAMLWithCodecs to write the document back under the same
	// wire names
	Codecs *openapi.Codecs
}

// Parse parses a document file
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	loadStart := time.Now()
	info, err := os.Stat(specPath)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}
	if err := p.checkSize(info.Size()); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(specPath)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}

	res, err := p.parse(data, specPath, "", detectFormatFromPath(specPath))
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseReader parses a document from an io.Reader
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseReader.yaml or ParseReader.json
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	limit := p.maxSize()
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "document_size",
			Limit:        limit,
			Message:      "reader produced more data than allowed",
		}
	}
	res, err := p.parse(data, "", "ParseReader", SourceFormatUnknown)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes parses a document from a byte slice
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseBytes.yaml or ParseBytes.json
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	if err := p.checkSize(int64(len(data))); err != nil {
		return nil, err
	}
	return p.parse(data, "", "ParseBytes", SourceFormatUnknown)
}

func (p *Parser) checkSize(size int64) error {
	if limit := p.maxSize(); size > limit {
		return &oaserrors.ResourceLimitError{
			ResourceType: "document_size",
			Limit:        limit,
			Actual:       size,
			Message:      fmt.Sprintf("document is %s", FormatBytes(size)),
		}
	}
	return nil
}

// parse decodes data into a tree and the tree into the typed document.
// Sources without a path are named after method, with the detected format
// as the extension.
func (p *Parser) parse(data []byte, name, method string, format SourceFormat) (*ParseResult, error) {
	tree, detected, err := decodeTree(data, format)
	if err != nil {
		return nil, err
	}
	if method != "" {
		name = method + "." + string(detected)
	}
	log := p.log().With("source", name)
	log.Debug("decoded document tree", "format", detected, "size", len(data))

	doc, err := p.codecs().Parse(tree)
	if err != nil {
		log.Debug("document rejected", "errors", len(oaserrors.Flatten(err)))
		return nil, fmt.Errorf("parser: %s: %w", name, err)
	}

	res := &ParseResult{
		SourcePath:   name,
		SourceFormat: detected,
		Data:         tree,
		Document:     doc,
		SourceSize:   int64(len(data)),
		Stats:        GetDocumentStats(doc),
		Codecs:       p.codecs(),
	}
	log.Debug("parsed document",
		"paths", res.Stats.PathCount,
		"operations", res.Stats.OperationCount,
		"schemas", res.Stats.SchemaCount)
	return res, nil
}

// decodeTree turns raw JSON or YAML bytes into a generic document tree.
// When the format is unknown, JSON is tried first for content that looks
// like JSON, and YAML otherwise or if JSON fails.
func decodeTree(data []byte, format SourceFormat) (map[string]any, SourceFormat, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, format, fmt.Errorf("parser: empty document")
	}
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}

	var raw any
	if format == SourceFormatJSON {
		jsonErr := decodeJSON(data, &raw)
		if jsonErr == nil {
			return rootObject(raw, SourceFormatJSON)
		}
		// YAML is a superset of most JSON, and tolerates things like
		// trailing commas that encoding/json rejects.
		if yaml.Unmarshal(data, &raw) != nil {
			return nil, format, fmt.Errorf("parser: failed to parse JSON: %w", jsonErr)
		}
		return rootObject(raw, SourceFormatYAML)
	}

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, format, fmt.Errorf("parser: failed to parse YAML: %w", err)
	}
	return rootObject(raw, SourceFormatYAML)
}

// decodeJSON decodes a single JSON value, keeping numbers as json.Number so
// integers beyond 2^53 survive until normalizeTree converts them.
func decodeJSON(data []byte, v *any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("unexpected data after top-level value")
	}
	return nil
}

func rootObject(raw any, format SourceFormat) (map[string]any, SourceFormat, error) {
	m, ok := normalizeTree(raw).(map[string]any)
	if !ok {
		return nil, format, fmt.Errorf("parser: document root must be an object, got %T", raw)
	}
	return m, format, nil
}
