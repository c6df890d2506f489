package resource

import (
	"context"
	"log/slog"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"resource-assembler/internal/extract"
)

func attrs(rec map[string]any, fields ...string) map[string]any {
	result := make(map[string]any, len(fields))
	for _, f := range fields {
		result[f] = rec[f]
	}

	return result
}

func toOne(rec map[string]any, typ string) Relationship {
	return Relationship{Data: extract.ToOne(Reference{ID: rec["id"], Type: typ})}
}

func toMany(items []any, typ string) Relationship {
	refs := make([]Reference, len(items))
	for i, item := range items {
		refs[i] = Reference{ID: item.(map[string]any)["id"], Type: typ}
	}

	return Relationship{Data: extract.ToMany(refs...)}
}

func res(rec map[string]any, typ string, attributes map[string]any, rels map[string]Relationship) Resource {
	return Resource{ID: rec["id"], Type: typ, Attributes: attributes, Relationships: rels}
}

func dump(t *testing.T, doc *Document) {
	t.Helper()
	t.Log(spew.Sdump(doc))
}

// recordingHandler keeps the message of every log record.
type recordingHandler struct {
	messages *[]string
}

func (h recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h recordingHandler) Handle(_ context.Context, r slog.Record) error {
	*h.messages = append(*h.messages, r.Message)
	return nil
}

func (h recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h recordingHandler) WithGroup(string) slog.Handler { return h }

func newRecordingLogger(messages *[]string) *slog.Logger {
	return slog.New(recordingHandler{messages: messages})
}
