package llm

import (
	"fmt"
	"strings"
)

// FieldKind is the JSON shape of a schema field
type FieldKind string

// Supported field kinds
const (
	KindString     FieldKind = "string"
	KindBool       FieldKind = "boolean"
	KindStringList FieldKind = "string_list"
	KindIntList    FieldKind = "int_list"
	KindObjectList FieldKind = "object_list"
)

// DefaultScalar is the value missing scalar fields receive
const DefaultScalar = "NA"

// ExtractionSchema describes the JSON object a model must return.
// It renders both the prompt instructions and the JSON Schema that validates the reply.
type ExtractionSchema struct {
	Name        string
	Description string
	Fields      []SchemaField
	// Strict rejects keys that are not declared fields instead of dropping them
	Strict bool
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string
	Kind        FieldKind
	Description string
	// Default overrides the kind default ("NA", false or an empty list)
	Default any
	// Enum lists the preferred values of a string field; others fall back to Default
	Enum []string
	// Items describes the entries of a KindObjectList field
	Items []SchemaField
}

// DefaultValue returns the value used when the model omits the field or returns null
func (f SchemaField) DefaultValue() any {
	if f.Default != nil {
		return f.Default
	}
	switch f.Kind {
	case KindBool:
		return false
	case KindStringList, KindIntList, KindObjectList:
		return []any{}
	default:
		return DefaultScalar
	}
}

// FieldNames returns the top-level field names in declaration order
func (s ExtractionSchema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Summary is a one-paragraph description of the schema for routing prompts
func (s ExtractionSchema) Summary() string {
	return fmt.Sprintf("%s: %s Fields: %s.", s.Name, s.Description, strings.Join(s.FieldNames(), ", "))
}

// FormatInstructions renders the output structure the model must follow
func (s ExtractionSchema) FormatInstructions() string {
	var sb strings.Builder
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	writeFields(&sb, s.Fields, "  ")
	sb.WriteString("}\n\n")
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the context, do not invent or infer values.\n")
	sb.WriteString("- Use null for any field that is not present.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n")
	return sb.String()
}

func writeFields(sb *strings.Builder, fields []SchemaField, indent string) {
	for i, field := range fields {
		sep := ","
		if i == len(fields)-1 {
			sep = ""
		}

		if field.Kind == KindObjectList {
			sb.WriteString(fmt.Sprintf("%s\"%s\": [ // %s\n", indent, field.Name, field.Description))
			sb.WriteString(indent + "  {\n")
			writeFields(sb, field.Items, indent+"    ")
			sb.WriteString(indent + "  }\n")
			sb.WriteString(fmt.Sprintf("%s]%s\n", indent, sep))
			continue
		}

		sb.WriteString(fmt.Sprintf("%s\"%s\": %s%s", indent, field.Name, typeHint(field.Kind), sep))
		desc := field.Description
		if len(field.Enum) > 0 {
			desc = fmt.Sprintf("%s (one of: %s)", desc, strings.Join(field.Enum, ", "))
		}
		if desc != "" {
			sb.WriteString(" // " + desc)
		}
		sb.WriteString("\n")
	}
}

func typeHint(kind FieldKind) string {
	switch kind {
	case KindBool:
		return "boolean"
	case KindStringList:
		return "[\"string\"]"
	case KindIntList:
		return "[integer]"
	default:
		return "\"string\""
	}
}

// JSONSchema renders the schema as a JSON Schema document.
// Scalars accept null, which is later replaced by the field default.
func (s ExtractionSchema) JSONSchema() map[string]any {
	schema := objectSchema(s.Fields)
	schema["type"] = "object"
	if s.Strict {
		schema["additionalProperties"] = false
	}
	return schema
}

func objectSchema(fields []SchemaField) map[string]any {
	props := make(map[string]any, len(fields))
	for _, f := range fields {
		props[f.Name] = fieldSchema(f)
	}
	return map[string]any{
		"type":       []any{"object", "null"},
		"properties": props,
	}
}

func fieldSchema(f SchemaField) map[string]any {
	switch f.Kind {
	case KindBool:
		return map[string]any{"type": []any{"boolean", "null"}}
	case KindStringList:
		return map[string]any{
			"type":  []any{"array", "null"},
			"items": map[string]any{"type": []any{"string", "null"}},
		}
	case KindIntList:
		return map[string]any{
			"type":  []any{"array", "null"},
			"items": map[string]any{"type": "integer"},
		}
	case KindObjectList:
		return map[string]any{
			"type":  []any{"array", "null"},
			"items": objectSchema(f.Items),
		}
	default:
		return map[string]any{"type": []any{"string", "null"}}
	}
}

// ApplyDefaults returns a copy of raw restricted to the declared fields, with
// every missing or null value replaced by its default. Nested object lists are
// handled recursively and null list entries are dropped.
func (s ExtractionSchema) ApplyDefaults(raw map[string]any) map[string]any {
	return applyDefaults(s.Fields, raw)
}

func applyDefaults(fields []SchemaField, raw map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		out[f.Name] = coerce(f, raw[f.Name])
	}
	return out
}

func coerce(f SchemaField, v any) any {
	switch f.Kind {
	case KindBool:
		if b, ok := v.(bool); ok {
			return b
		}
	case KindStringList:
		if list, ok := v.([]any); ok {
			out := make([]any, 0, len(list))
			for _, item := range list {
				if s, ok := item.(string); ok {
					out = append(out, s)
				}
			}
			return out
		}
	case KindIntList:
		if list, ok := v.([]any); ok {
			return list
		}
	case KindObjectList:
		if list, ok := v.([]any); ok {
			out := make([]any, 0, len(list))
			for _, item := range list {
				if m, ok := item.(map[string]any); ok {
					out = append(out, applyDefaults(f.Items, m))
				}
			}
			return out
		}
	default:
		if s, ok := v.(string); ok {
			if len(f.Enum) == 0 {
				return s
			}
			for _, allowed := range f.Enum {
				if strings.EqualFold(strings.TrimSpace(s), allowed) {
					return allowed
				}
			}
		}
	}
	return f.DefaultValue()
}
