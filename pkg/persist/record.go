package persist

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/td0m/tuffous/pkg/task"
)

// recordSchema describes one task file. Files that do not match are not tasks.
const recordSchema = `{
	"type": "object",
	"required": ["id", "completed", "creation_date", "weight", "metadata"],
	"properties": {
		"id": {"type": "integer", "minimum": 0},
		"completed": {"type": "boolean"},
		"creation_date": {"type": "string", "format": "date-time"},
		"deadline": {"type": ["string", "null"], "format": "date-time"},
		"scheduled_date": {"type": ["string", "null"], "format": "date"},
		"parents": {"type": ["array", "null"], "items": {"type": "integer", "minimum": 0}},
		"tags": {"type": ["array", "null"], "items": {"type": "string"}},
		"weight": {"type": "integer", "minimum": 1},
		"metadata": {
			"type": "object",
			"required": ["name"],
			"properties": {
				"name": {"type": "string"},
				"details": {"type": "string"}
			}
		}
	}
}`

var schema = compileSchema()

func compileSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.AssertFormat = true
	if err := c.AddResource("task.json", bytes.NewReader([]byte(recordSchema))); err != nil {
		panic(fmt.Sprintf("add task schema: %v", err))
	}
	return c.MustCompile("task.json")
}

// encode serializes a task into the bytes of its file
func encode(t task.Task) ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid task %s: %w", t.ID, err)
	}
	return json.MarshalIndent(t, "", "  ")
}

// decode parses and validates the bytes of a task file
func decode(bs []byte) (task.Task, error) {
	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(bs))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return task.Task{}, fmt.Errorf("parse: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return task.Task{}, fmt.Errorf("schema: %w", err)
	}
	var t task.Task
	if err := json.Unmarshal(bs, &t); err != nil {
		return task.Task{}, fmt.Errorf("decode: %w", err)
	}
	// repeated parents or tags are repairable, not a reason to drop the task
	t.Normalize()
	if err := t.Validate(); err != nil {
		return task.Task{}, fmt.Errorf("validate: %w", err)
	}
	return t, nil
}
