package task

import (
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/go-playground/validator/v10"
	"github.com/td0m/tuffous/pkg/task/date"
)

// ID identifies a task. It is derived from the name and creation time, so it is
// practically but not cryptographically unique.
type ID uint64

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

func ParseID(s string) (ID, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	return ID(n), err
}

// NewID hashes the name and creation time into an identifier.
// The same inputs always produce the same ID.
func NewID(name string, created time.Time) ID {
	n := xxhash.Sum64String(name)
	c := xxhash.Sum64String(created.UTC().Format(time.RFC3339Nano))
	return ID(xxhash.Sum64String(strconv.FormatUint(n, 10) + strconv.FormatUint(c, 10)))
}

type Metadata struct {
	Name    string `json:"name" yaml:"name"`
	Details string `json:"details" yaml:"details"`
}

type Task struct {
	ID        ID         `json:"id" yaml:"id"`
	Completed bool       `json:"completed" yaml:"completed"`
	Created   time.Time  `json:"creation_date" yaml:"creation_date"`
	Deadline  *time.Time `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	Scheduled *date.Date `json:"scheduled_date,omitempty" yaml:"scheduled_date,omitempty"`
	// Parents are the tasks this one is nested under
	Parents  []ID     `json:"parents" yaml:"parents" validate:"unique"`
	Tags     []string `json:"tags" yaml:"tags" validate:"unique,dive,required"`
	Weight   uint     `json:"weight" yaml:"weight" validate:"min=1"`
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

// New creates a pending task with weight 1
func New(name string, created time.Time) Task {
	return Task{
		ID:       NewID(name, created),
		Created:  created,
		Parents:  []ID{},
		Tags:     []string{},
		Weight:   1,
		Metadata: Metadata{Name: name},
	}
}

var validate = validator.New()

// Validate checks the invariants a single record must hold on its own
func (t Task) Validate() error {
	return validate.Struct(t)
}

// Normalize drops repeated parents, and repeated or empty tags, keeping the
// first occurrence. Nil lists become empty.
func (t *Task) Normalize() {
	parents := make([]ID, 0, len(t.Parents))
	for _, p := range t.Parents {
		if !contains(parents, p) {
			parents = append(parents, p)
		}
	}
	t.Parents = parents

	tags := make([]string, 0, len(t.Tags))
	seen := map[string]bool{}
	for _, tag := range t.Tags {
		if tag != "" && !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	t.Tags = tags
}

// Equal compares identity only
func (t Task) Equal(o Task) bool {
	return t.ID == o.ID
}

func (t Task) Name() string {
	return t.Metadata.Name
}

// Clone returns a deep copy
func (t Task) Clone() Task {
	out := t
	out.Parents = append([]ID{}, t.Parents...)
	out.Tags = append([]string{}, t.Tags...)
	if t.Deadline != nil {
		d := *t.Deadline
		out.Deadline = &d
	}
	if t.Scheduled != nil {
		s := *t.Scheduled
		out.Scheduled = &s
	}
	return out
}

func (t Task) HasParent(id ID) bool {
	return contains(t.Parents, id)
}

func (t Task) HasTag(tag string) bool {
	for _, x := range t.Tags {
		if x == tag {
			return true
		}
	}
	return false
}

// AddTag is a no-op when the tag is already present
func (t *Task) AddTag(tag string) {
	if tag == "" || t.HasTag(tag) {
		return
	}
	t.Tags = append(t.Tags, tag)
}

func (t *Task) RemoveTag(tag string) {
	for i, x := range t.Tags {
		if x == tag {
			t.Tags = append(t.Tags[:i], t.Tags[i+1:]...)
			return
		}
	}
}

// TagMarker negates a tag in filters and unbinds it in edits
const TagMarker = "!"

// ParseTagOp splits a tag argument into the tag and whether it carries the
// marker, either as prefix or suffix.
func ParseTagOp(s string) (tag string, negated bool) {
	if t, ok := strings.CutPrefix(s, TagMarker); ok {
		return t, true
	}
	if t, ok := strings.CutSuffix(s, TagMarker); ok {
		return t, true
	}
	return s, false
}

// ApplyTagOp binds the tag, or unbinds it when it carries the marker
func (t *Task) ApplyTagOp(s string) {
	tag, negated := ParseTagOp(s)
	if negated {
		t.RemoveTag(tag)
		return
	}
	t.AddTag(tag)
}

func (t *Task) removeParent(id ID) bool {
	for i, p := range t.Parents {
		if p == id {
			t.Parents = append(t.Parents[:i], t.Parents[i+1:]...)
			return true
		}
	}
	return false
}
