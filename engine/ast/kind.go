package ast

import "strings"

// Kind is the closed discriminator tag of a Node (C1: node-kind registry).
type Kind int32

// KindUnset is never a valid registered kind; it marks a zero-value Node.
const KindUnset Kind = -1

// SlotSpec is one entry in a kind's ordered slot schema.
type SlotSpec struct {
	Slot     SlotID
	Required bool
}

// KindSchema is the immutable, per-kind entry of the node-kind registry.
type KindSchema struct {
	Tag         string
	Slots       []SlotSpec
	VarLen      bool
	HashRawArgs bool
	SQLNames    []string // first is canonical
	Facets      Facet
}

var (
	kindSchemas  []KindSchema
	kindByTag    = map[string]Kind{}
	kindBySQL    = map[string]Kind{} // uppercased SQL name -> Kind
	kindsFrozen  bool
)

// registerKind appends a new kind to the registry and returns its Kind tag.
// Called only from package init via the table in kinds_table.go.
func registerKind(tag string, slots []SlotSpec, varLen bool, hashRawArgs bool, sqlNames []string, facets Facet) Kind {
	if kindsFrozen {
		panic("ast: kind registry is frozen, cannot register " + tag)
	}
	k := Kind(len(kindSchemas))
	if len(sqlNames) == 0 {
		sqlNames = []string{defaultSQLName(tag)}
	}
	kindSchemas = append(kindSchemas, KindSchema{
		Tag:         tag,
		Slots:       slots,
		VarLen:      varLen,
		HashRawArgs: hashRawArgs,
		SQLNames:    sqlNames,
		Facets:      facets,
	})
	kindByTag[tag] = k
	for _, name := range sqlNames {
		kindBySQL[strings.ToUpper(name)] = k
	}
	return k
}

func defaultSQLName(tag string) string {
	var b strings.Builder
	for i, r := range tag {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// Schema returns the registered schema for k. Panics if k is not registered;
// callers that construct nodes only ever do so through NewNode, which
// validates the kind first.
func Schema(k Kind) KindSchema {
	return kindSchemas[k]
}

// Tag returns the canonical tag string for a kind, e.g. "Select".
func (k Kind) Tag() string {
	if int(k) < 0 || int(k) >= len(kindSchemas) {
		return "Unknown"
	}
	return kindSchemas[k].Tag
}

func (k Kind) String() string { return k.Tag() }

// Valid reports whether k is a kind registered in this process.
func (k Kind) Valid() bool { return int(k) >= 0 && int(k) < len(kindSchemas) }

// LookupByTag resolves a kind by its canonical Go-facing tag, e.g. "Select".
func LookupByTag(tag string) (Kind, bool) {
	k, ok := kindByTag[tag]
	return k, ok
}

// LookupBySQLName resolves a kind by one of its SQL aliases, case-insensitive.
func LookupBySQLName(name string) (Kind, bool) {
	k, ok := kindBySQL[strings.ToUpper(strings.TrimSpace(name))]
	return k, ok
}

// AllKindTags returns every registered tag, in registration order. Used by
// the "did you mean" suggestion machinery in errors.go.
func AllKindTags() []string {
	tags := make([]string, len(kindSchemas))
	for i, s := range kindSchemas {
		tags[i] = s.Tag
	}
	return tags
}
