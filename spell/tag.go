package spell

// Namespace is the implicit instruction namespace. Keys in this
// namespace are written without their prefix and keys lacking any
// namespace separator are read back into it.
const Namespace = "psi:"

// Tag identifies the wire layout of a piece. The twenty most frequent
// instruction kinds have fixed parameter shapes and get dedicated
// single-byte opcodes; everything else travels as TagGeneric with its
// full key text.
type Tag uint8

const (
	TagConnector Tag = iota
	TagConstantNumber
	TagVectorConstruct
	TagVectorSum
	TagVectorSub
	TagVectorMul
	TagVectorDiv
	TagSum
	TagSub
	TagMul
	TagDiv
	TagMod
	TagVectorExtractX
	TagVectorExtractY
	TagVectorExtractZ
	TagEntityPosition
	TagEntityLook
	TagDie
	TagErrSuppressor
	TagCaster

	TagGeneric Tag = 255
)

// tagKeys holds the bare (namespace-stripped) key of each special tag,
// indexed by opcode. The table is used in both directions so the
// encoder and decoder can never disagree.
var tagKeys = [20]string{
	TagConnector:       "connector",
	TagConstantNumber:  "constant_number",
	TagVectorConstruct: "operator_vector_construct",
	TagVectorSum:       "operator_vector_sum",
	TagVectorSub:       "operator_vector_subtract",
	TagVectorMul:       "operator_vector_multiply",
	TagVectorDiv:       "operator_vector_divide",
	TagSum:             "operator_sum",
	TagSub:             "operator_subtract",
	TagMul:             "operator_multiply",
	TagDiv:             "operator_divide",
	TagMod:             "operator_modulus",
	TagVectorExtractX:  "operator_vector_extract_x",
	TagVectorExtractY:  "operator_vector_extract_y",
	TagVectorExtractZ:  "operator_vector_extract_z",
	TagEntityPosition:  "operator_entity_position",
	TagEntityLook:      "operator_entity_look",
	TagDie:             "trick_die",
	TagErrSuppressor:   "error_suppressor",
	TagCaster:          "selector_caster",
}

var keyTags = func() map[string]Tag {
	m := make(map[string]Tag, len(tagKeys))
	for i, key := range tagKeys {
		m[key] = Tag(i)
	}
	return m
}()

// TagForKey returns the special tag for a bare key (already stripped of
// its "psi:" prefix), or TagGeneric if the key has no dedicated layout.
func TagForKey(bare string) Tag {
	if t, ok := keyTags[bare]; ok {
		return t
	}
	return TagGeneric
}

// Valid reports whether t is a known opcode.
func (t Tag) Valid() bool {
	return t < Tag(len(tagKeys)) || t == TagGeneric
}

// Key returns the full namespaced key of a special tag, or "" for
// TagGeneric.
func (t Tag) Key() string {
	if t >= Tag(len(tagKeys)) {
		return ""
	}
	return Namespace + tagKeys[t]
}

// Params returns the canonical parameter names of t's fixed shape, in
// wire order. Special tags encode exactly these parameters and nothing
// else; TagConstantNumber, TagErrSuppressor, TagCaster and TagGeneric
// have none.
func (t Tag) Params() []string {
	switch t {
	case TagConnector, TagVectorExtractX, TagVectorExtractY, TagVectorExtractZ,
		TagEntityPosition, TagEntityLook, TagDie:
		return []string{"_target"}
	case TagVectorConstruct:
		return []string{"_x", "_y", "_z"}
	case TagVectorSum, TagVectorSub, TagVectorMul, TagVectorDiv:
		return []string{"_vector1", "_vector2", "_vector3"}
	case TagSum, TagSub, TagMul, TagDiv:
		return []string{"_number1", "_number2", "_number3"}
	case TagMod:
		return []string{"_number1", "_number2"}
	default:
		return nil
	}
}
