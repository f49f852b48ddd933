package item

// Attribute keys an item record may expose. Which keys are present varies by
// deployment: older schemas lack the structured gate columns entirely and
// fall back to free-text notes.
const (
	AttrProductionStatus    = "production_status"
	AttrQualityStatus       = "quality_status"
	AttrProductionCheckedBy = "production_checked_by"
	AttrProductionCheckedAt = "production_checked_at"
	AttrQualityCheckedBy    = "quality_checked_by"
	AttrQualityCheckedAt    = "quality_checked_at"
	AttrQuantityProduced    = "quantity_produced"
	AttrNotes               = "notes"
)

// Attributes is the raw attribute set of one item record as loaded from
// storage. A key maps to nil when the deployment exposes the column but the
// row holds no value. Only the capability prober and the persistence
// adapters touch Attributes directly; everything else consumes the typed
// Capabilities descriptor and the OrderItem accessors.
type Attributes map[string]any

// hasKey reports whether the attribute key is exposed at all, regardless of
// whether it currently holds a value.
func (a Attributes) hasKey(key string) bool {
	_, ok := a[key]
	return ok
}

// hasValue reports whether the attribute key is exposed with a concrete
// value. For gate-status attributes an absent key and an exposed-but-null
// key mean the same thing: no structured gate information.
func (a Attributes) hasValue(key string) bool {
	v, ok := a[key]
	return ok && v != nil
}

// clone returns a shallow copy so callers cannot mutate the item's state
// behind its back.
func (a Attributes) clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Capabilities describes which optional validation attributes one item
// record supports. It is a derived classification, not a stored entity: it
// is recomputed by inspection every time item data is loaded and must never
// be cached beyond a single reconciliation, because different items may
// expose different shapes in an evolving schema.
type Capabilities struct {
	// HasProductionGate is true when the item carries a structured
	// production gate status.
	HasProductionGate bool

	// HasQualityGate is true when the item carries a structured quality
	// gate status.
	HasQualityGate bool

	// HasValidationAudit is true when the item can record who validated a
	// gate and when.
	HasValidationAudit bool

	// HasFreeTextNotes is true when the item carries a free-text notes
	// field, the fallback channel for schemas without structured gates.
	HasFreeTextNotes bool
}

// ProbeCapabilities inspects an item's attribute set and reports which
// validation capabilities it supports. Probing never fails: absence of an
// attribute is a valid, expected outcome.
//
// Gate capabilities require a concrete status value because an exposed but
// null gate column carries no more information than a missing one. Audit and
// notes capabilities only require the key to be exposed, since those fields
// legitimately stay empty until the first validation writes them.
func ProbeCapabilities(attrs Attributes) Capabilities {
	return Capabilities{
		HasProductionGate: attrs.hasValue(AttrProductionStatus),
		HasQualityGate:    attrs.hasValue(AttrQualityStatus),
		HasValidationAudit: attrs.hasKey(AttrProductionCheckedBy) ||
			attrs.hasKey(AttrProductionCheckedAt) ||
			attrs.hasKey(AttrQualityCheckedBy) ||
			attrs.hasKey(AttrQualityCheckedAt),
		HasFreeTextNotes: attrs.hasKey(AttrNotes),
	}
}

// HasGate reports whether the capability set includes the structured status
// field for the given gate.
func (c Capabilities) HasGate(g Gate) bool {
	switch g {
	case GateProduction:
		return c.HasProductionGate
	case GateQuality:
		return c.HasQualityGate
	default:
		return false
	}
}

// gateStatusKey maps a gate to its status attribute key.
func gateStatusKey(g Gate) string {
	if g == GateQuality {
		return AttrQualityStatus
	}
	return AttrProductionStatus
}

// gateAuditKeys maps a gate to its checked-by and checked-at attribute keys.
func gateAuditKeys(g Gate) (byKey, atKey string) {
	if g == GateQuality {
		return AttrQualityCheckedBy, AttrQualityCheckedAt
	}
	return AttrProductionCheckedBy, AttrProductionCheckedAt
}
