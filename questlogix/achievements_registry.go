package questlogix

// AchievementRegistry holds the achievement catalog in presentation order
// with ID lookup. It is populated once during module startup and sealed
// before any player traffic, after which it is read-only and safe for
// concurrent readers without locking.
type AchievementRegistry struct {
	defs   []*AchievementDefinition
	index  map[string]int
	built  bool
	sealed bool
}

// NewAchievementRegistry creates a registry pre-loaded with the built-in
// catalog, ready for evaluation.
func NewAchievementRegistry() *AchievementRegistry {
	r := NewEmptyAchievementRegistry()
	r.InstallDefaultCatalog()
	return r
}

// NewEmptyAchievementRegistry creates a registry with no definitions so a
// custom catalog can be registered before sealing.
func NewEmptyAchievementRegistry() *AchievementRegistry {
	return &AchievementRegistry{
		index: make(map[string]int),
	}
}

// InstallDefaultCatalog registers the built-in achievement definitions and
// seals the registry. Repeat calls are no-ops, so multiple startup paths can
// all request the catalog safely.
func (r *AchievementRegistry) InstallDefaultCatalog() {
	if r.built {
		return
	}
	for _, def := range defaultAchievementDefinitions() {
		r.Register(def)
	}
	r.built = true
	r.Seal()
}

// Register adds a definition to the catalog. Registering an ID twice
// replaces the earlier definition in place, keeping its catalog position.
// Definitions without an ID and calls after sealing are ignored.
func (r *AchievementRegistry) Register(def *AchievementDefinition) {
	if r.sealed || def == nil || def.Id == "" {
		return
	}
	if i, ok := r.index[def.Id]; ok {
		r.defs[i] = def
		return
	}
	r.index[def.Id] = len(r.defs)
	r.defs = append(r.defs, def)
}

// Seal freezes the catalog. All registration after this point is ignored.
func (r *AchievementRegistry) Seal() {
	r.sealed = true
}

// Get returns the definition for the given ID, if registered.
func (r *AchievementRegistry) Get(id string) (*AchievementDefinition, bool) {
	i, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return r.defs[i], true
}

// All returns the catalog in registration order. The returned slice is a
// copy, the definitions themselves are shared.
func (r *AchievementRegistry) All() []*AchievementDefinition {
	out := make([]*AchievementDefinition, len(r.defs))
	copy(out, r.defs)
	return out
}

// ByCategory returns the definitions of one category in registration order.
func (r *AchievementRegistry) ByCategory(category AchievementCategory) []*AchievementDefinition {
	var out []*AchievementDefinition
	for _, def := range r.defs {
		if def.Category == category {
			out = append(out, def)
		}
	}
	return out
}

// Count returns the total number of registered definitions.
func (r *AchievementRegistry) Count() int {
	return len(r.defs)
}

// StandardCount returns the number of definitions that are neither secret
// nor meta. This is the population the meta achievement requires.
func (r *AchievementRegistry) StandardCount() int {
	n := 0
	for _, def := range r.defs {
		if !def.IsSecret && !def.Meta {
			n++
		}
	}
	return n
}

// IndexOf returns the catalog position of the given ID, or -1 when the ID is
// not registered. Positions break ties between unlocks of equal tier.
func (r *AchievementRegistry) IndexOf(id string) int {
	i, ok := r.index[id]
	if !ok {
		return -1
	}
	return i
}
