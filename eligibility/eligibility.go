// Package eligibility holds the policy checks deciding whether a
// registered service component may expose a quick-settings style tile.
// All checks are stateless boolean predicates over a registry snapshot;
// they never touch the blob carrier.
package eligibility

import (
	"log/slog"

	"github.com/quartzbyte/safelist/descriptor"
)

// BindPermission must guard a tile service so only the platform can
// bind to it.
const BindPermission = "permission.BIND_TILE_SERVICE"

// EnabledState mirrors a component's explicit enabled setting.
type EnabledState int

const (
	StateDefault EnabledState = iota
	StateEnabled
	StateDisabled
)

// ServiceRecord is the registry's view of one resolvable component.
type ServiceRecord struct {
	Component      string
	Exported       bool
	Permission     string
	Enabled        EnabledState
	DefaultEnabled bool
}

// Registry resolves component names to service records. The second
// return is false when the component does not resolve at all.
type Registry interface {
	ResolveService(component string) (ServiceRecord, bool)
}

// ResolveEnabled decides effective enablement: an explicit setting
// wins, the default state falls back to the record's default.
func ResolveEnabled(state EnabledState, defaultEnabled bool) bool {
	switch state {
	case StateEnabled:
		return true
	case StateDefault:
		return defaultEnabled
	default:
		return false
	}
}

// ValidTileService reports whether component resolves to a service
// that is exported, guarded by BindPermission, and enabled.
func ValidTileService(reg Registry, component string) bool {
	rec, ok := reg.ResolveService(component)
	if !ok {
		slog.Warn("tile service does not resolve", "component", component)
		return false
	}
	if !rec.Exported {
		slog.Warn("tile service not exported", "component", component)
		return false
	}
	if rec.Permission != BindPermission {
		slog.Warn("tile service not permission-guarded", "component", component)
		return false
	}
	return ResolveEnabled(rec.Enabled, rec.DefaultEnabled)
}

// FilterEligible returns the set of component names from descs whose
// tile services pass validation. Duplicates collapse; ineligible
// entries are skipped, not reported.
func FilterEligible(reg Registry, descs []descriptor.Descriptor) map[string]struct{} {
	out := make(map[string]struct{}, len(descs))
	for _, d := range descs {
		if _, seen := out[d.Component]; seen {
			continue
		}
		if ValidTileService(reg, d.Component) {
			out[d.Component] = struct{}{}
		}
	}
	return out
}
