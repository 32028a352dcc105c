package vitrine

// Locomotion is the enable/disable surface of the user's free-movement
// providers. The controller disables it on entry and enables it on exit.
type Locomotion interface {
	SetLocomotionEnabled(enabled bool)
}

// LocomotionFunc adapts a function to Locomotion.
type LocomotionFunc func(enabled bool)

// SetLocomotionEnabled calls f.
func (f LocomotionFunc) SetLocomotionEnabled(enabled bool) { f(enabled) }

// Provider is a toggleable movement capability such as snap turn or
// teleportation.
type Provider struct {
	Name    string
	Enabled bool
}

// NewProvider returns an enabled provider.
func NewProvider(name string) *Provider {
	return &Provider{Name: name, Enabled: true}
}

// Providers toggles a set of providers together. Nil entries are skipped.
type Providers []*Provider

// SetLocomotionEnabled sets Enabled on every provider.
func (ps Providers) SetLocomotionEnabled(enabled bool) {
	for _, p := range ps {
		if p != nil {
			p.Enabled = enabled
		}
	}
}

// TeleportRay shows a hand's teleport ray while its activate control is held
// past a small threshold and its cancel control is fully released. When
// Provider is set and disabled the ray stays hidden, so rays disappear
// during an inspection session.
type TeleportRay struct {
	Ray      *Node
	Activate ButtonSource
	Cancel   ButtonSource
	Provider *Provider
}

// Active reports whether the ray should be visible this tick.
func (r *TeleportRay) Active() bool {
	if r.Activate == nil {
		return false
	}
	if r.Provider != nil && !r.Provider.Enabled {
		return false
	}
	cancel := 0.0
	if r.Cancel != nil {
		cancel = r.Cancel.Value()
	}
	return r.Activate.Value() > rayActivateThreshold && cancel == 0
}

// Update sets the ray node's visibility. Implements System.
func (r *TeleportRay) Update(dt float64) {
	if r.Ray == nil || r.Ray.IsDisposed() {
		return
	}
	r.Ray.Visible = r.Active()
}
