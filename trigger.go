package vitrine

import (
	"fmt"
	"log/slog"
)

// Descriptor describes an exhibit that can be inspected. Template is cloned,
// never attached or modified. Title and Description are passed through to
// session events for a presentation layer.
type Descriptor struct {
	Template    *Node
	Title       string
	Description string
}

// Valid reports whether the template can be instantiated.
func (d Descriptor) Valid() bool {
	return d.Template != nil && !d.Template.IsDisposed()
}

// Inspector accepts exhibits for inspection. *Controller implements it.
type Inspector interface {
	Enter(d Descriptor) error
}

// Trigger forwards select gestures on an exhibit proxy to an Inspector.
type Trigger struct {
	Proxy      *Node
	Descriptor Descriptor

	inspector Inspector
	enabled   bool
	log       *slog.Logger
}

// NewTrigger returns an enabled trigger for proxy. The inspector must be
// supplied explicitly; nil is a configuration error.
func NewTrigger(proxy *Node, d Descriptor, inspector Inspector, logger *slog.Logger) (*Trigger, error) {
	if inspector == nil {
		return nil, fmt.Errorf("%w: trigger %q has no inspector", ErrConfiguration, d.Title)
	}
	if proxy == nil {
		return nil, fmt.Errorf("%w: trigger %q has no proxy", ErrConfiguration, d.Title)
	}
	proxy.Interactable = true
	return &Trigger{
		Proxy:      proxy,
		Descriptor: d,
		inspector:  inspector,
		enabled:    true,
		log:        componentLogger(logger, "trigger"),
	}, nil
}

// Enable resumes forwarding select gestures.
func (t *Trigger) Enable() { t.enabled = true }

// Disable stops forwarding select gestures until Enable.
func (t *Trigger) Disable() { t.enabled = false }

// Enabled reports whether Select forwards.
func (t *Trigger) Enabled() bool { return t.enabled }

// Select handles a select gesture on the proxy. No-op while disabled.
func (t *Trigger) Select() error {
	if !t.enabled {
		return nil
	}
	t.log.Debug("exhibit selected", "title", t.Descriptor.Title, "description", t.Descriptor.Description)
	return t.inspector.Enter(t.Descriptor)
}

// Selector turns a pointing pose and a select button into trigger calls. On
// the button's rising edge it casts a ray along Pointer's forward axis,
// finds the nearest interactable part, and selects the trigger whose proxy
// owns it. Implements System.
type Selector struct {
	Scene   *Scene
	Pointer *Node
	Select  ButtonSource

	triggers map[*Node]*Trigger
	byName   map[string]*Trigger
	log      *slog.Logger
}

// NewSelector returns a selector casting from pointer on select presses.
func NewSelector(scene *Scene, pointer *Node, sel ButtonSource, logger *slog.Logger) *Selector {
	return &Selector{
		Scene:    scene,
		Pointer:  pointer,
		Select:   sel,
		triggers: make(map[*Node]*Trigger),
		byName:   make(map[string]*Trigger),
		log:      componentLogger(logger, "selector"),
	}
}

// Register makes t selectable by pointing at its proxy or by its title.
func (s *Selector) Register(t *Trigger) {
	s.triggers[t.Proxy] = t
	s.byName[t.Descriptor.Title] = t
}

// Trigger returns the trigger registered under title.
func (s *Selector) Trigger(title string) (*Trigger, bool) {
	t, ok := s.byName[title]
	return t, ok
}

// Pick returns the trigger the pointer is aiming at, or nil.
func (s *Selector) Pick() *Trigger {
	if s.Scene == nil || s.Pointer == nil {
		return nil
	}
	p := s.Pointer.WorldPose()
	hit := s.Scene.HitTest(p.Position, p.Forward())
	for n := hit; n != nil; n = n.Parent {
		if t, ok := s.triggers[n]; ok {
			return t
		}
	}
	return nil
}

// Update selects the aimed-at trigger on the select button's rising edge.
func (s *Selector) Update(dt float64) {
	if s.Select == nil || !s.Select.JustPressed() {
		return
	}
	t := s.Pick()
	if t == nil {
		return
	}
	if err := t.Select(); err != nil {
		s.log.Warn("select failed", "title", t.Descriptor.Title, "err", err)
	}
}
