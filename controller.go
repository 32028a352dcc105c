package vitrine

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
)

// Config wires a Controller to its collaborators. Scene, Rig, Station and
// SpawnPoint are required; Enter reports ErrConfiguration without touching
// anything when one is missing. Everything else is optional.
type Config struct {
	Settings

	// Scene spawns and destroys inspected instances.
	Scene *Scene
	// Rig stands for the user's tracked origin. Its pose is saved on entry
	// and restored on exit.
	Rig *Node
	// Station is where the rig stands while inspecting.
	Station *Node
	// SpawnPoint is where the miniature is placed.
	SpawnPoint *Node
	// RotationReference supplies the up and right axes for orbiting,
	// usually the viewer's head. Falls back to Station.
	RotationReference *Node

	// Locomotion is disabled for the duration of a session.
	Locomotion Locomotion

	Rotate AxisSource   // orbit stick
	Zoom   AxisSource   // zoom stick; only Y is read
	Exit   ButtonSource // returns to the museum on its rising edge

	Events EventSink
	Logger *slog.Logger
}

// session is the state of one open inspection.
type session struct {
	active     bool
	savedPose  Pose
	instance   *Node
	baseScale  mgl64.Vec3
	zoom       float64
	descriptor Descriptor
}

// Controller moves the user between the museum and the inspection area and
// maps stick input onto the inspected miniature. It is driven by one tick
// loop and is not safe for concurrent use.
type Controller struct {
	cfg     Config
	zoom    Range
	log     *slog.Logger
	session session
}

// NewController returns a controller using cfg. Zero tunables fall back to
// DefaultSettings one by one; the rest are checked by Enter.
func NewController(cfg Config) *Controller {
	def := DefaultSettings()
	if cfg.TargetHeight == 0 {
		cfg.TargetHeight = def.TargetHeight
	}
	if cfg.RotateSpeed == 0 {
		cfg.RotateSpeed = def.RotateSpeed
	}
	if cfg.ZoomSpeed == 0 {
		cfg.ZoomSpeed = def.ZoomSpeed
	}
	if cfg.MinZoom == 0 {
		cfg.MinZoom = def.MinZoom
	}
	if cfg.MaxZoom == 0 {
		cfg.MaxZoom = def.MaxZoom
	}
	if cfg.DeadZone == 0 {
		cfg.DeadZone = def.DeadZone
	}
	return &Controller{
		cfg:  cfg,
		zoom: Range{Min: cfg.MinZoom, Max: cfg.MaxZoom},
		log:  componentLogger(cfg.Logger, "inspect"),
	}
}

// Active reports whether a session is open.
func (c *Controller) Active() bool {
	return c.session.active
}

// Instance returns the inspected miniature, or nil when inactive.
func (c *Controller) Instance() *Node {
	return c.session.instance
}

// Zoom returns the current zoom multiplier.
func (c *Controller) Zoom() float64 {
	return c.session.zoom
}

// BaseScale returns the miniature's scale right after normalization.
func (c *Controller) BaseScale() mgl64.Vec3 {
	return c.session.baseScale
}

// SavedPose returns the rig pose captured on entry. ok is false when no
// session is open.
func (c *Controller) SavedPose() (pose Pose, ok bool) {
	return c.session.savedPose, c.session.active
}

// Descriptor returns the descriptor of the inspected exhibit.
func (c *Controller) Descriptor() Descriptor {
	return c.session.descriptor
}

// Settings returns the tunables in effect.
func (c *Controller) Settings() Settings {
	return c.cfg.Settings
}

// validate checks the collaborators and settings Enter needs.
func (c *Controller) validate(d Descriptor) error {
	if err := c.cfg.Settings.Validate(); err != nil {
		return err
	}
	switch {
	case c.cfg.Scene == nil:
		return fmt.Errorf("%w: scene not assigned", ErrConfiguration)
	case c.cfg.Rig == nil:
		return fmt.Errorf("%w: rig not assigned", ErrConfiguration)
	case c.cfg.Station == nil:
		return fmt.Errorf("%w: inspect station not assigned", ErrConfiguration)
	case c.cfg.SpawnPoint == nil:
		return fmt.Errorf("%w: inspect spawn point not assigned", ErrConfiguration)
	}
	if !d.Valid() {
		return fmt.Errorf("%w: %q has no template", ErrInvalidDescriptor, d.Title)
	}
	return nil
}

// Enter opens an inspection session for d: locomotion is disabled, the rig
// pose is saved, the rig moves to the station, and a normalized copy of the
// exhibit is spawned at the spawn point.
//
// While a session is open the call is ignored under ReentryIgnore, or swaps
// the exhibit under ReentryReplace. On error nothing has changed.
func (c *Controller) Enter(d Descriptor) error {
	if c.session.active && c.cfg.Reentry == ReentryIgnore {
		return nil
	}
	if err := c.validate(d); err != nil {
		c.log.Warn("enter inspection aborted", "exhibit", d.Title, "err", err)
		return err
	}
	if c.session.active {
		c.replace(d)
		return nil
	}

	if c.cfg.Locomotion != nil {
		c.cfg.Locomotion.SetLocomotionEnabled(false)
	}
	c.session.savedPose = c.cfg.Rig.LocalPose()
	c.cfg.Rig.SetWorldPose(c.cfg.Station.WorldPose())
	c.spawn(d)
	c.session.active = true

	c.log.Debug("inspection entered", "exhibit", d.Title, "instance", c.session.instance.ID)
	c.emit(SessionEntered, c.session.instance.ID)
	return nil
}

// replace swaps the inspected exhibit while keeping the saved pose.
func (c *Controller) replace(d Descriptor) {
	c.destroyInstance()
	c.cfg.Rig.SetWorldPose(c.cfg.Station.WorldPose())
	c.spawn(d)
	c.log.Debug("inspection replaced", "exhibit", d.Title, "instance", c.session.instance.ID)
	c.emit(SessionReplaced, c.session.instance.ID)
}

// spawn instantiates, normalizes, and resets zoom.
func (c *Controller) spawn(d Descriptor) {
	inst := c.cfg.Scene.Instantiate(d.Template, c.cfg.SpawnPoint.WorldPose())
	if factor, ok := Normalize(inst, c.cfg.TargetHeight); ok {
		c.log.Debug("instance normalized", "exhibit", d.Title, "factor", factor)
	}
	c.session.instance = inst
	c.session.baseScale = inst.Scale
	c.session.zoom = c.zoom.Clamp(1)
	if c.session.zoom != 1 {
		inst.Scale = c.session.baseScale.Mul(c.session.zoom)
	}
	c.session.descriptor = d
}

// Exit closes the session: the miniature is destroyed, locomotion comes
// back, and the rig returns to exactly the pose saved on entry. No-op when
// no session is open.
func (c *Controller) Exit() {
	if !c.session.active {
		return
	}
	id := c.session.instance.ID
	c.destroyInstance()
	if c.cfg.Locomotion != nil {
		c.cfg.Locomotion.SetLocomotionEnabled(true)
	}
	c.cfg.Rig.SetLocalPose(c.session.savedPose)
	c.session.active = false

	c.log.Debug("inspection exited", "exhibit", c.session.descriptor.Title)
	c.emit(SessionExited, id)
	c.session.descriptor = Descriptor{}
}

func (c *Controller) destroyInstance() {
	if c.session.instance != nil {
		c.cfg.Scene.Destroy(c.session.instance)
		c.session.instance = nil
	}
}

// Update applies one tick of input: orbit, then zoom, then the exit check,
// so a rotate or zoom on the exit tick still lands before teardown.
// Implements System; no-op while inactive.
func (c *Controller) Update(dt float64) {
	if !c.session.active || c.session.instance == nil {
		return
	}
	c.updateRotate(dt)
	c.updateZoom(dt)
	if c.cfg.Exit != nil && c.cfg.Exit.JustPressed() {
		c.Exit()
	}
}

func (c *Controller) updateRotate(dt float64) {
	if c.cfg.Rotate == nil {
		return
	}
	in := c.cfg.Rotate.Axis()
	if lenSqr(in) <= c.cfg.DeadZone {
		return
	}
	ref := c.cfg.RotationReference
	if ref == nil {
		ref = c.cfg.Station
	}
	if ref == nil {
		return
	}
	yaw := in[0] * c.cfg.RotateSpeed * dt
	pitch := -in[1] * c.cfg.RotateSpeed * dt

	frame := ref.WorldPose()
	inst := c.session.instance
	center := inst.WorldPosition()
	inst.RotateAround(center, frame.Up(), yaw)
	inst.RotateAround(center, frame.Right(), pitch)
}

func (c *Controller) updateZoom(dt float64) {
	if c.cfg.Zoom == nil {
		return
	}
	y := c.cfg.Zoom.Axis()[1]
	c.session.zoom = c.zoom.Clamp(c.session.zoom + y*c.cfg.ZoomSpeed*dt)
	c.session.instance.Scale = c.session.baseScale.Mul(c.session.zoom)
}

func (c *Controller) emit(t SessionEventType, instanceID uint32) {
	if c.cfg.Events == nil {
		return
	}
	c.cfg.Events.EmitSessionEvent(SessionEvent{
		Type:        t,
		Title:       c.session.descriptor.Title,
		Description: c.session.descriptor.Description,
		InstanceID:  instanceID,
		SavedPose:   c.session.savedPose,
		Zoom:        c.session.zoom,
	})
}
