package branchline

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Props are the animatable visual properties of a timeline element.
type Props struct {
	PathLength float64
	Opacity    float64
	Scale      float64
}

// Variant names one of the two states of a Preset.
type Variant uint8

const (
	VariantHidden  Variant = iota // initial, pre-entrance state
	VariantVisible                // final, entered state
)

// TransitionKind selects how a Preset moves between variants.
type TransitionKind uint8

const (
	TransitionTween  TransitionKind = iota // fixed duration with an easing function
	TransitionSpring                       // damped spring, settles on its own
)

// Transition describes the timing of a hidden → visible change.
type Transition struct {
	Kind     TransitionKind
	Duration float32        // TransitionTween only
	Ease     ease.TweenFunc // TransitionTween only; nil means linear
	Spring   Spring         // TransitionSpring only
	Delay    float64        // seconds before the transition starts
}

// Preset pairs the hidden and visible property sets of an element with the
// transition between them.
type Preset struct {
	Hidden     Props
	Visible    Props
	Transition Transition
}

// Timing constants for the built-in presets.
const (
	branchSpringStiffness = 50
	branchSpringDamping   = 10
	nodeSpringStiffness   = 200
	nodeSpringDamping     = 10
	cardFadeDuration      = 0.15
)

// MainLinePreset draws the main line in linearly over the layout's
// DrawDuration.
func MainLinePreset(l Layout) Preset {
	return Preset{
		Hidden:  Props{PathLength: 0, Opacity: 1, Scale: 1},
		Visible: Props{PathLength: 1, Opacity: 1, Scale: 1},
		Transition: Transition{
			Kind:     TransitionTween,
			Duration: float32(l.DrawDuration),
			Ease:     ease.Linear,
		},
	}
}

// BranchPreset unfurls a branch curve with a soft spring after delay.
func BranchPreset(delay float64) Preset {
	return Preset{
		Hidden:  Props{PathLength: 0, Opacity: 0, Scale: 1},
		Visible: Props{PathLength: 1, Opacity: 1, Scale: 1},
		Transition: Transition{
			Kind:   TransitionSpring,
			Spring: NewSpring(branchSpringStiffness, branchSpringDamping),
			Delay:  delay,
		},
	}
}

// NodePreset pops a node in with a snappy spring after delay.
func NodePreset(delay float64) Preset {
	return Preset{
		Hidden:  Props{PathLength: 1, Opacity: 0, Scale: 0},
		Visible: Props{PathLength: 1, Opacity: 1, Scale: 1},
		Transition: Transition{
			Kind:   TransitionSpring,
			Spring: NewSpring(nodeSpringStiffness, nodeSpringDamping),
			Delay:  delay,
		},
	}
}

// CardPreset fades a detail card in.
func CardPreset() Preset {
	return Preset{
		Hidden:  Props{PathLength: 1, Opacity: 0, Scale: 1},
		Visible: Props{PathLength: 1, Opacity: 1, Scale: 1},
		Transition: Transition{
			Kind:     TransitionTween,
			Duration: cardFadeDuration,
			Ease:     ease.OutQuad,
		},
	}
}

// Animation drives one node between the variants of a Preset. It starts in
// the hidden variant and only moves once Start(VariantVisible) is called.
// Call Update(dt) each frame; the values are written to the target node.
// If the target node is disposed, the animation stops immediately.
//
// There is no global animation manager; owners call Update themselves.
type Animation struct {
	preset  Preset
	variant Variant
	target  *Node

	elapsed float64 // seconds since Start, including delay
	tween   *gween.Tween
	current Props
	started bool
	Done    bool
}

// NewAnimation binds preset to node and applies the hidden variant.
func NewAnimation(node *Node, p Preset) *Animation {
	a := &Animation{preset: p, target: node, current: p.Hidden}
	a.apply()
	return a
}

// Variant returns the variant most recently started.
func (a *Animation) Variant() Variant {
	return a.variant
}

// Props returns the current property values.
func (a *Animation) Props() Props {
	return a.current
}

// Started reports whether the visible variant has been started.
func (a *Animation) Started() bool {
	return a.started
}

// Start moves the animation toward v. Starting the visible variant twice is a
// no-op; starting the hidden variant snaps back to the hidden props.
func (a *Animation) Start(v Variant) {
	switch v {
	case VariantVisible:
		if a.started {
			return
		}
		a.started = true
		a.variant = VariantVisible
		a.elapsed = 0
		a.Done = false
		if a.preset.Transition.Kind == TransitionTween {
			fn := a.preset.Transition.Ease
			if fn == nil {
				fn = ease.Linear
			}
			a.tween = gween.New(0, 1, a.preset.Transition.Duration, fn)
		}
	case VariantHidden:
		a.started = false
		a.variant = VariantHidden
		a.tween = nil
		a.elapsed = 0
		a.Done = false
		a.current = a.preset.Hidden
		a.apply()
	}
}

// Update advances the animation by dt seconds and writes the values to the
// target node.
func (a *Animation) Update(dt float32) {
	if a.Done || !a.started {
		return
	}
	if a.target != nil && a.target.IsDisposed() {
		a.Done = true
		return
	}

	prev := a.elapsed
	a.elapsed += float64(dt)
	delay := a.preset.Transition.Delay
	if a.elapsed < delay {
		return
	}
	// Only the part of dt past the delay counts toward progress.
	active := a.elapsed - max(prev, delay)

	var progress float64
	switch a.preset.Transition.Kind {
	case TransitionTween:
		if a.preset.Transition.Duration <= 0 {
			progress = 1
			a.Done = true
			break
		}
		val, finished := a.tween.Update(float32(active))
		progress = float64(val)
		a.Done = finished
	case TransitionSpring:
		t := a.elapsed - delay
		sp := a.preset.Transition.Spring
		progress = sp.Value(t)
		if sp.Settled(t) {
			progress = 1
			a.Done = true
		}
	}

	a.current = lerpProps(a.preset.Hidden, a.preset.Visible, progress)
	a.apply()
}

// apply writes the current values to the target node.
func (a *Animation) apply() {
	n := a.target
	if n == nil {
		return
	}
	n.PathLength = clamp01(a.current.PathLength)
	n.Alpha = clamp01(a.current.Opacity)
	n.ScaleX = a.current.Scale
	n.ScaleY = a.current.Scale
	n.MarkDirty()
}

func lerpProps(from, to Props, t float64) Props {
	return Props{
		PathLength: from.PathLength + (to.PathLength-from.PathLength)*t,
		Opacity:    from.Opacity + (to.Opacity-from.Opacity)*t,
		Scale:      from.Scale + (to.Scale-from.Scale)*t,
	}
}
