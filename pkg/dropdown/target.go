package dropdown

// Point is a terminal cell position, zero-based from the top-left.
type Point struct {
	X, Y int
}

// Rect is a block of cells. Empty rects contain nothing.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// TargetRequest describes the trigger the panel is attached to.
type TargetRequest struct {
	Origin  Point // top-left of the trigger on screen
	Trigger Rect  // trigger bounds on screen
	// OpenWidth is the trigger width recorded when the panel opened.
	OpenWidth int
}

// Placement says where the panel goes and how wide it is.
type Placement struct {
	// Portal is true when the panel is detached from the widget's own view
	// and must be composited by the host as a top-level layer.
	Portal bool
	At     Point
	// Width is the panel's total width; zero sizes it to content.
	Width int
}

// TargetResolver decides where the panel attaches.
type TargetResolver interface {
	Resolve(req TargetRequest) Placement
}

// InlineTarget keeps the panel in the widget's own view, directly beneath
// the trigger, sized to its content.
type InlineTarget struct{}

// Resolve implements TargetResolver.
func (InlineTarget) Resolve(req TargetRequest) Placement {
	return Placement{
		At: Point{X: req.Trigger.X, Y: req.Trigger.Y + req.Trigger.Height},
	}
}

// PortalTarget detaches the panel into a top-level layer anchored beneath
// the trigger. Its width is the trigger width captured at open time, so the
// panel does not resize while chips are added.
type PortalTarget struct {
	// Offset shifts the anchor, e.g. to leave room for a host border.
	Offset Point
}

// Resolve implements TargetResolver.
func (p PortalTarget) Resolve(req TargetRequest) Placement {
	w := req.OpenWidth
	if w <= 0 {
		w = req.Trigger.Width
	}
	return Placement{
		Portal: true,
		At: Point{
			X: req.Trigger.X + p.Offset.X,
			Y: req.Trigger.Y + req.Trigger.Height + p.Offset.Y,
		},
		Width: w,
	}
}
