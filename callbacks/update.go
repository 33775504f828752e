package callbacks

// UpdateScreen is the reply of a callback. It tells the embedder how much
// of the next frame has to be recomputed.
type UpdateScreen uint8

// Values for UpdateScreen. The order is fixed; use Stronger to compare.
const (
	Redraw UpdateScreen = iota
	DontRedraw
	UpdateScrollStates
	UpdateTransforms
)

var updateScreenNames = []string{"Redraw", "DontRedraw", "UpdateScrollStates", "UpdateTransforms"}

func (u UpdateScreen) String() string { return enumName(updateScreenNames, uint8(u)) }

// strength orders replies: Redraw > UpdateTransforms > UpdateScrollStates > DontRedraw.
var strength = [...]int{Redraw: 3, DontRedraw: 0, UpdateScrollStates: 1, UpdateTransforms: 2}

func (u UpdateScreen) strength() int {
	if int(u) < len(strength) {
		return strength[u]
	}
	return 0
}

// Stronger returns the stronger one of u and other.
func (u UpdateScreen) Stronger(other UpdateScreen) UpdateScreen {
	if other.strength() > u.strength() {
		return other
	}
	return u
}

// Strongest returns the strongest of a list of replies, or DontRedraw for
// an empty list.
func Strongest(replies ...UpdateScreen) UpdateScreen {
	u := DontRedraw
	for _, r := range replies {
		u = u.Stronger(r)
	}
	return u
}

// NeedsRestyle is true if the reply invalidates the styled tree.
func (u UpdateScreen) NeedsRestyle() bool {
	return u == Redraw
}

// IsGPUOnly is true for replies which only require re-pushing GPU-only
// properties, i.e. transforms and opacity or scroll offsets.
func (u UpdateScreen) IsGPUOnly() bool {
	return u == UpdateTransforms || u == UpdateScrollStates
}
