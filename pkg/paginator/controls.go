package paginator

import "strconv"

// Navigation labels.
const (
	LabelFirst    = "First"
	LabelPrevious = "Previous"
	LabelNext     = "Next"
	LabelLast     = "Last"
)

// Control is one pagination link: a label and the page it targets.
type Control struct {
	Label  string `json:"label"`
	Target int    `json:"target"`
	// Active marks the control whose target is the current page.
	Active bool `json:"active"`
	// Enabled is false when the target lies outside [1, TotalPages]; clicking it does nothing.
	Enabled bool `json:"enabled"`
}

// Controls builds First, Previous, one numbered control per page, Next and Last, in that order.
func (p Paginator) Controls() []Control {
	total := p.TotalPages()
	controls := make([]Control, 0, total+4)

	add := func(label string, target int) {
		controls = append(controls, Control{
			Label:   label,
			Target:  target,
			Active:  target == p.CurrentPage,
			Enabled: p.Contains(target),
		})
	}

	add(LabelFirst, 1)
	add(LabelPrevious, p.CurrentPage-1)
	for i := 1; i <= total; i++ {
		add(strconv.Itoa(i), i)
	}
	add(LabelNext, p.CurrentPage+1)
	add(LabelLast, total)

	return controls
}
