// Package interaction owns the hover tooltip shown for chart marks.
package interaction

import (
	"html"
	"strconv"
	"strings"
	"sync"

	"github.com/okian/racechart/internal/domain/model"
	"github.com/okian/racechart/internal/domain/racetime"
)

// Position is a point in page coordinates.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Content is what the tooltip displays for one record.
type Content struct {
	Year        int    `json:"year"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	Time        string `json:"time"`
	Allegation  string `json:"allegation,omitempty"`
}

// ContentFor builds tooltip content for a record.
func ContentFor(r model.Record) Content {
	return Content{
		Year:        r.Year,
		Name:        r.Name,
		Nationality: r.Nationality,
		Time:        racetime.Format(r.Time),
		Allegation:  r.Doping,
	}
}

// Lines returns the display lines. An empty line separates the allegation.
func (c Content) Lines() []string {
	lines := []string{
		c.Name + ": " + c.Nationality,
		"Year: " + strconv.Itoa(c.Year) + ", Time: " + c.Time,
	}
	if c.Allegation != "" {
		lines = append(lines, "", c.Allegation)
	}
	return lines
}

// Text joins the lines with newlines.
func (c Content) Text() string {
	return strings.Join(c.Lines(), "\n")
}

// HTML escapes each line and joins them with <br/>.
func (c Content) HTML() string {
	lines := c.Lines()
	for i, l := range lines {
		lines[i] = html.EscapeString(l)
	}
	return strings.Join(lines, "<br/>")
}

// State is a snapshot of the tooltip view.
type State struct {
	Visible  bool     `json:"visible"`
	Opacity  float64  `json:"opacity"`
	Year     int      `json:"year"` // exposed as data-year while visible
	Content  Content  `json:"content"`
	Position Position `json:"position"`
}

// Tooltip is the single shared tooltip. Writes are last-write-wins.
type Tooltip struct {
	mu    sync.Mutex
	state State
}

// NewTooltip returns a hidden tooltip.
func NewTooltip() *Tooltip {
	return &Tooltip{}
}

// Show makes the tooltip visible with content at pos.
func (t *Tooltip) Show(content Content, pos Position) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = State{
		Visible:  true,
		Opacity:  1,
		Year:     content.Year,
		Content:  content,
		Position: pos,
	}
}

// Hide makes the tooltip invisible. Content and position are left as they were.
func (t *Tooltip) Hide() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.Visible = false
	t.state.Opacity = 0
}

// Snapshot returns a copy of the current state.
func (t *Tooltip) Snapshot() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}
