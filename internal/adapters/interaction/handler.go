package interaction

import (
	"context"

	"github.com/okian/racechart/internal/domain/model"
	"github.com/okian/racechart/pkg/logger"
)

// Default tooltip offset from the pointer.
const (
	defaultOffsetX = 10
	defaultOffsetY = -28
)

// Binding is what a mark carries so a browser can replay Enter and Leave.
type Binding struct {
	Year    int     `json:"year"`
	HTML    string  `json:"html"`
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
}

// Handler reacts to pointer enter/leave on marks by driving a Tooltip.
type Handler struct {
	tooltip *Tooltip
	offset  Position
	logger  logger.Logger
}

// Option applies a configuration option to the Handler.
type Option func(*Handler)

// WithOffset sets the tooltip offset from the pointer.
func WithOffset(dx, dy float64) Option {
	return func(h *Handler) {
		h.offset = Position{X: dx, Y: dy}
	}
}

// WithLogger sets a custom logger for the handler.
func WithLogger(l logger.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewHandler binds a handler to tooltip. A nil tooltip gets a fresh one.
func NewHandler(tooltip *Tooltip, opts ...Option) *Handler {
	if tooltip == nil {
		tooltip = NewTooltip()
	}
	h := &Handler{
		tooltip: tooltip,
		offset:  Position{X: defaultOffsetX, Y: defaultOffsetY},
		logger:  logger.Get().Named("interaction"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Tooltip returns the tooltip this handler drives.
func (h *Handler) Tooltip() *Tooltip {
	return h.tooltip
}

// Enter shows the record's tooltip next to the pointer.
func (h *Handler) Enter(ctx context.Context, r model.Record, pointer Position) {
	pos := Position{X: pointer.X + h.offset.X, Y: pointer.Y + h.offset.Y}
	h.tooltip.Show(ContentFor(r), pos)
	h.logger.Debug(ctx, "tooltip shown", logger.Int("year", r.Year), logger.String("name", r.Name))
}

// Leave hides the tooltip.
func (h *Handler) Leave(ctx context.Context) {
	h.tooltip.Hide()
	h.logger.Debug(ctx, "tooltip hidden")
}

// Binding precomputes the Enter payload for r.
func (h *Handler) Binding(r model.Record) Binding {
	return Binding{
		Year:    r.Year,
		HTML:    ContentFor(r).HTML(),
		OffsetX: h.offset.X,
		OffsetY: h.offset.Y,
	}
}
