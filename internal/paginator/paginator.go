package paginator

import (
	"strconv"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"

	"github.com/stokpanel/paginate/internal/dom"
)

// Attribute and class contract shared with page markup and external features.
const (
	// DefaultPageSize applies when data-paginate-size is absent, non-numeric,
	// or non-positive.
	DefaultPageSize = 20

	// AttrContainer marks an element as a pagination container.
	AttrContainer = "data-paginate"

	// AttrItemSelector optionally names a CSS selector for the container's
	// items. Without it, direct children are paginated.
	AttrItemSelector = "data-paginate-items"

	// AttrPageSize optionally overrides the page size for one container.
	AttrPageSize = "data-paginate-size"

	// AttrSearchHidden is set to "true" by external filtering (e.g. text
	// search) to exclude an item from paging.
	AttrSearchHidden = "data-search-hidden"

	// AttrPaginationHidden marks an item hidden by the page engine itself,
	// so pagination hiding never conflicts with external filter flags.
	AttrPaginationHidden = "data-paginate-hidden"

	// AttrOriginalDisplay remembers an item's inline display value, captured
	// lazily on first encounter and restored whenever the item is shown.
	AttrOriginalDisplay = "data-paginate-display"

	// AttrControls marks the generated controls block.
	AttrControls = "data-paginate-controls"

	// ClassFilterHidden is the style-class variant of the external filter
	// contract.
	ClassFilterHidden = "filter-hidden"
)

const (
	containerSelector = "[" + AttrContainer + "]"
	controlsSelector  = "[" + AttrControls + "]"
)

// Controller owns the pagination states of one document. It is the registry
// from the public API's point of view: Register, InitAll and Refresh all go
// through it. All methods are synchronous; callers drive every recomputation.
type Controller struct {
	doc             *dom.Document
	states          map[*html.Node]*State
	order           []*State
	defaultPageSize int
	logger          zerolog.Logger
}

// Option customizes a Controller.
type Option func(*Controller)

// WithDefaultPageSize overrides the fallback page size used when a container
// carries no usable data-paginate-size. Non-positive values are ignored.
func WithDefaultPageSize(size int) Option {
	return func(c *Controller) {
		if size > 0 {
			c.defaultPageSize = size
		}
	}
}

// WithLogger attaches a logger; registration and page changes are logged at
// debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// New creates a Controller for the given document. No containers are
// registered yet; call InitAll or Register.
func New(doc *dom.Document, opts ...Option) *Controller {
	c := &Controller{
		doc:             doc,
		states:          make(map[*html.Node]*State),
		defaultPageSize: DefaultPageSize,
		logger:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// resolve maps an arbitrary target element to its pagination container: the
// element itself when marked, otherwise the nearest marked ancestor.
func resolve(target *dom.Element) *dom.Element {
	if target == nil {
		return nil
	}
	if target.HasAttr(AttrContainer) {
		return target
	}
	return target.Closest(containerSelector)
}

// Register resolves the target to a container and returns its live state,
// creating state and controls on first sight. Re-registering a known
// container returns the existing state unchanged. Returns nil when the
// target resolves to no marked container.
func (c *Controller) Register(target *dom.Element) *State {
	container := resolve(target)
	if container == nil {
		return nil
	}
	if s, ok := c.states[container.Node()]; ok {
		return s
	}

	id := ulid.Make().String()
	s := &State{
		id:           id,
		container:    container,
		itemSelector: container.Attr(AttrItemSelector),
		pageSize:     parsePageSize(container.Attr(AttrPageSize), c.defaultPageSize),
		currentPage:  1,
		logger:       c.logger.With().Str("state_id", id).Logger(),
	}
	s.buildControls()
	c.states[container.Node()] = s
	c.order = append(c.order, s)

	s.logger.Debug().
		Str("container", container.Tag()).
		Str("item_selector", s.itemSelector).
		Int("page_size", s.pageSize).
		Msg("registered pagination container")

	s.apply()
	return s
}

// RegisterSelector resolves a selector against the document and registers
// the first match. Returns nil when nothing matches.
func (c *Controller) RegisterSelector(selector string) *State {
	return c.Register(c.doc.Query(selector))
}

// InitAll discovers every marked container under root (the whole document
// when root is nil) and registers each. Returns the states in document
// order, including ones already registered.
func (c *Controller) InitAll(root *dom.Element) []*State {
	var containers []*dom.Element
	if root == nil {
		containers = c.doc.QueryAll(containerSelector)
	} else {
		if root.HasAttr(AttrContainer) {
			containers = append(containers, root)
		}
		containers = append(containers, root.QueryAll(containerSelector)...)
	}

	states := make([]*State, 0, len(containers))
	for _, container := range containers {
		if s := c.Register(container); s != nil {
			states = append(states, s)
		}
	}
	return states
}

// Refresh recomputes one container's state (registering it on the fly if
// needed) or, when target is nil, every registered state in registration
// order. Unresolvable targets are a no-op.
func (c *Controller) Refresh(target *dom.Element) {
	if target == nil {
		for _, s := range c.order {
			s.apply()
		}
		return
	}
	if s := c.Register(target); s != nil {
		s.apply()
	}
}

// RefreshSelector is Refresh for a selector target. An empty selector
// refreshes everything.
func (c *Controller) RefreshSelector(selector string) {
	if selector == "" {
		c.Refresh(nil)
		return
	}
	c.Refresh(c.doc.Query(selector))
}

// Lookup returns the state for an exact container element, without
// resolution or registration.
func (c *Controller) Lookup(container *dom.Element) *State {
	if container == nil {
		return nil
	}
	return c.states[container.Node()]
}

// States returns all registered states in registration order.
func (c *Controller) States() []*State {
	out := make([]*State, len(c.order))
	copy(out, c.order)
	return out
}

// Document returns the document this controller manages.
func (c *Controller) Document() *dom.Document {
	return c.doc
}

// parsePageSize applies the page-size fallback rule: absent, non-numeric or
// non-positive values fall back to the default.
func parsePageSize(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	size, err := strconv.Atoi(raw)
	if err != nil || size < 1 {
		return fallback
	}
	return size
}
