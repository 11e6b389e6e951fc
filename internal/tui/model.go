package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/toppings/internal/catalog"
	"github.com/alexisbeaulieu97/toppings/internal/logger"
	"github.com/alexisbeaulieu97/toppings/internal/selection"
	"github.com/alexisbeaulieu97/toppings/internal/tui/components"
)

// Section identifies which selector has keyboard focus.
type Section int

const (
	SectionSizes Section = iota
	SectionToppings
)

// Options configures a builder model. Empty option lists fall back to the
// variant's own size and topping names.
type Options struct {
	Variant         catalog.Variant
	Sizes           []string
	Toppings        []string
	InitialToppings []string
	Logger          *logger.Logger
}

// Model is the builder root. It owns the selection store for its whole
// lifetime and hands it to the selectors and the preview, which never talk
// to each other directly.
type Model struct {
	variant  catalog.Variant
	store    *selection.Store
	sizes    components.SizeSelector
	toppings components.ToppingSelector
	preview  components.Preview
	coverage components.Coverage

	keys keyMap
	help help.Model

	focus         Section
	sizeCursor    int
	toppingCursor int

	width    int
	height   int
	quitting bool
	err      error

	log *logger.Logger
}

// NewModel mounts a builder: it creates the store with the middle size
// option selected and no toppings.
func NewModel(opts Options) Model {
	sizes := opts.Sizes
	if len(sizes) == 0 {
		sizes = opts.Variant.SizeNames()
	}
	toppings := opts.Toppings
	if len(toppings) == 0 {
		toppings = opts.Variant.ToppingNames()
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	initial := catalog.MiddleOption(sizes)
	store := selection.NewStore(initial,
		selection.WithToppings(opts.InitialToppings...),
		selection.WithObserver(func(prev, next selection.Selection) {
			log.Debug("selection changed",
				"size", next.Size,
				"previous_size", prev.Size,
				"toppings", next.Toppings.Names(),
			)
		}),
	)

	log.Info("builder mounted", "variant", opts.Variant.Name, "size", initial)

	return Model{
		variant:    opts.Variant,
		store:      store,
		sizes:      components.NewSizeSelector(sizes),
		toppings:   components.NewToppingSelector(toppings),
		preview:    components.NewPreview(opts.Variant),
		coverage:   components.NewCoverage(len(toppings)),
		keys:       defaultKeyMap(),
		help:       help.New(),
		focus:      SectionSizes,
		sizeCursor: len(sizes) / 2,
		width:      80,
		height:     24,
		log:        log,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Store exposes the builder's selection store.
func (m Model) Store() *selection.Store {
	return m.store
}

// Focus returns the section that receives selection keys.
func (m Model) Focus() Section {
	return m.focus
}

// Cursor returns the highlighted index inside the focused section.
func (m Model) Cursor() int {
	if m.focus == SectionToppings {
		return m.toppingCursor
	}
	return m.sizeCursor
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Err returns the last component error, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) sectionLen() int {
	if m.focus == SectionToppings {
		return len(m.toppings.Options())
	}
	return len(m.sizes.Options())
}

func (m *Model) moveCursor(delta int) {
	n := m.sectionLen()
	if n == 0 {
		return
	}
	cursor := &m.sizeCursor
	if m.focus == SectionToppings {
		cursor = &m.toppingCursor
	}
	*cursor = ((*cursor+delta)%n + n) % n
}

func (m *Model) activate(index int) {
	var err error
	switch m.focus {
	case SectionToppings:
		m.toppingCursor = index
		err = m.toppings.Toggle(m.store, index)
	default:
		m.sizeCursor = index
		err = m.sizes.Select(m.store, index)
	}
	if err != nil {
		m.err = err
		m.log.Error(err, "selector interaction failed")
	}
}

func (m Model) selectedOptionCount() int {
	count := 0
	for _, option := range m.toppings.Options() {
		if m.store.HasTopping(option) {
			count++
		}
	}
	return count
}
