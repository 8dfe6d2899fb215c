// Package shop is the interactive storefront shell. The shell owns the
// session context (route, cart, auth snapshot, catalog cache) and wires the
// panel families, router, and notifier together on one update loop.
// The code is split across files:
//   - model.go: types and construction
//   - update.go: the Update loop and message routing
//   - view.go: rendering
//   - zones.go: screen hit zones for mouse interaction
//   - form.go: the account sign-in/sign-up form
//   - capabilities.go: the narrow contract handed to page Init
package shop

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"shopfront/cmd/shopfront/ui"
	"shopfront/internal/cart"
	"shopfront/internal/catalog"
	"shopfront/internal/config"
	"shopfront/internal/identity"
	"shopfront/internal/notify"
	"shopfront/internal/overlay"
	"shopfront/internal/pages"
	"shopfront/internal/panel"
	"shopfront/internal/routes"
)

// Panel names. The three panel kinds form one mutually-exclusive family.
const (
	PanelAccount    = "account"
	PanelCart       = "cart"
	PanelFacetColor = "facet-color"
	PanelFacetPrice = "facet-price"
)

// Model is the storefront shell.
type Model struct {
	cfg    *config.Config
	styles ui.Styles
	logger *zap.Logger

	layout ui.Layout
	ready  bool

	router   *routes.Router
	fragment string

	overlay *overlay.Manager
	family  *panel.Family

	accountPanel *panel.Controller
	cartPanel    *panel.Controller
	colorPanel   *panel.Controller
	pricePanel   *panel.Controller

	provider    identity.Provider
	session     *identity.Snapshot
	sessionCh   chan *identity.User
	unsubscribe func()

	cartStore *cart.Store
	cartCh    chan struct{}

	notifier *notify.Notifier

	// Catalog snapshot registered by the products page.
	catalog        []catalog.Product
	catalogErr     bool
	selectedColors map[int]string
	filters        pages.Filters

	// Cached frame and hit zones, rebuilt after every update so hits always
	// match what is on screen.
	frame      frame
	zones      []hitZone
	gridZones  []pages.Zone
	gridOrigin point
	hoverCtrl  *panel.Controller

	form      accountForm
	spinner   spinner.Model
	authBusy  bool
	authGroup *singleflight.Group

	resize      *ui.Debounce
	pendingSize point

	status  string
	pending []tea.Cmd

	quitting bool
}

type point struct{ x, y int }

// New assembles the shell. The provider and catalog client are the two
// external collaborators; everything else is owned here.
func New(cfg *config.Config, provider identity.Provider, client *catalog.Client, logger *zap.Logger) *Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Model{
		cfg:            cfg,
		styles:         ui.NewStyles(ui.DetectTheme()),
		logger:         logger,
		overlay:        overlay.NewManager(),
		provider:       provider,
		session:        &identity.Snapshot{},
		sessionCh:      make(chan *identity.User, 8),
		cartCh:         make(chan struct{}, 1),
		notifier:       notify.NewNotifier(cfg.ToastDurationDuration()),
		selectedColors: make(map[int]string),
		authGroup:      &singleflight.Group{},
		resize:         ui.NewDebounce(cfg.ResizeDebounceDuration()),
		fragment:       routes.HomeID,
	}

	m.cartStore = cart.NewStore(m.session)
	m.cartStore.OnChange(func() {
		// Re-render request for whichever panel displays the cart. The
		// channel wakes the loop when a mutation happens off-loop (the
		// logout callback); on-loop mutations redraw anyway.
		select {
		case m.cartCh <- struct{}{}:
		default:
		}
	})

	m.family = panel.NewFamily(m.overlay)
	popts := []panel.Option{
		panel.WithHoverCloseDelay(cfg.HoverCloseDelayDuration()),
		panel.WithClosingDelay(cfg.ClosingDelayDuration()),
	}
	m.accountPanel = m.family.Register(panel.New(PanelAccount, m.accountPanelBody, popts...))
	m.cartPanel = m.family.Register(panel.New(PanelCart, m.cartPanelBody, popts...))
	m.colorPanel = m.family.Register(panel.New(PanelFacetColor, m.colorPanelBody, popts...))
	m.pricePanel = m.family.Register(panel.New(PanelFacetPrice, m.pricePanelBody, popts...))

	table := routes.Build(pages.All(client))
	m.router = routes.NewRouter(table, m.capabilities(), logger)

	m.form = newAccountForm()
	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot

	if provider != nil {
		m.unsubscribe = provider.Subscribe(func(u *identity.User) {
			m.session.Set(u)
			if u == nil {
				// The cart is a per-session artifact: clear it inside the
				// session callback, before any re-render is requested.
				m.cartStore.Clear()
			}
			select {
			case m.sessionCh <- u:
			default:
			}
		})
	}

	return m
}

// SetFragment sets the deep-link fragment used on first load.
func (m *Model) SetFragment(fragment string) {
	m.fragment = routes.NormalizeFragment(fragment)
}

// Init starts the loop: first navigation plus the session listener.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.router.Start(m.fragment),
		m.waitForSession(),
		m.waitForCart(),
		m.spinner.Tick,
	)
}

// waitForSession re-arms the provider subscription bridge.
func (m *Model) waitForSession() tea.Cmd {
	ch := m.sessionCh
	return func() tea.Msg {
		return sessionChangedMsg{user: <-ch}
	}
}

// waitForCart re-arms the cart re-render bridge.
func (m *Model) waitForCart() tea.Cmd {
	ch := m.cartCh
	return func() tea.Msg {
		<-ch
		return cartChangedMsg{}
	}
}

// viewport maps the current layout mode onto the panel machine's terms.
func (m *Model) viewport() panel.Viewport {
	if m.layout.IsMobile() {
		return panel.ViewportMobile
	}
	return panel.ViewportDesktop
}

// queue defers a command produced outside the Update switch, e.g. by a page
// capability running during navigation.
func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

// drainPending collects queued commands into the returned batch.
func (m *Model) drainPending(cmds []tea.Cmd) []tea.Cmd {
	cmds = append(cmds, m.pending...)
	m.pending = nil
	return cmds
}

// Close releases the provider subscription.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}
