package tui

import tea "github.com/charmbracelet/bubbletea"

// App is the top-level Bubble Tea model that routes between pages.
type App struct {
	pages      map[string]Page
	order      []string
	activePage string
	width      int
	height     int
}

// NewApp creates a new App with the given pages. The first page is the default.
func NewApp(pages ...Page) *App {
	a := &App{pages: make(map[string]Page, len(pages))}
	for _, p := range pages {
		if _, dup := a.pages[p.ID()]; dup {
			continue
		}
		a.pages[p.ID()] = p
		a.order = append(a.order, p.ID())
	}
	if len(a.order) > 0 {
		a.activePage = a.order[0]
	}
	return a
}

func (a *App) Init() tea.Cmd {
	if p, ok := a.pages[a.activePage]; ok {
		return p.Init()
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = wsm.Width
		a.height = wsm.Height
	}

	p, ok := a.pages[a.activePage]
	if !ok {
		return a, nil
	}

	cmd, nav := p.Update(msg)
	if nav != nil && nav.PageID != a.activePage {
		if next, exists := a.pages[nav.PageID]; exists {
			a.activePage = nav.PageID
			return a, tea.Batch(cmd, next.Init())
		}
	}
	return a, cmd
}

func (a *App) View() string {
	if p, ok := a.pages[a.activePage]; ok {
		return p.View(a.width, a.height)
	}
	return "No active page"
}

// ActivePage returns the ID of the page currently shown.
func (a *App) ActivePage() string { return a.activePage }

// Close releases every page that holds resources. Call it once the program
// has exited.
func (a *App) Close() {
	for _, id := range a.order {
		if c, ok := a.pages[id].(Closer); ok {
			c.Close()
		}
	}
}
