package tui

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/docdeck/docdeck/internal/api"
	"github.com/docdeck/docdeck/internal/catalog"
	"github.com/docdeck/docdeck/internal/config"
	"github.com/docdeck/docdeck/internal/storage"
	"github.com/docdeck/docdeck/internal/validate"
)

// FocusedPane represents which pane has focus
type FocusedPane int

const (
	FocusList FocusedPane = iota
	FocusQuery
)

// Model represents the main TUI application state. The document snapshot,
// filter vector and all loading/error flags live here and are mutated only
// inside Update; rendering reads them and nothing else.
type Model struct {
	// Components
	queryInput textinput.Model
	docTable   table.Model
	spin       spinner.Model
	detailView viewport.Model
	picker     filepicker.Model

	// Layout
	width  int
	height int
	ready  bool

	focused FocusedPane

	// Filter vector. The selector indices walk the closed enumerations;
	// index 0 is the sentinel.
	filter     catalog.Filter
	orgUnits   []string
	categories []string
	unitIdx    int
	catIdx     int

	// Sync engine
	store       catalog.Store
	coord       catalog.Coordinator
	debounce    time.Duration
	debounceGen int
	page        int
	pages       int
	pageSize    int
	loading     bool

	// User-visible outcome of the last operation
	status string
	errMsg string

	// Submitted query awaiting its fetch result before entering history
	pendingHistory string

	// Detail view: at most one inspected document, re-resolved by id
	// after every refresh
	detailOpen  bool
	detailDoc   catalog.Document
	detailStale bool

	// Delete confirmation gate
	confirmOpen  bool
	confirmID    string
	confirmTitle string

	// Upload picker
	pickerOpen    bool
	maxUploadSize int64

	// Semantic search mode: a parallel one-shot pipeline, never feeding
	// the document store
	semanticMode bool
	semResults   []api.SemanticResult
	semCursor    int

	stats *api.Stats

	// Dependencies
	client  *api.Client
	history *storage.DB
	logger  *zap.Logger
	ctx     context.Context
}

// NewModel creates a new TUI model. history may be nil when the local
// database could not be opened; the console then simply keeps no history.
func NewModel(ctx context.Context, client *api.Client, history *storage.DB, logger *zap.Logger, cfg *config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Search documents..."
	ti.CharLimit = 0
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = StatusInfoStyle

	m := Model{
		queryInput:    ti,
		spin:          sp,
		focused:       FocusList,
		filter:        catalog.NewFilter(),
		orgUnits:      cfg.OrgUnits,
		categories:    cfg.Categories,
		debounce:      cfg.Debounce(),
		page:          1,
		pageSize:      cfg.PageSize,
		maxUploadSize: cfg.MaxUploadBytes(),
		client:        client,
		history:       history,
		logger:        logger,
		ctx:           ctx,
	}

	m.docTable = table.New(
		table.WithColumns(m.tableColumns(80)),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(PrimaryColor)
	styles.Selected = styles.Selected.Background(PrimaryColor).Foreground(BlackColor)
	m.docTable.SetStyles(styles)

	m.picker = m.newPicker()

	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spin.Tick,
		func() tea.Msg { return refreshNowMsg{} },
		fetchStats(m.ctx, m.client),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		if m.pickerOpen {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case debounceMsg:
		// Only the tick scheduled by the most recent filter write fires a
		// refresh; superseded windows are silently dropped.
		if msg.gen == m.debounceGen && !m.semanticMode {
			return m, m.startRefresh()
		}

	case refreshNowMsg:
		m.debounceGen++ // cancel any pending window
		return m, m.startRefresh()

	case documentsMsg:
		return m.handleDocuments(msg)

	case starredMsg:
		m.coord.EndMutation(msg.id)
		if msg.err != nil {
			m.errMsg = "Failed to update star: " + msg.err.Error()
			return m, nil
		}
		if m.store.ApplyStar(msg.id, msg.starred) {
			m.syncTable()
			m.resolveDetail()
		} else {
			m.logger.Info("star confirmation for displaced record dropped", zap.String("id", msg.id))
		}

	case deletedMsg:
		m.coord.EndMutation(msg.id)
		if msg.err != nil {
			m.errMsg = "Failed to delete: " + msg.err.Error()
			return m, nil
		}
		if m.store.ApplyDelete(msg.id) {
			m.syncTable()
			m.resolveDetail()
		}
		m.status = "Document deleted"
		return m, fetchStats(m.ctx, m.client)

	case uploadedMsg:
		return m.handleUploaded(msg)

	case semanticMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = "Semantic search failed: " + msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.semResults = msg.results
		m.semCursor = 0

	case statsMsg:
		if msg.err != nil {
			m.logger.Warn("stats fetch failed", zap.Error(msg.err))
			return m, nil
		}
		m.stats = msg.stats
	}

	if m.pickerOpen {
		return m.updatePicker(msg)
	}

	return m, nil
}

func (m Model) handleDocuments(msg documentsMsg) (tea.Model, tea.Cmd) {
	// An older in-flight refresh must not overwrite the snapshot a newer
	// one already installed.
	if !m.coord.Latest(msg.seq) {
		m.logger.Debug("discarding stale fetch", zap.Uint64("seq", msg.seq))
		return m, nil
	}

	m.loading = false

	if msg.err != nil {
		m.store.Invalidate()
		m.pages = 0
		m.errMsg = "Failed to load documents: " + msg.err.Error()
		m.pendingHistory = ""
		m.syncTable()
		return m, nil
	}

	m.errMsg = ""
	m.store.Replace(msg.docs, msg.total)
	m.pages = msg.pages
	m.syncTable()
	m.resolveDetail()

	if m.pendingHistory != "" {
		query := m.pendingHistory
		m.pendingHistory = ""
		return m, saveSearch(m.history, query, msg.total)
	}
	return m, nil
}

func (m Model) handleUploaded(msg uploadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	// Reset the picker on both outcomes so the same file can be selected
	// again immediately.
	m.picker = m.newPicker()

	if msg.err != nil {
		m.errMsg = "Upload failed: " + msg.err.Error()
		return m, logUpload(m.history, msg.path, "", msg.err)
	}

	m.status = "Uploaded: " + msg.title
	// Server truth supersedes everything: refetch with the current,
	// unchanged filter vector.
	return m, tea.Batch(
		logUpload(m.history, msg.path, msg.title, nil),
		fetchStats(m.ctx, m.client),
		func() tea.Msg { return refreshNowMsg{} },
	)
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Modal layers take precedence: confirmation gate, then picker, then
	// detail view.
	if m.confirmOpen {
		return m.handleConfirmKey(msg)
	}
	if m.pickerOpen {
		if msg.String() == "esc" {
			m.pickerOpen = false
			m.picker = m.newPicker()
			return m, nil
		}
		return m.updatePicker(msg)
	}
	if m.detailOpen {
		switch msg.String() {
		case "esc", "q", "enter":
			m.detailOpen = false
			m.detailStale = false
			return m, nil
		}
		var cmd tea.Cmd
		m.detailView, cmd = m.detailView.Update(msg)
		return m, cmd
	}

	switch m.focused {
	case FocusQuery:
		return m.handleQueryKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.confirmID
		m.confirmOpen = false
		m.confirmID = ""
		m.confirmTitle = ""
		if !m.coord.BeginMutation(id) {
			m.errMsg = "Another change for this document is still pending"
			return m, nil
		}
		return m, deleteDocument(m.ctx, m.client, id)
	case "n", "N", "esc":
		// Declined confirmation aborts the operation; not an error.
		m.confirmOpen = false
		m.confirmID = ""
		m.confirmTitle = ""
		m.status = "Delete cancelled"
	}
	return m, nil
}

func (m Model) handleQueryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focused = FocusList
		m.queryInput.Blur()
		m.docTable.Focus()
		return m, nil

	case "enter":
		query := strings.TrimSpace(m.queryInput.Value())
		if m.semanticMode {
			if query == "" {
				return m, nil
			}
			m.loading = true
			return m, semanticSearch(m.ctx, m.client, query)
		}
		// Explicit submit skips the remainder of the debounce window and
		// is the only path that enters local search history.
		if len(query) >= 2 {
			m.pendingHistory = query
		}
		return m, func() tea.Msg { return refreshNowMsg{} }
	}

	before := m.queryInput.Value()
	var cmd tea.Cmd
	m.queryInput, cmd = m.queryInput.Update(msg)

	if !m.semanticMode && m.queryInput.Value() != before {
		// An axis write: reschedule the quiescence window from this
		// keystroke.
		m.filter.Query = m.queryInput.Value()
		m.page = 1
		return m, tea.Batch(cmd, m.scheduleRefresh())
	}
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.semanticMode {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "esc", "m":
			m.semanticMode = false
			m.semResults = nil
			m.queryInput.Placeholder = "Search documents..."
			m.queryInput.SetValue(m.filter.Query)
			return m, nil
		case "up", "k":
			if m.semCursor > 0 {
				m.semCursor--
			}
			return m, nil
		case "down", "j":
			if m.semCursor < len(m.semResults)-1 {
				m.semCursor++
			}
			return m, nil
		case "/":
			m.focused = FocusQuery
			m.docTable.Blur()
			return m, m.queryInput.Focus()
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "/":
		m.focused = FocusQuery
		m.docTable.Blur()
		return m, m.queryInput.Focus()

	case "m":
		m.semanticMode = true
		m.semResults = nil
		m.queryInput.SetValue("")
		m.queryInput.Placeholder = "Ask in natural language..."
		m.focused = FocusQuery
		m.docTable.Blur()
		return m, m.queryInput.Focus()

	case "u":
		return m, m.cycleOrgUnit(1)
	case "U":
		return m, m.cycleOrgUnit(-1)
	case "t":
		return m, m.cycleCategory(1)
	case "T":
		return m, m.cycleCategory(-1)

	case "n":
		if m.page < m.pages {
			m.page++
			return m, func() tea.Msg { return refreshNowMsg{} }
		}
		return m, nil
	case "p":
		if m.page > 1 {
			m.page--
			return m, func() tea.Msg { return refreshNowMsg{} }
		}
		return m, nil

	case "r":
		return m, tea.Batch(
			func() tea.Msg { return refreshNowMsg{} },
			fetchStats(m.ctx, m.client),
		)

	case "s":
		doc := m.selectedDoc()
		if doc == nil {
			return m, nil
		}
		if !m.coord.BeginMutation(doc.ID) {
			m.errMsg = "Another change for this document is still pending"
			return m, nil
		}
		// The new flag is the inverse of the current one; nothing is
		// flipped locally until the store confirms.
		return m, setStarred(m.ctx, m.client, doc.ID, !doc.Starred)

	case "d", "x":
		doc := m.selectedDoc()
		if doc == nil {
			return m, nil
		}
		if m.coord.MutationPending(doc.ID) {
			m.errMsg = "Another change for this document is still pending"
			return m, nil
		}
		m.confirmOpen = true
		m.confirmID = doc.ID
		m.confirmTitle = doc.Title
		return m, nil

	case "enter":
		doc := m.selectedDoc()
		if doc == nil {
			return m, nil
		}
		m.detailOpen = true
		m.detailStale = false
		m.detailDoc = *doc
		m.detailView.SetContent(m.renderDetailContent())
		m.detailView.GotoTop()
		return m, nil

	case "o":
		m.pickerOpen = true
		return m, m.picker.Init()
	}

	var cmd tea.Cmd
	m.docTable, cmd = m.docTable.Update(msg)
	return m, cmd
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.pickerOpen = false
		if err := validate.File(path, m.maxUploadSize); err != nil {
			m.errMsg = err.Error()
			m.picker = m.newPicker()
			return m, nil
		}
		m.loading = true
		m.status = "Uploading " + path
		m.logger.Info("upload started", zap.String("path", path))
		return m, uploadDocument(m.ctx, m.client, path)
	}
	return m, cmd
}

// scheduleRefresh opens (or re-opens) the quiescence window after a filter
// axis write. The returned command fires the debounce tick; every newer
// write invalidates older ticks via the generation counter.
func (m *Model) scheduleRefresh() tea.Cmd {
	m.debounceGen++
	return debounceTick(m.debounce, m.debounceGen)
}

// startRefresh issues the list fetch for the current filter snapshot.
func (m *Model) startRefresh() tea.Cmd {
	m.loading = true
	seq := m.coord.NextSeq()
	m.logger.Debug("refresh issued",
		zap.Uint64("seq", seq),
		zap.String("query", m.filter.Query),
		zap.String("orgUnit", m.filter.OrgUnit),
		zap.String("category", m.filter.Category),
		zap.Int("page", m.page),
	)
	return fetchDocuments(m.ctx, m.client, m.filter, seq, m.page, m.pageSize)
}

func (m *Model) cycleOrgUnit(dir int) tea.Cmd {
	if len(m.orgUnits) == 0 {
		return nil
	}
	m.unitIdx = (m.unitIdx + dir + len(m.orgUnits)) % len(m.orgUnits)
	m.filter.OrgUnit = m.orgUnits[m.unitIdx]
	m.page = 1
	return m.scheduleRefresh()
}

func (m *Model) cycleCategory(dir int) tea.Cmd {
	if len(m.categories) == 0 {
		return nil
	}
	m.catIdx = (m.catIdx + dir + len(m.categories)) % len(m.categories)
	m.filter.Category = m.categories[m.catIdx]
	m.page = 1
	return m.scheduleRefresh()
}

// selectedDoc returns the record under the table cursor, or nil.
func (m *Model) selectedDoc() *catalog.Document {
	idx := m.docTable.Cursor()
	if idx < 0 || idx >= len(m.store.Items) {
		return nil
	}
	return &m.store.Items[idx]
}

// resolveDetail re-binds the inspection target to the current snapshot.
// A target no longer visible stays on screen but is flagged stale.
func (m *Model) resolveDetail() {
	if !m.detailOpen {
		return
	}
	if doc := m.store.Find(m.detailDoc.ID); doc != nil {
		m.detailDoc = *doc
		m.detailStale = false
	} else {
		m.detailStale = true
	}
	m.detailView.SetContent(m.renderDetailContent())
}

func (m *Model) newPicker() filepicker.Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".pdf", ".docx", ".txt"}
	if home, err := os.UserHomeDir(); err == nil {
		fp.CurrentDirectory = home
	}
	if m.height > 10 {
		fp.Height = m.height - 8
	}
	return fp
}
