package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tayloree/pantry/internal/grocery"
	"github.com/tayloree/pantry/internal/listclean"
)

const (
	minTUIWidth  = 92
	minTUIHeight = 24
)

var (
	tuiHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	tuiMetaStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tuiHintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tuiValueStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tuiHighStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	tuiTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tuiMutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	tuiSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
)

var priorityOrder = []listclean.Priority{
	listclean.PriorityHigh,
	listclean.PriorityMedium,
	listclean.PriorityLow,
}

type reviewLoadConfig struct {
	load func() ([]grocery.ListItem, error)
}

type tuiDataLoadedMsg struct {
	items []grocery.ListItem
}

type tuiDataLoadErrMsg struct {
	err error
}

type tuiFocus int

const (
	tuiFocusList tuiFocus = iota
	tuiFocusDetail
)

type tuiGroupItem struct {
	name    string
	count   int
	ordinal int
}

func (g tuiGroupItem) FilterValue() string { return strings.ToLower(g.name) }
func (g tuiGroupItem) Title() string       { return fmt.Sprintf("%d. %s", g.ordinal, g.name) }
func (g tuiGroupItem) Description() string {
	return fmt.Sprintf("Section header • %d suggestions", g.count)
}

type tuiSuggestionItem struct {
	suggestion  listclean.Suggestion
	group       string
	title       string
	description string
	filterValue string
}

func (s tuiSuggestionItem) FilterValue() string { return s.filterValue }
func (s tuiSuggestionItem) Title() string       { return s.title }
func (s tuiSuggestionItem) Description() string { return s.description }

type reviewModel struct {
	loading  bool
	spinner  spinner.Model
	loadCmd  tea.Cmd
	fatalErr error

	items       []grocery.ListItem
	suggestions []listclean.Suggestion
	dismissed   []string
	applied     int

	list   list.Model
	detail viewport.Model

	focus      tuiFocus
	showHelp   bool
	selectedID string

	groupStarts []int

	width, height   int
	bodyHeight      int
	listPaneWidth   int
	detailPaneWidth int
	tooSmall        bool
}

func newLoadingReviewModel(cfg reviewLoadConfig) reviewModel {
	delegate := list.NewDefaultDelegate()
	delegate.SetHeight(2)
	delegate.SetSpacing(1)

	lst := list.New([]list.Item{}, delegate, 0, 0)
	lst.Title = "Suggestions"
	lst.SetStatusBarItemName("item", "items")
	lst.SetShowStatusBar(true)
	lst.SetFilteringEnabled(true)
	lst.SetShowHelp(false)
	lst.SetShowPagination(true)
	lst.DisableQuitKeybindings()

	detail := viewport.New(0, 0)
	detail.KeyMap.PageDown.SetKeys("f", "pgdown")
	detail.KeyMap.PageUp.SetKeys("b", "pgup")
	detail.KeyMap.HalfPageDown.SetKeys("d")
	detail.KeyMap.HalfPageUp.SetKeys("u")

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	return reviewModel{
		loading: true,
		spinner: spin,
		loadCmd: loadTUIDataCmd(cfg),
		list:    lst,
		detail:  detail,
		focus:   tuiFocusList,
	}
}

func loadTUIDataCmd(cfg reviewLoadConfig) tea.Cmd {
	return func() tea.Msg {
		items, err := cfg.load()
		if err != nil {
			return tuiDataLoadErrMsg{err: err}
		}
		return tuiDataLoadedMsg{items: items}
	}
}

func (m reviewModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd)
}

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tuiDataLoadedMsg:
		m.loading = false
		m.items = msg.items
		m.recompute(true)
		m.resize()
		return m, nil

	case tuiDataLoadErrMsg:
		m.loading = false
		m.fatalErr = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.loading {
			if keyMsg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	if m.loading {
		return m, nil
	}

	if isKey {
		filtering := m.list.FilterState() == list.Filtering
		key := keyMsg.String()

		switch key {
		case "q":
			if !filtering {
				return m, tea.Quit
			}
		case "tab":
			if !filtering {
				if m.focus == tuiFocusList {
					m.focus = tuiFocusDetail
				} else {
					m.focus = tuiFocusList
				}
				return m, nil
			}
		case "esc":
			if m.focus == tuiFocusDetail && !filtering {
				m.focus = tuiFocusList
				return m, nil
			}
		case "?":
			if !filtering {
				m.showHelp = !m.showHelp
				m.resize()
				return m, nil
			}
		case "a", "enter":
			if !filtering {
				return m, m.applySelected()
			}
		case "x":
			if !filtering {
				return m, m.dismissSelected()
			}
		case "r":
			if !filtering {
				m.dismissed = nil
				m.recompute(false)
				return m, m.list.NewStatusMessage("Dismissed suggestions restored.")
			}
		case "]":
			if !filtering {
				if m.list.IsFiltered() {
					return m, m.list.NewStatusMessage("Clear fuzzy filter before section jumps.")
				}
				m.jumpSection(1)
				return m, nil
			}
		case "[":
			if !filtering {
				if m.list.IsFiltered() {
					return m, m.list.NewStatusMessage("Clear fuzzy filter before section jumps.")
				}
				m.jumpSection(-1)
				return m, nil
			}
		}

		if !filtering && len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if m.list.IsFiltered() {
				return m, m.list.NewStatusMessage("Clear fuzzy filter before section jumps.")
			}
			m.jumpToSection(int(key[0] - '1'))
			return m, nil
		}

		if m.focus == tuiFocusDetail && !filtering {
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.refreshDetail(false)
	return m, cmd
}

func (m reviewModel) View() string {
	if m.loading {
		return m.loadingView()
	}
	if m.width == 0 || m.height == 0 {
		return tuiMetaStyle.Render("Loading interface...")
	}
	if m.tooSmall {
		return lipgloss.NewStyle().
			Padding(1, 2).
			Render(
				fmt.Sprintf(
					"Terminal too small (%dx%d).\nResize to at least %dx%d for the two-pane review.",
					m.width, m.height, minTUIWidth, minTUIHeight,
				),
			)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(),
		m.bodyView(),
		m.footerView(),
	)
}

func (m reviewModel) loadingView() string {
	width := m.width
	if width == 0 {
		width = 80
	}
	skeletonStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	lines := []string{
		tuiHeaderStyle.Render("pantry review"),
		tuiMetaStyle.Render("Preparing interactive interface..."),
		"",
		fmt.Sprintf("%s Loading the shopping list", m.spinner.View()),
		tuiHintStyle.Render("Tip: press q to cancel."),
		"",
		skeletonStyle.Render("┌──────────────────────────────┬─────────────────────────────────────────┐"),
		skeletonStyle.Render("│  Loading suggestions...      │  Loading detail panel...               │"),
		skeletonStyle.Render("│  • duplicates                │  • affected items                      │"),
		skeletonStyle.Render("│  • quantities                │  • merge preview                       │"),
		skeletonStyle.Render("│  • categories                │  • scroll viewport                     │"),
		skeletonStyle.Render("└──────────────────────────────┴─────────────────────────────────────────┘"),
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
}

func (m *reviewModel) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	if m.loading {
		return
	}

	m.tooSmall = m.width < minTUIWidth || m.height < minTUIHeight
	if m.tooSmall {
		return
	}

	headerH := 3
	footerH := 2
	if m.showHelp {
		footerH = 6
	}
	m.bodyHeight = max(8, m.height-headerH-footerH-1)

	listWidth := max(40, int(float64(m.width)*0.43))
	if listWidth > m.width-42 {
		listWidth = m.width / 2
	}
	detailWidth := m.width - listWidth - 1
	if detailWidth < 36 {
		detailWidth = 36
		listWidth = m.width - detailWidth - 1
	}

	m.listPaneWidth = listWidth
	m.detailPaneWidth = detailWidth

	listInnerWidth := max(24, listWidth-4)
	detailInnerWidth := max(24, detailWidth-4)
	panelInnerHeight := max(6, m.bodyHeight-2)

	m.list.SetSize(listInnerWidth, panelInnerHeight)
	if idx := findItemIndexByID(m.list.Items(), m.selectedID); idx >= 0 && !m.list.IsFiltered() {
		m.list.Select(idx)
	}
	m.detail.Width = detailInnerWidth
	m.detail.Height = panelInnerHeight
	m.refreshDetail(false)
}

func (m reviewModel) headerView() string {
	focus := "list"
	if m.focus == tuiFocusDetail {
		focus = "detail"
	}

	top := fmt.Sprintf("pantry review  |  %d items on the list", len(m.items))
	bottom := fmt.Sprintf(
		"suggestions: %d open  |  applied: %d  |  dismissed: %d  |  focus: %s",
		len(m.suggestions), m.applied, len(m.dismissed), focus,
	)
	if fuzzy := strings.TrimSpace(m.list.FilterValue()); fuzzy != "" {
		bottom += "  |  fuzzy: " + fuzzy
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(tuiHeaderStyle.Render(top) + "\n" + tuiMetaStyle.Render(bottom))
}

func (m reviewModel) bodyView() string {
	listBorder := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1)
	detailBorder := listBorder

	if m.focus == tuiFocusList {
		listBorder = listBorder.BorderForeground(lipgloss.Color("86"))
	} else {
		detailBorder = detailBorder.BorderForeground(lipgloss.Color("86"))
	}

	left := listBorder.
		Width(m.listPaneWidth).
		Height(m.bodyHeight).
		Render(m.list.View())
	right := detailBorder.
		Width(m.detailPaneWidth).
		Height(m.bodyHeight).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m reviewModel) footerView() string {
	base := "Tab switch pane • / fuzzy filter • a apply • x dismiss • r restore dismissed • [/] section jump • 1-9 section index • q quit"
	if m.focus == tuiFocusDetail {
		base = "Detail: j/k or ↑/↓ scroll • u/d half-page • b/f page • esc list • ? help • q quit"
	}

	if !m.showHelp {
		return lipgloss.NewStyle().Padding(0, 1).Render(tuiHintStyle.Render(base))
	}

	lines := []string{
		"Key Help",
		"list pane: ↑/↓ or j/k move • / fuzzy filter • a or enter apply a merge • x dismiss • r restore dismissed",
		"group jumps: ] next section • [ previous section • 1..9 jump to numbered section header",
		"detail pane: j/k or ↑/↓ scroll • u/d half-page • b/f page up/down",
		"global: tab switch pane • esc list • ? toggle help • q finish • ctrl+c force quit",
	}
	return lipgloss.NewStyle().
		Padding(0, 1).
		Render(tuiHintStyle.Render(strings.Join(lines, "\n")))
}

func (m *reviewModel) selectedSuggestion() (listclean.Suggestion, bool) {
	item, ok := m.list.SelectedItem().(tuiSuggestionItem)
	if !ok {
		return listclean.Suggestion{}, false
	}
	return item.suggestion, true
}

func (m *reviewModel) applySelected() tea.Cmd {
	s, ok := m.selectedSuggestion()
	if !ok {
		return m.list.NewStatusMessage("Select a suggestion first.")
	}

	updated, err := listclean.Apply(m.items, s)
	switch {
	case errors.Is(err, listclean.ErrNotApplicable):
		return m.list.NewStatusMessage("Only merges apply automatically; press x to dismiss.")
	case err != nil:
		return m.list.NewStatusMessage("Could not apply: " + err.Error())
	}

	m.items = updated
	m.applied++
	m.recompute(false)
	return m.list.NewStatusMessage(fmt.Sprintf("Merged %d items.", len(s.ItemIDs)))
}

func (m *reviewModel) dismissSelected() tea.Cmd {
	s, ok := m.selectedSuggestion()
	if !ok {
		return m.list.NewStatusMessage("Select a suggestion first.")
	}
	m.dismissed = append(m.dismissed, s.ID)
	m.recompute(false)
	return m.list.NewStatusMessage("Dismissed: " + s.Title)
}

// recompute derives suggestions from the current list, hides dismissed ones
// and rebuilds the grouped list, keeping the selection when it survives.
func (m *reviewModel) recompute(resetSelection bool) {
	currentID := m.selectedID
	m.suggestions = listclean.WithoutDismissed(listclean.GenerateSmartSuggestions(m.items), m.dismissed)

	items, starts := buildGroupedListItems(m.suggestions)
	m.groupStarts = starts

	m.list.Title = fmt.Sprintf("Suggestions • %d open", len(m.suggestions))
	m.list.SetItems(items)

	target := -1
	if !resetSelection && currentID != "" {
		target = findItemIndexByID(items, currentID)
	}
	if target < 0 {
		target = firstSuggestionItemIndex(items)
	}
	if target < 0 && len(items) > 0 {
		target = 0
	}
	if target >= 0 {
		m.list.Select(target)
	}

	m.refreshDetail(true)
}

func (m *reviewModel) refreshDetail(resetScroll bool) {
	var content string
	nextID := ""

	if selected := m.list.SelectedItem(); selected != nil {
		switch item := selected.(type) {
		case tuiSuggestionItem:
			content = renderSuggestionDetailContent(item.suggestion, m.items, m.detail.Width)
			nextID = stableIDForSuggestion(item.suggestion)
		case tuiGroupItem:
			content = m.renderGroupDetail(item)
			nextID = stableIDForGroup(item.name)
		}
	}
	if content == "" {
		content = "Nothing left to review.\n\nPress q to finish, or r to restore dismissed suggestions."
	}

	if resetScroll || nextID != m.selectedID {
		m.detail.GotoTop()
	}
	m.selectedID = nextID
	m.detail.SetContent(content)
}

func (m reviewModel) renderGroupDetail(group tuiGroupItem) string {
	preview := m.groupPreviewTitles(group.name, 5)

	lines := []string{
		tuiSectionStyle.Render(fmt.Sprintf("Section %d: %s", group.ordinal, group.name)),
		tuiMetaStyle.Render(fmt.Sprintf("%d suggestions in this section", group.count)),
		"",
		tuiMetaStyle.Render("Jump keys:"),
		"- `]` next section, `[` previous section",
		"- `1..9` jump directly to section number",
	}
	if len(preview) > 0 {
		lines = append(lines, "")
		lines = append(lines, tuiMetaStyle.Render("Preview:"))
		for _, title := range preview {
			lines = append(lines, "• "+title)
		}
	}

	return strings.Join(lines, "\n")
}

func (m reviewModel) groupPreviewTitles(group string, limit int) []string {
	out := make([]string, 0, limit)
	for _, item := range m.list.Items() {
		s, ok := item.(tuiSuggestionItem)
		if !ok || s.group != group {
			continue
		}
		out = append(out, s.title)
		if len(out) >= limit {
			break
		}
	}
	return out
}

func (m *reviewModel) jumpToSection(index int) {
	if index < 0 || index >= len(m.groupStarts) {
		return
	}

	target := firstSuggestionIndexFrom(m.list.Items(), m.groupStarts[index])
	if target < 0 {
		target = m.groupStarts[index]
	}
	m.list.Select(target)
	m.refreshDetail(true)
}

func (m *reviewModel) jumpSection(delta int) {
	if len(m.groupStarts) == 0 {
		return
	}

	current := m.currentSectionIndex()
	if current < 0 {
		current = 0
	}
	next := current + delta
	if next < 0 {
		next = len(m.groupStarts) - 1
	}
	if next >= len(m.groupStarts) {
		next = 0
	}
	m.jumpToSection(next)
}

func (m reviewModel) currentSectionIndex() int {
	if len(m.groupStarts) == 0 {
		return -1
	}
	cursor := m.list.GlobalIndex()
	current := 0
	for i, start := range m.groupStarts {
		if start <= cursor {
			current = i
			continue
		}
		break
	}
	return current
}

// buildGroupedListItems sections suggestions by priority, high first. Empty
// sections are left out.
func buildGroupedListItems(suggestions []listclean.Suggestion) (items []list.Item, starts []int) {
	if len(suggestions) == 0 {
		return nil, nil
	}

	groups := map[listclean.Priority][]listclean.Suggestion{}
	for _, s := range suggestions {
		groups[s.Priority] = append(groups[s.Priority], s)
	}

	items = make([]list.Item, 0, len(suggestions)+len(priorityOrder))
	starts = make([]int, 0, len(priorityOrder))
	for _, p := range priorityOrder {
		members := groups[p]
		if len(members) == 0 {
			continue
		}
		name := priorityLabel(p)
		starts = append(starts, len(items))
		items = append(items, tuiGroupItem{
			name:    name,
			count:   len(members),
			ordinal: len(starts),
		})
		for _, s := range members {
			items = append(items, buildTUISuggestionItem(s, name))
		}
	}

	return items, starts
}

func priorityLabel(p listclean.Priority) string {
	return humanizeLabel(string(p)) + " priority"
}

func buildTUISuggestionItem(s listclean.Suggestion, group string) tuiSuggestionItem {
	descParts := []string{string(s.Kind)}
	if s.Action != "" {
		descParts = append(descParts, s.Action)
	}
	descParts = append(descParts, fmt.Sprintf("%d items", len(s.ItemIDs)))

	filterTokens := []string{
		s.Title,
		s.Description,
		s.Action,
		string(s.Kind),
		group,
	}

	return tuiSuggestionItem{
		suggestion:  s,
		group:       group,
		title:       s.Title,
		description: strings.Join(descParts, "  •  "),
		filterValue: strings.ToLower(strings.Join(filterTokens, " ")),
	}
}

func renderSuggestionDetailContent(s listclean.Suggestion, items []grocery.ListItem, width int) string {
	maxWidth := max(24, width)

	lines := []string{
		tuiTitleStyle.Render(wrapText(s.Title, maxWidth)),
	}

	meta := []string{string(s.Kind)}
	if s.Priority == listclean.PriorityHigh {
		meta = append([]string{tuiHighStyle.Render("HIGH")}, meta...)
	} else {
		meta = append([]string{strings.ToUpper(string(s.Priority))}, meta...)
	}
	lines = append(lines, tuiMetaStyle.Render(strings.Join(meta, "  |  ")))

	lines = append(lines, "")
	lines = append(lines, wrapText(s.Description, maxWidth))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("%s %s", tuiMetaStyle.Render("Action:"), tuiValueStyle.Render(s.Action)))

	affected := affectedItems(items, s.ItemIDs)
	if len(affected) > 0 {
		lines = append(lines, "")
		lines = append(lines, tuiMetaStyle.Render("Items:"))
		for _, item := range affected {
			lines = append(lines, "• "+wrapText(describeListItem(item), maxWidth-2))
		}
	}

	if s.Kind == listclean.KindDuplicate {
		if merged, err := listclean.MergeItems(items, s.ItemIDs); err == nil {
			lines = append(lines, "")
			lines = append(lines, tuiMetaStyle.Render("After merge:"))
			lines = append(lines, tuiValueStyle.Render(wrapText(describeListItem(merged), maxWidth)))
		}
	}
	if s.Kind == listclean.KindQuantity && len(affected) == 1 {
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("%s %s", tuiMetaStyle.Render("Bulk unit:"), listclean.BulkUnit(affected[0])))
	}

	lines = append(lines, "")
	lines = append(lines, tuiMutedStyle.Render("ID: "+s.ID))
	return strings.Join(lines, "\n")
}

func affectedItems(items []grocery.ListItem, ids []string) []grocery.ListItem {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make([]grocery.ListItem, 0, len(ids))
	for _, item := range items {
		if want[item.ID] {
			out = append(out, item)
		}
	}
	return out
}

func describeListItem(item grocery.ListItem) string {
	amount := strconv.FormatFloat(item.Quantity, 'f', -1, 64)
	if unit := strings.TrimSpace(item.Unit); unit != "" {
		amount += " " + unit
	}
	text := fmt.Sprintf("%s (%s, %s)", grocery.DisplayName(item), amount, grocery.CategoryOf(item))
	if note := strings.TrimSpace(item.Note); note != "" {
		text += " - " + note
	}
	return text
}

func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	if width < 12 {
		width = 12
	}

	line := words[0]
	lines := make([]string, 0, len(words)/6+1)
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

func findItemIndexByID(items []list.Item, stableID string) int {
	for i, item := range items {
		if stableIDForItem(item) == stableID {
			return i
		}
	}
	return -1
}

func firstSuggestionItemIndex(items []list.Item) int {
	return firstSuggestionIndexFrom(items, 0)
}

func firstSuggestionIndexFrom(items []list.Item, start int) int {
	for i := start; i < len(items); i++ {
		if _, ok := items[i].(tuiSuggestionItem); ok {
			return i
		}
	}
	return -1
}

func stableIDForItem(item list.Item) string {
	switch value := item.(type) {
	case tuiSuggestionItem:
		return stableIDForSuggestion(value.suggestion)
	case tuiGroupItem:
		return stableIDForGroup(value.name)
	default:
		return ""
	}
}

func stableIDForSuggestion(s listclean.Suggestion) string {
	return "suggestion:" + s.ID
}

func stableIDForGroup(group string) string {
	return "group:" + strings.ToLower(strings.TrimSpace(group))
}

func humanizeLabel(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "Other"
	}
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	words := strings.Fields(strings.ToLower(s))
	for i, word := range words {
		if len(word) == 0 {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
