package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/applyeval/internal/model"
)

// resultItem holds one completed example in the results list.
type resultItem struct {
	label      string
	model      string
	difficulty string
	status     string
	similarity string
	diff       string
}

// FilterValue implements list.Item.
func (r resultItem) FilterValue() string {
	return r.label + " " + r.model + " " + r.difficulty + " " + r.status
}

func newResultItem(r m.Report) resultItem {
	item := resultItem{
		label:      exampleLabel(r),
		model:      r.CodeModel,
		difficulty: string(r.Difficulty),
		status:     reportStatus(r),
		similarity: "-",
	}

	if r.Scored() {
		item.similarity = fmt.Sprintf("%.2f", r.Metrics.SemanticSimilarity)
		item.diff = unifiedDiff(r.AppliedFile, r.TargetFile, item.label)
	}

	return item
}

// resultDelegate renders result rows in the list.
type resultDelegate struct {
	offset int
}

func (d resultDelegate) Height() int  { return 1 }
func (d resultDelegate) Spacing() int { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	result, ok := item.(resultItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()
	labelWidth := lm.Width() - 42

	statusStyle, cellStyle, labelStyle := d.styles(result, isSelected)

	label := truncateText(result.label, labelWidth)
	if isSelected {
		label = animateScroll(result.label, labelWidth, d.offset)
	}

	line := fmt.Sprintf("%s  %s  %s  %s",
		statusStyle.Render(fmt.Sprintf("%-8s", result.status)),
		cellStyle.Width(12).Render(result.difficulty),
		cellStyle.Width(6).Render(result.similarity),
		labelStyle.Render(label),
	)
	_, _ = fmt.Fprint(w, line)
}

func (d resultDelegate) styles(result resultItem, isSelected bool) (lipgloss.Style, lipgloss.Style, lipgloss.Style) {
	if isSelected {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

		return selected.Width(10).Align(lipgloss.Left), selected.Align(lipgloss.Left), selected
	}

	statusColorMap := map[string]lipgloss.Color{
		"success": lipgloss.Color("2"), // Green
		"fail":    lipgloss.Color("1"), // Red
		"error":   lipgloss.Color("3"), // Yellow
	}

	statusColor, ok := statusColorMap[result.status]
	if !ok {
		statusColor = lipgloss.Color("8")
	}

	return lipgloss.NewStyle().Foreground(statusColor).Bold(true).Width(10).Align(lipgloss.Left),
		lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Align(lipgloss.Left),
		lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
}

// runModel is the live view of an evaluation run.
type runModel struct {
	width           int
	height          int
	progressBar     progress.Model
	info            RunInfo
	total           int
	completed       int
	progressPercent float64
	workerLabels    map[int]string
	rendered        bool
	finished        bool
	results         []resultItem
	summaries       []m.ModelSummary
	savedPath       m.Path
	resultsList     list.Model
	delegate        resultDelegate
	animOffset      int
	lastSelected    int
	showDiff        bool
	selectedDiff    string
	selectedLabel   string
}

func newRunModel() runModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := resultDelegate{}
	resultsList := list.New([]list.Item{}, delegate, 80, 20)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter results…"

	return runModel{
		progressBar:  prog,
		resultsList:  resultsList,
		delegate:     delegate,
		workerLabels: make(map[int]string),
		lastSelected: -1,
	}
}

func (rm runModel) Init() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm = rm.handleWindowSize(msg)

	case tea.KeyMsg:
		rm, cmd = rm.handleKeyMsg(msg)

	case tickMsg:
		return rm.handleTickMsg(msg)

	case runInfoMsg:
		rm.info = msg.info
		rm.total = msg.info.Examples * max(len(msg.info.CodeModels), 1)
		rm.completed = 0
		rm.progressPercent = 0
		rm.rendered = true

	case startExampleMsg:
		rm.workerLabels[msg.worker] = fmt.Sprintf("#%d %s [%s, %s]", msg.exampleID, msg.function, msg.codeModel, msg.difficulty)
		rm.rendered = true

	case completedExampleMsg:
		rm = rm.handleCompleted(msg)

	case summaryMsg:
		rm.summaries = append(rm.summaries, msg.summary)

	case savedMsg:
		rm.savedPath = msg.path

	case runFinishedMsg:
		// An aborted run has nothing worth browsing.
		if rm.completed < rm.total || rm.total == 0 {
			return rm, tea.Quit
		}

		rm.finished = true
		rm.rendered = true
	}

	return rm, cmd
}

func (rm runModel) View() string {
	if !rm.rendered {
		return "Initializing evaluation…\n"
	}

	if rm.finished {
		return rm.viewResults()
	}

	return rm.viewProgress()
}

func (rm runModel) viewProgress() string {
	accentColor := lipgloss.Color("6") // Cyan

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	title := titleStyle.Render("Apply Evaluation")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Progress: %s / %s  •  Workers: %s  •  Mode: %s",
		accentStyle.Render(fmt.Sprintf("%d", rm.completed)),
		accentStyle.Render(fmt.Sprintf("%d", rm.total)),
		accentStyle.Render(fmt.Sprintf("%d", rm.info.Threads)),
		accentStyle.Render(string(rm.info.Mode)),
	))

	progressView := lipgloss.NewStyle().Padding(0, 2).Render(rm.progressBar.ViewAs(rm.progressPercent))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(rm.width).
		Render("Press q to quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		progressView,
		rm.renderWorkerBox(accentColor),
		footer,
	)
}

func (rm runModel) renderWorkerBox(accentColor lipgloss.Color) string {
	contentStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1).
		Margin(1, 1, 1, 0).
		Width(max(rm.width-4, 20))

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	workers := max(rm.info.Threads, 1)
	available := max(rm.width-8, 10)
	digits := len(fmt.Sprintf("%d", workers-1))

	lines := make([]string, 0, workers)

	for i := range workers {
		label := rm.workerLabels[i]
		if label == "" {
			label = "idle"
		}

		if workers == 1 {
			lines = append(lines, labelStyle.Render(truncateText(label, available)))
			continue
		}

		prefix := fmt.Sprintf("Worker %*d: ", digits, i)
		lines = append(lines, prefix+labelStyle.Render(truncateText(label, max(available-len(prefix), 10))))
	}

	return contentStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (rm runModel) viewResults() string {
	accentColor := lipgloss.Color("6") // Cyan

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	title := titleStyle.Render("Apply Evaluation Results")

	lines := []string{fmt.Sprintf(
		"Total: %s  •  Success: %s  •  Fail: %s  •  Errors: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(rm.results))),
		accentStyle.Render(fmt.Sprintf("%d", rm.countStatus("success"))),
		accentStyle.Render(fmt.Sprintf("%d", rm.countStatus("fail"))),
		accentStyle.Render(fmt.Sprintf("%d", rm.countStatus("error"))),
	)}

	for _, s := range rm.summaries {
		lines = append(lines, fmt.Sprintf("%s: exact %s  •  success %s  •  avg sim %s",
			s.CodeModel,
			accentStyle.Render(countWithRate(s.ExactMatches, s.Total)),
			accentStyle.Render(countWithRate(s.OverallSuccess, s.Total)),
			accentStyle.Render(fmt.Sprintf("%.2f", s.Mean(s.SemanticSimilaritySum))),
		))
	}

	if rm.savedPath != "" {
		lines = append(lines, "Saved: "+string(rm.savedPath))
	}

	summary := summaryStyle.Render(strings.Join(lines, "\n"))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(rm.width).
		Render("↑/k up • ↓/j down • / filter • enter/space diff • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		rm.renderResultsBox(accentColor),
		footer,
	)
}

func (rm runModel) renderResultsBox(accentColor lipgloss.Color) string {
	listWidth := max(rm.width-4, 40)
	diffBoxHeight := rm.diffBoxHeight()
	listHeight := max(rm.height-10-len(rm.summaries)-diffBoxHeight, 5)

	rm.resultsList.SetHeight(listHeight)
	rm.resultsList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-10s  %-12s  %-6s  %s", "Status", "Difficulty", "Sim", "Example"))

	resultsBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, rm.resultsList.View()))

	diffBox := rm.renderDiffBox(accentColor, listWidth)
	if diffBox == "" {
		return resultsBox
	}

	return lipgloss.JoinVertical(lipgloss.Left, resultsBox, diffBox)
}

func (rm runModel) countStatus(status string) int {
	n := 0

	for _, r := range rm.results {
		if r.status == status {
			n++
		}
	}

	return n
}

func (rm runModel) handleCompleted(msg completedExampleMsg) runModel {
	rm.completed++
	rm.results = append(rm.results, newResultItem(msg.report))

	for worker, label := range rm.workerLabels {
		if strings.HasPrefix(label, fmt.Sprintf("#%d ", msg.report.ExampleID)) &&
			strings.Contains(label, "["+msg.report.CodeModel+",") {
			rm.workerLabels[worker] = ""
		}
	}

	items := make([]list.Item, 0, len(rm.results))
	for _, r := range rm.results {
		items = append(items, r)
	}

	rm.resultsList.SetItems(items)

	if rm.total > 0 {
		rm.progressPercent = float64(rm.completed) / float64(rm.total)
	}

	rm.rendered = true

	return rm
}

func (rm runModel) handleKeyMsg(msg tea.KeyMsg) (runModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "q", "ctrl+c":
		return rm, tea.Quit
	default:
		if !rm.finished {
			return rm, nil
		}

		if msg.String() == "enter" || msg.String() == " " {
			rm.toggleSelectedDiff()
			return rm, nil
		}

		rm.resultsList, cmd = rm.resultsList.Update(msg)

		if rm.resultsList.Index() != rm.lastSelected {
			rm.lastSelected = rm.resultsList.Index()
			rm.animOffset = 0
			rm.delegate.offset = 0
			rm.resultsList.SetDelegate(rm.delegate)
			rm.showDiff = false
			rm.selectedDiff = ""
			rm.selectedLabel = ""
		}
	}

	return rm, cmd
}

func (rm *runModel) toggleSelectedDiff() {
	result, ok := rm.resultsList.SelectedItem().(resultItem)
	if !ok {
		return
	}

	diff := strings.TrimSpace(result.diff)
	if diff == "" || (rm.showDiff && rm.selectedDiff == diff) {
		rm.showDiff = false
		rm.selectedDiff = ""
		rm.selectedLabel = ""

		return
	}

	rm.showDiff = true
	rm.selectedDiff = diff
	rm.selectedLabel = result.label
}

func (rm runModel) diffMaxLines() int {
	return min(max(rm.height/3, 6), 20)
}

func (rm runModel) diffBoxHeight() int {
	if !rm.showDiff || rm.selectedDiff == "" {
		return 0
	}

	return min(len(strings.Split(rm.selectedDiff, "\n")), rm.diffMaxLines()) + 3
}

func (rm runModel) renderDiffBox(accentColor lipgloss.Color, width int) string {
	if !rm.showDiff || rm.selectedDiff == "" {
		return ""
	}

	lines := strings.Split(rm.selectedDiff, "\n")
	maxLines := rm.diffMaxLines()
	truncated := false

	if len(lines) > maxLines {
		lines = lines[:maxLines-1]
		truncated = true
	}

	contentWidth := max(width-4, 10)

	body := make([]string, 0, len(lines)+1)
	for _, line := range lines {
		body = append(body, renderDiffLine(line, contentWidth))
	}

	if truncated {
		body = append(body, "…")
	}

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Render(truncateText("Diff • "+rm.selectedLabel, contentWidth))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, lipgloss.JoinVertical(lipgloss.Left, body...)))
}

func renderDiffLine(line string, width int) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	switch {
	case strings.HasPrefix(line, "+++"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	case strings.HasPrefix(line, "---"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	case strings.HasPrefix(line, "@@"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	case strings.HasPrefix(line, "+"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	case strings.HasPrefix(line, "-"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	case strings.TrimSpace(line) == "":
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}

	return style.Render(truncateText(line, width))
}

func (rm runModel) handleWindowSize(msg tea.WindowSizeMsg) runModel {
	rm.width = msg.Width
	rm.height = msg.Height
	rm.progressBar.Width = max(rm.width-8, 20)

	return rm
}

func (rm runModel) handleTickMsg(_ tickMsg) (runModel, tea.Cmd) {
	if rm.finished && rm.resultsList.FilterState() != list.Filtering {
		rm.animOffset++
		rm.delegate.offset = rm.animOffset
		rm.resultsList.SetDelegate(rm.delegate)
	}

	return rm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	// Initial pause before scrolling starts (in ticks)
	pause := 5
	if offset < pause {
		return truncateText(text, width)
	}

	runes := []rune(text + "   ")
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	ellipsis := "…"
	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
