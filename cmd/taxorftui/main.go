// Command taxorftui is an interactive browser over the ORF locations
// found in a FASTA file, paired with taxonomy lineage lookups when a
// taxdump is configured.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taxorf/internal/config"
	"taxorf/internal/fasta"
	"taxorf/internal/gencode"
	"taxorf/internal/orf"
	"taxorf/internal/taxonomy"
)

var (
	borderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

// orfItem adapts an orf.SequenceLocation to bubbles/list's list.Item.
type orfItem struct {
	recordHeader string
	loc          orf.SequenceLocation
	view         string
}

func (i orfItem) Title() string { return fmt.Sprintf("%s %s", i.recordHeader, i.loc.Strand) }
func (i orfItem) Description() string {
	return fmt.Sprintf("%d-%d (len %d)", i.loc.From, i.loc.To, i.loc.To-i.loc.From)
}
func (i orfItem) FilterValue() string { return i.recordHeader }

// detailMode selects what the right-hand pane shows for the selected ORF.
type detailMode int

const (
	modeHeader detailMode = iota
	modeSequence
	modeLineage
	numModes
)

func (m detailMode) String() string {
	switch m {
	case modeSequence:
		return "sequence"
	case modeLineage:
		return "lineage"
	default:
		return "header"
	}
}

type model struct {
	list      list.Model
	items     []orfItem
	mode      detailMode
	engine    *taxonomy.Engine
	rootTaxon taxonomy.TaxID
	width     int
	height    int
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width/2, msg.Height-2)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.cycleMode()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) cycleMode() {
	m.mode = (m.mode + 1) % numModes
}

func (m model) View() string {
	left := borderStyle.Render(m.list.View())
	right := borderStyle.Render(strings.Join(m.buildRightLines(), "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right) + "\n" + labelStyle.Render("tab: cycle detail mode ("+m.mode.String()+")  q: quit")
}

func (m model) buildRightLines() []string {
	selected, ok := m.list.SelectedItem().(orfItem)
	if !ok {
		return []string{labelStyle.Render("no orf selected")}
	}
	lines := []string{titleStyle.Render(selected.Title())}
	switch m.mode {
	case modeSequence:
		lines = append(lines, wrap(selected.view, 60)...)
	case modeLineage:
		if m.engine == nil {
			lines = append(lines, labelStyle.Render("no taxonomy loaded"))
			break
		}
		lines = append(lines, m.engine.TaxLineage(m.rootTaxon))
	default:
		lines = append(lines, orf.Format(selected.loc))
	}
	return lines
}

func wrap(s string, width int) []string {
	var out []string
	for len(s) > width {
		out = append(out, s[:width])
		s = s[width:]
	}
	return append(out, s)
}

func main() {
	fastaPath := flag.String("fasta", "", "FASTA file to scan for ORFs")
	configPath := flag.String("config", "", "path to config.json")
	rootTaxon := flag.Int64("root", 1, "taxon id to show lineage for in the lineage detail pane")
	flag.Parse()

	if *fastaPath == "" {
		fmt.Fprintln(os.Stderr, "usage: taxorftui -fasta seqs.fasta [-config config.json]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	items, err := scanFile(*fastaPath, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "scan fasta:", err)
		os.Exit(1)
	}

	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}
	l := list.New(listItems, list.NewDefaultDelegate(), 0, 0)
	l.Title = "ORFs"

	var engine *taxonomy.Engine
	if cfg.NodesDmp != "" && cfg.NamesDmp != "" && cfg.MergedDmp != "" {
		engine, _ = taxonomy.Load(cfg.NodesDmp, cfg.NamesDmp, cfg.MergedDmp)
	}

	m := model{list: l, items: items, engine: engine, rootTaxon: taxonomy.TaxID(*rootTaxon)}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "tui error:", err)
		os.Exit(1)
	}
}

func scanFile(path string, cfg *config.Config) ([]orfItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table := gencode.ByName(cfg.GeneticCode)
	scanner := orf.New(table, cfg.UseAllTableStarts)

	minLen, maxLen := cfg.MinOrfLength, cfg.MaxOrfLength
	if maxLen == 0 {
		maxLen = 1 << 30
	}

	var items []orfItem
	reader := fasta.NewReader(f)
	id := 0
	for {
		rec, ok := reader.Next()
		if !ok {
			break
		}
		if !scanner.SetSequence([]byte(rec.Sequence)) {
			continue
		}
		locs := scanner.FindAll(minLen, maxLen, cfg.MaxOrfGaps, orf.FrameAll, orf.FrameAll, orf.StartToStop)
		for _, loc := range locs {
			loc.ID = id
			id++
			items = append(items, orfItem{recordHeader: rec.Header, loc: loc, view: string(scanner.View(loc))})
		}
	}
	return items, nil
}
