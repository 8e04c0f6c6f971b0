// Command taxorf is the single entry point for taxonomy LCA queries and
// ORF scanning. Each operation is a subcommand selected with -cmd; flags
// not used by the selected subcommand are ignored.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"taxorf/internal/config"
	"taxorf/internal/fasta"
	"taxorf/internal/gencode"
	"taxorf/internal/orf"
	"taxorf/internal/taxdump"
	"taxorf/internal/taxonomy"
	"taxorf/internal/translator"
)

func main() {
	cmd := flag.String("cmd", "", "lca | isancestor | lineage | atranks | cladecounts | orf | build")
	configPath := flag.String("config", "", "path to config.json")
	nodesPath := flag.String("nodes", "", "path to nodes.dmp")
	namesPath := flag.String("names", "", "path to names.dmp")
	mergedPath := flag.String("merged", "", "path to merged.dmp")

	taxonA := flag.Int64("a", 0, "first taxon id (lca); ancestor candidate (isancestor)")
	taxonB := flag.Int64("b", 0, "second taxon id (lca); child candidate (isancestor)")
	node := flag.Int64("node", 0, "taxon id (lineage, atranks)")
	ranks := flag.String("ranks", "", "comma-separated rank names (atranks)")
	countsPath := flag.String("counts", "", "path to a taxid\\tcount file (cladecounts)")
	root := flag.Int64("root", 1, "root taxon id (cladecounts)")

	fastaPath := flag.String("fasta", "", "input FASTA (orf)")
	minLen := flag.Int("min-length", 1, "ORFs of this many codons or fewer are dropped (orf)")
	maxLen := flag.Int("max-length", 1<<30, "maximum ORF length in codons (orf)")
	maxGaps := flag.Int("max-gaps", 0, "maximum ambiguous/gap codons tolerated (orf)")
	allStarts := flag.Bool("all-starts", false, "accept every genetic-code start codon, not only ATG (orf)")
	startMode := flag.String("start-mode", "start-to-stop", "start-to-stop | any-to-stop | last-start-to-stop (orf)")

	flag.Parse()

	logger := newLogger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", "err", err)
	}
	applyFlagOverrides(cfg, *nodesPath, *namesPath, *mergedPath)

	switch *cmd {
	case "lca":
		runLCA(logger, cfg, TaxID(*taxonA), TaxID(*taxonB))
	case "isancestor":
		runIsAncestor(logger, cfg, TaxID(*taxonA), TaxID(*taxonB))
	case "lineage":
		runLineage(logger, cfg, TaxID(*node))
	case "atranks":
		runAtRanks(logger, cfg, TaxID(*node), splitCSV(*ranks))
	case "cladecounts":
		runCladeCounts(logger, cfg, *countsPath, TaxID(*root))
	case "orf":
		runOrf(logger, cfg, *fastaPath, *minLen, *maxLen, *maxGaps, *allStarts, *startMode)
	case "build":
		runBuild(logger, cfg)
	default:
		fmt.Fprintln(os.Stderr, "usage: taxorf -cmd={lca,isancestor,lineage,atranks,cladecounts,orf,build} [flags]")
		os.Exit(2)
	}
}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "taxorf",
	})
}

// TaxID is an alias of taxonomy.TaxID that shortens the flag conversions.
type TaxID = taxonomy.TaxID

func applyFlagOverrides(cfg *config.Config, nodes, names, merged string) {
	if nodes != "" {
		cfg.NodesDmp = nodes
	}
	if names != "" {
		cfg.NamesDmp = names
	}
	if merged != "" {
		cfg.MergedDmp = merged
	}
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// loadEngine resolves nodes/names/merged paths, fetching the taxdump
// archive first if explicit paths were not given.
func loadEngine(logger *log.Logger, cfg *config.Config) *taxonomy.Engine {
	nodesPath, namesPath, mergedPath := cfg.NodesDmp, cfg.NamesDmp, cfg.MergedDmp
	if nodesPath == "" || namesPath == "" || mergedPath == "" {
		dir := cfg.TaxdumpDir
		if dir == "" {
			dir = "taxdump"
		}
		ttl := time.Duration(cfg.TaxdumpCacheTTL) * time.Second
		fetcher := taxdump.NewFetcher(dir, ttl)
		if cfg.TaxdumpURL != "" {
			fetcher.URL = cfg.TaxdumpURL
		}
		logger.Info("ensuring taxdump cache", "dir", dir)
		files, err := fetcher.Ensure()
		if err != nil {
			logger.Fatal("fetch taxdump", "err", err)
		}
		nodesPath, namesPath, mergedPath = files.NodesPath, files.NamesPath, files.MergedPath
	}

	logger.Info("loading taxonomy", "nodes", nodesPath, "names", namesPath, "merged", mergedPath)
	engine, err := taxonomy.Load(nodesPath, namesPath, mergedPath)
	if err != nil {
		logger.Fatal("load taxonomy", "err", err)
	}
	logger.Info("taxonomy loaded", "nodes", engine.NumNodes())
	return engine
}

func runBuild(logger *log.Logger, cfg *config.Config) {
	engine := loadEngine(logger, cfg)
	logger.Info("build complete", "nodes", engine.NumNodes())
}

func runLCA(logger *log.Logger, cfg *config.Config, a, b TaxID) {
	engine := loadEngine(logger, cfg)
	fmt.Println(engine.LCA(a, b))
}

func runIsAncestor(logger *log.Logger, cfg *config.Config, ancestor, child TaxID) {
	engine := loadEngine(logger, cfg)
	warn := func(id TaxID) { logger.Warn("unknown taxon id", "id", id) }
	fmt.Println(engine.IsAncestor(ancestor, child, warn))
}

func runLineage(logger *log.Logger, cfg *config.Config, node TaxID) {
	engine := loadEngine(logger, cfg)
	fmt.Println(engine.TaxLineage(node))
}

func runAtRanks(logger *log.Logger, cfg *config.Config, node TaxID, ranks []string) {
	engine := loadEngine(logger, cfg)
	values := engine.AtRanks(node, ranks)
	for i, r := range ranks {
		fmt.Printf("%s\t%s\n", r, values[i])
	}
}

func runCladeCounts(logger *log.Logger, cfg *config.Config, countsPath string, root TaxID) {
	engine := loadEngine(logger, cfg)
	counts, err := readCounts(countsPath)
	if err != nil {
		logger.Fatal("read counts", "err", err)
	}
	clade := engine.GetCladeCounts(counts, root)
	for taxon, sum := range clade {
		fmt.Printf("%d\t%d\n", taxon, sum)
	}
}

func readCounts(path string) (map[TaxID]uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	counts := make(map[TaxID]uint64)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		taxID, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			continue
		}
		count, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		counts[TaxID(taxID)] = count
	}
	return counts, nil
}

func runOrf(logger *log.Logger, cfg *config.Config, fastaPath string, minLen, maxLen, maxGaps int, allStarts bool, mode string) {
	if fastaPath == "" {
		logger.Fatal("-fasta is required for -cmd=orf")
	}
	f, err := os.Open(fastaPath)
	if err != nil {
		logger.Fatal("open fasta", "err", err)
	}
	defer f.Close()

	table := gencode.ByName(cfg.GeneticCode)
	scanner := orf.New(table, allStarts || cfg.UseAllTableStarts)
	startMode := parseStartMode(mode)

	reader := fasta.NewReader(f)
	id := 0
	for {
		rec, ok := reader.Next()
		if !ok {
			break
		}
		if !scanner.SetSequence([]byte(rec.Sequence)) {
			logger.Warn("skipping record with invalid sequence", "header", rec.Header)
			continue
		}
		locs := scanner.FindAll(minLen, maxLen, maxGaps, orf.FrameAll, orf.FrameAll, startMode)
		views := make([]string, len(locs))
		for i := range locs {
			locs[i].ID = id
			id++
			views[i] = string(scanner.View(locs[i]))
		}

		var proteins map[int]string
		if cfg.UseExternalTranslator {
			requests := make([]translator.Request, len(locs))
			for i, loc := range locs {
				requests[i] = translator.Request{ID: loc.ID, Sequence: views[i]}
			}
			var err error
			proteins, err = translator.TranslateAll(requests, cfg.TranslatorCommand, 0)
			if err != nil {
				logger.Warn("external translation cross-check failed", "err", err)
			}
		}

		for i := range locs {
			fmt.Printf(">%s %s\n%s\n", rec.Header, orf.Format(locs[i]), views[i])
			if protein, ok := proteins[locs[i].ID]; ok {
				fmt.Printf(";translated %s\n", protein)
			}
		}
	}
}

func parseStartMode(s string) orf.StartMode {
	switch s {
	case "any-to-stop":
		return orf.AnyToStop
	case "last-start-to-stop":
		return orf.LastStartToStop
	default:
		return orf.StartToStop
	}
}
