// Command taxorfweb exposes taxonomy LCA queries and ORF scanning over a
// small JSON API. ORF scans run synchronously within the request and are
// recorded as completed jobs through internal/jobstore.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"taxorf/internal/config"
	"taxorf/internal/fasta"
	"taxorf/internal/gencode"
	"taxorf/internal/jobstore"
	"taxorf/internal/orf"
	"taxorf/internal/taxdump"
	"taxorf/internal/taxonomy"
)

// statusResponseWriter captures status and bytes written for access logs.
type statusResponseWriter struct {
	http.ResponseWriter
	status  int
	written int64
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

func loggingMiddleware(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w}
		next.ServeHTTP(srw, r)
		if srw.status == 0 {
			srw.status = http.StatusOK
		}
		logger.Info("request",
			"method", r.Method, "path", r.URL.Path,
			"status", srw.status, "bytes", srw.written, "duration", time.Since(start))
	})
}

type server struct {
	logger *log.Logger
	engine *taxonomy.Engine
	jobs   jobstore.Store
	cfg    *config.Config
}

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	configPath := flag.String("config", "", "path to config.json")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "taxorfweb"})

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", "err", err)
	}

	engine := buildEngine(logger, cfg)

	driver := cfg.JobStoreDriver
	path := cfg.JobStorePath
	if path == "" {
		path = "jobs.json"
	}
	jobs, err := jobstore.Open(driver, path)
	if err != nil {
		logger.Fatal("open jobstore", "err", err)
	}
	defer jobs.Close()

	s := &server{logger: logger, engine: engine, jobs: jobs, cfg: cfg}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/lca", s.handleLCA)
	mux.HandleFunc("/api/lineage", s.handleLineage)
	mux.HandleFunc("/api/atranks", s.handleAtRanks)
	mux.HandleFunc("/api/orf/scan", s.handleOrfScan)
	mux.HandleFunc("/api/jobs", s.handleJobs)

	handler := loggingMiddleware(logger, mux)
	srv := &http.Server{Addr: *addr, Handler: handler, ReadTimeout: 10 * time.Second, WriteTimeout: 30 * time.Second}
	logger.Info("serving", "addr", *addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", "err", err)
	}
}

func buildEngine(logger *log.Logger, cfg *config.Config) *taxonomy.Engine {
	nodesPath, namesPath, mergedPath := cfg.NodesDmp, cfg.NamesDmp, cfg.MergedDmp
	if nodesPath == "" || namesPath == "" || mergedPath == "" {
		dir := cfg.TaxdumpDir
		if dir == "" {
			dir = "taxdump"
		}
		fetcher := taxdump.NewFetcher(dir, time.Duration(cfg.TaxdumpCacheTTL)*time.Second)
		if cfg.TaxdumpURL != "" {
			fetcher.URL = cfg.TaxdumpURL
		}
		files, err := fetcher.Ensure()
		if err != nil {
			logger.Fatal("fetch taxdump", "err", err)
		}
		nodesPath, namesPath, mergedPath = files.NodesPath, files.NamesPath, files.MergedPath
	}
	engine, err := taxonomy.Load(nodesPath, namesPath, mergedPath)
	if err != nil {
		logger.Fatal("load taxonomy", "err", err)
	}
	return engine
}

func (s *server) handleLCA(w http.ResponseWriter, r *http.Request) {
	a, err1 := strconv.ParseInt(r.URL.Query().Get("a"), 10, 64)
	b, err2 := strconv.ParseInt(r.URL.Query().Get("b"), 10, 64)
	if err1 != nil || err2 != nil {
		http.Error(w, "a and b must be integer taxon ids", http.StatusBadRequest)
		return
	}
	lca := s.engine.LCA(taxonomy.TaxID(a), taxonomy.TaxID(b))
	writeJSON(w, map[string]any{"lca": lca})
}

func (s *server) handleLineage(w http.ResponseWriter, r *http.Request) {
	node, err := strconv.ParseInt(r.URL.Query().Get("node"), 10, 64)
	if err != nil {
		http.Error(w, "node must be an integer taxon id", http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]any{"lineage": s.engine.TaxLineage(taxonomy.TaxID(node))})
}

func (s *server) handleAtRanks(w http.ResponseWriter, r *http.Request) {
	node, err := strconv.ParseInt(r.URL.Query().Get("node"), 10, 64)
	if err != nil {
		http.Error(w, "node must be an integer taxon id", http.StatusBadRequest)
		return
	}
	ranks := strings.Split(r.URL.Query().Get("ranks"), ",")
	values := s.engine.AtRanks(taxonomy.TaxID(node), ranks)
	result := make(map[string]string, len(ranks))
	for i, rk := range ranks {
		result[rk] = values[i]
	}
	writeJSON(w, result)
}

// handleOrfScan runs synchronously against the posted FASTA body and
// also records the request as a completed job, so /api/jobs lists every
// scan served.
func (s *server) handleOrfScan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}
	table := gencode.ByName(s.cfg.GeneticCode)
	scanner := orf.New(table, s.cfg.UseAllTableStarts)

	reader := fasta.NewReader(r.Body)
	var found []orf.SequenceLocation
	for {
		rec, ok := reader.Next()
		if !ok {
			break
		}
		if !scanner.SetSequence([]byte(rec.Sequence)) {
			continue
		}
		found = append(found, scanner.FindAll(s.cfg.MinOrfLength, s.cfg.MaxOrfLength, s.cfg.MaxOrfGaps, orf.FrameAll, orf.FrameAll, orf.StartToStop)...)
	}

	now := time.Now()
	job := jobstore.Job{
		ID: fmt.Sprintf("scan-%d", now.UnixNano()), Kind: "orf-scan", State: "done",
		Result: fmt.Sprintf("%d orfs", len(found)), CreatedAt: now, UpdatedAt: now,
	}
	s.recordJob(job)

	writeJSON(w, map[string]any{"job_id": job.ID, "orfs": found})
}

func (s *server) handleJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.jobs.Load()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, jobs)
}

func (s *server) recordJob(job jobstore.Job) {
	existing, err := s.jobs.Load()
	if err != nil {
		s.logger.Warn("load jobs", "err", err)
		existing = nil
	}
	existing = append(existing, job)
	if err := s.jobs.Save(existing); err != nil {
		s.logger.Warn("save jobs", "err", err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}
