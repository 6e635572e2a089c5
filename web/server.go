// Package web serves a localhost-only read-only view of stored report runs;
// it intentionally has no auth in this mode.
package web

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/stfelty/connect-team-hr-formatter/internal/timeutil"
	"github.com/stfelty/connect-team-hr-formatter/storage"
	"github.com/stfelty/connect-team-hr-formatter/timeclock"
)

type Server struct {
	store *storage.Store
	log   *slog.Logger
	mux   *http.ServeMux
}

type runRowView struct {
	ID          int64
	ReportDate  string
	Accepted    int
	RowsRead    int
	Overnight   int
	Unparseable int
	CreatedAt   string
}

type runPageView struct {
	Run       runRowView
	Summaries []timeclock.Summary
	Total     float64
}

func NewServer(store *storage.Store, log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.Default()
	}

	server := &Server{store: store, log: log, mux: http.NewServeMux()}
	server.mux.HandleFunc("GET /{$}", server.handleIndex)
	server.mux.HandleFunc("GET /run/{id}", server.handleRun)
	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	runs, err := s.store.ListRuns()
	if err != nil {
		s.log.Error("list runs", slog.Any("error", err))
		http.Error(w, "failed to load report runs", http.StatusInternalServerError)
		return
	}

	views := make([]runRowView, 0, len(runs))
	for _, run := range runs {
		views = append(views, runRowToView(run))
	}

	s.render(w, indexTemplate, views)
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid run id", http.StatusBadRequest)
		return
	}

	run, found, err := s.store.GetRun(id)
	if err != nil {
		s.log.Error("load run", slog.Int64("run", id), slog.Any("error", err))
		http.Error(w, "failed to load run", http.StatusInternalServerError)
		return
	}
	if !found {
		http.NotFound(w, r)
		return
	}

	shifts, err := s.store.ListShifts(id)
	if err != nil {
		s.log.Error("load shifts", slog.Int64("run", id), slog.Any("error", err))
		http.Error(w, "failed to load shifts", http.StatusInternalServerError)
		return
	}

	_, summaries, err := timeclock.BuildDailyTotals(shifts, run.ReportDate, s.log)
	if err != nil {
		s.log.Error("rebuild totals", slog.Int64("run", id), slog.Any("error", err))
		http.Error(w, "failed to rebuild totals", http.StatusInternalServerError)
		return
	}

	page := runPageView{Run: runRowToView(run), Summaries: summaries}
	for _, summary := range summaries {
		page.Total += summary.RegularHours
	}

	s.render(w, runTemplate, page)
}

func (s *Server) render(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		s.log.Error("render template", slog.Any("error", err))
	}
}

func runRowToView(run storage.Run) runRowView {
	return runRowView{
		ID:          run.ID,
		ReportDate:  timeutil.DayKey(run.ReportDate),
		Accepted:    run.Accepted,
		RowsRead:    run.RowsRead,
		Overnight:   run.Overnight,
		Unparseable: run.Unparseable,
		CreatedAt:   run.CreatedAt,
	}
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>Hours Summary Runs</title></head>
<body>
<h1>Report runs</h1>
{{if not .}}<p>No runs recorded yet.</p>{{end}}
<table border="1" cellpadding="4">
<tr><th>Run</th><th>Report date</th><th>Accepted</th><th>Rows read</th><th>Overnight</th><th>Unparseable</th><th>Created</th></tr>
{{range .}}
<tr>
<td><a href="/run/{{.ID}}">{{.ID}}</a></td>
<td>{{.ReportDate}}</td>
<td>{{.Accepted}}</td>
<td>{{.RowsRead}}</td>
<td>{{.Overnight}}</td>
<td>{{.Unparseable}}</td>
<td>{{.CreatedAt}}</td>
</tr>
{{end}}
</table>
</body>
</html>
`))

var runTemplate = template.Must(template.New("run").Funcs(template.FuncMap{
	"hours": func(value float64) string { return fmt.Sprintf("%.2f", value) },
}).Parse(`<!DOCTYPE html>
<html>
<head><title>Run {{.Run.ID}} - {{.Run.ReportDate}}</title></head>
<body>
<p><a href="/">&larr; all runs</a></p>
<h1>Daily totals for {{.Run.ReportDate}}</h1>
<table border="1" cellpadding="4">
<tr><th>Employee Number</th><th>PayType Name</th><th>Regular Hours</th><th>OT1 Hours</th><th>Paid Hours</th><th>Unpaid Hours</th></tr>
{{range .Summaries}}
<tr>
<td>{{.EmployeeID}}</td>
<td>{{.PayType}}</td>
<td>{{hours .RegularHours}}</td>
<td>{{hours .OT1Hours}}</td>
<td>{{hours .PaidHours}}</td>
<td>{{hours .UnpaidHours}}</td>
</tr>
{{end}}
</table>
<p>Total regular hours: {{hours .Total}}</p>
</body>
</html>
`))
