package outwriter

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/edustats/gradeboard/internal/contract"
	"github.com/edustats/gradeboard/schema"
	"github.com/wcharczuk/go-chart/v2"
)

// Chart dimensions shared by all rendered PNGs.
const (
	chartWidth  = 1024
	chartHeight = 512
)

// RenderJournalCharts renders the journal dashboard as a set of PNG files
// in the configured chart directory: subject means, the grade distribution
// pie, the top students bar chart and the quarter trend line.
func RenderJournalCharts(t *schema.Table, analysis *schema.JournalAnalysis, trend []schema.QuarterPoint, cfg *contract.Config) error {
	if err := renderSubjectMeans(analysis.Subjects, filepath.Join(cfg.ChartDir, "subject_means.png")); err != nil {
		return err
	}
	if err := renderGradeDistribution(t, filepath.Join(cfg.ChartDir, "grade_distribution.png")); err != nil {
		return err
	}
	if err := renderTopStudents(analysis.Top, filepath.Join(cfg.ChartDir, "top_students.png")); err != nil {
		return err
	}
	return renderQuarterTrend(trend, filepath.Join(cfg.ChartDir, "quarter_trend.png"))
}

// RenderExamCharts renders the exam dashboard: per-question pass rates,
// per-topic pass rates, the problematic questions worst-first and the
// distribution of student percent scores.
func RenderExamCharts(analysis *schema.ExamAnalysis, cfg *contract.Config) error {
	questionBars := make([]chart.Value, 0, len(analysis.Questions))
	for _, q := range analysis.Questions {
		questionBars = append(questionBars, chart.Value{Value: q.PassRate, Label: q.Question})
	}
	if err := renderBarChart("Pass rate per question (%)", questionBars, 100,
		filepath.Join(cfg.ChartDir, "question_pass_rates.png")); err != nil {
		return err
	}

	topicBars := make([]chart.Value, 0, len(analysis.Topics))
	for _, t := range analysis.Topics {
		topicBars = append(topicBars, chart.Value{Value: t.PassRate, Label: t.Topic})
	}
	if err := renderBarChart("Pass rate per topic (%)", topicBars, 100,
		filepath.Join(cfg.ChartDir, "topic_pass_rates.png")); err != nil {
		return err
	}

	// Problematic is already ordered worst-first; skipped when empty.
	problemBars := make([]chart.Value, 0, len(analysis.Problematic))
	for _, q := range analysis.Problematic {
		problemBars = append(problemBars, chart.Value{Value: q.PassRate, Label: q.Question})
	}
	if err := renderBarChart("Problematic questions (%)", problemBars, 100,
		filepath.Join(cfg.ChartDir, "problematic_questions.png")); err != nil {
		return err
	}

	return renderScoreHistogram(analysis.Scores, filepath.Join(cfg.ChartDir, "score_distribution.png"))
}

// renderSubjectMeans draws subject means as a bar chart, best first.
func renderSubjectMeans(subjects []schema.SubjectStats, path string) error {
	sorted := make([]schema.SubjectStats, len(subjects))
	copy(sorted, subjects)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Mean > sorted[j].Mean })

	bars := make([]chart.Value, 0, len(sorted))
	for _, s := range sorted {
		if math.IsNaN(s.Mean) {
			continue
		}
		bars = append(bars, chart.Value{Value: s.Mean, Label: s.Subject})
	}
	return renderBarChart("Average score per subject", bars, 5, path)
}

// renderGradeDistribution draws a pie of how often each raw grade occurs
// across every subject cell of the table.
func renderGradeDistribution(t *schema.Table, path string) error {
	counts := make(map[float64]int)
	for _, row := range t.Rows {
		for _, col := range t.Columns {
			v := row.Scores[col]
			if math.IsNaN(v) {
				continue
			}
			counts[v]++
		}
	}
	grades := make([]float64, 0, len(counts))
	for g := range counts {
		grades = append(grades, g)
	}
	sort.Float64s(grades)

	values := make([]chart.Value, 0, len(grades))
	for _, g := range grades {
		values = append(values, chart.Value{
			Value: float64(counts[g]),
			Label: fmt.Sprintf("%g (%d)", g, counts[g]),
		})
	}
	if len(values) == 0 {
		return nil // nothing to draw for an empty table
	}

	pie := chart.PieChart{
		Title:  "Grade distribution",
		Width:  chartHeight,
		Height: chartHeight,
		Values: values,
	}
	return renderToFile(path, pie.Render)
}

// renderTopStudents draws the ranked top students as a bar chart.
func renderTopStudents(top []schema.StudentResult, path string) error {
	bars := make([]chart.Value, 0, len(top))
	for _, r := range top {
		if math.IsNaN(r.Average) {
			continue
		}
		bars = append(bars, chart.Value{Value: r.Average, Label: r.Student})
	}
	return renderBarChart("Top students", bars, 5, path)
}

// renderQuarterTrend draws the class-average trend across quarters.
func renderQuarterTrend(trend []schema.QuarterPoint, path string) error {
	if len(trend) == 0 {
		return nil
	}
	xs := make([]float64, 0, len(trend))
	ys := make([]float64, 0, len(trend))
	ticks := make([]chart.Tick, 0, len(trend))
	for i, p := range trend {
		xs = append(xs, float64(i))
		ys = append(ys, p.Average)
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: p.Quarter})
	}

	line := chart.Chart{
		Title:  "Class average per quarter",
		Width:  chartWidth,
		Height: chartHeight,
		XAxis:  chart.XAxis{Ticks: ticks},
		YAxis:  chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: 5}},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: xs, YValues: ys},
		},
	}
	return renderToFile(path, line.Render)
}

// renderScoreHistogram buckets student percents into ten-point bins.
func renderScoreHistogram(scores []schema.ExamScore, path string) error {
	bins := make([]int, 10)
	for _, s := range scores {
		if math.IsNaN(s.Percent) {
			continue
		}
		bin := int(s.Percent / 10)
		if bin > 9 {
			bin = 9 // 100% lands in the top bin
		}
		bins[bin]++
	}

	bars := make([]chart.Value, 0, len(bins))
	maxCount := 1
	for i, count := range bins {
		if count > maxCount {
			maxCount = count
		}
		bars = append(bars, chart.Value{
			Value: float64(count),
			Label: fmt.Sprintf("%d-%d", i*10, i*10+10),
		})
	}
	return renderBarChart("Score distribution (%)", bars, float64(maxCount), path)
}

// renderBarChart draws a labelled bar chart with a fixed Y range.
func renderBarChart(title string, bars []chart.Value, yMax float64, path string) error {
	if len(bars) == 0 {
		return nil
	}
	bar := chart.BarChart{
		Title:    title,
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: chartWidth / (2 * len(bars)),
		YAxis:    chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: yMax}},
		Bars:     bars,
	}
	return renderToFile(path, bar.Render)
}

// renderToFile renders a chart into a freshly created PNG file.
func renderToFile(path string, render func(chart.RendererProvider, io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := render(chart.PNG, f); err != nil {
		return fmt.Errorf("render chart %s: %w", path, err)
	}
	return nil
}
