package outwriter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/edustats/gradeboard/internal/contract"
	"github.com/edustats/gradeboard/schema"
)

const reportRule = 80

// WriteJournalReport writes the plain-text journal report: class statistics,
// status distribution, top students, struggling students and per-subject
// stats. The layout is fixed so re-runs over identical input are
// byte-identical apart from the timestamp line.
func WriteJournalReport(analysis *schema.JournalAnalysis, cfg *contract.Config, now time.Time) error {
	return writeWithFile(cfg.ReportFile, func(w io.Writer) error {
		fmtFloat, _ := createFormatters(cfg.Precision)
		s := analysis.Summary

		rule(w, "=")
		fmt.Fprintln(w, "GRADEBOOK ANALYSIS REPORT")
		rule(w, "=")
		fmt.Fprintf(w, "Report date: %s\n\n", now.Format("02.01.2006 15:04"))

		fmt.Fprintln(w, "1. CLASS STATISTICS")
		rule(w, "-")
		fmt.Fprintf(w, "Students:           %d\n", s.Students)
		fmt.Fprintf(w, "Class average:      %s\n", fmtFloat(s.Mean))
		fmt.Fprintf(w, "Median:             %s\n", fmtFloat(s.Median))
		fmt.Fprintf(w, "Standard deviation: %s\n", fmtFloat(s.StdDev))
		fmt.Fprintf(w, "Minimum average:    %s\n", fmtFloat(s.Min))
		fmt.Fprintf(w, "Maximum average:    %s\n\n", fmtFloat(s.Max))

		fmt.Fprintln(w, "Status distribution:")
		for _, status := range schema.GradeStatusOrder {
			fmt.Fprintf(w, "  %-16s %d\n", string(status)+":", s.StatusCounts[status])
		}
		fmt.Fprintln(w)

		fmt.Fprintf(w, "2. TOP %d STUDENTS\n", len(analysis.Top))
		rule(w, "-")
		for i, r := range analysis.Top {
			fmt.Fprintf(w, "%d. %s: %s (%s)\n", i+1, r.Student, fmtFloat(r.Average), r.Status)
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, "3. STUDENTS NEEDING ATTENTION")
		rule(w, "-")
		if len(analysis.Struggling) > 0 {
			for _, r := range analysis.Struggling {
				fmt.Fprintf(w, "- %s: %s (%s)\n", r.Student, fmtFloat(r.Average), r.Status)
			}
		} else {
			fmt.Fprintf(w, "No students with an average below %s\n", fmtFloat(cfg.StrugglingBound))
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, "4. SUBJECT STATISTICS")
		rule(w, "-")
		for _, sub := range analysis.Subjects {
			fmt.Fprintf(w, "%s:\n", sub.Subject)
			fmt.Fprintf(w, "  Mean:    %s\n", fmtFloat(sub.Mean))
			fmt.Fprintf(w, "  Minimum: %s\n", fmtFloat(sub.Min))
			fmt.Fprintf(w, "  Maximum: %s\n\n", fmtFloat(sub.Max))
		}
		if s.BestSubject != "" {
			fmt.Fprintf(w, "Best subject:    %s\n", s.BestSubject)
			fmt.Fprintf(w, "Hardest subject: %s\n", s.WorstSubject)
		}

		rule(w, "=")
		return nil
	}, "Wrote report")
}

// WriteExamReport writes the plain-text exam report, including the
// recommendations section driven by the problematic topics, the
// consultation list and the class mean.
func WriteExamReport(analysis *schema.ExamAnalysis, cfg *contract.Config, now time.Time) error {
	return writeWithFile(cfg.ReportFile, func(w io.Writer) error {
		fmtFloat, _ := createFormatters(1)
		s := analysis.Summary

		rule(w, "=")
		fmt.Fprintln(w, "TEST ANALYSIS REPORT")
		rule(w, "=")
		fmt.Fprintf(w, "Report date: %s\n\n", now.Format("02.01.2006 15:04"))

		fmt.Fprintln(w, "1. OVERALL STATISTICS")
		rule(w, "-")
		fmt.Fprintf(w, "Students:     %d\n", s.Students)
		fmt.Fprintf(w, "Questions:    %d\n", s.Questions)
		fmt.Fprintf(w, "Class mean:   %s%%\n", fmtFloat(s.Mean))
		fmt.Fprintf(w, "Median:       %s%%\n", fmtFloat(s.Median))
		fmt.Fprintf(w, "Worst result: %s%%\n", fmtFloat(s.Min))
		fmt.Fprintf(w, "Best result:  %s%%\n\n", fmtFloat(s.Max))

		fmt.Fprintln(w, "2. QUESTION STATISTICS")
		rule(w, "-")
		for _, q := range analysis.Questions {
			fmt.Fprintf(w, "%s (%s, %s): %s%% correct\n", q.Question, q.Topic, q.Difficulty, fmtFloat(q.PassRate))
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, "3. PROBLEMATIC QUESTIONS")
		rule(w, "-")
		if len(analysis.Problematic) > 0 {
			for _, q := range analysis.Problematic {
				fmt.Fprintf(w, "%s (%s): %s%%\n", q.Question, q.Topic, fmtFloat(q.PassRate))
			}
		} else {
			fmt.Fprintln(w, "No problematic questions")
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, "4. TOPIC STATISTICS")
		rule(w, "-")
		for _, t := range analysis.Topics {
			note := ""
			if t.Problematic {
				note = " (problematic)"
			}
			fmt.Fprintf(w, "%s: %s%% correct%s\n", t.Topic, fmtFloat(t.PassRate), note)
		}
		fmt.Fprintln(w)

		fmt.Fprintf(w, "5. STUDENTS BELOW %s%%\n", fmtFloat(cfg.ConsultBound))
		rule(w, "-")
		if len(analysis.Struggling) > 0 {
			for _, sc := range analysis.Struggling {
				fmt.Fprintf(w, "%s: %s%% (%d points)\n", sc.Student, fmtFloat(sc.Percent), sc.Total)
			}
		} else {
			fmt.Fprintln(w, "Everyone passed the bar")
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, "6. RECOMMENDATIONS")
		rule(w, "-")
		writeExamRecommendations(w, analysis, cfg)

		rule(w, "=")
		return nil
	}, "Wrote report")
}

// writeExamRecommendations derives the advisory section from the analysis.
func writeExamRecommendations(w io.Writer, analysis *schema.ExamAnalysis, cfg *contract.Config) {
	wrote := false

	var problemTopics []schema.TopicStats
	for _, t := range analysis.Topics {
		if t.Problematic {
			problemTopics = append(problemTopics, t)
		}
	}
	if len(problemTopics) > 0 {
		fmt.Fprintln(w, "Schedule extra lessons for:")
		for _, t := range problemTopics {
			fmt.Fprintf(w, "  - %s\n", t.Topic)
		}
		wrote = true
	}

	if len(analysis.Struggling) > 0 {
		fmt.Fprintf(w, "Arrange consultations for %d students\n", len(analysis.Struggling))
		wrote = true
	}

	if belowPassBound(analysis.Summary.Mean, cfg) {
		fmt.Fprintln(w, "Class mean is below expectations. Consider:")
		fmt.Fprintln(w, "  - Revisiting the teaching approach")
		fmt.Fprintln(w, "  - More hands-on practice")
		fmt.Fprintln(w, "  - A walkthrough of common mistakes")
		wrote = true
	}

	if !wrote {
		fmt.Fprintln(w, "No action needed")
	}
}

// belowPassBound reports whether the class mean falls under the pass scale.
func belowPassBound(mean float64, cfg *contract.Config) bool {
	return cfg.PassScale.Classify(mean) == schema.StatusProblematic
}

// rule writes a fixed-width separator line.
func rule(w io.Writer, ch string) {
	fmt.Fprintln(w, strings.Repeat(ch, reportRule))
}
